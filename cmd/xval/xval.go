package xval

import (
	"fmt"

	"git.sr.ht/~flobar/tabeval/cmd/internal"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/eval"
	"github.com/spf13/cobra"
)

// CMD defines the tabeval xval command.
var CMD = &cobra.Command{
	Use:   "xval CSV",
	Short: "Cross-validate an estimator with k folds",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

var flags internal.Flags

var metricName string

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&metricName, "metric", "m", "r2",
		"set the metric (r2, mse, rmse, mae, accuracy)")
}

func run(_ *cobra.Command, args []string) error {
	config, err := flags.Config()
	if err != nil {
		return err
	}
	table, err := internal.ReadTable(args[0])
	if err != nil {
		return err
	}
	fm, y, err := internal.Vectorize(config, table)
	if err != nil {
		return err
	}
	factory, err := internal.EstimatorFactory(config)
	if err != nil {
		return err
	}
	metric, err := internal.MetricByName(metricName)
	if err != nil {
		return err
	}
	folds := config.Folds
	if folds == 0 {
		folds = 5
	}
	scores, err := eval.CrossValidate(factory, fm.X, y, folds, config.Seed, metric)
	if err != nil {
		return err
	}
	var sum float64
	for i, score := range scores {
		fmt.Printf("fold %d %s: %g\n", i, metricName, score)
		sum += score
	}
	fmt.Printf("mean %s: %g\n", metricName, sum/float64(len(scores)))
	return nil
}
