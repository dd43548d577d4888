package eval

import (
	"fmt"

	"git.sr.ht/~flobar/tabeval/cmd/internal"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/eval"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/split"
	"github.com/spf13/cobra"
)

// CMD defines the tabeval eval command.
var CMD = &cobra.Command{
	Use:   "eval CSV",
	Short: "Score an estimator on a train/test split",
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
	fraction := config.TestFraction
	if fraction == 0 {
		fraction = 0.25
	}
	train, test, err := split.TrainTest(table.Rows(), fraction, config.Seed)
	if err != nil {
		return err
	}
	tabeval.Log("training on %d rows, testing on %d", len(train), len(test))
	score, err := eval.FitPredictScore(factory(),
		eval.TakeRows(fm.X, train), eval.TakeVec(y, train),
		eval.TakeRows(fm.X, test), eval.TakeVec(y, test),
		metric)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s: %g\n", args[0], metricName, score)
	return nil
}
