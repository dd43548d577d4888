// Package internal holds the command line plumbing shared by the
// tabeval subcommands: the standard flags, the configuration and the
// CSV table loading.  Parsing delimited files happens here, outside
// the core packages.
package internal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"git.sr.ht/~flobar/tabeval/pkg/tabeval"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/eval"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/ml"
	"github.com/spf13/cobra"
)

// tabeval version
const Version = "v0.0.1"

// Flags is used to define the standard command-line parameters for
// tabeval sub commands.
type Flags struct {
	Params       string  // Path to the configuration file
	Model        string  // Estimator name
	Folds        int     // Number of cross-validation folds
	TestFraction float64 // Test fraction for simple splits
	Seed         int64   // Random seed
	Verbose      bool    // Enable logging
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "config.json",
		"set path to configuration file")
	cmd.Flags().StringVarP(&flags.Model, "model", "M", "",
		"set the estimator (overwrites the setting in the configuration file)")
	cmd.Flags().IntVarP(&flags.Folds, "folds", "k", 0,
		"set the number of folds (overwrites the setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.TestFraction, "test-fraction", "t", 0,
		"set the test fraction (overwrites the setting in the configuration file)")
	cmd.Flags().Int64VarP(&flags.Seed, "seed", "s", 0,
		"set the random seed (overwrites the setting in the configuration file)")
	cmd.Flags().BoolVarP(&flags.Verbose, "log", "l", false, "enable logging")
}

// Config reads the configuration file and applies the command line
// overrides.
func (flags *Flags) Config() (*tabeval.Config, error) {
	config, err := tabeval.ReadConfig(flags.Params)
	if err != nil {
		return nil, err
	}
	config.Overwrite(flags.Model, flags.Folds, flags.TestFraction, flags.Seed)
	tabeval.SetLog(flags.Verbose)
	return config, nil
}

// ReadTable reads a table from a CSV file with a header row.  A
// column is numeric if every one of its values parses as a float;
// otherwise it is categorical.
func ReadTable(path string) (*tabeval.Table, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readTable %s: %v", path, err)
	}
	defer in.Close()
	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readTable %s: %v", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("readTable %s: missing header or rows", path)
	}
	header, rows := records[0], records[1:]
	cols := make([]tabeval.Column, len(header))
	for j, name := range header {
		vals := make([]string, len(rows))
		for i, row := range rows {
			vals[i] = row[j]
		}
		cols[j] = column(name, vals)
	}
	table, err := tabeval.NewTable(cols...)
	if err != nil {
		return nil, fmt.Errorf("readTable %s: %v", path, err)
	}
	tabeval.Log("read %d rows and %d columns from %s", table.Rows(), len(cols), path)
	return table, nil
}

func column(name string, vals []string) tabeval.Column {
	floats := make([]float64, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return tabeval.CategoricalColumn(name, vals)
		}
		floats[i] = f
	}
	return tabeval.NumericColumn(name, floats)
}

// Features returns the categorical and numeric feature column names
// for the given table.  Columns listed in the config are used as
// given; with an empty config the sets are inferred from the column
// kinds.  The target column is never a feature.
func Features(config *tabeval.Config, table *tabeval.Table) (categorical, numeric []string) {
	if len(config.Categorical) > 0 || len(config.Numeric) > 0 {
		return config.Categorical, config.Numeric
	}
	for _, col := range table.Columns() {
		if col.Name == config.Target {
			continue
		}
		if col.Kind == tabeval.Categorical {
			categorical = append(categorical, col.Name)
		} else {
			numeric = append(numeric, col.Name)
		}
	}
	return categorical, numeric
}

// EstimatorFactory returns a factory for the estimator named in the
// configuration.  An empty name means linear regression.
func EstimatorFactory(config *tabeval.Config) (func() ml.Estimator, error) {
	switch config.Model {
	case "", "linreg":
		return func() ml.Estimator { return &ml.LinReg{Intercept: true} }, nil
	case "knn":
		k := config.Neighbors
		if k == 0 {
			k = 5
		}
		return func() ml.Estimator { return &ml.KNN{K: k} }, nil
	case "logit":
		rate, ntrain := config.LearningRate, config.Ntrain
		if rate == 0 {
			rate = 0.01
		}
		if ntrain == 0 {
			ntrain = 1000
		}
		return func() ml.Estimator { return &ml.Logit{LearningRate: rate, Ntrain: ntrain} }, nil
	default:
		return nil, fmt.Errorf("estimatorFactory %s: no such estimator", config.Model)
	}
}

// MetricByName returns the named metric.  An empty name means r2.
func MetricByName(name string) (eval.Metric, error) {
	switch name {
	case "", "r2":
		return eval.R2, nil
	case "mse":
		return eval.MSE, nil
	case "rmse":
		return eval.RMSE, nil
	case "mae":
		return eval.MAE, nil
	case "accuracy":
		return eval.Accuracy, nil
	default:
		return nil, fmt.Errorf("metricByName %s: no such metric", name)
	}
}
