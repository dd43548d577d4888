package internal

import (
	"fmt"

	"git.sr.ht/~flobar/tabeval/pkg/tabeval"
	"gonum.org/v1/gonum/mat"
)

// Vectorize converts the table into a feature matrix and a target
// vector according to the configuration.  A numeric target is used
// as is; a categorical target is encoded as integer class codes.
func Vectorize(config *tabeval.Config, table *tabeval.Table) (*tabeval.FeatureMatrix, *mat.VecDense, error) {
	if config.Target == "" {
		return nil, nil, fmt.Errorf("vectorize: missing target column in configuration")
	}
	col, ok := table.Column(config.Target)
	if !ok {
		return nil, nil, fmt.Errorf("vectorize: no column %q in table", config.Target)
	}
	categorical, numeric := Features(config, table)
	v := tabeval.Vectorizer{
		Standardize: config.Standardize,
		DropFirst:   config.DropFirst,
		AllowUnseen: config.AllowUnseen,
	}
	fm, err := v.FitTransform(table, categorical, numeric)
	if err != nil {
		return nil, nil, fmt.Errorf("vectorize: %v", err)
	}
	var y *mat.VecDense
	if col.Kind == tabeval.Numeric {
		y, err = tabeval.NumericTarget(table, config.Target)
	} else {
		var enc *tabeval.Encoder
		y, enc, err = tabeval.ClassTarget(table, config.Target)
		if err == nil {
			tabeval.Log("target %s: %d classes %v", config.Target, enc.Len(), enc.Labels())
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("vectorize: %v", err)
	}
	return fm, y, nil
}
