package tabeval

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NumericTarget extracts a numeric column as a regression target
// vector, row-aligned to the table.
func NumericTarget(t *Table, name string) (*mat.VecDense, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("numericTarget: %w",
			SchemaMismatchError{Column: name, Reason: "not in table"})
	}
	if col.Kind != Numeric {
		return nil, fmt.Errorf("numericTarget: %w",
			SchemaMismatchError{Column: name, Reason: "column is categorical"})
	}
	vals := make([]float64, len(col.Floats))
	copy(vals, col.Floats)
	return mat.NewVecDense(len(vals), vals), nil
}

// ClassTarget encodes a categorical column as a classification target
// vector of integer class codes.  The returned encoder holds the
// inverse mapping from codes back to labels.
func ClassTarget(t *Table, name string) (*mat.VecDense, *Encoder, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, nil, fmt.Errorf("classTarget: %w",
			SchemaMismatchError{Column: name, Reason: "not in table"})
	}
	if col.Kind != Categorical {
		return nil, nil, fmt.Errorf("classTarget: %w",
			SchemaMismatchError{Column: name, Reason: "column is numeric"})
	}
	var enc Encoder
	codes, err := enc.FitTransform(col.Labels)
	if err != nil {
		return nil, nil, fmt.Errorf("classTarget %s: %w", name, err)
	}
	vals := make([]float64, len(codes))
	for i, c := range codes {
		vals[i] = float64(c)
	}
	return mat.NewVecDense(len(vals), vals), &enc, nil
}
