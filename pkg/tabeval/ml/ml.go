// Package ml provides the pluggable estimators driven by the
// evaluation harness.  An estimator is anything that can be fit on a
// feature matrix and a target vector and can predict targets for new
// rows; the harness never inspects an estimator beyond this contract.
package ml

import (
	"gonum.org/v1/gonum/mat"
)

// Predefined values for true and false.
const (
	False = float64(0)
	True  = float64(1)
)

// Bool converts a bool to a value representing false or true.
func Bool(t bool) float64 {
	if t {
		return True
	}
	return False
}

// Fitter is implemented by models that can be trained.
type Fitter interface {
	Fit(x *mat.Dense, y *mat.VecDense) error
}

// Predictor is implemented by trained models.
type Predictor interface {
	Predict(x *mat.Dense) (*mat.VecDense, error)
}

// Estimator is a model that can both be trained and predict.
type Estimator interface {
	Fitter
	Predictor
}
