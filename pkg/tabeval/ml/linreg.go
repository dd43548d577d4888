package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinReg implements ordinary least squares linear regression.  The
// weights are the least-squares solution of the design matrix against
// the target vector.  If Intercept is set, a constant column is
// prepended to the design matrix.
type LinReg struct {
	Intercept bool
	weights   *mat.VecDense
}

// Fit computes the least-squares weights for the given training data.
func (lr *LinReg) Fit(x *mat.Dense, y *mat.VecDense) error {
	design := lr.design(x)
	var w mat.VecDense
	if err := w.SolveVec(design, y); err != nil {
		return fmt.Errorf("fit: %v", err)
	}
	lr.weights = &w
	return nil
}

// Predict calculates the predictions for the given values.
func (lr *LinReg) Predict(x *mat.Dense) (*mat.VecDense, error) {
	if lr.weights == nil {
		return nil, fmt.Errorf("predict: model is not fitted")
	}
	var out mat.VecDense
	out.MulVec(lr.design(x), lr.weights)
	return &out, nil
}

// Weights returns the fitted weights.  With an intercept the first
// weight is the constant term.
func (lr *LinReg) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}
	return lr.weights.RawVector().Data
}

func (lr *LinReg) design(x *mat.Dense) *mat.Dense {
	if !lr.Intercept {
		return x
	}
	r, c := x.Dims()
	design := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			design.Set(i, j+1, x.At(i, j))
		}
	}
	return design
}
