package ml

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func floatArrayEqual(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if diff := math.Abs(a[i] - b[i]); diff > tolerance {
			return false
		}
	}
	return true
}

func TestLinRegExactFit(t *testing.T) {
	// y = 1 + 2*x0 + 3*x1
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	y := mat.NewVecDense(4, []float64{1, 3, 4, 6})
	lr := LinReg{Intercept: true}
	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !floatArrayEqual(lr.Weights(), []float64{1, 2, 3}, 1e-9) {
		t.Fatalf("expected [1 2 3]; got %v", lr.Weights())
	}
	pred, err := lr.Predict(x)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !floatArrayEqual(pred.RawVector().Data, y.RawVector().Data, 1e-9) {
		t.Fatalf("expected %v; got %v", y.RawVector().Data, pred.RawVector().Data)
	}
}

func TestLinRegNoIntercept(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{3, 6, 9})
	var lr LinReg
	if err := lr.Fit(x, y); err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !floatArrayEqual(lr.Weights(), []float64{3}, 1e-9) {
		t.Fatalf("expected [3]; got %v", lr.Weights())
	}
}

func TestLinRegNotFitted(t *testing.T) {
	var lr LinReg
	if _, err := lr.Predict(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Fatalf("expected error")
	}
}
