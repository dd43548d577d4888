package eval

import (
	"errors"
	"testing"

	"git.sr.ht/~flobar/tabeval/pkg/tabeval/ml"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/split"
	"gonum.org/v1/gonum/mat"
)

// firstCol predicts the first feature column and learns nothing.
type firstCol struct{}

func (firstCol) Fit(x *mat.Dense, y *mat.VecDense) error { return nil }

func (firstCol) Predict(x *mat.Dense) (*mat.VecDense, error) {
	r, _ := x.Dims()
	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, x.At(i, 0))
	}
	return out, nil
}

var errBroken = errors.New("broken estimator")

type broken struct{}

func (broken) Fit(x *mat.Dense, y *mat.VecDense) error     { return errBroken }
func (broken) Predict(x *mat.Dense) (*mat.VecDense, error) { return nil, errBroken }

// mute fits fine but cannot predict.
type mute struct{}

func (mute) Fit(x *mat.Dense, y *mat.VecDense) error     { return nil }
func (mute) Predict(x *mat.Dense) (*mat.VecDense, error) { return nil, errBroken }

// scribbler overwrites its training and prediction inputs.
type scribbler struct{}

func (scribbler) Fit(x *mat.Dense, y *mat.VecDense) error {
	x.Set(0, 0, -999)
	y.SetVec(0, -999)
	return nil
}

func (scribbler) Predict(x *mat.Dense) (*mat.VecDense, error) {
	x.Set(0, 0, -999)
	r, _ := x.Dims()
	return mat.NewVecDense(r, nil), nil
}

func identityData(n int) (*mat.Dense, *mat.VecDense) {
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, float64(n-i))
		y.SetVec(i, float64(i))
	}
	return x, y
}

func TestFitPredictScore(t *testing.T) {
	x, y := identityData(10)
	score, err := FitPredictScore(firstCol{}, x, y, x, y, nil)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if score != 1 {
		t.Fatalf("expected score 1; got %v", score)
	}
}

func TestFitPredictScoreConstantTarget(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{5, 5, 5, 5})
	_, err := FitPredictScore(firstCol{}, x, y, x, y, nil)
	if !errors.Is(err, ErrConstantTarget) {
		t.Fatalf("expected ErrConstantTarget; got %v", err)
	}
}

func TestFitPredictScoreEstimatorError(t *testing.T) {
	x, y := identityData(4)
	_, err := FitPredictScore(broken{}, x, y, x, y, nil)
	var fitErr EstimatorFitError
	if !errors.As(err, &fitErr) || fitErr.Fold != -1 {
		t.Fatalf("expected estimator fit error; got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected wrapped cause; got %v", err)
	}
}

func TestFitPredictScorePredictError(t *testing.T) {
	x, y := identityData(4)
	_, err := FitPredictScore(mute{}, x, y, x, y, nil)
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected wrapped cause; got %v", err)
	}
	var fitErr EstimatorFitError
	if errors.As(err, &fitErr) {
		t.Fatalf("expected a plain prediction error; got %v", err)
	}
}

func TestFitPredictScoreDoesNotMutate(t *testing.T) {
	x, y := identityData(4)
	want := mat.DenseCopyOf(x)
	wantY := mat.VecDenseCopyOf(y)
	if _, err := FitPredictScore(scribbler{}, x, y, x, y, MSE); err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !mat.Equal(x, want) || !mat.Equal(y, wantY) {
		t.Fatalf("inputs were mutated")
	}
}

func TestCrossValidate(t *testing.T) {
	x, y := identityData(100)
	scores, err := CrossValidate(func() ml.Estimator { return firstCol{} }, x, y, 5, 1, nil)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("expected 5 scores; got %d", len(scores))
	}
	for i, s := range scores {
		if s != 1 {
			t.Fatalf("expected score 1 on fold %d; got %v", i, s)
		}
	}
	again, err := CrossValidate(func() ml.Estimator { return firstCol{} }, x, y, 5, 1, nil)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	for i := range scores {
		if scores[i] != again[i] {
			t.Fatalf("expected deterministic scores")
		}
	}
}

func TestCrossValidateFoldError(t *testing.T) {
	x, y := identityData(10)
	_, err := CrossValidate(func() ml.Estimator { return broken{} }, x, y, 2, 1, nil)
	var fitErr EstimatorFitError
	if !errors.As(err, &fitErr) || fitErr.Fold < 0 {
		t.Fatalf("expected estimator fit error with fold; got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected wrapped cause; got %v", err)
	}
}

func TestCrossValidateInvalidFolds(t *testing.T) {
	x, y := identityData(10)
	_, err := CrossValidate(func() ml.Estimator { return firstCol{} }, x, y, 1, 1, nil)
	var invalid split.InvalidFoldCountError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected invalid fold count; got %v", err)
	}
}

func TestComplement(t *testing.T) {
	got := complement(5, []int{1, 3})
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v; got %v", want, got)
		}
	}
}
