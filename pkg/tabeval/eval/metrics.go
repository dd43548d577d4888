package eval

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrConstantTarget marks an R² computation over a constant target
// vector, for which the coefficient of determination is undefined.
var ErrConstantTarget = errors.New("constant target")

// Metric computes a goodness-of-fit score from true and predicted
// target vectors.
type Metric func(yTrue, yPred *mat.VecDense) (float64, error)

func checkLens(op string, yTrue, yPred *mat.VecDense) error {
	if yTrue.Len() == 0 {
		return fmt.Errorf("%s: empty target", op)
	}
	if yTrue.Len() != yPred.Len() {
		return fmt.Errorf("%s: %d predictions for %d targets", op, yPred.Len(), yTrue.Len())
	}
	return nil
}

// R2 computes the coefficient of determination.  The target mean is
// computed from yTrue itself, never from training data.
func R2(yTrue, yPred *mat.VecDense) (float64, error) {
	if err := checkLens("r2", yTrue, yPred); err != nil {
		return 0, err
	}
	n := yTrue.Len()
	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)
	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		d := yTrue.AtVec(i) - mean
		ssTot += d * d
		r := yTrue.AtVec(i) - yPred.AtVec(i)
		ssRes += r * r
	}
	if ssTot == 0 {
		return 0, fmt.Errorf("r2: %w", ErrConstantTarget)
	}
	return 1 - ssRes/ssTot, nil
}

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	if err := checkLens("mse", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < yTrue.Len(); i++ {
		d := yPred.AtVec(i) - yTrue.AtVec(i)
		sum += d * d
	}
	return sum / float64(yTrue.Len()), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, fmt.Errorf("rmse: %v", err)
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	if err := checkLens("mae", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < yTrue.Len(); i++ {
		sum += math.Abs(yPred.AtVec(i) - yTrue.AtVec(i))
	}
	return sum / float64(yTrue.Len()), nil
}

// Accuracy computes the fraction of exactly matching predictions.
// It is meant for integer class codes.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	if err := checkLens("accuracy", yTrue, yPred); err != nil {
		return 0, err
	}
	var hits int
	for i := 0; i < yTrue.Len(); i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			hits++
		}
	}
	return float64(hits) / float64(yTrue.Len()), nil
}
