// Package eval fits pluggable estimators on data partitions and
// scores their predictions.  It drives k-fold cross-validation over
// the partitions produced by the split package.
package eval

import (
	"fmt"

	"git.sr.ht/~flobar/tabeval/pkg/tabeval/ml"
	"git.sr.ht/~flobar/tabeval/pkg/tabeval/split"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// EstimatorFitError wraps a failure of the underlying estimator with
// the fold it occurred on.  Fold is -1 outside cross-validation.
type EstimatorFitError struct {
	Fold int
	Err  error
}

func (e EstimatorFitError) Error() string {
	if e.Fold < 0 {
		return fmt.Sprintf("estimator fit failed: %v", e.Err)
	}
	return fmt.Sprintf("estimator fit failed on fold %d: %v", e.Fold, e.Err)
}

func (e EstimatorFitError) Unwrap() error {
	return e.Err
}

// FitPredictScore fits the estimator on the training partition,
// predicts on the test partition and scores the predictions with the
// given metric.  A nil metric means R2.  The estimator receives
// copies of the inputs, so the caller's data is never mutated.
func FitPredictScore(est ml.Estimator, xTrain *mat.Dense, yTrain *mat.VecDense,
	xTest *mat.Dense, yTest *mat.VecDense, metric Metric) (float64, error) {
	return fitPredictScore(est, xTrain, yTrain, xTest, yTest, metric, -1)
}

func fitPredictScore(est ml.Estimator, xTrain *mat.Dense, yTrain *mat.VecDense,
	xTest *mat.Dense, yTest *mat.VecDense, metric Metric, fold int) (float64, error) {
	if metric == nil {
		metric = R2
	}
	if err := est.Fit(mat.DenseCopyOf(xTrain), mat.VecDenseCopyOf(yTrain)); err != nil {
		return 0, EstimatorFitError{Fold: fold, Err: err}
	}
	pred, err := est.Predict(mat.DenseCopyOf(xTest))
	if err != nil {
		return 0, fmt.Errorf("fitPredictScore: %w", err)
	}
	score, err := metric(yTest, pred)
	if err != nil {
		return 0, fmt.Errorf("fitPredictScore: %w", err)
	}
	return score, nil
}

// CrossValidate evaluates k-fold cross-validation scores.  Each fold
// is scored with a fresh estimator from the factory, trained on the
// remaining folds' rows.  The folds are evaluated concurrently and
// the scores are collected by fold index, so the result is
// deterministic for identical arguments.  Aggregation is left to the
// caller.
func CrossValidate(factory func() ml.Estimator, x *mat.Dense, y *mat.VecDense,
	k int, seed int64, metric Metric) ([]float64, error) {
	n, _ := x.Dims()
	if y.Len() != n {
		return nil, fmt.Errorf("crossValidate: %d targets for %d rows", y.Len(), n)
	}
	folds, err := split.KFold(n, k, seed)
	if err != nil {
		return nil, fmt.Errorf("crossValidate: %w", err)
	}
	scores := make([]float64, k)
	var g errgroup.Group
	for i := range folds {
		i := i
		g.Go(func() error {
			train := complement(n, folds[i])
			score, err := fitPredictScore(factory(),
				TakeRows(x, train), TakeVec(y, train),
				TakeRows(x, folds[i]), TakeVec(y, folds[i]),
				metric, i)
			if err != nil {
				return fmt.Errorf("crossValidate fold %d: %w", i, err)
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// complement returns the indices of [0,n) not in the hold-out group,
// in ascending order.
func complement(n int, holdout []int) []int {
	mask := make([]bool, n)
	for _, i := range holdout {
		mask[i] = true
	}
	out := make([]int, 0, n-len(holdout))
	for i := 0; i < n; i++ {
		if !mask[i] {
			out = append(out, i)
		}
	}
	return out
}

// TakeRows returns a new matrix holding the given rows of x in the
// given order.
func TakeRows(x *mat.Dense, rows []int) *mat.Dense {
	_, c := x.Dims()
	out := mat.NewDense(len(rows), c, nil)
	buf := make([]float64, c)
	for i, r := range rows {
		mat.Row(buf, r, x)
		out.SetRow(i, buf)
	}
	return out
}

// TakeVec returns a new vector holding the given entries of y in the
// given order.
func TakeVec(y *mat.VecDense, rows []int) *mat.VecDense {
	out := mat.NewVecDense(len(rows), nil)
	for i, r := range rows {
		out.SetVec(i, y.AtVec(r))
	}
	return out
}
