package ml

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KNN implements a k-nearest-neighbour regressor.  Predictions are
// the mean target of the K training rows closest in euclidean
// distance.
type KNN struct {
	K int
	x *mat.Dense
	y *mat.VecDense
}

// Fit stores the training data.
func (knn *KNN) Fit(x *mat.Dense, y *mat.VecDense) error {
	if knn.K <= 0 {
		return fmt.Errorf("fit: invalid number of neighbors %d", knn.K)
	}
	r, _ := x.Dims()
	if knn.K > r {
		return fmt.Errorf("fit: %d neighbors exceed %d training rows", knn.K, r)
	}
	knn.x = mat.DenseCopyOf(x)
	knn.y = mat.VecDenseCopyOf(y)
	return nil
}

// Predict calculates the predictions for the given values.
func (knn *KNN) Predict(x *mat.Dense) (*mat.VecDense, error) {
	if knn.x == nil {
		return nil, fmt.Errorf("predict: model is not fitted")
	}
	r, c := x.Dims()
	ntrain, ctrain := knn.x.Dims()
	if c != ctrain {
		return nil, fmt.Errorf("predict: %d columns do not match %d training columns", c, ctrain)
	}
	out := mat.NewVecDense(r, nil)
	row := make([]float64, c)
	trainRow := make([]float64, c)
	dists := make([]float64, ntrain)
	order := make([]int, ntrain)
	for i := 0; i < r; i++ {
		mat.Row(row, i, x)
		for j := 0; j < ntrain; j++ {
			mat.Row(trainRow, j, knn.x)
			dists[j] = floats.Distance(row, trainRow, 2)
			order[j] = j
		}
		sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
		var sum float64
		for _, j := range order[:knn.K] {
			sum += knn.y.AtVec(j)
		}
		out.SetVec(i, sum/float64(knn.K))
	}
	return out, nil
}
