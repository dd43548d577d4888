package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Logit implements binary logistic regression fit by gradient
// descent.  Predictions are thresholded probabilities; a zero
// Threshold means 0.5.
type Logit struct {
	LearningRate float64
	Ntrain       int
	Threshold    float64
	weights      *mat.VecDense
}

func (lr *Logit) gradient(x *mat.Dense, y, p, out *mat.VecDense) float64 {
	r, _ := x.Dims()
	p.SubVec(p, y)
	err := averageError(p)
	out.MulVec(x.T(), p)
	out.ScaleVec(1.0/float64(r), out)
	return err
}

func averageError(dif *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < dif.Len(); i++ {
		sum += dif.AtVec(i) * dif.AtVec(i)
	}
	return math.Sqrt(sum) / float64(dif.Len())
}

func sigmoid(x *mat.VecDense) *mat.VecDense {
	for i := 0; i < x.Len(); i++ {
		x.SetVec(i, 1.0/(1.0+math.Exp(-x.AtVec(i))))
	}
	return x
}

// Weights returns the weights of the logistic regression model.
func (lr *Logit) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}
	return lr.weights.RawVector().Data
}

func (lr *Logit) predictVec(x *mat.Dense, out *mat.VecDense) {
	out.MulVec(x, lr.weights)
	sigmoid(out)
}

// PredictProb calculates the probability predictions for the given
// values.
func (lr *Logit) PredictProb(x *mat.Dense) (*mat.VecDense, error) {
	if lr.weights == nil {
		return nil, fmt.Errorf("predictProb: model is not fitted")
	}
	var tmp mat.VecDense
	lr.predictVec(x, &tmp)
	return &tmp, nil
}

// Predict calculates the class predictions for the given values.
func (lr *Logit) Predict(x *mat.Dense) (*mat.VecDense, error) {
	tmp, err := lr.PredictProb(x)
	if err != nil {
		return nil, err
	}
	t := lr.Threshold
	if t == 0 {
		t = 0.5
	}
	for i := 0; i < tmp.Len(); i++ {
		tmp.SetVec(i, Bool(tmp.AtVec(i) > t))
	}
	return tmp, nil
}

// Fit fits the logistic regression model by gradient descent,
// stopping early once the average error stops improving.
func (lr *Logit) Fit(x *mat.Dense, y *mat.VecDense) error {
	if lr.LearningRate <= 0 || lr.Ntrain <= 0 {
		return fmt.Errorf("fit: invalid learning rate %g or iterations %d",
			lr.LearningRate, lr.Ntrain)
	}
	_, c := x.Dims()
	lr.weights = mat.NewVecDense(c, nil)
	errb := math.MaxFloat64
	var pred, gradient mat.VecDense
	for i := 0; i < lr.Ntrain; i++ {
		lr.predictVec(x, &pred)
		err := lr.gradient(x, y, &pred, &gradient)
		if errb < err {
			return nil
		}
		gradient.ScaleVec(lr.LearningRate, &gradient)
		lr.weights.SubVec(lr.weights, &gradient)
		errb = err
	}
	return nil
}
