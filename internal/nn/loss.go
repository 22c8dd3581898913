package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Loss functions reduce prediction and target slices to a single scalar
// node, composed entirely from the engine's primitives so the backward pass
// reaches every model parameter through the usual chain rule.

// MSELoss returns the mean squared error over paired predictions and
// targets. Panics if the slices differ in length or are empty.
func MSELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	checkPairs("MSELoss", len(preds), len(targets))

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = p.SquaredError(targets[i])
	}
	return autodiff.Sum(terms).DivScalar(float64(len(terms)))
}

// BCELoss returns the mean binary cross-entropy -[y·ln(p) + (1-y)·ln(1-p)]
// over paired predictions and targets.
//
// Predictions are expected in (0, 1), typically from a Sigmoid output;
// targets are expected in {0, 1}. A prediction of exactly 0 or 1 produces a
// non-finite loss per the engine's log semantics.
func BCELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	checkPairs("BCELoss", len(preds), len(targets))

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		y := targets[i]
		pos := y.Mul(p.Log())
		neg := autodiff.New(1).Sub(y).Mul(autodiff.New(1).Sub(p).Log())
		terms[i] = pos.Add(neg).Neg()
	}
	return autodiff.Sum(terms).DivScalar(float64(len(terms)))
}

// HingeLoss returns the mean max-margin loss max(0, 1 - y·score) over paired
// scores and targets, with targets in {-1, +1}.
func HingeLoss(scores, targets []*autodiff.Value) *autodiff.Value {
	checkPairs("HingeLoss", len(scores), len(targets))

	terms := make([]*autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = autodiff.New(1).Sub(targets[i].Mul(s)).ReLU()
	}
	return autodiff.Sum(terms).DivScalar(float64(len(terms)))
}

// L2Penalty returns alpha times the sum of squared parameters, for weight
// regularization on top of a data loss.
func L2Penalty(params []*autodiff.Value, alpha float64) *autodiff.Value {
	terms := make([]*autodiff.Value, len(params))
	for i, p := range params {
		terms[i] = p.Pow(2)
	}
	return autodiff.Sum(terms).MulScalar(alpha)
}

func checkPairs(name string, preds, targets int) {
	if preds == 0 {
		panic(fmt.Sprintf("nn: %s needs at least one prediction", name))
	}
	if preds != targets {
		panic(fmt.Sprintf("nn: %s got %d predictions but %d targets", name, preds, targets))
	}
}
