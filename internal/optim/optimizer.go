// Package optim implements optimization algorithms over scalar parameter
// nodes.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//
// Optimizers read each parameter node's accumulated gradient and update its
// value in place, then the caller zeroes gradients before the next backward
// pass.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := lossForBatch(model, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import "github.com/grad-ml/grad/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter, reading the
	// gradients accumulated by the most recent Backward call.
	Step()

	// ZeroGrad resets all parameter gradients. Call before each backward
	// pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for scheduling during training.
	SetLR(lr float64)
}

// zeroGrads resets the gradients of a parameter slice.
func zeroGrads(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
