// Package nn implements neural network modules composed from scalar autodiff
// nodes.
//
// This package provides the building blocks for small fully connected
// networks:
//   - Module interface: base interface for all NN components
//   - Neuron: weighted sum plus bias with an activation
//   - Layer: a list of neurons of equal input width
//   - MLP: layers chained so each output list feeds the next layer
//   - Loss functions: MSE, BCE, hinge
//
// Every forward pass is a pure composition of the autodiff package's scalar
// operations, so gradients for all weights and biases come out of a single
// Backward call on the loss node.
package nn

import "github.com/grad-ml/grad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules expose their trainable parameter nodes so an optimizer can update
// them, and zero those parameters' gradients between training iterations.
// Forward methods are defined per concrete type because widths differ: a
// Neuron maps a slice of nodes to one node, a Layer and an MLP map a slice
// to a slice.
type Module interface {
	// Parameters returns all trainable parameter nodes of this module,
	// including nested module parameters. Modules without parameters return
	// an empty slice.
	Parameters() []*autodiff.Value

	// ZeroGrad resets the gradient of every parameter. Call before each
	// backward pass to avoid accumulating gradients across iterations.
	ZeroGrad()
}

// zeroGrads resets the gradients of a parameter slice.
func zeroGrads(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
