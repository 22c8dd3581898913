package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Neuron is a single parameterized unit: a fixed-width weighted sum plus
// bias, followed by an activation.
//
// Forward contract: given an input slice matching the neuron's width, it
// produces one node equal to activation(Σ wᵢxᵢ + b). Weights and bias are
// leaf nodes initialized uniformly in [-1, 1).
//
// Example:
//
//	n := nn.NewNeuron(3, nn.ReLU)
//	out := n.ForwardFloats([]float64{1, 0, -2})
type Neuron struct {
	weights    []*autodiff.Value
	bias       *autodiff.Value
	activation Activation
}

// NewNeuron creates a neuron with the given input width and activation.
// Panics if the width is not positive.
func NewNeuron(inputs int, activation Activation) *Neuron {
	if inputs <= 0 {
		panic(fmt.Sprintf("nn: neuron input width must be positive, got %d", inputs))
	}

	weights := make([]*autodiff.Value, inputs)
	for i := range weights {
		weights[i] = autodiff.New(initWeight())
	}

	return &Neuron{
		weights:    weights,
		bias:       autodiff.New(initWeight()),
		activation: activation,
	}
}

// Forward computes activation(Σ wᵢxᵢ + b) as a new graph node.
// Panics if the input width does not match the neuron's.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}

	sum := n.bias
	for i, w := range n.weights {
		sum = sum.Add(w.Mul(inputs[i]))
	}

	return n.activation.Apply(sum)
}

// ForwardFloats promotes raw numbers to leaf nodes and calls Forward.
func (n *Neuron) ForwardFloats(inputs []float64) *autodiff.Value {
	return n.Forward(autodiff.Values(inputs))
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	zeroGrads(n.Parameters())
}

// InputWidth returns the number of inputs the neuron accepts.
func (n *Neuron) InputWidth() int {
	return len(n.weights)
}

// Activation returns the neuron's activation selector.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(%d, %s)", len(n.weights), n.activation)
}
