package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Layer is an ordered list of neurons sharing the same input width.
//
// Forward maps a fixed-width input slice to one output node per neuron.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of outputs neurons, each with the given input
// width and activation. Panics if either width is not positive.
func NewLayer(inputs, outputs int, activation Activation) *Layer {
	if outputs <= 0 {
		panic(fmt.Sprintf("nn: layer output width must be positive, got %d", outputs))
	}

	neurons := make([]*Neuron, outputs)
	for i := range neurons {
		neurons[i] = NewNeuron(inputs, activation)
	}
	return &Layer{neurons: neurons}
}

// Forward computes one output node per neuron, in neuron order.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// ForwardFloats promotes raw numbers to leaf nodes and calls Forward.
func (l *Layer) ForwardFloats(inputs []float64) []*autodiff.Value {
	return l.Forward(autodiff.Values(inputs))
}

// Parameters returns the parameters of all neurons, in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (l *Layer) ZeroGrad() {
	zeroGrads(l.Parameters())
}

// InputWidth returns the input width shared by the layer's neurons.
func (l *Layer) InputWidth() int {
	return l.neurons[0].InputWidth()
}

// OutputWidth returns the number of neurons in the layer.
func (l *Layer) OutputWidth() int {
	return len(l.neurons)
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(%d -> %d, %s)", l.InputWidth(), l.OutputWidth(), l.neurons[0].Activation())
}
