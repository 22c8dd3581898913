package nn

import (
	"fmt"
	"strings"

	"github.com/grad-ml/grad/internal/autodiff"
)

// LayerSpec describes one layer of an MLP: its output width and the
// activation applied by its neurons.
type LayerSpec struct {
	Out        int
	Activation Activation
}

// MLP chains layers so each layer's output list is the next layer's input
// list.
//
// Example:
//
//	// 2 inputs -> two hidden ReLU layers of 16 -> 1 linear output
//	model := nn.NewMLP(2, []nn.LayerSpec{
//	    {Out: 16, Activation: nn.ReLU},
//	    {Out: 16, Activation: nn.ReLU},
//	    {Out: 1, Activation: nn.Identity},
//	})
type MLP struct {
	layers []*Layer
}

// NewMLP creates a multi-layer perceptron from an input width and an ordered
// list of layer specifications. Panics if no layers are given or any width
// is not positive.
func NewMLP(inputs int, specs []LayerSpec) *MLP {
	if len(specs) == 0 {
		panic("nn: MLP needs at least one layer")
	}

	layers := make([]*Layer, len(specs))
	width := inputs
	for i, spec := range specs {
		layers[i] = NewLayer(width, spec.Out, spec.Activation)
		width = spec.Out
	}
	return &MLP{layers: layers}
}

// Forward threads the input through every layer in order.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := inputs
	for _, layer := range m.layers {
		outputs = layer.Forward(outputs)
	}
	return outputs
}

// ForwardFloats promotes raw numbers to leaf nodes and calls Forward.
func (m *MLP) ForwardFloats(inputs []float64) []*autodiff.Value {
	return m.Forward(autodiff.Values(inputs))
}

// Parameters returns all weights and biases, in layer order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (m *MLP) ZeroGrad() {
	zeroGrads(m.Parameters())
}

// InputWidth returns the width of the first layer's input.
func (m *MLP) InputWidth() int {
	return m.layers[0].InputWidth()
}

// OutputWidth returns the width of the last layer's output.
func (m *MLP) OutputWidth() int {
	return m.layers[len(m.layers)-1].OutputWidth()
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	descs := make([]string, len(m.layers))
	for i, layer := range m.layers {
		descs[i] = layer.String()
	}
	return fmt.Sprintf("MLP(%s)", strings.Join(descs, ", "))
}
