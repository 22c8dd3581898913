package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grad-ml/grad/internal/autodiff"
	"github.com/grad-ml/grad/internal/nn"
)

// setParams overwrites a module's parameters with fixed values so forward
// results are deterministic.
func setParams(params []*autodiff.Value, values []float64) {
	for i, p := range params {
		p.SetData(values[i])
	}
}

// TestNeuron_Creation tests neuron initialization.
func TestNeuron_Creation(t *testing.T) {
	n := nn.NewNeuron(3, nn.ReLU)

	assert.Equal(t, 3, n.InputWidth())
	assert.Equal(t, nn.ReLU, n.Activation())
	assert.Len(t, n.Parameters(), 4, "3 weights + 1 bias")

	for _, p := range n.Parameters() {
		assert.True(t, p.IsLeaf(), "parameters must be leaf nodes")
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestNeuron_Forward tests the weighted-sum-plus-bias contract with fixed
// parameters.
func TestNeuron_Forward(t *testing.T) {
	n := nn.NewNeuron(2, nn.Identity)
	setParams(n.Parameters(), []float64{0.5, -0.3, 0.1}) // w0, w1, b

	out := n.ForwardFloats([]float64{1.0, 2.0})

	// 0.5*1 - 0.3*2 + 0.1 = 0
	assert.InDelta(t, 0.0, out.Data(), 1e-12)
}

// TestNeuron_ForwardReLU tests that a negative pre-activation is clipped.
func TestNeuron_ForwardReLU(t *testing.T) {
	n := nn.NewNeuron(2, nn.ReLU)
	setParams(n.Parameters(), []float64{0.5, -0.3, 0.1})

	out := n.ForwardFloats([]float64{0.0, 2.0})

	// pre-activation: -0.3*2 + 0.1 = -0.5 -> 0
	assert.Equal(t, 0.0, out.Data())
}

// TestNeuron_ForwardNodes tests that existing nodes pass through without
// re-promotion, so gradients reach the caller's inputs.
func TestNeuron_ForwardNodes(t *testing.T) {
	n := nn.NewNeuron(2, nn.Identity)
	setParams(n.Parameters(), []float64{2.0, -1.0, 0.0})

	x := autodiff.Values([]float64{3.0, 4.0})
	out := n.Forward(x)
	out.Backward()

	// d(out)/dx_i = w_i
	assert.Equal(t, 2.0, x[0].Grad())
	assert.Equal(t, -1.0, x[1].Grad())
}

// TestNeuron_WidthMismatch tests the dimension check.
func TestNeuron_WidthMismatch(t *testing.T) {
	n := nn.NewNeuron(3, nn.Tanh)

	assert.Panics(t, func() { n.ForwardFloats([]float64{1, 2}) })
	assert.Panics(t, func() { nn.NewNeuron(0, nn.Tanh) })
}

// TestLayer tests per-neuron outputs and parameter collection.
func TestLayer(t *testing.T) {
	l := nn.NewLayer(3, 4, nn.Tanh)

	assert.Equal(t, 3, l.InputWidth())
	assert.Equal(t, 4, l.OutputWidth())
	assert.Len(t, l.Parameters(), 16, "4 neurons x (3 weights + 1 bias)")

	out := l.ForwardFloats([]float64{1, -1, 0.5})
	require.Len(t, out, 4, "one output node per neuron")

	for _, o := range out {
		assert.False(t, o.IsLeaf())
		assert.GreaterOrEqual(t, o.Data(), -1.0)
		assert.LessOrEqual(t, o.Data(), 1.0)
	}
}

// TestMLP_Shape tests construction from (output width, activation) pairs.
func TestMLP_Shape(t *testing.T) {
	m := nn.NewMLP(3, []nn.LayerSpec{
		{Out: 4, Activation: nn.ReLU},
		{Out: 4, Activation: nn.ReLU},
		{Out: 1, Activation: nn.Identity},
	})

	assert.Equal(t, 3, m.InputWidth())
	assert.Equal(t, 1, m.OutputWidth())
	// 3*4+4 + 4*4+4 + 4*1+1 = 16 + 20 + 5
	assert.Len(t, m.Parameters(), 41)

	out := m.ForwardFloats([]float64{2.0, 3.0, -1.0})
	require.Len(t, out, 1)

	assert.Panics(t, func() { nn.NewMLP(3, nil) })
}

// TestMLP_GradientFlow tests that one backward pass from the output reaches
// every parameter that participated in the forward pass.
func TestMLP_GradientFlow(t *testing.T) {
	m := nn.NewMLP(2, []nn.LayerSpec{
		{Out: 3, Activation: nn.Tanh},
		{Out: 1, Activation: nn.Identity},
	})

	out := m.ForwardFloats([]float64{0.5, -0.25})[0]
	out.Backward()

	nonZero := 0
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	// Tanh saturates but does not kill gradients, so with uniform init every
	// parameter should receive some gradient.
	assert.Greater(t, nonZero, 0, "gradients must flow into the parameters")
}

// TestMLP_ZeroGrad tests resetting accumulated parameter gradients.
func TestMLP_ZeroGrad(t *testing.T) {
	m := nn.NewMLP(2, []nn.LayerSpec{
		{Out: 2, Activation: nn.Sigmoid},
		{Out: 1, Activation: nn.Identity},
	})

	m.ForwardFloats([]float64{1, 2})[0].Backward()
	m.ZeroGrad()

	for _, p := range m.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestModuleInterface tests that all composition types satisfy Module.
func TestModuleInterface(t *testing.T) {
	var _ nn.Module = nn.NewNeuron(2, nn.ReLU)
	var _ nn.Module = nn.NewLayer(2, 2, nn.ReLU)
	var _ nn.Module = nn.NewMLP(2, []nn.LayerSpec{{Out: 1, Activation: nn.Identity}})
}

// TestString tests the debug descriptions.
func TestString(t *testing.T) {
	m := nn.NewMLP(2, []nn.LayerSpec{
		{Out: 3, Activation: nn.ReLU},
		{Out: 1, Activation: nn.Identity},
	})

	assert.Equal(t, "MLP(Layer(2 -> 3, relu), Layer(3 -> 1, identity))", m.String())
}
