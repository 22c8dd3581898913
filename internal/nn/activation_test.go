package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grad-ml/grad/internal/autodiff"
)

// TestActivation_Apply tests each selector against its closed form.
func TestActivation_Apply(t *testing.T) {
	const in = 0.5

	tests := []struct {
		activation Activation
		want       float64
	}{
		{Identity, in},
		{ReLU, in},
		{Sigmoid, 1 / (1 + math.Exp(-in))},
		{Tanh, math.Tanh(in)},
	}
	for _, tt := range tests {
		t.Run(tt.activation.String(), func(t *testing.T) {
			x := autodiff.New(in)
			out := tt.activation.Apply(x)
			assert.InDelta(t, tt.want, out.Data(), 1e-12)
		})
	}
}

// TestActivation_IdentityPassThrough tests that Identity adds no node.
func TestActivation_IdentityPassThrough(t *testing.T) {
	x := autodiff.New(-2.0)
	assert.Same(t, x, Identity.Apply(x))
}

// TestActivation_Unknown tests the closed-set check.
func TestActivation_Unknown(t *testing.T) {
	bad := Activation(42)
	assert.Panics(t, func() { bad.Apply(autodiff.New(1)) })
	assert.Equal(t, "Activation(42)", bad.String())
}
