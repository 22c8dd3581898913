package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Activation selects the nonlinearity applied to a neuron's weighted sum.
//
// The set is closed: Identity (no nonlinearity, typical for output layers),
// ReLU, Sigmoid and Tanh. Sigmoid and Tanh are themselves compositions of
// the engine's primitives, so no activation introduces a backward rule of
// its own.
type Activation int

const (
	// Identity applies no nonlinearity.
	Identity Activation = iota
	// ReLU applies max(0, x).
	ReLU
	// Sigmoid applies 1 / (1 + e^(-x)).
	Sigmoid
	// Tanh applies the hyperbolic tangent.
	Tanh
)

// Apply returns the activation applied to x as a new graph node.
// Identity returns x unchanged.
func (a Activation) Apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Identity:
		return x
	case ReLU:
		return x.ReLU()
	case Sigmoid:
		return x.Sigmoid()
	case Tanh:
		return x.Tanh()
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", a))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}
