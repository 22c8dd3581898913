package autodiff

import (
	"fmt"
	"math"
)

// powOp represents exponentiation by a constant: out = x^k.
//
// The exponent is a plain float64, not a node: raising a node to another
// node's power is unsupported, and keeping k constant is what makes the
// single backward rule below sufficient.
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1), so grad_x = outGrad * k * x^(k-1)
//
// Degenerate combinations follow math.Pow: 0 raised to a negative exponent
// yields +Inf, a negative base with a fractional exponent yields NaN. Both
// propagate through forward and backward rather than raising.
type powOp struct {
	input    *Value // x
	exponent float64
}

// Pow returns a new node computing v raised to the constant exponent k.
func (v *Value) Pow(k float64) *Value {
	return newFromOp(math.Pow(v.data, k), &powOp{input: v, exponent: k})
}

// Reciprocal returns a new node computing 1/v, expressed as v^(-1).
func (v *Value) Reciprocal() *Value {
	return v.Pow(-1)
}

// Backward computes the input gradient via the power rule.
func (op *powOp) Backward(outGrad float64) []float64 {
	x := op.input.data
	return []float64{outGrad * op.exponent * math.Pow(x, op.exponent-1)}
}

// Inputs returns the operand node [x].
func (op *powOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Name returns the operation tag, including the exponent (e.g. "pow(2)").
func (op *powOp) Name() string {
	return fmt.Sprintf("pow(%g)", op.exponent)
}
