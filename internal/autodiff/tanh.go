package autodiff

import "math"

// tanhOp represents the hyperbolic tangent: out = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh(x)², so grad_x = outGrad * (1 - out²)
//
// Like exp, the forward result is cached and reused in the backward pass.
type tanhOp struct {
	input  *Value // x
	output float64
}

// Tanh returns a new node computing tanh(v).
func (v *Value) Tanh() *Value {
	op := &tanhOp{input: v, output: math.Tanh(v.data)}
	return newFromOp(op.output, op)
}

// Backward computes the input gradient from the cached forward result.
func (op *tanhOp) Backward(outGrad float64) []float64 {
	return []float64{outGrad * (1 - op.output*op.output)}
}

// Inputs returns the operand node [x].
func (op *tanhOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Name returns the operation tag.
func (op *tanhOp) Name() string {
	return "tanh"
}
