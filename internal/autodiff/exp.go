package autodiff

import "math"

// expOp represents the natural exponential: out = e^x.
//
// Backward pass:
//   - d(e^x)/dx = e^x, so grad_x = outGrad * out
//
// The forward result is reused in the backward pass instead of recomputing
// the exponential.
type expOp struct {
	input  *Value // x
	output float64
}

// Exp returns a new node computing e^v.
func (v *Value) Exp() *Value {
	op := &expOp{input: v, output: math.Exp(v.data)}
	return newFromOp(op.output, op)
}

// Backward computes the input gradient using the cached forward result.
func (op *expOp) Backward(outGrad float64) []float64 {
	return []float64{outGrad * op.output}
}

// Inputs returns the operand node [x].
func (op *expOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Name returns the operation tag.
func (op *expOp) Name() string {
	return "exp"
}
