package autodiff

import "math"

// logOp represents the natural logarithm: out = ln(x).
//
// Backward pass:
//   - d(ln(x))/dx = 1/x, so grad_x = outGrad / x
//
// Inputs must be positive for a finite result. A zero or negative input
// yields -Inf or NaN per math.Log, which propagates through forward and
// backward instead of raising.
type logOp struct {
	input *Value // x
}

// Log returns a new node computing the natural logarithm of v.
func (v *Value) Log() *Value {
	return newFromOp(math.Log(v.data), &logOp{input: v})
}

// Backward computes the input gradient via the reciprocal rule.
func (op *logOp) Backward(outGrad float64) []float64 {
	return []float64{outGrad / op.input.data}
}

// Inputs returns the operand node [x].
func (op *logOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Name returns the operation tag.
func (op *logOp) Name() string {
	return "log"
}
