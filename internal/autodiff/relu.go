package autodiff

// reluOp represents a rectified linear unit: out = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// ReLU is not differentiable at x = 0; the subgradient 0 is used there,
// matching the strict x > 0 comparison in the forward pass.
type reluOp struct {
	input *Value // x
}

// ReLU returns a new node computing max(0, v).
func (v *Value) ReLU() *Value {
	data := v.data
	if data < 0 {
		data = 0
	}
	return newFromOp(data, &reluOp{input: v})
}

// Backward passes the output gradient through only where the input was
// positive.
func (op *reluOp) Backward(outGrad float64) []float64 {
	if op.input.data > 0 {
		return []float64{outGrad}
	}
	return []float64{0}
}

// Inputs returns the operand node [x].
func (op *reluOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Name returns the operation tag.
func (op *reluOp) Name() string {
	return "relu"
}
