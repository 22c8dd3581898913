package autodiff

// mulOp represents multiplication: out = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outGrad * b
//   - d(a*b)/db = a, so grad_b = outGrad * a
type mulOp struct {
	inputs [2]*Value // [a, b]
}

// Mul returns a new node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	return newFromOp(v.data*other.data, &mulOp{inputs: [2]*Value{v, other}})
}

// MulScalar returns a new node computing v * c, promoting c to a leaf.
//
// Multiplication commutes, so this also covers the reversed c * v form.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(New(c))
}

// Backward computes input gradients using each opposite operand's value.
func (op *mulOp) Backward(outGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{outGrad * b.data, outGrad * a.data}
}

// Inputs returns the operand nodes [a, b].
func (op *mulOp) Inputs() []*Value {
	return op.inputs[:]
}

// Name returns the operation tag.
func (op *mulOp) Name() string {
	return "*"
}
