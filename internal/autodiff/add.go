package autodiff

// addOp represents addition: out = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outGrad
//   - d(a+b)/db = 1, so grad_b = outGrad
type addOp struct {
	inputs [2]*Value // [a, b]
}

// Add returns a new node computing v + other.
func (v *Value) Add(other *Value) *Value {
	return newFromOp(v.data+other.data, &addOp{inputs: [2]*Value{v, other}})
}

// AddScalar returns a new node computing v + c, promoting c to a leaf.
//
// Addition commutes, so this also covers the reversed c + v form.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(New(c))
}

// Backward routes the output gradient unchanged to both inputs.
func (op *addOp) Backward(outGrad float64) []float64 {
	return []float64{outGrad, outGrad}
}

// Inputs returns the operand nodes [a, b].
func (op *addOp) Inputs() []*Value {
	return op.inputs[:]
}

// Name returns the operation tag.
func (op *addOp) Name() string {
	return "+"
}
