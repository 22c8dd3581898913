package autodiff

// Operation represents a differentiable primitive in the computation graph.
// Each operation records its input nodes during the forward pass and computes
// input gradient contributions during the backward pass.
//
// Only four primitives carry the rules the derived operations reduce to
// (add, mul, pow, relu); exp, log and tanh add their own rules. Everything
// else — neg, sub, div, sigmoid, the loss helpers — is composed from these
// and introduces no new backward rule.
type Operation interface {
	// Backward computes the gradient contribution for each input given the
	// output node's accumulated gradient. The returned slice is parallel to
	// Inputs().
	//
	// Example for addOp:
	//   inputs: [a, b]
	//   outGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both)
	Backward(outGrad float64) []float64

	// Inputs returns the operand nodes of this operation.
	Inputs() []*Value

	// Name returns the operation tag (e.g. "+", "*", "relu").
	Name() string
}
