// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a *Value allocates a new node recording the
// operation and its operands, so the computation graph is the trace of the
// operations executed. There is no separate build phase. Calling Backward on
// a terminal node walks that graph in reverse topological order and
// accumulates d(terminal)/d(node) into every ancestor's gradient.
//
// Architecture:
//   - Value: a scalar node holding data, an accumulated gradient, and the
//     Operation that produced it (nil for leaves)
//   - Operation interface: each primitive (Add, Mul, Pow, ReLU, Exp, Log,
//     Tanh) implements the backward pass for its inputs
//   - Backward: DFS post-order topological sort + chain-rule accumulation
//
// Usage:
//
//	a := autodiff.New(-4.0)
//	b := autodiff.New(2.0)
//	f := a.Mul(b).Add(b.Pow(3)) // f = a*b + b³
//	f.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // df/da = 2, df/db = 8
package autodiff

import "fmt"

// Value is a scalar node in the computation graph.
//
// A Value is created exactly once, either as a leaf via New or as the result
// of applying an operation to existing nodes. After creation only the
// gradient changes (additive accumulation during Backward) and, for leaves
// used as trainable parameters, the data via SetData. A node may be consumed
// by arbitrarily many successor nodes; that sharing is what makes the graph
// a DAG rather than a tree, and why gradients accumulate per edge.
type Value struct {
	data float64
	grad float64
	op   Operation // Operation that produced this node, nil for leaves
}

// New creates a leaf node holding the given value.
//
// Leaves have gradient 0, no operation, and no predecessors. Any finite or
// non-finite float64 is accepted; the engine follows IEEE-754 semantics
// throughout rather than guarding degenerate inputs.
func New(data float64) *Value {
	return &Value{data: data}
}

// Values promotes a slice of raw numbers to leaf nodes.
func Values(data []float64) []*Value {
	out := make([]*Value, len(data))
	for i, d := range data {
		out[i] = New(d)
	}
	return out
}

// newFromOp creates a node produced by an operation.
func newFromOp(data float64, op Operation) *Value {
	return &Value{data: data, op: op}
}

// Data returns the forward value of this node.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value of this node.
//
// This is intended for optimizer updates of leaf parameters between
// iterations. Mutating a non-leaf node does not recompute its successors:
// the graph records values at construction time.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the gradient accumulated by the most recent Backward pass.
//
// It is 0 before any backward pass and stays 0 for nodes unreachable from
// the chosen terminal.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets this node's gradient to 0.
//
// Gradients are additive accumulators, never overwritten, so callers must
// zero them between independent backward passes. See also ResetGrads for
// zeroing a whole subgraph from its terminal.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the tag of the operation that produced this node, or the empty
// string for leaves.
func (v *Value) Op() string {
	if v.op == nil {
		return ""
	}
	return v.op.Name()
}

// IsLeaf reports whether this node was created directly from a number rather
// than by an operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Inputs returns the operand nodes this node was computed from.
//
// Leaves return nil. The returned slice is the graph's edge list for this
// node and must not be mutated.
func (v *Value) Inputs() []*Value {
	if v.op == nil {
		return nil
	}
	return v.op.Inputs()
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.op == nil {
		return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.data, v.grad, v.op.Name())
}
