package autodiff

// Backward computes gradients of this node with respect to every ancestor.
//
// Algorithm:
//  1. Build a post-order topological sort of the subgraph reachable from v
//     through operand edges, visiting each node exactly once.
//  2. Seed v's gradient with 1 (d(v)/d(v)).
//  3. Walk the order in reverse — terminal first, leaves last — and for
//     each node apply its operation's local derivative rule, accumulating
//     the contribution into each operand's gradient.
//
// Reversing a post-order guarantees a node's gradient is final before it is
// dispatched to its operands: every successor inside the subgraph appears
// earlier in the consumed order. Accumulation is per edge, so a node used by
// several successors (a shared sub-expression) collects one contribution for
// each use.
//
// Backward does not reset gradients. A second call accumulates into the
// gradients left by the first — deliberate when summing gradients across
// passes, stale otherwise. Call ResetGrads (or ZeroGrad on the nodes of
// interest) between independent passes. Calling Backward on a leaf is legal
// and only seeds its own gradient.
func (v *Value) Backward() {
	order := topoSort(v)

	v.grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue
		}
		contribs := node.op.Backward(node.grad)
		for j, input := range node.op.Inputs() {
			input.grad += contribs[j]
		}
	}
}

// ResetGrads zeroes the gradient of every node reachable from v, v included.
//
// Zeroing the whole subgraph and re-running Backward from the same terminal
// reproduces the gradients of the first run exactly.
func (v *Value) ResetGrads() {
	for _, node := range topoSort(v) {
		node.grad = 0
	}
}

// topoSort returns the nodes reachable from root in post-order: every node
// appears after all of its operands. The visited set bounds the traversal on
// shared sub-expressions — each node is expanded once no matter how many
// successors reference it. Construction cannot create cycles, so the
// recursion always terminates.
func topoSort(root *Value) []*Value {
	var (
		order   []*Value
		visited = make(map[*Value]struct{})
		visit   func(*Value)
	)
	visit = func(v *Value) {
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}
		for _, input := range v.Inputs() {
			visit(input)
		}
		order = append(order, v)
	}
	visit(root)
	return order
}
