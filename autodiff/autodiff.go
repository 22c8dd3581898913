// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Arithmetic on *Value nodes builds a computation graph implicitly; calling
// Backward on any node computes the gradient of that node with respect to
// every ancestor by reverse topological traversal and chain-rule
// accumulation.
//
// Example:
//
//	import "github.com/grad-ml/grad/autodiff"
//
//	func main() {
//	    a := autodiff.New(-4.0)
//	    b := autodiff.New(2.0)
//	    f := a.Mul(b).Add(b.Pow(3)) // f = a*b + b³
//	    f.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 2, 8
//	}
//
// Gradients are additive accumulators: zero them (Value.ZeroGrad or
// Value.ResetGrads) between independent backward passes. The engine follows
// IEEE-754 semantics for degenerate inputs — division by zero, log of a
// non-positive value and 0^k for negative k produce Inf or NaN that
// propagate through forward and backward computation instead of raising.
package autodiff

import "github.com/grad-ml/grad/internal/autodiff"

// Value is a scalar node in the computation graph, carrying a forward value
// and an accumulated gradient.
type Value = autodiff.Value

// Operation is the interface implemented by the graph's differentiable
// primitives.
type Operation = autodiff.Operation

// New creates a leaf node holding the given value.
//
// Example:
//
//	x := autodiff.New(3.0)
//	y := x.Pow(2).AddScalar(1) // y = x² + 1
func New(data float64) *Value {
	return autodiff.New(data)
}

// Values promotes a slice of raw numbers to leaf nodes.
func Values(data []float64) []*Value {
	return autodiff.Values(data)
}

// Sum reduces a slice of nodes to a single node by repeated addition.
func Sum(values []*Value) *Value {
	return autodiff.Sum(values)
}
