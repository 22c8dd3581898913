// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks composed from scalar
// autodiff nodes.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus bias with an activation selector
//   - Layer: a fixed-width list of neurons
//   - MLP: layers chained output-to-input
//   - Loss functions: MSE, BCE, hinge, plus an L2 penalty helper
//
// Every forward pass is a composition of the autodiff package's scalar
// operations, so a single Backward call on a loss node produces gradients
// for all weights and biases.
//
// # Basic Usage
//
//	import (
//	    "github.com/grad-ml/grad/autodiff"
//	    "github.com/grad-ml/grad/nn"
//	    "github.com/grad-ml/grad/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []nn.LayerSpec{
//	        {Out: 16, Activation: nn.ReLU},
//	        {Out: 1, Activation: nn.Sigmoid},
//	    })
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        optimizer.ZeroGrad()
//	        pred := model.ForwardFloats(x)[0]
//	        loss := nn.BCELoss([]*autodiff.Value{pred}, autodiff.Values(y))
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Activations
//
// The activation set is closed: Identity, ReLU, Sigmoid and Tanh. Sigmoid
// and Tanh are compositions of the engine's primitives, so no activation
// introduces a new backward rule.
package nn
