// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/grad-ml/grad/autodiff"
	"github.com/grad-ml/grad/internal/nn"
)

// Module interface defines the common interface for all neural network
// modules.
type Module = nn.Module

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

// Supported activations.
const (
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
)

// Neuron is a single parameterized unit: weighted sum plus bias followed by
// an activation.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with the given input width and activation.
//
// Example:
//
//	n := nn.NewNeuron(3, nn.ReLU)
//	out := n.ForwardFloats([]float64{1, 0, -2})
func NewNeuron(inputs int, activation Activation) *Neuron {
	return nn.NewNeuron(inputs, activation)
}

// Layer is an ordered list of neurons of equal input width.
type Layer = nn.Layer

// NewLayer creates a layer of outputs neurons with the given input width and
// activation.
func NewLayer(inputs, outputs int, activation Activation) *Layer {
	return nn.NewLayer(inputs, outputs, activation)
}

// LayerSpec describes one MLP layer: output width plus activation.
type LayerSpec = nn.LayerSpec

// MLP is a multi-layer perceptron chaining layers output-to-input.
type MLP = nn.MLP

// NewMLP creates a multi-layer perceptron from an input width and an ordered
// list of layer specifications.
//
// Example:
//
//	model := nn.NewMLP(2, []nn.LayerSpec{
//	    {Out: 16, Activation: nn.ReLU},
//	    {Out: 16, Activation: nn.ReLU},
//	    {Out: 1, Activation: nn.Identity},
//	})
func NewMLP(inputs int, specs []LayerSpec) *MLP {
	return nn.NewMLP(inputs, specs)
}

// Loss functions

// MSELoss returns the mean squared error over paired predictions and
// targets.
func MSELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	return nn.MSELoss(preds, targets)
}

// BCELoss returns the mean binary cross-entropy over paired predictions in
// (0, 1) and targets in {0, 1}.
func BCELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	return nn.BCELoss(preds, targets)
}

// HingeLoss returns the mean max-margin loss over paired scores and targets
// in {-1, +1}.
func HingeLoss(scores, targets []*autodiff.Value) *autodiff.Value {
	return nn.HingeLoss(scores, targets)
}

// L2Penalty returns alpha times the sum of squared parameters.
func L2Penalty(params []*autodiff.Value, alpha float64) *autodiff.Value {
	return nn.L2Penalty(params, alpha)
}
