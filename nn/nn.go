// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/tensorkit/internal/nn"
	"github.com/born-ml/tensorkit/internal/tensor"
)

// Module interface defines the common interface for all network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named weight or bias tensor.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Dense represents a fully connected layer.
type Dense[B tensor.Backend] = nn.Dense[B]

// DenseConfig configures a Dense layer.
type DenseConfig = nn.DenseConfig

// DefaultInitScale is the default weight scale for Dense layers.
const DefaultInitScale = nn.DefaultInitScale

// DefaultDenseConfig returns a DenseConfig with the default init scale.
func DefaultDenseConfig(inFeatures, outFeatures int) DenseConfig {
	return nn.DefaultDenseConfig(inFeatures, outFeatures)
}

// NewDense creates a new dense layer with weights drawn from src.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewDense(nn.DefaultDenseConfig(784, 128), tensor.NewSource(1), backend)
func NewDense[B tensor.Backend](cfg DenseConfig, src tensor.Source, backend B) *Dense[B] {
	return nn.NewDense(cfg, src, backend)
}

// NewDenseFromTensors wraps existing weights [in, out] and biases [1, out].
func NewDenseFromTensors[B tensor.Backend](weight, bias *tensor.Tensor[float32, B]) (*Dense[B], error) {
	return nn.NewDenseFromTensors(weight, bias)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Softmax represents the row-wise softmax activation.
type Softmax[B tensor.Backend] = nn.Softmax[B]

// NewSoftmax creates a new Softmax activation layer.
func NewSoftmax[B tensor.Backend]() *Softmax[B] {
	return nn.NewSoftmax[B]()
}

// Containers

// Sequential chains modules in order.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a Sequential container from modules.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Labels

// Targets is a label encoding accepted by losses and metrics.
type Targets[B tensor.Backend] = nn.Targets[B]

// OneHot holds labels as a [batch, classes] 0/1 tensor.
type OneHot[B tensor.Backend] = nn.OneHot[B]

// Categorical holds labels as a [batch, 1] tensor of class ids.
type Categorical[B tensor.Backend] = nn.Categorical[B]

// Loss and metrics

// Loss reduces predictions and targets to a scalar.
type Loss[B tensor.Backend] = nn.Loss[B]

// CrossEntropyLoss computes the mean negative log-likelihood of the true class.
type CrossEntropyLoss[B tensor.Backend] = nn.CrossEntropyLoss[B]

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss[B tensor.Backend]() *CrossEntropyLoss[B] {
	return nn.NewCrossEntropyLoss[B]()
}

// Accuracy computes the fraction of correctly classified rows.
type Accuracy[B tensor.Backend] = nn.Accuracy[B]

// NewAccuracy creates a new accuracy metric.
func NewAccuracy[B tensor.Backend]() *Accuracy[B] {
	return nn.NewAccuracy[B]()
}
