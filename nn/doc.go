// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Dense
//   - Activations: ReLU, Softmax
//   - Loss: CrossEntropyLoss
//   - Metrics: Accuracy
//   - Labels: OneHot, Categorical
//   - Utilities: Sequential, Module interface, Parameter
//
// Modules compute forward values only; there is no backward pass or
// optimizer.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorkit/backend/cpu"
//	    "github.com/born-ml/tensorkit/nn"
//	    "github.com/born-ml/tensorkit/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    src := tensor.NewSource(42)
//
//	    model := nn.NewSequential[*cpu.Backend](
//	        nn.NewDense(nn.DefaultDenseConfig(2, 8), src, backend),
//	        nn.NewReLU[*cpu.Backend](),
//	        nn.NewDense(nn.DefaultDenseConfig(8, 3), src, backend),
//	        nn.NewSoftmax[*cpu.Backend](),
//	    )
//
//	    probs := model.Forward(input)
//	    loss, err := nn.NewCrossEntropyLoss[*cpu.Backend]().Forward(probs, nn.OneHot[*cpu.Backend]{Labels: labels})
//	}
//
// # Layers
//
// Dense: y = x @ W + b, with W drawn uniformly from [0, 1) and scaled by
// DenseConfig.InitScale (0.01 by default), and b initialized to zero.
//
// # Labels
//
// OneHot holds a [batch, classes] 0/1 mask. Categorical holds [batch, 1]
// class ids. Loss and metrics accept either.
package nn
