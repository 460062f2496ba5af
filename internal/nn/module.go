// Package nn implements the feed-forward building blocks of tensorkit.
//
// This package provides:
//   - Module: the interface every layer and activation satisfies
//   - Parameter: a named weight or bias tensor
//   - Dense: fully connected layer
//   - ReLU, Softmax: stateless activations built from tensor primitives
//   - Sequential: container chaining modules
//   - Targets, CrossEntropyLoss, Accuracy: label encodings, loss and metric
//
// There is no backward pass; modules only compute forward values.
package nn

import (
	"github.com/born-ml/tensorkit/internal/tensor"
)

// Module is the interface for every forward stage of a network.
//
// Modules take a [batch, features] float32 tensor and return a new tensor;
// they never modify their input.
//
//	model := nn.NewSequential[Backend](
//	    nn.NewDense(nn.DefaultDenseConfig(2, 3), src, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewDense(nn.DefaultDenseConfig(3, 3), src, backend),
//	    nn.NewSoftmax[Backend](),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the module output for a batch of inputs.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the module's weight tensors, or nil for
	// stateless modules.
	Parameters() []*Parameter[B]
}
