package nn

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// DenseConfig configures a Dense layer.
type DenseConfig struct {
	InFeatures  int     // Number of input features
	OutFeatures int     // Number of output neurons
	InitScale   float32 // Factor applied to U(0, 1) weight draws
}

// DefaultDenseConfig returns a config with the default init scale.
func DefaultDenseConfig(inFeatures, outFeatures int) DenseConfig {
	return DenseConfig{
		InFeatures:  inFeatures,
		OutFeatures: outFeatures,
		InitScale:   DefaultInitScale,
	}
}

// Dense implements a fully connected layer.
//
// Performs the affine transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - y is the output with shape [batch_size, out_features]
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewDense(nn.DefaultDenseConfig(2, 3), tensor.NewSource(42), backend)
//	output := layer.Forward(input) // [batch, 3]
type Dense[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [in_features, out_features]
	bias        *Parameter[B] // [1, out_features]
}

// NewDense creates a Dense layer with weights drawn from src and scaled by
// cfg.InitScale, and zero biases.
func NewDense[B tensor.Backend](cfg DenseConfig, src tensor.Source, backend B) *Dense[B] {
	if cfg.InFeatures <= 0 || cfg.OutFeatures <= 0 {
		panic(fmt.Sprintf("Dense: feature counts must be positive, got %d -> %d", cfg.InFeatures, cfg.OutFeatures))
	}

	weight := ScaledUniform(tensor.Shape{cfg.InFeatures, cfg.OutFeatures}, cfg.InitScale, src, backend)
	bias := Zeros(tensor.Shape{1, cfg.OutFeatures}, backend)

	return &Dense[B]{
		inFeatures:  cfg.InFeatures,
		outFeatures: cfg.OutFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// NewDenseFromTensors builds a Dense layer around existing weights
// [in, out] and biases [1, out].
func NewDenseFromTensors[B tensor.Backend](weight, bias *tensor.Tensor[float32, B]) (*Dense[B], error) {
	want := tensor.Shape{1, weight.Cols()}
	if !bias.Shape().Equal(want) {
		return nil, fmt.Errorf("%w: bias must be %v for %v weights, got %v",
			tensor.ErrShapeMismatch, want, weight.Shape(), bias.Shape())
	}

	return &Dense[B]{
		inFeatures:  weight.Rows(),
		outFeatures: weight.Cols(),
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}, nil
}

// Forward computes x @ W + b.
//
// Panics if the input is not [batch, in_features].
func (d *Dense[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if input.Cols() != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input with %d features, got %d", d.inFeatures, input.Cols()))
	}

	output := input.MatMul(d.weight.Tensor())
	return output.Add(d.bias.Tensor().Broadcast(output.Shape()))
}

// Parameters returns [weight, bias].
func (d *Dense[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense[B]) Weight() *Parameter[B] {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense[B]) Bias() *Parameter[B] {
	return d.bias
}

// InFeatures returns the number of input features.
func (d *Dense[B]) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output neurons.
func (d *Dense[B]) OutFeatures() int {
	return d.outFeatures
}
