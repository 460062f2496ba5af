package nn

import (
	"github.com/born-ml/tensorkit/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU[Backend]()
//	output := relu.Forward(input) // all negative values become 0
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies max(0, x) to a copy of input.
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return input.Clone().Apply(func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// Parameters returns nil (ReLU has no parameters).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Softmax normalizes each row into a probability distribution.
//
//	Softmax(x)[i, j] = exp(x[i, j] - max_i) / sum_k exp(x[i, k] - max_i)
//
// Subtracting the row maximum keeps exp from overflowing and makes the
// result invariant to adding a constant to a row.
type Softmax[B tensor.Backend] struct{}

// NewSoftmax creates a new Softmax activation module.
func NewSoftmax[B tensor.Backend]() *Softmax[B] {
	return &Softmax[B]{}
}

// Forward computes the row-wise softmax of input.
func (s *Softmax[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()

	rowMax := input.MaxAxis(tensor.AxisRow).Row().Broadcast(shape)
	exp := input.Sub(rowMax).Exp()
	rowSum := exp.SumAxis(tensor.AxisRow).Row().Broadcast(shape)

	return exp.Div(rowSum)
}

// Parameters returns nil (Softmax has no parameters).
func (s *Softmax[B]) Parameters() []*Parameter[B] {
	return nil
}
