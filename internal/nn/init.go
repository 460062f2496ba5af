package nn

import (
	"github.com/born-ml/tensorkit/internal/tensor"
)

// DefaultInitScale is the factor applied to uniform [0, 1) draws when
// initializing dense weights.
const DefaultInitScale float32 = 0.01

// ScaledUniform returns a tensor of independent U(0, 1) draws from src,
// multiplied by scale.
//
// Parameters:
//   - shape: Shape of the tensor
//   - scale: Factor applied to every draw
//   - src: Random source; a seeded source makes the result reproducible
//   - backend: Backend to use for tensor creation
func ScaledUniform[B tensor.Backend](shape tensor.Shape, scale float32, src tensor.Source, backend B) *tensor.Tensor[float32, B] {
	return tensor.RandFill[float32](shape, src, backend).MulScalar(scale)
}

// Zeros creates a zero-filled float32 tensor, used for biases.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}
