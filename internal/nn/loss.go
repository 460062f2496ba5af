package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Epsilon is the smallest positive normal float32. CrossEntropyLoss clips
// predictions into [Epsilon, 1-Epsilon] before taking the logarithm.
var Epsilon = math.Float32frombits(0x00800000)

// Loss reduces a batch of predictions and targets to a scalar.
type Loss[B tensor.Backend] interface {
	Forward(predictions *tensor.Tensor[float32, B], targets Targets[B]) (float32, error)
}

// CrossEntropyLoss computes the mean negative log-likelihood of the true
// class for probability predictions.
//
//	Loss = -mean_i ln(clip(p[i, y_i]))
//
// Predictions must already be probabilities (e.g. Softmax output). Exact 0
// becomes Epsilon and exact 1 becomes 1-Epsilon; other values pass through.
//
// Example:
//
//	criterion := nn.NewCrossEntropyLoss[Backend]()
//	probs := model.Forward(input)
//	loss, err := criterion.Forward(probs, nn.OneHot[Backend]{Labels: labels})
type CrossEntropyLoss[B tensor.Backend] struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss[B tensor.Backend]() *CrossEntropyLoss[B] {
	return &CrossEntropyLoss[B]{}
}

// Forward computes the loss. It fails if a target row marks no class or
// the targets do not match the prediction width.
func (c *CrossEntropyLoss[B]) Forward(predictions *tensor.Tensor[float32, B], targets Targets[B]) (float32, error) {
	mask, err := targets.Mask(predictions.Cols())
	if err != nil {
		return 0, fmt.Errorf("cross entropy: %w", err)
	}
	if mask.Rows() != predictions.Rows() {
		return 0, fmt.Errorf("cross entropy: %w: %d predictions, %d targets",
			tensor.ErrShapeMismatch, predictions.Rows(), mask.Rows())
	}

	clipped := predictions.Clone().Apply(clip)

	picked, err := clipped.IndexCols(tensor.MaskIndex[B]{Mask: mask})
	if err != nil {
		return 0, fmt.Errorf("cross entropy: %w", err)
	}

	return picked.Log().MulScalar(-1).Mean(), nil
}

func clip(p float32) float32 {
	switch p {
	case 0:
		return Epsilon
	case 1:
		return 1 - Epsilon
	default:
		return p
	}
}
