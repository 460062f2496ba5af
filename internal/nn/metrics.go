package nn

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Accuracy is the fraction of rows whose predicted class matches the target.
type Accuracy[B tensor.Backend] struct{}

// NewAccuracy creates a new accuracy metric.
func NewAccuracy[B tensor.Backend]() *Accuracy[B] {
	return &Accuracy[B]{}
}

// Calculate returns the accuracy in [0, 1].
//
// The predicted class is the row argmax of predictions; ties resolve to the
// lowest column, so an all-equal row predicts class 0. The target class is
// the first marked column of the target mask. Malformed targets return an
// error wrapping ErrInvalidMask, ErrIndexOutOfRange or ErrShapeMismatch.
func (a *Accuracy[B]) Calculate(predictions *tensor.Tensor[float32, B], targets Targets[B]) (float32, error) {
	mask, err := targets.Mask(predictions.Cols())
	if err != nil {
		return 0, fmt.Errorf("accuracy: %w", err)
	}

	if mask.Rows() != predictions.Rows() {
		return 0, fmt.Errorf("accuracy: %w: %d predictions, %d targets",
			tensor.ErrShapeMismatch, predictions.Rows(), mask.Rows())
	}

	want, err := tensor.MarkedColumns(mask)
	if err != nil {
		return 0, fmt.Errorf("accuracy: %w", err)
	}

	got := predictions.Argmax(tensor.AxisRow).Row()
	hits := tensor.Convert[float32](got.Equal(want))

	return hits.Mean(), nil
}
