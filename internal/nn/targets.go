package nn

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Targets is a label encoding for a batch. It is implemented by OneHot and
// Categorical only; consumers turn either into a 0/1 mask with Mask.
type Targets[B tensor.Backend] interface {
	// Mask returns a [batch, classes] int32 tensor with a 1 in each row's
	// true class column.
	Mask(classes int) (*tensor.Tensor[int32, B], error)

	targets()
}

// OneHot holds labels as a [batch, classes] 0/1 tensor with one 1 per row.
type OneHot[B tensor.Backend] struct {
	Labels *tensor.Tensor[int32, B]
}

// Categorical holds labels as a [batch, 1] tensor of class ids.
type Categorical[B tensor.Backend] struct {
	Classes *tensor.Tensor[int32, B]
}

func (OneHot[B]) targets()      {}
func (Categorical[B]) targets() {}

// Mask returns the labels themselves. The column count must equal classes.
// Row contents are not validated here; IndexCols reports rows with no 1.
func (o OneHot[B]) Mask(classes int) (*tensor.Tensor[int32, B], error) {
	if o.Labels.Cols() != classes {
		return nil, fmt.Errorf("%w: one-hot labels are %v, expected %d classes",
			tensor.ErrShapeMismatch, o.Labels.Shape(), classes)
	}
	return o.Labels, nil
}

// Mask expands the class ids into a one-hot mask.
func (c Categorical[B]) Mask(classes int) (*tensor.Tensor[int32, B], error) {
	if c.Classes.Cols() != 1 {
		return nil, fmt.Errorf("%w: categorical labels must be [batch, 1], got %v",
			tensor.ErrShapeMismatch, c.Classes.Shape())
	}

	batch := c.Classes.Rows()
	mask := tensor.Zeros[int32](tensor.Shape{batch, classes}, c.Classes.Backend())
	ids := c.Classes.Data()
	dst := mask.Data()

	for i, id := range ids {
		if id < 0 || int(id) >= classes {
			return nil, fmt.Errorf("row %d: %w", i,
				&tensor.IndexError{Kind: tensor.ErrIndexOutOfRange, Row: -1, Col: int(id), Cols: classes})
		}
		dst[i*classes+int(id)] = 1
	}

	return mask, nil
}
