package tensor

import (
	"errors"
	"fmt"
)

// Data errors. These come from externally supplied values (literal data,
// label masks) and are returned rather than raised.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("column index out of range")
	ErrInvalidMask     = errors.New("invalid mask")
)

// IndexError describes an IndexCols failure.
type IndexError struct {
	Kind error // ErrIndexOutOfRange or ErrInvalidMask
	Row  int   // offending mask row, -1 for scalar indices
	Col  int   // requested column for scalar indices
	Cols int   // column extent of the indexed tensor
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has no column set to 1", e.Kind, e.Row)
	}
	return fmt.Sprintf("%v: index %d must be < %d", e.Kind, e.Col, e.Cols)
}

// Unwrap returns the sentinel kind so errors.Is works.
func (e *IndexError) Unwrap() error {
	return e.Kind
}
