package tensor

import "fmt"

// Shape holds the extents of a tensor as {rows, cols}.
//
// Tensors are always rank 2. A row vector is Shape{1, n} and a column
// vector is Shape{n, 1}.
type Shape []int

// Rows returns the row extent.
func (s Shape) Rows() int {
	return s[0]
}

// Cols returns the column extent.
func (s Shape) Cols() int {
	return s[1]
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is rank 2 with positive extents.
func (s Shape) Validate() error {
	if len(s) != 2 {
		return fmt.Errorf("%w: expected rank 2, got rank %d (%v)", ErrShapeMismatch, len(s), []int(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: invalid extent at axis %d: %d (must be > 0)", ErrShapeMismatch, i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have identical extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Transposed returns {cols, rows}.
func (s Shape) Transposed() Shape {
	return Shape{s[1], s[0]}
}

func (s Shape) String() string {
	if len(s) != 2 {
		return fmt.Sprintf("%v", []int(s))
	}
	return fmt.Sprintf("%dx%d", s[0], s[1])
}

// CanBroadcastTo reports whether s can be expanded to target: along each
// axis the source extent must equal the target extent or be 1.
func (s Shape) CanBroadcastTo(target Shape) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s[0] != target[0] && s[0] != 1 {
		return fmt.Errorf("row extent %d must match %d or be 1 for broadcasting", s[0], target[0])
	}
	if s[1] != target[1] && s[1] != 1 {
		return fmt.Errorf("column extent %d must match %d or be 1 for broadcasting", s[1], target[1])
	}
	return nil
}

// mustMatch panics unless a and b have identical extents.
func mustMatch(op string, a, b Shape) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a, b))
	}
}
