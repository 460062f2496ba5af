package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a rows x cols grid of T computed by backend B.
//
// Extents are fixed when the tensor is created. Binary operations check
// them and panic on mismatch. Every operation except Apply and Set returns
// a new tensor and leaves its operands untouched.
//
// Example:
//
//	backend := cpu.New()
//	a := tensor.Full[float32](tensor.Shape{2, 3}, 1.5, backend)
//	b := a.MulScalar(2).Add(a) // 2x3, every cell 4.5
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New wraps a RawTensor. Panics if raw's dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	if want := DataTypeOf[T](); raw.DType() != want {
		panic(fmt.Sprintf("tensor: raw dtype %s does not match %s", raw.DType(), want))
	}
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// Shape returns the tensor's extents.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// Rows returns the row extent.
func (t *Tensor[T, B]) Rows() int {
	return t.raw.Shape().Rows()
}

// Cols returns the column extent.
func (t *Tensor[T, B]) Cols() int {
	return t.raw.Shape().Cols()
}

// DType returns the runtime element type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns rows*cols.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a row-major view of the cells.
//
// WARNING: writes through the returned slice modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	return View[T](t.raw)
}

// Row returns a copy of row i.
func (t *Tensor[T, B]) Row(i int) []T {
	t.checkIndex("row", i, 0)
	cols := t.Cols()
	out := make([]T, cols)
	copy(out, t.Data()[i*cols:(i+1)*cols])
	return out
}

// At returns the cell at (row, col). Panics if out of bounds.
func (t *Tensor[T, B]) At(row, col int) T {
	t.checkIndex("at", row, col)
	return t.Data()[row*t.Cols()+col]
}

// Set writes the cell at (row, col). Panics if out of bounds.
func (t *Tensor[T, B]) Set(value T, row, col int) {
	t.checkIndex("set", row, col)
	t.Data()[row*t.Cols()+col] = value
}

// Item returns the only cell of a 1x1 tensor.
func (t *Tensor[T, B]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("item: only 1x1 tensors have a single value, got %v", t.Shape()))
	}
	return t.Data()[0]
}

// Clone returns a deep copy.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     t.raw.Clone(),
		backend: t.backend,
	}
}

// String returns a short description, e.g. "Tensor[float32]2x3 on CPU".
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Format renders the cells as a bracketed grid, one row per line.
// Intended for debugging.
func (t *Tensor[T, B]) Format() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < t.Rows(); i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString("[")
		for j, v := range t.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (t *Tensor[T, B]) checkIndex(op string, row, col int) {
	if row < 0 || row >= t.Rows() {
		panic(fmt.Sprintf("%s: row %d out of bounds for %v tensor", op, row, t.Shape()))
	}
	if col < 0 || col >= t.Cols() {
		panic(fmt.Sprintf("%s: column %d out of bounds for %v tensor", op, col, t.Shape()))
	}
}
