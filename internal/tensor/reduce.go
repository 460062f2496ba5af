package tensor

import "fmt"

// Axis selects a reduction direction.
type Axis int

const (
	// AxisRow reduces each row across its columns, producing one value
	// per row (an Rx1 result).
	AxisRow Axis = iota
	// AxisCol reduces each column across its rows, producing one value
	// per column (a 1xC result).
	AxisCol
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ReducedShape returns the shape of reducing s along a.
func (a Axis) ReducedShape(s Shape) Shape {
	switch a {
	case AxisRow:
		return Shape{s.Rows(), 1}
	case AxisCol:
		return Shape{1, s.Cols()}
	default:
		panic(fmt.Sprintf("reduce: unknown axis %d", int(a)))
	}
}

// AxisResult is the outcome of an axis reduction, tagged with the axis it
// was reduced along. Row unwraps an AxisRow result and Col an AxisCol
// result; asking for the other variant panics.
type AxisResult[T DType, B Backend] struct {
	axis   Axis
	tensor *Tensor[T, B]
}

// Axis reports which variant the result holds.
func (r AxisResult[T, B]) Axis() Axis {
	return r.axis
}

// Row returns the Rx1 result of an AxisRow reduction.
func (r AxisResult[T, B]) Row() *Tensor[T, B] {
	if r.axis != AxisRow {
		panic(fmt.Sprintf("axis result: Row called on a %s reduction", r.axis))
	}
	return r.tensor
}

// Col returns the 1xC result of an AxisCol reduction.
func (r AxisResult[T, B]) Col() *Tensor[T, B] {
	if r.axis != AxisCol {
		panic(fmt.Sprintf("axis result: Col called on a %s reduction", r.axis))
	}
	return r.tensor
}

func newAxisResult[T DType, B Backend](axis Axis, raw *RawTensor, b B) AxisResult[T, B] {
	return AxisResult[T, B]{axis: axis, tensor: New[T, B](raw, b)}
}

// Sum returns the sum of all cells.
func (t *Tensor[T, B]) Sum() T {
	return View[T](t.backend.Sum(t.raw))[0]
}

// Mean returns Sum divided by the cell count. For integer tensors the
// division truncates.
func (t *Tensor[T, B]) Mean() T {
	sum := t.backend.Sum(t.raw)
	return View[T](t.backend.DivScalar(sum, fromInt[T](t.NumElements())))[0]
}

// Max returns the largest cell. NaN cells are skipped unless every cell
// is NaN.
func (t *Tensor[T, B]) Max() T {
	return View[T](t.backend.Max(t.raw))[0]
}

// SumAxis sums along axis.
//
// Example:
//
//	x, _ := tensor.FromRows([][]float32{{1, 2}, {3, 4}}, backend)
//	x.SumAxis(tensor.AxisRow).Row() // [[3], [7]]
//	x.SumAxis(tensor.AxisCol).Col() // [[4, 6]]
func (t *Tensor[T, B]) SumAxis(axis Axis) AxisResult[T, B] {
	return newAxisResult[T](axis, t.backend.SumDim(t.raw, axis), t.backend)
}

// MaxAxis takes the maximum along axis.
func (t *Tensor[T, B]) MaxAxis(axis Axis) AxisResult[T, B] {
	return newAxisResult[T](axis, t.backend.MaxDim(t.raw, axis), t.backend)
}

// Argmax returns the position of the maximum along axis. Ties resolve to
// the lowest index.
func (t *Tensor[T, B]) Argmax(axis Axis) AxisResult[int32, B] {
	return newAxisResult[int32](axis, t.backend.Argmax(t.raw, axis), t.backend)
}

// Any reports, per row (AxisRow) or per column (AxisCol), whether pred
// holds for at least one cell.
func (t *Tensor[T, B]) Any(axis Axis, pred func(T) bool) AxisResult[bool, B] {
	return t.reduceBool(axis, false, func(acc bool, v T) bool { return acc || pred(v) })
}

// All reports, per row (AxisRow) or per column (AxisCol), whether pred
// holds for every cell.
func (t *Tensor[T, B]) All(axis Axis, pred func(T) bool) AxisResult[bool, B] {
	return t.reduceBool(axis, true, func(acc bool, v T) bool { return acc && pred(v) })
}

func (t *Tensor[T, B]) reduceBool(axis Axis, init bool, step func(bool, T) bool) AxisResult[bool, B] {
	rows, cols := t.Rows(), t.Cols()
	out := Full[bool, B](axis.ReducedShape(t.Shape()), init, t.backend)
	dst := out.Data()
	src := t.Data()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			k := i
			if axis == AxisCol {
				k = j
			}
			dst[k] = step(dst[k], src[i*cols+j])
		}
	}
	return AxisResult[bool, B]{axis: axis, tensor: out}
}

func fromInt[T DType](n int) T {
	var v any
	var zero T
	switch any(zero).(type) {
	case float32:
		v = float32(n)
	case float64:
		v = float64(n)
	case int32:
		v = int32(n) //nolint:gosec // cell counts fit in int32 for any practical tensor
	case int64:
		v = int64(n)
	case uint8:
		v = uint8(n) //nolint:gosec // caller gets modular arithmetic, as with any uint8 math
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %T", zero))
	}
	return v.(T)
}
