package tensor

import "fmt"

// Add performs element-wise addition. Extents must match exactly;
// use Broadcast first to combine a row or column vector with a matrix.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	mustMatch("add", t.Shape(), other.Shape())
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction on identical extents.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	mustMatch("sub", t.Shape(), other.Shape())
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise (Hadamard) multiplication on identical extents.
// See MatMul for the matrix product.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	mustMatch("mul", t.Shape(), other.Shape())
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division on identical extents. Division by
// zero follows T's semantics: ±Inf/NaN for floats, a runtime panic for
// integers.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	mustMatch("div", t.Shape(), other.Shape())
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds scalar to every cell.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// SubScalar subtracts scalar from every cell.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.SubScalar(t.raw, scalar), t.backend)
}

// MulScalar multiplies every cell by scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// DivScalar divides every cell by scalar.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, scalar), t.backend)
}

// MatMul computes the matrix product (R x K) @ (K x C) -> R x C.
// Panics unless t's column extent equals other's row extent.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{3, 4}, backend)
//	b := tensor.Zeros[float32](Shape{4, 5}, backend)
//	c := a.MatMul(b) // 3x5
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	if t.Cols() != other.Rows() {
		panic(fmt.Sprintf("matmul: inner dimensions differ: %v @ %v (%d != %d)",
			t.Shape(), other.Shape(), t.Cols(), other.Rows()))
	}
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Dot returns the inner product of a 1xN row vector with an Nx1 column
// vector.
func (t *Tensor[T, B]) Dot(other *Tensor[T, B]) T {
	if t.Rows() != 1 || other.Cols() != 1 {
		panic(fmt.Sprintf("dot: expected 1xN and Nx1 operands, got %v and %v", t.Shape(), other.Shape()))
	}
	return t.MatMul(other).Item()
}

// Transpose returns a new tensor with rows and columns swapped.
func (t *Tensor[T, B]) Transpose() *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw), t.backend)
}

// T is shorthand for Transpose.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	return t.Transpose()
}

// Broadcast expands t to shape. Along each axis t's extent must equal the
// target extent or be 1; extents of 1 are repeated. Broadcasting to t's
// own shape returns an equal copy.
//
// Example:
//
//	bias := tensor.Zeros[float32](Shape{1, 3}, backend)
//	full := bias.Broadcast(Shape{32, 3}) // 32x3, each row equals bias
func (t *Tensor[T, B]) Broadcast(shape Shape) *Tensor[T, B] {
	if err := t.Shape().CanBroadcastTo(shape); err != nil {
		panic(fmt.Sprintf("broadcast: %v -> %v: %v", t.Shape(), shape, err))
	}
	return New[T, B](t.backend.Expand(t.raw, shape), t.backend)
}

// Apply maps every cell through f in place and returns t.
func (t *Tensor[T, B]) Apply(f func(T) T) *Tensor[T, B] {
	data := t.Data()
	for i, v := range data {
		data[i] = f(v)
	}
	return t
}

// Exp computes e^x for every cell. Float tensors only.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Log computes the natural logarithm of every cell. Float tensors only.
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	return New[T, B](t.backend.Log(t.raw), t.backend)
}

// Equal compares element-wise on identical extents.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	mustMatch("equal", t.Shape(), other.Shape())
	return New[bool, B](t.backend.Equal(t.raw, other.raw), t.backend)
}

// Convert returns a copy of t with every cell converted to U.
// Bool converts to 0/1 and numbers convert to bool as != 0.
//
// Example:
//
//	hits := pred.Equal(target)                // bool
//	rate := tensor.Convert[float32](hits).Mean()
func Convert[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	return New[U, B](t.backend.Cast(t.raw, DataTypeOf[U]()), t.backend)
}
