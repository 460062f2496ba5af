package tensor

import (
	"fmt"
	"math/rand/v2"
)

// Zeros creates a zero-filled tensor.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return New[T, B](raw, b)
}

// Full creates a tensor with every cell set to value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Ones creates a tensor filled with ones (true for bool).
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Eye creates an n x n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = one[T]()
	}
	return t
}

// FromSlice creates a tensor from row-major data. The slice is copied.
// Returns an error wrapping ErrShapeMismatch when len(data) does not equal
// the cell count of shape.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	t := Zeros[T, B](shape, b)
	copy(t.Data(), data)
	return t, nil
}

// FromRows creates a tensor from a literal grid. Every row must have the
// same length.
//
// Example:
//
//	x, err := tensor.FromRows([][]float32{{1, 2}, {3, 4}}, backend) // 2x2
func FromRows[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: literal data must have at least one row and one column", ErrShapeMismatch)
	}

	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return FromSlice[T, B](flat, Shape{len(rows), cols}, b)
}

// Source is a uniform random generator. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
	Uint64() uint64
}

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // weight init, not security sensitive
}

// RandFill creates a tensor whose cells are drawn independently from src.
//
// Floats are uniform in [0, 1). Integers are uniform over the type's range.
// Bools are fair coin flips. Cells are drawn in row-major order, so a
// source with a fixed seed always yields the same tensor.
func RandFill[T DType, B Backend](shape Shape, src Source, b B) *Tensor[T, B] {
	if src == nil {
		panic("randfill: nil random source")
	}

	t := Zeros[T, B](shape, b)
	switch data := any(t.Data()).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(src.Uint64()>>40) / (1 << 24)
		}
	case []float64:
		for i := range data {
			data[i] = src.Float64()
		}
	case []int32:
		for i := range data {
			data[i] = int32(src.Uint64()) //nolint:gosec // truncation is the intent
		}
	case []int64:
		for i := range data {
			data[i] = int64(src.Uint64()) //nolint:gosec // truncation is the intent
		}
	case []uint8:
		for i := range data {
			data[i] = uint8(src.Uint64()) //nolint:gosec // truncation is the intent
		}
	case []bool:
		for i := range data {
			data[i] = src.Uint64()&1 == 1
		}
	}
	return t
}

func one[T DType]() T {
	var v any
	var zero T
	switch any(zero).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	case bool:
		v = true
	}
	return v.(T)
}
