// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorkit/internal/tensor"
)

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device.
const CPU Device = tensor.CPU

// Shape holds the extents of a tensor as {rows, cols}.
type Shape = tensor.Shape

// Tensor is a generic, fixed-shape 2D tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Axis selects a reduction direction.
type Axis = tensor.Axis

// Reduction axes.
const (
	AxisRow Axis = tensor.AxisRow // one value per row (Rx1)
	AxisCol Axis = tensor.AxisCol // one value per column (1xC)
)

// AxisResult is an axis reduction tagged with its axis.
type AxisResult[T DType, B Backend] = tensor.AxisResult[T, B]

// ColumnIndex selects one column per row for IndexCols.
type ColumnIndex[B Backend] = tensor.ColumnIndex[B]

// ScalarIndex selects the same column from every row.
type ScalarIndex[B Backend] = tensor.ScalarIndex[B]

// MaskIndex selects, per row, the column whose mask cell equals 1.
type MaskIndex[B Backend] = tensor.MaskIndex[B]

// IndexError describes a failed column selection.
type IndexError = tensor.IndexError

// Data errors.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrInvalidMask     = tensor.ErrInvalidMask
)

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Eye creates an n x n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from row-major data.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// FromRows creates a tensor from a literal grid.
func FromRows[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.FromRows[T, B](rows, b)
}

// RandFill creates a tensor of independent draws from src.
//
// Example:
//
//	w := tensor.RandFill[float32](tensor.Shape{2, 3}, tensor.NewSource(42), backend)
func RandFill[T DType, B Backend](shape Shape, src Source, b B) *Tensor[T, B] {
	return tensor.RandFill[T, B](shape, src, b)
}

// Convert returns a copy of t with every cell converted to U.
func Convert[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	return tensor.Convert[U, T, B](t)
}

// MarkedColumns returns the first column set to 1 in each row of mask.
func MarkedColumns[B Backend](mask *Tensor[int32, B]) (*Tensor[int32, B], error) {
	return tensor.MarkedColumns(mask)
}
