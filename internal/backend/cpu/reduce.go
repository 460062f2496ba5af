package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Sum adds every element and returns a 1x1 tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.alloc("sum", tensor.Shape{1, 1}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumSlice(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sumSlice(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sumSlice(x.AsInt64())
	case tensor.Uint8:
		result.AsUint8()[0] = sumSlice(x.AsUint8())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return result
}

// Max returns the largest element as a 1x1 tensor.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.alloc("max", tensor.Shape{1, 1}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = maxSlice(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Max(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = maxSlice(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = maxSlice(x.AsInt64())
	case tensor.Uint8:
		result.AsUint8()[0] = maxSlice(x.AsUint8())
	default:
		panic(fmt.Sprintf("max: unsupported dtype %s", x.DType()))
	}
	return result
}

// SumDim sums along axis. AxisRow yields Rx1, AxisCol yields 1xC.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, axis tensor.Axis) *tensor.RawTensor {
	result := cpu.alloc("sumdim", axis.ReducedShape(x.Shape()), x.DType())
	shape := x.Shape()

	switch x.DType() {
	case tensor.Float32:
		reduceLanes(result.AsFloat32(), x.AsFloat32(), shape, axis, sumSlice[float32])
	case tensor.Float64:
		reduceLanes(result.AsFloat64(), x.AsFloat64(), shape, axis, floats.Sum)
	case tensor.Int32:
		reduceLanes(result.AsInt32(), x.AsInt32(), shape, axis, sumSlice[int32])
	case tensor.Int64:
		reduceLanes(result.AsInt64(), x.AsInt64(), shape, axis, sumSlice[int64])
	case tensor.Uint8:
		reduceLanes(result.AsUint8(), x.AsUint8(), shape, axis, sumSlice[uint8])
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}
	return result
}

// MaxDim takes the maximum along axis. AxisRow yields Rx1, AxisCol 1xC.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, axis tensor.Axis) *tensor.RawTensor {
	result := cpu.alloc("maxdim", axis.ReducedShape(x.Shape()), x.DType())
	shape := x.Shape()

	switch x.DType() {
	case tensor.Float32:
		reduceLanes(result.AsFloat32(), x.AsFloat32(), shape, axis, maxSlice[float32])
	case tensor.Float64:
		reduceLanes(result.AsFloat64(), x.AsFloat64(), shape, axis, floats.Max)
	case tensor.Int32:
		reduceLanes(result.AsInt32(), x.AsInt32(), shape, axis, maxSlice[int32])
	case tensor.Int64:
		reduceLanes(result.AsInt64(), x.AsInt64(), shape, axis, maxSlice[int64])
	case tensor.Uint8:
		reduceLanes(result.AsUint8(), x.AsUint8(), shape, axis, maxSlice[uint8])
	default:
		panic(fmt.Sprintf("maxdim: unsupported dtype %s", x.DType()))
	}
	return result
}

// Argmax returns the int32 position of the maximum along axis. Ties go to
// the lowest index; NaN never wins unless the whole lane is NaN.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, axis tensor.Axis) *tensor.RawTensor {
	result := cpu.alloc("argmax", axis.ReducedShape(x.Shape()), tensor.Int32)
	dst := result.AsInt32()
	shape := x.Shape()

	switch x.DType() {
	case tensor.Float32:
		reduceLanes(dst, x.AsFloat32(), shape, axis, argmaxSlice[float32])
	case tensor.Float64:
		reduceLanes(dst, x.AsFloat64(), shape, axis, func(s []float64) int32 {
			return int32(floats.MaxIdx(s)) //nolint:gosec // bounded by lane length
		})
	case tensor.Int32:
		reduceLanes(dst, x.AsInt32(), shape, axis, argmaxSlice[int32])
	case tensor.Int64:
		reduceLanes(dst, x.AsInt64(), shape, axis, argmaxSlice[int64])
	case tensor.Uint8:
		reduceLanes(dst, x.AsUint8(), shape, axis, argmaxSlice[uint8])
	default:
		panic(fmt.Sprintf("argmax: unsupported dtype %s", x.DType()))
	}
	return result
}

// reduceLanes applies f to every row (AxisRow) or column (AxisCol) of src
// and stores one result per lane in dst.
func reduceLanes[T tensor.Numeric, R any](dst []R, src []T, shape tensor.Shape, axis tensor.Axis, f func([]T) R) {
	rows, cols := shape.Rows(), shape.Cols()

	switch axis {
	case tensor.AxisRow:
		for i := 0; i < rows; i++ {
			dst[i] = f(src[i*cols : (i+1)*cols])
		}
	case tensor.AxisCol:
		lane := make([]T, rows)
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				lane[i] = src[i*cols+j]
			}
			dst[j] = f(lane)
		}
	default:
		panic(fmt.Sprintf("reduce: unknown axis %v", axis))
	}
}

func sumSlice[T tensor.Numeric](s []T) T {
	var sum T
	for _, v := range s {
		sum += v
	}
	return sum
}

func maxSlice[T tensor.Numeric](s []T) T {
	return s[argmaxSlice(s)]
}

// argmaxSlice returns the first index of the largest non-NaN value, or 0
// if every value is NaN.
func argmaxSlice[T tensor.Numeric](s []T) int32 {
	best := -1
	for i, v := range s {
		if v != v { // NaN
			continue
		}
		if best < 0 || v > s[best] {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return int32(best) //nolint:gosec // bounded by lane length
}
