package cpu

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Transpose swaps rows and columns: R x C -> C x R.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	rows, cols := x.Shape().Rows(), x.Shape().Cols()
	result := cpu.alloc("transpose", x.Shape().Transposed(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		transposeKernel(result.AsFloat32(), x.AsFloat32(), rows, cols)
	case tensor.Float64:
		transposeKernel(result.AsFloat64(), x.AsFloat64(), rows, cols)
	case tensor.Int32:
		transposeKernel(result.AsInt32(), x.AsInt32(), rows, cols)
	case tensor.Int64:
		transposeKernel(result.AsInt64(), x.AsInt64(), rows, cols)
	case tensor.Uint8:
		transposeKernel(result.AsUint8(), x.AsUint8(), rows, cols)
	case tensor.Bool:
		transposeKernel(result.AsBool(), x.AsBool(), rows, cols)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", x.DType()))
	}
	return result
}

func transposeKernel[T tensor.DType](dst, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}

// Expand broadcasts x to shape. Along each axis the source extent must
// equal the target extent or be 1; a source extent of 1 always reads
// index 0.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if err := x.Shape().CanBroadcastTo(shape); err != nil {
		panic(fmt.Sprintf("expand: %v -> %v: %v", x.Shape(), shape, err))
	}

	result := cpu.alloc("expand", shape, x.DType())
	src, dst := x.Shape(), shape

	switch x.DType() {
	case tensor.Float32:
		expandKernel(result.AsFloat32(), x.AsFloat32(), src, dst)
	case tensor.Float64:
		expandKernel(result.AsFloat64(), x.AsFloat64(), src, dst)
	case tensor.Int32:
		expandKernel(result.AsInt32(), x.AsInt32(), src, dst)
	case tensor.Int64:
		expandKernel(result.AsInt64(), x.AsInt64(), src, dst)
	case tensor.Uint8:
		expandKernel(result.AsUint8(), x.AsUint8(), src, dst)
	case tensor.Bool:
		expandKernel(result.AsBool(), x.AsBool(), src, dst)
	default:
		panic(fmt.Sprintf("expand: unsupported dtype %s", x.DType()))
	}
	return result
}

func expandKernel[T tensor.DType](out, in []T, inShape, outShape tensor.Shape) {
	inCols := inShape.Cols()
	outRows, outCols := outShape.Rows(), outShape.Cols()

	for i := 0; i < outRows; i++ {
		si := i
		if inShape.Rows() == 1 {
			si = 0
		}
		for j := 0; j < outCols; j++ {
			sj := j
			if inCols == 1 {
				sj = 0
			}
			out[i*outCols+j] = in[si*inCols+sj]
		}
	}
}
