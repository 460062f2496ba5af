package cpu

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Equal compares two tensors element-wise and returns a bool tensor.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("equal", a, b)
	result := cpu.alloc("equal", a.Shape(), tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		equalKernel(dst, a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		equalKernel(dst, a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		equalKernel(dst, a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		equalKernel(dst, a.AsInt64(), b.AsInt64())
	case tensor.Uint8:
		equalKernel(dst, a.AsUint8(), b.AsUint8())
	case tensor.Bool:
		equalKernel(dst, a.AsBool(), b.AsBool())
	default:
		panic(fmt.Sprintf("equal: unsupported dtype %s", a.DType()))
	}
	return result
}

func equalKernel[T tensor.DType](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}

// Cast converts x to dtype. Bool becomes 0/1; numbers become bool as != 0.
// Numeric conversions follow Go's conversion rules.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result := cpu.alloc("cast", x.Shape(), dtype)

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Uint8:
		castFrom(result, x.AsUint8())
	case tensor.Bool:
		castFromBool(result, x.AsBool())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
	return result
}

func castFrom[T tensor.Numeric](result *tensor.RawTensor, src []T) {
	switch result.DType() {
	case tensor.Float32:
		convertKernel(result.AsFloat32(), src)
	case tensor.Float64:
		convertKernel(result.AsFloat64(), src)
	case tensor.Int32:
		convertKernel(result.AsInt32(), src)
	case tensor.Int64:
		convertKernel(result.AsInt64(), src)
	case tensor.Uint8:
		convertKernel(result.AsUint8(), src)
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", result.DType()))
	}
}

func convertKernel[U, T tensor.Numeric](dst []U, src []T) {
	for i, v := range src {
		dst[i] = U(v)
	}
}

func castFromBool(result *tensor.RawTensor, src []bool) {
	switch result.DType() {
	case tensor.Float32:
		boolKernel(result.AsFloat32(), src)
	case tensor.Float64:
		boolKernel(result.AsFloat64(), src)
	case tensor.Int32:
		boolKernel(result.AsInt32(), src)
	case tensor.Int64:
		boolKernel(result.AsInt64(), src)
	case tensor.Uint8:
		boolKernel(result.AsUint8(), src)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", result.DType()))
	}
}

func boolKernel[U tensor.Numeric](dst []U, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		}
	}
}
