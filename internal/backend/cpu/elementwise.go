package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/tensorkit/internal/tensor"
)

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

func (op arithOp) String() string {
	return [...]string{"add", "sub", "mul", "div"}[op]
}

// Add performs element-wise addition on identical extents.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction on identical extents.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication on identical extents.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMul, a, b)
}

// Div performs element-wise division on identical extents.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opDiv, a, b)
}

func (cpu *CPUBackend) binary(op arithOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary(op.String(), a, b)
	result := cpu.alloc(op.String(), a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		binaryKernel(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		binaryKernel(op, result.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		binaryKernel(op, result.AsInt64(), a.AsInt64(), b.AsInt64())
	case tensor.Uint8:
		binaryKernel(op, result.AsUint8(), a.AsUint8(), b.AsUint8())
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return result
}

func binaryKernel[T tensor.Numeric](op arithOp, dst, a, b []T) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	}
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(opAdd, x, scalar)
}

// SubScalar subtracts scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(opSub, x, scalar)
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(opMul, x, scalar)
}

// DivScalar divides every element by scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar(opDiv, x, scalar)
}

func (cpu *CPUBackend) scalar(op arithOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	name := op.String() + "Scalar"
	result := cpu.alloc(name, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(op, result.AsFloat32(), x.AsFloat32(), scalarAs[float32](name, scalar))
	case tensor.Float64:
		scalarKernel(op, result.AsFloat64(), x.AsFloat64(), scalarAs[float64](name, scalar))
	case tensor.Int32:
		scalarKernel(op, result.AsInt32(), x.AsInt32(), scalarAs[int32](name, scalar))
	case tensor.Int64:
		scalarKernel(op, result.AsInt64(), x.AsInt64(), scalarAs[int64](name, scalar))
	case tensor.Uint8:
		scalarKernel(op, result.AsUint8(), x.AsUint8(), scalarAs[uint8](name, scalar))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}
	return result
}

func scalarKernel[T tensor.Numeric](op arithOp, dst, x []T, s T) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = x[i] + s
		}
	case opSub:
		for i := range dst {
			dst[i] = x[i] - s
		}
	case opMul:
		for i := range dst {
			dst[i] = x[i] * s
		}
	case opDiv:
		for i := range dst {
			dst[i] = x[i] / s
		}
	}
}

func scalarAs[T tensor.Numeric](op string, scalar any) T {
	v, ok := scalar.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("%s: scalar has type %T, tensor holds %T", op, scalar, zero))
	}
	return v
}

// Exp computes e^x element-wise. Float tensors only.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("exp", x, math.Exp)
}

// Log computes ln(x) element-wise. Float tensors only.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("log", x, math.Log)
}

func (cpu *CPUBackend) unaryFloat(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := cpu.alloc(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		for i, v := range src {
			dst[i] = float32(f(float64(v)))
		}
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		for i, v := range src {
			dst[i] = f(v)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}
	return result
}
