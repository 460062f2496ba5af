package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// float64 runs through gonum's Dense.Mul; other dtypes use a naive loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}

	m, k := a.Shape().Rows(), a.Shape().Cols()
	kAlt, n := b.Shape().Rows(), b.Shape().Cols()
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := cpu.alloc("matmul", tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float32:
		matmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	case tensor.Int32:
		matmulKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmulKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	case tensor.Uint8:
		matmulKernel(result.AsUint8(), a.AsUint8(), b.AsUint8(), m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulKernel computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulKernel[T tensor.Numeric](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// matmulFloat64 writes A @ B into c. The mat.Dense values wrap the tensor
// buffers directly, so no copies are made.
func matmulFloat64(c, a, b []float64, m, k, n int) {
	dst := mat.NewDense(m, n, c)
	dst.Mul(mat.NewDense(m, k, a), mat.NewDense(k, n, b))
}
