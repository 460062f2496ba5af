package nn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
	"github.com/born-ml/tensorkit/internal/tensor"
)

type Backend = *cpu.CPUBackend

func floatRows(t *testing.T, backend Backend, rows ...[]float32) *tensor.Tensor[float32, Backend] {
	t.Helper()
	x, err := tensor.FromRows(rows, backend)
	require.NoError(t, err)
	return x
}

func intRows(t *testing.T, backend Backend, rows ...[]int32) *tensor.Tensor[int32, Backend] {
	t.Helper()
	x, err := tensor.FromRows(rows, backend)
	require.NoError(t, err)
	return x
}
