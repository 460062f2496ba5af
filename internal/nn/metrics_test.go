package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
	"github.com/born-ml/tensorkit/internal/tensor"
)

func TestAccuracy_Calculate(t *testing.T) {
	backend := cpu.New()
	probs := floatRows(t, backend,
		[]float32{0.7, 0.2, 0.1},
		[]float32{0.1, 0.8, 0.1},
		[]float32{0.3, 0.3, 0.4},
		[]float32{0.5, 0.4, 0.1},
	)
	targets := Categorical[Backend]{Classes: intRows(t, backend, []int32{0}, []int32{1}, []int32{2}, []int32{1})}

	acc, err := NewAccuracy[Backend]().Calculate(probs, targets)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, acc, 1e-6)
}

func TestAccuracy_OneHotMatchesCategorical(t *testing.T) {
	backend := cpu.New()
	probs := floatRows(t, backend, []float32{0.9, 0.1}, []float32{0.4, 0.6})
	metric := NewAccuracy[Backend]()

	a, err := metric.Calculate(probs, OneHot[Backend]{Labels: intRows(t, backend, []int32{1, 0}, []int32{1, 0})})
	require.NoError(t, err)
	b, err := metric.Calculate(probs, Categorical[Backend]{Classes: intRows(t, backend, []int32{0}, []int32{0})})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.InDelta(t, 0.5, a, 1e-6)
}

func TestAccuracy_TiesPickFirstClass(t *testing.T) {
	backend := cpu.New()
	probs := floatRows(t, backend, []float32{0.5, 0.5}, []float32{0.25, 0.25})
	metric := NewAccuracy[Backend]()

	first, err := metric.Calculate(probs, Categorical[Backend]{Classes: intRows(t, backend, []int32{0}, []int32{0})})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, first, 1e-6)

	second, err := metric.Calculate(probs, Categorical[Backend]{Classes: intRows(t, backend, []int32{1}, []int32{1})})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, second, 1e-6)
}

func TestAccuracy_Errors(t *testing.T) {
	backend := cpu.New()
	probs := floatRows(t, backend, []float32{0.5, 0.5}, []float32{0.1, 0.9})
	metric := NewAccuracy[Backend]()

	_, err := metric.Calculate(probs, OneHot[Backend]{Labels: intRows(t, backend, []int32{0, 1}, []int32{0, 0})})
	assert.True(t, errors.Is(err, tensor.ErrInvalidMask), "got %v", err)

	_, err = metric.Calculate(probs, Categorical[Backend]{Classes: intRows(t, backend, []int32{1})})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch), "got %v", err)

	_, err = metric.Calculate(probs, Categorical[Backend]{Classes: intRows(t, backend, []int32{0}, []int32{2})})
	assert.True(t, errors.Is(err, tensor.ErrIndexOutOfRange), "got %v", err)
}
