package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
)

func TestReLU_Forward(t *testing.T) {
	backend := cpu.New()
	input := floatRows(t, backend, []float32{-1, 0, 2}, []float32{3, -0.5, -7})

	output := NewReLU[Backend]().Forward(input)

	assert.Equal(t, []float32{0, 0, 2, 3, 0, 0}, output.Data())
	// input is left untouched
	assert.Equal(t, []float32{-1, 0, 2, 3, -0.5, -7}, input.Data())
	assert.Nil(t, NewReLU[Backend]().Parameters())
}

func TestSoftmax_RowsSumToOne(t *testing.T) {
	backend := cpu.New()
	input := floatRows(t, backend, []float32{1, 2, 3}, []float32{-4, 0, 4}, []float32{0, 0, 0})

	output := NewSoftmax[Backend]().Forward(input)
	require.True(t, output.Shape().Equal(input.Shape()))

	for i := 0; i < output.Rows(); i++ {
		var sum float32
		for _, p := range output.Row(i) {
			assert.Greater(t, p, float32(0))
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "row %d", i)
	}

	// uniform logits give a uniform distribution
	assert.InDeltaSlice(t, []float32{1.0 / 3, 1.0 / 3, 1.0 / 3}, output.Row(2), 1e-6)
}

func TestSoftmax_KnownValues(t *testing.T) {
	backend := cpu.New()
	output := NewSoftmax[Backend]().Forward(floatRows(t, backend, []float32{1, 2, 3}))

	denom := math.Exp(1) + math.Exp(2) + math.Exp(3)
	want := []float32{
		float32(math.Exp(1) / denom),
		float32(math.Exp(2) / denom),
		float32(math.Exp(3) / denom),
	}
	assert.InDeltaSlice(t, want, output.Data(), 1e-6)
}

func TestSoftmax_ShiftInvariant(t *testing.T) {
	backend := cpu.New()
	softmax := NewSoftmax[Backend]()

	base := softmax.Forward(floatRows(t, backend, []float32{1, 2, 3}))
	shifted := softmax.Forward(floatRows(t, backend, []float32{101, 102, 103}))

	assert.InDeltaSlice(t, base.Data(), shifted.Data(), 1e-6)
}

func TestSoftmax_LargeLogits(t *testing.T) {
	backend := cpu.New()
	output := NewSoftmax[Backend]().Forward(floatRows(t, backend, []float32{1000, 1000}, []float32{-1000, 0}))

	for _, p := range output.Data() {
		assert.False(t, math.IsNaN(float64(p)))
		assert.False(t, math.IsInf(float64(p), 0))
	}
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 0, 1}, output.Data(), 1e-6)
}
