package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
	"github.com/born-ml/tensorkit/internal/tensor"
)

func newClassifier(backend Backend) *Sequential[Backend] {
	src := tensor.NewSource(42)
	return NewSequential[Backend](
		NewDense(DefaultDenseConfig(2, 3), src, backend),
		NewReLU[Backend](),
		NewDense(DefaultDenseConfig(3, 2), src, backend),
		NewSoftmax[Backend](),
	)
}

func TestSequential_Forward(t *testing.T) {
	backend := cpu.New()
	model := newClassifier(backend)

	output := model.Forward(floatRows(t, backend, []float32{1, 2}, []float32{-3, 4}, []float32{0, 0}))

	require.True(t, output.Shape().Equal(tensor.Shape{3, 2}))
	for i := 0; i < output.Rows(); i++ {
		row := output.Row(i)
		assert.InDelta(t, 1.0, row[0]+row[1], 1e-6)
	}
}

func TestSequential_MatchesManualChain(t *testing.T) {
	backend := cpu.New()
	model := newClassifier(backend)
	input := floatRows(t, backend, []float32{0.5, -1})

	manual := input
	for i := 0; i < model.Len(); i++ {
		manual = model.Module(i).Forward(manual)
	}

	assert.Equal(t, manual.Data(), model.Forward(input).Data())
}

func TestSequential_Empty(t *testing.T) {
	backend := cpu.New()
	input := floatRows(t, backend, []float32{1, 2})

	model := NewSequential[Backend]()

	assert.Same(t, input, model.Forward(input))
	assert.Empty(t, model.Parameters())
	assert.Equal(t, 0, model.Len())
}

func TestSequential_Parameters(t *testing.T) {
	backend := cpu.New()
	model := newClassifier(backend)

	params := model.Parameters()
	require.Len(t, params, 4)

	named := model.NamedParameters()
	require.Len(t, named, 4)
	for _, key := range []string{"0.weight", "0.bias", "2.weight", "2.bias"} {
		assert.Contains(t, named, key)
	}
	assert.True(t, named["2.weight"].Tensor().Shape().Equal(tensor.Shape{3, 2}))
	assert.Same(t, params[0], named["0.weight"])
}

func TestSequential_AddAndModule(t *testing.T) {
	backend := cpu.New()
	model := newClassifier(backend)

	assert.Equal(t, 4, model.Len())
	assert.IsType(t, &ReLU[Backend]{}, model.Module(1))

	model.Add(NewReLU[Backend]())
	assert.Equal(t, 5, model.Len())

	assert.PanicsWithValue(t, "Sequential.Module: index out of bounds", func() { model.Module(5) })
	assert.Panics(t, func() { model.Module(-1) })
}
