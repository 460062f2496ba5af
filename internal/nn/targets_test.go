package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
	"github.com/born-ml/tensorkit/internal/tensor"
)

func TestOneHot_Mask(t *testing.T) {
	backend := cpu.New()
	labels := intRows(t, backend, []int32{0, 1, 0}, []int32{1, 0, 0})

	mask, err := OneHot[Backend]{Labels: labels}.Mask(3)
	require.NoError(t, err)
	assert.Same(t, labels, mask)

	_, err = OneHot[Backend]{Labels: labels}.Mask(4)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestCategorical_Mask(t *testing.T) {
	backend := cpu.New()
	classes := intRows(t, backend, []int32{2}, []int32{0}, []int32{1})

	mask, err := Categorical[Backend]{Classes: classes}.Mask(3)
	require.NoError(t, err)

	require.True(t, mask.Shape().Equal(tensor.Shape{3, 3}))
	assert.Equal(t, []int32{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	}, mask.Data())
}

func TestCategorical_MaskErrors(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name    string
		classes *tensor.Tensor[int32, Backend]
		wantErr error
	}{
		{"id too large", intRows(t, backend, []int32{0}, []int32{3}), tensor.ErrIndexOutOfRange},
		{"negative id", intRows(t, backend, []int32{-1}), tensor.ErrIndexOutOfRange},
		{"not a column", intRows(t, backend, []int32{0, 1}), tensor.ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Categorical[Backend]{Classes: tt.classes}.Mask(3)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCategorical_MaskErrorNamesRow(t *testing.T) {
	backend := cpu.New()

	_, err := Categorical[Backend]{Classes: intRows(t, backend, []int32{0}, []int32{5})}.Mask(3)
	require.Error(t, err)

	var indexErr *tensor.IndexError
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 5, indexErr.Col)
	assert.Equal(t, 3, indexErr.Cols)
	assert.Contains(t, err.Error(), "row 1")
}
