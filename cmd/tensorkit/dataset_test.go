package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorkit/backend/cpu"
)

func TestReadCSV(t *testing.T) {
	input := "label,a,b\n2,0.5,-1\n0,1e-3,4\n1,0,0\n"

	d, err := readCSV(strings.NewReader(input), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, d.NumSamples())
	assert.Equal(t, 3, d.NumClasses())
	assert.Equal(t, []int32{2, 0, 1}, d.Labels)
	assert.Equal(t, [][]float32{{0.5, -1}, {0.001, 4}, {0, 0}}, d.Features)

	limited, err := readCSV(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, limited.NumSamples())
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty"},
		{"header only", "label,a\n", "empty"},
		{"no features", "label\n1\n", "at least one feature"},
		{"bad label", "label,a\nx,1\n", "invalid label on line 2"},
		{"negative label", "label,a\n-1,1\n", "negative label on line 2"},
		{"bad feature", "label,a,b\n0,1,nope\n", "invalid feature on line 2, column 3"},
		{"ragged", "label,a\n0,1\n1,2,3\n", "failed to read CSV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCSV(strings.NewReader(tt.input), 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDatasetTensors(t *testing.T) {
	d := sampleDataset().Head(3)

	inputs, labels, err := d.Tensors(cpu.New())
	require.NoError(t, err)

	assert.Equal(t, 3, inputs.Rows())
	assert.Equal(t, 2, inputs.Cols())
	assert.Equal(t, 1, labels.Cols())
	assert.Equal(t, []int32{0, 1, 2}, labels.Data())
	assert.Equal(t, []float32{1, 2, 3, 4, -1, 0.5}, inputs.Data())
}
