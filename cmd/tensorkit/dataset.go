package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/born-ml/tensorkit/backend/cpu"
	"github.com/born-ml/tensorkit/tensor"
)

// dataset holds labelled feature rows for the forward command.
type dataset struct {
	Features [][]float32 // [num_samples, num_features]
	Labels   []int32     // [num_samples]
}

// sampleDataset returns the built-in demo batch: six 2-feature rows over
// three classes.
func sampleDataset() *dataset {
	return &dataset{
		Features: [][]float32{
			{1, 2},
			{3, 4},
			{-1, 0.5},
			{0.2, -0.3},
			{2.5, -1},
			{-2, -2},
		},
		Labels: []int32{0, 1, 2, 1, 0, 2},
	}
}

// loadCSV reads a dataset from a CSV file.
//
// Format:
//
//	label,f0,f1,...
//	2,0.5,-1.25,...
//
// The first row is a header and is skipped. Every record must have the same
// number of fields. maxSamples limits the rows read (0 = all).
func loadCSV(path string, maxSamples int) (*dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return readCSV(file, maxSamples)
}

func readCSV(r io.Reader, maxSamples int) (*dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("CSV file is empty or missing header")
	}

	// Skip header row
	records = records[1:]
	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}

	width := len(records[0]) - 1
	if width < 1 {
		return nil, errors.New("CSV records need a label and at least one feature")
	}

	d := &dataset{
		Features: make([][]float32, len(records)),
		Labels:   make([]int32, len(records)),
	}

	for i, record := range records {
		line := i + 2
		label, err := strconv.ParseInt(record[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid label on line %d: %w", line, err)
		}
		if label < 0 {
			return nil, fmt.Errorf("negative label on line %d: %d", line, label)
		}
		d.Labels[i] = int32(label)

		d.Features[i] = make([]float32, width)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid feature on line %d, column %d: %w", line, j+2, err)
			}
			d.Features[i][j] = float32(v)
		}
	}

	return d, nil
}

// NumSamples returns the number of rows.
func (d *dataset) NumSamples() int {
	return len(d.Features)
}

// NumClasses returns the largest label plus one.
func (d *dataset) NumClasses() int {
	var highest int32
	for _, l := range d.Labels {
		highest = max(highest, l)
	}
	return int(highest) + 1
}

// Head returns the first n rows.
func (d *dataset) Head(n int) *dataset {
	return &dataset{
		Features: d.Features[:n],
		Labels:   d.Labels[:n],
	}
}

// Tensors converts the dataset into an input batch and [batch, 1] class ids.
func (d *dataset) Tensors(backend *cpu.Backend) (*tensor.Tensor[float32, *cpu.Backend], *tensor.Tensor[int32, *cpu.Backend], error) {
	inputs, err := tensor.FromRows(d.Features, backend)
	if err != nil {
		return nil, nil, fmt.Errorf("inputs: %w", err)
	}
	classes, err := tensor.FromSlice(d.Labels, tensor.Shape{len(d.Labels), 1}, backend)
	if err != nil {
		return nil, nil, fmt.Errorf("labels: %w", err)
	}
	return inputs, classes, nil
}
