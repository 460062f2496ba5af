// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/tensorkit/backend/cpu"
	"github.com/born-ml/tensorkit/tensor"
)

// TestBackendInterface verifies that the CPU backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want 2x3", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	clone := raw.Clone()
	clone.AsFloat32()[0] = 1
	if raw.AsFloat32()[0] != 0 {
		t.Error("Clone() shares storage with its source")
	}
}

// TestNewRawRejectsRank verifies that only rank-2 shapes are accepted.
func TestNewRawRejectsRank(t *testing.T) {
	_, err := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.CPU)
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("NewRaw(2x3x4) error = %v, want ErrShapeMismatch", err)
	}
}

// TestPublicPipeline exercises the re-exported API end to end.
func TestPublicPipeline(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromRows([][]float32{{1, 2}, {3, 4}}, backend)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	y := x.MatMul(tensor.Eye[float32](2, backend)).Add(x)
	sums := y.SumAxis(tensor.AxisRow).Row()
	if got := sums.Data(); got[0] != 6 || got[1] != 14 {
		t.Errorf("row sums = %v, want [6 14]", got)
	}

	mask, err := tensor.FromRows([][]int32{{0, 1}, {1, 0}}, backend)
	if err != nil {
		t.Fatalf("FromRows mask failed: %v", err)
	}
	picked, err := y.IndexCols(tensor.MaskIndex[*cpu.Backend]{Mask: mask})
	if err != nil {
		t.Fatalf("IndexCols failed: %v", err)
	}
	if got := picked.Data(); got[0] != 4 || got[1] != 6 {
		t.Errorf("IndexCols = %v, want [4 6]", got)
	}

	_, err = y.IndexCols(tensor.ScalarIndex[*cpu.Backend]{Col: 2})
	var idxErr *tensor.IndexError
	if !errors.As(err, &idxErr) || !errors.Is(err, tensor.ErrIndexOutOfRange) {
		t.Errorf("IndexCols(2) error = %v, want IndexError wrapping ErrIndexOutOfRange", err)
	}
}

// TestRandFillSeeded verifies NewSource makes RandFill reproducible.
func TestRandFillSeeded(t *testing.T) {
	backend := cpu.New()

	a := tensor.RandFill[float32](tensor.Shape{3, 3}, tensor.NewSource(7), backend)
	b := tensor.RandFill[float32](tensor.Shape{3, 3}, tensor.NewSource(7), backend)

	for i, v := range a.Data() {
		if b.Data()[i] != v {
			t.Fatalf("cell %d differs: %v vs %v", i, v, b.Data()[i])
		}
	}
}
