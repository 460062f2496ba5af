package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/tensorkit/internal/backend/cpu"
	"github.com/born-ml/tensorkit/internal/tensor"
)

type (
	scalarIndex = tensor.ScalarIndex[*cpu.CPUBackend]
	maskIndex   = tensor.MaskIndex[*cpu.CPUBackend]
)

func TestIndexColsScalar(t *testing.T) {
	a := mustRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	got, err := a.IndexCols(scalarIndex{Col: 1})
	if err != nil {
		t.Fatalf("IndexCols(1): %v", err)
	}
	assertData(t, got, tensor.Shape{2, 1}, []float32{2, 5})

	got, err = a.IndexCols(scalarIndex{Col: 2})
	if err != nil {
		t.Fatalf("IndexCols(2): %v", err)
	}
	assertData(t, got, tensor.Shape{2, 1}, []float32{3, 6})
}

func TestIndexColsScalarOutOfRange(t *testing.T) {
	a := mustRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	for _, col := range []int{3, 4, -1} {
		_, err := a.IndexCols(scalarIndex{Col: col})
		if !errors.Is(err, tensor.ErrIndexOutOfRange) {
			t.Errorf("IndexCols(%d) error = %v, want ErrIndexOutOfRange", col, err)
			continue
		}

		var idxErr *tensor.IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("IndexCols(%d) error is %T, want *IndexError", col, err)
		}
		if idxErr.Col != col || idxErr.Cols != 3 || idxErr.Row != -1 {
			t.Errorf("IndexError = %+v", idxErr)
		}
	}
}

func TestIndexColsMask(t *testing.T) {
	a := mustRows(t, [][]float32{{0.7, 0.2, 0.1}, {0.1, 0.8, 0.1}})
	mask := mustRows(t, [][]int32{{1, 0, 0}, {0, 1, 0}})

	got, err := a.IndexCols(maskIndex{Mask: mask})
	if err != nil {
		t.Fatalf("IndexCols(mask): %v", err)
	}
	assertData(t, got, tensor.Shape{2, 1}, []float32{0.7, 0.8})
}

func TestIndexColsMaskFirstMarkWins(t *testing.T) {
	a := mustRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	mask := mustRows(t, [][]int32{{0, 1, 1}, {1, 0, 1}})

	got, err := a.IndexCols(maskIndex{Mask: mask})
	if err != nil {
		t.Fatalf("IndexCols(mask): %v", err)
	}
	assertData(t, got, tensor.Shape{2, 1}, []float32{2, 4})
}

func TestIndexColsMaskWithoutMark(t *testing.T) {
	a := mustRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	// 2 is not a mark; only cells equal to 1 count
	mask := mustRows(t, [][]int32{{1, 0, 0}, {0, 2, 0}})

	_, err := a.IndexCols(maskIndex{Mask: mask})
	if !errors.Is(err, tensor.ErrInvalidMask) {
		t.Fatalf("error = %v, want ErrInvalidMask", err)
	}

	var idxErr *tensor.IndexError
	if !errors.As(err, &idxErr) || idxErr.Row != 1 {
		t.Errorf("IndexError = %+v, want Row 1", idxErr)
	}
}

func TestIndexColsMaskShapeMismatchPanics(t *testing.T) {
	a := mustRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	mask := mustRows(t, [][]int32{{1, 0}, {0, 1}})

	assertPanics(t, "mask 2x2 on 2x3", func() { _, _ = a.IndexCols(maskIndex{Mask: mask}) })
}

func TestMarkedColumns(t *testing.T) {
	mask := mustRows(t, [][]int32{{0, 0, 1}, {1, 1, 0}, {0, 1, 0}})

	got, err := tensor.MarkedColumns(mask)
	if err != nil {
		t.Fatalf("MarkedColumns: %v", err)
	}
	assertData(t, got, tensor.Shape{3, 1}, []int32{2, 0, 1})

	bad := mustRows(t, [][]int32{{0, 1}, {0, 0}})
	if _, err := tensor.MarkedColumns(bad); !errors.Is(err, tensor.ErrInvalidMask) {
		t.Errorf("MarkedColumns(bad) error = %v, want ErrInvalidMask", err)
	}
}
