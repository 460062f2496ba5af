package tensor

import "fmt"

// ColumnIndex selects one column per row for IndexCols. It is implemented
// by ScalarIndex and MaskIndex only.
type ColumnIndex[B Backend] interface {
	columnIndex()
}

// ScalarIndex selects the same column from every row.
type ScalarIndex[B Backend] struct {
	Col int
}

// MaskIndex selects, per row, the column whose mask cell equals 1. The
// mask must have the same extents as the indexed tensor.
type MaskIndex[B Backend] struct {
	Mask *Tensor[int32, B]
}

func (ScalarIndex[B]) columnIndex() {}
func (MaskIndex[B]) columnIndex()   {}

// IndexCols picks one value per row and returns them as an Rx1 tensor.
//
// Unlike the other operations, bad indices are reported as errors because
// they usually come from label data rather than from the caller's code:
//   - ScalarIndex outside [0, cols) returns an IndexError wrapping
//     ErrIndexOutOfRange.
//   - A MaskIndex row with no cell equal to 1 returns an IndexError
//     wrapping ErrInvalidMask. If a row has several, the first one wins.
//
// A mask whose extents differ from t's is a programming error and panics.
func (t *Tensor[T, B]) IndexCols(idx ColumnIndex[B]) (*Tensor[T, B], error) {
	rows, cols := t.Rows(), t.Cols()
	out := Zeros[T, B](Shape{rows, 1}, t.backend)
	dst := out.Data()
	src := t.Data()

	switch idx := idx.(type) {
	case ScalarIndex[B]:
		if idx.Col < 0 || idx.Col >= cols {
			return nil, &IndexError{Kind: ErrIndexOutOfRange, Row: -1, Col: idx.Col, Cols: cols}
		}
		for i := 0; i < rows; i++ {
			dst[i] = src[i*cols+idx.Col]
		}
	case MaskIndex[B]:
		mustMatch("index_cols", t.Shape(), idx.Mask.Shape())
		mask := idx.Mask.Data()
		for i := 0; i < rows; i++ {
			col := firstMarked(mask[i*cols : (i+1)*cols])
			if col < 0 {
				return nil, &IndexError{Kind: ErrInvalidMask, Row: i, Col: -1, Cols: cols}
			}
			dst[i] = src[i*cols+col]
		}
	default:
		panic(fmt.Sprintf("index_cols: unknown index variant %T", idx))
	}

	return out, nil
}

// MarkedColumns returns, per row of a 0/1 mask, the first column set to 1
// as an Rx1 int32 tensor. Rows without a 1 yield an IndexError wrapping
// ErrInvalidMask.
func MarkedColumns[B Backend](mask *Tensor[int32, B]) (*Tensor[int32, B], error) {
	rows, cols := mask.Rows(), mask.Cols()
	out := Zeros[int32, B](Shape{rows, 1}, mask.backend)
	dst := out.Data()
	src := mask.Data()

	for i := 0; i < rows; i++ {
		col := firstMarked(src[i*cols : (i+1)*cols])
		if col < 0 {
			return nil, &IndexError{Kind: ErrInvalidMask, Row: i, Col: -1, Cols: cols}
		}
		dst[i] = int32(col) //nolint:gosec // bounded by cols
	}
	return out, nil
}

func firstMarked(row []int32) int {
	for j, v := range row {
		if v == 1 {
			return j
		}
	}
	return -1
}
