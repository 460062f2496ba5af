// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-shape 2D tensors for tensorkit.
//
// # Overview
//
// A Tensor[T, B] is a rows x cols grid whose extents are fixed when it is
// created. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Element-wise and scalar arithmetic, matrix product, transpose
//   - Broadcasting of 1xC and Rx1 tensors to full extents
//   - Axis reductions tagged by axis (AxisResult)
//   - Per-row column selection by index or 0/1 mask (IndexCols)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorkit/backend/cpu"
//	    "github.com/born-ml/tensorkit/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromRows([][]float32{{1, 2}, {3, 4}}, backend)
//	    w := tensor.Eye[float32](2, backend)
//
//	    y := x.MatMul(w).Add(x)                // [[2, 4], [6, 8]]
//	    rowSums := y.SumAxis(tensor.AxisRow).Row() // [[6], [14]]
//	}
//
// # Shape Errors
//
// Mismatched extents in an operation are programming errors and panic.
// Data supplied from outside (literal grids, label masks) is validated and
// reported through errors wrapping ErrShapeMismatch, ErrIndexOutOfRange or
// ErrInvalidMask.
//
// # Randomness
//
// RandFill draws from an explicit Source. Pass NewSource(seed) for
// reproducible results.
package tensor
