// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - All six dtypes for element-wise, matrix and reduction kernels
//   - float64 matrix product and reductions on gonum
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
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Thread Safety
//
// The CPU backend holds no mutable state. Each tensor operation
// allocates its own output, so independent tensors may be used from
// different goroutines.
package cpu
