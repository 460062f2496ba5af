// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorkit/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - backend/cpu: Pure Go, float64 kernels on gonum
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorkit/backend/cpu"
//	    "github.com/born-ml/tensorkit/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // Uses backend.Add under the hood
type Backend = tensor.Backend

// Source is a uniform random generator consumed by RandFill.
type Source = tensor.Source

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) Source {
	return tensor.NewSource(seed)
}
