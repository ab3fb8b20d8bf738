// Copyright 2025 Graft ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the value types the autodiff
// engine operates on.
//
// The engine is generic over any type satisfying the Value constraint. Two
// implementations ship with the framework:
//   - Scalar: a float64 newtype
//   - Tensor: a fixed-shape dense float64 tensor with elementwise semantics
//
// Example:
//
//	a := tensor.Ones(tensor.Shape{2, 3})
//	b := tensor.Full(tensor.Shape{2, 3}, 0.5)
//	c := a.Add(b) // elementwise
package tensor

import (
	"github.com/graft-ml/graft/internal/tensor"
)

// Value is the arithmetic contract required from any type plugged into the
// autodiff engine. See the package documentation for the method set.
type Value[T any] = tensor.Value[T]

// Scalar is a float64 implementing the Value contract.
type Scalar = tensor.Scalar

// Tensor is a fixed-shape dense float64 tensor implementing the Value
// contract elementwise. Combining tensors of different shapes panics.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// Zeros creates a tensor of the given shape filled with zeros.
func Zeros(shape Shape) Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor of the given shape filled with ones.
func Ones(shape Shape) Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) Tensor {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a flat row-major slice.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// MatMul returns the matrix product of two 2-D tensors with shapes [m, k]
// and [k, n].
func MatMul(a, b Tensor) Tensor {
	return tensor.MatMul(a, b)
}
