// Copyright 2025 Graft ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for the gradient-descent driver.
//
// The driver orchestrates one training cycle over an expression tree:
// feed placeholders, Forward, then Minimize or Maximize to apply one
// backward sweep and update every trainable variable in place.
//
// Example:
//
//	x1 := expr.NewVariable(tensor.Scalar(5))
//	x2 := expr.NewVariable(tensor.Scalar(-3))
//	f := buildLoss(x1, x2)
//
//	gd := optim.NewGradientDescent[tensor.Scalar](f)
//	for range 1000 {
//	    if _, err := gd.Forward(); err != nil {
//	        return err
//	    }
//	    if err := gd.Minimize(0.01); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/optim"
	"github.com/graft-ml/graft/internal/tensor"
)

// GradientDescent drives gradient-descent training of one expression tree.
type GradientDescent[T tensor.Value[T]] = optim.GradientDescent[T]

// NewGradientDescent builds a driver over the tree rooted at root.
func NewGradientDescent[T tensor.Value[T]](root expr.Expr[T]) *GradientDescent[T] {
	return optim.NewGradientDescent[T](root)
}
