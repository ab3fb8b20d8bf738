// Copyright 2025 Graft ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for reverse-mode automatic
// differentiation over expression trees.
//
// A Tape flattens a tree into a fixed post-order schedule at construction.
// Forward computes values and caches local derivatives in one sweep;
// Backward applies the chain rule from the root down, handing each
// trainable variable its accumulated gradient.
//
// Most callers should use the optim package, which drives the tape through
// full training cycles; the tape is exposed for direct control.
//
// Example:
//
//	x := expr.NewVariable(tensor.Scalar(3))
//	f := expr.Mul[tensor.Scalar](x, x) // f = x²
//
//	tape := autodiff.NewTape[tensor.Scalar](f)
//	tape.Forward()
//	tape.Backward(func(v *expr.Variable[tensor.Scalar], grad tensor.Scalar) {
//	    fmt.Println(grad) // df/dx = 2x = 6
//	})
package autodiff

import (
	"github.com/graft-ml/graft/internal/autodiff"
	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/tensor"
)

// ErrNotEvaluated is returned when Backward is called without an
// immediately preceding Forward.
var ErrNotEvaluated = autodiff.ErrNotEvaluated

// Tape is the flattened post-order evaluation schedule for one expression
// tree. A tape is exclusively owned: never share one across concurrent
// evaluations, and never build two tapes over trees that share nodes.
type Tape[T tensor.Value[T]] = autodiff.Tape[T]

// NewTape linearizes the tree rooted at root into a post-order schedule.
func NewTape[T tensor.Value[T]](root expr.Expr[T]) *Tape[T] {
	return autodiff.NewTape[T](root)
}
