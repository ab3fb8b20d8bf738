// Copyright 2025 Graft ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the public API for building expression trees.
//
// Trees are assembled from leaves (NewConstant, NewPlaceholder, NewVariable)
// and operator builders (Add, Sub, Mul, Div, Pow, Neg, Log, Sin, Cos, Tan).
// A tree is static: its shape is fixed at construction, nodes are never
// shared between trees, and the same tree may be evaluated any number of
// times.
//
// Example:
//
//	x := expr.NewVariable(tensor.Scalar(3))
//	two := expr.NewConstant(tensor.Scalar(2))
//	f := expr.Pow[tensor.Scalar](x, two) // f = x²
//	v, err := f.Value()                  // 9
package expr

import (
	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/tensor"
)

// ErrUnbound is returned when a Placeholder is evaluated before a value has
// been fed to it.
var ErrUnbound = expr.ErrUnbound

// Expr is a node in an expression tree over value type T. The node set is
// closed; only the types in this package implement it.
type Expr[T tensor.Value[T]] = expr.Expr[T]

// Leaf node types.

// Constant is a leaf holding a fixed value.
type Constant[T tensor.Value[T]] = expr.Constant[T]

// Placeholder is a leaf whose value must be fed before each evaluation.
type Placeholder[T tensor.Value[T]] = expr.Placeholder[T]

// Variable is a trainable leaf, mutated in place by the optimizer.
type Variable[T tensor.Value[T]] = expr.Variable[T]

// NewConstant creates a constant leaf.
func NewConstant[T tensor.Value[T]](value T) *Constant[T] {
	return expr.NewConstant(value)
}

// NewPlaceholder creates an unfed placeholder leaf.
func NewPlaceholder[T tensor.Value[T]]() *Placeholder[T] {
	return expr.NewPlaceholder[T]()
}

// NewVariable creates a variable leaf with the given initial value.
func NewVariable[T tensor.Value[T]](initial T) *Variable[T] {
	return expr.NewVariable(initial)
}

// Operator builders.

// Add builds an addition node: out = a + b.
func Add[T tensor.Value[T]](a, b Expr[T]) Expr[T] {
	return expr.Add(a, b)
}

// Sub builds a subtraction node: out = a - b.
func Sub[T tensor.Value[T]](a, b Expr[T]) Expr[T] {
	return expr.Sub(a, b)
}

// Mul builds a multiplication node: out = a * b.
func Mul[T tensor.Value[T]](a, b Expr[T]) Expr[T] {
	return expr.Mul(a, b)
}

// Div builds a division node: out = a / b.
func Div[T tensor.Value[T]](a, b Expr[T]) Expr[T] {
	return expr.Div(a, b)
}

// Pow builds an exponentiation node: out = a^b.
func Pow[T tensor.Value[T]](a, b Expr[T]) Expr[T] {
	return expr.Pow(a, b)
}

// Neg builds a negation node: out = -a.
func Neg[T tensor.Value[T]](a Expr[T]) Expr[T] {
	return expr.Neg(a)
}

// Log builds a natural-logarithm node: out = ln(a).
func Log[T tensor.Value[T]](a Expr[T]) Expr[T] {
	return expr.Log(a)
}

// Sin builds a sine node: out = sin(a).
func Sin[T tensor.Value[T]](a Expr[T]) Expr[T] {
	return expr.Sin(a)
}

// Cos builds a cosine node: out = cos(a).
func Cos[T tensor.Value[T]](a Expr[T]) Expr[T] {
	return expr.Cos(a)
}

// Tan builds a tangent node: out = tan(a).
func Tan[T tensor.Value[T]](a Expr[T]) Expr[T] {
	return expr.Tan(a)
}
