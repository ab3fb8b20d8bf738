// Package expr defines the expression node types the autodiff engine
// differentiates.
//
// An expression is an immutable tree of nodes: leaves (Constant, Placeholder,
// Variable) and operators (add, subtract, multiply, divide, power, negate,
// log, sin, cos, tan). Trees are assembled once via the builder functions and
// evaluated any number of times. The node set is closed: every variant lives
// in this package, which is what lets the scheduler flatten a tree into a
// fixed evaluation order.
//
// Each operator node knows its own local derivative rule; the rule is stated
// in the node's doc comment and produced by Forward alongside the value.
package expr

import (
	"errors"

	"github.com/graft-ml/graft/internal/tensor"
)

// ErrUnbound is returned when a Placeholder is evaluated before a value has
// been fed to it.
var ErrUnbound = errors.New("placeholder: value not bound")

// Expr is a node in an expression tree over value type T.
//
// The interface is sealed: only the node types in this package implement it.
type Expr[T tensor.Value[T]] interface {
	// Value evaluates the subtree rooted at this node. It is pure: no
	// state is touched beyond reading leaf values.
	Value() (T, error)

	// Children returns the direct child expressions, left to right.
	// Leaves return nil.
	Children() []Expr[T]

	// Forward computes the node's value from the children's already
	// computed values and returns the local derivative with respect to
	// each child, evaluated at those values. Leaves receive no child
	// values and return no locals.
	Forward(childVals []T) (value T, locals []T, err error)

	sealed()
}

// eval recursively evaluates children and combines them through Forward.
// It backs the Value method of every operator node.
func eval[T tensor.Value[T]](e Expr[T]) (T, error) {
	children := e.Children()
	vals := make([]T, len(children))
	for i, c := range children {
		v, err := c.Value()
		if err != nil {
			var zero T
			return zero, err
		}
		vals[i] = v
	}
	v, _, err := e.Forward(vals)
	return v, err
}
