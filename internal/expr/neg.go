package expr

import "github.com/graft-ml/graft/internal/tensor"

// NegExpr represents negation: out = -a.
//
// Local derivative: d(-a)/da = -1.
type NegExpr[T tensor.Value[T]] struct {
	child Expr[T]
}

// Neg builds a negation node over a subtree.
func Neg[T tensor.Value[T]](child Expr[T]) *NegExpr[T] {
	return &NegExpr[T]{child: child}
}

// Value evaluates the subtree.
func (e *NegExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [child].
func (e *NegExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.child}
}

// Forward computes -a and the local derivative [-1].
func (e *NegExpr[T]) Forward(childVals []T) (T, []T, error) {
	a := childVals[0]
	return a.Neg(), []T{a.One().Neg()}, nil
}

func (e *NegExpr[T]) sealed() {}
