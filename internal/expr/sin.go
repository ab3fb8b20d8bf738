package expr

import "github.com/graft-ml/graft/internal/tensor"

// SinExpr represents the sine: out = sin(a).
//
// Local derivative: d(sin(a))/da = cos(a).
type SinExpr[T tensor.Value[T]] struct {
	child Expr[T]
}

// Sin builds a sine node over a subtree.
func Sin[T tensor.Value[T]](child Expr[T]) *SinExpr[T] {
	return &SinExpr[T]{child: child}
}

// Value evaluates the subtree.
func (e *SinExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [child].
func (e *SinExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.child}
}

// Forward computes sin(a) and the local derivative [cos(a)].
func (e *SinExpr[T]) Forward(childVals []T) (T, []T, error) {
	a := childVals[0]
	return a.Sin(), []T{a.Cos()}, nil
}

func (e *SinExpr[T]) sealed() {}
