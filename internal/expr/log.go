package expr

import "github.com/graft-ml/graft/internal/tensor"

// LogExpr represents the natural logarithm: out = ln(a).
//
// Local derivative: d(ln(a))/da = 1/a.
type LogExpr[T tensor.Value[T]] struct {
	child Expr[T]
}

// Log builds a natural-logarithm node over a subtree.
func Log[T tensor.Value[T]](child Expr[T]) *LogExpr[T] {
	return &LogExpr[T]{child: child}
}

// Value evaluates the subtree.
func (e *LogExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [child].
func (e *LogExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.child}
}

// Forward computes ln(a) and the local derivative [1/a].
func (e *LogExpr[T]) Forward(childVals []T) (T, []T, error) {
	a := childVals[0]
	return a.Log(), []T{a.Inverse()}, nil
}

func (e *LogExpr[T]) sealed() {}
