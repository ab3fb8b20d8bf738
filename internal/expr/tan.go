package expr

import "github.com/graft-ml/graft/internal/tensor"

// TanExpr represents the tangent: out = tan(a).
//
// Local derivative: d(tan(a))/da = sec²(a) = 1/cos²(a).
type TanExpr[T tensor.Value[T]] struct {
	child Expr[T]
}

// Tan builds a tangent node over a subtree.
func Tan[T tensor.Value[T]](child Expr[T]) *TanExpr[T] {
	return &TanExpr[T]{child: child}
}

// Value evaluates the subtree.
func (e *TanExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [child].
func (e *TanExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.child}
}

// Forward computes tan(a) and the local derivative [1/cos²(a)].
func (e *TanExpr[T]) Forward(childVals []T) (T, []T, error) {
	a := childVals[0]
	c := a.Cos()
	return a.Tan(), []T{c.Mul(c).Inverse()}, nil
}

func (e *TanExpr[T]) sealed() {}
