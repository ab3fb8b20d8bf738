package expr

import "github.com/graft-ml/graft/internal/tensor"

// CosExpr represents the cosine: out = cos(a).
//
// Local derivative: d(cos(a))/da = -sin(a).
type CosExpr[T tensor.Value[T]] struct {
	child Expr[T]
}

// Cos builds a cosine node over a subtree.
func Cos[T tensor.Value[T]](child Expr[T]) *CosExpr[T] {
	return &CosExpr[T]{child: child}
}

// Value evaluates the subtree.
func (e *CosExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [child].
func (e *CosExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.child}
}

// Forward computes cos(a) and the local derivative [-sin(a)].
func (e *CosExpr[T]) Forward(childVals []T) (T, []T, error) {
	a := childVals[0]
	return a.Cos(), []T{a.Sin().Neg()}, nil
}

func (e *CosExpr[T]) sealed() {}
