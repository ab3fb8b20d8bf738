package expr

import "github.com/graft-ml/graft/internal/tensor"

// DivExpr represents division: out = a / b.
//
// Local derivatives:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
type DivExpr[T tensor.Value[T]] struct {
	left, right Expr[T]
}

// Div builds a division node over two subtrees.
func Div[T tensor.Value[T]](left, right Expr[T]) *DivExpr[T] {
	return &DivExpr[T]{left: left, right: right}
}

// Value evaluates the subtree.
func (e *DivExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [left, right].
func (e *DivExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.left, e.right}
}

// Forward computes a / b and the local derivatives [1/b, -a/b²].
func (e *DivExpr[T]) Forward(childVals []T) (T, []T, error) {
	a, b := childVals[0], childVals[1]
	dLeft := b.Inverse()
	dRight := a.Neg().Div(b.Mul(b))
	return a.Div(b), []T{dLeft, dRight}, nil
}

func (e *DivExpr[T]) sealed() {}
