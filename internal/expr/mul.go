package expr

import "github.com/graft-ml/graft/internal/tensor"

// MulExpr represents multiplication: out = a * b.
//
// Local derivatives:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type MulExpr[T tensor.Value[T]] struct {
	left, right Expr[T]
}

// Mul builds a multiplication node over two subtrees.
func Mul[T tensor.Value[T]](left, right Expr[T]) *MulExpr[T] {
	return &MulExpr[T]{left: left, right: right}
}

// Value evaluates the subtree.
func (e *MulExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [left, right].
func (e *MulExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.left, e.right}
}

// Forward computes a * b and the local derivatives [b, a].
func (e *MulExpr[T]) Forward(childVals []T) (T, []T, error) {
	a, b := childVals[0], childVals[1]
	return a.Mul(b), []T{b, a}, nil
}

func (e *MulExpr[T]) sealed() {}
