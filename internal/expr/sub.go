package expr

import "github.com/graft-ml/graft/internal/tensor"

// SubExpr represents subtraction: out = a - b.
//
// Local derivatives:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
type SubExpr[T tensor.Value[T]] struct {
	left, right Expr[T]
}

// Sub builds a subtraction node over two subtrees.
func Sub[T tensor.Value[T]](left, right Expr[T]) *SubExpr[T] {
	return &SubExpr[T]{left: left, right: right}
}

// Value evaluates the subtree.
func (e *SubExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [left, right].
func (e *SubExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.left, e.right}
}

// Forward computes a - b and the local derivatives [1, -1].
func (e *SubExpr[T]) Forward(childVals []T) (T, []T, error) {
	a, b := childVals[0], childVals[1]
	return a.Sub(b), []T{a.One(), b.One().Neg()}, nil
}

func (e *SubExpr[T]) sealed() {}
