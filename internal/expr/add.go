package expr

import "github.com/graft-ml/graft/internal/tensor"

// AddExpr represents addition: out = a + b.
//
// Local derivatives:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
type AddExpr[T tensor.Value[T]] struct {
	left, right Expr[T]
}

// Add builds an addition node over two subtrees.
func Add[T tensor.Value[T]](left, right Expr[T]) *AddExpr[T] {
	return &AddExpr[T]{left: left, right: right}
}

// Value evaluates the subtree.
func (e *AddExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [left, right].
func (e *AddExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.left, e.right}
}

// Forward computes a + b and the local derivatives [1, 1].
func (e *AddExpr[T]) Forward(childVals []T) (T, []T, error) {
	a, b := childVals[0], childVals[1]
	return a.Add(b), []T{a.One(), b.One()}, nil
}

func (e *AddExpr[T]) sealed() {}
