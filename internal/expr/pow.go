package expr

import "github.com/graft-ml/graft/internal/tensor"

// PowExpr represents exponentiation: out = a^b.
//
// Local derivatives:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a)
type PowExpr[T tensor.Value[T]] struct {
	base, exponent Expr[T]
}

// Pow builds an exponentiation node over a base and an exponent subtree.
func Pow[T tensor.Value[T]](base, exponent Expr[T]) *PowExpr[T] {
	return &PowExpr[T]{base: base, exponent: exponent}
}

// Value evaluates the subtree.
func (e *PowExpr[T]) Value() (T, error) {
	return eval[T](e)
}

// Children returns [base, exponent].
func (e *PowExpr[T]) Children() []Expr[T] {
	return []Expr[T]{e.base, e.exponent}
}

// Forward computes a^b and the local derivatives [b*a^(b-1), a^b*ln(a)].
func (e *PowExpr[T]) Forward(childVals []T) (T, []T, error) {
	a, b := childVals[0], childVals[1]
	out := a.Pow(b)
	dBase := b.Mul(a.Pow(b.Sub(b.One())))
	dExponent := out.Mul(a.Log())
	return out, []T{dBase, dExponent}, nil
}

func (e *PowExpr[T]) sealed() {}
