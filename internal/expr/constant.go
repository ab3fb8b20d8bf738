package expr

import "github.com/graft-ml/graft/internal/tensor"

// Constant is a leaf holding a fixed value. It is never mutated and
// receives no parameter updates; gradient flowing into it is discarded.
type Constant[T tensor.Value[T]] struct {
	value T
}

// NewConstant creates a constant leaf.
func NewConstant[T tensor.Value[T]](value T) *Constant[T] {
	return &Constant[T]{value: value}
}

// Value returns the constant's value.
func (c *Constant[T]) Value() (T, error) {
	return c.value, nil
}

// Children returns nil; constants are leaves.
func (c *Constant[T]) Children() []Expr[T] {
	return nil
}

// Forward returns the constant's value with no local derivatives.
func (c *Constant[T]) Forward(_ []T) (T, []T, error) {
	return c.value, nil, nil
}

func (c *Constant[T]) sealed() {}
