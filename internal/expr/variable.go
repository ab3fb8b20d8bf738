package expr

import "github.com/graft-ml/graft/internal/tensor"

// Variable is a trainable leaf: the optimizer mutates its value in place
// using the gradient accumulated for it during a backward pass.
type Variable[T tensor.Value[T]] struct {
	value T
}

// NewVariable creates a variable leaf with the given initial value.
func NewVariable[T tensor.Value[T]](initial T) *Variable[T] {
	return &Variable[T]{value: initial}
}

// Value returns the variable's current value.
func (v *Variable[T]) Value() (T, error) {
	return v.value, nil
}

// Update adds delta to the variable's value in place. The caller is
// responsible for the sign and learning-rate scaling of delta.
func (v *Variable[T]) Update(delta T) {
	v.value = v.value.Add(delta)
}

// Children returns nil; variables are leaves.
func (v *Variable[T]) Children() []Expr[T] {
	return nil
}

// Forward returns the current value with no local derivatives.
func (v *Variable[T]) Forward(_ []T) (T, []T, error) {
	return v.value, nil, nil
}

func (v *Variable[T]) sealed() {}
