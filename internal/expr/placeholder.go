package expr

import "github.com/graft-ml/graft/internal/tensor"

// Placeholder is a leaf whose value is supplied ("fed") by the caller before
// each evaluation. Evaluating an unfed placeholder fails with ErrUnbound.
//
// A placeholder may be re-fed between forward passes; the tree itself is
// untouched, so rebinding changes only the parts of the result that depend
// on it.
type Placeholder[T tensor.Value[T]] struct {
	value T
	bound bool
}

// NewPlaceholder creates an unfed placeholder leaf.
func NewPlaceholder[T tensor.Value[T]]() *Placeholder[T] {
	return &Placeholder[T]{}
}

// Feed binds a value to the placeholder. Any previously fed value is
// replaced.
func (p *Placeholder[T]) Feed(value T) {
	p.value = value
	p.bound = true
}

// Bound reports whether a value has been fed.
func (p *Placeholder[T]) Bound() bool {
	return p.bound
}

// Value returns the fed value, or ErrUnbound if none has been fed.
func (p *Placeholder[T]) Value() (T, error) {
	if !p.bound {
		var zero T
		return zero, ErrUnbound
	}
	return p.value, nil
}

// Children returns nil; placeholders are leaves.
func (p *Placeholder[T]) Children() []Expr[T] {
	return nil
}

// Forward returns the fed value with no local derivatives, or ErrUnbound.
func (p *Placeholder[T]) Forward(_ []T) (T, []T, error) {
	v, err := p.Value()
	return v, nil, err
}

func (p *Placeholder[T]) sealed() {}
