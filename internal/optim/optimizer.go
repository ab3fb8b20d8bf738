// Package optim implements the gradient-descent driver over an expression
// tree.
//
// The driver orchestrates one training cycle: feed placeholders, run the
// forward pass, then Minimize or Maximize to run one backward sweep and
// update every trainable variable in place. The pre-update result of the
// last forward pass and a freshly recomputed post-update result are both
// exposed.
//
// Example:
//
//	x := expr.NewVariable(tensor.Scalar(10))
//	f := expr.Mul[tensor.Scalar](x, x)
//	gd := optim.NewGradientDescent[tensor.Scalar](f)
//
//	for range 1000 {
//	    if _, err := gd.Forward(); err != nil {
//	        return err
//	    }
//	    if err := gd.Minimize(0.01); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/graft-ml/graft/internal/autodiff"
	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/tensor"
)

// GradientDescent drives gradient-descent training of one expression tree.
//
// A driver owns its tape exclusively: constructing two drivers over trees
// that share nodes is a caller contract violation, since each node has a
// single schedule slot per tape.
type GradientDescent[T tensor.Value[T]] struct {
	tape      *autodiff.Tape[T]
	result    T
	hasResult bool
}

// NewGradientDescent builds a driver over the tree rooted at root. The
// schedule is allocated here, once, and reused across all cycles.
func NewGradientDescent[T tensor.Value[T]](root expr.Expr[T]) *GradientDescent[T] {
	return &GradientDescent[T]{tape: autodiff.NewTape[T](root)}
}

// Feed binds a value to a placeholder. Any number of placeholders may be
// fed, in any order, before Forward.
func (g *GradientDescent[T]) Feed(p *expr.Placeholder[T], value T) {
	p.Feed(value)
}

// Forward runs one forward pass and caches its result as the pre-update
// result. It may be called repeatedly, e.g. after re-feeding placeholders.
func (g *GradientDescent[T]) Forward() (T, error) {
	v, err := g.tape.Forward()
	if err != nil {
		var zero T
		return zero, err
	}
	g.result = v
	g.hasResult = true
	return v, nil
}

// Minimize runs one backward sweep and applies value -= rate*gradient to
// every trainable variable. Requires a forward pass this cycle; returns
// autodiff.ErrNotEvaluated otherwise.
func (g *GradientDescent[T]) Minimize(rate float64) error {
	return g.step(-rate)
}

// Maximize runs one backward sweep and applies value += rate*gradient to
// every trainable variable. Requires a forward pass this cycle; returns
// autodiff.ErrNotEvaluated otherwise.
func (g *GradientDescent[T]) Maximize(rate float64) error {
	return g.step(rate)
}

func (g *GradientDescent[T]) step(signedRate float64) error {
	return g.tape.Backward(func(v *expr.Variable[T], grad T) {
		v.Update(grad.Scale(signedRate))
	})
}

// PreResult returns the result of the last forward pass. The second return
// is false if no forward pass has completed yet.
func (g *GradientDescent[T]) PreResult() (T, bool) {
	return g.result, g.hasResult
}

// PostResult re-evaluates the root with the current, possibly just-updated,
// variable values. It is a fresh computation, never a cached one, and does
// not disturb the tape.
func (g *GradientDescent[T]) PostResult() (T, error) {
	return g.tape.Root().Value()
}

// Reset discards all accumulated gradients without applying any update.
func (g *GradientDescent[T]) Reset() {
	g.tape.Reset()
}

// Tape returns the driver's schedule, for inspection.
func (g *GradientDescent[T]) Tape() *autodiff.Tape[T] {
	return g.tape
}
