// Package autodiff implements reverse-mode automatic differentiation over
// static expression trees.
//
// A Tape linearizes a tree into a flat post-order schedule at construction
// time: one slot per node, children always at lower positions than their
// parent, the root last. Forward replays the schedule bottom-up, computing
// each node's value and caching the local derivative per child in the same
// sweep. Backward walks the schedule top-down, applying the chain rule once
// per edge and handing each trainable leaf its accumulated gradient.
//
// A Tape is owned by exactly one driver and must not be shared across
// concurrent evaluations; every operation runs synchronously to completion.
package autodiff

import (
	"errors"
	"fmt"

	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/tensor"
)

// ErrNotEvaluated is returned when Backward is called without an
// immediately preceding Forward. Local derivatives are only valid for the
// forward pass that wrote them, so the ordering is enforced rather than
// producing undefined numbers.
var ErrNotEvaluated = errors.New("autodiff: backward requires a preceding forward pass")

// slot is one accumulator record in the flattened schedule.
type slot[T tensor.Value[T]] struct {
	node     expr.Expr[T] // originating expression node
	children []int        // schedule positions of the node's children, all < own position
	value    T            // value computed by the last forward pass
	locals   []T          // local derivative per child, cached by the last forward pass
	grad     T            // accumulated upstream gradient
}

// Tape is the flattened evaluation schedule for one expression tree.
//
// The schedule is built once, at construction; values, local derivatives
// and gradients inside the slots are rewritten every cycle.
type Tape[T tensor.Value[T]] struct {
	slots     []slot[T]
	root      expr.Expr[T]
	evaluated bool // a forward pass has run since the last backward
	ran       bool // at least one forward pass has ever run
}

// NewTape linearizes the tree rooted at root into a post-order schedule.
func NewTape[T tensor.Value[T]](root expr.Expr[T]) *Tape[T] {
	t := &Tape[T]{root: root}
	t.linearize(root)
	return t
}

// linearize appends the subtree rooted at e in post-order and returns the
// position assigned to e.
func (t *Tape[T]) linearize(e expr.Expr[T]) int {
	children := e.Children()
	positions := make([]int, len(children))
	for i, c := range children {
		positions[i] = t.linearize(c)
	}
	t.slots = append(t.slots, slot[T]{node: e, children: positions})
	return len(t.slots) - 1
}

// Len returns the number of schedule slots (tree nodes).
func (t *Tape[T]) Len() int {
	return len(t.slots)
}

// Root returns the expression the tape was built over.
func (t *Tape[T]) Root() expr.Expr[T] {
	return t.root
}

// Forward replays the schedule in ascending order, computing every node's
// value and caching its local derivatives in one fused sweep. Gradient
// accumulators are reset to the additive identity as part of the sweep,
// starting the cycle clean.
//
// Returns the root value. Fails without side effects visible to Backward
// if a placeholder is unfed.
func (t *Tape[T]) Forward() (T, error) {
	for i := range t.slots {
		s := &t.slots[i]
		childVals := make([]T, len(s.children))
		for j, pos := range s.children {
			childVals[j] = t.slots[pos].value
		}
		v, locals, err := s.node.Forward(childVals)
		if err != nil {
			var zero T
			t.evaluated = false
			return zero, fmt.Errorf("forward at position %d: %w", i, err)
		}
		s.value = v
		s.locals = locals
		s.grad = v.Zero()
	}
	t.evaluated = true
	t.ran = true
	return t.slots[len(t.slots)-1].value, nil
}

// Backward performs one reverse-mode sweep over the schedule, from the root
// down to position 0.
//
// The root's gradient is seeded with the multiplicative identity. Interior
// nodes propagate grad × local into each child's accumulator; trainable
// leaves are handed their accumulated gradient through apply; constants and
// placeholders absorb and discard theirs. Every slot's accumulator is reset
// to the additive identity after it is processed, so the schedule is clean
// for the next cycle.
//
// Returns ErrNotEvaluated unless a forward pass ran since the last
// backward.
func (t *Tape[T]) Backward(apply func(v *expr.Variable[T], grad T)) error {
	if !t.evaluated {
		return ErrNotEvaluated
	}
	t.evaluated = false

	last := len(t.slots) - 1
	t.slots[last].grad = t.slots[last].value.One()

	for i := last; i >= 0; i-- {
		s := &t.slots[i]
		if v, ok := s.node.(*expr.Variable[T]); ok {
			if apply != nil {
				apply(v, s.grad)
			}
		} else {
			for j, pos := range s.children {
				child := &t.slots[pos]
				child.grad = child.grad.Add(s.grad.Mul(s.locals[j]))
			}
		}
		s.grad = s.grad.Zero()
	}
	return nil
}

// Reset discards all accumulated gradients without applying any update.
// The next cycle must begin with a fresh forward pass.
func (t *Tape[T]) Reset() {
	if !t.ran {
		return
	}
	for i := range t.slots {
		s := &t.slots[i]
		s.grad = s.value.Zero()
	}
	t.evaluated = false
}
