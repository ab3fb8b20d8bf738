package autodiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graft-ml/graft/internal/expr"
	"github.com/graft-ml/graft/internal/tensor"
)

type S = tensor.Scalar

// collectGrads runs one backward sweep recording every variable gradient.
func collectGrads(t *testing.T, tape *Tape[S]) map[*expr.Variable[S]]S {
	t.Helper()
	grads := make(map[*expr.Variable[S]]S)
	err := tape.Backward(func(v *expr.Variable[S], g S) {
		grads[v] = grads[v] + g
	})
	require.NoError(t, err)
	return grads
}

func TestLinearizePostOrder(t *testing.T) {
	x := expr.NewVariable[S](1)
	y := expr.NewConstant[S](2)
	// (x*y) + 3: four nodes in post-order [x, y, x*y, +].
	f := expr.Add[S](expr.Mul[S](x, y), expr.NewConstant[S](3))

	tape := NewTape[S](f)
	assert.Equal(t, 4, tape.Len())

	// Children always occupy lower positions; the root is last.
	for i, s := range tape.slots {
		for _, pos := range s.children {
			assert.Less(t, pos, i, "child of slot %d at position %d", i, pos)
		}
	}
	assert.Same(t, f, tape.slots[tape.Len()-1].node)
}

func TestForwardValue(t *testing.T) {
	four := expr.NewConstant[S](4)
	two := expr.NewConstant[S](2)
	f := expr.Add[S](expr.Add[S](expr.Mul[S](four, four), four), two)

	tape := NewTape[S](f)
	v, err := tape.Forward()
	require.NoError(t, err)
	assert.Equal(t, S(22), v)
}

func TestForwardIdempotent(t *testing.T) {
	x := expr.NewVariable[S](1.7)
	f := expr.Sin[S](expr.Mul[S](x, x))

	tape := NewTape[S](f)
	v1, err := tape.Forward()
	require.NoError(t, err)
	v2, err := tape.Forward()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestForwardUnboundPlaceholder(t *testing.T) {
	p := expr.NewPlaceholder[S]()
	f := expr.Add[S](expr.NewConstant[S](5), p)

	tape := NewTape[S](f)
	_, err := tape.Forward()
	require.Error(t, err)
	assert.ErrorIs(t, err, expr.ErrUnbound)

	// Feeding the placeholder repairs the evaluation.
	p.Feed(3)
	v, err := tape.Forward()
	require.NoError(t, err)
	assert.Equal(t, S(8), v)
}

func TestBackwardGradients(t *testing.T) {
	// f(x, y) = x*y + sin(x) at x=2, y=5:
	//   df/dx = y + cos(x), df/dy = x
	x := expr.NewVariable[S](2)
	y := expr.NewVariable[S](5)
	f := expr.Add[S](expr.Mul[S](x, y), expr.Sin[S](x))

	tape := NewTape[S](f)
	_, err := tape.Forward()
	require.NoError(t, err)

	grads := collectGrads(t, tape)
	assert.InDelta(t, 5+math.Cos(2), float64(grads[x]), 1e-12)
	assert.InDelta(t, 2, float64(grads[y]), 1e-12)
}

func TestBackwardSharedVariableFanIn(t *testing.T) {
	// f(x) = x*x: the two leaves are distinct nodes over the same
	// variable object, so both contributions must reach the callback.
	x := expr.NewVariable[S](3)
	f := expr.Mul[S](x, x)

	tape := NewTape[S](f)
	_, err := tape.Forward()
	require.NoError(t, err)

	grads := collectGrads(t, tape)
	assert.InDelta(t, 6, float64(grads[x]), 1e-12) // d(x²)/dx = 2x
}

func TestBackwardOrderingViolation(t *testing.T) {
	x := expr.NewVariable[S](1)
	tape := NewTape[S](expr.Mul[S](x, x))

	// Backward before any forward.
	err := tape.Backward(nil)
	assert.ErrorIs(t, err, ErrNotEvaluated)

	// Backward twice in a row.
	_, err = tape.Forward()
	require.NoError(t, err)
	require.NoError(t, tape.Backward(nil))
	err = tape.Backward(nil)
	assert.ErrorIs(t, err, ErrNotEvaluated)
}

func TestBackwardResetInvariant(t *testing.T) {
	x := expr.NewVariable[S](2)
	y := expr.NewVariable[S](3)
	f := expr.Div[S](expr.Pow[S](x, expr.NewConstant[S](2)), y)

	tape := NewTape[S](f)
	_, err := tape.Forward()
	require.NoError(t, err)
	require.NoError(t, tape.Backward(nil))

	for i, s := range tape.slots {
		assert.Equal(t, S(0), s.grad, "slot %d gradient not reset", i)
	}
}

func TestReset(t *testing.T) {
	x := expr.NewVariable[S](2)
	tape := NewTape[S](expr.Mul[S](x, x))

	// Reset before any forward is a no-op.
	tape.Reset()

	_, err := tape.Forward()
	require.NoError(t, err)
	tape.Reset()

	// Discarded state: backward now needs a fresh forward.
	err = tape.Backward(nil)
	assert.ErrorIs(t, err, ErrNotEvaluated)
	for i, s := range tape.slots {
		assert.Equal(t, S(0), s.grad, "slot %d gradient not reset", i)
	}
}

func TestBackwardConstantAndPlaceholderAbsorb(t *testing.T) {
	// Gradient flowing into non-trainable leaves is discarded; only the
	// variable receives a callback.
	p := expr.NewPlaceholder[S]()
	x := expr.NewVariable[S](4)
	f := expr.Mul[S](expr.Add[S](p, expr.NewConstant[S](1)), x)

	p.Feed(2)
	tape := NewTape[S](f)
	_, err := tape.Forward()
	require.NoError(t, err)

	var calls int
	err = tape.Backward(func(v *expr.Variable[S], g S) {
		calls++
		assert.Same(t, x, v)
		assert.InDelta(t, 3, float64(g), 1e-12)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTensorValuedTape(t *testing.T) {
	// Elementwise f(x) = x*x over a 2-vector; gradient is 2x per element.
	init, err := tensor.FromSlice([]float64{1.5, -2}, tensor.Shape{2})
	require.NoError(t, err)

	x := expr.NewVariable(init)
	f := expr.Mul[tensor.Tensor](x, x)

	tape := NewTape[tensor.Tensor](f)
	v, err := tape.Forward()
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v.Data()[0], 1e-12)
	assert.InDelta(t, 4, v.Data()[1], 1e-12)

	var grad tensor.Tensor
	err = tape.Backward(func(_ *expr.Variable[tensor.Tensor], g tensor.Tensor) {
		if len(grad.Data()) == 0 {
			grad = g.Clone()
		} else {
			grad.AddInPlace(g)
		}
	})
	require.NoError(t, err)
	assert.InDelta(t, 3, grad.Data()[0], 1e-12)
	assert.InDelta(t, -4, grad.Data()[1], 1e-12)
}
