package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graft-ml/graft/internal/tensor"
)

type S = tensor.Scalar

// TestConstantTreeValue evaluates 4*4 + 4 + 2 built purely from constants.
func TestConstantTreeValue(t *testing.T) {
	four := NewConstant[S](4)
	two := NewConstant[S](2)

	f := Add[S](Add[S](Mul[S](four, four), four), two)

	v, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, S(22), v)
}

func TestValueIsPure(t *testing.T) {
	x := NewVariable[S](3)
	f := Mul[S](x, x)

	v1, err := f.Value()
	require.NoError(t, err)
	v2, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestPlaceholderUnbound(t *testing.T) {
	p := NewPlaceholder[S]()
	f := Add[S](NewConstant[S](5), p)

	_, err := f.Value()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnbound)
}

func TestPlaceholderRebinding(t *testing.T) {
	p := NewPlaceholder[S]()
	f := Add[S](NewConstant[S](5), p)

	p.Feed(3)
	v, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, S(8), v)

	p.Feed(3.4)
	v, err = f.Value()
	require.NoError(t, err)
	assert.InDelta(t, 8.4, float64(v), 1e-12)
}

func TestVariableUpdate(t *testing.T) {
	x := NewVariable[S](10)
	x.Update(-2.5)

	v, err := x.Value()
	require.NoError(t, err)
	assert.Equal(t, S(7.5), v)
}

// TestLocalDerivatives exercises every operator's derivative rule through
// Forward at fixed child values.
func TestLocalDerivatives(t *testing.T) {
	a, b := S(3), S(2)

	tests := []struct {
		name      string
		node      Expr[S]
		childVals []S
		value     float64
		locals    []float64
	}{
		{"add", Add[S](nil, nil), []S{a, b}, 5, []float64{1, 1}},
		{"sub", Sub[S](nil, nil), []S{a, b}, 1, []float64{1, -1}},
		{"mul", Mul[S](nil, nil), []S{a, b}, 6, []float64{2, 3}},
		{"div", Div[S](nil, nil), []S{a, b}, 1.5, []float64{0.5, -0.75}},
		// Power rule: d(x^2)/dx at x=3 is 2*3^1 = 6.
		{"pow", Pow[S](nil, nil), []S{a, b}, 9, []float64{6, 9 * math.Log(3)}},
		{"neg", Neg[S](nil), []S{a}, -3, []float64{-1}},
		{"log", Log[S](nil), []S{a}, math.Log(3), []float64{1.0 / 3.0}},
		{"sin", Sin[S](nil), []S{a}, math.Sin(3), []float64{math.Cos(3)}},
		{"cos", Cos[S](nil), []S{a}, math.Cos(3), []float64{-math.Sin(3)}},
		{"tan", Tan[S](nil), []S{a}, math.Tan(3), []float64{1 / (math.Cos(3) * math.Cos(3))}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, locals, err := tc.node.Forward(tc.childVals)
			require.NoError(t, err)
			assert.InDelta(t, tc.value, float64(v), 1e-12)
			require.Len(t, locals, len(tc.locals))
			for i, want := range tc.locals {
				assert.InDelta(t, want, float64(locals[i]), 1e-12, "local %d", i)
			}
		})
	}
}

func TestChildren(t *testing.T) {
	x := NewVariable[S](1)
	y := NewConstant[S](2)

	bin := Add[S](x, y)
	require.Len(t, bin.Children(), 2)
	assert.Same(t, x, bin.Children()[0])
	assert.Same(t, y, bin.Children()[1])

	un := Neg[S](x)
	require.Len(t, un.Children(), 1)

	assert.Nil(t, x.Children())
	assert.Nil(t, y.Children())
	assert.Nil(t, NewPlaceholder[S]().Children())
}

// TestTensorValuedTree checks that trees work elementwise over tensors.
func TestTensorValuedTree(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
	require.NoError(t, err)

	f := Mul[tensor.Tensor](NewConstant(a), NewConstant(b))
	v, err := f.Value()
	require.NoError(t, err)

	want := []float64{5, 12, 21, 32}
	for i, w := range want {
		assert.InDelta(t, w, v.Data()[i], 1e-12)
	}
}
