package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tensor is a fixed-shape dense tensor of float64 elements.
//
// The shape is fixed at construction and is part of the value's contract:
// combining tensors of different shapes is a programmer error and panics,
// the runtime rendering of what a statically-shaped value type would reject
// at compile time. All arithmetic is elementwise; see MatMul for the one
// non-elementwise operation.
//
// Tensor satisfies the Value constraint, so expression trees and the
// autodiff engine work over tensors exactly as over scalars.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float64
}

// Zeros creates a tensor of the given shape filled with zeros.
func Zeros(shape Shape) Tensor {
	return Full(shape, 0)
}

// Ones creates a tensor of the given shape filled with ones.
func Ones(shape Shape) Tensor {
	return Full(shape, 1)
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor.Full: %v", err))
	}
	t := Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}
	if value != 0 {
		for i := range t.data {
			t.data[i] = value
		}
	}
	return t
}

// FromSlice creates a tensor from a flat row-major slice.
func FromSlice(data []float64, shape Shape) (Tensor, error) {
	if err := shape.Validate(); err != nil {
		return Tensor{}, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return Tensor{}, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	t := Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, len(data)),
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying row-major element slice.
func (t Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-dimensional index.
func (t Tensor) At(indices ...int) float64 {
	return t.data[t.flatIndex(indices)]
}

// Set assigns the element at the given multi-dimensional index.
func (t Tensor) Set(value float64, indices ...int) {
	t.data[t.flatIndex(indices)] = value
}

func (t Tensor) flatIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for shape %v", len(indices), t.shape))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (size %d)",
				idx, i, t.shape[i]))
		}
		flat += idx * t.stride[i]
	}
	return flat
}

// Fill sets every element to value.
func (t Tensor) Fill(value float64) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Clone returns a deep copy.
func (t Tensor) Clone() Tensor {
	c := Tensor{
		shape:  t.shape.Clone(),
		stride: t.shape.ComputeStrides(),
		data:   make([]float64, len(t.data)),
	}
	copy(c.data, t.data)
	return c
}

// checkShape panics when the two operand shapes differ.
func (t Tensor) checkShape(op string, o Tensor) {
	if !t.shape.Equal(o.shape) {
		panic(fmt.Sprintf("tensor: %s shape mismatch: %v vs %v", op, t.shape, o.shape))
	}
}

// apply2 builds a fresh tensor from two same-shape operands.
func (t Tensor) apply2(op string, o Tensor, fn func(a, b float64) float64) Tensor {
	t.checkShape(op, o)
	r := Tensor{
		shape:  t.shape.Clone(),
		stride: t.shape.ComputeStrides(),
		data:   make([]float64, len(t.data)),
	}
	for i := range t.data {
		r.data[i] = fn(t.data[i], o.data[i])
	}
	return r
}

// apply1 builds a fresh tensor by mapping fn over the elements.
func (t Tensor) apply1(fn func(a float64) float64) Tensor {
	r := Tensor{
		shape:  t.shape.Clone(),
		stride: t.shape.ComputeStrides(),
		data:   make([]float64, len(t.data)),
	}
	for i := range t.data {
		r.data[i] = fn(t.data[i])
	}
	return r
}

// Add returns the elementwise sum t + o.
func (t Tensor) Add(o Tensor) Tensor {
	return t.apply2("Add", o, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference t - o.
func (t Tensor) Sub(o Tensor) Tensor {
	return t.apply2("Sub", o, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise product t * o.
func (t Tensor) Mul(o Tensor) Tensor {
	return t.apply2("Mul", o, func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient t / o.
func (t Tensor) Div(o Tensor) Tensor {
	return t.apply2("Div", o, func(a, b float64) float64 { return a / b })
}

// Pow returns t raised elementwise to the power o.
func (t Tensor) Pow(o Tensor) Tensor {
	return t.apply2("Pow", o, math.Pow)
}

// Neg returns the elementwise negation.
func (t Tensor) Neg() Tensor {
	return t.apply1(func(a float64) float64 { return -a })
}

// Log returns the elementwise natural logarithm.
func (t Tensor) Log() Tensor {
	return t.apply1(math.Log)
}

// Sin returns the elementwise sine.
func (t Tensor) Sin() Tensor {
	return t.apply1(math.Sin)
}

// Cos returns the elementwise cosine.
func (t Tensor) Cos() Tensor {
	return t.apply1(math.Cos)
}

// Tan returns the elementwise tangent.
func (t Tensor) Tan() Tensor {
	return t.apply1(math.Tan)
}

// Inverse returns the elementwise reciprocal.
func (t Tensor) Inverse() Tensor {
	return t.apply1(func(a float64) float64 { return 1 / a })
}

// Scale returns t multiplied elementwise by f.
func (t Tensor) Scale(f float64) Tensor {
	return t.apply1(func(a float64) float64 { return a * f })
}

// Zero returns a same-shape tensor of zeros.
func (t Tensor) Zero() Tensor {
	return Zeros(t.shape)
}

// One returns a same-shape tensor of ones.
func (t Tensor) One() Tensor {
	return Ones(t.shape)
}

// AddInPlace accumulates o into t elementwise.
func (t Tensor) AddInPlace(o Tensor) {
	t.checkShape("AddInPlace", o)
	for i := range t.data {
		t.data[i] += o.data[i]
	}
}

// SubInPlace subtracts o from t elementwise.
func (t Tensor) SubInPlace(o Tensor) {
	t.checkShape("SubInPlace", o)
	for i := range t.data {
		t.data[i] -= o.data[i]
	}
}

// MatMul returns the matrix product of two 2-D tensors.
//
// Shapes must be [m, k] and [k, n]; anything else panics. The multiply is
// delegated to gonum's dense BLAS routines.
func MatMul(a, b Tensor) Tensor {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		panic(fmt.Sprintf("tensor: MatMul requires 2-D tensors, got %v and %v", a.shape, b.shape))
	}
	if a.shape[1] != b.shape[0] {
		panic(fmt.Sprintf("tensor: MatMul inner dimensions differ: %v vs %v", a.shape, b.shape))
	}

	ma := mat.NewDense(a.shape[0], a.shape[1], a.data)
	mb := mat.NewDense(b.shape[0], b.shape[1], b.data)
	var mr mat.Dense
	mr.Mul(ma, mb)

	r := Zeros(Shape{a.shape[0], b.shape[1]})
	copy(r.data, mr.RawMatrix().Data)
	return r
}
