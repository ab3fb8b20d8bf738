// Package tensor provides the value types the autodiff engine operates on.
//
// The engine is generic over any type satisfying the Value constraint:
// a self-contained arithmetic contract covering the binary operators
// (+ - * / pow), the unary transcendental functions (log, sin, cos, tan),
// negation, reciprocal, scaling by a learning rate, and the additive and
// multiplicative identities.
//
// Two implementations are provided:
//   - Scalar: a float64 newtype for plain scalar computations
//   - Tensor: a fixed-shape dense float64 tensor with elementwise semantics
package tensor
