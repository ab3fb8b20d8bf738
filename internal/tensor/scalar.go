package tensor

import "math"

// Scalar is a float64 implementing the Value contract.
//
// It is the value type used by the example drivers and most tests; anything
// expressible over Scalar works identically over Tensor, elementwise.
type Scalar float64

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// Div returns s / o.
func (s Scalar) Div(o Scalar) Scalar { return s / o }

// Pow returns s raised to the power o.
func (s Scalar) Pow(o Scalar) Scalar { return Scalar(math.Pow(float64(s), float64(o))) }

// Neg returns -s.
func (s Scalar) Neg() Scalar { return -s }

// Log returns the natural logarithm of s.
func (s Scalar) Log() Scalar { return Scalar(math.Log(float64(s))) }

// Sin returns the sine of s.
func (s Scalar) Sin() Scalar { return Scalar(math.Sin(float64(s))) }

// Cos returns the cosine of s.
func (s Scalar) Cos() Scalar { return Scalar(math.Cos(float64(s))) }

// Tan returns the tangent of s.
func (s Scalar) Tan() Scalar { return Scalar(math.Tan(float64(s))) }

// Inverse returns 1/s.
func (s Scalar) Inverse() Scalar { return 1 / s }

// Scale returns s * f.
func (s Scalar) Scale(f float64) Scalar { return s * Scalar(f) }

// Zero returns the additive identity.
func (s Scalar) Zero() Scalar { return 0 }

// One returns the multiplicative identity.
func (s Scalar) One() Scalar { return 1 }

// Float64 returns s as a plain float64.
func (s Scalar) Float64() float64 { return float64(s) }
