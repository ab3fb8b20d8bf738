package tensor

// Value is the arithmetic contract required from any type plugged into the
// autodiff engine.
//
// Zero and One return identities shaped like the receiver: for Scalar they
// are 0 and 1, for Tensor they are same-shape tensors of zeros and ones.
// This matters for gradient accumulators, which must start as the additive
// identity of the value they accumulate.
//
// Scale applies a plain float64 factor elementwise. It exists so the
// optimizer can apply a learning rate without requiring the rate itself to
// be a Value.
type Value[T any] interface {
	// Binary operators.
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Pow(T) T

	// Unary operators.
	Neg() T
	Log() T
	Sin() T
	Cos() T
	Tan() T

	// Inverse returns the multiplicative inverse (reciprocal).
	Inverse() T

	// Scale returns the receiver multiplied elementwise by f.
	Scale(f float64) T

	// Zero returns the additive identity shaped like the receiver.
	Zero() T

	// One returns the multiplicative identity shaped like the receiver.
	One() T
}
