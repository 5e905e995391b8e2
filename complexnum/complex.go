// SPDX-License-Identifier: MIT

// Package complexnum - field operations and accessors over complex128.
//
// Purpose:
//   - Accept real and complex operands interchangeably (Coercible), so a
//     binding layer can forward host numbers without pre-conversion.
//   - Expose modulus, argument, parts, conjugate, reciprocal and normalize.
//
// Numeric policy:
//   - Division by zero and normalization of 0 follow complex128 semantics
//     (Inf/NaN components), with no error.

package complexnum

import (
	"math"
	"math/cmplx"
)

// Coercible is a real or complex operand. Reals coerce with a zero
// imaginary part.
type Coercible interface {
	float64 | complex128
}

// C coerces x to complex128.
func C[T Coercible](x T) complex128 {
	switch v := any(x).(type) {
	case float64:
		return complex(v, 0)
	case complex128:
		return v
	}

	return 0
}

// New returns re + im·i.
func New(re, im float64) complex128 { return complex(re, im) }

// FromReal returns x + 0i.
func FromReal(x float64) complex128 { return complex(x, 0) }

// Array turns interleaved (re, im) pairs into complex numbers. An odd
// trailing value becomes a number with a zero imaginary part.
func Array(flat []float64) []complex128 {
	out := make([]complex128, (len(flat)+1)/2)
	for i := range out {
		re := flat[2*i]
		var im float64
		if 2*i+1 < len(flat) {
			im = flat[2*i+1]
		}
		out[i] = complex(re, im)
	}

	return out
}

// Add returns a + b.
func Add[A, B Coercible](a A, b B) complex128 { return C(a) + C(b) }

// Sub returns a - b.
func Sub[A, B Coercible](a A, b B) complex128 { return C(a) - C(b) }

// Mul returns a·b.
func Mul[A, B Coercible](a A, b B) complex128 { return C(a) * C(b) }

// Div returns a/b.
func Div[A, B Coercible](a A, b B) complex128 { return C(a) / C(b) }

// Pow returns a^b on the principal branch.
func Pow[A, B Coercible](a A, b B) complex128 { return cmplx.Pow(C(a), C(b)) }

// Neg returns -z.
func Neg(z complex128) complex128 { return -z }

// Abs returns the modulus |z|.
func Abs(z complex128) float64 { return cmplx.Abs(z) }

// Norm2 returns re² + im².
func Norm2(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }

// Arg returns the argument in (-π, π].
func Arg(z complex128) float64 { return cmplx.Phase(z) }

// Real returns the real part.
func Real(z complex128) float64 { return real(z) }

// Imag returns the imaginary part.
func Imag(z complex128) float64 { return imag(z) }

// Parts returns (re, im).
func Parts(z complex128) (re, im float64) { return real(z), imag(z) }

// Conj returns re - im·i.
func Conj(z complex128) complex128 { return cmplx.Conj(z) }

// Inv returns 1/z.
func Inv(z complex128) complex128 { return 1 / z }

// Normalize returns z/|z|.
func Normalize(z complex128) complex128 {
	n := cmplx.Abs(z)

	return complex(real(z)/n, imag(z)/n)
}

// Proj returns the projection of z onto the Riemann sphere: z itself unless
// either part is infinite, in which case +Inf with the sign of imag(z)
// preserved on a zero imaginary part.
func Proj(z complex128) complex128 {
	if math.IsInf(real(z), 0) || math.IsInf(imag(z), 0) {
		return complex(math.Inf(1), math.Copysign(0, imag(z)))
	}

	return z
}
