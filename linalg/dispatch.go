// SPDX-License-Identifier: MIT
// Package linalg - operator dispatch over the Value sum type.
//
// Purpose:
//   - Resolve mixed-operand arithmetic (scalar·vector, vector·matrix, ...) in
//     one place, the way a scripting binding overloads its operators.
//   - Each function switches on the concrete variants and forwards to the
//     typed method; unsupported pairs fail with ErrShapeMismatch.
//
// Mul resolution table (left × right):
//
//	Scalar     × any              scale
//	Vector     × Scalar           scale
//	Vector col × Vector row       outer product (Matrix)
//	Vector     × Vector           dot product (Scalar), equal sizes
//	Vector row × Matrix           VecMul
//	Matrix     × Vector col       MulVec
//	Matrix     × Matrix           product
//	Matrix     × Scalar           scale
//	Quaternion × Quaternion       Hamilton product
//	Quaternion × Scalar           scale
//
// AI-Hints:
//   - Prefer the typed methods when operand types are static; dispatch costs
//     an interface allocation per result.

package linalg

import (
	"math"

	"github.com/katalvlaran/glmath/numeric"
)

// lift converts a typed kernel result to a Value, keeping a nil Value on
// error so callers never see a zero-shaped operand.
func lift[T Value](v T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

// scale multiplies any variant by s; ok is false for a nil or foreign Value.
func scale(v Value, s float64) (Value, bool) {
	switch x := v.(type) {
	case Scalar:
		return Scalar(float64(x) * s), true
	case Vector:
		return x.Scale(s), true
	case Matrix:
		return x.Scale(s), true
	case Quaternion:
		return x.Scale(s), true
	}

	return nil, false
}

// Add returns a + b for operands of the same variant.
// Errors: ErrShapeMismatch (different variants or shapes).
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			return x + y, nil
		}
	case Vector:
		if y, ok := b.(Vector); ok {
			return lift(x.Add(y))
		}
	case Matrix:
		if y, ok := b.(Matrix); ok {
			return lift(x.Add(y))
		}
	case Quaternion:
		if y, ok := b.(Quaternion); ok {
			return x.Add(y), nil
		}
	}

	return nil, linalgErrorf(opAdd, ErrShapeMismatch)
}

// Sub returns a - b for operands of the same variant.
// Errors: ErrShapeMismatch.
func Sub(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			return x - y, nil
		}
	case Vector:
		if y, ok := b.(Vector); ok {
			return lift(x.Sub(y))
		}
	case Matrix:
		if y, ok := b.(Matrix); ok {
			return lift(x.Sub(y))
		}
	case Quaternion:
		if y, ok := b.(Quaternion); ok {
			return x.Sub(y), nil
		}
	}

	return nil, linalgErrorf(opSub, ErrShapeMismatch)
}

// Mul resolves a × b according to the table in the file header.
// Errors: ErrShapeMismatch, plus whatever the selected kernel reports.
func Mul(a, b Value) (Value, error) {
	if s, ok := a.(Scalar); ok {
		if out, ok := scale(b, float64(s)); ok {
			return out, nil
		}

		return nil, linalgErrorf(opMul, ErrShapeMismatch)
	}
	if s, ok := b.(Scalar); ok {
		if out, ok := scale(a, float64(s)); ok {
			return out, nil
		}

		return nil, linalgErrorf(opMul, ErrShapeMismatch)
	}
	switch x := a.(type) {
	case Vector:
		switch y := b.(type) {
		case Vector:
			if x.orient == Column && y.orient == Row {
				return outer(x, y), nil
			}
			d, err := x.Dot(y)
			if err != nil {
				return nil, linalgErrorf(opMul, ErrShapeMismatch)
			}

			return Scalar(d), nil
		case Matrix:
			return lift(VecMul(x, y))
		}
	case Matrix:
		switch y := b.(type) {
		case Vector:
			return lift(x.MulVec(y))
		case Matrix:
			return lift(x.Mul(y))
		}
	case Quaternion:
		if y, ok := b.(Quaternion); ok {
			return x.Mul(y), nil
		}
	}

	return nil, linalgErrorf(opMul, ErrShapeMismatch)
}

// Div returns a / b where b is a Scalar. Division by zero follows IEEE-754.
// Errors: ErrShapeMismatch when b is not a Scalar.
func Div(a, b Value) (Value, error) {
	s, ok := b.(Scalar)
	if !ok {
		return nil, linalgErrorf(opDiv, ErrShapeMismatch)
	}
	switch x := a.(type) {
	case Scalar:
		return x / s, nil
	case Vector:
		return x.Div(float64(s)), nil
	case Matrix:
		return x.Div(float64(s)), nil
	case Quaternion:
		return x.Div(float64(s)), nil
	}

	return nil, linalgErrorf(opDiv, ErrShapeMismatch)
}

// Neg returns -a.
// Errors: ErrShapeMismatch for a nil Value.
func Neg(a Value) (Value, error) {
	out, ok := scale(a, -1)
	if !ok {
		return nil, linalgErrorf(opNeg, ErrShapeMismatch)
	}

	return out, nil
}

// Pow raises a to the integer power k. Scalars use math.Pow; matrices and
// quaternions follow their own Pow. Vectors fail with ErrShapeMismatch.
// Errors: ErrShapeMismatch, plus the errors of Matrix.Pow.
func Pow(a Value, k int) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		return Scalar(math.Pow(float64(x), float64(k))), nil
	case Matrix:
		return lift(x.Pow(k))
	case Quaternion:
		return x.Pow(k), nil
	}

	return nil, linalgErrorf(opPow, ErrShapeMismatch)
}

// Transpose flips a vector's orientation or transposes a matrix; a Scalar is
// returned unchanged. Quaternions fail with ErrShapeMismatch.
func Transpose(a Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		return x, nil
	case Vector:
		return x.Transpose(), nil
	case Matrix:
		return x.Transpose(), nil
	}

	return nil, linalgErrorf(opTranspose, ErrShapeMismatch)
}

// Inv returns the multiplicative inverse: 1/x, Matrix.Inverse or
// Quaternion.Inv. Vectors fail with ErrShapeMismatch.
func Inv(a Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		return 1 / x, nil
	case Matrix:
		return lift(x.Inverse())
	case Quaternion:
		return x.Inv(), nil
	}

	return nil, linalgErrorf(opInv, ErrShapeMismatch)
}

// Norm returns |a| for scalars, vectors and quaternions.
// Errors: ErrShapeMismatch for matrices.
func Norm(a Value) (float64, error) {
	switch x := a.(type) {
	case Scalar:
		return math.Abs(float64(x)), nil
	case Vector:
		return x.Norm(), nil
	case Quaternion:
		return x.Norm(), nil
	}

	return 0, linalgErrorf(opNorm, ErrShapeMismatch)
}

// Normalize returns a/|a| for vectors and quaternions.
// Errors: ErrShapeMismatch otherwise.
func Normalize(a Value) (Value, error) {
	switch x := a.(type) {
	case Vector:
		return x.Normalize(), nil
	case Quaternion:
		return x.Normalize(), nil
	}

	return nil, linalgErrorf(opNormalize, ErrShapeMismatch)
}

// Mix returns (1-t)·a + t·b for operands of the same variant.
// Errors: ErrShapeMismatch.
func Mix(a, b Value, t float64) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			return Scalar(numeric.Mix(float64(x), float64(y), t)), nil
		}
	case Vector:
		if y, ok := b.(Vector); ok {
			return lift(x.Mix(y, t))
		}
	case Matrix:
		if y, ok := b.(Matrix); ok {
			return lift(x.Mix(y, t))
		}
	case Quaternion:
		if y, ok := b.(Quaternion); ok {
			return x.Mix(y, t), nil
		}
	}

	return nil, linalgErrorf(opMix, ErrShapeMismatch)
}

// scalars extracts float64s from Scalar operands; ok is false otherwise.
func scalars(vs ...Value) ([]float64, bool) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		s, ok := v.(Scalar)
		if !ok {
			return nil, false
		}
		out[i] = float64(s)
	}

	return out, true
}

// Clamp limits x to [lo, hi] with the elementwise broadcasting rule.
// A Scalar x requires Scalar bounds.
//
// Errors: ErrShapeMismatch.
func Clamp(x, lo, hi Value) (Value, error) {
	switch v := x.(type) {
	case Scalar:
		if s, ok := scalars(lo, hi); ok {
			return Scalar(numeric.Clamp(float64(v), s[0], s[1])), nil
		}
	case Vector:
		return lift(v.Clamp(lo, hi))
	case Matrix:
		return lift(v.Clamp(lo, hi))
	}

	return nil, linalgErrorf(opClamp, ErrShapeMismatch)
}

// Step returns 0 where x <= edge and 1 elsewhere.
// Errors: ErrShapeMismatch.
func Step(x, edge Value) (Value, error) {
	switch v := x.(type) {
	case Scalar:
		if s, ok := scalars(edge); ok {
			return Scalar(step(float64(v), s[0], 0)), nil
		}
	case Vector:
		return lift(v.Step(edge))
	case Matrix:
		return lift(v.Step(edge))
	}

	return nil, linalgErrorf(opStep, ErrShapeMismatch)
}

// Smoothstep applies the cubic Hermite ramp between e0 and e1.
// Errors: ErrShapeMismatch.
func Smoothstep(x, e0, e1 Value) (Value, error) {
	switch v := x.(type) {
	case Scalar:
		if s, ok := scalars(e0, e1); ok {
			return Scalar(numeric.Smoothstep(float64(v), s[0], s[1])), nil
		}
	case Vector:
		return lift(v.Smoothstep(e0, e1))
	case Matrix:
		return lift(v.Smoothstep(e0, e1))
	}

	return nil, linalgErrorf(opSmoothstep, ErrShapeMismatch)
}

// Fade applies the quintic ramp between e0 and e1.
// Errors: ErrShapeMismatch.
func Fade(x, e0, e1 Value) (Value, error) {
	switch v := x.(type) {
	case Scalar:
		if s, ok := scalars(e0, e1); ok {
			return Scalar(numeric.Fade(float64(v), s[0], s[1])), nil
		}
	case Vector:
		return lift(v.Fade(e0, e1))
	case Matrix:
		return lift(v.Fade(e0, e1))
	}

	return nil, linalgErrorf(opFade, ErrShapeMismatch)
}
