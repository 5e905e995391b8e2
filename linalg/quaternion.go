// SPDX-License-Identifier: MIT

// Package linalg - Quaternion algebra.
//
// Purpose:
//   - Four-component (W, X, Y, Z) quaternions with the Hamilton product.
//   - Rotation helpers: axis-angle construction, slerp, vector rotation.
//
// Numeric policy:
//   - Zero quaternions are not guarded: Normalize and Inv yield NaN components.
//   - Mix does not renormalize; Slerp of unit inputs stays unit.
//
// Conversions to and from rotation matrices live in quat_convert.go.

package linalg

import (
	"math"

	"github.com/katalvlaran/glmath/numeric"
)

// slerpLinearThreshold is the cosine above which Slerp falls back to Mix.
const slerpLinearThreshold = 0.9999

// Quaternion is w + xi + yj + zk.
type Quaternion struct {
	W, X, Y, Z float64
}

// QuatIdentity returns (1, 0, 0, 0).
func QuatIdentity() Quaternion { return Quaternion{W: 1} }

// Quat builds a quaternion from up to four values in (w, x, y, z) order;
// missing values are 0 and excess values are discarded.
func Quat(values ...float64) Quaternion {
	var a [4]float64
	numeric.Fit(a[:], values)

	return Quaternion{W: a[0], X: a[1], Y: a[2], Z: a[3]}
}

// QuatFromParts builds (w, v.x, v.y, v.z). v is size-adapted to 3 components.
func QuatFromParts(w float64, v Vector) Quaternion {
	return Quaternion{W: w, X: v.data[0], Y: v.data[1], Z: v.data[2]}
}

// QuatFromAxisAngle builds the unit rotation of angle radians about axis.
// Implementation:
//   - Stage 1: scale the axis to unit length, so callers need not normalize.
//   - Stage 2: w = cos(θ/2), (x,y,z) = sin(θ/2)·axis.
//   - Stage 3: normalize the quaternion to absorb rounding.
//
// Notes:
//   - A zero axis has no direction; the result is then the identity.
//
// Errors:
//   - ErrShapeMismatch when axis is not a 3-vector.
func QuatFromAxisAngle(axis Vector, angle float64) (Quaternion, error) {
	if axis.size != 3 {
		return Quaternion{}, linalgErrorf(opNewQuat, ErrShapeMismatch)
	}
	n := axis.Norm()
	if n == 0 {
		return QuatIdentity(), nil
	}
	s, c := math.Sincos(angle / 2)
	s /= n
	q := Quaternion{W: c, X: s * axis.data[0], Y: s * axis.data[1], Z: s * axis.data[2]}

	return q.Normalize(), nil
}

// Parts returns the scalar part and the vector part as a column 3-vector.
func (q Quaternion) Parts() (float64, Vector) {
	return q.W, Vector{data: [MaxSize]float64{q.X, q.Y, q.Z}, size: 3, orient: Column}
}

// Array returns (w, x, y, z).
func (q Quaternion) Array() [4]float64 { return [4]float64{q.W, q.X, q.Y, q.Z} }

// Add returns q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q.W + p.W, q.X + p.X, q.Y + p.Y, q.Z + p.Z}
}

// Sub returns q - p.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{q.W - p.W, q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

// Scale returns s·q.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Div returns q/s componentwise.
func (q Quaternion) Div(s float64) Quaternion {
	return Quaternion{q.W / s, q.X / s, q.Y / s, q.Z / s}
}

// Neg returns -q, the same rotation as q.
func (q Quaternion) Neg() Quaternion { return Quaternion{-q.W, -q.X, -q.Y, -q.Z} }

// Conj returns (w, -x, -y, -z).
func (q Quaternion) Conj() Quaternion { return Quaternion{q.W, -q.X, -q.Y, -q.Z} }

// Dot returns the 4D inner product.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z
}

// Norm2 returns w²+x²+y²+z².
func (q Quaternion) Norm2() float64 { return q.Dot(q) }

// Norm returns sqrt(w²+x²+y²+z²).
func (q Quaternion) Norm() float64 { return math.Sqrt(q.Norm2()) }

// Normalize returns q/|q|.
func (q Quaternion) Normalize() Quaternion { return q.Div(q.Norm()) }

// Inv returns conj(q)/|q|²; for unit q this equals Conj.
func (q Quaternion) Inv() Quaternion { return q.Conj().Div(q.Norm2()) }

// Mul returns the Hamilton product q·p. The product is not commutative.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y + q.Y*p.W + q.Z*p.X - q.X*p.Z,
		Z: q.W*p.Z + q.Z*p.W + q.X*p.Y - q.Y*p.X,
	}
}

// Pow returns q^k for integer k: k == 0 gives the identity quaternion and
// k < 0 raises Inv(q) to |k|. Iterative, O(|k|). The magnitude is taken as
// a uint so k == math.MinInt still means Inv(q)^(2^63).
func (q Quaternion) Pow(k int) Quaternion {
	if k == 0 {
		return QuatIdentity()
	}
	n := uint(k)
	if k < 0 {
		q, n = q.Inv(), -n
	}
	out := q
	for i := uint(1); i < n; i++ {
		out = out.Mul(q)
	}

	return out
}

// Mix returns (1-t)·q + t·p without renormalization.
func (q Quaternion) Mix(p Quaternion, t float64) Quaternion {
	return Quaternion{
		W: numeric.Mix(q.W, p.W, t),
		X: numeric.Mix(q.X, p.X, t),
		Y: numeric.Mix(q.Y, p.Y, t),
		Z: numeric.Mix(q.Z, p.Z, t),
	}
}

// Slerp interpolates along the shortest great-circle arc from q to p.
// Implementation:
//   - Stage 1: cosθ = q·p; when negative, negate p and cosθ.
//   - Stage 2: when cosθ > 0.9999 the arc is nearly flat; return Mix(q, p, t).
//   - Stage 3: θ = atan2(sinθ, cosθ) with sinθ = sqrt(1-cos²θ); blend with
//     sin((1-t)θ)/sinθ and sin(tθ)/sinθ.
//
// Notes:
//   - Because of Stage 1, Slerp(q, p, 1) may return -p, which is the same
//     rotation as p.
func (q Quaternion) Slerp(p Quaternion, t float64) Quaternion {
	cosT := q.Dot(p)
	if cosT < 0 {
		p, cosT = p.Neg(), -cosT
	}
	if cosT > slerpLinearThreshold {
		return q.Mix(p, t)
	}
	sinT := math.Sqrt(1 - cosT*cosT)
	theta := math.Atan2(sinT, cosT)
	a := math.Sin((1-t)*theta) / sinT
	b := math.Sin(t*theta) / sinT

	return q.Scale(a).Add(p.Scale(b))
}

// Rotate applies the rotation of q to a 3-vector: q·(0, v)·q⁻¹. The result
// keeps v's orientation.
//
// Errors:
//   - ErrShapeMismatch when v is not a 3-vector.
func (q Quaternion) Rotate(v Vector) (Vector, error) {
	if v.size != 3 {
		return Vector{}, linalgErrorf(opRotate, ErrShapeMismatch)
	}
	r := q.Mul(QuatFromParts(0, v)).Mul(q.Inv())

	return Vector{data: [MaxSize]float64{r.X, r.Y, r.Z}, size: 3, orient: v.orient}, nil
}
