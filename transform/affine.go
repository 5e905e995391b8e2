// SPDX-License-Identifier: MIT

// Package transform - 4×4 homogeneous model transforms.
//
// Convention:
//   - Row-major matrices acting on column vectors: p' = M·p.
//   - Translation lives in the last column; compose right to left.

package transform

import (
	"math"

	"github.com/katalvlaran/glmath/linalg"
)

// isVec3 reports whether every argument has exactly three components;
// orientation is not checked.
func isVec3(vs ...linalg.Vector) bool {
	for _, v := range vs {
		if v.Size() != 3 {
			return false
		}
	}

	return true
}

// Translate returns the translation by (x, y, z).
func Translate(x, y, z float64) linalg.Matrix {
	return linalg.Mat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// TranslateVec returns the translation by a 3-vector.
// Errors: linalg.ErrShapeMismatch when v is not a 3-vector.
func TranslateVec(v linalg.Vector) (linalg.Matrix, error) {
	if !isVec3(v) {
		return linalg.Matrix{}, transformErrorf(opTranslate, linalg.ErrShapeMismatch)
	}
	a := v.Array()

	return Translate(a[0], a[1], a[2]), nil
}

// Scale returns the axis-aligned scale by (x, y, z).
func Scale(x, y, z float64) linalg.Matrix {
	return linalg.Mat4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// ScaleUniform returns Scale(s, s, s).
func ScaleUniform(s float64) linalg.Matrix { return Scale(s, s, s) }

// ScaleVec returns the scale by a 3-vector.
// Errors: linalg.ErrShapeMismatch when v is not a 3-vector.
func ScaleVec(v linalg.Vector) (linalg.Matrix, error) {
	if !isVec3(v) {
		return linalg.Matrix{}, transformErrorf(opScale, linalg.ErrShapeMismatch)
	}
	a := v.Array()

	return Scale(a[0], a[1], a[2]), nil
}

// RotateX returns the counter-clockwise rotation by angle radians about +X.
func RotateX(angle float64) linalg.Matrix {
	s, c := math.Sincos(angle)

	return linalg.Mat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY returns the counter-clockwise rotation by angle radians about +Y.
func RotateY(angle float64) linalg.Matrix {
	s, c := math.Sincos(angle)

	return linalg.Mat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ returns the counter-clockwise rotation by angle radians about +Z.
func RotateZ(angle float64) linalg.Matrix {
	s, c := math.Sincos(angle)

	return linalg.Mat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Rotate returns the rotation by angle radians about axis, using Rodrigues'
// formula R = cI + s[k]× + (1-c)kkᵀ.
//
// Notes:
//   - The axis is used as given; pass a unit vector for a pure rotation.
//
// Errors:
//   - linalg.ErrShapeMismatch when axis is not a 3-vector.
func Rotate(angle float64, axis linalg.Vector) (linalg.Matrix, error) {
	if !isVec3(axis) {
		return linalg.Matrix{}, transformErrorf(opRotate, linalg.ErrShapeMismatch)
	}
	a := axis.Array()
	x, y, z := a[0], a[1], a[2]
	s, c := math.Sincos(angle)
	k := 1 - c

	return linalg.Mat4(
		c+x*x*k, x*y*k-z*s, x*z*k+y*s, 0,
		y*x*k+z*s, c+y*y*k, y*z*k-x*s, 0,
		z*x*k-y*s, z*y*k+x*s, c+z*z*k, 0,
		0, 0, 0, 1,
	), nil
}
