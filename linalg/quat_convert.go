// SPDX-License-Identifier: MIT
// Package linalg - quaternion <-> rotation matrix conversion.
//
// ToMatrix uses the standard homogeneous formula with f = 2/|q|², so
// non-unit quaternions still produce a pure rotation.
//
// QuatFromMatrix reads only the upper-left 3×3 block. With a non-negative
// trace it uses the trace branch; otherwise it pivots on the largest diagonal
// element, which keeps 180° rotations about any axis finite.

package linalg

import "math"

// ToMatrix returns the rotation matrix of q with order 3 or 4.
// Implementation:
//   - Stage 1: validate order ∈ {3,4}; else ErrInvalidShape.
//   - Stage 2: s = |q|²; s == 0 returns the identity of that order.
//   - Stage 3: f = 2/s and the cross terms wx..zz scaled by f fill the 3×3
//     block; order 4 adds M[3][3] = 1.
//
// Errors:
//   - ErrInvalidShape.
func (q Quaternion) ToMatrix(order int) (Matrix, error) {
	if order != 3 && order != 4 {
		return Matrix{}, linalgErrorf(opToMatrix, ErrInvalidShape)
	}

	return quatToMatrix(q, order), nil
}

// Mat3 returns the 3×3 rotation matrix of q.
func (q Quaternion) Mat3() Matrix { return quatToMatrix(q, 3) }

// Mat4 returns the 4×4 homogeneous rotation matrix of q.
func (q Quaternion) Mat4() Matrix { return quatToMatrix(q, 4) }

func quatToMatrix(q Quaternion, order int) Matrix {
	m := identity(order)
	s := q.Norm2()
	if s == 0 {
		return m
	}
	f := 2 / s
	wx, wy, wz := f*q.W*q.X, f*q.W*q.Y, f*q.W*q.Z
	xx, yy, zz := f*q.X*q.X, f*q.Y*q.Y, f*q.Z*q.Z
	xy, xz, yz := f*q.X*q.Y, f*q.X*q.Z, f*q.Y*q.Z

	a := &m.data
	a[0][0], a[0][1], a[0][2] = 1-yy-zz, xy-wz, xz+wy
	a[1][0], a[1][1], a[1][2] = xy+wz, 1-xx-zz, yz-wx
	a[2][0], a[2][1], a[2][2] = xz-wy, yz+wx, 1-xx-yy

	return m
}

// QuatFromMatrix extracts the rotation quaternion of a 3×3 or 4×4 matrix.
// Implementation:
//   - Stage 1: only 3×3 and 4×4 are accepted (ErrNotSupported).
//   - Stage 2: t = trace of the 3×3 block. t >= 0 uses r = sqrt(1+t),
//     s = 0.5/r, w = 0.5r and the antisymmetric differences for x, y, z.
//   - Stage 3: t < 0 picks the largest diagonal element d and uses
//     r = sqrt(1 + 2d - t); that component is 0.5r and the others come from
//     the symmetric sums, w from the matching antisymmetric difference.
//
// Returns:
//   - A unit quaternion when M is a proper rotation; q and -q are equivalent
//     and either may be returned.
//
// Errors:
//   - ErrNotSupported.
func QuatFromMatrix(m Matrix) (Quaternion, error) {
	if !m.Is(3, 3) && !m.Is(4, 4) {
		return Quaternion{}, linalgErrorf(opFromMatrix, ErrNotSupported)
	}
	a := &m.data
	t := a[0][0] + a[1][1] + a[2][2]
	var r, s float64
	switch {
	case t >= 0:
		r = math.Sqrt(1 + t)
		s = 0.5 / r
		return Quaternion{
			W: 0.5 * r,
			X: (a[2][1] - a[1][2]) * s,
			Y: (a[0][2] - a[2][0]) * s,
			Z: (a[1][0] - a[0][1]) * s,
		}, nil
	case a[0][0] >= a[1][1] && a[0][0] >= a[2][2]:
		r = math.Sqrt(1 + a[0][0] - a[1][1] - a[2][2])
		s = 0.5 / r
		return Quaternion{
			W: (a[2][1] - a[1][2]) * s,
			X: 0.5 * r,
			Y: (a[0][1] + a[1][0]) * s,
			Z: (a[2][0] + a[0][2]) * s,
		}, nil
	case a[1][1] >= a[2][2]:
		r = math.Sqrt(1 + a[1][1] - a[0][0] - a[2][2])
		s = 0.5 / r
		return Quaternion{
			W: (a[0][2] - a[2][0]) * s,
			X: (a[0][1] + a[1][0]) * s,
			Y: 0.5 * r,
			Z: (a[1][2] + a[2][1]) * s,
		}, nil
	default:
		r = math.Sqrt(1 + a[2][2] - a[0][0] - a[1][1])
		s = 0.5 / r
		return Quaternion{
			W: (a[1][0] - a[0][1]) * s,
			X: (a[2][0] + a[0][2]) * s,
			Y: (a[1][2] + a[2][1]) * s,
			Z: 0.5 * r,
		}, nil
	}
}
