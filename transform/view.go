// SPDX-License-Identifier: MIT

// Package transform - viewing and projection matrices.
//
// Projections follow the OpenGL formulas by default. Options change the
// clip depth interval and the eye-space handedness:
//
//	                 near → far    eye looks down
//	default          -1 → +1       -Z
//	DepthZeroToOne    0 → +1       -Z
//	LeftHanded       -1 → +1       +Z
//
// A left-handed matrix is the right-handed one with its third column negated,
// i.e. the eye-space z axis mirrored before projection.

package transform

import (
	"math"

	"github.com/katalvlaran/glmath/linalg"
)

// LookAt returns the view matrix of a camera at eye looking at at.
// Implementation:
//   - Stage 1: z = normalize(eye - at), x = normalize(up × z), y = z × x,
//     all computed as column vectors.
//   - Stage 2: pack x, y, z as the rows of the rotation block and multiply
//     by Translate(-eye), so eye maps to the origin.
//
// Errors:
//   - linalg.ErrShapeMismatch when any argument is not a 3-vector.
//   - ErrDegenerate when eye == at or up is parallel to eye - at.
func LookAt(eye, at, up linalg.Vector) (linalg.Matrix, error) {
	if !isVec3(eye, at, up) {
		return linalg.Matrix{}, transformErrorf(opLookAt, linalg.ErrShapeMismatch)
	}
	eye, at, up = column(eye), column(at), column(up)

	d, err := eye.Sub(at)
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}
	if d.Norm() == 0 {
		return linalg.Matrix{}, transformErrorf(opLookAt, ErrDegenerate)
	}
	z := d.Normalize()

	side, err := up.Cross(z)
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}
	if side.Norm() == 0 {
		return linalg.Matrix{}, transformErrorf(opLookAt, ErrDegenerate)
	}
	x := side.Normalize()
	y, err := z.Cross(x)
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}

	basis, err := linalg.MatrixFromVectors(4, 4,
		x.Transpose(), y.Transpose(), z.Transpose(), linalg.Vec4r(0, 0, 0, 1))
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}
	shift, err := TranslateVec(eye.Neg())
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}
	view, err := basis.Mul(shift)
	if err != nil {
		return linalg.Matrix{}, transformErrorf(opLookAt, err)
	}

	return view, nil
}

// column returns v as a column vector.
func column(v linalg.Vector) linalg.Vector {
	if v.IsRow() {
		return v.Transpose()
	}

	return v
}

// Ortho returns the orthographic projection of the box
// [left,right]×[bottom,top]×[-near,-far] (right-handed eye space).
//
// Errors:
//   - ErrDegenerate when left == right, bottom == top or near == far.
func Ortho(left, right, bottom, top, near, far float64, opts ...Option) (linalg.Matrix, error) {
	if left == right || bottom == top || near == far {
		return linalg.Matrix{}, transformErrorf(opOrtho, ErrDegenerate)
	}
	o := gatherOptions(opts...)
	rl, tb, fn := right-left, top-bottom, far-near

	m22, m23 := -2/fn, -(far+near)/fn
	if o.depth == DepthZeroToOne {
		m22, m23 = -1/fn, -near/fn
	}

	return handed(o, [16]float64{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, m22, m23,
		0, 0, 0, 1,
	}), nil
}

// Frustum returns the perspective projection of the frustum whose near
// rectangle is [left,right]×[bottom,top] at distance near.
//
// Errors:
//   - ErrDegenerate when left == right, bottom == top or near == far.
//   - ErrInvalidDepth when near <= 0 or far <= 0.
func Frustum(left, right, bottom, top, near, far float64, opts ...Option) (linalg.Matrix, error) {
	if near <= 0 || far <= 0 {
		return linalg.Matrix{}, transformErrorf(opFrustum, ErrInvalidDepth)
	}
	if left == right || bottom == top || near == far {
		return linalg.Matrix{}, transformErrorf(opFrustum, ErrDegenerate)
	}

	return frustum(left, right, bottom, top, near, far, gatherOptions(opts...)), nil
}

func frustum(left, right, bottom, top, near, far float64, o Options) linalg.Matrix {
	rl, tb, fn := right-left, top-bottom, far-near

	m22, m23 := -(far+near)/fn, -2*far*near/fn
	if o.depth == DepthZeroToOne {
		m22, m23 = -far/fn, -far*near/fn
	}

	return handed(o, [16]float64{
		2 * near / rl, 0, (right + left) / rl, 0,
		0, 2 * near / tb, (top + bottom) / tb, 0,
		0, 0, m22, m23,
		0, 0, -1, 0,
	})
}

// Perspective returns the symmetric perspective projection with vertical
// field of view fovy (radians) and aspect = width/height:
// top = near·tan(fovy/2), right = top·aspect, then Frustum.
//
// Errors:
//   - ErrInvalidDepth when near <= 0 or far <= 0.
//   - ErrDegenerate when near == far, aspect == 0 or tan(fovy/2) == 0.
func Perspective(fovy, aspect, near, far float64, opts ...Option) (linalg.Matrix, error) {
	if near <= 0 || far <= 0 {
		return linalg.Matrix{}, transformErrorf(opPerspective, ErrInvalidDepth)
	}
	top := math.Tan(fovy/2) * near
	right := top * aspect
	if top == 0 || right == 0 || near == far {
		return linalg.Matrix{}, transformErrorf(opPerspective, ErrDegenerate)
	}

	return frustum(-right, right, -top, top, near, far, gatherOptions(opts...)), nil
}

// handed builds the matrix from row-major cells, negating the third column
// for left-handed eye space.
func handed(o Options, cells [16]float64) linalg.Matrix {
	if o.hand == LeftHanded {
		for i := 2; i < 16; i += 4 {
			cells[i] = -cells[i]
		}
	}

	return linalg.Mat4(cells[:]...)
}
