// SPDX-License-Identifier: MIT
// Package linalg - determinant, adjugate and inverse for orders 2, 3, 4.
//
// Implementation notes:
//   - Every order has its own closed form. There is no general-order recursive
//     cofactor loop and no elimination with pivoting.
//   - det3 expands along the first row over det2 minors; det4 expands along the
//     first row over det3 minors.
//   - adj4 reuses the twelve 2×2 sub-determinants of the upper and lower row
//     pairs, which is the usual hand expansion for 4×4 inverses.
//   - Inverse tests det == 0 exactly; near-singular inputs are returned as is.

package linalg

// Determinant returns det(M) for square M of order 2, 3 or 4.
//
// Errors:
//   - ErrNotSquare (rows != cols).
//   - ErrUnsupportedOrder (order 1).
//
// Complexity:
//   - Time O(1) (closed form), Space O(1).
func (m Matrix) Determinant() (float64, error) {
	if err := validateOrder(m); err != nil {
		return 0, linalgErrorf(opDet, err)
	}

	return det(m), nil
}

// det dispatches to the closed form of the order; caller validated.
func det(m Matrix) float64 {
	a := &m.data
	switch m.rows {
	case 2:
		return det2(a[0][0], a[0][1], a[1][0], a[1][1])
	case 3:
		return det3(a)
	default:
		return det4(a)
	}
}

func det2(a, b, c, d float64) float64 { return a*d - b*c }

func det3(a *[MaxSize][MaxSize]float64) float64 {
	return a[0][0]*det2(a[1][1], a[1][2], a[2][1], a[2][2]) -
		a[0][1]*det2(a[1][0], a[1][2], a[2][0], a[2][2]) +
		a[0][2]*det2(a[1][0], a[1][1], a[2][0], a[2][1])
}

// minor3 returns the 3×3 minor of a 4×4 block without row 0 and column skip.
func minor3(a *[MaxSize][MaxSize]float64, skip int) [MaxSize][MaxSize]float64 {
	var out [MaxSize][MaxSize]float64
	var i, j, c int
	for i = 1; i < 4; i++ {
		c = 0
		for j = 0; j < 4; j++ {
			if j == skip {
				continue
			}
			out[i-1][c] = a[i][j]
			c++
		}
	}

	return out
}

func det4(a *[MaxSize][MaxSize]float64) float64 {
	var d float64
	sign := 1.0
	for j := 0; j < 4; j++ {
		mn := minor3(a, j)
		d += sign * a[0][j] * det3(&mn)
		sign = -sign
	}

	return d
}

// Adjugate returns the classical adjugate adj(M) = Cᵀ, so M·adj(M) = det(M)·I.
//
// Errors:
//   - ErrNotSquare, ErrUnsupportedOrder.
func (m Matrix) Adjugate() (Matrix, error) {
	if err := validateOrder(m); err != nil {
		return Matrix{}, linalgErrorf(opAdj, err)
	}

	return adjugate(m), nil
}

func adjugate(m Matrix) Matrix {
	a := &m.data
	out := Matrix{rows: m.rows, cols: m.cols}
	b := &out.data
	switch m.rows {
	case 2:
		b[0][0], b[0][1] = a[1][1], -a[0][1]
		b[1][0], b[1][1] = -a[1][0], a[0][0]
	case 3:
		b[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
		b[0][1] = a[0][2]*a[2][1] - a[0][1]*a[2][2]
		b[0][2] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
		b[1][0] = a[1][2]*a[2][0] - a[1][0]*a[2][2]
		b[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
		b[1][2] = a[0][2]*a[1][0] - a[0][0]*a[1][2]
		b[2][0] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
		b[2][1] = a[0][1]*a[2][0] - a[0][0]*a[2][1]
		b[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	default:
		adj4(a, b)
	}

	return out
}

// adj4 writes adj(a) into b. s* are 2×2 determinants of rows 0,1 and c* of
// rows 2,3, indexed by column pair.
func adj4(a, b *[MaxSize][MaxSize]float64) {
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	b[0][0] = a[1][1]*c5 - a[1][2]*c4 + a[1][3]*c3
	b[0][1] = -a[0][1]*c5 + a[0][2]*c4 - a[0][3]*c3
	b[0][2] = a[3][1]*s5 - a[3][2]*s4 + a[3][3]*s3
	b[0][3] = -a[2][1]*s5 + a[2][2]*s4 - a[2][3]*s3

	b[1][0] = -a[1][0]*c5 + a[1][2]*c2 - a[1][3]*c1
	b[1][1] = a[0][0]*c5 - a[0][2]*c2 + a[0][3]*c1
	b[1][2] = -a[3][0]*s5 + a[3][2]*s2 - a[3][3]*s1
	b[1][3] = a[2][0]*s5 - a[2][2]*s2 + a[2][3]*s1

	b[2][0] = a[1][0]*c4 - a[1][1]*c2 + a[1][3]*c0
	b[2][1] = -a[0][0]*c4 + a[0][1]*c2 - a[0][3]*c0
	b[2][2] = a[3][0]*s4 - a[3][1]*s2 + a[3][3]*s0
	b[2][3] = -a[2][0]*s4 + a[2][1]*s2 - a[2][3]*s0

	b[3][0] = -a[1][0]*c3 + a[1][1]*c1 - a[1][2]*c0
	b[3][1] = a[0][0]*c3 - a[0][1]*c1 + a[0][2]*c0
	b[3][2] = -a[3][0]*s3 + a[3][1]*s1 - a[3][2]*s0
	b[3][3] = a[2][0]*s3 - a[2][1]*s1 + a[2][2]*s0
}

// Inverse returns M⁻¹ = adj(M)/det(M).
// Implementation:
//   - Stage 1: validate square order 2..4.
//   - Stage 2: compute det; exactly 0.0 fails with ErrSingularMatrix.
//   - Stage 3: scale the adjugate by 1/det.
//
// Errors:
//   - ErrNotSquare, ErrUnsupportedOrder, ErrSingularMatrix.
//
// Determinism:
//   - No tolerance: a determinant of 1e-300 still inverts.
func (m Matrix) Inverse() (Matrix, error) {
	if err := validateOrder(m); err != nil {
		return Matrix{}, linalgErrorf(opInverse, err)
	}
	d := det(m)
	if d == 0 {
		return Matrix{}, linalgErrorf(opInverse, ErrSingularMatrix)
	}

	return adjugate(m).Div(d), nil
}
