// SPDX-License-Identifier: MIT
// Package linalg - matrix arithmetic kernels.
//
// Purpose:
//   - Elementwise algebra, products with matrices and vectors, trace, power.
//   - Determinant family lives in matrix_det.go.
//
// Contract:
//   - Inputs are never mutated (value receivers).
//   - All errors are sentinels wrapped with the operation tag.
//
// Complexity quicksheet (n ≤ 4, so every bound is a small constant):
//   - Add/Sub/Scale: O(r·c)     Mul: O(r·k·c)     Pow(k): O(|k|·n³)

package linalg

import "math"

// Neg returns -M.
func (m Matrix) Neg() Matrix { return m.Scale(-1) }

// addSub computes a + sign*b over identical shapes.
func (m Matrix) addSub(b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := validateSameMatrix(m, b); err != nil {
		return Matrix{}, linalgErrorf(opTag, err)
	}
	out := Matrix{rows: m.rows, cols: m.cols}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[i][j] = m.data[i][j] + sign*b.data[i][j]
		}
	}

	return out, nil
}

// Add returns M + B.
// Errors: ErrShapeMismatch when shapes differ.
func (m Matrix) Add(b Matrix) (Matrix, error) { return m.addSub(b, +1, opAdd) }

// Sub returns M - B.
// Errors: ErrShapeMismatch when shapes differ.
func (m Matrix) Sub(b Matrix) (Matrix, error) { return m.addSub(b, -1, opSub) }

// Scale returns s·M.
func (m Matrix) Scale(s float64) Matrix {
	out := Matrix{rows: m.rows, cols: m.cols}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[i][j] = m.data[i][j] * s
		}
	}

	return out
}

// Div returns M/s cellwise; s == 0 follows IEEE-754.
func (m Matrix) Div(s float64) Matrix {
	out := Matrix{rows: m.rows, cols: m.cols}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[i][j] = m.data[i][j] / s
		}
	}

	return out
}

// Mul returns the standard product M·B.
// Implementation:
//   - Stage 1: require M.cols == B.rows.
//   - Stage 2: triple loop in i-k-j order; the result is (M.rows × B.cols).
//
// Errors:
//   - ErrShapeMismatch.
//
// Complexity:
//   - Time O(r·k·c) ≤ 64 multiply-adds, Space O(1).
func (m Matrix) Mul(b Matrix) (Matrix, error) {
	if m.cols != b.rows {
		return Matrix{}, linalgErrorf(opMul, ErrShapeMismatch)
	}

	return mul(m, b), nil
}

// mul is the unchecked product kernel.
func mul(a, b Matrix) Matrix {
	out := Matrix{rows: a.rows, cols: b.cols}
	var i, j, k int
	for i = 0; i < a.rows; i++ {
		for k = 0; k < a.cols; k++ {
			for j = 0; j < b.cols; j++ {
				out.data[i][j] += a.data[i][k] * b.data[k][j]
			}
		}
	}

	return out
}

// MulVec returns M·v for a column vector v of size M.Cols(); the result is a
// column vector of size M.Rows().
//
// Errors:
//   - ErrShapeMismatch when v is a row vector or its size differs from M.Cols().
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if v.orient != Column || v.size != m.cols {
		return Vector{}, linalgErrorf(opMulVec, ErrShapeMismatch)
	}
	out := Vector{size: m.rows, orient: Column}
	for i := 0; i < m.rows; i++ {
		out.data[i] = dot(m.data[i][:m.cols], v.data[:v.size])
	}

	return out, nil
}

// VecMul returns v·M for a row vector v of size M.Rows(); the result is a row
// vector of size M.Cols().
//
// Errors:
//   - ErrShapeMismatch when v is a column vector or its size differs from M.Rows().
func VecMul(v Vector, m Matrix) (Vector, error) {
	if v.orient != Row || v.size != m.rows {
		return Vector{}, linalgErrorf(opVecMul, ErrShapeMismatch)
	}
	out := Vector{size: m.cols, orient: Row}
	var i, j int
	for j = 0; j < m.cols; j++ {
		for i = 0; i < m.rows; i++ {
			out.data[j] += v.data[i] * m.data[i][j]
		}
	}

	return out, nil
}

// Transpose returns Mᵀ with shape (cols × rows).
func (m Matrix) Transpose() Matrix {
	out := Matrix{rows: m.cols, cols: m.rows}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[j][i] = m.data[i][j]
		}
	}

	return out
}

// Trace returns Σ M[i][i].
// Errors: ErrNotSquare.
func (m Matrix) Trace() (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, linalgErrorf(opTrace, err)
	}
	var s float64
	for i := 0; i < m.rows; i++ {
		s += m.data[i][i]
	}

	return s, nil
}

// Pow raises a square matrix to an integer power.
// Implementation:
//   - Stage 1: require a square matrix (ErrNotSquare).
//   - Stage 2: k == 0 returns the identity of that order, whatever M holds.
//   - Stage 3: k < 0 replaces M by Inverse(M) (ErrUnsupportedOrder for 1×1,
//     ErrSingularMatrix when det == 0) and continues with |k|.
//   - Stage 4: multiply iteratively |k|-1 times.
//
// Errors:
//   - ErrNotSquare, ErrUnsupportedOrder, ErrSingularMatrix.
//   - ErrInvalidIndex for k == math.MinInt, whose magnitude overflows int.
//
// Complexity:
//   - Time O(|k|·n³); exponents are expected to be small.
func (m Matrix) Pow(k int) (Matrix, error) {
	if err := validateSquare(m); err != nil {
		return Matrix{}, linalgErrorf(opPow, err)
	}
	if k == 0 {
		return identity(m.rows), nil
	}
	if k == math.MinInt {
		return Matrix{}, linalgErrorf(opPow, ErrInvalidIndex)
	}
	base := m
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return Matrix{}, linalgErrorf(opPow, err)
		}
		base, k = inv, -k
	}
	out := base
	for i := 1; i < k; i++ {
		out = mul(out, base)
	}

	return out, nil
}
