// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage & constructors.
//
// Purpose:
//   - Fixed 4×4 row-major storage with logical rows/cols, each in 1..4.
//   - Rectangular shapes are legal; square-only kernels validate on entry.
//   - Cells outside the logical block are always zero so == is structural.
//
// AI-Hints:
//   - Use Mat2..Mat4x3 when the shape is static; they cannot fail.
//   - Use NewMatrix / MatrixFromRows when the shape comes from user input.
//   - 1-based accessors (Element, Row, Column) match scripting-host indexing;
//     At is the 0-based counterpart.

package linalg

import "github.com/katalvlaran/glmath/numeric"

// Matrix is a fixed-capacity row-major matrix.
//   - data[i][j] is row i, column j (0-based).
//   - rows, cols are the logical counts in 1..MaxSize.
//
// The zero Matrix has shape 0×0 and is not produced by any constructor.
type Matrix struct {
	data       [MaxSize][MaxSize]float64
	rows, cols int
}

// identity returns I_n without validation (1 <= n <= 4).
func identity(n int) Matrix {
	m := Matrix{rows: n, cols: n}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}

	return m
}

// newMatrix fills a rows×cols matrix from flat row-major values, or returns
// the default (identity when square, zero otherwise) when values is empty.
// Caller guarantees a valid shape.
func newMatrix(rows, cols int, values []float64) Matrix {
	if len(values) == 0 {
		if rows == cols {
			return identity(rows)
		}

		return Matrix{rows: rows, cols: cols}
	}
	m := Matrix{rows: rows, cols: cols}
	var i, k int
	for i = 0; i < rows && k < len(values); i++ {
		k += numeric.Fit(m.data[i][:cols], values[k:])
	}

	return m
}

// NewMatrix creates a rows×cols matrix from values in row-major order.
// Implementation:
//   - Stage 1: validate both counts in 1..4; else ErrInvalidShape.
//   - Stage 2: with no values, return the identity if rows == cols, else zeros.
//   - Stage 3: otherwise fill row by row; missing values are 0, excess discarded.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(1) (bounded by 16 cells), Space O(1).
func NewMatrix(rows, cols int, values ...float64) (Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return Matrix{}, linalgErrorf(opNewMatrix, err)
	}

	return newMatrix(rows, cols, values), nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidShape (n outside 1..4).
func Identity(n int) (Matrix, error) {
	if err := validateSize(n); err != nil {
		return Matrix{}, linalgErrorf(opNewMatrix, err)
	}

	return identity(n), nil
}

// Zeros returns the rows×cols zero matrix.
// Errors: ErrInvalidShape.
func Zeros(rows, cols int) (Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return Matrix{}, linalgErrorf(opNewMatrix, err)
	}

	return Matrix{rows: rows, cols: cols}, nil
}

// Fixed-shape builders. Values are row-major; no values yields the identity for
// square shapes and the zero matrix otherwise.
func Mat2(values ...float64) Matrix   { return newMatrix(2, 2, values) }
func Mat3(values ...float64) Matrix   { return newMatrix(3, 3, values) }
func Mat4(values ...float64) Matrix   { return newMatrix(4, 4, values) }
func Mat2x3(values ...float64) Matrix { return newMatrix(2, 3, values) }
func Mat3x2(values ...float64) Matrix { return newMatrix(3, 2, values) }
func Mat2x4(values ...float64) Matrix { return newMatrix(2, 4, values) }
func Mat4x2(values ...float64) Matrix { return newMatrix(4, 2, values) }
func Mat3x4(values ...float64) Matrix { return newMatrix(3, 4, values) }
func Mat4x3(values ...float64) Matrix { return newMatrix(4, 3, values) }

// MatrixFromRows builds a matrix from nested row lists.
// rows = len(nested), cols = the longest row; short rows are zero-padded.
//
// Errors:
//   - ErrInvalidShape when either count is 0 or exceeds 4.
func MatrixFromRows(nested [][]float64) (Matrix, error) {
	cols := 0
	for _, r := range nested {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if err := validateShape(len(nested), cols); err != nil {
		return Matrix{}, linalgErrorf(opFromRows, err)
	}
	m := Matrix{rows: len(nested), cols: cols}
	for i, r := range nested {
		numeric.Fit(m.data[i][:cols], r)
	}

	return m, nil
}

// MatrixFromVectors packs vectors into a rows×cols matrix.
// Implementation:
//   - Stage 1: the orientation of vs[0] selects the packing: row vectors fill
//     rows, column vectors fill columns.
//   - Stage 2: every vector must share that orientation.
//   - Stage 3: each vector is size-adapted to the packed axis; missing vectors
//     leave zero rows/columns and vectors beyond the axis count are discarded.
//
// Errors:
//   - ErrInvalidShape (bad shape or no vectors).
//   - ErrShapeMismatch (mixed orientations).
func MatrixFromVectors(rows, cols int, vs ...Vector) (Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return Matrix{}, linalgErrorf(opFromVectors, err)
	}
	if len(vs) == 0 {
		return Matrix{}, linalgErrorf(opFromVectors, ErrInvalidShape)
	}
	packing := vs[0].orient
	for _, v := range vs {
		if v.orient != packing {
			return Matrix{}, linalgErrorf(opFromVectors, ErrShapeMismatch)
		}
	}

	m := Matrix{rows: rows, cols: cols}
	var i, j int
	if packing == Row {
		for i = 0; i < rows && i < len(vs); i++ {
			numeric.Fit(m.data[i][:cols], vs[i].data[:vs[i].size])
		}

		return m, nil
	}
	for j = 0; j < cols && j < len(vs); j++ {
		for i = 0; i < rows && i < vs[j].size; i++ {
			m.data[i][j] = vs[j].data[i]
		}
	}

	return m, nil
}

// Resize returns a copy of m adapted to rows×cols: each axis is truncated or
// zero-padded independently.
//
// Errors: ErrInvalidShape.
func (m Matrix) Resize(rows, cols int) (Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return Matrix{}, linalgErrorf(opResize, err)
	}
	out := Matrix{rows: rows, cols: cols}
	for i := 0; i < rows && i < m.rows; i++ {
		numeric.Fit(out.data[i][:cols], m.data[i][:m.cols])
	}

	return out, nil
}

// Rows returns the logical row count.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the logical column count.
func (m Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether rows == cols.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

// Is reports whether m has exactly the given shape.
func (m Matrix) Is(rows, cols int) bool { return m.rows == rows && m.cols == cols }

// At returns the cell at (i, j), 0-based.
// Errors: ErrInvalidIndex.
func (m Matrix) At(i, j int) (float64, error) {
	if err := validateIndex0(i, m.rows); err != nil {
		return 0, linalgErrorf(opAt, err)
	}
	if err := validateIndex0(j, m.cols); err != nil {
		return 0, linalgErrorf(opAt, err)
	}

	return m.data[i][j], nil
}

// Element returns the cell at (i, j), 1-based.
// Errors: ErrInvalidIndex.
func (m Matrix) Element(i, j int) (float64, error) {
	if err := validateIndex1(i, m.rows); err != nil {
		return 0, linalgErrorf(opAt, err)
	}
	if err := validateIndex1(j, m.cols); err != nil {
		return 0, linalgErrorf(opAt, err)
	}

	return m.data[i-1][j-1], nil
}

// Row returns row i (1-based) as a row vector.
// Errors: ErrInvalidIndex.
func (m Matrix) Row(i int) (Vector, error) {
	if err := validateIndex1(i, m.rows); err != nil {
		return Vector{}, linalgErrorf(opRow, err)
	}

	return newVector(m.cols, Row, m.data[i-1][:m.cols]), nil
}

// Column returns column j (1-based) as a column vector.
// Errors: ErrInvalidIndex.
func (m Matrix) Column(j int) (Vector, error) {
	if err := validateIndex1(j, m.cols); err != nil {
		return Vector{}, linalgErrorf(opColumn, err)
	}
	v := Vector{size: m.rows, orient: Column}
	for i := 0; i < m.rows; i++ {
		v.data[i] = m.data[i][j-1]
	}

	return v, nil
}

// RowsSlice returns a fresh nested copy of the logical block.
func (m Matrix) RowsSlice() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i][:m.cols])
	}

	return out
}

// Array returns the full fixed storage; cells outside the shape are zero.
func (m Matrix) Array() [MaxSize][MaxSize]float64 { return m.data }
