// SPDX-License-Identifier: MIT
// Package linalg - elementwise shaping functions over vectors and matrices.
//
// Broadcasting rule for edge/bound parameters (type Value):
//   - Scalar: the same number is used for every component.
//   - Vector (for vector receivers): same size and orientation as the receiver.
//   - Matrix (for matrix receivers): same shape as the receiver.
//   - Anything else: ErrShapeMismatch.

package linalg

import "github.com/katalvlaran/glmath/numeric"

// vectorOperand expands e to a component array matching v.
func vectorOperand(v Vector, e Value) ([MaxSize]float64, error) {
	var out [MaxSize]float64
	switch x := e.(type) {
	case Scalar:
		for i := 0; i < v.size; i++ {
			out[i] = float64(x)
		}

		return out, nil
	case Vector:
		if err := validateSameVector(v, x); err != nil {
			return out, err
		}

		return x.data, nil
	}

	return out, ErrShapeMismatch
}

// matrixOperand expands e to a cell array matching m.
func matrixOperand(m Matrix, e Value) ([MaxSize][MaxSize]float64, error) {
	var out [MaxSize][MaxSize]float64
	switch x := e.(type) {
	case Scalar:
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				out[i][j] = float64(x)
			}
		}

		return out, nil
	case Matrix:
		if err := validateSameMatrix(m, x); err != nil {
			return out, err
		}

		return x.data, nil
	}

	return out, ErrShapeMismatch
}

// mapVector applies f(v[i], a[i], b[i]) over the logical components.
func mapVector(v Vector, a, b [MaxSize]float64, f func(x, a, b float64) float64) Vector {
	out := Vector{size: v.size, orient: v.orient}
	for i := 0; i < v.size; i++ {
		out.data[i] = f(v.data[i], a[i], b[i])
	}

	return out
}

// mapMatrix applies f(m[i][j], a[i][j], b[i][j]) over the logical cells.
func mapMatrix(m Matrix, a, b *[MaxSize][MaxSize]float64, f func(x, a, b float64) float64) Matrix {
	out := Matrix{rows: m.rows, cols: m.cols}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[i][j] = f(m.data[i][j], a[i][j], b[i][j])
		}
	}

	return out
}

func step(x, edge, _ float64) float64 { return numeric.Step(x, edge) }

// Mix returns (1-t)·v + t·w.
// Errors: ErrShapeMismatch when size or orientation differ.
func (v Vector) Mix(w Vector, t float64) (Vector, error) {
	if err := validateSameVector(v, w); err != nil {
		return Vector{}, linalgErrorf(opMix, err)
	}
	tt := [MaxSize]float64{t, t, t, t}

	return mapVector(v, w.data, tt, numeric.Mix[float64]), nil
}

// Clamp limits every component to [lo, hi].
// Errors: ErrShapeMismatch (see broadcasting rule).
func (v Vector) Clamp(lo, hi Value) (Vector, error) {
	a, err := vectorOperand(v, lo)
	if err != nil {
		return Vector{}, linalgErrorf(opClamp, err)
	}
	b, err := vectorOperand(v, hi)
	if err != nil {
		return Vector{}, linalgErrorf(opClamp, err)
	}

	return mapVector(v, a, b, numeric.Clamp[float64]), nil
}

// Step maps each component to 0 when it is <= edge and to 1 otherwise.
// Errors: ErrShapeMismatch.
func (v Vector) Step(edge Value) (Vector, error) {
	a, err := vectorOperand(v, edge)
	if err != nil {
		return Vector{}, linalgErrorf(opStep, err)
	}

	return mapVector(v, a, a, step), nil
}

// Smoothstep applies the cubic Hermite ramp between e0 and e1.
// Errors: ErrShapeMismatch.
func (v Vector) Smoothstep(e0, e1 Value) (Vector, error) {
	a, err := vectorOperand(v, e0)
	if err != nil {
		return Vector{}, linalgErrorf(opSmoothstep, err)
	}
	b, err := vectorOperand(v, e1)
	if err != nil {
		return Vector{}, linalgErrorf(opSmoothstep, err)
	}

	return mapVector(v, a, b, numeric.Smoothstep[float64]), nil
}

// Fade applies the quintic ramp 6t⁵-15t⁴+10t³ between e0 and e1.
// Errors: ErrShapeMismatch.
func (v Vector) Fade(e0, e1 Value) (Vector, error) {
	a, err := vectorOperand(v, e0)
	if err != nil {
		return Vector{}, linalgErrorf(opFade, err)
	}
	b, err := vectorOperand(v, e1)
	if err != nil {
		return Vector{}, linalgErrorf(opFade, err)
	}

	return mapVector(v, a, b, numeric.Fade[float64]), nil
}

// Mix returns (1-t)·M + t·B.
// Errors: ErrShapeMismatch.
func (m Matrix) Mix(b Matrix, t float64) (Matrix, error) {
	if err := validateSameMatrix(m, b); err != nil {
		return Matrix{}, linalgErrorf(opMix, err)
	}
	tt, _ := matrixOperand(m, Scalar(t))

	return mapMatrix(m, &b.data, &tt, numeric.Mix[float64]), nil
}

// Clamp limits every cell to [lo, hi].
// Errors: ErrShapeMismatch.
func (m Matrix) Clamp(lo, hi Value) (Matrix, error) {
	a, err := matrixOperand(m, lo)
	if err != nil {
		return Matrix{}, linalgErrorf(opClamp, err)
	}
	b, err := matrixOperand(m, hi)
	if err != nil {
		return Matrix{}, linalgErrorf(opClamp, err)
	}

	return mapMatrix(m, &a, &b, numeric.Clamp[float64]), nil
}

// Step maps each cell to 0 when it is <= edge and to 1 otherwise.
// Errors: ErrShapeMismatch.
func (m Matrix) Step(edge Value) (Matrix, error) {
	a, err := matrixOperand(m, edge)
	if err != nil {
		return Matrix{}, linalgErrorf(opStep, err)
	}

	return mapMatrix(m, &a, &a, step), nil
}

// Smoothstep applies the cubic Hermite ramp cellwise.
// Errors: ErrShapeMismatch.
func (m Matrix) Smoothstep(e0, e1 Value) (Matrix, error) {
	a, err := matrixOperand(m, e0)
	if err != nil {
		return Matrix{}, linalgErrorf(opSmoothstep, err)
	}
	b, err := matrixOperand(m, e1)
	if err != nil {
		return Matrix{}, linalgErrorf(opSmoothstep, err)
	}

	return mapMatrix(m, &a, &b, numeric.Smoothstep[float64]), nil
}

// Fade applies the quintic ramp cellwise.
// Errors: ErrShapeMismatch.
func (m Matrix) Fade(e0, e1 Value) (Matrix, error) {
	a, err := matrixOperand(m, e0)
	if err != nil {
		return Matrix{}, linalgErrorf(opFade, err)
	}
	b, err := matrixOperand(m, e1)
	if err != nil {
		return Matrix{}, linalgErrorf(opFade, err)
	}

	return mapMatrix(m, &a, &b, numeric.Fade[float64]), nil
}
