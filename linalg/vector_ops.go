// SPDX-License-Identifier: MIT
// Package linalg - vector arithmetic kernels.
//
// Purpose:
//   - Componentwise algebra, inner/outer/cross products and normalization.
//   - Validation via validators.go; wrapping via linalgErrorf at each entry.
//
// Numeric policy:
//   - Division by zero and normalization of a zero vector are NOT guarded:
//     callers receive IEEE-754 infinities/NaN, as with plain float64 math.

package linalg

import "math"

// Neg returns -v.
func (v Vector) Neg() Vector {
	out := Vector{size: v.size, orient: v.orient}
	for i := 0; i < v.size; i++ {
		out.data[i] = -v.data[i]
	}

	return out
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Sizes AND orientations must match.
func (v Vector) addSub(w Vector, sign float64, opTag string) (Vector, error) {
	if err := validateSameVector(v, w); err != nil {
		return Vector{}, linalgErrorf(opTag, err)
	}
	out := Vector{size: v.size, orient: v.orient}
	for i := 0; i < v.size; i++ {
		out.data[i] = v.data[i] + sign*w.data[i]
	}

	return out, nil
}

// Add returns v + w.
// Errors: ErrShapeMismatch when sizes or orientations differ.
func (v Vector) Add(w Vector) (Vector, error) { return v.addSub(w, +1, opAdd) }

// Sub returns v - w.
// Errors: ErrShapeMismatch when sizes or orientations differ.
func (v Vector) Sub(w Vector) (Vector, error) { return v.addSub(w, -1, opSub) }

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector {
	out := Vector{size: v.size, orient: v.orient}
	for i := 0; i < v.size; i++ {
		out.data[i] = v.data[i] * s
	}

	return out
}

// Div returns v/s componentwise. s == 0 yields ±Inf/NaN components.
func (v Vector) Div(s float64) Vector {
	out := Vector{size: v.size, orient: v.orient}
	for i := 0; i < v.size; i++ {
		out.data[i] = v.data[i] / s
	}

	return out
}

// Dot returns Σ vᵢwᵢ.
// Orientation is not checked: row·column, column·column and row·row are all
// accepted as a generalized inner product. Only sizes must agree.
//
// Errors: ErrShapeMismatch (size).
func (v Vector) Dot(w Vector) (float64, error) {
	if v.size != w.size {
		return 0, linalgErrorf(opDot, ErrShapeMismatch)
	}

	return dot(v.data[:v.size], w.data[:w.size]), nil
}

// dot is the raw inner product over equal-length slices.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Cross returns the 3D cross product v × w as a 3-component vector.
// Implementation:
//   - Stage 1: require equal orientation and equal size in {2,3,4}.
//   - Stage 2: 2-component inputs are lifted with z = 0 (storage is already
//     zero); 4-component inputs use x, y, z and ignore w.
//   - Stage 3: apply the 3D formula; the result keeps v's orientation.
//
// Errors:
//   - ErrShapeMismatch (orientation/size differ, or size 1).
func (v Vector) Cross(w Vector) (Vector, error) {
	if err := validateSameVector(v, w); err != nil {
		return Vector{}, linalgErrorf(opCross, err)
	}
	if v.size < 2 {
		return Vector{}, linalgErrorf(opCross, ErrShapeMismatch)
	}

	return Vector{data: cross3(v.data, w.data), size: 3, orient: v.orient}, nil
}

// cross3 applies the cross-product formula to the first three slots.
func cross3(a, b [MaxSize]float64) [MaxSize]float64 {
	return [MaxSize]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Norm2 returns the squared Euclidean norm Σ vᵢ².
func (v Vector) Norm2() float64 { return dot(v.data[:v.size], v.data[:v.size]) }

// Norm returns the Euclidean norm sqrt(Σ vᵢ²).
func (v Vector) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize returns v/|v|. A zero vector yields NaN components.
func (v Vector) Normalize() Vector { return v.Div(v.Norm()) }

// Transpose returns v with the opposite orientation and the same components.
func (v Vector) Transpose() Vector {
	v.orient = v.orient.Flip()

	return v
}

// Outer returns the n×m outer product M[i][j] = v[i]*w[j] of a column vector v
// (size n) and a row vector w (size m).
//
// Errors:
//   - ErrShapeMismatch when v is not a column or w is not a row.
func (v Vector) Outer(w Vector) (Matrix, error) {
	if v.orient != Column || w.orient != Row {
		return Matrix{}, linalgErrorf(opOuter, ErrShapeMismatch)
	}

	return outer(v, w), nil
}

// outer computes the product without orientation checks.
func outer(v, w Vector) Matrix {
	m := Matrix{rows: v.size, cols: w.size}
	for i := 0; i < v.size; i++ {
		for j := 0; j < w.size; j++ {
			m.data[i][j] = v.data[i] * w.data[j]
		}
	}

	return m
}

// MulMatrix returns the row vector v·M (1×r · r×c = 1×c).
// Errors: ErrShapeMismatch when v is not a row or v.Size() != M.Rows().
func (v Vector) MulMatrix(m Matrix) (Vector, error) { return VecMul(v, m) }
