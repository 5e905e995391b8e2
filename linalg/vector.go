// SPDX-License-Identifier: MIT

// Package linalg - Vector storage & constructors.
//
// Purpose:
//   - Fixed 4-slot storage with a logical size (1..4) and an orientation tag.
//   - Immutable value semantics: every operation returns a new Vector.
//   - Trailing slots beyond size are always zero, so == is structural equality
//     over (size, orientation, components).
//
// Complexity quicksheet:
//   - Construction, access, Resize: O(1) (bounded by MaxSize).

package linalg

import "github.com/katalvlaran/glmath/numeric"

// Vector is a fixed-capacity numeric vector.
//   - data holds up to MaxSize components; only data[:size] is meaningful.
//   - size is the logical size in 1..MaxSize.
//   - orient selects column (n×1) or row (1×n) semantics for Mul dispatch.
//
// The zero Vector has size 0 and is not produced by any constructor.
type Vector struct {
	data   [MaxSize]float64
	size   int
	orient Orientation
}

// newVector builds a Vector from src with size adaptation, without validation.
// Caller guarantees 1 <= size <= MaxSize.
func newVector(size int, o Orientation, src []float64) Vector {
	v := Vector{size: size, orient: o}
	numeric.Fit(v.data[:size], src)

	return v
}

// NewVector creates a vector of the given size and orientation.
// Implementation:
//   - Stage 1: validate size in 1..4; else ErrInvalidShape.
//   - Stage 2: copy values, padding missing trailing values with 0 and
//     discarding values beyond size.
//
// Errors:
//   - ErrInvalidShape (size outside 1..4).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewVector(size int, o Orientation, values ...float64) (Vector, error) {
	if err := validateSize(size); err != nil {
		return Vector{}, linalgErrorf(opNewVector, err)
	}

	return newVector(size, o, values), nil
}

// VectorOf creates a vector whose size is len(values).
// Errors: ErrInvalidShape when len(values) is 0 or greater than 4.
func VectorOf(o Orientation, values ...float64) (Vector, error) {
	return NewVector(len(values), o, values...)
}

// Vec2 returns a 2-component column vector (missing values are 0).
func Vec2(values ...float64) Vector { return newVector(2, Column, values) }

// Vec3 returns a 3-component column vector (missing values are 0).
func Vec3(values ...float64) Vector { return newVector(3, Column, values) }

// Vec4 returns a 4-component column vector (missing values are 0).
func Vec4(values ...float64) Vector { return newVector(4, Column, values) }

// Vec2r returns a 2-component row vector.
func Vec2r(values ...float64) Vector { return newVector(2, Row, values) }

// Vec3r returns a 3-component row vector.
func Vec3r(values ...float64) Vector { return newVector(3, Row, values) }

// Vec4r returns a 4-component row vector.
func Vec4r(values ...float64) Vector { return newVector(4, Row, values) }

// Resize returns a copy of v adapted to size n, keeping the orientation.
// Components beyond n are discarded; new components are 0.
//
// Errors:
//   - ErrInvalidShape (n outside 1..4).
func (v Vector) Resize(n int) (Vector, error) {
	if err := validateSize(n); err != nil {
		return Vector{}, linalgErrorf(opResize, err)
	}

	return newVector(n, v.orient, v.data[:v.size]), nil
}

// Size returns the logical number of components.
func (v Vector) Size() int { return v.size }

// Orientation returns the row/column tag.
func (v Vector) Orientation() Orientation { return v.orient }

// IsRow reports whether v is a row vector.
func (v Vector) IsRow() bool { return v.orient == Row }

// Is reports whether v has exactly the given size and orientation.
func (v Vector) Is(size int, o Orientation) bool {
	return v.size == size && v.orient == o
}

// At returns component i (0-based).
// Errors: ErrInvalidIndex.
func (v Vector) At(i int) (float64, error) {
	if err := validateIndex0(i, v.size); err != nil {
		return 0, linalgErrorf(opAt, err)
	}

	return v.data[i], nil
}

// Component returns component i (1-based), the convention of scripting hosts.
// Errors: ErrInvalidIndex.
func (v Vector) Component(i int) (float64, error) {
	if err := validateIndex1(i, v.size); err != nil {
		return 0, linalgErrorf(opAt, err)
	}

	return v.data[i-1], nil
}

// Slice returns a fresh copy of the meaningful components.
func (v Vector) Slice() []float64 {
	out := make([]float64, v.size)
	copy(out, v.data[:v.size])

	return out
}

// Array returns the full fixed storage; slots beyond Size are zero.
func (v Vector) Array() [MaxSize]float64 { return v.data }
