// SPDX-License-Identifier: MIT

// Package linalg: domain types shared by all engines.
// This file contains ONLY the closed Value sum type, its variant tags and the
// orientation enum. Engines live in vector*.go, matrix*.go, quat*.go.

package linalg

// Orientation tags a Vector as a column (n×1) or a row (1×n).
// It governs how Mul dispatches: column vectors multiply matrices from the
// right, row vectors from the left, and column×row yields an outer product.
type Orientation uint8

const (
	// Column is the default orientation of Vec2/Vec3/Vec4.
	Column Orientation = iota
	// Row is produced by Vec2r/Vec3r/Vec4r, Matrix.Row and Transpose.
	Row
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindVector
	KindMatrix
	KindQuaternion
)

var kindNames = [...]string{
	KindScalar:     "scalar",
	KindVector:     "vector",
	KindMatrix:     "matrix",
	KindQuaternion: "quaternion",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return "unknown"
}

// Value is the closed set of algebraic operands: Scalar, Vector, Matrix and
// Quaternion. The unexported marker method seals the set; dispatch functions
// in dispatch.go switch over exactly these four variants.
type Value interface {
	Kind() Kind
	value()
}

// Scalar is a plain number taking part in Value dispatch.
type Scalar float64

// Compile-time assertions for sum-type membership.
var (
	_ Value = Scalar(0)
	_ Value = Vector{}
	_ Value = Matrix{}
	_ Value = Quaternion{}
)

func (Scalar) Kind() Kind     { return KindScalar }
func (Vector) Kind() Kind     { return KindVector }
func (Matrix) Kind() Kind     { return KindMatrix }
func (Quaternion) Kind() Kind { return KindQuaternion }

func (Scalar) value()     {}
func (Vector) value()     {}
func (Matrix) value()     {}
func (Quaternion) value() {}
