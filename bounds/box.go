// SPDX-License-Identifier: MIT

// Package bounds - axis-aligned boxes.
//
// Layout:
//   - A Box of dimension d stores 2·d values as interleaved (min, max)
//     pairs per axis: { xmin, xmax, ymin, ymax [, zmin, zmax] }.
//   - Dimension is 2 or 3. The values are stored as given; min <= max is
//     not enforced.

package bounds

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glmath/linalg"
	"github.com/katalvlaran/glmath/numeric"
)

// MaxDim is the largest supported box dimension.
const MaxDim = 3

const (
	_fmtOpen  = "[ "
	_fmtClose = " ]"
	_fmtSep   = ", "
)

// Box is an axis-aligned 2D or 3D extent.
type Box struct {
	data [2 * MaxDim]float64
	dim  int
}

func newBox(dim int, values []float64) Box {
	b := Box{dim: dim}
	numeric.Fit(b.data[:2*dim], values)

	return b
}

// NewBox builds a box of dimension dim from interleaved (min, max) values.
// Missing values become 0 and values beyond 2·dim are discarded.
//
// Errors:
//   - linalg.ErrInvalidShape when dim is not 2 or 3.
func NewBox(dim int, values ...float64) (Box, error) {
	if dim != 2 && dim != 3 {
		return Box{}, boundsErrorf(opNewBox, linalg.ErrInvalidShape)
	}

	return newBox(dim, values), nil
}

// Box2 returns the 2D box { xmin, xmax, ymin, ymax }.
func Box2(values ...float64) Box { return newBox(2, values) }

// Box3 returns the 3D box { xmin, xmax, ymin, ymax, zmin, zmax }.
func Box3(values ...float64) Box { return newBox(3, values) }

// BoxFromVectors builds a box from its min and max corners; orientation is
// ignored.
//
// Errors:
//   - linalg.ErrShapeMismatch when the corners differ in size.
//   - linalg.ErrInvalidShape when the size is not 2 or 3.
func BoxFromVectors(lo, hi linalg.Vector) (Box, error) {
	if lo.Size() != hi.Size() {
		return Box{}, boundsErrorf(opFromVector, linalg.ErrShapeMismatch)
	}
	dim := lo.Size()
	if dim != 2 && dim != 3 {
		return Box{}, boundsErrorf(opFromVector, linalg.ErrInvalidShape)
	}
	b := Box{dim: dim}
	a, c := lo.Array(), hi.Array()
	for i := 0; i < dim; i++ {
		b.data[2*i], b.data[2*i+1] = a[i], c[i]
	}

	return b, nil
}

// Dim returns 2 or 3.
func (b Box) Dim() int { return b.dim }

// Min returns the lower bound along axis (1-based: 1 = x, 2 = y, 3 = z).
// Errors: linalg.ErrInvalidIndex.
func (b Box) Min(axis int) (float64, error) {
	if axis < 1 || axis > b.dim {
		return 0, boundsErrorf(opMin, linalg.ErrInvalidIndex)
	}

	return b.data[2*(axis-1)], nil
}

// Max returns the upper bound along axis (1-based).
// Errors: linalg.ErrInvalidIndex.
func (b Box) Max(axis int) (float64, error) {
	if axis < 1 || axis > b.dim {
		return 0, boundsErrorf(opMax, linalg.ErrInvalidIndex)
	}

	return b.data[2*(axis-1)+1], nil
}

// Corners returns the min and max corners as column vectors of size Dim.
func (b Box) Corners() (lo, hi linalg.Vector) {
	var l, h [MaxDim]float64
	for i := 0; i < b.dim; i++ {
		l[i], h[i] = b.data[2*i], b.data[2*i+1]
	}
	lo, _ = linalg.NewVector(b.dim, linalg.Column, l[:b.dim]...)
	hi, _ = linalg.NewVector(b.dim, linalg.Column, h[:b.dim]...)

	return lo, hi
}

// Slice returns a fresh copy of the 2·Dim interleaved values.
func (b Box) Slice() []float64 {
	out := make([]float64, 2*b.dim)
	copy(out, b.data[:2*b.dim])

	return out
}

// String renders "[ xmin, xmax, ymin, ymax ]" with %g numbers.
func (b Box) String() string { return formatList(b.data[:2*b.dim]) }

// formatList renders "[ a, b, ... ]".
func formatList(xs []float64) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(fmt.Sprintf("%g", x))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
