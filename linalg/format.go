// SPDX-License-Identifier: MIT
// Package linalg - textual rendering.
//
// Formats (numbers use %g):
//   - Vector:     "{ 1, 2, 3 }'" for a column vector, "{ 1, 2, 3 }" for a row.
//   - Matrix:     "{{ 1, 0 }, { 0, 1 }}", one brace group per row.
//   - Quaternion: "< w, x, y, z >".

package linalg

import (
	"fmt"
	"strings"
)

const (
	_fmtGroupOpen  = "{ "
	_fmtGroupClose = " }"
	_fmtSep        = ", "
	_fmtColumnMark = "'"
)

// writeGroup appends "{ a, b, ... }" for xs.
func writeGroup(b *strings.Builder, xs []float64) {
	b.WriteString(_fmtGroupOpen)
	for i, x := range xs {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtGroupClose)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	var b strings.Builder
	writeGroup(&b, v.data[:v.size])
	if v.orient == Column {
		b.WriteString(_fmtColumnMark)
	}

	return b.String()
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		writeGroup(&b, m.data[i][:m.cols])
	}
	b.WriteByte('}')

	return b.String()
}

// String implements fmt.Stringer.
func (q Quaternion) String() string {
	return fmt.Sprintf("< %g, %g, %g, %g >", q.W, q.X, q.Y, q.Z)
}

// String implements fmt.Stringer.
func (s Scalar) String() string { return fmt.Sprintf("%g", float64(s)) }
