// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep operations minimal by delegating size/square/index checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package linalg

// MaxSize is the fixed storage capacity per axis of Vector and Matrix.
const MaxSize = 4

// validSize reports whether n is a legal logical size (1..MaxSize).
func validSize(n int) bool { return n >= 1 && n <= MaxSize }

// validateSize – Ensures a vector size or a matrix axis count is in 1..4.
// Returns ErrInvalidShape otherwise.
func validateSize(n int) error {
	if !validSize(n) {
		return ErrInvalidShape
	}

	return nil
}

// validateShape – Ensures both matrix axis counts are in 1..4.
func validateShape(rows, cols int) error {
	if !validSize(rows) || !validSize(cols) {
		return ErrInvalidShape
	}

	return nil
}

// validateSameVector – Ensures two vectors agree in size AND orientation.
// Used by Add/Sub/Mix and the elementwise family.
func validateSameVector(a, b Vector) error {
	if a.size != b.size || a.orient != b.orient {
		return ErrShapeMismatch
	}

	return nil
}

// validateSameMatrix – Ensures two matrices have identical (rows, cols).
func validateSameMatrix(a, b Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// validateSquare checks that m is square (rows == cols).
//
// Errors: ErrNotSquare.
// AI-Hints: Use before Trace/Pow; determinant-family callers use validateOrder.
func validateSquare(m Matrix) error {
	if m.rows != m.cols {
		return ErrNotSquare
	}

	return nil
}

// validateOrder – Ensures m is square with order in {2,3,4}.
// Composite check: square first, then order.
//
// Errors: ErrNotSquare, ErrUnsupportedOrder.
func validateOrder(m Matrix) error {
	if err := validateSquare(m); err != nil {
		return err
	}
	if m.rows < 2 {
		return ErrUnsupportedOrder
	}

	return nil
}

// validateIndex1 – Ensures a 1-based index i lies in 1..n.
func validateIndex1(i, n int) error {
	if i < 1 || i > n {
		return ErrInvalidIndex
	}

	return nil
}

// validateIndex0 – Ensures a 0-based index i lies in 0..n-1.
func validateIndex0(i, n int) error {
	if i < 0 || i >= n {
		return ErrInvalidIndex
	}

	return nil
}
