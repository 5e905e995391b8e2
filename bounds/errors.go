// SPDX-License-Identifier: MIT
// Package bounds: error wrapping.
// Constructors and accessors report the shared linalg sentinels
// (ErrInvalidShape, ErrInvalidIndex, ErrShapeMismatch) tagged with the
// operation name; match them with errors.Is.

package bounds

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNewBox     = "NewBox"
	opFromVector = "BoxFromVectors"
	opMin        = "Min"
	opMax        = "Max"
)

// boundsErrorf wraps err with an operation tag, preserving it via %w.
func boundsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
