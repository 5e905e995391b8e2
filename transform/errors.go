// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Builders return these sentinels wrapped with an operation tag; match them
// with errors.Is. Shape errors from operand vectors reuse
// linalg.ErrShapeMismatch.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate signals a zero-extent viewing volume (left == right,
	// bottom == top, near == far, aspect == 0) or a look-at basis that
	// collapses (eye == at, or up parallel to the view direction).
	ErrDegenerate = errors.New("transform: degenerate volume or basis")

	// ErrInvalidDepth signals a non-positive near or far plane for a
	// perspective projection.
	ErrInvalidDepth = errors.New("transform: near and far must be positive")
)

// Operation name constants for unified error wrapping.
const (
	opTranslate   = "TranslateVec"
	opScale       = "ScaleVec"
	opRotate      = "Rotate"
	opLookAt      = "LookAt"
	opOrtho       = "Ortho"
	opFrustum     = "Frustum"
	opPerspective = "Perspective"
)

// transformErrorf wraps err with an operation tag, preserving it via %w.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
