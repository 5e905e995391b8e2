// SPDX-License-Identifier: MIT
// Package interop: sentinel error set.
// Shape problems reuse linalg.ErrShapeMismatch; narrowing failures report
// ErrNaNInf. Both are wrapped with an operation tag.

package interop

import (
	"errors"
	"fmt"
)

// ErrNaNInf indicates a component that is NaN or not representable as a
// finite float32.
var ErrNaNInf = errors.New("interop: component is NaN or overflows float32")

// Operation name constants for unified error wrapping.
const (
	opMat3 = "Mat3F32"
	opMat4 = "Mat4F32"
	opVec  = "VecF32"
	opQuat = "QuatF32"
)

// interopErrorf wraps err with an operation tag, preserving it via %w.
func interopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
