// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for easy grepping. Operations
// wrap with linalgErrorf(op, ErrX) so messages read "Inverse: linalg: ...";
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape/size -> square -> order -> singular -> index.

var (
	// ErrShapeMismatch indicates incompatible operands for a binary operation:
	// different sizes or orientations of vectors, different matrix shapes,
	// M1.cols != M2.rows, or operand variants that cannot be combined.
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but rows != cols.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrUnsupportedOrder signals a determinant/adjugate/inverse request for a
	// square matrix whose order is outside {2,3,4}.
	ErrUnsupportedOrder = errors.New("linalg: unsupported matrix order")

	// ErrSingularMatrix is returned when the determinant is exactly 0.0 where an
	// inverse is required (Inverse, Pow with a negative exponent).
	ErrSingularMatrix = errors.New("linalg: singular matrix")

	// ErrInvalidIndex indicates an out-of-range row/column/component index.
	ErrInvalidIndex = errors.New("linalg: invalid index")

	// ErrInvalidShape indicates a constructor was given an out-of-range size,
	// e.g. a vector of size 0 or 5, or a matrix with 5 rows.
	ErrInvalidShape = errors.New("linalg: invalid shape")

	// ErrNotSupported marks a conversion outside its domain, e.g. extracting a
	// quaternion from a matrix that is neither 3×3 nor 4×4.
	ErrNotSupported = errors.New("linalg: operation not supported")
)

// Operation name constants for unified error wrapping.
const (
	opNewVector   = "NewVector"
	opNewMatrix   = "NewMatrix"
	opFromRows    = "MatrixFromRows"
	opFromVectors = "MatrixFromVectors"
	opResize      = "Resize"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opVecMul      = "VecMul"
	opDiv         = "Div"
	opPow         = "Pow"
	opDot         = "Dot"
	opCross       = "Cross"
	opOuter       = "Outer"
	opDet         = "Determinant"
	opAdj         = "Adjugate"
	opInverse     = "Inverse"
	opTrace       = "Trace"
	opRow         = "Row"
	opColumn      = "Column"
	opAt          = "At"
	opMix         = "Mix"
	opClamp       = "Clamp"
	opStep        = "Step"
	opSmoothstep  = "Smoothstep"
	opFade        = "Fade"
	opToMatrix    = "ToMatrix"
	opFromMatrix  = "QuatFromMatrix"
	opTranspose   = "Transpose"
	opNorm        = "Norm"
	opNormalize   = "Normalize"
	opAllClose    = "AllClose"
	opNewQuat     = "QuatFromAxisAngle"
	opRotate      = "Rotate"
	opInv         = "Inv"
	opNeg         = "Neg"
)

// linalgErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
//
// Returns:
//   - error: formats as "<tag>: <underlying>" and still matches errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
