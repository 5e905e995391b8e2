// Package linalg offers fixed-capacity vectors, matrices and quaternions for
// graphics-style math.
//
// The linalg package provides:
//
//   - Vector: 1..4 components with a row/column orientation tag.
//   - Matrix: rows and cols in 1..4, row-major, with closed-form determinant,
//     adjugate and inverse for orders 2, 3 and 4.
//   - Quaternion: Hamilton product, slerp and rotation-matrix conversion.
//   - Value: a sealed sum type over Scalar, Vector, Matrix and Quaternion with
//     dispatch functions (Add, Mul, Inv, ...) that resolve mixed operands.
//
// All types are small immutable values; Go == compares them structurally.
// Failures are reported with the sentinel errors in errors.go and never with
// partial results.
//
// See the examples in this package and in transform for usage patterns.
package linalg
