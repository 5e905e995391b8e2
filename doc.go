// Package glmath is a small, fixed-capacity linear-algebra toolkit for
// graphics and scripting hosts: vectors, matrices up to 4×4, quaternions,
// complex numbers, boxes and the usual viewing transforms.
//
// 🚀 What is glmath?
//
//	A value-typed, allocation-light library that brings together:
//		• Vectors with row/column orientation: dot, cross, outer, normalize
//		• Matrices 1×1..4×4: closed-form determinant, adjugate, inverse, power
//		• Quaternions: Hamilton product, slerp, matrix conversion
//		• Complex numbers over complex128 with a by-name function table
//		• Transforms: translate, scale, rotate, look-at, ortho, frustum, perspective
//		• Boxes and rectangles, float32 export for GPU uploads
//
// ✨ Why choose glmath?
//
//   - Immutable values – no locks, no aliasing, == is structural equality
//   - Explicit errors – sentinel errors checked with errors.Is, never partial results
//   - Generic scalar helpers – clamp/mix/step work for float32 and float64
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/    — clamp, mix, step, smoothstep, fade and the size-adapting copy
//	linalg/     — Vector, Matrix, Quaternion, the Value sum type and dispatch
//	complexnum/ — complex arithmetic and transcendental functions
//	transform/  — homogeneous transforms and projection matrices
//	bounds/     — Box (2D/3D) and Rect
//	interop/    — float32 layouts from golang.org/x/image/math/f32
//
// Quick example:
//
//	q, _ := linalg.QuatFromAxisAngle(linalg.Vec3(0, 0, 1), math.Pi)
//	v, _ := q.Mat3().MulVec(linalg.Vec3(1, 0, 0)) // ≈ { -1, 0, 0 }'
//
//	go get github.com/katalvlaran/glmath
package glmath
