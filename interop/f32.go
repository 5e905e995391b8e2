// SPDX-License-Identifier: MIT

// Package interop - float32 layouts for GPU uploads.
//
// Layouts:
//   - f32.Mat3 / f32.Mat4 are row-major: m[n*r + c] is row r, column c,
//     matching linalg.Matrix. Use ColumnMajor4 for APIs that expect
//     column-major storage (glUniformMatrix4fv with transpose = false).
//   - Quaternions travel as f32.Vec4 in { w, x, y, z } order.
//
// Narrowing:
//   - Every component is converted with float32(x) and then checked; a NaN
//     or an infinite result fails the whole conversion with ErrNaNInf.
//   - Widening (FromF32*) is exact and never fails.

package interop

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/glmath/linalg"
)

// narrow converts xs into dst, failing on the first non-finite float32.
func narrow(dst []float32, xs []float64) error {
	for i, x := range xs {
		f := float32(x)
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return ErrNaNInf
		}
		dst[i] = f
	}

	return nil
}

// flatten returns the n×n cells of m in row-major order, or
// ErrShapeMismatch when m is not n×n.
func flatten(m linalg.Matrix, n int) ([]float64, error) {
	if !m.Is(n, n) {
		return nil, linalg.ErrShapeMismatch
	}
	a := m.Array()
	out := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		out = append(out, a[i][:n]...)
	}

	return out, nil
}

// Mat3F32 narrows a 3×3 matrix to f32.Mat3.
// Errors: linalg.ErrShapeMismatch, ErrNaNInf.
func Mat3F32(m linalg.Matrix) (f32.Mat3, error) {
	var out f32.Mat3
	xs, err := flatten(m, 3)
	if err == nil {
		err = narrow(out[:], xs)
	}
	if err != nil {
		return f32.Mat3{}, interopErrorf(opMat3, err)
	}

	return out, nil
}

// Mat4F32 narrows a 4×4 matrix to f32.Mat4.
// Errors: linalg.ErrShapeMismatch, ErrNaNInf.
func Mat4F32(m linalg.Matrix) (f32.Mat4, error) {
	var out f32.Mat4
	xs, err := flatten(m, 4)
	if err == nil {
		err = narrow(out[:], xs)
	}
	if err != nil {
		return f32.Mat4{}, interopErrorf(opMat4, err)
	}

	return out, nil
}

// vecF32 narrows v into dst when v has len(dst) components.
func vecF32(dst []float32, v linalg.Vector) error {
	if v.Size() != len(dst) {
		return interopErrorf(opVec, linalg.ErrShapeMismatch)
	}
	a := v.Array()
	if err := narrow(dst, a[:len(dst)]); err != nil {
		return interopErrorf(opVec, err)
	}

	return nil
}

// Vec2F32 narrows a 2-vector; orientation is dropped.
// Errors: linalg.ErrShapeMismatch, ErrNaNInf.
func Vec2F32(v linalg.Vector) (f32.Vec2, error) {
	var out f32.Vec2
	if err := vecF32(out[:], v); err != nil {
		return f32.Vec2{}, err
	}

	return out, nil
}

// Vec3F32 narrows a 3-vector; orientation is dropped.
// Errors: linalg.ErrShapeMismatch, ErrNaNInf.
func Vec3F32(v linalg.Vector) (f32.Vec3, error) {
	var out f32.Vec3
	if err := vecF32(out[:], v); err != nil {
		return f32.Vec3{}, err
	}

	return out, nil
}

// Vec4F32 narrows a 4-vector; orientation is dropped.
// Errors: linalg.ErrShapeMismatch, ErrNaNInf.
func Vec4F32(v linalg.Vector) (f32.Vec4, error) {
	var out f32.Vec4
	if err := vecF32(out[:], v); err != nil {
		return f32.Vec4{}, err
	}

	return out, nil
}

// QuatF32 narrows q to { w, x, y, z }.
// Errors: ErrNaNInf.
func QuatF32(q linalg.Quaternion) (f32.Vec4, error) {
	var out f32.Vec4
	a := q.Array()
	if err := narrow(out[:], a[:]); err != nil {
		return f32.Vec4{}, interopErrorf(opQuat, err)
	}

	return out, nil
}

// widen converts xs to float64.
func widen(xs []float32) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// FromF32Mat3 widens a row-major f32.Mat3.
func FromF32Mat3(m f32.Mat3) linalg.Matrix { return linalg.Mat3(widen(m[:])...) }

// FromF32Mat4 widens a row-major f32.Mat4.
func FromF32Mat4(m f32.Mat4) linalg.Matrix { return linalg.Mat4(widen(m[:])...) }

// FromF32Vec2 widens v to a column 2-vector.
func FromF32Vec2(v f32.Vec2) linalg.Vector { return linalg.Vec2(widen(v[:])...) }

// FromF32Vec3 widens v to a column 3-vector.
func FromF32Vec3(v f32.Vec3) linalg.Vector { return linalg.Vec3(widen(v[:])...) }

// FromF32Vec4 widens v to a column 4-vector.
func FromF32Vec4(v f32.Vec4) linalg.Vector { return linalg.Vec4(widen(v[:])...) }

// FromF32Quat widens { w, x, y, z } to a Quaternion.
func FromF32Quat(v f32.Vec4) linalg.Quaternion { return linalg.Quat(widen(v[:])...) }

// ColumnMajor4 returns m re-laid out column-major: out[4*c + r] = m[4*r + c].
func ColumnMajor4(m f32.Mat4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*c+r] = m[4*r+c]
		}
	}

	return out
}
