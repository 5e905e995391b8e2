// SPDX-License-Identifier: MIT

package linalg

import "math"

// AllClose reports whether a and b agree elementwise within
// |a-b| ≤ atol + rtol·|b|.
// Implementation:
//   - Stage 1: resolve tolerances (WithAbsTol, WithRelTol; defaults 1e-9).
//   - Stage 2: require the same variant and shape (for vectors: size and
//     orientation); else ErrShapeMismatch.
//   - Stage 3: compare logical components; NaN never compares close.
//
// Notes:
//   - Quaternions are compared componentwise, so q and -q are NOT close even
//     though they encode the same rotation.
//
// AI-Hints:
//   - Use in tests for invariants such as M·M⁻¹ ≈ I.
func AllClose(a, b Value, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	var xs, ys []float64
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			xs, ys = []float64{float64(x)}, []float64{float64(y)}
		}
	case Vector:
		if y, ok := b.(Vector); ok && validateSameVector(x, y) == nil {
			xs, ys = x.data[:x.size], y.data[:y.size]
		}
	case Matrix:
		if y, ok := b.(Matrix); ok && validateSameMatrix(x, y) == nil {
			for i := 0; i < x.rows; i++ {
				xs = append(xs, x.data[i][:x.cols]...)
				ys = append(ys, y.data[i][:y.cols]...)
			}
		}
	case Quaternion:
		if y, ok := b.(Quaternion); ok {
			ax, ay := x.Array(), y.Array()
			xs, ys = ax[:], ay[:]
		}
	}
	if xs == nil {
		return false, linalgErrorf(opAllClose, ErrShapeMismatch)
	}

	for i := range xs {
		if !(math.Abs(xs[i]-ys[i]) <= o.atol+o.rtol*math.Abs(ys[i])) {
			return false, nil
		}
	}

	return true, nil
}
