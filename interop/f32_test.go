// SPDX-License-Identifier: MIT

package interop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/glmath/interop"
	"github.com/katalvlaran/glmath/linalg"
	"github.com/katalvlaran/glmath/transform"
)

func TestMat4F32RowMajor(t *testing.T) {
	m, err := interop.Mat4F32(transform.Translate(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, f32.Mat4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}, m)

	// Column-major puts the translation in the last four cells.
	c := interop.ColumnMajor4(m)
	assert.Equal(t, []float32{1, 2, 3, 1}, c[12:])
	assert.Equal(t, m, interop.ColumnMajor4(c))
}

func TestMat3F32(t *testing.T) {
	src := linalg.Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	m, err := interop.Mat3F32(src)
	require.NoError(t, err)
	assert.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m)
	assert.Equal(t, src, interop.FromF32Mat3(m))
}

func TestWideningIsExact(t *testing.T) {
	src := linalg.Mat4(0.5, -0.25, 3, 1024, 0, 1, 2, 3, -1, -2, -3, -4, 8, 16, 32, 64)
	m, err := interop.Mat4F32(src)
	require.NoError(t, err)
	assert.Equal(t, src, interop.FromF32Mat4(m))
}

func TestVectors(t *testing.T) {
	v2, err := interop.Vec2F32(linalg.Vec2r(1, 2))
	require.NoError(t, err)
	assert.Equal(t, f32.Vec2{1, 2}, v2)

	v3, err := interop.Vec3F32(linalg.Vec3(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3(1, 2, 3), interop.FromF32Vec3(v3))

	v4, err := interop.Vec4F32(linalg.Vec4(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec4(1, 2, 3, 4), interop.FromF32Vec4(v4))
	assert.Equal(t, linalg.Vec2(1, 2), interop.FromF32Vec2(v2))
}

func TestQuatOrder(t *testing.T) {
	q, err := interop.QuatF32(linalg.Quat(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, q)
	assert.Equal(t, linalg.Quat(1, 2, 3, 4), interop.FromF32Quat(q))
}

func TestShapeErrors(t *testing.T) {
	_, err := interop.Mat4F32(linalg.Mat3())
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = interop.Mat3F32(linalg.Mat3x4())
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = interop.Vec3F32(linalg.Vec4())
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = interop.Vec2F32(linalg.Vec3())
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestNarrowingFailures(t *testing.T) {
	cases := []struct {
		name string
		x    float64
	}{
		{"overflow", 1e39},
		{"negative overflow", -1e300},
		{"NaN", math.NaN()},
		{"Inf", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interop.Vec3F32(linalg.Vec3(0, tc.x, 0))
			assert.ErrorIs(t, err, interop.ErrNaNInf)

			_, err = interop.Mat4F32(transform.Translate(tc.x, 0, 0))
			assert.ErrorIs(t, err, interop.ErrNaNInf)

			_, err = interop.QuatF32(linalg.Quat(1, 0, 0, tc.x))
			assert.ErrorIs(t, err, interop.ErrNaNInf)
		})
	}

	// Values that merely lose precision are accepted.
	v, err := interop.Vec2F32(linalg.Vec2(1e-50, 0.5))
	require.NoError(t, err)
	assert.Equal(t, f32.Vec2{0, 0.5}, v)
}
