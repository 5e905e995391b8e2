// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/linalg"
)

func TestVector_ClampBroadcast(t *testing.T) {
	v := linalg.Vec4(-2, 0.5, 3, 1)

	got, err := v.Clamp(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec4(0, 0.5, 1, 1), got)

	got, err = v.Clamp(linalg.Vec4(-1, -1, -1, 2), linalg.Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec4(-1, 0.5, 2, 2), got)

	_, err = v.Clamp(linalg.Vec4r(), linalg.Scalar(1))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = v.Clamp(linalg.Scalar(0), linalg.Mat2())
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestVector_StepSmoothstepFade(t *testing.T) {
	v := linalg.Vec3r(0, 0.5, 1)

	got, err := v.Step(linalg.Scalar(0.5))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(0, 0, 1), got, "edge maps to 0")

	got, err = v.Smoothstep(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(0, 0.5, 1), got)

	got, err = v.Fade(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(0, 0.5, 1), got)

	_, err = v.Step(linalg.Vec2r())
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = v.Fade(linalg.Scalar(0), linalg.Quat())
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestVector_Mix(t *testing.T) {
	got, err := linalg.Vec2(0, 10).Mix(linalg.Vec2(10, 0), 0.1)
	require.NoError(t, err)
	requireClose(t, linalg.Vec2(1, 9), got)

	_, err = linalg.Vec2().Mix(linalg.Vec3(), 0.5)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestMatrix_Elementwise(t *testing.T) {
	m := linalg.Mat2(-1, 0.25, 2, 0.75)

	got, err := m.Clamp(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Mat2(0, 0.25, 1, 0.75), got)

	got, err = m.Step(linalg.Mat2(0, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Mat2(0, 1, 1, 0), got)

	got, err = m.Smoothstep(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	requireClose(t, linalg.Mat2(0, 0.15625, 1, 0.84375), got)

	got, err = m.Fade(linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	requireClose(t, linalg.Mat2(0, 0.103515625, 1, 0.896484375), got)

	mixed, err := m.Mix(linalg.Mat2(1, 1, 1, 1), 1)
	require.NoError(t, err)
	assert.Equal(t, linalg.Mat2(1, 1, 1, 1), mixed)

	_, err = m.Clamp(linalg.Mat3(), linalg.Scalar(1))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = m.Step(linalg.Vec2())
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = m.Mix(linalg.Mat2x3(), 0.5)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestElementwise_Dispatch(t *testing.T) {
	got, err := linalg.Clamp(linalg.Scalar(5), linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Scalar(1), got)

	got, err = linalg.Step(linalg.Vec2(1, 3), linalg.Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec2(0, 1), got)

	got, err = linalg.Smoothstep(linalg.Scalar(0.5), linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Scalar(0.5), got)

	got, err = linalg.Fade(linalg.Mat2(), linalg.Scalar(0), linalg.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Mat2(), got)

	_, err = linalg.Clamp(linalg.Scalar(5), linalg.Vec2(), linalg.Scalar(1))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = linalg.Step(linalg.Quat(), linalg.Scalar(0))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}
