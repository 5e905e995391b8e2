// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/linalg"
)

func TestQuat_Constructors(t *testing.T) {
	assert.Equal(t, linalg.Quaternion{W: 1, X: 2}, linalg.Quat(1, 2))
	assert.Equal(t, linalg.Quaternion{W: 1, X: 2, Y: 3, Z: 4}, linalg.Quat(1, 2, 3, 4, 5))
	assert.Equal(t, linalg.Quaternion{W: 1}, linalg.QuatIdentity())

	q := linalg.QuatFromParts(0.5, linalg.Vec3(1, 2, 3))
	assert.Equal(t, linalg.Quat(0.5, 1, 2, 3), q)
	w, v := q.Parts()
	assert.Equal(t, 0.5, w)
	assert.Equal(t, linalg.Vec3(1, 2, 3), v)
}

func TestQuatFromAxisAngle_NormalizesAxis(t *testing.T) {
	q, err := linalg.QuatFromAxisAngle(linalg.Vec3(0, 0, 10), math.Pi/2)
	require.NoError(t, err)
	requireClose(t, linalg.Quat(math.Sqrt2/2, 0, 0, math.Sqrt2/2), q)
	assert.InDelta(t, 1.0, q.Norm(), tol)

	_, err = linalg.QuatFromAxisAngle(linalg.Vec2(1, 0), 1)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestQuatFromAxisAngle_ScaledAxisKeepsAngle(t *testing.T) {
	for _, axis := range []linalg.Vector{linalg.Vec3(0, 0, 10), linalg.Vec3(0, 0, 0.01), linalg.Vec3r(0, 0, 3)} {
		q, err := linalg.QuatFromAxisAngle(axis, math.Pi/2)
		require.NoError(t, err)
		v, err := q.Rotate(linalg.Vec3(1, 0, 0))
		require.NoError(t, err)
		requireClose(t, linalg.Vec3(0, 1, 0), v, linalg.WithAbsTol(1e-12))
	}

	q, err := linalg.QuatFromAxisAngle(linalg.Vec3(), 1)
	require.NoError(t, err)
	assert.Equal(t, linalg.QuatIdentity(), q)
}

func TestQuat_Arithmetic(t *testing.T) {
	q := linalg.Quat(1, 2, 3, 4)
	p := linalg.Quat(4, 3, 2, 1)
	assert.Equal(t, linalg.Quat(5, 5, 5, 5), q.Add(p))
	assert.Equal(t, linalg.Quat(-3, -1, 1, 3), q.Sub(p))
	assert.Equal(t, linalg.Quat(2, 4, 6, 8), q.Scale(2))
	assert.Equal(t, linalg.Quat(0.5, 1, 1.5, 2), q.Div(2))
	assert.Equal(t, linalg.Quat(1, -2, -3, -4), q.Conj())
	assert.Equal(t, linalg.Quat(-1, -2, -3, -4), q.Neg())
	assert.Equal(t, 20.0, q.Dot(p))
	assert.Equal(t, 30.0, q.Norm2())
}

func TestQuat_HamiltonProduct(t *testing.T) {
	i, j, k := linalg.Quat(0, 1), linalg.Quat(0, 0, 1), linalg.Quat(0, 0, 0, 1)
	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, k.Neg(), j.Mul(i), "not commutative")
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, linalg.Quat(-1), i.Mul(i))

	q := linalg.Quat(1, 2, 3, 4)
	p := linalg.Quat(5, 6, 7, 8)
	assert.Equal(t, linalg.Quat(-60, 12, 30, 24), q.Mul(p))
}

func TestQuat_InvAndPow(t *testing.T) {
	q := linalg.Quat(1, 2, 3, 4)
	requireClose(t, linalg.QuatIdentity(), q.Mul(q.Inv()))

	assert.Equal(t, linalg.QuatIdentity(), q.Pow(0))
	assert.Equal(t, q, q.Pow(1))
	assert.Equal(t, q.Mul(q).Mul(q), q.Pow(3))
	requireClose(t, q.Inv().Mul(q.Inv()), q.Pow(-2))

	rot, err := linalg.QuatFromAxisAngle(linalg.Vec3(1, 0, 0), math.Pi/8)
	require.NoError(t, err)
	quarter, err := linalg.QuatFromAxisAngle(linalg.Vec3(1, 0, 0), math.Pi/2)
	require.NoError(t, err)
	requireClose(t, quarter, rot.Pow(4))
}

func TestQuat_Slerp(t *testing.T) {
	q := linalg.QuatIdentity()
	p, err := linalg.QuatFromAxisAngle(linalg.Vec3(0, 1, 0), math.Pi/2)
	require.NoError(t, err)

	requireClose(t, q, q.Slerp(p, 0))
	requireClose(t, p, q.Slerp(p, 1))

	half, err := linalg.QuatFromAxisAngle(linalg.Vec3(0, 1, 0), math.Pi/4)
	require.NoError(t, err)
	requireClose(t, half, q.Slerp(p, 0.5))
}

func TestQuat_SlerpTakesShortestPath(t *testing.T) {
	q := linalg.QuatIdentity()
	p, err := linalg.QuatFromAxisAngle(linalg.Vec3(0, 0, 1), math.Pi/2)
	require.NoError(t, err)

	requireClose(t, q.Slerp(p, 0.3), q.Slerp(p.Neg(), 0.3))
	requireClose(t, p, q.Slerp(p.Neg(), 1), linalg.WithAbsTol(1e-8))
}

func TestQuat_SlerpNearlyEqualFallsBackToMix(t *testing.T) {
	q := linalg.QuatIdentity()
	p := linalg.Quat(1, 1e-4).Normalize()
	assert.Equal(t, q.Mix(p, 0.25), q.Slerp(p, 0.25))
}

func TestQuat_MixDoesNotRenormalize(t *testing.T) {
	q := linalg.Quat(1)
	p := linalg.Quat(0, 1)
	m := q.Mix(p, 0.5)
	assert.Equal(t, linalg.Quat(0.5, 0.5), m)
	assert.InDelta(t, math.Sqrt(0.5), m.Norm(), tol)
}

func TestQuat_Rotate(t *testing.T) {
	q, err := linalg.QuatFromAxisAngle(linalg.Vec3(0, 0, 1), math.Pi)
	require.NoError(t, err)
	v, err := q.Rotate(linalg.Vec3(1, 0, 0))
	require.NoError(t, err)
	requireClose(t, linalg.Vec3(-1, 0, 0), v)

	_, err = q.Rotate(linalg.Vec4(1, 0, 0, 1))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestQuat_ZeroIsNotGuarded(t *testing.T) {
	z := linalg.Quat()
	assert.True(t, math.IsNaN(z.Normalize().W))
	assert.True(t, math.IsNaN(z.Inv().X))
}
