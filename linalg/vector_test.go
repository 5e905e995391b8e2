// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/linalg"
)

func TestNewVector_SizeAdaptation(t *testing.T) {
	v, err := linalg.NewVector(3, linalg.Row, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0}, v.Slice())
	assert.True(t, v.Is(3, linalg.Row))

	v, err = linalg.NewVector(2, linalg.Column, 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v.Slice())
	assert.Equal(t, linalg.Column, v.Orientation())
}

func TestNewVector_InvalidShape(t *testing.T) {
	for _, n := range []int{0, 5, -1} {
		_, err := linalg.NewVector(n, linalg.Column)
		require.ErrorIs(t, err, linalg.ErrInvalidShape, "size %d", n)
	}
	_, err := linalg.VectorOf(linalg.Row)
	require.ErrorIs(t, err, linalg.ErrInvalidShape)
}

func TestVector_FixedBuilders(t *testing.T) {
	assert.True(t, linalg.Vec2().Is(2, linalg.Column))
	assert.True(t, linalg.Vec4r(1).Is(4, linalg.Row))
	assert.Equal(t, []float64{1, 2, 3}, linalg.Vec3(1, 2, 3, 4).Slice())
	// trailing storage stays zero so == is structural
	assert.Equal(t, linalg.Vec3(1, 2, 3), linalg.Vec3(1, 2, 3, 4))
	assert.NotEqual(t, linalg.Vec3(1, 2, 3), linalg.Vec3r(1, 2, 3))
}

func TestVector_Resize(t *testing.T) {
	v := linalg.Vec4r(1, 2, 3, 4)
	short, err := v.Resize(2)
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec2r(1, 2), short)

	long, err := short.Resize(3)
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(1, 2, 0), long)

	_, err = v.Resize(5)
	require.ErrorIs(t, err, linalg.ErrInvalidShape)
}

func TestVector_Accessors(t *testing.T) {
	v := linalg.Vec3(7, 8, 9)
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, x)
	z, err := v.Component(3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, z)

	_, err = v.At(3)
	require.ErrorIs(t, err, linalg.ErrInvalidIndex)
	_, err = v.Component(0)
	require.ErrorIs(t, err, linalg.ErrInvalidIndex)
	assert.Equal(t, [linalg.MaxSize]float64{7, 8, 9, 0}, v.Array())
}

func TestVector_AddSub(t *testing.T) {
	sum, err := linalg.Vec3(1, 2, 3).Add(linalg.Vec3(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3(5, 7, 9), sum)

	diff, err := linalg.Vec3(1, 2, 3).Sub(linalg.Vec3(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3(-3, -3, -3), diff)

	_, err = linalg.Vec3(1, 2, 3).Add(linalg.Vec3r(1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch, "orientation must match")
	_, err = linalg.Vec3(1, 2, 3).Sub(linalg.Vec2(1, 2))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch, "size must match")
}

func TestVector_ScaleDivNeg(t *testing.T) {
	v := linalg.Vec2r(2, -4)
	assert.Equal(t, linalg.Vec2r(4, -8), v.Scale(2))
	assert.Equal(t, linalg.Vec2r(1, -2), v.Div(2))
	assert.Equal(t, linalg.Vec2r(-2, 4), v.Neg())

	inf := v.Div(0)
	assert.True(t, math.IsInf(inf.Slice()[0], 1))
	assert.True(t, math.IsInf(inf.Slice()[1], -1))
}

func TestVector_DotIgnoresOrientation(t *testing.T) {
	for _, w := range []linalg.Vector{linalg.Vec3(4, 5, 6), linalg.Vec3r(4, 5, 6)} {
		d, err := linalg.Vec3(1, 2, 3).Dot(w)
		require.NoError(t, err)
		assert.Equal(t, 32.0, d)
	}
	_, err := linalg.Vec3(1, 2, 3).Dot(linalg.Vec4(1, 2, 3, 4))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestVector_Cross(t *testing.T) {
	z, err := linalg.Vec3(1, 0, 0).Cross(linalg.Vec3(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3(0, 0, 1), z)

	// 2-component inputs are lifted with z = 0 and report a 3-vector
	c, err := linalg.Vec2r(1, 0).Cross(linalg.Vec2r(0, 1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(0, 0, 1), c)

	_, err = linalg.Vec3(1, 0, 0).Cross(linalg.Vec3r(0, 1, 0))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	_, err = linalg.Vec2(1, 0).Cross(linalg.Vec3(0, 1, 0))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	one, err := linalg.VectorOf(linalg.Column, 1)
	require.NoError(t, err)
	_, err = one.Cross(one)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestVector_CrossIgnoresW(t *testing.T) {
	c, err := linalg.Vec4(1, 0, 0, 7).Cross(linalg.Vec4(0, 1, 0, -3))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3(0, 0, 1), c)

	c, err = linalg.Vec4r(0, 2, 0, 1).Cross(linalg.Vec4r(0, 0, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(6, 0, 0), c)
}

func TestVector_NormNormalize(t *testing.T) {
	v := linalg.Vec2(3, 4)
	assert.Equal(t, 25.0, v.Norm2())
	assert.Equal(t, 5.0, v.Norm())
	assert.InDelta(t, 1.0, v.Normalize().Norm(), tol)

	zero := linalg.Vec3().Normalize()
	for _, x := range zero.Slice() {
		assert.True(t, math.IsNaN(x))
	}
}

func TestVector_TransposeAndOuter(t *testing.T) {
	col := linalg.Vec2(1, 2)
	row := col.Transpose()
	assert.True(t, row.IsRow())
	assert.Equal(t, col.Slice(), row.Slice())
	assert.Equal(t, col, row.Transpose())

	m, err := col.Outer(linalg.Vec3r(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, MustMatrix(t, []float64{3, 4, 5}, []float64{6, 8, 10}), m)

	_, err = row.Outer(col)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestVector_MulMatrix(t *testing.T) {
	m := MustMatrix(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	v, err := linalg.Vec2r(1, 1).MulMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, linalg.Vec3r(5, 7, 9), v)

	_, err = linalg.Vec2(1, 1).MulMatrix(m)
	require.True(t, errors.Is(err, linalg.ErrShapeMismatch))
}
