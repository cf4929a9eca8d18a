// Copyright 2017-2018 The qitmeer developers

package ecc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curve223(t testing.TB) *Curve {
	c, err := NewCurve("", big.NewInt(223), nil, big.NewInt(0), big.NewInt(7))
	require.NoError(t, err)
	return c
}

func pt(t testing.TB, c *Curve, x, y int64) *Point {
	p, err := c.NewPoint(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err, "(%d, %d)", x, y)
	return p
}

func TestOnCurve(t *testing.T) {
	c := curve223(t)
	valid := [][2]int64{{192, 105}, {17, 56}, {1, 193}}
	invalid := [][2]int64{{200, 119}, {42, 99}}

	for _, v := range valid {
		_, err := c.NewPoint(big.NewInt(v[0]), big.NewInt(v[1]))
		assert.NoError(t, err, "%v", v)
	}
	for _, v := range invalid {
		_, err := c.NewPoint(big.NewInt(v[0]), big.NewInt(v[1]))
		assert.True(t, errors.Is(err, ErrPointNotOnCurve), "%v", v)
	}

	_, err := c.NewPoint(big.NewInt(224), big.NewInt(1))
	assert.True(t, errors.Is(err, ErrInvalidFieldValue))

	x, _ := NewFieldElement(big.NewInt(192), big.NewInt(227))
	y, _ := NewFieldElement(big.NewInt(105), big.NewInt(223))
	_, err = NewPoint(c, x, y)
	assert.True(t, errors.Is(err, ErrMismatchedField))
}

func TestPointAdd(t *testing.T) {
	c := curve223(t)
	tests := []struct {
		x1, y1, x2, y2, x3, y3 int64
	}{
		{192, 105, 17, 56, 170, 142},
		{47, 71, 117, 141, 60, 139},
		{143, 98, 76, 66, 47, 71},
	}
	for _, test := range tests {
		p1 := pt(t, c, test.x1, test.y1)
		p2 := pt(t, c, test.x2, test.y2)
		want := pt(t, c, test.x3, test.y3)

		got, err := p1.Add(p2)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "%v + %v = %v", p1, p2, got)

		// commutative
		got, err = p2.Add(p1)
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}
}

func TestPointIdentity(t *testing.T) {
	c := curve223(t)
	p := pt(t, c, 192, 105)
	inf := c.Infinity()

	got, err := inf.Add(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = p.Add(inf)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = p.Add(p.Negate())
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())

	got, err = inf.Add(inf)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())
	assert.True(t, inf.Negate().IsInfinity())

	_, _, ok := inf.Affine()
	assert.False(t, ok)
	x, y := inf.XY()
	assert.Nil(t, x)
	assert.Nil(t, y)
}

func TestPointMultiply(t *testing.T) {
	c := curve223(t)
	tests := []struct {
		k      int64
		x1, y1 int64
		x2, y2 int64
		inf    bool
	}{
		{2, 192, 105, 49, 71, false},
		{2, 143, 98, 64, 168, false},
		{2, 47, 71, 36, 111, false},
		{4, 47, 71, 194, 51, false},
		{8, 47, 71, 116, 55, false},
		{21, 47, 71, 0, 0, true},
		{0, 47, 71, 0, 0, true},
		{1, 47, 71, 47, 71, false},
	}
	for _, test := range tests {
		p := pt(t, c, test.x1, test.y1)
		got, err := p.Multiply(big.NewInt(test.k))
		require.NoError(t, err)
		if test.inf {
			assert.True(t, got.IsInfinity(), "%d*%v = %v", test.k, p, got)
			continue
		}
		assert.True(t, got.Equal(pt(t, c, test.x2, test.y2)), "%d*%v = %v", test.k, p, got)
	}

	_, err := pt(t, c, 47, 71).Multiply(big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrUndefinedOperation))
}

func TestMultiplyMatchesRepeatedAdd(t *testing.T) {
	c := curve223(t)
	p := pt(t, c, 47, 71)
	sum := c.Infinity()
	for k := int64(0); k < 30; k++ {
		got, err := p.Multiply(big.NewInt(k))
		require.NoError(t, err)
		if !assert.True(t, got.Equal(sum), "k=%d", k) {
			t.Log(spew.Sdump(got, sum))
		}
		sum, err = sum.Add(p)
		require.NoError(t, err)
	}
}

func TestMultiplyOrderBound(t *testing.T) {
	// 21*(47,71) is the identity, so a curve that declares the order still
	// agrees with the unbounded loop.
	c, err := NewCurve("sub21", big.NewInt(223), big.NewInt(21), big.NewInt(0), big.NewInt(7))
	require.NoError(t, err)
	p := pt(t, c, 47, 71)
	for k := int64(0); k <= 21; k++ {
		bounded, err := p.Multiply(big.NewInt(k))
		require.NoError(t, err)
		unbounded, err := pt(t, curve223(t), 47, 71).Multiply(big.NewInt(k))
		require.NoError(t, err)
		assert.True(t, bounded.Equal(unbounded), "k=%d: %v != %v", k, bounded, unbounded)
	}
}

func TestDoubleVerticalTangent(t *testing.T) {
	// y^2 = x^3 - x over GF(7) has the points of order two (0,0), (1,0), (6,0)
	c, err := NewCurve("", big.NewInt(7), nil, big.NewInt(6), big.NewInt(0))
	require.NoError(t, err)
	for _, x := range []int64{0, 1, 6} {
		p := pt(t, c, x, 0)
		assert.True(t, p.Double().IsInfinity(), "x=%d", x)
		got, err := p.Add(p)
		require.NoError(t, err)
		assert.True(t, got.IsInfinity(), "x=%d", x)
	}
}

func TestPointMismatchedCurve(t *testing.T) {
	c := curve223(t)
	other, err := NewCurve("", big.NewInt(223), nil, big.NewInt(0), big.NewInt(5))
	require.NoError(t, err)

	_, err = pt(t, c, 192, 105).Add(other.Infinity())
	assert.True(t, errors.Is(err, ErrMismatchedCurve))

	assert.False(t, c.Infinity().Equal(other.Infinity()))
	assert.True(t, c.Infinity().Equal(curve223(t).Infinity()))
	assert.False(t, pt(t, c, 192, 105).Equal(c.Infinity()))
}

func TestPointString(t *testing.T) {
	c := curve223(t)
	assert.Equal(t, "Point(192,105)_0_7 FieldElement(223)", pt(t, c, 192, 105).String())
	assert.Equal(t, "Point(infinity)_0_7 FieldElement(223)", c.Infinity().String())
}
