// Copyright 2017-2018 The qitmeer developers

package ecc

import (
	"fmt"
	"math/big"
)

// Curve holds the parameters of a short Weierstrass curve
// y^2 = x^3 + A*x + B over GF(P). N is the order of the group generated by
// the curve's base point and may be nil for curves without a known one.
type Curve struct {
	Name string
	P    *big.Int
	N    *big.Int
	A    *big.Int
	B    *big.Int

	a, b *FieldElement
}

// NewCurve validates the curve parameters. a and b must be elements of GF(p).
func NewCurve(name string, p, n, a, b *big.Int) (*Curve, error) {
	fa, err := NewFieldElement(a, p)
	if err != nil {
		return nil, err
	}
	fb, err := NewFieldElement(b, p)
	if err != nil {
		return nil, err
	}
	if n != nil && n.Sign() <= 0 {
		return nil, makeError(ErrInvalidFieldValue,
			fmt.Sprintf("group order %v is not positive", n))
	}
	c := &Curve{
		Name: name,
		P:    fa.prime,
		A:    fa.num,
		B:    fb.num,
		a:    fa,
		b:    fb,
	}
	if n != nil {
		c.N = new(big.Int).Set(n)
	}
	return c, nil
}

// Equal reports whether both curves share the same field and coefficients.
// The name and order take no part in the comparison.
func (c *Curve) Equal(o *Curve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.P.Cmp(o.P) == 0 && c.A.Cmp(o.A) == 0 && c.B.Cmp(o.B) == 0
}

func (c *Curve) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v mod %v", c.A, c.B, c.P)
}

// Infinity returns the identity element of the curve's point group.
func (c *Curve) Infinity() *Point {
	return &Point{curve: c, inf: true}
}

// NewPoint builds the affine point (x, y) from plain integers, each of which
// must be a valid element of GF(P).
func (c *Curve) NewPoint(x, y *big.Int) (*Point, error) {
	fx, err := NewFieldElement(x, c.P)
	if err != nil {
		return nil, err
	}
	fy, err := NewFieldElement(y, c.P)
	if err != nil {
		return nil, err
	}
	return NewPoint(c, fx, fy)
}

// IsOnCurve reports whether y^2 = x^3 + A*x + B holds for x and y.
func (c *Curve) IsOnCurve(x, y *FieldElement) bool {
	return c.onCurve(x, y)
}

func (c *Curve) onCurve(x, y *FieldElement) bool {
	return y.mul(y).Equal(c.rhs(x))
}

// rhs evaluates x^3 + A*x + B.
func (c *Curve) rhs(x *FieldElement) *FieldElement {
	return x.mul(x).mul(x).add(c.a.mul(x)).add(c.b)
}

// Rhs evaluates x^3 + A*x + B, the square of the y coordinate belonging to x.
func (c *Curve) Rhs(x *FieldElement) (*FieldElement, error) {
	if err := c.a.sameField(x, "evaluate"); err != nil {
		return nil, err
	}
	return c.rhs(x), nil
}
