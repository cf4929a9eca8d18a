// Copyright 2017-2018 The qitmeer developers

package ecc

import (
	"fmt"
	"math/big"
)

// Point is either an affine point (x, y) on its curve or the point at
// infinity. Points are immutable.
type Point struct {
	curve *Curve
	x, y  *FieldElement
	inf   bool
}

// NewPoint returns the affine point (x, y) on curve. Both coordinates must
// belong to the curve's field and satisfy its equation.
func NewPoint(curve *Curve, x, y *FieldElement) (*Point, error) {
	if err := curve.a.sameField(x, "place"); err != nil {
		return nil, err
	}
	if err := curve.a.sameField(y, "place"); err != nil {
		return nil, err
	}
	if !curve.onCurve(x, y) {
		return nil, makeError(ErrPointNotOnCurve,
			fmt.Sprintf("(%v, %v) is not on the curve %v", x.num, y.num, curve))
	}
	return &Point{curve: curve, x: x, y: y}, nil
}

func (p *Point) Curve() *Curve { return p.curve }

func (p *Point) IsInfinity() bool { return p.inf }

// Affine returns the coordinates of p. ok is false for the point at infinity.
func (p *Point) Affine() (x, y *FieldElement, ok bool) {
	if p.inf {
		return nil, nil, false
	}
	return p.x, p.y, true
}

// XY returns copies of the affine coordinates, nil for the point at infinity.
func (p *Point) XY() (*big.Int, *big.Int) {
	if p.inf {
		return nil, nil
	}
	return p.x.Num(), p.y.Num()
}

// Equal reports whether p and o are the same point on the same curve.
// Infinities of different curves are not equal.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}
	if !p.curve.Equal(o.curve) {
		return false
	}
	if p.inf || o.inf {
		return p.inf == o.inf
	}
	return p.x.Equal(o.x) && p.y.Equal(o.y)
}

func (p *Point) String() string {
	if p.inf {
		return fmt.Sprintf("Point(infinity)_%v_%v FieldElement(%v)", p.curve.A, p.curve.B, p.curve.P)
	}
	return fmt.Sprintf("Point(%v,%v)_%v_%v FieldElement(%v)", p.x.num, p.y.num,
		p.curve.A, p.curve.B, p.curve.P)
}

// Negate returns the point with the same x and the additive inverse of y.
func (p *Point) Negate() *Point {
	if p.inf {
		return p
	}
	return &Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + o. Both points must lie on the same curve.
func (p *Point) Add(o *Point) (*Point, error) {
	if !p.curve.Equal(o.curve) {
		return nil, makeError(ErrMismatchedCurve,
			fmt.Sprintf("cannot add points on %v and %v", p.curve, o.curve))
	}
	return p.add(o), nil
}

// Double returns p + p.
func (p *Point) Double() *Point {
	return p.double()
}

func (p *Point) add(o *Point) *Point {
	if p.inf {
		return o
	}
	if o.inf {
		return p
	}
	if p.x.Equal(o.x) {
		if p.y.Equal(o.y) {
			return p.double()
		}
		// vertical line, o is the negation of p
		return p.curve.Infinity()
	}
	// s = (y2-y1)/(x2-x1)
	s := o.y.sub(p.y).mul(o.x.sub(p.x).inverse())
	return p.fromSlope(s, o.x)
}

func (p *Point) double() *Point {
	if p.inf {
		return p
	}
	// vertical tangent, p has order two
	if p.y.IsZero() {
		return p.curve.Infinity()
	}
	// s = (3x^2+a)/(2y)
	s := p.x.mul(p.x).MulInt(big.NewInt(3)).add(p.curve.a).mul(p.y.MulInt(bigTwo).inverse())
	return p.fromSlope(s, p.x)
}

// fromSlope finishes a chord or tangent addition of p and a point with x
// coordinate x2 using the line slope s.
func (p *Point) fromSlope(s, x2 *FieldElement) *Point {
	// x3 = s^2-x1-x2, y3 = s(x1-x3)-y1
	x3 := s.mul(s).sub(p.x).sub(x2)
	y3 := s.mul(p.x.sub(x3)).sub(p.y)
	return &Point{curve: p.curve, x: x3, y: y3}
}

// Multiply returns k*p using double-and-add. The loop runs over
// max(bitlen(k), bitlen(N)) bits so that every scalar below the group order
// takes the same number of iterations.
func (p *Point) Multiply(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, makeError(ErrUndefinedOperation,
			fmt.Sprintf("negative scalar %v", k))
	}
	bits := k.BitLen()
	if n := p.curve.N; n != nil && n.BitLen() > bits {
		bits = n.BitLen()
	}

	result := p.curve.Infinity()
	addend := p
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			result = result.add(addend)
		}
		addend = addend.double()
	}
	return result, nil
}
