// Copyright (c) 2017-2018 The qitmeer developers

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
)

// NewPoint returns the affine point (x, y) on secp256k1.
func NewPoint(x, y *big.Int) (*ecc.Point, error) {
	return Params.NewPoint(x, y)
}

// IsOnCurve reports whether p lies on secp256k1.
func IsOnCurve(p *ecc.Point) bool {
	return p.Curve().Equal(Params)
}

// ScalarMult returns k*p for a point on secp256k1. The double-and-add loop
// always covers the bit length of N.
func ScalarMult(p *ecc.Point, k *big.Int) (*ecc.Point, error) {
	if !IsOnCurve(p) {
		return nil, ecc.Error{Err: ecc.ErrMismatchedCurve,
			Description: fmt.Sprintf("point is on %v, not secp256k1", p.Curve())}
	}
	return p.Multiply(k)
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) (*ecc.Point, error) {
	return G.Multiply(k)
}

// GetYCoordinate returns the y coordinate belonging to x with the requested
// parity. It fails with ecc.ErrPointNotOnCurve when x^3+7 has no square root.
func GetYCoordinate(x *big.Int, yIsEven bool) (*big.Int, error) {
	fx, err := NewFieldElement(x)
	if err != nil {
		return nil, err
	}
	alpha, err := Params.Rhs(fx)
	if err != nil {
		return nil, err
	}
	beta, err := Sqrt(alpha)
	if err != nil {
		return nil, err
	}
	check, err := beta.Mul(beta)
	if err != nil {
		return nil, err
	}
	if !check.Equal(alpha) {
		return nil, ecc.Error{Err: ecc.ErrPointNotOnCurve,
			Description: fmt.Sprintf("x = %x is not the x coordinate of a point on secp256k1", x)}
	}
	if beta.IsEven() != yIsEven {
		beta = beta.Neg()
	}
	return beta.Num(), nil
}

// DecompressPoint rebuilds the point with x coordinate x and y of the given
// parity.
func DecompressPoint(x *big.Int, yIsEven bool) (*ecc.Point, error) {
	y, err := GetYCoordinate(x, yIsEven)
	if err != nil {
		return nil, err
	}
	return NewPoint(x, y)
}

// IsLowS reports whether s is at most half the group order.
func IsLowS(s *big.Int) bool {
	return s.Cmp(halfOrder) <= 0
}
