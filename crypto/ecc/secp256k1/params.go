// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
)

// fromHex converts the passed hex string into a big integer pointer and will
// panic is there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected. It will only (and
// must only) be called for initialization purposes.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

var (
	// P is the prime of the underlying field, 2^256 - 2^32 - 977.
	P = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// N is the order of the group generated by G.
	N = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	// Params is the curve y^2 = x^3 + 7 over GF(P).
	Params = mustCurve()

	// G is the generator of the group.
	G = mustPoint(
		fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"))

	// Infinity is the identity of the group.
	Infinity = Params.Infinity()

	// BitSize is the bit length of the group order.
	BitSize = N.BitLen()

	// sqrtExp is (P+1)/4, valid because P = 3 mod 4.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

	halfOrder = new(big.Int).Rsh(N, 1)
)

func mustCurve() *ecc.Curve {
	c, err := ecc.NewCurve("secp256k1", P, N, big.NewInt(0), big.NewInt(7))
	if err != nil {
		panic(err)
	}
	return c
}

func mustPoint(x, y *big.Int) *ecc.Point {
	p, err := Params.NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}
