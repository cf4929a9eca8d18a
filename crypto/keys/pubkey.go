// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/common"
	"github.com/Qitmeer/bitcoinlib/common/util"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc/secp256k1"
	"github.com/Qitmeer/bitcoinlib/params"
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// PublicKey is an affine secp256k1 point with the network and serialization
// format it is used with. The point at infinity is never a public key.
type PublicKey struct {
	point      *ecc.Point
	net        *params.Params
	compressed bool
}

// NewPublicKey returns the public key at (x, y).
func NewPublicKey(x, y *big.Int, net *params.Params, compressed bool) (*PublicKey, error) {
	p, err := secp256k1.NewPoint(x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p, net: netOrMain(net), compressed: compressed}, nil
}

// NewPublicKeyFromPoint wraps a secp256k1 point. The point at infinity has no
// encoding and is rejected with ErrInvalidPublicKeyEncoding.
func NewPublicKeyFromPoint(p *ecc.Point, net *params.Params, compressed bool) (*PublicKey, error) {
	if !secp256k1.IsOnCurve(p) {
		return nil, ecc.Error{Err: ecc.ErrMismatchedCurve,
			Description: fmt.Sprintf("point is on %v, not secp256k1", p.Curve())}
	}
	if p.IsInfinity() {
		return nil, makeError(ErrInvalidPublicKeyEncoding,
			"the point at infinity is not a valid public key")
	}
	return &PublicKey{point: p, net: netOrMain(net), compressed: compressed}, nil
}

// ParsePubKey parses a SEC encoded public key. 33 byte input is compressed
// with prefix 0x02 or 0x03, 65 byte input is uncompressed with prefix 0x04.
// The key keeps the format it was parsed from.
func ParsePubKey(b []byte, net *params.Params) (*PublicKey, error) {
	switch len(b) {
	case PubKeyBytesLenCompressed:
		format := b[0] &^ 0x1
		if format != pubkeyCompressed {
			return nil, makeError(ErrInvalidPublicKeyEncoding,
				fmt.Sprintf("invalid prefix 0x%02x for a compressed public key", b[0]))
		}
		yIsEven := b[0]&0x1 == 0
		p, err := secp256k1.DecompressPoint(new(big.Int).SetBytes(b[1:]), yIsEven)
		if err != nil {
			return nil, err
		}
		return &PublicKey{point: p, net: netOrMain(net), compressed: true}, nil

	case PubKeyBytesLenUncompressed:
		if b[0] != pubkeyUncompressed {
			return nil, makeError(ErrInvalidPublicKeyEncoding,
				fmt.Sprintf("invalid prefix 0x%02x for an uncompressed public key", b[0]))
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:])
		return NewPublicKey(x, y, net, false)
	}
	return nil, makeError(ErrInvalidPublicKeyEncoding,
		fmt.Sprintf("invalid public key length %d", len(b)))
}

// ParsePubKeyHex parses a hex encoded SEC public key.
func ParsePubKeyHex(s string, net *params.Params) (*PublicKey, error) {
	b, err := util.HexToBytes(s)
	if err != nil {
		return nil, err
	}
	return ParsePubKey(b, net)
}

// Point returns the underlying curve point.
func (p *PublicKey) Point() *ecc.Point { return p.point }

func (p *PublicKey) Net() *params.Params { return p.net }

func (p *PublicKey) Compressed() bool { return p.compressed }

func (p *PublicKey) GetX() *big.Int {
	x, _ := p.point.XY()
	return x
}

func (p *PublicKey) GetY() *big.Int {
	_, y := p.point.XY()
	return y
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p *PublicKey) SerializeCompressed() []byte {
	x, y := p.point.XY()
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = pubkeyCompressed | byte(y.Bit(0))
	_ = common.PutBigEndian(x, b[1:])
	return b
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (p *PublicKey) SerializeUncompressed() []byte {
	x, y := p.point.XY()
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	_ = common.PutBigEndian(x, b[1:33])
	_ = common.PutBigEndian(y, b[33:])
	return b
}

// Serialize returns the SEC encoding in the key's own format.
func (p *PublicKey) Serialize() []byte {
	if p.compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// Hex returns Serialize as hex.
func (p *PublicKey) Hex(lowerCase bool) string {
	return util.BytesToHex(p.Serialize(), lowerCase)
}

func (p *PublicKey) String() string {
	return p.Hex(true)
}

// Equal reports whether both keys hold the same point, network and format.
func (p *PublicKey) Equal(o *PublicKey) bool {
	return p.point.Equal(o.point) && p.net.Net == o.net.Net && p.compressed == o.compressed
}

// Verify checks sig against SHA-256(data) reduced modulo N.
func (p *PublicKey) Verify(data []byte, sig *Signature) bool {
	return p.VerifyDigest(HashToInt(data), sig)
}

// VerifyDigest reports whether sig is a valid signature of z under p.
// Signatures with r or s outside [1, N-1] are rejected without further work.
func (p *PublicKey) VerifyDigest(z *big.Int, sig *Signature) bool {
	if sig == nil || !inScalarRange(sig.r) || !inScalarRange(sig.s) {
		return false
	}
	n := secp256k1.N

	// u = z/s, v = r/s
	sInv := new(big.Int).Exp(sig.s, nMinusTwo, n)
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, n)
	v := new(big.Int).Mul(sig.r, sInv)
	v.Mod(v, n)

	uG, err := secp256k1.ScalarBaseMult(u)
	if err != nil {
		return false
	}
	vP, err := secp256k1.ScalarMult(p.point, v)
	if err != nil {
		return false
	}
	total, err := uG.Add(vP)
	if err != nil || total.IsInfinity() {
		return false
	}
	x, _ := total.XY()
	return x.Mod(x, n).Cmp(sig.r) == 0
}
