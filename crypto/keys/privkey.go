// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"io"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/common"
	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/common/util"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc/secp256k1"
	l "github.com/Qitmeer/bitcoinlib/log"
	"github.com/Qitmeer/bitcoinlib/params"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

var (
	bigOne    = big.NewInt(1)
	nMinusTwo = new(big.Int).Sub(secp256k1.N, big.NewInt(2))
)

// PrivateKey is a secp256k1 scalar in [1, N-1] together with the network and
// public key format it is exported for.
type PrivateKey struct {
	d          *big.Int
	net        *params.Params
	compressed bool
	pub        *PublicKey
}

// NewPrivateKey returns the private key d. It fails with
// ErrInvalidPrivateKeyRange unless 1 <= d < N.
func NewPrivateKey(d *big.Int, net *params.Params, compressed bool) (*PrivateKey, error) {
	if !inScalarRange(d) {
		return nil, makeError(ErrInvalidPrivateKeyRange,
			"private key is not in the range [1, N-1]")
	}
	net = netOrMain(net)
	d = new(big.Int).Set(d)
	point, err := secp256k1.ScalarBaseMult(d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		d:          d,
		net:        net,
		compressed: compressed,
		pub:        &PublicKey{point: point, net: net, compressed: compressed},
	}, nil
}

// GeneratePrivateKey draws a new private key from rand, crypto/rand when rand
// is nil.
func GeneratePrivateKey(rand io.Reader, net *params.Params, compressed bool) (*PrivateKey, error) {
	net = netOrMain(net)
	d, err := randScalar(rand)
	if err != nil {
		return nil, err
	}
	log.Debug("Generated private key", "net", net.Name, "compressed", compressed)
	return NewPrivateKey(d, net, compressed)
}

// randScalar reads 32 byte candidates until one lies in [1, N-1].
func randScalar(rand io.Reader) (*big.Int, error) {
	for {
		b, err := util.ReadSizedRand(rand, PrivKeyBytesLen)
		if err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(b)
		if inScalarRange(k) {
			return k, nil
		}
		log.Trace("Scalar out of range, drawing again")
	}
}

// netOrMain defaults a nil network to mainnet.
func netOrMain(net *params.Params) *params.Params {
	if net == nil {
		return &params.MainNetParams
	}
	return net
}

func inScalarRange(k *big.Int) bool {
	return k != nil && k.Cmp(bigOne) >= 0 && k.Cmp(secp256k1.N) < 0
}

// HashToInt returns SHA-256(data) as an integer reduced modulo N.
func HashToInt(data []byte) *big.Int {
	z := new(big.Int).SetBytes(hash.HashB(data))
	return z.Mod(z, secp256k1.N)
}

// D returns a copy of the private scalar.
func (k *PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// GetD returns a copy of the private scalar.
func (k *PrivateKey) GetD() *big.Int { return k.D() }

func (k *PrivateKey) Net() *params.Params { return k.net }

func (k *PrivateKey) Compressed() bool { return k.compressed }

// PubKey returns the public key d*G, with the network and format of k.
func (k *PrivateKey) PubKey() *PublicKey { return k.pub }

// Public returns the coordinates of the public key.
func (k *PrivateKey) Public() (*big.Int, *big.Int) {
	return k.pub.GetX(), k.pub.GetY()
}

// Serialize returns the private key as a 32 byte big-endian number.
func (k *PrivateKey) Serialize() []byte {
	b, _ := common.PaddedBigBytes(k.d, PrivKeyBytesLen)
	return b
}

// Equal reports whether both keys hold the same scalar, network and format.
func (k *PrivateKey) Equal(o *PrivateKey) bool {
	return k.d.Cmp(o.d) == 0 && k.net.Net == o.net.Net && k.compressed == o.compressed
}

// Sign signs SHA-256(data) reduced modulo N.
func (k *PrivateKey) Sign(data []byte) (*Signature, error) {
	return k.SignDigest(HashToInt(data))
}

// SignDigest signs z with a nonce drawn from crypto/rand.
func (k *PrivateKey) SignDigest(z *big.Int) (*Signature, error) {
	return k.SignWithRand(nil, z)
}

// SignWithRand signs z with a nonce drawn from rand. The nonce is redrawn
// until it lies in [1, N-1] and until neither r nor s is zero.
//
// Nonces are random, not derived per RFC 6979, so a weak rand leaks the key.
func (k *PrivateKey) SignWithRand(rand io.Reader, z *big.Int) (*Signature, error) {
	n := secp256k1.N
	for {
		nonce, err := randScalar(rand)
		if err != nil {
			return nil, fmt.Errorf("failed to draw nonce: %w", err)
		}

		// r = (k*G).x mod N
		R, err := secp256k1.ScalarBaseMult(nonce)
		if err != nil {
			return nil, err
		}
		rx, _ := R.XY()
		r := rx.Mod(rx, n)
		if r.Sign() == 0 {
			log.Trace("Signature r is zero, drawing a new nonce")
			continue
		}

		// s = (z + r*d) / k, 1/k = k^(N-2) mod N
		kInv := new(big.Int).Exp(nonce, nMinusTwo, n)
		s := new(big.Int).Mul(r, k.d)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			log.Trace("Signature s is zero, drawing a new nonce")
			continue
		}
		log.Trace("Signed digest", "z", l.LogClosure(func() string {
			return fmt.Sprintf("%064x", z)
		}))
		return &Signature{r: r, s: s}, nil
	}
}
