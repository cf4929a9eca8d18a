// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type _Golden struct {
	in     string
	sha256 string
	rmd160 string
}

var goldenTest = []_Golden{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"9c1185a5c5e9fc54612808977ee8f548b2258d31"},
	{"a", "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb",
		"0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	{"message digest", "f7846f55cf23e14eebeab5b4e1550cad5b509e3348fbc4efa3a1413d393cb650",
		"5d0689ef49d2fae572b881b123a85ffa21595f36"},
}

func TestGolden(t *testing.T) {
	for _, g := range goldenTest {
		assert.Equal(t, g.sha256, hex.EncodeToString(HashB([]byte(g.in))), g.in)
		assert.Equal(t, g.sha256, HashH([]byte(g.in)).String(), g.in)
		assert.Equal(t, g.rmd160, hex.EncodeToString(Ripemd160B([]byte(g.in))), g.in)
		assert.Equal(t, g.sha256, hex.EncodeToString(CalcHash([]byte(g.in), GetHasher(SHA256))), g.in)
	}
}

func TestDoubleHash(t *testing.T) {
	// sha256(sha256("hello"))
	want := "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50"
	assert.Equal(t, want, hex.EncodeToString(DoubleHashB([]byte("hello"))))
	assert.Equal(t, want, DoubleHashH([]byte("hello")).String())
}

func TestHash160(t *testing.T) {
	// uncompressed public key of the well known private key
	// 18E14A7B6A307F426A94F8114701E7C8E774E7F9A47E2C2035DB29A206321725
	pub, err := hex.DecodeString("0450863AD64A87AE8A2FE83C1AF1A8403CB53F53E486D8511DAD8A04887E5B2352" +
		"2CD470243453A299FA9E77237716103ABC11A1DF38855ED6F2EE187E9C582BA6")
	require.NoError(t, err)
	assert.Equal(t, "010966776006953d5567439e5e39f86a0d273bee", hex.EncodeToString(Hash160(pub)))
}

func TestHasherReuse(t *testing.T) {
	hasher := GetHasher(SHA256)
	first := CalcHash([]byte("abc"), hasher)
	second := CalcHash([]byte("abc"), hasher)
	assert.Equal(t, first, second)
	assert.Nil(t, GetHasher(HashType(0xff)))
	assert.Equal(t, "ripemd160", Ripemd160.String())
}

func TestNewHashFromStr(t *testing.T) {
	h, err := NewHashFromStr("abc")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0a), h[30])
	assert.Equal(t, byte(0xbc), h[31])

	_, err = NewHashFromStr(hex.EncodeToString(make([]byte, 33)))
	assert.Equal(t, ErrHashStrSize, err)

	var other Hash
	require.NoError(t, other.SetBytes(h.CloneBytes()))
	assert.True(t, h.IsEqual(&other))
	assert.Error(t, other.SetBytes([]byte{1}))
}
