// Copyright (c) 2017-2018 The qitmeer developers

package keys

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qitmeer/bitcoinlib/common"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc/secp256k1"
	"github.com/Qitmeer/bitcoinlib/params"
)

func hexInt(t testing.TB, s string) *big.Int {
	v, err := common.BigFromHex(s)
	require.NoError(t, err)
	return v
}

func mustPrivKey(t testing.TB, d *big.Int, net *params.Params, compressed bool) *PrivateKey {
	k, err := NewPrivateKey(d, net, compressed)
	require.NoError(t, err)
	return k
}

// nonceReader returns a reader that yields each scalar as a 32 byte
// big-endian candidate, in order.
func nonceReader(t testing.TB, ks ...*big.Int) io.Reader {
	var buf bytes.Buffer
	for _, k := range ks {
		b := make([]byte, 32)
		require.NoError(t, common.PutBigEndian(k, b))
		buf.Write(b)
	}
	return &buf
}

func TestPrivateKeyRange(t *testing.T) {
	tests := []struct {
		name  string
		d     *big.Int
		valid bool
	}{
		{"zero", big.NewInt(0), false},
		{"negative", big.NewInt(-5), false},
		{"one", big.NewInt(1), true},
		{"N-1", new(big.Int).Sub(secp256k1.N, big.NewInt(1)), true},
		{"N", secp256k1.N, false},
		{"N+1", new(big.Int).Add(secp256k1.N, big.NewInt(1)), false},
	}
	for _, test := range tests {
		_, err := NewPrivateKey(test.d, &params.MainNetParams, true)
		if test.valid {
			assert.NoError(t, err, test.name)
		} else {
			assert.True(t, errors.Is(err, ErrInvalidPrivateKeyRange), test.name)
		}
	}
}

func TestPrivateKeyAccessors(t *testing.T) {
	d := big.NewInt(7)
	k := mustPrivKey(t, d, nil, false)
	d.SetInt64(8)

	assert.Equal(t, int64(7), k.D().Int64())
	assert.Equal(t, int64(7), k.GetD().Int64())
	assert.Equal(t, params.MainNet, k.Net().Net)
	assert.False(t, k.Compressed())
	assert.Len(t, k.Serialize(), PrivKeyBytesLen)
	assert.Equal(t, byte(7), k.Serialize()[31])

	x, y := k.Public()
	assert.Equal(t, "5cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc", x.Text(16))
	assert.Equal(t, "6aebca40ba255960a3178d6d861a54dba813d0b813fde7b5a5082628087264da", y.Text(16))
	assert.False(t, k.PubKey().Compressed())
}

func TestGeneratePrivateKey(t *testing.T) {
	// the first two candidates are out of range and get discarded
	r := nonceReader(t, big.NewInt(0), secp256k1.N, big.NewInt(1485))
	k, err := GeneratePrivateKey(r, &params.TestNetParams, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1485), k.D().Int64())
	assert.Equal(t, params.TestNet, k.Net().Net)

	_, err = GeneratePrivateKey(bytes.NewReader([]byte{1, 2, 3}), nil, true)
	assert.Error(t, err)

	k1, err := GeneratePrivateKey(nil, nil, true)
	require.NoError(t, err)
	k2, err := GeneratePrivateKey(nil, nil, true)
	require.NoError(t, err)
	assert.False(t, k1.Equal(k2))
}

func TestSignWithRand(t *testing.T) {
	k := mustPrivKey(t, big.NewInt(12345), nil, true)
	nonce := hexInt(t, "1234567890abcdef")
	data := []byte("Programming Bitcoin!")

	z := HashToInt(data)
	assert.Equal(t, "88f8cba5f9f85d648f82e794c11bdce98e6c54345b93e2840ca2f457116be9da", z.Text(16))

	sig, err := k.SignWithRand(nonceReader(t, big.NewInt(0), nonce), z)
	require.NoError(t, err)
	assert.Equal(t, "f973a0b87062c389d125d8199e803b832b6ac6bf7867a4f6cd87506060fc4c58", sig.GetR().Text(16))
	assert.Equal(t, "2e72b86352d885d19e2bc079a2ead5463e8e793688cc094b87cb2ddd5f8d892e", sig.GetS().Text(16))
	assert.True(t, k.PubKey().Verify(data, sig))

	// an exhausted source fails instead of looping
	_, err = k.SignWithRand(bytes.NewReader(nil), z)
	assert.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	secrets := []*big.Int{
		big.NewInt(1),
		big.NewInt(12345),
		common.BigPow(2, 128),
		new(big.Int).Sub(secp256k1.N, big.NewInt(1)),
	}
	for _, d := range secrets {
		k := mustPrivKey(t, d, nil, true)
		z := HashToInt(d.Bytes())

		sig, err := k.SignDigest(z)
		require.NoError(t, err)
		assert.True(t, k.PubKey().VerifyDigest(z, sig), "d=%x", d)

		// a different digest or key must not verify
		assert.False(t, k.PubKey().VerifyDigest(new(big.Int).Add(z, big.NewInt(1)), sig))
		od := new(big.Int).Add(d, big.NewInt(2))
		other := mustPrivKey(t, od.Mod(od, secp256k1.N), nil, true)
		assert.False(t, other.PubKey().VerifyDigest(z, sig))
	}

	k := mustPrivKey(t, big.NewInt(999), nil, false)
	sig, err := k.Sign([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, k.PubKey().Verify([]byte("hello"), sig))
	assert.False(t, k.PubKey().Verify([]byte("hellO"), sig))
}

func TestHashToInt(t *testing.T) {
	want, _ := hex.DecodeString("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")
	assert.Equal(t, new(big.Int).SetBytes(want), HashToInt([]byte("hello")))
	assert.True(t, HashToInt([]byte("anything")).Cmp(secp256k1.N) < 0)
}
