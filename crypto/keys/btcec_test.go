// Copyright (c) 2017-2018 The qitmeer developers

package keys

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/params"
)

func TestBtcecKeys(t *testing.T) {
	for _, d := range []int64{1, 7, 1485, 1234567890} {
		k := mustPrivKey(t, big.NewInt(d), nil, true)
		priv := k.ToBtcec()
		assert.Equal(t, k.Serialize(), priv.Serialize())
		assert.Equal(t, k.PubKey().SerializeCompressed(), priv.PubKey().SerializeCompressed())
		assert.Equal(t, k.PubKey().SerializeUncompressed(), priv.PubKey().SerializeUncompressed())

		back, err := PrivKeyFromBtcec(priv, nil, true)
		require.NoError(t, err)
		assert.True(t, back.Equal(k))

		pub, err := k.PubKey().ToBtcec()
		require.NoError(t, err)
		assert.True(t, pub.IsEqual(priv.PubKey()))

		pubBack, err := PubKeyFromBtcec(pub, &params.MainNetParams, true)
		require.NoError(t, err)
		assert.True(t, pubBack.Equal(k.PubKey()))
	}
}

func TestBtcecSignatures(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	k, err := PrivKeyFromBtcec(priv, nil, true)
	require.NoError(t, err)

	digest := hash.HashB([]byte("Programming Bitcoin!"))
	z := new(big.Int).SetBytes(digest)

	// btcec signs, we verify
	theirs := btcecdsa.Sign(priv, digest)
	sig, err := SignatureFromBtcec(theirs)
	require.NoError(t, err)
	assert.True(t, k.PubKey().VerifyDigest(z, sig))
	assert.True(t, sig.IsLowS())

	// we sign, btcec verifies
	ours, err := k.SignDigest(z)
	require.NoError(t, err)
	converted, err := ours.ToBtcec()
	require.NoError(t, err)
	assert.True(t, converted.Verify(digest, priv.PubKey()))

	// btcec always serializes the low-S form
	if ours.IsLowS() {
		assert.Equal(t, ours.Serialize(), converted.Serialize())
	}
}
