// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/common/util"
	"github.com/Qitmeer/bitcoinlib/crypto/keys"
	"github.com/Qitmeer/bitcoinlib/crypto/seed"
	"github.com/Qitmeer/bitcoinlib/params"
)

// NewEntropy returns size random bytes in base16.
func NewEntropy(size uint) (string, error) {
	s, err := seed.GenerateSeed(nil, size)
	if err != nil {
		return "", err
	}
	return util.BytesToHex(s, true), nil
}

// EcNew creates an EC private key. With entropy the key is the first 32 byte
// window of it that is a valid scalar, otherwise it is drawn from
// crypto/rand.
func EcNew(entropyStr string) (string, error) {
	var rand io.Reader
	if entropyStr != "" {
		entropy, err := decodeHex("entropy", entropyStr)
		if err != nil {
			return "", err
		}
		if len(entropy) < keys.PrivKeyBytesLen {
			return "", fmt.Errorf("entropy is %d bytes, need at least %d", len(entropy), keys.PrivKeyBytesLen)
		}
		rand = bytes.NewReader(entropy)
	}
	k, err := keys.GeneratePrivateKey(rand, nil, true)
	if err != nil {
		return "", err
	}
	return encodeKey(k), nil
}

// parsePrivateKey reads a base16 private key of at most 32 bytes.
func parsePrivateKey(net *params.Params, compressed bool, privateKeyStr string) (*keys.PrivateKey, error) {
	data, err := decodeHex("private key", privateKeyStr)
	if err != nil {
		return nil, err
	}
	if len(data) > keys.PrivKeyBytesLen {
		return nil, fmt.Errorf("private key is %d bytes, want %d", len(data), keys.PrivKeyBytesLen)
	}
	return keys.NewPrivateKey(new(big.Int).SetBytes(data), net, compressed)
}

// EcPrivateKeyToEcPublicKey derives the SEC public key, compressed unless
// uncompressed is set.
func EcPrivateKeyToEcPublicKey(uncompressed bool, privateKeyStr string) (string, error) {
	k, err := parsePrivateKey(nil, !uncompressed, privateKeyStr)
	if err != nil {
		return "", err
	}
	return encodeKey(k.PubKey()), nil
}

// EcPrivateKeyToWif exports the private key in wallet import format.
func EcPrivateKeyToWif(net *params.Params, uncompressed bool, privateKeyStr string) (string, error) {
	k, err := parsePrivateKey(net, !uncompressed, privateKeyStr)
	if err != nil {
		return "", err
	}
	return k.WIF(), nil
}

// WifToEcPrivateKey returns the private key of a WIF in base16.
func WifToEcPrivateKey(wif string) (string, error) {
	k, err := keys.PrivKeyFromWIF(wif)
	if err != nil {
		return "", err
	}
	return encodeKey(k), nil
}

// WifToEcPublicKey derives the public key of a WIF in the format the WIF
// selects.
func WifToEcPublicKey(wif string) (string, error) {
	k, err := keys.PrivKeyFromWIF(wif)
	if err != nil {
		return "", err
	}
	return encodeKey(k.PubKey()), nil
}
