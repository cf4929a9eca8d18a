// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/common/util"
)

// hashHex applies f to base16 input and returns the digest in base16.
func hashHex(input string, f func([]byte) []byte) (string, error) {
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	return util.BytesToHex(f(data), true), nil
}

func Sha256(input string) (string, error) {
	return hashHex(input, hash.HashB)
}

func DoubleSha256(input string) (string, error) {
	return hashHex(input, hash.DoubleHashB)
}

func Ripemd160(input string) (string, error) {
	return hashHex(input, hash.Ripemd160B)
}

// Hash160 calculates ripemd160(sha256(data)).
func Hash160(input string) (string, error) {
	return hashHex(input, hash.Hash160)
}
