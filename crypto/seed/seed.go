// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed draws the random entropy that private keys are created from.
package seed

import (
	"fmt"
	"io"

	"github.com/Qitmeer/bitcoinlib/common/util"
)

const (
	// DefaultSeedBytes is the default seed length, 256 bits, enough for one
	// secp256k1 scalar candidate.
	DefaultSeedBytes = 32

	// MinSeedBytes is the minimum number of bytes allowed for a seed
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed
	MaxSeedBytes = 256 // 2048 bits
)

var (
	// ErrInvalidSeedLen describes an error in which the provided seed or
	// seed length is not in the allowed range.
	ErrInvalidSeedLen = fmt.Errorf("seed length must be between %d and %d "+
		"bits", MinSeedBytes*8, MaxSeedBytes*8)
)

// GenerateSeed returns length random bytes read from rand, crypto/rand when
// rand is nil.
//
// The length is in bytes and it must be between 16 and 256.
func GenerateSeed(rand io.Reader, length uint) ([]byte, error) {
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}
	return util.ReadSizedRand(rand, length)
}
