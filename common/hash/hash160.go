// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"crypto/sha256"
	h "hash"
)

// Calculate the hash of hasher over buf.
func CalcHash(buf []byte, hasher h.Hash) []byte {
	defer hasher.Reset()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// HashB calculates sha256(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// HashH calculates sha256(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// Ripemd160B calculates ripemd160(b) and returns the resulting bytes.
func Ripemd160B(b []byte) []byte {
	return CalcHash(b, GetHasher(Ripemd160))
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return CalcHash(HashB(buf), GetHasher(Ripemd160))
}
