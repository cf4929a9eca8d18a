// Copyright (c) 2017-2018 The nox developers

package ecc

import (
	"math/big"
)

// Key is any key or signature with a canonical byte encoding: SEC for public
// keys, the 32 byte scalar for private keys and DER for signatures.
type Key interface {
	Serialize() []byte
}

// Signature is an ECDSA (r, s) pair. Both accessors return copies.
type Signature interface {
	Key

	GetR() *big.Int
	GetS() *big.Int
}
