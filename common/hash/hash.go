// Copyright 2017-2018 The qitmeer developers

package hash

import (
	"crypto"
	"encoding/hex"
	"fmt"
	"hash"

	_ "crypto/sha256"
	_ "golang.org/x/crypto/ripemd160"
)

const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a hash
// string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a SHA-256 digest in the byte order it was produced.
type Hash [HashSize]byte

type Hasher interface {
	hash.Hash
}

type HashType byte

const (
	SHA256 HashType = iota
	Ripemd160
)

func (ht HashType) String() string {
	switch ht {
	case SHA256:
		return "sha256"
	case Ripemd160:
		return "ripemd160"
	}
	return fmt.Sprintf("HashType(%d)", byte(ht))
}

func GetHasher(ht HashType) Hasher {
	switch ht {
	case SHA256:
		return crypto.SHA256.New()
	case Ripemd160:
		return crypto.RIPEMD160.New()
	}
	return nil
}

// String returns the Hash as a hexadecimal string.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte { return h[:] }

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
func (h *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen,
			HashSize)
	}
	copy(h[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHashFromStr creates a Hash from a hex string. Strings shorter than
// MaxHashStringSize are zero padded on the left.
func NewHashFromStr(s string) (*Hash, error) {
	if len(s) > MaxHashStringSize {
		return nil, ErrHashStrSize
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	var h Hash
	if _, err := hex.Decode(h[HashSize-len(s)/2:], []byte(s)); err != nil {
		return nil, err
	}
	return &h, nil
}
