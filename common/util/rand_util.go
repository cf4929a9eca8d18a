// Copyright 2017-2018 The qitmeer developers

package util

import (
	cryptorand "crypto/rand"
	"io"
)

// ReadSizedRand read size bytes from input rand
// if input rand is nil, use crypto/rand
func ReadSizedRand(rand io.Reader, size uint) ([]byte, error) {
	readBuff := make([]byte, size)
	if rand == nil {
		rand = cryptorand.Reader
	}
	if _, err := io.ReadFull(rand, readBuff); err != nil {
		return nil, err
	}
	return readBuff, nil
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)

	return
}

// ReverseBytes reverses b in place.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
