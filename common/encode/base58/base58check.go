// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"errors"

	"github.com/Qitmeer/bitcoinlib/common/hash"
)

// ErrChecksum indicates that the checksum of a check-encoded string does not verify against
// the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid format.
var ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

// ErrInvalidChecksumSize indicates a checksum size that is negative or larger
// than the digest it is cut from.
var ErrInvalidChecksumSize = errors.New("invalid checksum size")

// ErrInputTooLarge is returned for inputs above maxInputSize.
var ErrInputTooLarge = errors.New("value too large")

const (
	// ChecksumSize is the length of the Bitcoin checksum.
	ChecksumSize = 4

	maxInputSize = 64 * 1024 * 1024
)

// btc checksum: first four bytes of double-sha256.
func checksumBtc(input []byte) []byte {
	h := hash.DoubleHashB(input)
	var cksum [ChecksumSize]byte
	copy(cksum[:], h[:])
	return cksum[:]
}

// SingleHashChecksumFunc returns a checksum of the first cksumSize bytes of
// hasher(input). A cksumSize outside [0, hasher.Size()] yields a nil checksum,
// which CheckEncode and CheckDecode report as ErrInvalidChecksumSize.
func SingleHashChecksumFunc(hasher hash.Hasher, cksumSize int) func([]byte) []byte {
	return func(input []byte) []byte {
		h := hash.CalcHash(input, hasher)
		if cksumSize < 0 || cksumSize > len(h) {
			return nil
		}
		var cksum []byte
		cksum = append(cksum, h[:cksumSize]...)
		return cksum
	}
}

// DoubleHashChecksumFunc is SingleHashChecksumFunc over hasher(hasher(input)).
func DoubleHashChecksumFunc(hasher hash.Hasher, cksumSize int) func([]byte) []byte {
	return func(input []byte) []byte {
		first := hash.CalcHash(input, hasher)
		second := hash.CalcHash(first, hasher)
		if cksumSize < 0 || cksumSize > len(second) {
			return nil
		}
		var cksum []byte
		cksum = append(cksum, second[:cksumSize]...)
		return cksum
	}
}

// BtcCheckEncode prepends a single version byte and appends a four byte
// double-sha256 checksum.
func BtcCheckEncode(input []byte, version byte) (string, error) {
	return CheckEncode(input, []byte{version}, ChecksumSize, checksumBtc)
}

// BtcCheckDecode decodes a string that was encoded with a single version byte
// and verifies the checksum.
func BtcCheckDecode(input string) (result []byte, version byte, err error) {
	r, v, err := CheckDecode(input, 1, ChecksumSize, checksumBtc)
	if err != nil {
		return nil, 0, err
	}
	return r, v[0], nil
}

// EncodeCheck appends the Bitcoin checksum to payload and base58 encodes the
// result. Any version or prefix byte is expected to already be part of
// payload.
func EncodeCheck(payload []byte) (string, error) {
	return CheckEncode(payload, nil, ChecksumSize, checksumBtc)
}

// DecodeCheck reverses EncodeCheck, returning the payload without the
// checksum.
func DecodeCheck(input string) ([]byte, error) {
	r, _, err := CheckDecode(input, 0, ChecksumSize, checksumBtc)
	return r, err
}

func checkInputOverflow(size int) error {
	if size > maxInputSize {
		return ErrInputTooLarge
	}
	return nil
}

func CheckEncode(input []byte, version []byte, cksumSize int, cksumfunc func([]byte) []byte) (string, error) {
	if err := checkInputOverflow(len(input)); err != nil {
		return "", err
	}
	if cksumSize < 0 {
		return "", ErrInvalidChecksumSize
	}
	b := make([]byte, 0, len(version)+len(input)+cksumSize)
	b = append(b, version...)
	b = append(b, input...)
	cksum := cksumfunc(b)
	if len(cksum) != cksumSize {
		return "", ErrInvalidChecksumSize
	}
	b = append(b, cksum...)
	return Encode(b), nil
}

func CheckDecode(input string, versionSize, cksumSize int, cksumfunc func([]byte) []byte) (result []byte, version []byte, err error) {
	if err = checkInputOverflow(len(input)); err != nil {
		return nil, nil, err
	}
	if cksumSize < 0 {
		return nil, nil, ErrInvalidChecksumSize
	}
	if versionSize < 0 {
		return nil, nil, ErrInvalidFormat
	}
	decoded, err := Decode(input)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) < cksumSize+versionSize {
		return nil, nil, ErrInvalidFormat
	}
	body := decoded[:len(decoded)-cksumSize]
	cksum := cksumfunc(body)
	if len(cksum) != cksumSize {
		return nil, nil, ErrInvalidChecksumSize
	}
	if !bytes.Equal(cksum, decoded[len(decoded)-cksumSize:]) {
		return nil, nil, ErrChecksum
	}
	version = append(version, decoded[:versionSize]...)
	result = append([]byte{}, body[versionSize:]...)
	return result, version, nil
}
