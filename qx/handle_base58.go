// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/Qitmeer/bitcoinlib/common/encode/base58"
	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/common/util"
)

// checksumFunc maps a hasher name to a Base58Check checksum function. The
// checksum size must lie in [1, digest size].
func checksumFunc(hasher string, cksumSize int) (func([]byte) []byte, error) {
	var (
		h      hash.Hasher
		double bool
	)
	switch hasher {
	case "sha256":
		h = hash.GetHasher(hash.SHA256)
	case "dsha256":
		h, double = hash.GetHasher(hash.SHA256), true
	case "ripemd160":
		h = hash.GetHasher(hash.Ripemd160)
	default:
		return nil, fmt.Errorf("unknown hasher %s", hasher)
	}
	if cksumSize < 1 || cksumSize > h.Size() {
		return nil, errors.Wrapf(base58.ErrInvalidChecksumSize,
			"%s checksum size %d not in [1, %d]", hasher, cksumSize, h.Size())
	}
	if double {
		return base58.DoubleHashChecksumFunc(h, cksumSize), nil
	}
	return base58.SingleHashChecksumFunc(h, cksumSize), nil
}

// Base58CheckEncode encodes base16 input with a version prefix. Without a
// hasher it is the Bitcoin form: one version byte and the first four bytes
// of the double SHA-256 as checksum.
func Base58CheckEncode(version []byte, hasher string, cksumSize int, input string) (string, error) {
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	if hasher == "" {
		if len(version) != 1 {
			return "", fmt.Errorf("invalid version size for btc base58check encode: %x (len = %d, required 1)",
				version, len(version))
		}
		return base58.BtcCheckEncode(data, version[0])
	}
	cksumfunc, err := checksumFunc(hasher, cksumSize)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(data, version, cksumSize, cksumfunc)
}

// Base58CheckDecode decodes a Base58Check string to its base16 payload, or to
// a description of version, payload and checksum when showDetails is set.
func Base58CheckDecode(hasher string, versionSize, cksumSize int, input string, showDetails bool) (string, error) {
	var (
		data    []byte
		version []byte
		err     error
	)
	if hasher == "" {
		var v byte
		data, v, err = base58.BtcCheckDecode(input)
		version = []byte{v}
		cksumSize = base58.ChecksumSize
	} else {
		var cksumfunc func([]byte) []byte
		cksumfunc, err = checksumFunc(hasher, cksumSize)
		if err != nil {
			return "", err
		}
		data, version, err = base58.CheckDecode(input, versionSize, cksumSize, cksumfunc)
	}
	if err != nil {
		return "", err
	}
	if !showDetails {
		return util.BytesToHex(data, true), nil
	}

	decoded, err := base58.Decode(input)
	if err != nil {
		return "", err
	}
	cksum := decoded[len(decoded)-cksumSize:]

	var b strings.Builder
	if hasher != "" {
		fmt.Fprintf(&b, "hasher  : %s\n", hasher)
	} else {
		fmt.Fprintf(&b, "mode    : btc\n")
	}
	be, le, err := endianValues(version)
	if err != nil {
		return "", errors.Wrapf(err, "convert version %x error", version)
	}
	fmt.Fprintf(&b, "version : %x (hex) %v (BE) %v (LE)\n", version, be, le)
	fmt.Fprintf(&b, "payload : %x\n", data)
	be, le, err = endianValues(cksum)
	if err != nil {
		return "", errors.Wrapf(err, "convert checksum %x error", cksum)
	}
	fmt.Fprintf(&b, "checksum: %x (hex) %v (BE) %v (LE)", cksum, be, le)
	return b.String(), nil
}

// endianValues reads b as a big-endian and as a little-endian number.
func endianValues(b []byte) (*big.Int, *big.Int, error) {
	if len(b) > 8 {
		return nil, nil, fmt.Errorf("%d bytes do not fit in 64 bits", len(b))
	}
	r := util.CopyBytes(b)
	util.ReverseBytes(r)
	return new(big.Int).SetBytes(b), new(big.Int).SetBytes(r), nil
}

// Base58Encode encodes base16 input as base58.
func Base58Encode(input string) (string, error) {
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	return base58.Encode(data), nil
}

// Base58Decode decodes base58 input to base16.
func Base58Decode(input string) (string, error) {
	data, err := base58.Decode(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	return util.BytesToHex(data, true), nil
}
