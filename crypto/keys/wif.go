// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/common"
	"github.com/Qitmeer/bitcoinlib/common/encode/base58"
	"github.com/Qitmeer/bitcoinlib/params"
)

// compressMagic is the byte appended to the private key of a WIF that
// exports a compressed public key.
const compressMagic byte = 0x01

// WIFBytes returns the WIF payload before Base58Check encoding: the network
// prefix, the 32 byte scalar and, for compressed keys, a trailing 0x01.
func (k *PrivateKey) WIFBytes() []byte {
	size := 1 + PrivKeyBytesLen
	if k.compressed {
		size++
	}
	b := make([]byte, size)
	b[0] = k.net.PrivateKeyID
	// d < N always fits in 32 bytes
	_ = common.PutBigEndian(k.d, b[1:1+PrivKeyBytesLen])
	if k.compressed {
		b[size-1] = compressMagic
	}
	return b
}

// WIF returns the Base58Check encoded wallet import format of k.
func (k *PrivateKey) WIF() string {
	s, _ := base58.EncodeCheck(k.WIFBytes())
	return s
}

func (k *PrivateKey) String() string {
	return k.WIF()
}

// PrivKeyFromWIF decodes a wallet import format string. The payload must be
// 33 bytes (uncompressed) or 34 bytes ending in 0x01 (compressed) and start
// with the private key prefix of a registered network.
func PrivKeyFromWIF(wif string) (*PrivateKey, error) {
	decoded, err := base58.DecodeCheck(wif)
	if err != nil {
		return nil, err
	}

	var compressed bool
	switch len(decoded) {
	case 1 + PrivKeyBytesLen + 1:
		if decoded[len(decoded)-1] != compressMagic {
			return nil, makeError(ErrInvalidWifFormat,
				fmt.Sprintf("compression flag 0x%02x is not 0x01", decoded[len(decoded)-1]))
		}
		compressed = true
	case 1 + PrivKeyBytesLen:
	default:
		return nil, makeError(ErrInvalidWifFormat,
			fmt.Sprintf("decoded length %d is not 33 or 34 bytes", len(decoded)))
	}

	net, err := params.ForPrivateKeyID(decoded[0])
	if err != nil {
		return nil, makeError(ErrInvalidWifFormat, err.Error())
	}

	d := new(big.Int).SetBytes(decoded[1 : 1+PrivKeyBytesLen])
	return NewPrivateKey(d, net, compressed)
}
