// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"

	"github.com/Qitmeer/bitcoinlib/common/encode/base58"
	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/params"
)

// Hash160Size is the length of a pay-to-pubkey-hash payload.
const Hash160Size = 20

// Hash160 returns RIPEMD160(SHA256(Serialize())).
func (p *PublicKey) Hash160() []byte {
	return hash.Hash160(p.Serialize())
}

// Address returns the pay-to-pubkey-hash address of the key on its network.
func (p *PublicKey) Address() string {
	addr, _ := base58.BtcCheckEncode(p.Hash160(), p.net.PubKeyHashAddrID)
	return addr
}

// DecodeAddress decodes a pay-to-pubkey-hash address into its public key
// hash and network.
func DecodeAddress(addr string) ([]byte, *params.Params, error) {
	payload, version, err := base58.BtcCheckDecode(addr)
	if err != nil {
		return nil, nil, err
	}
	if len(payload) != Hash160Size {
		return nil, nil, makeError(ErrInvalidAddress,
			fmt.Sprintf("payload is %d bytes, want %d", len(payload), Hash160Size))
	}
	net, err := params.ForPubKeyHashAddrID(version)
	if err != nil {
		return nil, nil, makeError(ErrInvalidAddress, err.Error())
	}
	return payload, net, nil
}
