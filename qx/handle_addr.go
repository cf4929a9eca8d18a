// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"fmt"

	"github.com/Qitmeer/bitcoinlib/crypto/keys"
	"github.com/Qitmeer/bitcoinlib/params"
)

// EcPubKeyToAddress returns the pay-to-pubkey-hash address of a SEC public
// key. The hash is taken over the encoding as given.
func EcPubKeyToAddress(net *params.Params, pubkey string) (string, error) {
	pub, err := keys.ParsePubKeyHex(pubkey, net)
	if err != nil {
		return "", err
	}
	return pub.Address(), nil
}

// DecodeAddress describes a pay-to-pubkey-hash address.
func DecodeAddress(addr string) (string, error) {
	h, net, err := keys.DecodeAddress(addr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("network : %s\nversion : %02x\nhash160 : %x",
		net.Name, net.PubKeyHashAddrID, h), nil
}
