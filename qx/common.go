// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Qitmeer/bitcoinlib/common/util"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
	"github.com/Qitmeer/bitcoinlib/params"
)

// decodeHex decodes a base16 argument, naming it in the error.
func decodeHex(name, input string) ([]byte, error) {
	data, err := util.HexToBytes(strings.TrimSpace(input))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}
	return data, nil
}

// encodeKey returns the lower case base16 encoding of a key or signature.
func encodeKey(k ecc.Key) string {
	return util.BytesToHex(k.Serialize(), true)
}

// signatureValues returns r and s as 64 digit base16 numbers.
func signatureValues(sig ecc.Signature) (r, s string) {
	return fmt.Sprintf("%064x", sig.GetR()), fmt.Sprintf("%064x", sig.GetS())
}

// NetParams returns the testnet parameters when testnet is set, otherwise
// mainnet.
func NetParams(testnet bool) *params.Params {
	net := params.MainNet
	if testnet {
		net = params.TestNet
	}
	// default networks are registered at init
	p, _ := params.ForNetwork(net)
	return p
}
