// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"github.com/Qitmeer/bitcoinlib/common/util"
	"github.com/Qitmeer/bitcoinlib/params"
)

// Base58checkVersionFlag is a version prefix given either as a network name,
// which selects its pay-to-pubkey-hash byte, or as base16.
type Base58checkVersionFlag struct {
	Ver  []byte
	flag string
}

func (n *Base58checkVersionFlag) Set(s string) error {
	n.Ver = []byte{}
	switch s {
	case "mainnet":
		n.Ver = append(n.Ver, params.MainNetParams.PubKeyHashAddrID)
	case "testnet":
		n.Ver = append(n.Ver, params.TestNetParams.PubKeyHashAddrID)
	case "mainnet-p2sh":
		n.Ver = append(n.Ver, params.MainNetParams.ScriptHashAddrID)
	case "testnet-p2sh":
		n.Ver = append(n.Ver, params.TestNetParams.ScriptHashAddrID)
	default:
		v, err := util.HexToBytes(s)
		if err != nil {
			return err
		}
		n.Ver = append(n.Ver, v...)
	}
	n.flag = s
	return nil
}

// UnmarshalFlag lets the flag parser fill the version.
func (n *Base58checkVersionFlag) UnmarshalFlag(s string) error {
	return n.Set(s)
}

func (n *Base58checkVersionFlag) String() string {
	return n.flag
}
