// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"fmt"
	"sync"
)

// Network identifies a Bitcoin network.
type Network uint32

const (
	MainNet Network = iota
	TestNet
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}
	return fmt.Sprintf("Unknown Network (%d)", uint32(n))
}

// Params defines the version bytes that keys and addresses carry on a
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrDuplicateID is returned when a new network reuses the private key
	// or address version byte of a registered one.
	ErrDuplicateID = errors.New("duplicate version byte")

	// ErrUnknownNet is returned when no registered network matches.
	ErrUnknownNet = errors.New("unknown network")

	// ErrUnknownAddressID is returned when an address version byte belongs
	// to no registered network.
	ErrUnknownAddressID = errors.New("unknown address id")

	// ErrUnknownPrivateKeyID is returned when a WIF prefix byte belongs to no
	// registered network.
	ErrUnknownPrivateKeyID = errors.New("unknown private key id")
)

var (
	registryMtx       sync.RWMutex
	registeredNets    = make(map[Network]*Params)
	privateKeyIDs     = make(map[byte]*Params)
	pubKeyHashAddrIDs = make(map[byte]*Params)
)

// Register registers the network parameters for a Bitcoin network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks), and with ErrDuplicateID if its private key or address version
// byte is already taken.  It is safe to call concurrently with the lookups.
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	registryMtx.Lock()
	defer registryMtx.Unlock()

	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	if p, ok := privateKeyIDs[params.PrivateKeyID]; ok {
		return fmt.Errorf("%w: private key id 0x%02x is used by %s",
			ErrDuplicateID, params.PrivateKeyID, p.Name)
	}
	if p, ok := pubKeyHashAddrIDs[params.PubKeyHashAddrID]; ok {
		return fmt.Errorf("%w: address id 0x%02x is used by %s",
			ErrDuplicateID, params.PubKeyHashAddrID, p.Name)
	}
	registeredNets[params.Net] = params
	privateKeyIDs[params.PrivateKeyID] = params
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = params

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}

// ForNetwork returns the registered parameters of net.
func ForNetwork(net Network) (*Params, error) {
	registryMtx.RLock()
	p, ok := registeredNets[net]
	registryMtx.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNet, net)
	}
	return p, nil
}

// ForPrivateKeyID returns the network whose WIF prefix byte is id.
func ForPrivateKeyID(id byte) (*Params, error) {
	registryMtx.RLock()
	p, ok := privateKeyIDs[id]
	registryMtx.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownPrivateKeyID, id)
	}
	return p, nil
}

// ForPubKeyHashAddrID returns the network whose pay-to-pubkey-hash address
// version byte is id.
func ForPubKeyHashAddrID(id byte) (*Params, error) {
	registryMtx.RLock()
	p, ok := pubKeyHashAddrIDs[id]
	registryMtx.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownAddressID, id)
	}
	return p, nil
}
