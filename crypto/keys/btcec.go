// Copyright (c) 2017-2018 The qitmeer developers

package keys

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/Qitmeer/bitcoinlib/params"
)

// ToBtcec converts the key to a btcec private key.
func (k *PrivateKey) ToBtcec() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(k.Serialize())
	return priv
}

// PrivKeyFromBtcec wraps a btcec private key.
func PrivKeyFromBtcec(priv *btcec.PrivateKey, net *params.Params, compressed bool) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(priv.Serialize()), net, compressed)
}

// ToBtcec converts the key to a btcec public key.
func (p *PublicKey) ToBtcec() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.SerializeUncompressed())
}

// PubKeyFromBtcec wraps a btcec public key.
func PubKeyFromBtcec(pub *btcec.PublicKey, net *params.Params, compressed bool) (*PublicKey, error) {
	return NewPublicKey(pub.X(), pub.Y(), net, compressed)
}

// ToBtcec converts the signature to a btcec ECDSA signature.
func (sig *Signature) ToBtcec() (*btcecdsa.Signature, error) {
	return btcecdsa.ParseDERSignature(sig.Serialize())
}

// SignatureFromBtcec converts a btcec ECDSA signature.
func SignatureFromBtcec(sig *btcecdsa.Signature) (*Signature, error) {
	return ParseDERSignature(sig.Serialize())
}
