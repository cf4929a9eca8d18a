// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"fmt"
	"strings"

	"github.com/Qitmeer/bitcoinlib/common/hash"
	"github.com/Qitmeer/bitcoinlib/crypto/keys"
)

// MsgSign signs sha256(msg) with a WIF private key and returns the DER
// signature in base16.
func MsgSign(wif string, msg string, showDetails bool) (string, error) {
	k, err := keys.PrivKeyFromWIF(wif)
	if err != nil {
		return "", err
	}
	digest := hash.HashH([]byte(msg))
	sig, err := k.Sign([]byte(msg))
	if err != nil {
		return "", err
	}
	if !showDetails {
		return encodeKey(sig), nil
	}

	r, s := signatureValues(sig)
	var b strings.Builder
	fmt.Fprintf(&b, "        hash: %s\n", digest)
	fmt.Fprintf(&b, "   signature: %s\n", encodeKey(sig))
	fmt.Fprintf(&b, "           R: %s\n", r)
	fmt.Fprintf(&b, "           S: %s\n", s)
	fmt.Fprintf(&b, "      public: %s\n", encodeKey(k.PubKey()))
	fmt.Fprintf(&b, "     address: %s", k.PubKey().Address())
	return b.String(), nil
}

// VerifyMsgSignature checks a base16 DER signature of sha256(msg) against a
// SEC public key.
func VerifyMsgSignature(pubkey string, signStr string, msg string) (bool, error) {
	pub, err := keys.ParsePubKeyHex(pubkey, nil)
	if err != nil {
		return false, err
	}
	sigBytes, err := decodeHex("signature", signStr)
	if err != nil {
		return false, err
	}
	sig, err := keys.ParseDERSignature(sigBytes)
	if err != nil {
		return false, err
	}
	return pub.Verify([]byte(msg), sig), nil
}

// DecodeSignature describes a base16 DER signature, with or without a
// trailing sighash type byte.
func DecodeSignature(signStr string) (string, error) {
	data, err := decodeHex("signature", signStr)
	if err != nil {
		return "", err
	}

	var hashType keys.SigHashType
	sig, derErr := keys.ParseDERSignature(data)
	if derErr != nil {
		sig, hashType, err = keys.ParseSignatureWithHashType(data)
		if err != nil {
			return "", derErr
		}
	}

	r, s := signatureValues(sig)
	var b strings.Builder
	fmt.Fprintf(&b, "R       : %s\n", r)
	fmt.Fprintf(&b, "S       : %s\n", s)
	fmt.Fprintf(&b, "low-s   : %v", sig.IsLowS())
	if hashType != 0 {
		fmt.Fprintf(&b, "\nhashtype: %s", hashType)
	}
	return b.String(), nil
}
