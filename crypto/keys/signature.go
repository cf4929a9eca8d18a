// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc/secp256k1"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02
)

var _ ecc.Signature = (*Signature)(nil)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

func (sig *Signature) GetR() *big.Int { return new(big.Int).Set(sig.r) }

func (sig *Signature) GetS() *big.Int { return new(big.Int).Set(sig.s) }

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent. A signature is equivalent to another, if
// they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Cmp(otherSig.r) == 0 && sig.s.Cmp(otherSig.s) == 0
}

// IsLowS reports whether s is in the lower half of the group order.
func (sig *Signature) IsLowS() bool {
	return secp256k1.IsLowS(sig.s)
}

// canonicalPadding returns the minimal big-endian magnitude of v with a
// leading zero when the high bit is set, so the value reads as positive.
func canonicalPadding(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}

// Serialize returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1]:
//
// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// The sighash type byte of transaction signatures is not part of it.
func (sig *Signature) Serialize() []byte {
	canonR := canonicalPadding(sig.r)
	canonS := canonicalPadding(sig.s)

	// total length of returned signature is 1 byte for each magic and
	// length (6 total), plus lengths of r and s
	totalLen := 6 + len(canonR) + len(canonS)
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID)
	b = append(b, byte(totalLen-2))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	return b
}

// SerializeWithHashType appends the sighash type byte to the DER encoding,
// the form a signature takes inside a transaction input script.
func (sig *Signature) SerializeWithHashType(hashType SigHashType) []byte {
	return append(sig.Serialize(), byte(hashType))
}

func (sig *Signature) String() string {
	return fmt.Sprintf("%x", sig.Serialize())
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and enforces the following
// additional restrictions specific to secp256k1:
//
// - The R and S values must be in the valid range for secp256k1 scalars:
//   - Negative values are rejected
//   - Zero is rejected
//   - Values greater than or equal to the secp256k1 group order are rejected
func ParseDERSignature(sig []byte) (*Signature, error) {
	const (
		// 0x30 + <1-byte> + 0x02 + 0x01 + <byte> + 0x2 + 0x01 + <byte>
		minSigLen = 8

		// 0x30 + <1-byte> + 0x02 + 0x21 + <33 bytes> + 0x2 + 0x21 + <33 bytes>
		maxSigLen = 72

		sequenceOffset = 0
		dataLenOffset  = 1
		rTypeOffset    = 2
		rLenOffset     = 3
		rOffset        = 4
	)

	sigLen := len(sig)
	if sigLen < minSigLen {
		return nil, signatureError(fmt.Sprintf("malformed signature: too short: %d < %d",
			sigLen, minSigLen))
	}
	if sigLen > maxSigLen {
		return nil, signatureError(fmt.Sprintf("malformed signature: too long: %d > %d",
			sigLen, maxSigLen))
	}

	if sig[sequenceOffset] != asn1SequenceID {
		return nil, signatureError(fmt.Sprintf("malformed signature: format has wrong type: %#x",
			sig[sequenceOffset]))
	}

	if int(sig[dataLenOffset]) != sigLen-2 {
		return nil, signatureError(fmt.Sprintf("malformed signature: bad length: %d != %d",
			sig[dataLenOffset], sigLen-2))
	}

	rLen := int(sig[rLenOffset])
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sTypeOffset >= sigLen {
		return nil, signatureError("malformed signature: S type indicator missing")
	}
	if sLenOffset >= sigLen {
		return nil, signatureError("malformed signature: S length missing")
	}

	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		return nil, signatureError("malformed signature: invalid S length")
	}

	r, err := parseDERInteger(sig, rTypeOffset, rOffset, rLen, "R")
	if err != nil {
		return nil, err
	}
	s, err := parseDERInteger(sig, sTypeOffset, sOffset, sLen, "S")
	if err != nil {
		return nil, err
	}
	return &Signature{r: r, s: s}, nil
}

// parseDERInteger reads one of the two integers of a DER signature and checks
// that it is minimally encoded, positive and in [1, N-1].
func parseDERInteger(sig []byte, typeOffset, offset, length int, name string) (*big.Int, error) {
	if sig[typeOffset] != asn1IntegerID {
		return nil, signatureError(fmt.Sprintf("malformed signature: %s integer marker: %#x != %#x",
			name, sig[typeOffset], asn1IntegerID))
	}
	if length == 0 {
		return nil, signatureError(fmt.Sprintf("malformed signature: %s length is zero", name))
	}
	if sig[offset]&0x80 != 0 {
		return nil, signatureError(fmt.Sprintf("malformed signature: %s is negative", name))
	}
	// Null bytes at the start are not allowed, unless the value would
	// otherwise be interpreted as a negative number.
	if length > 1 && sig[offset] == 0x00 && sig[offset+1]&0x80 == 0 {
		return nil, signatureError(fmt.Sprintf("malformed signature: %s value has too much padding", name))
	}

	v := new(big.Int).SetBytes(sig[offset : offset+length])
	if v.Sign() == 0 {
		return nil, signatureError(fmt.Sprintf("invalid signature: %s is 0", name))
	}
	if v.Cmp(secp256k1.N) >= 0 {
		return nil, signatureError(fmt.Sprintf("invalid signature: %s >= group order", name))
	}
	return v, nil
}

// ParseSignatureWithHashType splits a transaction script signature into the
// DER signature and its trailing sighash type byte.
func ParseSignatureWithHashType(b []byte) (*Signature, SigHashType, error) {
	if len(b) == 0 {
		return nil, 0, signatureError("malformed signature: empty")
	}
	hashType := SigHashType(b[len(b)-1])
	if !hashType.IsValid() {
		return nil, 0, signatureError(fmt.Sprintf("invalid sighash type %#x", byte(hashType)))
	}
	sig, err := ParseDERSignature(b[:len(b)-1])
	if err != nil {
		return nil, 0, err
	}
	return sig, hashType, nil
}

// signatureError creates an Error of kind ErrInvalidSignatureEncoding.
func signatureError(desc string) Error {
	return makeError(ErrInvalidSignatureEncoding, desc)
}
