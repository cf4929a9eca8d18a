// Copyright (c) 2017-2018 The qitmeer developers

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/bitcoinlib/common"
	"github.com/Qitmeer/bitcoinlib/crypto/ecc"
)

// NewFieldElement returns x as an element of GF(P).
func NewFieldElement(x *big.Int) (*ecc.FieldElement, error) {
	return ecc.NewFieldElement(x, P)
}

// Sqrt returns a^((P+1)/4), one of the square roots of a when a is a
// quadratic residue. The other root is its negation. The result is not
// checked, callers that need a true root must square it again.
func Sqrt(a *ecc.FieldElement) (*ecc.FieldElement, error) {
	if a.Prime().Cmp(P) != 0 {
		return nil, ecc.Error{Err: ecc.ErrMismatchedField,
			Description: fmt.Sprintf("%v is not an element of the secp256k1 field", a)}
	}
	return a.Pow(sqrtExp)
}

// FieldHex returns the 64 digit big-endian hex form of a.
func FieldHex(a *ecc.FieldElement, lowerCase bool) string {
	// an element of GF(P) always fits in 64 digits
	s, _ := common.BigToHexWidth(a.Num(), 64, lowerCase)
	return s
}
