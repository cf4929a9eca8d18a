// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import "fmt"

// SigHashType represents hash type bits at the end of a signature.
type SigHashType byte

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the number of bits of the hash type which is used
	// to identify which outputs are signed.
	sigHashMask = 0x1f
)

// IsValid reports whether t is one of the six defined combinations.
func (t SigHashType) IsValid() bool {
	base := t &^ SigHashAnyOneCanPay
	return t&^(SigHashAnyOneCanPay|sigHashMask) == 0 &&
		base >= SigHashAll && base <= SigHashSingle
}

// AnyOneCanPay reports whether only the signed input is committed to.
func (t SigHashType) AnyOneCanPay() bool {
	return t&SigHashAnyOneCanPay != 0
}

var sigHashStrings = map[SigHashType]string{
	SigHashAll:    "ALL",
	SigHashNone:   "NONE",
	SigHashSingle: "SINGLE",
}

func (t SigHashType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("SigHashType(%#x)", byte(t))
	}
	s := sigHashStrings[t&sigHashMask]
	if t.AnyOneCanPay() {
		s += "|ANYONECANPAY"
	}
	return s
}

// ParseSigHashType parses the names printed by String.
func ParseSigHashType(s string) (SigHashType, error) {
	for _, t := range []SigHashType{SigHashAll, SigHashNone, SigHashSingle} {
		if s == t.String() {
			return t, nil
		}
		if s == (t | SigHashAnyOneCanPay).String() {
			return t | SigHashAnyOneCanPay, nil
		}
	}
	return 0, fmt.Errorf("unknown sighash type %q", s)
}
