// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qitmeer/bitcoinlib/common/encode/base58"
)

var stringTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{" ", "Z"},
	{"-", "n"},
	{"0", "q"},
	{"1", "r"},
	{"-1", "4SU"},
	{"11", "4k8"},
	{"abc", "ZiCa"},
	{"1234598760", "3mJr7AoUXx2Wqd"},
	{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f"},
}

var hexTests = []struct {
	in  string
	out string
}{
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestBase58(t *testing.T) {
	for x, test := range stringTests {
		assert.Equal(t, test.out, base58.Encode([]byte(test.in)), "Encode test #%d", x)
	}

	for x, test := range hexTests {
		b, err := hex.DecodeString(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.out, base58.Encode(b), "Encode test #%d", x)

		res, err := base58.Decode(test.out)
		require.NoError(t, err, "Decode test #%d", x)
		assert.Equal(t, b, res, "Decode test #%d", x)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "3mJr0", "3mJr7AoUXx2Wqd\xff", "bad:"} {
		_, err := base58.Decode(s)
		assert.True(t, errors.Is(err, base58.ErrInvalidCharacter), "input %q: %v", s, err)
	}
}

func TestLeadingZeros(t *testing.T) {
	for n := 0; n < 5; n++ {
		in := append(make([]byte, n), 0xab, 0xcd)
		enc := base58.Encode(in)
		for i := 0; i < n; i++ {
			assert.Equal(t, byte('1'), enc[i])
		}
		dec, err := base58.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}
}
