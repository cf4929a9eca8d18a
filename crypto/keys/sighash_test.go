// Copyright (c) 2017-2018 The qitmeer developers

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigHashType(t *testing.T) {
	tests := []struct {
		t     SigHashType
		valid bool
		str   string
	}{
		{SigHashAll, true, "ALL"},
		{SigHashNone, true, "NONE"},
		{SigHashSingle, true, "SINGLE"},
		{SigHashAll | SigHashAnyOneCanPay, true, "ALL|ANYONECANPAY"},
		{SigHashNone | SigHashAnyOneCanPay, true, "NONE|ANYONECANPAY"},
		{SigHashSingle | SigHashAnyOneCanPay, true, "SINGLE|ANYONECANPAY"},
		{0, false, "SigHashType(0x0)"},
		{0x04, false, "SigHashType(0x4)"},
		{SigHashAnyOneCanPay, false, "SigHashType(0x80)"},
		{0x41, false, "SigHashType(0x41)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.valid, test.t.IsValid(), test.str)
		assert.Equal(t, test.str, test.t.String())
		if test.valid {
			parsed, err := ParseSigHashType(test.str)
			require.NoError(t, err)
			assert.Equal(t, test.t, parsed)
		}
	}

	assert.True(t, (SigHashSingle | SigHashAnyOneCanPay).AnyOneCanPay())
	assert.False(t, SigHashSingle.AnyOneCanPay())

	_, err := ParseSigHashType("all")
	assert.Error(t, err)
}
