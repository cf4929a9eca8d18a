// Copyright 2017-2018 The qitmeer developers

package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Qitmeer/bitcoinlib/common/util"
)

var (
	tt256   = new(big.Int).Lsh(big.NewInt(1), 256)   //2^256
	tt256m1 = new(big.Int).Sub(tt256, big.NewInt(1)) //2^256-1

	MaxBig256 = new(big.Int).Set(tt256m1)
)

var (
	// ErrBufferOverflow is returned when the minimal big-endian encoding of a
	// value does not fit into the requested number of bytes.
	ErrBufferOverflow = errors.New("value too large for buffer")

	// ErrNegativeValue is returned when a negative integer is handed to one
	// of the unsigned encoders.
	ErrNegativeValue = errors.New("value is less than 0")
)

const (
	// number of bits in a big.Word
	wordBits = 32 << (uint64(^big.Word(0)) >> 63)
	// number of bytes in a big.Word
	wordBytes = wordBits / 8
)

// BigPow returns a ** b as a big integer.
func BigPow(a, b int) *big.Int {
	r := big.NewInt(int64(a))
	return r.Exp(r, big.NewInt(int64(b)), nil)
}

// ReadBits encodes the absolute value of bigint as big-endian bytes. Callers must ensure
// that buf has enough space. If buf is too short the result will be incomplete.
func ReadBits(bigint *big.Int, buf []byte) {
	i := len(buf)
	for _, d := range bigint.Bits() {
		for j := 0; j < wordBytes && i > 0; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
}

// PutBigEndian writes the non-negative integer x into buf, right aligned and
// zero padded on the left. The whole of buf is overwritten.
func PutBigEndian(x *big.Int, buf []byte) error {
	if x.Sign() < 0 {
		return ErrNegativeValue
	}
	if (x.BitLen()+7)/8 > len(buf) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferOverflow,
			(x.BitLen()+7)/8, len(buf))
	}
	for i := range buf {
		buf[i] = 0
	}
	ReadBits(x, buf)
	return nil
}

// PaddedBigBytes encodes x as a big-endian byte slice of exactly size bytes.
func PaddedBigBytes(x *big.Int, size int) ([]byte, error) {
	buf := make([]byte, size)
	if err := PutBigEndian(x, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// BigFromBytes interprets b as an unsigned big-endian integer.
func BigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BigToHex returns the minimal hex form of x, without leading zeros.
func BigToHex(x *big.Int, lowerCase bool) (string, error) {
	return BigToHexWidth(x, 0, lowerCase)
}

// BigToHexWidth returns x in hex, left padded with zeros to at least width
// digits.
func BigToHexWidth(x *big.Int, width int, lowerCase bool) (string, error) {
	if x.Sign() < 0 {
		return "", ErrNegativeValue
	}
	s := x.Text(16)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if !lowerCase {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// Mod returns x mod m in the range [0, m), whatever the sign of x.
func Mod(x, m *big.Int) *big.Int {
	// big.Int.Mod implements Euclidean modulus, the result is never negative
	// for a positive m.
	return new(big.Int).Mod(x, m)
}

// BigFromHex parses an unsigned big-endian hex string, with or without a 0x
// prefix. Odd-length input is read as if it had a leading zero nibble.
func BigFromHex(s string) (*big.Int, error) {
	if util.HasHexPrefix(s) {
		s = s[2:]
	}
	b, err := util.HexToBytes(s)
	if err != nil {
		return nil, err
	}
	return BigFromBytes(b), nil
}
