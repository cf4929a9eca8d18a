// Copyright 2017-2018 The qitmeer developers

package util

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a hex string contains a character that is
// not a hex digit.
type ErrInvalidHex struct {
	Char byte
	Pos  int
}

func (e ErrInvalidHex) Error() string {
	return fmt.Sprintf("invalid hex character %q at position %d", e.Char, e.Pos)
}

func HasHexPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// BytesToHex returns the hex form of b in the requested case.
func BytesToHex(b []byte, lowerCase bool) string {
	s := hex.EncodeToString(b)
	if !lowerCase {
		return strings.ToUpper(s)
	}
	return s
}

// HexToBytes decodes a hex string of either case. An odd number of digits is
// treated as if the string had a leading '0'.
func HexToBytes(str string) ([]byte, error) {
	offset := 0
	if len(str)%2 != 0 {
		str = "0" + str
		offset = 1
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		if e, ok := err.(hex.InvalidByteError); ok {
			pos := strings.IndexByte(str, byte(e))
			return nil, ErrInvalidHex{Char: byte(e), Pos: pos - offset}
		}
		return nil, err
	}
	return b, nil
}

// MustHex2Bytes returns the bytes represented by the hexadecimal string str. Must means panic when err
func MustHex2Bytes(str string) []byte {
	h, err := HexToBytes(str)
	if err != nil {
		panic(err)
	}
	return h
}
