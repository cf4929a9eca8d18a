// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidPrivateKeyRange is returned when a private scalar is outside
	// [1, N-1].
	ErrInvalidPrivateKeyRange = ErrorKind("ErrInvalidPrivateKeyRange")

	// ErrInvalidWifFormat is returned when a decoded WIF payload has the wrong
	// length, an unknown network prefix or a bad compression flag.
	ErrInvalidWifFormat = ErrorKind("ErrInvalidWifFormat")

	// ErrInvalidPublicKeyEncoding is returned when serialized public key bytes
	// have the wrong length or prefix, or when the point has no encoding.
	ErrInvalidPublicKeyEncoding = ErrorKind("ErrInvalidPublicKeyEncoding")

	// ErrInvalidSignatureEncoding is returned when a DER signature is
	// malformed or holds R or S outside [1, N-1].
	ErrInvalidSignatureEncoding = ErrorKind("ErrInvalidSignatureEncoding")

	// ErrInvalidAddress is returned when an address does not decode to a
	// known pay-to-pubkey-hash version and a 20 byte hash.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys, signatures and their encodings.
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
