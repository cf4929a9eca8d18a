// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFieldValue is returned when a field element value is outside
	// [0, prime) or the prime itself is not greater than one.
	ErrInvalidFieldValue = ErrorKind("ErrInvalidFieldValue")

	// ErrMismatchedField is returned when operands of a field operation belong
	// to different prime fields.
	ErrMismatchedField = ErrorKind("ErrMismatchedField")

	// ErrMismatchedCurve is returned when points on different curves are
	// combined.
	ErrMismatchedCurve = ErrorKind("ErrMismatchedCurve")

	// ErrPointNotOnCurve is returned when affine coordinates do not satisfy
	// the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrUndefinedOperation is returned for operations without a defined
	// result, such as dividing by the zero element.
	ErrUndefinedOperation = ErrorKind("ErrUndefinedOperation")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field or curve arithmetic. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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
