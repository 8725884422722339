// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cryptoerr defines the closed set of failure kinds used across the
// library and the error value that carries them. Operations that can fail
// return an *Error; nothing is recovered internally and errors propagate to
// the caller unchanged.
package cryptoerr

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an Error. The set is closed; callers switch on it.
type Kind int

const (
	// Other is an error that does not fall into any other category.
	Other Kind = iota
	// Unsupported reports an operation not available on this value.
	Unsupported
	Interrupted
	TimedOut
	PermissionDenied
	// InvalidInput reports a caller-supplied argument that violates the
	// operation's contract, such as mismatched lengths.
	InvalidInput
	// InvalidData reports malformed data encountered while reading.
	InvalidData
	OutOfMemory
	ProviderNotFound
	UnexpectedEof
	WriteZero
	WouldBlock

	internal
	uncategorized
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "Other Error"
	case Unsupported:
		return "Unsupported Operation"
	case Interrupted:
		return "Interrupted"
	case TimedOut:
		return "Timed Out"
	case PermissionDenied:
		return "Permission Denied"
	case InvalidInput:
		return "Invalid Input"
	case InvalidData:
		return "Invalid Data"
	case OutOfMemory:
		return "Out of Memory"
	case ProviderNotFound:
		return "Provider not Found"
	case UnexpectedEof:
		return "Unexpected End of File"
	case WriteZero:
		return "Write returned 0"
	case WouldBlock:
		return "Operation would Block"
	case internal:
		return "Internal Error (Please Report a bug)"
	default:
		return "(uncategorized error)"
	}
}

// Error is the error type returned from this library. It carries a Kind and
// at most one of: a static message, a wrapped error, or a raw OS error code.
// The construction site is recorded as a debugging aid.
type Error struct {
	kind Kind

	msg   string
	err   error
	os    int
	hasOS bool

	file string
	line int
}

// New returns an Error of the given kind with a static message.
func New(kind Kind, msg string) *Error {
	e := &Error{kind: kind, msg: msg}
	e.file, e.line = caller()
	return e
}

// Wrap returns an Error of the given kind carrying err as its payload.
func Wrap(kind Kind, err error) *Error {
	e := &Error{kind: kind, err: err}
	e.file, e.line = caller()
	return e
}

// FromOS returns an Error of the given kind carrying a raw OS error code.
func FromOS(kind Kind, code int) *Error {
	e := &Error{kind: kind, os: code, hasOS: true}
	e.file, e.line = caller()
	return e
}

func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return file, line
}

func (e *Error) Error() string {
	switch {
	case e.hasOS:
		return fmt.Sprintf("%s (os error %d)", e.kind, e.os)
	case e.err != nil:
		return fmt.Sprintf("%s: %s", e.kind, e.err)
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	default:
		return e.kind.String()
	}
}

// Kind reports the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Unwrap returns the wrapped payload, if any, for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.err }

// OSCode returns the raw OS error code and whether one was recorded.
func (e *Error) OSCode() (int, bool) { return e.os, e.hasOS }

// Location returns the file and line where the error was constructed.
// It is a debugging aid only; both are zero when unavailable.
func (e *Error) Location() (string, int) { return e.file, e.line }

// KindOf extracts the Kind from err. Errors that did not originate in this
// library report Other.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Other
}
