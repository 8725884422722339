// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cryptoerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRendering(t *testing.T) {
	require.Equal(t, "Invalid Input: arguments must have equal lengths",
		New(InvalidInput, "arguments must have equal lengths").Error())
	require.Equal(t, "Unsupported Operation",
		New(Unsupported, "").Error())
	require.Equal(t, "Permission Denied (os error 13)",
		FromOS(PermissionDenied, 13).Error())
	require.Equal(t, "Invalid Data: unexpected trailing byte",
		Wrap(InvalidData, errors.New("unexpected trailing byte")).Error())
}

func TestKindOf(t *testing.T) {
	err := New(TimedOut, "no response")
	require.Equal(t, TimedOut, KindOf(err))
	require.Equal(t, TimedOut, KindOf(fmt.Errorf("outer: %w", err)))
	require.Equal(t, Other, KindOf(errors.New("foreign")))
	require.Equal(t, Other, KindOf(nil))
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := Wrap(WouldBlock, inner)
	require.ErrorIs(t, err, inner)
	require.Equal(t, WouldBlock, err.Kind())
}

func TestOSCode(t *testing.T) {
	err := FromOS(Interrupted, 4)
	code, ok := err.OSCode()
	require.True(t, ok)
	require.Equal(t, 4, code)

	_, ok = New(Other, "x").OSCode()
	require.False(t, ok)
}

func TestLocationCaptured(t *testing.T) {
	err := New(OutOfMemory, "x")
	file, line := err.Location()
	require.Contains(t, file, "cryptoerr_test.go")
	require.NotZero(t, line)
}

func TestKindStrings(t *testing.T) {
	for k, want := range map[Kind]string{
		Other:            "Other Error",
		Unsupported:      "Unsupported Operation",
		Interrupted:      "Interrupted",
		TimedOut:         "Timed Out",
		PermissionDenied: "Permission Denied",
		InvalidInput:     "Invalid Input",
		InvalidData:      "Invalid Data",
		OutOfMemory:      "Out of Memory",
		ProviderNotFound: "Provider not Found",
		UnexpectedEof:    "Unexpected End of File",
		WriteZero:        "Write returned 0",
		WouldBlock:       "Operation would Block",
	} {
		require.Equal(t, want, k.String())
	}
}
