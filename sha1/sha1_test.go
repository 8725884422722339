// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha1

import (
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/LightningCreations/lc-crypto/digest"
)

func TestEmpty(t *testing.T) {
	out, err := digest.Sum(New(), nil)
	require.NoError(t, err)
	require.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", hex.EncodeToString(out))
}

func TestAbc(t *testing.T) {
	out, err := digest.Sum(New(), []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(out))
}

func TestAgainstStdlib(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 1024).Draw(t, "msg").([]byte)
		want := stdsha1.Sum(msg)
		got, err := digest.Sum(New(), msg)
		require.NoError(t, err)
		require.Equal(t, want[:], got)
	})
}

func TestPaddingBoundaries(t *testing.T) {
	for _, l := range []int{0, 55, 56, 63, 64, 65, 119, 128} {
		msg := make([]byte, l)
		for i := range msg {
			msg[i] = byte(i * 29)
		}
		want := stdsha1.Sum(msg)
		got, err := digest.Sum(New(), msg)
		require.NoError(t, err)
		require.Equal(t, want[:], got, "length %d", l)
	}
}

func TestReset(t *testing.T) {
	d := New()
	first, err := digest.Sum(d, []byte("one"))
	require.NoError(t, err)
	require.NoError(t, d.Reset())
	second, err := digest.Sum(d, []byte("one"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
