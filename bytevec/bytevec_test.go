// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytevec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/LightningCreations/lc-crypto/secret"
)

func TestChunksForward(t *testing.T) {
	it := NewChunks([]byte{0, 1, 2, 3, 4, 5, 6}, 3)
	require.Equal(t, 2, it.Len())

	w, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, []byte{0, 1, 2}, w)
	w, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, []byte{3, 4, 5}, w)
	_, ok = it.Next()
	require.False(t, ok)

	require.Equal(t, []byte{6}, it.Remainder())
}

func TestChunksBackward(t *testing.T) {
	it := NewChunks([]byte{0, 1, 2, 3, 4, 5}, 2)
	w, ok := it.NextBack()
	require.True(t, ok)
	require.Equal(t, []byte{4, 5}, w)
	w, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, []byte{0, 1}, w)
	require.Equal(t, 1, it.Len())
	w, ok = it.NextBack()
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, w)
	_, ok = it.NextBack()
	require.False(t, ok)
	require.Empty(t, it.Remainder())
}

func TestChunksReset(t *testing.T) {
	it := NewChunks([]byte{1, 2, 3, 4}, 2)
	_, _ = it.Next()
	_, _ = it.Next()
	it.Reset()
	require.Equal(t, 2, it.Len())
	w, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2}, w)
}

func TestChunksExactSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n").(int)
		size := rapid.IntRange(1, 40).Draw(t, "size").(int)
		p := make([]byte, n)
		it := NewChunks(p, size)
		require.Equal(t, n/size, it.Len())
		count := 0
		for {
			_, ok := it.Next()
			if !ok {
				break
			}
			count++
		}
		require.Equal(t, n/size, count)
		require.Equal(t, n%size, len(it.Remainder()))
	})
}

func TestChunksBadSizePanics(t *testing.T) {
	require.Panics(t, func() { NewChunks(nil, 0) })
}

func TestVecRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 64).Draw(t, "cap").(int)
		n := rapid.IntRange(0, capacity).Draw(t, "n").(int)
		src := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "src").([]byte)

		v := NewVec(capacity)
		v.ExtendFromSlice(src)
		out := v.IntoInner()
		require.Len(t, out, capacity)
		require.Equal(t, src, out[:len(src)])
		for _, b := range out[len(src):] {
			require.Zero(t, b)
		}
		require.Zero(t, v.Len())
	})
}

func TestVecPush(t *testing.T) {
	v := NewVec(2)
	v.Push(1)
	v.Push(2)
	require.Equal(t, []byte{1, 2}, v.Bytes())
	require.Panics(t, func() { v.Push(3) })
}

func TestVecExtendOverflowPanics(t *testing.T) {
	v := NewVec(3)
	v.Push(9)
	require.Panics(t, func() { v.ExtendFromSlice([]byte{1, 2, 3}) })
}

func TestVecFromSlice(t *testing.T) {
	v := VecFromSlice(4, []byte{7, 8})
	require.Equal(t, 2, v.Len())
	require.Equal(t, 4, v.Cap())
	require.Panics(t, func() { VecFromSlice(1, []byte{1, 2}) })
}

func TestVecZeroPad(t *testing.T) {
	v := NewVec(4)
	v.Push(0xff)
	v.ZeroPad()
	require.Equal(t, []byte{0xff, 0, 0, 0}, v.Bytes())
	require.Equal(t, 4, v.Len())
}

func TestSecretVec(t *testing.T) {
	key := secret.FromBytes([]byte{1, 2, 3})
	defer key.Destroy()

	v := NewSecretVec(8)
	v.ExtendFromSecret(key)
	v.Push(4)
	require.Equal(t, 4, v.Len())
	require.Equal(t, 8, v.Cap())

	out := v.IntoInner()
	defer out.Destroy()
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, out.ExposeNonsecret())
	require.Zero(t, v.Len())
}

func TestSecretVecOverflowPanics(t *testing.T) {
	v := NewSecretVec(1)
	v.Push(1)
	require.Panics(t, func() { v.Push(2) })
	big := secret.FromBytes([]byte{1, 2})
	defer big.Destroy()
	require.Panics(t, func() { SecretVecFromSecret(1, big) })
}

func TestSecretVecOpaqueString(t *testing.T) {
	v := NewSecretVec(4)
	v.Push(0x41)
	require.Equal(t, "bytevec.SecretVec(_)", v.String())
}

func TestSecretVecDestroy(t *testing.T) {
	v := NewSecretVec(4)
	v.Push(9)
	v.Destroy()
	require.Zero(t, v.Len())
}
