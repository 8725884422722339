// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha2

import (
	stdsha256 "crypto/sha256"
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/LightningCreations/lc-crypto/digest"
)

func sum(t *testing.T, d digest.Raw, msg []byte) []byte {
	t.Helper()
	out, err := digest.Sum(d, msg)
	require.NoError(t, err)
	return out
}

func TestSha256Empty(t *testing.T) {
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(sum(t, New256(), nil)))
}

func TestSha256QuickBrownFox(t *testing.T) {
	require.Equal(t,
		"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
		hex.EncodeToString(sum(t, New256(), []byte("The quick brown fox jumps over the lazy dog"))))
}

func TestSha512Empty(t *testing.T) {
	require.Equal(t,
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce"+
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		hex.EncodeToString(sum(t, New512(), nil)))
}

func TestSha512_224Empty(t *testing.T) {
	require.Equal(t,
		"6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4",
		hex.EncodeToString(sum(t, New512_224(), nil)))
}

func TestSha224Abc(t *testing.T) {
	require.Equal(t,
		"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		hex.EncodeToString(sum(t, New224(), []byte("abc"))))
}

func TestSha384Abc(t *testing.T) {
	require.Equal(t,
		"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed"+
			"8086072ba1e7cc2358baeca134c825a7",
		hex.EncodeToString(sum(t, New384(), []byte("abc"))))
}

// references pairs each instance with its standard-library counterpart.
var references = []struct {
	name string
	newD func() digest.Raw
	ref  func([]byte) []byte
}{
	{"sha224", func() digest.Raw { return New224() }, func(b []byte) []byte { s := stdsha256.Sum224(b); return s[:] }},
	{"sha256", func() digest.Raw { return New256() }, func(b []byte) []byte { s := stdsha256.Sum256(b); return s[:] }},
	{"sha384", func() digest.Raw { return New384() }, func(b []byte) []byte { s := stdsha512.Sum384(b); return s[:] }},
	{"sha512", func() digest.Raw { return New512() }, func(b []byte) []byte { s := stdsha512.Sum512(b); return s[:] }},
	{"sha512-224", func() digest.Raw { return New512_224() }, func(b []byte) []byte { s := stdsha512.Sum512_224(b); return s[:] }},
	{"sha512-256", func() digest.Raw { return New512_256() }, func(b []byte) []byte { s := stdsha512.Sum512_256(b); return s[:] }},
}

// TestPaddingBoundaries pins the single-block/two-block decision at the
// message lengths around the padding reserve for every instance.
func TestPaddingBoundaries(t *testing.T) {
	for _, r := range references {
		b := r.newD().BlockSize()
		for _, l := range []int{0, b - 9, b - 8, b - 1, b, b + 1, 2*b - 9, 2 * b} {
			msg := make([]byte, l)
			for i := range msg {
				msg[i] = byte(i * 131)
			}
			require.Equal(t, r.ref(msg), sum(t, r.newD(), msg), "%s length %d", r.name, l)
		}
	}
}

func TestAgainstStdlib(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 1024).Draw(t, "msg").([]byte)
		for _, r := range references {
			out, err := digest.Sum(r.newD(), msg)
			require.NoError(t, err)
			require.Equal(t, r.ref(msg), out, r.name)
		}
	})
}

// TestStreamingEquivalence splits a message arbitrarily and expects the
// one-shot digest.
func TestStreamingEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 2048).Draw(t, "msg").([]byte)
		want := stdsha512.Sum512(msg)

		w := digest.NewWriter(New512())
		rest := msg
		for len(rest) > 0 {
			n := rapid.IntRange(1, len(rest)).Draw(t, "n").(int)
			_, err := w.Write(rest[:n])
			require.NoError(t, err)
			rest = rest[n:]
		}
		got, err := w.Sum()
		require.NoError(t, err)
		require.Equal(t, want[:], got)
	})
}

// TestSha512TDerivation runs the IV-generation function for t of 224 and
// 256 and expects the published initial vectors, which New512_224 and
// New512_256 load directly.
func TestSha512TDerivation(t *testing.T) {
	for _, tc := range []struct {
		t  int
		iv [8]uint64
	}{
		{224, iv512_224},
		{256, iv512_256},
	} {
		var modified [8]uint64
		for i, w := range iv512 {
			modified[i] = w ^ ivGenXor
		}
		gen := newDigest(params64, modified, 512)
		require.NoError(t, gen.RawUpdateFinal([]byte("SHA-512/"+strconv.Itoa(tc.t))))
		ivBytes, err := gen.Finish()
		require.NoError(t, err)
		var iv [8]uint64
		for i := range iv {
			iv[i] = getWord[uint64](ivBytes[i*8:], 8)
		}
		require.Equal(t, tc.iv, iv, "SHA-512/%d", tc.t)
	}
}

func TestSha512TRejects(t *testing.T) {
	for _, bad := range []int{0, -1, 384, 512, 600} {
		_, err := New512T(bad)
		require.Error(t, err, "t=%d", bad)
	}
}

func TestSha512TOddWidth(t *testing.T) {
	d, err := New512T(12)
	require.NoError(t, err)
	require.Equal(t, 2, d.OutputSize())
	out, err := digest.Sum(d, []byte("odd width"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	// 12 output bits: the low 4 bits of the last byte survive the mask.
	require.Zero(t, out[1]&0xf0)
}

func TestResetWithKey(t *testing.T) {
	d := New256()
	base := sum(t, New256(), []byte("msg"))

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	require.NoError(t, d.ResetWithKey(key))
	keyed, err := digest.Sum(d, []byte("msg"))
	require.NoError(t, err)
	require.NotEqual(t, base, keyed)

	// Reset returns to the constructor IV, not the key.
	require.NoError(t, d.Reset())
	again, err := digest.Sum(d, []byte("msg"))
	require.NoError(t, err)
	require.Equal(t, base, again)

	require.Error(t, d.ResetWithKey(key[:31]))
}

func TestRawUpdateRequiresFullBlock(t *testing.T) {
	d := New256()
	require.Error(t, d.RawUpdate(make([]byte, 63)))
	require.Error(t, d.RawUpdateFinal(make([]byte, 65)))
}

func BenchmarkSha256_8K(b *testing.B) {
	data := make([]byte, 8192)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		d := New256()
		if _, err := digest.Sum(d, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSha512_8K(b *testing.B) {
	data := make([]byte, 8192)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		d := New512()
		if _, err := digest.Sum(d, data); err != nil {
			b.Fatal(err)
		}
	}
}
