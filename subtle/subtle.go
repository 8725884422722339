// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subtle implements the side-channel-hardened primitives the rest of
// the library is built on: constant-time byte comparison, explicit overwrite
// that survives dead-store elimination, a data-independent 256-entry table
// lookup, and an opaque index barrier.
//
// Pure Go cannot guarantee branch-free machine code the way hand-written
// assembly can; the routines here use the accumulator patterns of the
// standard library's crypto/subtle together with an inlining barrier, which
// is the documented best-effort fallback. Word-at-a-time comparison is used
// only on architectures whose unaligned loads are native; the selection is
// made once at startup and never changes.
package subtle

import (
	stdsubtle "crypto/subtle"
	"encoding/binary"

	"golang.org/x/sys/cpu"

	"github.com/LightningCreations/lc-crypto/cryptoerr"
)

// useWordChunks is the one-shot backend cache: true where 8-byte unaligned
// loads are a single instruction. Initialized once, immutable afterwards.
var useWordChunks = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD || cpu.PPC64.IsPOWER8

// Eq compares len(a) bytes of a and b for equality without short-circuiting
// on the first mismatch; every byte of both inputs is read. It fails with
// InvalidInput when the lengths differ.
func Eq(a, b []byte) (bool, error) {
	if len(a) != len(b) {
		return false, cryptoerr.New(cryptoerr.InvalidInput, "arguments must have equal lengths")
	}
	var acc uint64
	if useWordChunks {
		for len(a) >= 8 {
			acc |= binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b)
			a = a[8:]
			b = b[8:]
		}
	}
	var bacc byte
	for i := range a {
		bacc |= a[i] ^ b[i]
	}
	acc |= uint64(bacc)
	acc |= acc >> 32
	acc |= acc >> 16
	acc |= acc >> 8
	return stdsubtle.ConstantTimeByteEq(byte(opaqueWord(acc)), 0) == 1, nil
}

// MustEq is Eq for callers that guarantee equal lengths; it panics otherwise.
func MustEq(a, b []byte) bool {
	eq, err := Eq(a, b)
	if err != nil {
		panic("subtle: arguments must have equal lengths")
	}
	return eq
}

// ExplicitFill overwrites p with val. The writes go through an optimizer
// barrier so they are not elided even when p is never read again.
func ExplicitFill(p []byte, val byte) {
	for i := range p {
		p[i] = val
	}
	sink(p)
}

// ExplicitZero overwrites p with zero bytes; see ExplicitFill.
func ExplicitZero(p []byte) {
	ExplicitFill(p, 0)
}

// SboxLookup returns table[index] for a secret index. The entire table is
// read on every call and the result is assembled with constant-time selects,
// so the access pattern carries no information about index.
func SboxLookup(index byte, table *[256]byte) byte {
	var r byte
	for i := 0; i < 256; i++ {
		mask := byte(stdsubtle.ConstantTimeByteEq(byte(i), index)) * 0xff
		r |= table[OpaqueIndex(i)] & mask
	}
	return r
}

// OpaqueIndex returns n, preventing the compiler from constant-folding n
// into downstream addressing arithmetic.
func OpaqueIndex(n int) int {
	return int(opaqueWord(uint64(n)))
}

//go:noinline
func opaqueWord(x uint64) uint64 {
	return x
}

//go:noinline
func sink(p []byte) {
	_ = p
}
