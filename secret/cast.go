// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secret

import "unsafe"

// The Must* conversions re-type a secret between same-size representations.
// Sizes are checked eagerly and a mismatch panics: re-typing never truncates
// or extends, it only reinterprets. Byte order is little-endian, matching
// the in-memory layout on every supported target.

// MustWordFromBytes reinterprets an n-byte secret as a word of exactly n
// bytes. It panics when the sizes differ.
func MustWordFromBytes[T Unsigned](s *Bytes) Word[T] {
	var v T
	n := int(unsafe.Sizeof(v))
	if s.Len() != n {
		panic("secret: MustWordFromBytes size mismatch")
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | T(s.b[i])
	}
	return Word[T]{v: v}
}

// MustBytesFromWord reinterprets a secret word as fresh secret bytes of
// exactly the word's size.
func MustBytesFromWord[T Unsigned](w Word[T]) *Bytes {
	n := int(unsafe.Sizeof(w.v))
	b := make([]byte, n)
	v := w.v
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
	return New(b)
}

// MustWordsFromBytes reinterprets a secret byte payload as a sequence of
// secret words. It panics unless the length is a whole number of words.
func MustWordsFromBytes[T Unsigned](s *Bytes) []Word[T] {
	var zero T
	n := int(unsafe.Sizeof(zero))
	if s.Len()%n != 0 {
		panic("secret: MustWordsFromBytes size mismatch")
	}
	out := make([]Word[T], s.Len()/n)
	for i := range out {
		out[i] = MustWordFromBytes[T](s.Slice(i*n, (i+1)*n))
	}
	return out
}
