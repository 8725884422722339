// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytevec

// Vec is a byte vector of fixed capacity. Overflow is a caller bug and
// panics; nothing here returns an error. Bytes past the length are zero
// whenever the buffer is observed from outside, which is what makes
// IntoInner usable directly as a padded block.
type Vec struct {
	buf []byte
	n   int
}

// NewVec returns an empty vector of the given capacity.
func NewVec(capacity int) *Vec {
	return &Vec{buf: make([]byte, capacity)}
}

// VecFromSlice returns a vector holding a copy of p. It panics when p does
// not fit.
func VecFromSlice(capacity int, p []byte) *Vec {
	v := NewVec(capacity)
	v.ExtendFromSlice(p)
	return v
}

// Cap returns the fixed capacity.
func (v *Vec) Cap() int { return len(v.buf) }

// Len returns the current length.
func (v *Vec) Len() int { return v.n }

// Push appends one byte. It panics at capacity.
func (v *Vec) Push(b byte) {
	if v.n == len(v.buf) {
		panic("bytevec: push past capacity")
	}
	v.buf[v.n] = b
	v.n++
}

// ExtendFromSlice appends p. It panics when p does not fit.
func (v *Vec) ExtendFromSlice(p []byte) {
	if v.n+len(p) > len(v.buf) {
		panic("bytevec: extend past capacity")
	}
	copy(v.buf[v.n:], p)
	v.n += len(p)
}

// ZeroPad fills the unused tail with zero bytes and advances the length to
// the capacity.
func (v *Vec) ZeroPad() {
	for i := v.n; i < len(v.buf); i++ {
		v.buf[i] = 0
	}
	v.n = len(v.buf)
}

// Bytes returns the used prefix. The slice borrows the vector's storage.
func (v *Vec) Bytes() []byte { return v.buf[:v.n] }

// IntoInner zero-pads and surrenders the full-capacity block. The vector is
// left empty with fresh storage.
func (v *Vec) IntoInner() []byte {
	v.ZeroPad()
	out := v.buf
	v.buf = make([]byte, len(out))
	v.n = 0
	return out
}
