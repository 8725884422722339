// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytevec

import "github.com/LightningCreations/lc-crypto/secret"

// SecretVec is Vec with secret storage. It carries the same capacity and
// panic contracts but stores its bytes in a secret.Bytes payload, renders
// only an opaque placeholder, and deliberately offers no ordering or
// hashing: either would branch on the contents.
type SecretVec struct {
	buf *secret.Bytes
	n   int
}

// NewSecretVec returns an empty secret vector of the given capacity.
func NewSecretVec(capacity int) *SecretVec {
	return &SecretVec{buf: secret.Zeroed(capacity)}
}

// SecretVecFromSecret returns a secret vector holding a copy of s's
// payload. It panics when the payload does not fit.
func SecretVecFromSecret(capacity int, s *secret.Bytes) *SecretVec {
	v := NewSecretVec(capacity)
	v.ExtendFromSecret(s)
	return v
}

// Cap returns the fixed capacity.
func (v *SecretVec) Cap() int { return v.buf.Len() }

// Len returns the current length. Length is not secret.
func (v *SecretVec) Len() int { return v.n }

// Push appends one byte. It panics at capacity.
func (v *SecretVec) Push(b byte) {
	if v.n == v.buf.Len() {
		panic("bytevec: push past capacity")
	}
	v.buf.ExposeNonsecret()[v.n] = b
	v.n++
}

// ExtendFromSecret appends s's payload. It panics on overflow.
func (v *SecretVec) ExtendFromSecret(s *secret.Bytes) {
	if v.n+s.Len() > v.buf.Len() {
		panic("bytevec: extend past capacity")
	}
	copy(v.buf.ExposeNonsecret()[v.n:], s.ExposeNonsecret())
	v.n += s.Len()
}

// ZeroPad fills the unused tail with zero bytes and advances the length to
// the capacity.
func (v *SecretVec) ZeroPad() {
	v.buf.Slice(v.n, v.buf.Len()).FillBytes(0)
	v.n = v.buf.Len()
}

// Secret returns the used prefix as a secret view of the vector's storage.
func (v *SecretVec) Secret() *secret.Bytes { return v.buf.Slice(0, v.n) }

// IntoInner zero-pads and surrenders the full-capacity secret block. The
// vector is left empty with fresh storage.
func (v *SecretVec) IntoInner() *secret.Bytes {
	v.ZeroPad()
	out := v.buf
	v.buf = secret.Zeroed(out.Len())
	v.n = 0
	return out
}

// Destroy zeroizes the storage.
func (v *SecretVec) Destroy() {
	v.buf.Destroy()
	v.n = 0
}

// String renders an opaque placeholder.
func (v *SecretVec) String() string { return "bytevec.SecretVec(_)" }
