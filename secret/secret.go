// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secret wraps byte payloads that may hold confidential material so
// that only opaque operations can be performed on them. Equality is
// constant-time, formatting renders an opaque placeholder, ordering and
// hashing do not exist, and storage is zeroized on destruction.
//
// Declassification is always explicit: the only paths from a secret value to
// plain bytes are ExposeNonsecret and IntoInnerNonsecret, both named so that
// a grep over a codebase finds every declassification site.
package secret

import (
	"runtime"

	"github.com/LightningCreations/lc-crypto/subtle"
)

// Bytes exclusively owns a byte payload. The zero value is an empty secret;
// non-empty values are created with New, FromBytes or Zeroed.
//
// Destruction is explicit: callers defer Destroy when the value's lifetime
// is lexical. A runtime finalizer backstops handles that are dropped without
// it, which is best-effort only — the finalizer runs at the collector's
// discretion, not at end of scope.
type Bytes struct {
	b []byte
}

// New takes ownership of b. The caller must not retain or reuse b; the
// returned value is now the only owner of that storage.
func New(b []byte) *Bytes {
	s := &Bytes{b: b}
	runtime.SetFinalizer(s, (*Bytes).Destroy)
	return s
}

// FromBytes copies b into fresh secret storage.
func FromBytes(b []byte) *Bytes {
	p := make([]byte, len(b))
	copy(p, b)
	return New(p)
}

// Zeroed returns an n-byte secret of all zero bytes.
func Zeroed(n int) *Bytes {
	return New(make([]byte, n))
}

// Len returns the payload length. Length is not secret.
func (s *Bytes) Len() int { return len(s.b) }

// Set overwrites the payload with v without an intermediate zeroing pass.
// It panics unless len(v) == s.Len(): a secret never changes size in place.
func (s *Bytes) Set(v []byte) {
	if len(v) != len(s.b) {
		panic("secret: Set with mismatched length")
	}
	copy(s.b, v)
}

// CopyFrom overwrites the payload with o's payload; same contract as Set.
func (s *Bytes) CopyFrom(o *Bytes) {
	s.Set(o.b)
}

// FillBytes overwrites every payload byte with val through the explicit
// write primitive.
func (s *Bytes) FillBytes(val byte) {
	subtle.ExplicitFill(s.b, val)
}

// Equal compares two secrets byte-wise in constant time. Secrets of
// different lengths are unequal; the comparison itself reads every byte.
func (s *Bytes) Equal(o *Bytes) bool {
	if len(s.b) != len(o.b) {
		return false
	}
	return subtle.MustEq(s.b, o.b)
}

// Slice returns a view of s[i:j] that aliases s's storage and remains
// secret. Destroying the parent destroys the view's bytes.
func (s *Bytes) Slice(i, j int) *Bytes {
	// No finalizer on views: the parent owns the storage and must stay
	// reachable for as long as the view is used.
	return &Bytes{b: s.b[i:j]}
}

// Index returns the one-byte secret view s[i:i+1].
func (s *Bytes) Index(i int) *Bytes {
	return s.Slice(i, i+1)
}

// ExposeNonsecret declassifies the payload, returning the live backing
// bytes. The returned slice aliases secret storage: it is invalidated by
// Destroy and must not outlive s.
func (s *Bytes) ExposeNonsecret() []byte {
	return s.b
}

// IntoInnerNonsecret declassifies by moving the payload out. s is left
// empty and its finalizer cleared; the returned bytes are the caller's to
// manage and are not zeroized.
func (s *Bytes) IntoInnerNonsecret() []byte {
	b := s.b
	s.b = nil
	runtime.SetFinalizer(s, nil)
	return b
}

// Destroy zeroizes the payload through the explicit write primitive and
// releases it. Safe to call more than once.
func (s *Bytes) Destroy() {
	if s.b != nil {
		subtle.ExplicitZero(s.b)
		s.b = nil
	}
	runtime.SetFinalizer(s, nil)
}

// String renders an opaque placeholder. No format verb reveals contents.
func (s *Bytes) String() string { return "secret.Bytes(_)" }

// GoString renders the same placeholder for %#v.
func (s *Bytes) GoString() string { return s.String() }
