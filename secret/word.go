// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secret

import (
	"unsafe"

	"github.com/LightningCreations/lc-crypto/subtle"
)

// Unsigned is the set of payload types Word accepts.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Word wraps a single machine word holding secret material. Only operations
// whose timing is independent of the value are provided: wrapping
// arithmetic, bitwise logic, shifts and rotates by plaintext amounts, and
// constant-time equality. Division and remainder are deliberately absent —
// they are data-dependent on most hardware. Ordering does not exist.
//
// Word values are transient compute values passed by value; durable secret
// storage belongs in Bytes.
type Word[T Unsigned] struct {
	v T
}

// NewWord wraps v.
func NewWord[T Unsigned](v T) Word[T] { return Word[T]{v: v} }

// Add returns w + o with wrapping semantics.
func (w Word[T]) Add(o Word[T]) Word[T] { return Word[T]{v: w.v + o.v} }

// Sub returns w - o with wrapping semantics.
func (w Word[T]) Sub(o Word[T]) Word[T] { return Word[T]{v: w.v - o.v} }

// Mul returns w * o with wrapping semantics.
func (w Word[T]) Mul(o Word[T]) Word[T] { return Word[T]{v: w.v * o.v} }

func (w Word[T]) And(o Word[T]) Word[T] { return Word[T]{v: w.v & o.v} }
func (w Word[T]) Or(o Word[T]) Word[T]  { return Word[T]{v: w.v | o.v} }
func (w Word[T]) Xor(o Word[T]) Word[T] { return Word[T]{v: w.v ^ o.v} }
func (w Word[T]) Not() Word[T]          { return Word[T]{v: ^w.v} }

// Shl shifts left by a plaintext amount.
func (w Word[T]) Shl(k uint) Word[T] { return Word[T]{v: w.v << k} }

// Shr shifts right (logical) by a plaintext amount.
func (w Word[T]) Shr(k uint) Word[T] { return Word[T]{v: w.v >> k} }

// RotateLeft rotates by a plaintext amount.
func (w Word[T]) RotateLeft(k uint) Word[T] {
	bits := uint(unsafe.Sizeof(w.v)) * 8
	k &= bits - 1
	return Word[T]{v: w.v<<k | w.v>>(bits-k)}
}

// Equal compares in constant time.
func (w Word[T]) Equal(o Word[T]) bool {
	d := uint64(w.v ^ o.v)
	d |= d >> 32
	d |= d >> 16
	d |= d >> 8
	return subtle.MustEq([]byte{byte(d)}, []byte{0})
}

// ExposeNonsecret declassifies the word.
func (w Word[T]) ExposeNonsecret() T { return w.v }

// String renders an opaque placeholder.
func (w Word[T]) String() string { return "secret.Word(_)" }

// GoString renders the same placeholder for %#v.
func (w Word[T]) GoString() string { return w.String() }

// Saturating selects saturating arithmetic for a secret word. It carries the
// same restrictions as Word.
type Saturating[T Unsigned] struct {
	v T
}

// NewSaturating wraps v.
func NewSaturating[T Unsigned](v T) Saturating[T] { return Saturating[T]{v: v} }

// Add returns w + o, clamping at the maximum value. The clamp is computed
// with a branch-free select.
func (w Saturating[T]) Add(o Saturating[T]) Saturating[T] {
	sum := w.v + o.v
	var max T
	max = ^max
	// sum < w.v iff the addition wrapped.
	return Saturating[T]{v: selectWord(lessThan(sum, w.v), max, sum)}
}

// Sub returns w - o, clamping at zero.
func (w Saturating[T]) Sub(o Saturating[T]) Saturating[T] {
	diff := w.v - o.v
	return Saturating[T]{v: selectWord(lessThan(w.v, o.v), 0, diff)}
}

// Word discards the saturating marker.
func (w Saturating[T]) Word() Word[T] { return Word[T]{v: w.v} }

// ExposeNonsecret declassifies the word.
func (w Saturating[T]) ExposeNonsecret() T { return w.v }

// String renders an opaque placeholder.
func (w Saturating[T]) String() string { return "secret.Saturating(_)" }

// GoString renders the same placeholder for %#v.
func (w Saturating[T]) GoString() string { return w.String() }

// lessThan returns 1 when a < b, else 0, without a data-dependent branch.
func lessThan[T Unsigned](a, b T) T {
	bits := uint(unsafe.Sizeof(a)) * 8
	// Classic borrow extraction: the top bit of the borrow expression is
	// set exactly when a < b for unsigned operands.
	return (((^a) & b) | (((^a) | b) & (a - b))) >> (bits - 1)
}

// selectWord returns a when cond is 1 and b when cond is 0.
func selectWord[T Unsigned](cond, a, b T) T {
	mask := -cond
	return (a & mask) | (b &^ mask)
}
