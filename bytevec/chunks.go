// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytevec provides the fixed-size byte-block plumbing the digest
// engines are built on: chunked iteration over a message and fixed-capacity
// vectors used to stage tail blocks during padding.
package bytevec

// Chunks iterates over consecutive size-byte windows of a slice, from either
// end, and exposes the trailing partial window as the remainder. The
// iterator is exact-size and restartable; the windows it yields borrow the
// underlying slice.
type Chunks struct {
	p    []byte
	size int
	i, j int // next front window index, one past the last back window index
}

// NewChunks returns an iterator over p in size-byte windows. It panics when
// size < 1.
func NewChunks(p []byte, size int) *Chunks {
	if size < 1 {
		panic("bytevec: chunk size must be at least 1")
	}
	c := &Chunks{p: p, size: size}
	c.Reset()
	return c
}

// Reset restarts iteration from both ends.
func (c *Chunks) Reset() {
	c.i = 0
	c.j = len(c.p) / c.size
}

// Len reports the exact number of full windows not yet yielded.
func (c *Chunks) Len() int { return c.j - c.i }

// Next yields the next window from the front, or nil, false when the front
// and back cursors have met.
func (c *Chunks) Next() ([]byte, bool) {
	if c.i >= c.j {
		return nil, false
	}
	w := c.p[c.i*c.size : (c.i+1)*c.size]
	c.i++
	return w, true
}

// NextBack yields the next window from the back.
func (c *Chunks) NextBack() ([]byte, bool) {
	if c.i >= c.j {
		return nil, false
	}
	c.j--
	return c.p[c.j*c.size : (c.j+1)*c.size], true
}

// Remainder returns the trailing len(p) mod size bytes. It is independent of
// the cursors and may be called at any point.
func (c *Chunks) Remainder() []byte {
	full := len(c.p) / c.size
	return c.p[full*c.size:]
}
