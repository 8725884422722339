// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha2 implements the FIPS 180-4 SHA-2 family with a single engine
// generic over the word width: SHA-224 and SHA-256 on 32-bit words, SHA-384,
// SHA-512 and the truncated SHA-512/t family on 64-bit words.
//
// The length field appended during padding is 8 bytes for both widths, so
// the 64-bit variants accept messages shorter than 2^61 bytes; for any such
// message the encoding coincides with the 16-byte field FIPS prescribes,
// because the high-order bytes are part of the zero padding.
package sha2

import (
	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
)

// Word is the machine-word width the engine is instantiated at.
type Word interface {
	~uint32 | ~uint64
}

// params carries everything that distinguishes the two widths: the round
// constant table (whose length is also the round count) and the rotation
// sets of the message-schedule and compression mixing functions. The third
// entry of each sigma set is a plain shift, not a rotation.
type params[W Word] struct {
	k        []W
	wordSize int
	s0, s1   [3]uint // σ0, σ1
	c0, c1   [3]uint // Σ0, Σ1
}

var params32 = &params[uint32]{
	k:        k256[:],
	wordSize: 4,
	s0:       [3]uint{7, 18, 3},
	s1:       [3]uint{17, 19, 10},
	c0:       [3]uint{2, 13, 22},
	c1:       [3]uint{6, 11, 25},
}

var params64 = &params[uint64]{
	k:        k512[:],
	wordSize: 8,
	s0:       [3]uint{1, 8, 7},
	s1:       [3]uint{19, 61, 6},
	c0:       [3]uint{28, 34, 39},
	c1:       [3]uint{14, 18, 41},
}

// Digest is a SHA-2 state: eight chaining words, the committed byte count,
// and the output length the instance was built for.
type Digest[W Word] struct {
	h       [8]W
	iv      [8]W
	n       uint64
	p       *params[W]
	outBits int
}

func newDigest[W Word](p *params[W], iv [8]W, outBits int) *Digest[W] {
	return &Digest[W]{h: iv, iv: iv, p: p, outBits: outBits}
}

// New224 returns a SHA-224 digest.
func New224() *Digest[uint32] { return newDigest(params32, iv224, 224) }

// New256 returns a SHA-256 digest.
func New256() *Digest[uint32] { return newDigest(params32, iv256, 256) }

// New384 returns a SHA-384 digest.
func New384() *Digest[uint64] { return newDigest(params64, iv384, 384) }

// New512 returns a SHA-512 digest.
func New512() *Digest[uint64] { return newDigest(params64, iv512, 512) }

// New512_224 returns a SHA-512/224 digest.
func New512_224() *Digest[uint64] { return newDigest(params64, iv512_224, 224) }

// New512_256 returns a SHA-512/256 digest.
func New512_256() *Digest[uint64] { return newDigest(params64, iv512_256, 256) }

// BlockSize returns the block length: 64 bytes on 32-bit words, 128 on
// 64-bit words.
func (d *Digest[W]) BlockSize() int { return 16 * d.p.wordSize }

// OutputSize returns the output length in bytes.
func (d *Digest[W]) OutputSize() int { return (d.outBits + 7) / 8 }

func rotr[W Word](x W, k uint, bits uint) W {
	return x>>k | x<<(bits-k)
}

func getWord[W Word](b []byte, size int) W {
	var w W
	for i := 0; i < size; i++ {
		w = w<<8 | W(b[i])
	}
	return w
}

func putWord[W Word](b []byte, w W, size int) {
	for i := size - 1; i >= 0; i-- {
		b[i] = byte(w)
		w >>= 8
	}
}

// RawUpdate absorbs one full block.
func (d *Digest[W]) RawUpdate(block []byte) error {
	if len(block) != d.BlockSize() {
		return cryptoerr.New(cryptoerr.InvalidInput, "raw update requires exactly one block")
	}
	d.n += uint64(len(block))

	ws := d.p.wordSize
	bits := uint(ws) * 8

	var w [16]W
	for i := range w {
		w[i] = getWord[W](block[i*ws:], ws)
	}

	a, b, c, dd := d.h[0], d.h[1], d.h[2], d.h[3]
	e, f, g, h := d.h[4], d.h[5], d.h[6], d.h[7]

	// Message expansion and compression run interleaved over a 16-word
	// ring: round i consumes w[i mod 16] and immediately overwrites it with
	// the word round i+16 will need.
	for i, k := range d.p.k {
		c1 := rotr(e, d.p.c1[0], bits) ^ rotr(e, d.p.c1[1], bits) ^ rotr(e, d.p.c1[2], bits)
		ch := (e & f) ^ (^e & g)
		temp1 := h + c1 + ch + k + w[i&15]
		c0 := rotr(a, d.p.c0[0], bits) ^ rotr(a, d.p.c0[1], bits) ^ rotr(a, d.p.c0[2], bits)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := c0 + maj

		w1, w2 := w[(i+1)&15], w[(i+14)&15]
		s0 := rotr(w1, d.p.s0[0], bits) ^ rotr(w1, d.p.s0[1], bits) ^ (w1 >> d.p.s0[2])
		s1 := rotr(w2, d.p.s1[0], bits) ^ rotr(w2, d.p.s1[1], bits) ^ (w2 >> d.p.s1[2])
		w[i&15] += s0 + w[(i+9)&15] + s1

		h = g
		g = f
		f = e
		e = dd + temp1
		dd = c
		c = b
		b = a
		a = temp1 + temp2
	}

	for i, v := range [8]W{a, b, c, dd, e, f, g, h} {
		d.h[i] += v
	}
	return nil
}

// RawUpdateFinal absorbs the final partial block, appends the 0x80 marker,
// zero padding, and the big-endian bit length. A second block is used only
// when the tail leaves fewer than 2*wordSize+1 bytes free.
func (d *Digest[W]) RawUpdateFinal(rest []byte) error {
	bs := d.BlockSize()
	if len(rest) > bs {
		return cryptoerr.New(cryptoerr.InvalidInput, "final block longer than the block size")
	}
	if len(rest) == bs {
		if err := d.RawUpdate(rest); err != nil {
			return err
		}
		rest = nil
	}
	bitcount := (d.n + uint64(len(rest))) << 3

	fblock := make([]byte, bs)
	copy(fblock, rest)
	fblock[len(rest)] = 0x80
	if len(rest) > bs-(2*d.p.wordSize+1) {
		// No room for the length field; spill into a second block.
		if err := d.RawUpdate(fblock); err != nil {
			return err
		}
		fblock = make([]byte, bs)
	}
	putWord(fblock[bs-8:], uint64(bitcount), 8)
	return d.RawUpdate(fblock)
}

// Finish serializes the chaining words big-endian, truncates to the output
// length, and masks excess high bits of the last byte when the output
// bit-length is not a multiple of 8.
func (d *Digest[W]) Finish() ([]byte, error) {
	ws := d.p.wordSize
	raw := make([]byte, 8*ws)
	for i, w := range d.h {
		putWord(raw[i*ws:], w, ws)
	}
	out := raw[:d.OutputSize()]
	if t := d.OutputSize()*8 - d.outBits; t > 0 {
		out[len(out)-1] &= 0xFF >> t
	}
	return out, nil
}

// Reset restores the constructor's initial vector.
func (d *Digest[W]) Reset() error {
	d.h = d.iv
	d.n = 0
	return nil
}

// ResetWithKey reinitializes from a key of the digest's natural IV size
// (32 bytes on 32-bit words, 64 on 64-bit words), parsed as eight
// big-endian words.
func (d *Digest[W]) ResetWithKey(key []byte) error {
	ws := d.p.wordSize
	if len(key) != 8*ws {
		return cryptoerr.New(cryptoerr.InvalidInput, "key must match the initial-vector size")
	}
	for i := range d.h {
		d.h[i] = getWord[W](key[i*ws:], ws)
	}
	d.n = 0
	return nil
}

var (
	_ digest.Resetable = (*Digest[uint32])(nil)
	_ digest.Keyed     = (*Digest[uint64])(nil)
)
