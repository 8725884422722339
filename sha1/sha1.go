// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha1 implements the FIPS 180-4 SHA-1 hash function.
//
// SHA-1 is cryptographically broken and must not be used where collision
// resistance matters. It is kept for interoperation with protocols that
// still require it, such as HMAC-SHA-1.
package sha1

import (
	"math/bits"

	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
)

const (
	// BlockSize is the SHA-1 input block length in bytes.
	BlockSize = 64
	// Size is the SHA-1 output length in bytes.
	Size = 20
)

var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// Digest is a SHA-1 state: five chaining words and the committed byte count.
type Digest struct {
	h [5]uint32
	n uint64
}

// New returns a SHA-1 digest.
func New() *Digest {
	return &Digest{h: iv}
}

// BlockSize returns the block length in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// OutputSize returns the output length in bytes.
func (d *Digest) OutputSize() int { return Size }

// RawUpdate absorbs one full block.
func (d *Digest) RawUpdate(block []byte) error {
	if len(block) != BlockSize {
		return cryptoerr.New(cryptoerr.InvalidInput, "raw update requires exactly one block")
	}
	d.n += BlockSize

	var w [16]uint32
	for i := range w {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 |
			uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for i := 0; i < 80; i++ {
		if i >= 16 {
			w[i&15] = bits.RotateLeft32(w[(i+13)&15]^w[(i+8)&15]^w[(i+2)&15]^w[i&15], 1)
		}
		var f, k uint32
		switch {
		case i < 20:
			f, k = (b&c)|(^b&dd), 0x5a827999
		case i < 40:
			f, k = b^c^dd, 0x6ed9eba1
		case i < 60:
			f, k = (b&c)^(b&dd)^(c&dd), 0x8f1bbcdc
		default:
			f, k = b^c^dd, 0xca62c1d6
		}
		temp := bits.RotateLeft32(a, 5) + f + e + k + w[i&15]
		e = dd
		dd = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = temp
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	return nil
}

// RawUpdateFinal absorbs the final partial block and performs the 0x80 /
// zero / 8-byte big-endian bit-length padding.
func (d *Digest) RawUpdateFinal(rest []byte) error {
	if len(rest) > BlockSize {
		return cryptoerr.New(cryptoerr.InvalidInput, "final block longer than the block size")
	}
	if len(rest) == BlockSize {
		if err := d.RawUpdate(rest); err != nil {
			return err
		}
		rest = nil
	}
	bitcount := (d.n + uint64(len(rest))) << 3

	fblock := make([]byte, BlockSize)
	copy(fblock, rest)
	fblock[len(rest)] = 0x80
	if len(rest) > BlockSize-9 {
		if err := d.RawUpdate(fblock); err != nil {
			return err
		}
		fblock = make([]byte, BlockSize)
	}
	for i := 0; i < 8; i++ {
		fblock[BlockSize-1-i] = byte(bitcount >> (8 * i))
	}
	return d.RawUpdate(fblock)
}

// Finish serializes the chaining words big-endian.
func (d *Digest) Finish() ([]byte, error) {
	out := make([]byte, Size)
	for i, w := range d.h {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out, nil
}

// Reset restores the initial vector.
func (d *Digest) Reset() error {
	d.h = iv
	d.n = 0
	return nil
}

var _ digest.Resetable = (*Digest)(nil)
