// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"

	"github.com/LightningCreations/lc-crypto/bytevec"
	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
)

// spongeDirection indicates the direction bytes are flowing through the
// sponge.
type spongeDirection int

const (
	// spongeAbsorbing indicates the sponge is absorbing input.
	spongeAbsorbing spongeDirection = iota
	// spongeSqueezing indicates the sponge is being squeezed.
	spongeSqueezing
)

const (
	// spongeSize is the Keccak-f[1600] state width in bytes.
	spongeSize = 200
	// maxRate bounds the output buffer; SHAKE128's 168-byte rate is the
	// largest any standard instance uses.
	maxRate = 168
)

// Digest is a Keccak sponge instance parameterized by a Spec. It implements
// the raw digest contract; the SHAKE instances additionally implement the
// extendable-output contract.
type Digest struct {
	spec Spec

	a   [5][5]uint64 // main state of the hash
	out [maxRate]byte
	off int // squeeze position within out

	dir spongeDirection
}

// Spec returns the parameterization this instance was built with.
func (d *Digest) Spec() Spec { return d.spec }

// BlockSize returns the rate: the number of bytes absorbed or squeezed per
// invocation of the permutation.
func (d *Digest) BlockSize() int { return d.spec.Rate }

// OutputSize returns the output length in bytes. For the extendable-output
// instances this is the NextOutput block size.
func (d *Digest) OutputSize() int { return (d.spec.OutBits + 7) / 8 }

// SpongeSize returns the state width in bytes; 200 for Keccak-f[1600].
func (d *Digest) SpongeSize() int { return spongeSize }

// SecurityStrength returns the generic security strength of this instance
// in bits: 8 * capacity / 2.
func (d *Digest) SecurityStrength() int { return 8 * (spongeSize - d.spec.Rate) / 2 }

// xorIn xors a rate-sized block into the state, lane by lane.
func (d *Digest) xorIn(block []byte) {
	for i := 0; i < len(block)/8; i++ {
		d.a[i%5][i/5] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

// extract copies the rate portion of the state into the output buffer.
func (d *Digest) extract() {
	for i := 0; i < d.spec.Rate/8; i++ {
		binary.LittleEndian.PutUint64(d.out[i*8:], d.a[i%5][i/5])
	}
}

func (d *Digest) permute() {
	keccakP(&d.a, d.spec.Rounds)
}

// RawUpdate absorbs exactly one rate-sized block.
func (d *Digest) RawUpdate(block []byte) error {
	if d.dir != spongeAbsorbing {
		return cryptoerr.New(cryptoerr.Unsupported, "absorb after squeezing has begun")
	}
	if len(block) != d.spec.Rate {
		return cryptoerr.New(cryptoerr.InvalidInput, "raw update requires exactly one rate of input")
	}
	d.xorIn(block)
	d.permute()
	return nil
}

// RawUpdateFinal absorbs the final partial block: the domain-separation
// suffix and the first padding bit are packed into one byte after the tail,
// the block is zero-filled to the rate, and the final bit of the pad10*1
// rule is set in the last byte.
func (d *Digest) RawUpdateFinal(rest []byte) error {
	if d.dir != spongeAbsorbing {
		return cryptoerr.New(cryptoerr.Unsupported, "absorb after squeezing has begun")
	}
	if len(rest) > d.spec.Rate {
		return cryptoerr.New(cryptoerr.InvalidInput, "final block longer than the rate")
	}
	if len(rest) == d.spec.Rate {
		if err := d.RawUpdate(rest); err != nil {
			return err
		}
		rest = nil
	}

	v := bytevec.VecFromSlice(d.spec.Rate, rest)
	v.Push(d.spec.PrepadBits | 1<<d.spec.PrepadLen)
	block := v.IntoInner()
	block[d.spec.Rate-1] |= 0x80

	d.xorIn(block)
	d.permute()
	d.dir = spongeSqueezing
	d.extract()
	d.off = 0
	return nil
}

// squeeze copies output from the state into dst, permuting whenever a full
// rate of output has been consumed.
func (d *Digest) squeeze(dst []byte) {
	for n := 0; n < len(dst); {
		if d.off == d.spec.Rate {
			d.permute()
			d.extract()
			d.off = 0
		}
		c := copy(dst[n:], d.out[d.off:d.spec.Rate])
		d.off += c
		n += c
	}
}

// maskFinal clears the excess high bits of the last output byte when the
// output bit-length is not a whole number of bytes.
func (d *Digest) maskFinal(out []byte) {
	if t := len(out)*8 - d.spec.OutBits; t > 0 {
		out[len(out)-1] &= 0xFF >> t
	}
}

// Finish squeezes the output length from a copy of the state, so the
// streaming state is undisturbed: callers can Finish and then continue
// squeezing with NextOutput, and Finish twice yields the same bytes.
func (d *Digest) Finish() ([]byte, error) {
	dup := *d
	if dup.dir == spongeAbsorbing {
		if err := dup.RawUpdateFinal(nil); err != nil {
			return nil, err
		}
	}
	out := make([]byte, dup.OutputSize())
	dup.squeeze(out)
	dup.maskFinal(out)
	return out, nil
}

// NextOutput squeezes the next OutputSize bytes from the live state.
// Concatenating successive calls reproduces the squeezed stream. The
// fixed-output instances do not support it.
func (d *Digest) NextOutput() ([]byte, error) {
	if d.spec.Fixed {
		return nil, cryptoerr.New(cryptoerr.Unsupported, "fixed-output instances squeeze once through Finish")
	}
	if d.dir == spongeAbsorbing {
		if err := d.RawUpdateFinal(nil); err != nil {
			return nil, err
		}
	}
	out := make([]byte, d.OutputSize())
	d.squeeze(out)
	return out, nil
}

// Reset clears the state and the output buffer and returns the sponge to
// the absorbing direction.
func (d *Digest) Reset() error {
	for x := range d.a {
		for y := range d.a[x] {
			d.a[x][y] = 0
		}
	}
	for i := range d.out {
		d.out[i] = 0
	}
	d.off = 0
	d.dir = spongeAbsorbing
	return nil
}

var (
	_ digest.Resetable = (*Digest)(nil)
	_ digest.XOF       = (*Digest)(nil)
)
