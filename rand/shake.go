// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"github.com/LightningCreations/lc-crypto/bytevec"
	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
	"github.com/LightningCreations/lc-crypto/sha3"
)

// shakeBlock is the squeeze granularity of the generator.
const shakeBlock = 64

// ShakeGenerator expands a seed into an unbounded deterministic byte stream
// by squeezing a SHAKE256 sponge. It is a pseudo-random generator, not an
// entropy source: equal seeds produce equal streams.
type ShakeGenerator struct {
	x    digest.XOF
	buf  []byte
	used int
}

// NewShakeGenerator absorbs seed and prepares the generator for squeezing.
func NewShakeGenerator(seed []byte) (*ShakeGenerator, error) {
	x := sha3.NewShake256(shakeBlock)
	it := bytevec.NewChunks(seed, x.BlockSize())
	for {
		block, ok := it.Next()
		if !ok {
			break
		}
		if err := x.RawUpdate(block); err != nil {
			return nil, err
		}
	}
	if err := x.RawUpdateFinal(it.Remainder()); err != nil {
		return nil, err
	}
	return &ShakeGenerator{x: x}, nil
}

// NewShakeGeneratorFromSource seeds a generator with n bytes drawn from an
// external entropy source.
func NewShakeGeneratorFromSource(src Source, n int) (*ShakeGenerator, error) {
	if n <= 0 {
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "seed length must be positive")
	}
	seed := make([]byte, n)
	if err := src.NextBytes(seed); err != nil {
		return nil, err
	}
	return NewShakeGenerator(seed)
}

// NextBytes fills p with the next bytes of the squeezed stream.
// ShakeGenerator implements Source.
func (g *ShakeGenerator) NextBytes(p []byte) error {
	for len(p) > 0 {
		if g.used == len(g.buf) {
			block, err := g.x.NextOutput()
			if err != nil {
				return err
			}
			g.buf = block
			g.used = 0
		}
		n := copy(p, g.buf[g.used:])
		g.used += n
		p = p[n:]
	}
	return nil
}

var _ Source = (*ShakeGenerator)(nil)
