// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
)

// A Spec parameterizes a Keccak sponge instance: the rate, the output
// length, the round count, and the domain-separation suffix packed as its
// bits and bit count. The suffix is appended after the message and before
// the first padding bit, so the pad byte is PrepadBits | 1<<PrepadLen.
type Spec struct {
	// Rate is the absorption width in bytes.
	Rate int
	// OutBits is the output length in bits.
	OutBits int
	// Rounds is the number of permutation rounds; 24 for Keccak-f[1600].
	Rounds int
	// PrepadBits holds the domain-separation suffix bits.
	PrepadBits byte
	// PrepadLen is the number of suffix bits.
	PrepadLen uint
	// Fixed marks a fixed-output-length instance, which can only be
	// squeezed once, through Finish.
	Fixed bool
}

// Domain-separation suffixes from FIPS 202: "01" for SHA-3, "11" for
// RawSHAKE, "1111" for SHAKE. The suffix bits are appended first-bit-first
// into the low bits of the pad byte, so SHA-3's "01" packs to 0b10 and the
// pad byte works out to the familiar 0x06, 0x07 and 0x1f values.
const (
	prepadSHA3     = 0b10
	prepadSHA3Len  = 2
	prepadRaw      = 0b11
	prepadRawLen   = 2
	prepadShake    = 0b1111
	prepadShakeLen = 4
)

// NewSpec returns a sponge instance for an arbitrary parameterization.
func NewSpec(s Spec) (*Digest, error) {
	switch {
	case s.Rate <= 0 || s.Rate >= spongeSize || s.Rate%8 != 0:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "rate must be a positive multiple of 8 below the sponge size")
	case s.Rate > maxRate:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "rate above the largest supported rate")
	case s.Rounds <= 0 || s.Rounds > 24:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "round count must be between 1 and 24")
	case s.PrepadLen >= 7:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "domain separator must fit the pad byte")
	case s.OutBits <= 0:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "output length must be positive")
	}
	return &Digest{spec: s}, nil
}

func newSHA3(outBits int) *Digest {
	return &Digest{spec: Spec{
		Rate:       spongeSize - 2*outBits/8,
		OutBits:    outBits,
		Rounds:     24,
		PrepadBits: prepadSHA3,
		PrepadLen:  prepadSHA3Len,
		Fixed:      true,
	}}
}

// New224 creates a new SHA3-224 hash.
func New224() *Digest { return newSHA3(224) }

// New256 creates a new SHA3-256 hash.
func New256() *Digest { return newSHA3(256) }

// New384 creates a new SHA3-384 hash.
func New384() *Digest { return newSHA3(384) }

// New512 creates a new SHA3-512 hash.
func New512() *Digest { return newSHA3(512) }

func newShake(capacityBits, outputLen int, prepad byte, prepadLen uint) *Digest {
	return &Digest{spec: Spec{
		Rate:       spongeSize - capacityBits/8,
		OutBits:    outputLen * 8,
		Rounds:     24,
		PrepadBits: prepad,
		PrepadLen:  prepadLen,
	}}
}

// NewShake128 creates a SHAKE128 instance producing outputLen-byte squeeze
// blocks. Its generic security strength is 128 bits against all attacks
// when at least 32 bytes of output are used.
func NewShake128(outputLen int) *Digest {
	return newShake(256, outputLen, prepadShake, prepadShakeLen)
}

// NewShake256 creates a SHAKE256 instance producing outputLen-byte squeeze
// blocks. Its generic security strength is 256 bits against all attacks
// when at least 64 bytes of output are used.
func NewShake256(outputLen int) *Digest {
	return newShake(512, outputLen, prepadShake, prepadShakeLen)
}

// NewRawShake128 creates a RawSHAKE128 instance, the domain-separation
// variant FIPS 202 reserves for constructions layered on the sponge.
func NewRawShake128(outputLen int) *Digest {
	return newShake(256, outputLen, prepadRaw, prepadRawLen)
}

// NewRawShake256 creates a RawSHAKE256 instance.
func NewRawShake256(outputLen int) *Digest {
	return newShake(512, outputLen, prepadRaw, prepadRawLen)
}

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) error {
	out, err := digest.Sum(NewShake128(len(hash)), data)
	if err != nil {
		return err
	}
	copy(hash, out)
	return nil
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) error {
	out, err := digest.Sum(NewShake256(len(hash)), data)
	if err != nil {
		return err
	}
	copy(hash, out)
	return nil
}
