// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digest defines the streaming contract every hash engine in this
// library implements, and the drivers that feed a message through it.
//
// The raw contract is deliberately low-level: RawUpdate absorbs exactly one
// full block, RawUpdateFinal absorbs the final partial block and performs
// the engine's padding and length encoding, and Finish produces the output
// without disturbing the streaming state. The drivers below do the chunking;
// most callers want Sum or a Writer rather than the raw calls.
package digest

import (
	"github.com/LightningCreations/lc-crypto/bytevec"
	"github.com/LightningCreations/lc-crypto/secret"
)

// Raw is the streaming contract of a hash engine.
type Raw interface {
	// BlockSize returns the input block length in bytes.
	BlockSize() int
	// OutputSize returns the output length in bytes.
	OutputSize() int
	// RawUpdate absorbs exactly one full block. It is called exactly
	// floor(len(message)/BlockSize()) times per message.
	RawUpdate(block []byte) error
	// RawUpdateFinal absorbs the final partial block and performs padding
	// and length encoding. It is called exactly once per message, with a
	// tail shorter than BlockSize(), or exactly BlockSize() bytes when the
	// message length is an exact multiple of the block size.
	RawUpdateFinal(rest []byte) error
	// Finish produces the output. It does not advance streaming state:
	// calling it twice yields the same bytes.
	Finish() ([]byte, error)
}

// Resetable is a Raw digest that can be restored to its initial state.
type Resetable interface {
	Raw
	Reset() error
}

// Keyed is a Raw digest that can be reinitialized from a key of its natural
// initial-vector size.
type Keyed interface {
	Raw
	ResetWithKey(key []byte) error
}

// XOF is a Raw digest with extendable output. NextOutput returns successive
// OutputSize-byte blocks; concatenating everything returned reproduces the
// squeezed stream.
type XOF interface {
	Raw
	NextOutput() ([]byte, error)
}

// Sum feeds msg through d block by block and returns the output.
func Sum(d Raw, msg []byte) ([]byte, error) {
	it := bytevec.NewChunks(msg, d.BlockSize())
	for {
		block, ok := it.Next()
		if !ok {
			break
		}
		if err := d.RawUpdate(block); err != nil {
			return nil, err
		}
	}
	if err := d.RawUpdateFinal(it.Remainder()); err != nil {
		return nil, err
	}
	return d.Finish()
}

// SumSecret is Sum for secret input. The payload is declassified only at
// the call boundary into the engine, which is assumed to respect secrecy.
func SumSecret(d Raw, s *secret.Bytes) ([]byte, error) {
	return Sum(d, s.ExposeNonsecret())
}

// UpdateSecret absorbs one secret-typed full block, unwrapping only at the
// call boundary.
func UpdateSecret(d Raw, block *secret.Bytes) error {
	return d.RawUpdate(block.ExposeNonsecret())
}

// UpdateFinalSecret absorbs a secret-typed final partial block.
func UpdateFinalSecret(d Raw, rest *secret.Bytes) error {
	return d.RawUpdateFinal(rest.ExposeNonsecret())
}
