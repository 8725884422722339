// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hmac implements the keyed-hash message authentication code
// (FIPS 198-1) over any digest in this library.
//
// The block-padded key lives in secret storage for the MAC's lifetime and
// is zeroized by Destroy; the xored pad blocks exist only transiently and
// are wiped after use.
package hmac

import (
	"github.com/LightningCreations/lc-crypto/bytevec"
	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/digest"
	"github.com/LightningCreations/lc-crypto/secret"
	"github.com/LightningCreations/lc-crypto/subtle"
)

const (
	ipad = 0x36
	opad = 0x5c
)

type macState int

const (
	stateInitial macState = iota
	stateAbsorbing
	stateFinal
)

// HMAC computes a keyed digest. Write the message, then Sum; Reset returns
// to the start of a new message under the same key, ResetWithKey rekeys.
type HMAC struct {
	newDigest func() digest.Raw
	inner     digest.Raw
	key       *bytevec.SecretVec // block-padded key
	buf       *bytevec.Vec       // staged partial message block
	state     macState
}

// New returns an HMAC over the digest the factory produces, keyed by key.
// Keys longer than the digest's block size are digested first, per the
// construction; the derived block-padded key is held in secret storage.
func New(newDigest func() digest.Raw, key []byte) (*HMAC, error) {
	return NewSecret(newDigest, secret.FromBytes(key))
}

// NewSecret is New for a key that is already secret-typed. Ownership of the
// key value is not taken; its bytes are copied into the MAC's own storage.
func NewSecret(newDigest func() digest.Raw, key *secret.Bytes) (*HMAC, error) {
	h := &HMAC{newDigest: newDigest}
	if err := h.setKey(key); err != nil {
		return nil, err
	}
	if err := h.init(); err != nil {
		return nil, err
	}
	return h, nil
}

// setKey derives the block-padded key: shorter keys are zero-padded to the
// block size, longer ones are digested and the digest zero-padded.
func (h *HMAC) setKey(key *secret.Bytes) error {
	bs := h.newDigest().BlockSize()
	padded := bytevec.NewSecretVec(bs)
	if key.Len() <= bs {
		padded.ExtendFromSecret(key)
	} else {
		sum, err := digest.SumSecret(h.newDigest(), key)
		if err != nil {
			return err
		}
		if len(sum) > bs {
			return cryptoerr.New(cryptoerr.InvalidInput, "digest output longer than its block size")
		}
		padded.ExtendFromSecret(secret.New(sum))
	}
	padded.ZeroPad()
	if h.key != nil {
		h.key.Destroy()
	}
	h.key = padded
	return nil
}

// padBlock returns the stored key xored with the given pad byte. The caller
// wipes the block after absorbing it.
func (h *HMAC) padBlock(pad byte) []byte {
	k := h.key.Secret().ExposeNonsecret()
	block := make([]byte, len(k))
	for i, b := range k {
		block[i] = b ^ pad
	}
	return block
}

// init starts the inner pass: a fresh digest absorbing K' xor ipad.
func (h *HMAC) init() error {
	h.inner = h.newDigest()
	block := h.padBlock(ipad)
	err := h.inner.RawUpdate(block)
	subtle.ExplicitZero(block)
	if err != nil {
		return err
	}
	h.buf = bytevec.NewVec(h.inner.BlockSize())
	h.state = stateAbsorbing
	return nil
}

// BlockSize returns the underlying digest's block size in bytes.
func (h *HMAC) BlockSize() int { return h.inner.BlockSize() }

// OutputSize returns the MAC length: the underlying digest's output size.
func (h *HMAC) OutputSize() int { return h.inner.OutputSize() }

// Write absorbs message bytes. It fails with Unsupported once Sum has been
// called, until Reset.
func (h *HMAC) Write(p []byte) (int, error) {
	if h.state != stateAbsorbing {
		return 0, cryptoerr.New(cryptoerr.Unsupported, "write into a finalized mac")
	}
	total := len(p)
	bs := h.inner.BlockSize()
	for len(p) > 0 {
		if h.buf.Len() == bs {
			if err := h.inner.RawUpdate(h.buf.IntoInner()); err != nil {
				return 0, err
			}
		}
		n := min(bs-h.buf.Len(), len(p))
		h.buf.ExtendFromSlice(p[:n])
		p = p[n:]
	}
	return total, nil
}

// Sum finalizes the message and returns the MAC. The first call runs the
// inner finalization; every call recomputes the outer pass, so Sum is
// repeatable.
func (h *HMAC) Sum() ([]byte, error) {
	if h.state == stateAbsorbing {
		if err := h.inner.RawUpdateFinal(h.buf.Bytes()); err != nil {
			return nil, err
		}
		h.state = stateFinal
	}
	innerSum, err := h.inner.Finish()
	if err != nil {
		return nil, err
	}

	outer := h.newDigest()
	block := h.padBlock(opad)
	err = outer.RawUpdate(block)
	subtle.ExplicitZero(block)
	if err != nil {
		return nil, err
	}
	if err := outer.RawUpdateFinal(innerSum); err != nil {
		return nil, err
	}
	return outer.Finish()
}

// Verify recomputes the MAC and compares it with tag in constant time.
func (h *HMAC) Verify(tag []byte) (bool, error) {
	sum, err := h.Sum()
	if err != nil {
		return false, err
	}
	if len(tag) != len(sum) {
		return false, cryptoerr.New(cryptoerr.InvalidInput, "tag length mismatch")
	}
	return subtle.Eq(sum, tag)
}

// Reset returns to the start of a new message under the current key.
func (h *HMAC) Reset() error {
	return h.init()
}

// ResetWithKey rekeys the MAC and returns to the initial state.
func (h *HMAC) ResetWithKey(key *secret.Bytes) error {
	if err := h.setKey(key); err != nil {
		return err
	}
	return h.init()
}

// Destroy zeroizes the stored key. The MAC is unusable afterwards.
func (h *HMAC) Destroy() {
	if h.key != nil {
		h.key.Destroy()
	}
	h.state = stateFinal
}
