// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digest

import (
	"github.com/LightningCreations/lc-crypto/bytevec"
	"github.com/LightningCreations/lc-crypto/cryptoerr"
)

// Writer adapts a Raw digest to io.Writer by buffering partial blocks, so a
// message can arrive in arbitrarily sized pieces. Close it with Sum.
type Writer struct {
	d    Raw
	buf  *bytevec.Vec
	done bool
}

// NewWriter returns a streaming writer over d.
func NewWriter(d Raw) *Writer {
	return &Writer{d: d, buf: bytevec.NewVec(d.BlockSize())}
}

// Write absorbs p. It fails with Unsupported after Sum has been called.
func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, cryptoerr.New(cryptoerr.Unsupported, "write into a finalized digest")
	}
	total := len(p)
	bs := w.d.BlockSize()

	// Top up the staged partial block first.
	if w.buf.Len() > 0 {
		n := min(bs-w.buf.Len(), len(p))
		w.buf.ExtendFromSlice(p[:n])
		p = p[n:]
		if w.buf.Len() == bs && len(p) > 0 {
			if err := w.d.RawUpdate(w.buf.IntoInner()); err != nil {
				return 0, err
			}
		}
	}

	// A full staged block is only flushed once more input arrives: the tail
	// block of the message must go through RawUpdateFinal, not RawUpdate.
	it := bytevec.NewChunks(p, bs)
	for it.Len() > 1 || (it.Len() == 1 && len(it.Remainder()) > 0) {
		block, _ := it.Next()
		if err := w.d.RawUpdate(block); err != nil {
			return 0, err
		}
	}
	if block, ok := it.Next(); ok {
		w.buf.ExtendFromSlice(block)
	}
	w.buf.ExtendFromSlice(it.Remainder())
	return total, nil
}

// Sum finalizes the message and returns the digest output.
func (w *Writer) Sum() ([]byte, error) {
	if !w.done {
		if err := w.d.RawUpdateFinal(w.buf.Bytes()); err != nil {
			return nil, err
		}
		w.done = true
	}
	return w.d.Finish()
}

// Reset restarts the writer for a new message. The underlying digest must
// be Resetable.
func (w *Writer) Reset() error {
	r, ok := w.d.(Resetable)
	if !ok {
		return cryptoerr.New(cryptoerr.Unsupported, "underlying digest cannot reset")
	}
	if err := r.Reset(); err != nil {
		return err
	}
	w.buf = bytevec.NewVec(w.d.BlockSize())
	w.done = false
	return nil
}
