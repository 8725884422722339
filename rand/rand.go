// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand defines the random-byte producer interface the library
// consumes, an adapter over io.Reader, and a deterministic SHAKE-backed
// generator for expanding a seed into an unbounded byte stream.
//
// The library does not implement a platform entropy source; callers plug
// one in (crypto/rand.Reader through ReaderSource is the usual choice).
package rand

import (
	"errors"
	"io"

	"github.com/LightningCreations/lc-crypto/cryptoerr"
	"github.com/LightningCreations/lc-crypto/secret"
)

// Source produces random bytes. Implementations fill p completely or fail;
// failures propagate to the caller unchanged.
type Source interface {
	NextBytes(p []byte) error
}

// ReaderSource adapts an io.Reader to Source.
type ReaderSource struct {
	R io.Reader
}

// NextBytes fills p from the reader.
func (s ReaderSource) NextBytes(p []byte) error {
	if _, err := io.ReadFull(s.R, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return cryptoerr.Wrap(cryptoerr.UnexpectedEof, err)
		}
		return cryptoerr.Wrap(cryptoerr.Other, err)
	}
	return nil
}

// NewSecret draws n random bytes from src into fresh secret storage.
func NewSecret(src Source, n int) (*secret.Bytes, error) {
	s := secret.Zeroed(n)
	if err := FillSecret(src, s); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// FillSecret overwrites s's payload with random bytes from src. The payload
// is declassified only for the duration of the fill.
func FillSecret(src Source, s *secret.Bytes) error {
	return src.NextBytes(s.ExposeNonsecret())
}
