// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha2

import (
	"strconv"

	"github.com/LightningCreations/lc-crypto/cryptoerr"
)

// ivGenXor is xored into each SHA-512 IV word to form the IV-generation
// function of FIPS 180-4 section 5.3.6.
const ivGenXor = 0xa5a5a5a5a5a5a5a5

// New512T returns a SHA-512/t digest for 0 < t < 512, t != 384. For t of
// 224 and 256 the published initial vectors are used directly; any other t
// derives its IV by hashing "SHA-512/t" with the modified SHA-512 IV.
func New512T(t int) (*Digest[uint64], error) {
	switch {
	case t <= 0 || t >= 512:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "SHA-512/t requires 0 < t < 512")
	case t == 384:
		return nil, cryptoerr.New(cryptoerr.InvalidInput, "SHA-512/384 is not defined; use SHA-384")
	case t == 224:
		return New512_224(), nil
	case t == 256:
		return New512_256(), nil
	}

	var modified [8]uint64
	for i, w := range iv512 {
		modified[i] = w ^ ivGenXor
	}
	gen := newDigest(params64, modified, 512)
	if err := gen.RawUpdateFinal([]byte("SHA-512/" + strconv.Itoa(t))); err != nil {
		return nil, err
	}
	ivBytes, err := gen.Finish()
	if err != nil {
		return nil, err
	}

	var iv [8]uint64
	for i := range iv {
		iv[i] = getWord[uint64](ivBytes[i*8:], 8)
	}
	return newDigest(params64, iv, t), nil
}
