// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions and
// the SHAKE and RawSHAKE extendable-output functions defined by FIPS-202.
//
// All of them use the "sponge" construction over the Keccak permutation.
// For a detailed specification, see http://keccak.noekeon.org/
//
// # Guidance
//
// If you aren't sure what function you need, use SHAKE256 with at least
// 64 bytes of output. For a secret-key MAC, use the hmac package rather
// than keying a sponge by hand.
//
// # Security strengths
//
//	          output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//
//	          output  collision-resistance  preimage-resistance
//	SHAKE128  >= 32B              128 bits             128 bits
//	SHAKE256  >= 64B              256 bits             256 bits
//
// (Requesting more than 32B or 64B of output from SHAKE128 or SHAKE256
// doesn't increase their collision-resistance above 128 or 256 bits.)
//
// # The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random
// permutation, by applying the permutation to a state of "rate + capacity"
// bytes, but hiding "capacity" of the bytes.
//
// A sponge starts out with its state zero. To hash an input, "rate" bytes
// at a time are xored into the sponge's state and the permutation is
// applied, until all input has been "absorbed". The input is then padded.
// The digest is "squeezed" from the sponge by the same method, except that
// output is copied out.
//
//	up to "rate" bytes xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	:::::::::::::::::Keccak-F1600 permutation:::::::::::::
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//	up to "rate" bytes copied out
//
// In general:
//
//	security_strength == capacity / 2
//	capacity + rate == permutation_width
//
// Since the Keccak-f[1600] permutation is 1600 bits (200 bytes) wide,
//
//	security_strength == (1600 - rate) / 2
//
// # Streaming
//
// The Digest type implements the library's raw streaming contract: full
// rate-sized blocks through RawUpdate, the tail through RawUpdateFinal,
// output through Finish. Arbitrary write patterns go through a
// digest.Writer; the extendable-output instances additionally squeeze an
// unbounded stream through NextOutput.
package sha3
