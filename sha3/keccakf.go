// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "math/bits"

// The permutation state is a 5x5 matrix of 64-bit lanes, indexed a[x][y].
// Lane (x, y) occupies rate bytes 8*(x+5y) .. 8*(x+5y)+7, little-endian,
// identically during absorption and squeezing.

// rhoOffsets holds the rotation amount of step rho for lane (x, y).
var rhoOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// roundConstants holds the iota constants of the 24 Keccak-f[1600] rounds.
// deriveRoundConstants regenerates this table from the LFSR; the two are
// checked against each other in the tests.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// lfsr86540 steps the degree-8 LFSR (x^8 + x^6 + x^5 + x^4 + 1) and reports
// the bit it produced.
func lfsr86540(state *byte) bool {
	result := *state&0x01 != 0
	if *state&0x80 != 0 {
		*state = *state<<1 ^ 0x71
	} else {
		*state <<= 1
	}
	return result
}

// deriveRoundConstants regenerates the iota constants: round ir takes the
// LFSR output at bit positions 2^j - 1 for j in 0..6.
func deriveRoundConstants() [24]uint64 {
	var rcs [24]uint64
	state := byte(1)
	for ir := range rcs {
		var rc uint64
		for j := 0; j <= 6; j++ {
			if lfsr86540(&state) {
				rc |= 1 << ((1 << j) - 1)
			}
		}
		rcs[ir] = rc
	}
	return rcs
}

// keccakP applies the last `rounds` rounds of Keccak-f[1600], the
// composition theta, rho, pi, chi, iota. rounds is 24 for the full
// permutation.
func keccakP(a *[5][5]uint64, rounds int) {
	for r := 24 - rounds; r < 24; r++ {
		// theta: xor each lane with the parity of its left-neighbor column
		// and the rotated parity of its right-neighbor column.
		var c, dcol [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
		}
		for x := 0; x < 5; x++ {
			dcol[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x][y] ^= dcol[x]
			}
		}

		// rho and pi in one pass: rotate each lane and move it to its
		// permuted position.
		var b [5][5]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y][(2*x+3*y)%5] = bits.RotateLeft64(a[x][y], rhoOffsets[x][y])
			}
		}

		// chi: the only nonlinear step.
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x][y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
			}
		}

		// iota
		a[0][0] ^= roundConstants[r]
	}
}
