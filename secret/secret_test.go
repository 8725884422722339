// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secret

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFromBytesRoundTrip(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	s := FromBytes(in)
	require.Equal(t, in, s.IntoInnerNonsecret())
}

func TestSetCommutesWithView(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 64).Draw(t, "n").(int)
		v := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "v").([]byte)
		s := Zeroed(n)
		defer s.Destroy()
		s.Set(v)
		require.Equal(t, v, s.ExposeNonsecret())
	})
}

func TestSetLengthMismatchPanics(t *testing.T) {
	s := Zeroed(4)
	defer s.Destroy()
	require.Panics(t, func() { s.Set([]byte{1, 2, 3}) })
}

func TestEqual(t *testing.T) {
	a := FromBytes([]byte{1, 2, 3})
	b := FromBytes([]byte{1, 2, 3})
	c := FromBytes([]byte{1, 2, 4})
	d := FromBytes([]byte{1, 2})
	defer a.Destroy()
	defer b.Destroy()
	defer c.Destroy()
	defer d.Destroy()

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
}

// TestDestroyZeroizes observes the storage through an aliased view that
// stays valid across destruction.
func TestDestroyZeroizes(t *testing.T) {
	backing := []byte{0xde, 0xad, 0xbe, 0xef}
	s := New(backing)
	s.Destroy()
	require.Equal(t, make([]byte, 4), backing)
}

func TestSliceViewsAlias(t *testing.T) {
	s := FromBytes([]byte{10, 20, 30, 40})
	defer s.Destroy()

	first := s.Index(0)
	last := s.Index(s.Len() - 1)
	require.Equal(t, 1, first.Len())
	require.Equal(t, 1, last.Len())
	require.Equal(t, byte(10), first.ExposeNonsecret()[0])
	require.Equal(t, byte(40), last.ExposeNonsecret()[0])

	mid := s.Slice(1, 3)
	mid.FillBytes(7)
	require.Equal(t, []byte{10, 7, 7, 40}, s.ExposeNonsecret())
}

func TestFormattingIsOpaque(t *testing.T) {
	s := FromBytes([]byte("hunter2"))
	defer s.Destroy()
	require.Equal(t, "secret.Bytes(_)", fmt.Sprintf("%v", s))
	require.Equal(t, "secret.Bytes(_)", fmt.Sprintf("%s", s))
	require.Equal(t, "secret.Bytes(_)", fmt.Sprintf("%#v", s))
	require.NotContains(t, fmt.Sprintf("%v %s %#v", s, s, s), "hunter2")
}

func TestWordArithmeticWraps(t *testing.T) {
	a := NewWord[uint32](0xffffffff)
	one := NewWord[uint32](1)
	require.Equal(t, uint32(0), a.Add(one).ExposeNonsecret())
	require.Equal(t, uint32(0xffffffff), NewWord[uint32](0).Sub(one).ExposeNonsecret())
	require.Equal(t, uint32(0xfffffffe), a.Mul(NewWord[uint32](2)).ExposeNonsecret())
}

func TestWordLogicAndShifts(t *testing.T) {
	w := NewWord[uint64](0x00ff00ff00ff00ff)
	require.Equal(t, uint64(0xff00ff00ff00ff00), w.Not().ExposeNonsecret())
	require.Equal(t, uint64(0x00fe00fe00fe00fe), w.And(w.Shl(1)).ExposeNonsecret())
	require.Equal(t, uint64(0xffffffffffffffff), w.Xor(w.Not()).ExposeNonsecret())
	require.Equal(t, uint64(0x7f807f807f807f80), w.RotateLeft(7).ExposeNonsecret())
	require.Equal(t, uint64(0x0007f807f807f807), w.Shr(5).ExposeNonsecret())
}

func TestWordEqual(t *testing.T) {
	require.True(t, NewWord[uint64](42).Equal(NewWord[uint64](42)))
	require.False(t, NewWord[uint64](42).Equal(NewWord[uint64](43)))
	require.False(t, NewWord[uint64](1<<63).Equal(NewWord[uint64](0)))
}

func TestSaturating(t *testing.T) {
	max := NewSaturating[uint8](0xff)
	require.Equal(t, uint8(0xff), max.Add(NewSaturating[uint8](1)).ExposeNonsecret())
	require.Equal(t, uint8(0), NewSaturating[uint8](3).Sub(NewSaturating[uint8](7)).ExposeNonsecret())
	require.Equal(t, uint8(9), NewSaturating[uint8](4).Add(NewSaturating[uint8](5)).ExposeNonsecret())
	require.Equal(t, uint8(2), NewSaturating[uint8](9).Sub(NewSaturating[uint8](7)).ExposeNonsecret())
}

func TestSaturatingMatchesSpec(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint16().Draw(t, "a").(uint16)
		b := rapid.Uint16().Draw(t, "b").(uint16)
		sum := uint32(a) + uint32(b)
		if sum > 0xffff {
			sum = 0xffff
		}
		require.Equal(t, uint16(sum),
			NewSaturating(a).Add(NewSaturating(b)).ExposeNonsecret())
		diff := int32(a) - int32(b)
		if diff < 0 {
			diff = 0
		}
		require.Equal(t, uint16(diff),
			NewSaturating(a).Sub(NewSaturating(b)).ExposeNonsecret())
	})
}

func TestMustCasts(t *testing.T) {
	s := FromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	defer s.Destroy()

	w := MustWordFromBytes[uint64](s)
	require.Equal(t, uint64(0x0807060504030201), w.ExposeNonsecret())

	back := MustBytesFromWord(w)
	defer back.Destroy()
	require.True(t, s.Equal(back))

	words := MustWordsFromBytes[uint32](s)
	require.Len(t, words, 2)
	require.Equal(t, uint32(0x04030201), words[0].ExposeNonsecret())
	require.Equal(t, uint32(0x08070605), words[1].ExposeNonsecret())

	require.Panics(t, func() { MustWordFromBytes[uint32](s) })
	require.Panics(t, func() {
		odd := FromBytes([]byte{1, 2, 3})
		defer odd.Destroy()
		MustWordsFromBytes[uint32](odd)
	})
}
