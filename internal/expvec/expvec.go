// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expvec implements packed exponent vectors: fixed-width
// unsigned fields packed contiguously into machine words, with a
// reserved sentinel bit per field used to detect overflow cheaply.
//
// A field is always narrow enough that several share a single word
// and none straddles a word boundary, never split in a way that
// would let a carry bleed from one field into its neighbour other
// than through the reserved sentinel bit, which is what lets Add/Sub
// operate as blind per-word arithmetic. A field wider than one
// machine word would need a second packing regime of its own; Widen's
// doubling policy never produces one under realistic exponents, so
// newLayout panics rather than pack it silently wrong.
package expvec

import "math/bits"

// WordBits is the machine word width used for packing.
const WordBits = 64

// FieldAlign is the alignment width repack rounds up to.
const FieldAlign = 8

// Layout describes how N fields of Bits bits (one bit reserved as a
// sentinel) are packed into a run of Words machine words.
type Layout struct {
	N    int // number of fields (variables, plus 1 if graded)
	Bits int // bits per field, including the sentinel bit

	fieldsPerWord int // fields sharing one machine word
	Words         int // words per packed monomial
}

// NewLayout returns the Layout for n fields each needing at least
// minBits usable bits (the sentinel bit is added on top).
func NewLayout(n, minBits int) Layout {
	b := minBits + 1
	if b < 8 {
		b = 8
	}
	b = roundUp(b, FieldAlign)
	return newLayout(n, b)
}

func newLayout(n, b int) Layout {
	if b > WordBits {
		// field, Overflows, and PackInto's sentinel/carry logic all
		// assume a field's sentinel bit lives in the same word as its
		// value; that only holds for Bits <= WordBits. A field this
		// wide needs an exponent approaching 2^63, never produced by
		// Widen's doubling policy under realistic polynomial degrees,
		// so this is a documented limit rather than a silently wrong
		// overflow check.
		panic("mpoly/internal/expvec: field width exceeds one machine word")
	}
	l := Layout{N: n, Bits: b}
	l.fieldsPerWord = WordBits / b
	l.Words = (n + l.fieldsPerWord - 1) / l.fieldsPerWord
	return l
}

func roundUp(v, align int) int {
	return (v + align - 1) / align * align
}

// Widen returns the next layout width, doubling the field width and
// rounding to FieldAlign, per the EV width-policy retry rule.
func (l Layout) Widen() Layout {
	return newLayout(l.N, roundUp(2*l.Bits, FieldAlign))
}

// fieldWordStart returns the word index holding field i.
func (l Layout) fieldWordStart(i int) int {
	return i / l.fieldsPerWord
}

func (l Layout) fieldShift(i int) uint {
	return uint(i%l.fieldsPerWord) * uint(l.Bits)
}

// Pack writes the n exponents in v into a freshly allocated packed
// monomial of l.Words words.
func (l Layout) Pack(v []uint64) []uint64 {
	out := make([]uint64, l.Words)
	l.PackInto(v, out)
	return out
}

// PackInto packs v into the pre-sized dst (len(dst) == l.Words).
func (l Layout) PackInto(v []uint64, dst []uint64) {
	for i := range dst {
		dst[i] = 0
	}
	mask := uint64(1)<<uint(l.Bits) - 1
	for i, e := range v {
		val := e & mask
		w := l.fieldWordStart(i)
		dst[w] |= val << l.fieldShift(i)
	}
}

// field reads field i's raw bits (including any sentinel bit).
func (l Layout) field(src []uint64, i int) uint64 {
	w := l.fieldWordStart(i)
	mask := uint64(1)<<uint(l.Bits) - 1
	return (src[w] >> l.fieldShift(i)) & mask
}

// Unpack returns the N field values of a packed monomial, sentinel
// bits stripped.
func (l Layout) Unpack(src []uint64) []uint64 {
	out := make([]uint64, l.N)
	mask := uint64(1)<<uint(l.Bits-1) - 1
	for i := range out {
		out[i] = l.field(src, i) & mask
	}
	return out
}

// Overflows reports whether any field of the packed monomial has its
// sentinel (top) bit set.
func (l Layout) Overflows(src []uint64) bool {
	sentinel := uint64(1) << uint(l.Bits-1)
	for i := 0; i < l.N; i++ {
		if l.field(src, i)&sentinel != 0 {
			return true
		}
	}
	return false
}

// Repack rewrites each monomial in exps from width `from` to width
// `to`, preserving values.
func Repack(exps [][]uint64, from, to Layout) [][]uint64 {
	out := make([][]uint64, len(exps))
	for i, m := range exps {
		out[i] = to.Pack(from.Unpack(m))
	}
	return out
}

// Degrees returns, for each of the N variables, the maximum exponent
// occurring across exps.
func Degrees(exps [][]uint64, l Layout) []uint64 {
	max := make([]uint64, l.N)
	for _, m := range exps {
		v := l.Unpack(m)
		for j, e := range v {
			if e > max[j] {
				max[j] = e
			}
		}
	}
	return max
}

// BitsNeeded returns the minimum usable-bit width required to hold v.
func BitsNeeded(v uint64) int {
	return bits.Len64(v)
}
