// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"math/bits"
)

// mul128 computes the signed 128-bit product a*b as two's complement
// limbs (hi, lo), plus the low 64 bits reinterpreted as int64 for the
// common case where the product fits a single word.
func mul128(a, b int64) (prod int64, hi uint64, lo uint64) {
	neg := (a < 0) != (b < 0)
	hi, lo = bits.Mul64(abs64(a), abs64(b))
	if neg {
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}
	return int64(lo), hi, lo
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// fitsWord reports whether the 128-bit two's complement value (hi, lo)
// sign-extends lo into the tagged inline range.
func fitsWord(hi, lo uint64) bool {
	signExt := uint64(0)
	if int64(lo) < 0 {
		signExt = ^uint64(0)
	}
	if hi != signExt {
		return false
	}
	v := int64(lo)
	return v >= smallMin && v <= smallMax
}

// Word3 is a fixed-size 192-bit two's complement accumulator used by
// the heap engine's multiplication fast path: a sum
// of many single-word x single-word products accumulated without
// allocating a bignum. Escalation to a bignum is explicit, via ToInt,
// and never nested back into Word3 arithmetic.
//
// Callers are responsible for the admission test bounding the bit
// widths of the operands ; AddMul does not itself detect
// overflow of the 192-bit range.
type Word3 struct {
	lo, mid, hi uint64
}

// AddMul adds a*b into the accumulator.
func (w *Word3) AddMul(a, b int64) {
	_, phi, plo := mul128(a, b)
	ext := uint64(0)
	if int64(phi) < 0 {
		ext = ^uint64(0)
	}
	var c0, c1 uint64
	w.lo, c0 = bits.Add64(w.lo, plo, 0)
	w.mid, c1 = bits.Add64(w.mid, phi, c0)
	w.hi, _ = bits.Add64(w.hi, ext, c1)
}

// SubMul subtracts a*b from the accumulator.
func (w *Word3) SubMul(a, b int64) {
	w.AddMul(-a, b)
}

// Fits reports whether the accumulator's current value fits a single
// tagged-integer word, and if so returns it.
func (w *Word3) Fits() (int64, bool) {
	signExt := uint64(0)
	if int64(w.lo) < 0 {
		signExt = ^uint64(0)
	}
	if w.mid != signExt || w.hi != signExt {
		return 0, false
	}
	v := int64(w.lo)
	if v < smallMin || v > smallMax {
		return 0, false
	}
	return v, true
}

// IsZero reports whether the accumulator holds zero.
func (w *Word3) IsZero() bool {
	return w.lo == 0 && w.mid == 0 && w.hi == 0
}

// ToInt converts the accumulator to a tagged Int, escalating to boxed
// form when it does not fit a single word.
func (w *Word3) ToInt() Int {
	var z Int
	if v, ok := w.Fits(); ok {
		z.SetInt64(v)
		return z
	}
	x := new(big.Int).SetUint64(w.hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(w.mid))
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(w.lo))
	if w.hi&(1<<63) != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 192)
		x.Sub(x, mod)
	}
	z.SetBig(x)
	return z
}
