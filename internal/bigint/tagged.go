// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements the tagged integer used throughout mpoly:
// a machine word holding either a small signed value or a pointer to
// an arbitrary-precision integer, with the invariant that the boxed
// arm never holds a value that the small arm could represent.
package bigint

import "math/big"

// smallMin and smallMax bound the inline representable range. The
// range is one bit narrower than int64 on each end so that negation
// and addmul accumulation of two small values can never silently wrap
// the machine word before a promote is triggered.
const (
	smallMax = 1<<62 - 1
	smallMin = -(1 << 62)
)

// Int is a tagged integer: either an inline int64 (big == nil) or a
// boxed arbitrary-precision integer (big != nil). A zero Int is the
// integer 0 in inline form.
type Int struct {
	small int64
	big   *big.Int
}

// fitsSmall reports whether v can be represented in the inline arm.
func fitsSmall(v *big.Int) bool {
	return v.IsInt64() && v.Int64() >= smallMin && v.Int64() <= smallMax
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	if x >= smallMin && x <= smallMax {
		z.small = x
		z.big = nil
		return z
	}
	z.small = 0
	z.big = new(big.Int).SetInt64(x)
	return z
}

// SetBig sets z to x, demoting to inline form when possible. x is
// copied; the caller retains ownership of x.
func (z *Int) SetBig(x *big.Int) *Int {
	if fitsSmall(x) {
		z.small = x.Int64()
		z.big = nil
		return z
	}
	z.small = 0
	if z.big == nil {
		z.big = new(big.Int)
	}
	z.big.Set(x)
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if x.big == nil {
		z.small = x.small
		z.big = nil
		return z
	}
	return z.SetBig(x.big)
}

// Swap exchanges the values of z and x.
func (z *Int) Swap(x *Int) {
	*z, *x = *x, *z
}

// promote forces z into boxed form without changing its value.
func (z *Int) promote() *big.Int {
	if z.big == nil {
		z.big = big.NewInt(z.small)
	}
	return z.big
}

// demote shrinks z to inline form when its boxed value fits; it is
// the invariant-restoring step every mutating operation must end with.
func (z *Int) demote() *Int {
	if z.big != nil && fitsSmall(z.big) {
		z.small = z.big.Int64()
		z.big = nil
	}
	return z
}

// IsZero reports whether z is the additive identity.
func (z *Int) IsZero() bool {
	if z.big == nil {
		return z.small == 0
	}
	return z.big.Sign() == 0
}

// Sign returns -1, 0, or 1 depending on the sign of z.
func (z *Int) Sign() int {
	if z.big == nil {
		switch {
		case z.small < 0:
			return -1
		case z.small > 0:
			return 1
		default:
			return 0
		}
	}
	return z.big.Sign()
}

// BitLen returns the length in bits of the absolute value of z.
func (z *Int) BitLen() int {
	if z.big == nil {
		return big.NewInt(z.small).BitLen()
	}
	return z.big.BitLen()
}

// asBig returns a *big.Int view of x without mutating x; it allocates
// only when x is inline.
func asBig(x *Int) *big.Int {
	if x.big != nil {
		return x.big
	}
	return big.NewInt(x.small)
}

// Cmp compares z and x, returning -1, 0, or +1.
func (z *Int) Cmp(x *Int) int {
	if z.big == nil && x.big == nil {
		switch {
		case z.small < x.small:
			return -1
		case z.small > x.small:
			return 1
		default:
			return 0
		}
	}
	return asBig(z).Cmp(asBig(x))
}

// fastAdd attempts to add a and b as plain int64s, reporting whether
// the two-'s-complement sum stayed within the inline range.
func fastAdd(a, b int64) (int64, bool) {
	s := a + b
	// Overflow of int64 itself is caught by the sign-of-operands test;
	// staying in [smallMin, smallMax] is the stricter inline-range test.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	if s < smallMin || s > smallMax {
		return 0, false
	}
	return s, true
}

// Add sets z = x + y and returns z, demoted.
func (z *Int) Add(x, y *Int) *Int {
	if x.big == nil && y.big == nil {
		if s, ok := fastAdd(x.small, y.small); ok {
			z.small, z.big = s, nil
			return z
		}
	}
	z.promote().Add(asBig(x), asBig(y))
	return z.demote()
}

// Sub sets z = x - y and returns z, demoted.
func (z *Int) Sub(x, y *Int) *Int {
	if x.big == nil && y.big == nil {
		if s, ok := fastAdd(x.small, -y.small); ok && y.small != smallMin {
			z.small, z.big = s, nil
			return z
		}
	}
	z.promote().Sub(asBig(x), asBig(y))
	return z.demote()
}

// Neg sets z = -x and returns z, demoted.
func (z *Int) Neg(x *Int) *Int {
	if x.big == nil && x.small != smallMin {
		z.small, z.big = -x.small, nil
		return z
	}
	z.promote().Neg(asBig(x))
	return z.demote()
}

// Mul sets z = x * y and returns z, demoted.
func (z *Int) Mul(x, y *Int) *Int {
	if x.big == nil && y.big == nil {
		if p, hi, lo := mul128(x.small, y.small); fitsWord(hi, lo) {
			z.small, z.big = p, nil
			return z
		}
	}
	z.promote().Mul(asBig(x), asBig(y))
	return z.demote()
}

// AddMul sets z = z + x*y and returns z, demoted. It is the
// accumulator primitive the heap and array engines depend on.
func (z *Int) AddMul(x, y *Int) *Int {
	var p Int
	p.Mul(x, y)
	return z.Add(z, &p)
}

// SubMul sets z = z - x*y and returns z, demoted.
func (z *Int) SubMul(x, y *Int) *Int {
	var p Int
	p.Mul(x, y)
	return z.Sub(z, &p)
}

// QuoRem returns q = x div y (truncated toward zero) and r = x - q*y,
// both demoted. It panics if y is zero.
func QuoRem(x, y *Int) (q, r Int) {
	if x.big == nil && y.big == nil && y.small != 0 {
		if !(x.small == smallMin && y.small == -1) {
			q.small, r.small = x.small/y.small, x.small%y.small
			return q, r
		}
	}
	var qb, rb big.Int
	qb.QuoRem(asBig(x), asBig(y), &rb)
	q.SetBig(&qb)
	r.SetBig(&rb)
	return q, r
}

// GCD returns the non-negative greatest common divisor of x and y.
func GCD(x, y *Int) Int {
	var g Int
	g.promote().GCD(nil, nil, new(big.Int).Abs(asBig(x)), new(big.Int).Abs(asBig(y)))
	return *g.demote()
}

// Int64 returns the value of z as an int64 and whether it fits.
func (z *Int) Int64() (int64, bool) {
	if z.big == nil {
		return z.small, true
	}
	if z.big.IsInt64() {
		return z.big.Int64(), true
	}
	return 0, false
}

// Big returns a *big.Int with the value of z. The result must not be
// mutated by the caller.
func (z *Int) Big() *big.Int {
	return asBig(z)
}

// String renders z in base 10, for diagnostics and tests only.
func (z *Int) String() string {
	return asBig(z).String()
}
