// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modring implements the 64-bit modular ring ("Primitive
// field") consumed by the GCD estimator: init, add, mul, inv, and a
// univariate polynomial gcd over a prime modulus chosen at runtime.
package modring

import (
	"math/big"
	"math/bits"

	"modernc.org/mathutil"
)

// Ring is arithmetic modulo P, a prime fitting in a uint64; Mul forms
// full 128-bit products with bits.Mul64, so P may use all 64 bits.
type Ring struct {
	P uint64
}

// New returns the ring of integers modulo p. p is assumed prime; no
// primality check is performed, mirroring "Primitive field"
// contract, which treats primality as an input precondition.
func New(p uint64) Ring { return Ring{P: p} }

// Reduce returns x mod P in [0, P).
func (r Ring) Reduce(x int64) uint64 {
	m := int64(r.P)
	v := x % m
	if v < 0 {
		v += m
	}
	return uint64(v)
}

// ReduceBig returns x mod P in [0, P), for x outside the int64 range.
func (r Ring) ReduceBig(x *big.Int) uint64 {
	var m big.Int
	m.Mod(x, new(big.Int).SetUint64(r.P))
	return m.Uint64()
}

// Add returns a+b mod P.
func (r Ring) Add(a, b uint64) uint64 {
	s := a + b
	if s >= r.P {
		s -= r.P
	}
	return s
}

// Sub returns a-b mod P.
func (r Ring) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return r.P - (b - a)
}

// Mul returns a*b mod P, computed in uint64 via the standard library's
// 128-bit multiply-high primitive so P can range up to a full 64-bit
// prime without overflowing.
func (r Ring) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % r.P
	}
	_, rem := bits.Div64(hi%r.P, lo, r.P)
	return rem
}

// Inv returns the multiplicative inverse of a mod P via Fermat's
// little theorem (a^(P-2) mod P), using mathutil's modular
// exponentiation rather than a hand-rolled extended Euclidean
// algorithm, since P is prime by precondition. It panics if a is 0
// mod P.
func (r Ring) Inv(a uint64) uint64 {
	if a%r.P == 0 {
		panic("mpoly/internal/modring: inverse of zero")
	}
	return mathutil.ModPowUint64(a, r.P-2, r.P)
}

// Pow returns a^e mod P.
func (r Ring) Pow(a uint64, e uint64) uint64 {
	return mathutil.ModPowUint64(a, e, r.P)
}

// Poly is a dense univariate polynomial over the ring, coefficients
// ordered low degree first with no trailing (high-degree) zeros.
type Poly struct {
	ring Ring
	c    []uint64
}

// NewPoly returns a polynomial over ring with the given coefficients,
// trimmed of trailing zeros.
func NewPoly(ring Ring, coeffs []uint64) Poly {
	p := Poly{ring: ring, c: append([]uint64(nil), coeffs...)}
	p.trim()
	return p
}

func (p *Poly) trim() {
	n := len(p.c)
	for n > 0 && p.c[n-1] == 0 {
		n--
	}
	p.c = p.c[:n]
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Lead returns the leading coefficient; it panics on the zero polynomial.
func (p Poly) Lead() uint64 {
	if p.IsZero() {
		panic("mpoly/internal/modring: leading coefficient of zero polynomial")
	}
	return p.c[len(p.c)-1]
}

// DivMod returns the quotient and remainder of p divided by d, d != 0.
func (p Poly) DivMod(d Poly) (q, r Poly) {
	if d.IsZero() {
		panic("mpoly/internal/modring: division by zero polynomial")
	}
	r = NewPoly(p.ring, p.c)
	if r.Degree() < d.Degree() {
		return NewPoly(p.ring, nil), r
	}
	ring := p.ring
	dInv := ring.Inv(d.Lead())
	qc := make([]uint64, r.Degree()-d.Degree()+1)
	for r.Degree() >= d.Degree() && !r.IsZero() {
		shift := r.Degree() - d.Degree()
		coeff := ring.Mul(r.Lead(), dInv)
		qc[shift] = coeff
		for i, dc := range d.c {
			idx := shift + i
			r.c[idx] = ring.Sub(r.c[idx], ring.Mul(coeff, dc))
		}
		r.trim()
	}
	return NewPoly(ring, qc), r
}

// GCD returns the monic greatest common divisor of a and b over the
// ring, via the classical Euclidean algorithm.
func GCD(a, b Poly) Poly {
	ring := a.ring
	for !b.IsZero() {
		_, r := a.DivMod(b)
		a, b = b, r
	}
	if a.IsZero() {
		return a
	}
	inv := ring.Inv(a.Lead())
	c := make([]uint64, len(a.c))
	for i, v := range a.c {
		c[i] = ring.Mul(v, inv)
	}
	return NewPoly(ring, c)
}

// NumNonzero returns the number of nonzero coefficients in p.
func (p Poly) NumNonzero() int {
	n := 0
	for _, c := range p.c {
		if c != 0 {
			n++
		}
	}
	return n
}

// Eval evaluates p at x via Horner's method.
func (p Poly) Eval(x uint64) uint64 {
	ring := p.ring
	var acc uint64
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = ring.Add(ring.Mul(acc, x), p.c[i])
	}
	return acc
}
