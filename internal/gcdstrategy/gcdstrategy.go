// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcdstrategy implements the numeric building blocks the GCD
// dispatcher folds into its recursive descent: integer content
// extraction and the monomial shortcut, both kept free of any
// dependency on the polynomial type itself so they can be unit tested
// in isolation, the same split the heap and array engines use for
// their own numeric kernels.
package gcdstrategy

import "gonum.org/v1/mpoly/internal/bigint"

// Content returns the non-negative greatest common divisor of coeffs,
// or the zero Int if coeffs is empty or every entry is zero. This is
// the integer content of a polynomial's coefficient list, pulled out
// before running the more expensive recursive descent on the
// resulting primitive part.
func Content(coeffs []bigint.Int) bigint.Int {
	var g bigint.Int
	for i := range coeffs {
		if g.IsZero() {
			g.Set(&coeffs[i])
			if g.Sign() < 0 {
				g.Neg(&g)
			}
			continue
		}
		g = bigint.GCD(&g, &coeffs[i])
	}
	return g
}

// MonomialGCD computes the gcd of a single-term polynomial with
// coefficient coeffA and exponent vector expA against a second
// operand already reduced to its own integer content contentB and its
// monomial content minExpB (the componentwise minimum exponent across
// all of its terms). The result is gcd(coeffA, contentB) times the
// monomial formed by the componentwise minimum of expA and minExpB:
// any monomial gcd necessarily divides both operands' full content,
// and no variable can contribute more than the lesser of the two
// operands' exponents.
func MonomialGCD(coeffA bigint.Int, expA []uint64, contentB bigint.Int, minExpB []uint64) (bigint.Int, []uint64) {
	g := bigint.GCD(&coeffA, &contentB)
	exp := make([]uint64, len(expA))
	for j := range expA {
		e := expA[j]
		if minExpB[j] < e {
			e = minExpB[j]
		}
		exp[j] = e
	}
	return g, exp
}

// MinExp returns the componentwise minimum exponent vector across
// exps, the "monomial content" that can be factored out of every term
// of a polynomial. It panics on an empty exps.
func MinExp(exps [][]uint64) []uint64 {
	min := append([]uint64(nil), exps[0]...)
	for _, e := range exps[1:] {
		for j, v := range e {
			if v < min[j] {
				min[j] = v
			}
		}
	}
	return min
}
