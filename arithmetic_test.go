// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"testing"

	"gonum.org/v1/mpoly/internal/bigint"
)

func one() bigint.Int {
	var z bigint.Int
	z.SetInt64(1)
	return z
}

func ival(v int64) bigint.Int {
	var z bigint.Int
	z.SetInt64(v)
	return z
}

func ctx2() Context { return Context{NVars: 2, Order: DegLex} }

// buildPoly constructs a polynomial from (coeff, exps) pairs, in any
// order, and returns it canonicalized.
func buildPoly(ctx Context, terms ...struct {
	c int64
	e []uint64
}) *Polynomial {
	p := NewPolynomial(ctx, 8)
	for _, t := range terms {
		c := ival(t.c)
		p.Push(&c, t.e)
	}
	p.Canonicalize()
	return p
}

func term(c int64, e ...uint64) struct {
	c int64
	e []uint64
} {
	return struct {
		c int64
		e []uint64
	}{c, e}
}

func TestAddBasic(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(1, 2, 0), term(1, 0, 2)) // x^2 + y^2
	b := buildPoly(ctx, term(1, 2, 0), term(-1, 0, 2)) // x^2 - y^2
	sum := Add(a, b)
	if !sum.IsCanonical() {
		t.Fatalf("sum not canonical")
	}
	if sum.Len() != 1 {
		t.Fatalf("x^2+y^2 + x^2-y^2 should have 1 term, got %d", sum.Len())
	}
	c, e := sum.Term(0)
	if v, _ := c.Int64(); v != 2 || e[0] != 2 || e[1] != 0 {
		t.Fatalf("sum term = %v*x^%d*y^%d, want 2*x^2", v, e[0], e[1])
	}
}

func TestSubSelfIsZero(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 5, 1), term(-2, 1, 1), term(7, 0, 0))
	diff := Sub(a, a)
	if !diff.IsZero() {
		t.Fatalf("a - a should be zero, got %d terms", diff.Len())
	}
}

func TestScalarMulAndDivExact(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 1, 0), term(5, 0, 1))
	c := ival(4)
	scaled := ScalarMul(a, &c)
	back := ScalarDivExact(scaled, &c)
	if Sub(back, a).Len() != 0 {
		t.Fatalf("scalar mul/divexact round trip failed")
	}
}

func TestScalarMulZero(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 1, 0))
	z := ival(0)
	got := ScalarMul(a, &z)
	if !got.IsZero() {
		t.Fatalf("scalar mul by zero should be the empty polynomial")
	}
}

func TestNeg(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 1, 0))
	n := Neg(a)
	c, _ := n.Term(0)
	if v, _ := c.Int64(); v != -3 {
		t.Fatalf("Neg coeff = %d, want -3", v)
	}
}
