// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import "testing"

func TestGCDConstant(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(12, 0, 0))
	b := buildPoly(ctx, term(1, 2, 0), term(1, 0, 2))
	g := GCD(a, b)
	want := buildPoly(ctx, term(1, 0, 0))
	if Sub(g, want).Len() != 0 {
		t.Fatalf("gcd(12, x^2+y^2) should be 1, got %d terms", g.Len())
	}
}

func TestGCDMonomial(t *testing.T) {
	ctx := ctx2()
	// b = 9xy+3y^2 = 3y(3x+y): its monomial content is y, not xy,
	// since the x exponent varies between its two terms (1 and 0).
	a := buildPoly(ctx, term(6, 2, 3))
	b := buildPoly(ctx, term(9, 1, 1), term(3, 0, 2))
	g := GCD(a, b)
	want := buildPoly(ctx, term(3, 0, 1))
	if Sub(g, want).Len() != 0 {
		t.Fatalf("gcd(6x^2y^3, 9xy+3y^2) should be 3y, got diff %d terms", Sub(g, want).Len())
	}
}

func TestGCDUnivariate(t *testing.T) {
	ctx := Context{NVars: 1, Order: Lex}
	// gcd(x^2-1, x-1) = x-1
	a := buildPoly(ctx, term(1, 2), term(-1, 0))
	b := buildPoly(ctx, term(1, 1), term(-1, 0))
	g := GCD(a, b)
	want := buildPoly(ctx, term(1, 1), term(-1, 0))
	if Sub(g, want).Len() != 0 {
		t.Fatalf("gcd(x^2-1, x-1) should be x-1, got diff %d terms", Sub(g, want).Len())
	}
}

func TestGCDMultivariateCommonFactor(t *testing.T) {
	ctx := ctx2()
	// f = (x+y)(x-y) = x^2-y^2
	// g = (x+y)*x    = x^2+xy
	// gcd should be x+y (up to sign).
	f := buildPoly(ctx, term(1, 2, 0), term(-1, 0, 2))
	g := buildPoly(ctx, term(1, 2, 0), term(1, 1, 1))
	got := GCD(f, g)
	if got.Len() != 2 {
		t.Fatalf("gcd((x+y)(x-y), x(x+y)) should have 2 terms, got %d", got.Len())
	}
	ok1, _ := Divides(f, got)
	ok2, _ := Divides(g, got)
	if !ok1 || !ok2 {
		t.Fatalf("computed gcd does not divide both operands")
	}
}

func TestGCDSelf(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 2, 1), term(-5, 1, 0), term(7, 0, 3))
	g := GCD(a, a)
	ok, q := Divides(g, a)
	if !ok || q.Len() != 1 {
		t.Fatalf("gcd(a,a) should equal a up to a unit")
	}
}

func TestGCDWithZero(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(3, 2, 1), term(-5, 1, 0))
	z := NewPolynomial(ctx, 8)
	g := GCD(a, z)
	normalized := normalizeSign(a.Clone())
	if Sub(g, normalized).Len() != 0 {
		t.Fatalf("gcd(a,0) should be a up to sign")
	}
}
