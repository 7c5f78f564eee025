// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"testing"

	"gonum.org/v1/mpoly/internal/bigint"
)

func TestMulUnivariateSquare(t *testing.T) {
	ctx := Context{NVars: 1, Order: Lex}
	a := buildPoly(ctx, term(1, 1), term(1, 0)) // x+1
	got := Mul(a, a)
	want := buildPoly(ctx, term(1, 2), term(2, 1), term(1, 0)) // x^2+2x+1
	if Sub(got, want).Len() != 0 {
		t.Fatalf("(x+1)^2 = %v terms, want x^2+2x+1", got.Len())
	}
}

func TestMulBivariateDifferenceOfSquares(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(1, 1, 0), term(1, 0, 1))  // x+y
	b := buildPoly(ctx, term(1, 1, 0), term(-1, 0, 1)) // x-y
	got := Mul(a, b)
	want := buildPoly(ctx, term(1, 2, 0), term(-1, 0, 2)) // x^2-y^2
	if Sub(got, want).Len() != 0 {
		t.Fatalf("(x+y)(x-y) got %d terms vs want, diff nonzero", got.Len())
	}
}

func TestMulByZero(t *testing.T) {
	ctx := ctx2()
	a := buildPoly(ctx, term(1, 1, 0))
	z := NewPolynomial(ctx, 8)
	got := Mul(a, z)
	if !got.IsZero() {
		t.Fatalf("a*0 should be zero")
	}
}

func TestMulMatchesEvaluateAll(t *testing.T) {
	ctx := Context{NVars: 3, Order: DegRevLex}
	a := buildPoly(ctx, term(2, 1, 0, 0), term(3, 0, 1, 0), term(-1, 0, 0, 1))
	b := buildPoly(ctx, term(1, 1, 1, 0), term(4, 0, 0, 0))
	prod := Mul(a, b)

	pt := []bigint.Int{ival(2), ival(3), ival(5)}
	gotVal := prod.EvaluateAll(pt)
	avVal := a.EvaluateAll(pt)
	bvVal := b.EvaluateAll(pt)
	var want bigint.Int
	want.Mul(&avVal, &bvVal)
	if gotVal.Cmp(&want) != 0 {
		t.Fatalf("Mul result disagrees with pointwise evaluation: got %v want %v", gotVal.String(), want.String())
	}
}
