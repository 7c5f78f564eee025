// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modring

import (
	"testing"

	"golang.org/x/exp/rand"
)

const testPrime = 1000000007

func TestAddSubRoundTrip(t *testing.T) {
	r := New(testPrime)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := rnd.Uint64() % r.P
		b := rnd.Uint64() % r.P
		s := r.Add(a, b)
		if got := r.Sub(s, b); got != a {
			t.Fatalf("Sub(Add(%d,%d), %d) = %d, want %d", a, b, b, got, a)
		}
	}
}

func TestMulInv(t *testing.T) {
	r := New(testPrime)
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		a := rnd.Uint64()%(r.P-1) + 1
		inv := r.Inv(a)
		if got := r.Mul(a, inv); got != 1 {
			t.Fatalf("Mul(%d, Inv(%d)=%d) = %d, want 1", a, a, inv, got)
		}
	}
}

func TestPolyDivMod(t *testing.T) {
	r := New(testPrime)
	// (x^2 - 1) = (x+1)*(x-1) + 0
	a := NewPoly(r, []uint64{r.Sub(0, 1), 0, 1}) // -1 + x^2
	d := NewPoly(r, []uint64{1, 1})              // 1 + x
	q, rem := a.DivMod(d)
	if !rem.IsZero() {
		t.Fatalf("remainder should be zero, got degree %d", rem.Degree())
	}
	want := NewPoly(r, []uint64{r.Sub(0, 1), 1}) // -1 + x
	if q.Degree() != want.Degree() {
		t.Fatalf("quotient degree = %d, want %d", q.Degree(), want.Degree())
	}
	for i := range want.c {
		if q.c[i] != want.c[i] {
			t.Fatalf("quotient coeff %d = %d, want %d", i, q.c[i], want.c[i])
		}
	}
}

func TestPolyGCD(t *testing.T) {
	r := New(testPrime)
	// gcd(x^2-1, x-1) = x-1 (monic)
	a := NewPoly(r, []uint64{r.Sub(0, 1), 0, 1})
	b := NewPoly(r, []uint64{r.Sub(0, 1), 1})
	g := GCD(a, b)
	if g.Degree() != 1 {
		t.Fatalf("gcd degree = %d, want 1", g.Degree())
	}
	if g.c[1] != 1 || g.c[0] != r.Sub(0, 1) {
		t.Fatalf("gcd = %v, want monic x-1", g.c)
	}
}

func TestPolyEval(t *testing.T) {
	r := New(testPrime)
	p := NewPoly(r, []uint64{1, 2, 3}) // 1 + 2x + 3x^2
	got := p.Eval(5)
	want := r.Reduce(1 + 2*5 + 3*25)
	if got != want {
		t.Fatalf("Eval(5) = %d, want %d", got, want)
	}
}
