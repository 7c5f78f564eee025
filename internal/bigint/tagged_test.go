// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"testing"

	"golang.org/x/exp/rand"
)

func TestAddMatchesBig(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a, b := randSmall(rnd), randSmall(rnd)
		var x, y, z Int
		x.SetInt64(a)
		y.SetInt64(b)
		z.Add(&x, &y)

		want := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
		if z.Big().Cmp(want) != 0 {
			t.Fatalf("Add(%d,%d) = %v, want %v", a, b, z.Big(), want)
		}
		if z.big != nil && fitsSmall(z.big) {
			t.Fatalf("Add(%d,%d) left a demotable boxed value", a, b)
		}
	}
}

func TestMulEscalates(t *testing.T) {
	var x, y, z Int
	x.SetInt64(1 << 40)
	y.SetInt64(1 << 40)
	z.Mul(&x, &y)
	if z.big == nil {
		t.Fatalf("Mul(2^40, 2^40) should escalate to boxed form")
	}
	want := new(big.Int).Lsh(big.NewInt(1), 80)
	if z.Big().Cmp(want) != 0 {
		t.Fatalf("Mul(2^40,2^40) = %v, want %v", z.Big(), want)
	}
}

func TestAddMulRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		acc := randSmall(rnd)
		x, y := randSmall(rnd), randSmall(rnd)
		var z Int
		z.SetInt64(acc)
		xi, yi := intOf(x), intOf(y)
		z.AddMul(&xi, &yi)

		want := new(big.Int).Add(big.NewInt(acc), new(big.Int).Mul(big.NewInt(x), big.NewInt(y)))
		if z.Big().Cmp(want) != 0 {
			t.Fatalf("AddMul(%d,%d,%d) = %v, want %v", acc, x, y, z.Big(), want)
		}
	}
}

func TestQuoRemExact(t *testing.T) {
	x := intOf(100)
	y := intOf(7)
	q, r := QuoRem(&x, &y)
	if v, _ := q.Int64(); v != 14 {
		t.Fatalf("quo = %d, want 14", v)
	}
	if v, _ := r.Int64(); v != 2 {
		t.Fatalf("rem = %d, want 2", v)
	}
}

func TestGCD(t *testing.T) {
	x := intOf(54)
	y := intOf(24)
	g := GCD(&x, &y)
	if v, _ := g.Int64(); v != 6 {
		t.Fatalf("GCD(54,24) = %d, want 6", v)
	}
}

func TestDemoteInvariant(t *testing.T) {
	var x Int
	x.SetBig(big.NewInt(5))
	if x.big != nil {
		t.Fatalf("SetBig(5) left boxed form, want demoted inline")
	}
}

func TestWord3MatchesBig(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	var w Word3
	want := new(big.Int)
	for i := 0; i < 200; i++ {
		a, b := rnd.Int63(), rnd.Int63()
		if rnd.Intn(2) == 0 {
			a = -a
		}
		w.AddMul(a, b)
		want.Add(want, new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
	}
	got := w.ToInt()
	if got.Big().Cmp(want) != 0 {
		t.Fatalf("Word3 accumulator = %v, want %v", got.Big(), want)
	}
}

func randSmall(rnd *rand.Rand) int64 {
	return rnd.Int63n(1<<61) - 1<<60
}

func intOf(v int64) Int {
	var z Int
	z.SetInt64(v)
	return z
}
