// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcdinfo

import (
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/mpoly/internal/modring"
)

func TestLimits(t *testing.T) {
	a := [][]uint64{{4, 1}, {2, 3}, {0, 5}}
	b := [][]uint64{{6, 0}, {0, 2}}
	r := Limits(2, a, b)
	if r.AMinExp[0] != 0 || r.AMaxExp[0] != 4 {
		t.Fatalf("A var0 min/max = %d/%d, want 0/4", r.AMinExp[0], r.AMaxExp[0])
	}
	if r.BMinExp[1] != 0 || r.BMaxExp[1] != 2 {
		t.Fatalf("B var1 min/max = %d/%d, want 0/2", r.BMinExp[1], r.BMaxExp[1])
	}
}

func TestStrides(t *testing.T) {
	// A = x^0 + x^2 + x^4 (stride 2 in var0), B = x^0 + x^6 (stride 6).
	a := [][]uint64{{0}, {2}, {4}}
	b := [][]uint64{{0}, {6}}
	r := Limits(1, a, b)
	r.Strides(a, b)
	if r.Stride[0] != 2 {
		t.Fatalf("stride = %d, want 2", r.Stride[0])
	}
	if r.ADeflateDeg[0] != 2 {
		t.Fatalf("ADeflateDeg = %d, want 2", r.ADeflateDeg[0])
	}
}

// TestEstimateFallback checks the no-survivors fallback path produces
// bound = min(Adeg, Bdeg) and termEstimate = (bound+1)/2.
func TestEstimateFallback(t *testing.T) {
	a := [][]uint64{{0}, {5}}
	b := [][]uint64{{0}, {3}}
	r := Limits(1, a, b)
	r.Strides(a, b)

	alwaysZero := func(ring modring.Ring, point []uint64, freeVar int) modring.Poly {
		return modring.NewPoly(ring, nil)
	}
	rnd := rand.New(rand.NewSource(1))
	r.Estimate(0, alwaysZero, alwaysZero, []uint64{101, 103}, rnd)

	wantBound := r.ADeflateDeg[0]
	if r.BDeflateDeg[0] < wantBound {
		wantBound = r.BDeflateDeg[0]
	}
	if r.GDeflateDegBound[0] != wantBound {
		t.Fatalf("fallback bound = %d, want %d", r.GDeflateDegBound[0], wantBound)
	}
	if r.GTermCountEst[0] != (wantBound+1)/2 {
		t.Fatalf("fallback term estimate = %d, want %d", r.GTermCountEst[0], (wantBound+1)/2)
	}
}

// TestEstimateSurvivor checks a successful evaluation path picks up
// the evaluator's univariate gcd degree directly.
func TestEstimateSurvivor(t *testing.T) {
	a := [][]uint64{{0}, {4}}
	b := [][]uint64{{0}, {2}}
	r := Limits(1, a, b)
	r.Strides(a, b)

	evalA := func(ring modring.Ring, point []uint64, freeVar int) modring.Poly {
		return modring.NewPoly(ring, []uint64{1, 0, 1}) // x^2+1
	}
	evalB := func(ring modring.Ring, point []uint64, freeVar int) modring.Poly {
		return modring.NewPoly(ring, []uint64{1, 1}) // x+1
	}
	rnd := rand.New(rand.NewSource(2))
	r.Estimate(0, evalA, evalB, []uint64{1000000007}, rnd)
	// gcd(x^2+1, x+1) is a constant mod p, so the survivor's degree is
	// 0; the fallback would have given min(2, 1) = 1.
	if r.GDeflateDegBound[0] != 0 {
		t.Fatalf("survivor-derived bound = %d, want 0", r.GDeflateDegBound[0])
	}
}
