// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcdstrategy

import (
	"testing"

	"gonum.org/v1/mpoly/internal/bigint"
)

func ival(v int64) bigint.Int {
	var z bigint.Int
	z.SetInt64(v)
	return z
}

func TestContent(t *testing.T) {
	coeffs := []bigint.Int{ival(12), ival(-18), ival(30)}
	got := Content(coeffs)
	want := ival(6)
	if got.Cmp(&want) != 0 {
		t.Errorf("Content = %v, want %v", got.String(), want.String())
	}
}

func TestContentEmpty(t *testing.T) {
	got := Content(nil)
	if !got.IsZero() {
		t.Errorf("Content(nil) = %v, want 0", got.String())
	}
}

func TestMonomialGCD(t *testing.T) {
	coeffA := ival(12)
	expA := []uint64{2, 3}
	contentB := ival(18)
	minExpB := []uint64{1, 5}

	g, exp := MonomialGCD(coeffA, expA, contentB, minExpB)
	want := ival(6)
	if g.Cmp(&want) != 0 {
		t.Errorf("gcd coefficient = %v, want %v", g.String(), want.String())
	}
	wantExp := []uint64{1, 3}
	for j, e := range exp {
		if e != wantExp[j] {
			t.Errorf("exp[%d] = %d, want %d", j, e, wantExp[j])
		}
	}
}

func TestMinExp(t *testing.T) {
	exps := [][]uint64{{3, 0, 5}, {1, 2, 7}, {4, 1, 1}}
	got := MinExp(exps)
	want := []uint64{1, 0, 1}
	for j, v := range got {
		if v != want[j] {
			t.Errorf("MinExp[%d] = %d, want %d", j, v, want[j])
		}
	}
}
