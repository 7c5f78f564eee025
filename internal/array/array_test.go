// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"testing"

	"gonum.org/v1/mpoly/internal/bigint"
)

func ival(v int64) bigint.Int {
	var z bigint.Int
	z.SetInt64(v)
	return z
}

type recorder struct {
	coeffs []int64
	exps   [][]uint64
}

func (r *recorder) Emit(c bigint.Int, e []uint64) {
	v, _ := c.Int64()
	r.coeffs = append(r.coeffs, v)
	r.exps = append(r.exps, append([]uint64(nil), e...))
}

func (r *recorder) find(exp ...uint64) (int64, bool) {
	for i, e := range r.exps {
		match := true
		for j := range exp {
			if e[j] != exp[j] {
				match = false
				break
			}
		}
		if match {
			return r.coeffs[i], true
		}
	}
	return 0, false
}

// TestMulUnivariate checks (x+1)^2 = x^2+2x+1 over one variable.
func TestMulUnivariate(t *testing.T) {
	a := Operand{Coeffs: []bigint.Int{ival(1), ival(1)}, Exps: [][]uint64{{1}, {0}}}
	rec := &recorder{}
	if err := Mul(a, a, 1, rec); err != nil {
		t.Fatalf("Mul returned error: %v", err)
	}
	for exp, want := range map[uint64]int64{2: 1, 1: 2, 0: 1} {
		got, ok := rec.find(exp)
		if !ok || got != want {
			t.Fatalf("coeff of x^%d = %v (found=%v), want %d", exp, got, ok, want)
		}
	}
	if len(rec.coeffs) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(rec.coeffs))
	}
}

// TestMulBivariate checks (x+y)*(x-y) = x^2-y^2.
func TestMulBivariate(t *testing.T) {
	a := Operand{Coeffs: []bigint.Int{ival(1), ival(1)}, Exps: [][]uint64{{1, 0}, {0, 1}}}
	b := Operand{Coeffs: []bigint.Int{ival(1), ival(-1)}, Exps: [][]uint64{{1, 0}, {0, 1}}}
	rec := &recorder{}
	if err := Mul(a, b, 2, rec); err != nil {
		t.Fatalf("Mul returned error: %v", err)
	}
	if len(rec.coeffs) != 2 {
		t.Fatalf("expected 2 terms, got %d: %v %v", len(rec.coeffs), rec.coeffs, rec.exps)
	}
	if c, ok := rec.find(2, 0); !ok || c != 1 {
		t.Fatalf("coeff of x^2 = %v, want 1", c)
	}
	if c, ok := rec.find(0, 2); !ok || c != -1 {
		t.Fatalf("coeff of y^2 = %v, want -1", c)
	}
}

// TestDivExactRoundTrip checks (x^2+2x+1)/(x+1) = x+1.
func TestDivExactRoundTrip(t *testing.T) {
	a := Operand{
		Coeffs: []bigint.Int{ival(1), ival(2), ival(1)},
		Exps:   [][]uint64{{2}, {1}, {0}},
	}
	b := Operand{Coeffs: []bigint.Int{ival(1), ival(1)}, Exps: [][]uint64{{1}, {0}}}
	rec := &recorder{}
	exact, err := DivExact(a, b, 1, rec)
	if err != nil {
		t.Fatalf("DivExact returned error: %v", err)
	}
	if !exact {
		t.Fatalf("division should be exact")
	}
	if c, ok := rec.find(1); !ok || c != 1 {
		t.Fatalf("coeff of x^1 = %v, want 1", c)
	}
	if c, ok := rec.find(0); !ok || c != 1 {
		t.Fatalf("coeff of x^0 = %v, want 1", c)
	}
}

// TestDivExactRejectsNonMultiple checks that x^2+1 is correctly
// reported as not divisible by x+1.
func TestDivExactRejectsNonMultiple(t *testing.T) {
	a := Operand{Coeffs: []bigint.Int{ival(1), ival(1)}, Exps: [][]uint64{{2}, {0}}}
	b := Operand{Coeffs: []bigint.Int{ival(1), ival(1)}, Exps: [][]uint64{{1}, {0}}}
	rec := &recorder{}
	exact, err := DivExact(a, b, 1, rec)
	if err != nil {
		t.Fatalf("DivExact returned error: %v", err)
	}
	if exact {
		t.Fatalf("x^2+1 should not be exactly divisible by x+1")
	}
}
