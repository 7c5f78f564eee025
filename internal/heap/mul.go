// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

// Operand is the minimal read-only view of a polynomial's terms the
// heap engine needs: parallel coefficient and packed-exponent arrays,
// assumed already sorted strictly descending under the same layout
// and ordering.
type Operand struct {
	Coeffs []bigint.Int
	Exps   [][]uint64
}

func (o Operand) Len() int { return len(o.Coeffs) }

// Sink receives emitted (coefficient, exponent) terms in strictly
// descending order, matching Polynomial.pushPacked's contract.
type Sink interface {
	Emit(coeff bigint.Int, exp []uint64)
}

// Overflow is returned by the heap protocols when a monomial
// operation would set a sentinel bit; the caller must widen the
// shared layout and retry the whole call.
type Overflow struct{}

func (Overflow) Error() string { return "mpoly/internal/heap: exponent overflow, widen and retry" }

// fastPathBits estimates whether a fused multiply-accumulate chain
// across min(la, lb) terms is safe to run in the fixed 192-bit Word3
// accumulator without ever overflowing it. The bound on betaA+betaB+
// logN alone only protects the accumulator; it says nothing about
// whether a single coefficient fits the int64 each cell's Int64 call
// below requires, so every coefficient on both sides must also fit
// a machine word on its own (each BitLen at most 62, not just the
// sum) before the fast path is taken.
func fastPathBits(a, b Operand) bool {
	betaA, betaB := maxBits(a.Coeffs), maxBits(b.Coeffs)
	if betaA > 62 || betaB > 62 {
		return false
	}
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	logN := 0
	for 1<<logN < n {
		logN++
	}
	return betaA+betaB+logN <= 3*64-2
}

func maxBits(cs []bigint.Int) int {
	m := 0
	for i := range cs {
		if b := cs[i].BitLen(); b > m {
			m = b
		}
	}
	return m
}

// Mul computes the product of a and b, both packed at layout under
// ord, emitting terms to sink in strictly descending order. It
// returns Overflow if any exponent addition overflows the shared
// layout; the caller widens and retries.
func Mul(a, b Operand, layout expvec.Layout, ord monomial.Ordering, sink Sink) error {
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	fast := fastPathBits(a, b)

	s := NewScheduler(a.Len(), layout, ord, true)
	seedExp := make([]uint64, layout.Words)
	monomial.Add(seedExp, a.Exps[0], b.Exps[0])
	if layout.Overflows(seedExp) {
		return Overflow{}
	}
	s.Push(0, 0, seedExp)

	for {
		exp, cells, ok := s.PopBatch()
		if !ok {
			break
		}
		var acc bigint.Int
		var fastAcc bigint.Word3
		for _, c := range cells {
			s.Release(c.I)
			if fast {
				ca, _ := a.Coeffs[c.I].Int64()
				cb, _ := b.Coeffs[c.J].Int64()
				fastAcc.AddMul(ca, cb)
			} else {
				acc.AddMul(&a.Coeffs[c.I], &b.Coeffs[c.J])
			}
		}
		if fast {
			acc = fastAcc.ToInt()
		}
		if !acc.IsZero() {
			sink.Emit(acc, exp)
		}

		for _, c := range cells {
			i, j := c.I, c.J
			if j+1 < b.Len() && !s.RowBusy(i) {
				e := make([]uint64, layout.Words)
				monomial.Add(e, a.Exps[i], b.Exps[j+1])
				if layout.Overflows(e) {
					return Overflow{}
				}
				s.Push(i, j+1, e)
			}
			if j == 0 && i+1 < a.Len() && !s.RowBusy(i+1) {
				e := make([]uint64, layout.Words)
				monomial.Add(e, a.Exps[i+1], b.Exps[0])
				if layout.Overflows(e) {
					return Overflow{}
				}
				s.Push(i+1, 0, e)
			}
		}
	}
	return nil
}
