// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"gonum.org/v1/mpoly/internal/array"
	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/heap"
	"gonum.org/v1/mpoly/internal/monomial"
)

// maxLayout returns the wider of a's and b's current exponent layouts
// without mutating either operand.
func maxLayout(a, b *Polynomial) expvec.Layout {
	if a.layout.Bits >= b.layout.Bits {
		return a.layout
	}
	return b.layout
}

// Divides implements DD, top-level divides(A,B) → (bool,Q):
// a monomial-cofactor short path when B has one term, the dense array
// engine when degree bounds are small, and the heap exact-division
// protocol otherwise, with a widen-and-retry loop for exponent
// overflow exactly like Mul.
func Divides(a, b *Polynomial) (bool, *Polynomial) {
	checkSameShape(a, b)
	if b.Len() == 0 {
		panic(ErrDivideByZero)
	}
	if a.Len() == 0 {
		return true, &Polynomial{ctx: a.ctx, layout: a.layout}
	}

	if b.Len() == 1 {
		return monomialCofactor(a, b)
	}

	if out, ok := divExactArray(a, b); ok {
		return true, out
	}

	layout := maxLayout(a, b)
	for {
		ac := repackCopy(a, layout)
		bc := repackCopy(b, layout)
		out := &Polynomial{ctx: a.ctx, layout: layout}
		out.Reserve(ac.Len())
		exact, err := heap.DivExact(heapOperand(ac), heapOperand(bc), layout, a.ctx.Order, sink{out})
		if err == nil {
			if !exact {
				return false, nil
			}
			out.Canonicalize()
			return true, out
		}
		if _, ok := err.(heap.Overflow); !ok {
			panic(err)
		}
		layout = layout.Widen()
	}
}

// monomialCofactor handles the case where b is a single term: every
// monomial of a must be divisible by b's, and every coefficient must
// divide evenly.
func monomialCofactor(a, b *Polynomial) (bool, *Polynomial) {
	layout := maxLayout(a, b)
	ac := repackCopy(a, layout)
	bc := repackCopy(b, layout)
	bExp := bc.exps[0]
	bCoeff := bc.coeffs[0]

	out := &Polynomial{ctx: a.ctx, layout: layout}
	out.Reserve(ac.Len())
	for i := range ac.coeffs {
		diff := make([]uint64, layout.Words)
		if !monomial.Divides(diff, ac.exps[i], bExp, layout) {
			return false, nil
		}
		q, r := bigint.QuoRem(&ac.coeffs[i], &bCoeff)
		if !r.IsZero() {
			return false, nil
		}
		out.pushPacked(q, diff)
	}
	out.Canonicalize()
	return true, out
}

func divExactArray(a, b *Polynomial) (*Polynomial, bool) {
	out := &Polynomial{ctx: a.ctx, layout: expvec.NewLayout(a.ctx.fieldCount(), 8)}
	exact, err := array.DivExact(arrayOperand(a), arrayOperand(b), a.ctx.NVars, arraySink{out})
	if err != nil || !exact {
		return nil, false
	}
	out.Canonicalize()
	return out, true
}

// Div returns the floor quotient of a by b, silently dropping any
// term that is not an exact multiple of b's leading term at its point
// of elimination.
func Div(a, b *Polynomial) *Polynomial {
	checkSameShape(a, b)
	if b.Len() == 0 {
		panic(ErrDivideByZero)
	}
	if a.Len() == 0 {
		return &Polynomial{ctx: a.ctx, layout: a.layout}
	}
	layout := maxLayout(a, b)
	for {
		ac := repackCopy(a, layout)
		bc := repackCopy(b, layout)
		out := &Polynomial{ctx: a.ctx, layout: layout}
		err := heap.FloorDiv(heapOperand(ac), heapOperand(bc), layout, a.ctx.Order, sink{out})
		if err == nil {
			out.Canonicalize()
			return out
		}
		if _, ok := err.(heap.Overflow); !ok {
			panic(err)
		}
		layout = layout.Widen()
	}
}

// DivRem returns (q, r) such that a = q*b + r, with every term of r
// failing b's leading-term divisibility test at its point of
// elimination.
func DivRem(a, b *Polynomial) (*Polynomial, *Polynomial) {
	checkSameShape(a, b)
	if b.Len() == 0 {
		panic(ErrDivideByZero)
	}
	if a.Len() == 0 {
		z := &Polynomial{ctx: a.ctx, layout: a.layout}
		return z, &Polynomial{ctx: a.ctx, layout: a.layout}
	}
	layout := maxLayout(a, b)
	for {
		ac := repackCopy(a, layout)
		bc := repackCopy(b, layout)
		q := &Polynomial{ctx: a.ctx, layout: layout}
		r := &Polynomial{ctx: a.ctx, layout: layout}
		err := heap.DivRem(heapOperand(ac), heapOperand(bc), layout, a.ctx.Order, sink{q}, sink{r})
		if err == nil {
			q.Canonicalize()
			r.Canonicalize()
			return q, r
		}
		if _, ok := err.(heap.Overflow); !ok {
			panic(err)
		}
		layout = layout.Widen()
	}
}
