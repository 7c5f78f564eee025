// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

func checkSameShape(a, b *Polynomial) {
	if a.ctx.NVars != b.ctx.NVars || a.ctx.Order != b.ctx.Order {
		panic(errVarMismatch)
	}
}

// Add returns a + b.
func Add(a, b *Polynomial) *Polynomial {
	checkSameShape(a, b)
	return mergeAddSub(a, b, false)
}

// Sub returns a - b.
func Sub(a, b *Polynomial) *Polynomial {
	checkSameShape(a, b)
	return mergeAddSub(a, b, true)
}

// mergeAddSub performs a monomial-ordered merge of a and b's sorted
// term streams, subtracting b's coefficients instead of adding when
// negate is set. It implements both Add and Sub.
//
// There is an additional "in-place append" fast path: when a
// leading run of A already orders above B's leading term, that run
// can be copied straight from A without per-term comparisons against
// B. That is a pure performance refinement of the same merge computed
// below (it changes how the front of A is skipped, not the result),
// so it is elided here in favour of the single, uniformly-tested
// merge loop; the hook point is the start of this loop, where a
// descending binary search for B's leading exponent in A's exponent
// array would locate the run boundary.
func mergeAddSub(a, b *Polynomial, negate bool) *Polynomial {
	layout := a.layout
	if b.layout.Bits > layout.Bits {
		layout = b.layout
	}
	ac := repackCopy(a, layout)
	bc := repackCopy(b, layout)

	out := &Polynomial{ctx: a.ctx, layout: layout}
	out.Reserve(ac.Len() + bc.Len())

	ai, bi := 0, 0
	for ai < ac.Len() && bi < bc.Len() {
		c := monomial.Compare(ac.exps[ai], bc.exps[bi], layout, a.ctx.Order)
		switch {
		case c > 0:
			out.pushPacked(ac.coeffs[ai], ac.exps[ai])
			ai++
		case c < 0:
			bcoeff := bc.coeffs[bi]
			if negate {
				bcoeff = negated(bcoeff)
			}
			out.pushPacked(bcoeff, bc.exps[bi])
			bi++
		default:
			var sum bigint.Int
			if negate {
				sum.Sub(&ac.coeffs[ai], &bc.coeffs[bi])
			} else {
				sum.Add(&ac.coeffs[ai], &bc.coeffs[bi])
			}
			if !sum.IsZero() {
				out.pushPacked(sum, ac.exps[ai])
			}
			ai++
			bi++
		}
	}
	for ; ai < ac.Len(); ai++ {
		out.pushPacked(ac.coeffs[ai], ac.exps[ai])
	}
	for ; bi < bc.Len(); bi++ {
		bcoeff := bc.coeffs[bi]
		if negate {
			bcoeff = negated(bcoeff)
		}
		out.pushPacked(bcoeff, bc.exps[bi])
	}
	return out
}

func negated(x bigint.Int) bigint.Int {
	var z bigint.Int
	z.Neg(&x)
	return z
}

func repackCopy(p *Polynomial, l expvec.Layout) *Polynomial {
	q := p.Clone()
	q.repackTo(l)
	return q
}

// Neg returns -a.
func Neg(a *Polynomial) *Polynomial {
	q := a.Clone()
	for i := range q.coeffs {
		q.coeffs[i].Neg(&q.coeffs[i])
	}
	return q
}

// ScalarMul returns a scaled by the nonzero constant c. Scalar
// multiplication by zero returns the empty polynomial.
func ScalarMul(a *Polynomial, c *bigint.Int) *Polynomial {
	if c.IsZero() {
		return &Polynomial{ctx: a.ctx, layout: a.layout}
	}
	q := a.Clone()
	for i := range q.coeffs {
		q.coeffs[i].Mul(&q.coeffs[i], c)
	}
	return q
}

// ScalarDivExact returns a / c, panicking if any coefficient is not
// exactly divisible by the nonzero constant c.
func ScalarDivExact(a *Polynomial, c *bigint.Int) *Polynomial {
	if c.IsZero() {
		panic(ErrDivideByZero)
	}
	q := a.Clone()
	for i := range q.coeffs {
		quo, rem := bigint.QuoRem(&q.coeffs[i], c)
		if !rem.IsZero() {
			panic(ErrNotExact)
		}
		q.coeffs[i] = quo
	}
	return q
}
