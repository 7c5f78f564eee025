// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/gcdinfo"
	"gonum.org/v1/mpoly/internal/gcdstrategy"
	"gonum.org/v1/mpoly/internal/modring"
)

// newEstimatorRand seeds the modular-evaluation point sampler from
// the clock; an unlucky point only costs one wasted prime, retried by
// gcdinfo.Estimate, so no seed needs to be reproducible across runs.
func newEstimatorRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// gcdPrimes are the moduli the estimator samples when projecting a
// degree bound for the variable it eliminates next; all ten are
// under 2^20 so Ring.Mul's fast path never needs the 128-bit divide.
var gcdPrimes = []uint64{1000003, 1000033, 1000037, 1000039, 1000081, 1000099, 1000117, 1000121, 1000133, 1000151}

// GCD returns the greatest common divisor of a and b, normalized to a
// positive leading coefficient. It handles the trivial cases (either
// operand a nonzero constant), the monomial shortcut (either operand
// a single term), and otherwise extracts integer content before
// descending into the dense recursive pseudo-remainder-sequence
// engine that does the real work.
func GCD(a, b *Polynomial) *Polynomial {
	checkSameShape(a, b)
	if a.IsZero() {
		return normalizeSign(b.Clone())
	}
	if b.IsZero() {
		return normalizeSign(a.Clone())
	}
	if isConstant(a) {
		ca, _ := a.Term(0)
		cb := contentOf(b)
		return constantPoly(a.ctx, bigint.GCD(&ca, &cb))
	}
	if isConstant(b) {
		return GCD(b, a)
	}
	if a.Len() == 1 || b.Len() == 1 {
		return gcdMonomial(a, b)
	}

	ca := contentOf(a)
	cb := contentOf(b)
	gc := bigint.GCD(&ca, &cb)
	ppA := ScalarDivExact(a, &ca)
	ppB := ScalarDivExact(b, &cb)

	g := recursiveGCD(ppA, ppB)
	return normalizeSign(ScalarMul(g, &gc))
}

func isConstant(p *Polynomial) bool {
	if p.Len() != 1 {
		return false
	}
	_, ve := p.Term(0)
	for _, v := range ve {
		if v != 0 {
			return false
		}
	}
	return true
}

func constantPoly(ctx Context, c bigint.Int) *Polynomial {
	out := NewPolynomial(ctx, 8)
	out.Push(&c, make([]uint64, ctx.NVars))
	out.Canonicalize()
	return out
}

func contentOf(p *Polynomial) bigint.Int {
	coeffs := make([]bigint.Int, p.Len())
	for i := range coeffs {
		c, _ := p.Term(i)
		coeffs[i] = c
	}
	return gcdstrategy.Content(coeffs)
}

// gcdMonomial handles the case where one operand has a single term,
// via gcdstrategy's MonomialGCD: gcd(coefficient, content) times the
// componentwise minimum exponent against the other operand's monomial
// content.
func gcdMonomial(a, b *Polynomial) *Polynomial {
	mono, poly := a, b
	if poly.Len() == 1 && mono.Len() != 1 {
		mono, poly = b, a
	}
	mc, me := mono.Term(0)
	exps := make([][]uint64, poly.Len())
	for i := range exps {
		_, exps[i] = poly.Term(i)
	}
	minExp := gcdstrategy.MinExp(exps)
	cPoly := contentOf(poly)
	g, exp := gcdstrategy.MonomialGCD(mc, me, cPoly, minExp)
	out := NewPolynomial(a.ctx, 8)
	out.Push(&g, exp)
	out.Canonicalize()
	return normalizeSign(out)
}

func normalizeSign(p *Polynomial) *Polynomial {
	if p.IsZero() {
		return p
	}
	if p.LeadingCoeff().Sign() < 0 {
		return Neg(p)
	}
	return p
}

// recursiveGCD computes the gcd of two non-constant polynomials,
// already stripped of their overall integer content, by eliminating
// one variable at a time. It picks the main variable by running
// selectMainVar's modular-evaluation estimate over every variable
// occurring in either operand and eliminating the one projected to
// leave the smallest gcd degree first, the ordering that keeps the
// pseudo-remainder sequence's intermediate expression swell smallest.
// It then strips each operand's own content with respect to that
// variable (the gcd of its coefficient buckets, themselves polynomials
// in the remaining variables — a stronger condition than integer
// content alone, since two coprime integers can still share a
// polynomial factor once the other variables are involved), and runs
// the classical pseudo-remainder sequence on the two mainVar-primitive
// parts. Pseudo-division's scaling steps can reintroduce spurious
// content into the last nonzero remainder even when the inputs were
// already primitive, so that remainder is stripped again the same way
// before its primitive part is multiplied back against the gcd of the
// two input contents, folded by recursing through the top-level GCD
// entry point. The recursion terminates because each level permanently
// retires one variable: every coefficient bucket produced by
// decompose has that level's main variable fixed at zero.
func recursiveGCD(a, b *Polynomial) *Polynomial {
	if a.IsZero() {
		return normalizeSign(b)
	}
	if b.IsZero() {
		return normalizeSign(a)
	}
	mainVar := selectMainVar(a, b)
	if mainVar == -1 {
		ca, _ := a.Term(0)
		cb, _ := b.Term(0)
		return constantPoly(a.ctx, bigint.GCD(&ca, &cb))
	}

	contentA, ppA := contentAndPrimitivePart(a, mainVar)
	contentB, ppB := contentAndPrimitivePart(b, mainVar)
	gcContent := GCD(contentA, contentB)

	x, y := ppA, ppB
	if x.DegreeInVariable(mainVar) < y.DegreeInVariable(mainVar) {
		x, y = y, x
	}
	for !y.IsZero() {
		r := pseudoRemainder(x, y, mainVar)
		x, y = y, r
	}
	cand := x

	_, candPP := contentAndPrimitivePart(cand, mainVar)
	return normalizeSign(Mul(gcContent, candPP))
}

// contentAndPrimitivePart returns p's content with respect to
// mainVar, the gcd of p's coefficient buckets in that variable, and
// p divided exactly by that content.
func contentAndPrimitivePart(p *Polynomial, mainVar int) (content, primitivePart *Polynomial) {
	buckets := decompose(p, mainVar)
	for _, poly := range buckets {
		if content == nil {
			content = poly
			continue
		}
		content = GCD(content, poly)
	}
	_, pp := Divides(p, content)
	return content, pp
}

// pseudoRemainder reduces a modulo b in mainVar via the classical
// stepwise pseudo-division: at each step it scales the whole of the
// current remainder by b's leading coefficient (in mainVar) before
// subtracting the shifted multiple of b that cancels the top term, so
// no division is ever required. deg(r, mainVar) strictly decreases
// each iteration since the top terms cancel by construction.
func pseudoRemainder(a, b *Polynomial, mainVar int) *Polynomial {
	degB := b.DegreeInVariable(mainVar)
	lcB := bucketAt(b, mainVar, degB)
	r := a
	for !r.IsZero() && r.DegreeInVariable(mainVar) >= degB {
		degR := r.DegreeInVariable(mainVar)
		shift := degR - degB
		lcR := bucketAt(r, mainVar, degR)
		scaledR := Mul(r, lcB)
		shiftedB := shiftVar(b, mainVar, shift)
		term := Mul(lcR, shiftedB)
		r = Sub(scaledR, term)
	}
	return r
}

// bucketAt extracts the coefficient of mainVar^k from p, as a
// polynomial in the remaining variables.
func bucketAt(p *Polynomial, mainVar int, k uint64) *Polynomial {
	out := NewPolynomial(p.ctx, 8)
	for i := 0; i < p.Len(); i++ {
		c, ve := p.Term(i)
		if ve[mainVar] != k {
			continue
		}
		ve2 := append([]uint64(nil), ve...)
		ve2[mainVar] = 0
		out.Push(&c, ve2)
	}
	out.Canonicalize()
	return out
}

// decompose buckets every term of p by its mainVar exponent, zeroing
// mainVar in each bucket's own exponent vectors so mainVar can never
// reappear in a later recursive call.
func decompose(p *Polynomial, mainVar int) map[uint64]*Polynomial {
	buckets := make(map[uint64]*Polynomial)
	for i := 0; i < p.Len(); i++ {
		c, ve := p.Term(i)
		k := ve[mainVar]
		bkt, ok := buckets[k]
		if !ok {
			bkt = NewPolynomial(p.ctx, 8)
			buckets[k] = bkt
		}
		ve2 := append([]uint64(nil), ve...)
		ve2[mainVar] = 0
		bkt.Push(&c, ve2)
	}
	for _, bkt := range buckets {
		bkt.Canonicalize()
	}
	return buckets
}

// shiftVar returns p * x_mainVar^shift.
func shiftVar(p *Polynomial, mainVar int, shift uint64) *Polynomial {
	out := NewPolynomial(p.ctx, 8)
	for i := 0; i < p.Len(); i++ {
		c, ve := p.Term(i)
		ve2 := append([]uint64(nil), ve...)
		ve2[mainVar] += shift
		out.Push(&c, ve2)
	}
	out.Canonicalize()
	return out
}

// selectMainVar picks which variable recursiveGCD eliminates next. If
// only one candidate variable has positive degree in a or b, it is
// returned directly; otherwise estimateGCDInfo's modular-evaluation
// pipeline projects every candidate's gcd degree and the one with the
// smallest projected degree is chosen, since eliminating it first
// keeps the pseudo-remainder sequence's coefficients smallest for
// longest. It returns -1 when neither operand depends on any
// variable.
func selectMainVar(a, b *Polynomial) int {
	var candidates []int
	for v := 0; v < a.ctx.NVars; v++ {
		if a.DegreeInVariable(v) > 0 || b.DegreeInVariable(v) > 0 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	rec := estimateGCDInfo(a, b)
	best := candidates[0]
	for _, v := range candidates[1:] {
		if rec.GDeflateDegBound[v] < rec.GDeflateDegBound[best] {
			best = v
		}
	}
	return best
}

// estimateGCDInfo runs the modular-evaluation degree estimator over
// every variable: GI's limits, strides, and modular-evaluation degree
// projection pipeline, whose output selectMainVar uses to choose
// which variable recursiveGCD eliminates next.
func estimateGCDInfo(a, b *Polynomial) *gcdinfo.Record {
	nvars := a.ctx.NVars
	aExps := make([][]uint64, a.Len())
	for i := range aExps {
		_, aExps[i] = a.Term(i)
	}
	bExps := make([][]uint64, b.Len())
	for i := range bExps {
		_, bExps[i] = b.Term(i)
	}
	rec := gcdinfo.Limits(nvars, aExps, bExps)
	rec.Strides(aExps, bExps)

	rnd := newEstimatorRand()
	for v := 0; v < nvars; v++ {
		rec.Estimate(v, evaluatorFor(a), evaluatorFor(b), gcdPrimes, rnd)
	}
	return rec
}

// evaluatorFor closes over a polynomial and returns a
// gcdinfo.Evaluator that reduces it modulo a prime at a random point,
// leaving freeVar's dependency intact as a dense modring.Poly.
func evaluatorFor(p *Polynomial) gcdinfo.Evaluator {
	return func(ring modring.Ring, point []uint64, freeVar int) modring.Poly {
		deg := p.DegreeInVariable(freeVar)
		coeffs := make([]uint64, deg+1)
		for i := 0; i < p.Len(); i++ {
			c, ve := p.Term(i)
			val := ring.ReduceBig(c.Big())
			for j, e := range ve {
				if j == freeVar {
					continue
				}
				val = ring.Mul(val, ring.Pow(point[j], e))
			}
			k := ve[freeVar]
			coeffs[k] = ring.Add(coeffs[k], val)
		}
		return modring.NewPoly(ring, coeffs)
	}
}
