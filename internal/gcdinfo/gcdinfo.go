// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcdinfo implements GI, the per-variable statistics record
// and modular-evaluation estimator the GCD dispatcher uses to choose
// which variable to eliminate next.
package gcdinfo

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/mpoly/internal/modring"
)

// maxEstimatorRetries bounds how many random evaluation primes the
// estimator tries before giving up and falling back to a conservative
// static bound.
const maxEstimatorRetries = 10

// Record holds GI's scratch state for one GCD attempt, indexed per
// variable.
type Record struct {
	NVars int

	AMinExp, AMaxExp []uint64
	BMinExp, BMaxExp []uint64
	Stride           []uint64
	ADeflateDeg      []uint64
	BDeflateDeg      []uint64

	GDeflateDegBound []uint64
	GTermCountEst    []uint64
}

// Limits runs GI's limits pass: per-variable coordinate-wise minima
// and maxima of the exponents occurring in aExps and bExps, each a
// slice of unpacked per-variable exponent vectors.
func Limits(nvars int, aExps, bExps [][]uint64) *Record {
	r := &Record{
		NVars:   nvars,
		AMinExp: make([]uint64, nvars),
		AMaxExp: make([]uint64, nvars),
		BMinExp: make([]uint64, nvars),
		BMaxExp: make([]uint64, nvars),
	}
	fillMinMax(aExps, r.AMinExp, r.AMaxExp)
	fillMinMax(bExps, r.BMinExp, r.BMaxExp)
	return r
}

func fillMinMax(exps [][]uint64, min, max []uint64) {
	if len(exps) == 0 {
		return
	}
	copy(min, exps[0])
	copy(max, exps[0])
	for _, e := range exps[1:] {
		for j, v := range e {
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
}

// Strides runs GI's stride pass: stride[j] starts as
// gcd(Amax[j]-Amin[j], Bmax[j]-Bmin[j]) and is refined term by term,
// exiting early once every stride has reached 1 (the finest possible),
// and then sets ADeflateDeg/BDeflateDeg from the final strides.
func (r *Record) Strides(aExps, bExps [][]uint64) {
	r.Stride = make([]uint64, r.NVars)
	for j := 0; j < r.NVars; j++ {
		r.Stride[j] = gcdU64(r.AMaxExp[j]-r.AMinExp[j], r.BMaxExp[j]-r.BMinExp[j])
	}
	refine := func(exps [][]uint64, min []uint64) bool {
		allOne := true
		for _, e := range exps {
			for j, v := range e {
				r.Stride[j] = gcdU64(r.Stride[j], v-min[j])
				if r.Stride[j] != 1 {
					allOne = false
				}
			}
		}
		return allOne
	}
	if !refine(aExps, r.AMinExp) {
		refine(bExps, r.BMinExp)
	}

	r.ADeflateDeg = make([]uint64, r.NVars)
	r.BDeflateDeg = make([]uint64, r.NVars)
	for j := 0; j < r.NVars; j++ {
		s := r.Stride[j]
		if s == 0 {
			s = 1
		}
		r.ADeflateDeg[j] = (r.AMaxExp[j] - r.AMinExp[j]) / s
		r.BDeflateDeg[j] = (r.BMaxExp[j] - r.BMinExp[j]) / s
	}
}

// gcdU64 folds the per-term stride refinement via the classical
// Euclidean algorithm. mathutil's GCD helpers operate on *big.Int or
// machine ints sized for its own bignum-adjacent use cases, not a
// tight uint64 loop run once per term of both operands; reproducing
// the textbook three-line Euclid step here avoids a conversion on
// every refinement without losing anything mathutil would have added.
func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Evaluator evaluates a polynomial's terms modulo a prime at a random
// point, with one variable left symbolic, producing a Poly over
// modring. Implementations live in the mpoly package (which owns
// Polynomial) and are injected here to avoid an import cycle.
type Evaluator func(ring modring.Ring, point []uint64, freeVar int) modring.Poly

// Estimate runs the degree estimator for freeVar: on up to
// maxEstimatorRetries random primes, evaluate A and B with
// variable freeVar left symbolic at a random point for every other
// variable, compute the univariate gcd over that prime's field, and
// use the surviving attempts to set GDeflateDegBound/GTermCountEst.
// Attempts whose projected degree disagrees with the running minimum
// are discarded. If every attempt fails, the estimator falls back to
// bound = min(Adeg, Bdeg) and termEstimate = (bound+1)/2.
func (r *Record) Estimate(freeVar int, evalA, evalB Evaluator, primes []uint64, rnd *rand.Rand) {
	if r.GDeflateDegBound == nil {
		r.GDeflateDegBound = make([]uint64, r.NVars)
		r.GTermCountEst = make([]uint64, r.NVars)
	}

	bestDeg := -1
	var bestTerms uint64
	tries := 0
	for _, p := range primes {
		if tries >= maxEstimatorRetries {
			break
		}
		tries++
		ring := modring.New(p)
		point := make([]uint64, r.NVars)
		for j := range point {
			if j == freeVar {
				continue
			}
			point[j] = rnd.Uint64() % p
		}
		pa := evalA(ring, point, freeVar)
		pb := evalB(ring, point, freeVar)
		if pa.IsZero() || pb.IsZero() {
			continue
		}
		g := modring.GCD(pa, pb)
		deg := g.Degree()
		if deg < 0 {
			continue
		}
		if bestDeg == -1 || deg < bestDeg {
			bestDeg = deg
			bestTerms = uint64(g.NumNonzero())
		}
	}

	if bestDeg == -1 {
		bound := r.ADeflateDeg[freeVar]
		if r.BDeflateDeg[freeVar] < bound {
			bound = r.BDeflateDeg[freeVar]
		}
		r.GDeflateDegBound[freeVar] = bound
		r.GTermCountEst[freeVar] = (bound + 1) / 2
		return
	}
	r.GDeflateDegBound[freeVar] = uint64(bestDeg)
	r.GTermCountEst[freeVar] = bestTerms
}
