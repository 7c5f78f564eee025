// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"sort"

	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

// Polynomial is a sparse multivariate polynomial: an ordered list of
// (coefficient, monomial) terms over a shared Context and exponent
// bit width. The zero value is not valid; construct with
// NewPolynomial.
type Polynomial struct {
	ctx    Context
	layout expvec.Layout
	coeffs []bigint.Int
	exps   [][]uint64
}

// NewPolynomial returns the empty polynomial (the additive identity)
// over ctx with an initial exponent width able to hold minBits per
// variable.
func NewPolynomial(ctx Context, minBits int) *Polynomial {
	if ctx.NVars <= 0 {
		panic("mpoly: Context.NVars must be positive")
	}
	return &Polynomial{
		ctx:    ctx,
		layout: expvec.NewLayout(ctx.fieldCount(), minBits),
	}
}

// Context returns p's ambient shape.
func (p *Polynomial) Context() Context { return p.ctx }

// Len returns the number of nonzero terms.
func (p *Polynomial) Len() int { return len(p.coeffs) }

// Reserve grows p's backing arrays to hold at least n terms without
// reallocating on subsequent pushes.
func (p *Polynomial) Reserve(n int) {
	if cap(p.coeffs) >= n {
		return
	}
	nc := make([]bigint.Int, len(p.coeffs), n)
	copy(nc, p.coeffs)
	p.coeffs = nc
	ne := make([][]uint64, len(p.exps), n)
	copy(ne, p.exps)
	p.exps = ne
}

// Truncate drops all terms beyond index n.
func (p *Polynomial) Truncate(n int) {
	p.coeffs = p.coeffs[:n]
	p.exps = p.exps[:n]
}

// Swap exchanges the contents of p and q; it transfers ownership of
// backing storage without copying.
func (p *Polynomial) Swap(q *Polynomial) {
	*p, *q = *q, *p
}

// Push appends a new term with the given variable exponents (length
// ctx.NVars, no hidden degree field) and coefficient, without
// checking order or uniqueness. Callers must call Canonicalize (or
// know by construction that the result is already canonical) before
// exposing p.
func (p *Polynomial) Push(coeff *bigint.Int, varExps []uint64) {
	if coeff.IsZero() {
		return
	}
	if len(varExps) != p.ctx.NVars {
		panic("mpoly: wrong exponent vector length")
	}
	fields := p.ctx.toFields(varExps)
	if overflowsWidth(fields, p.layout) {
		p.repackWider(fields)
	}
	packed := p.layout.Pack(fields)
	if p.layout.Overflows(packed) {
		p.repackForValue(fields)
		packed = p.layout.Pack(fields)
	}
	var c bigint.Int
	c.Set(coeff)
	p.coeffs = append(p.coeffs, c)
	p.exps = append(p.exps, packed)
}

// pushPacked appends a term whose exponent is already packed at p's
// current layout, used by the heap/array engines which work directly
// in packed form.
func (p *Polynomial) pushPacked(coeff bigint.Int, packed []uint64) {
	if coeff.IsZero() {
		return
	}
	p.coeffs = append(p.coeffs, coeff)
	p.exps = append(p.exps, packed)
}

func overflowsWidth(maxFields []uint64, l expvec.Layout) bool {
	limit := uint64(1)<<uint(l.Bits-1) - 1
	for _, v := range maxFields {
		if v > limit {
			return true
		}
	}
	return false
}

// repackForValue widens p's layout until fields can be represented,
// per the EV width-policy retry rule.
func (p *Polynomial) repackForValue(fields []uint64) {
	l := p.layout
	for overflowsWidth(fields, l) {
		l = l.Widen()
	}
	p.repackTo(l)
}

func (p *Polynomial) repackWider(maxFields []uint64) {
	p.repackForValue(maxFields)
}

// repackTo rewrites every stored exponent at the new layout.
func (p *Polynomial) repackTo(l expvec.Layout) {
	if l.Bits == p.layout.Bits {
		return
	}
	p.exps = expvec.Repack(p.exps, p.layout, l)
	p.layout = l
}

// EnsureWidth widens p's layout, if needed, to be at least as wide as
// other's, returning the (possibly unchanged) common layout. Used by
// operations that must align two operands before working in packed
// form together.
func EnsureWidth(p, q *Polynomial) expvec.Layout {
	if p.layout.Bits >= q.layout.Bits {
		q.repackTo(p.layout)
		return p.layout
	}
	p.repackTo(q.layout)
	return q.layout
}

// sortTerms reorders p's terms into strictly descending order under
// its Context's ordering.
func (p *Polynomial) sortTerms() {
	idx := make([]int, p.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return monomial.Compare(p.exps[idx[i]], p.exps[idx[j]], p.layout, p.ctx.Order) > 0
	})
	coeffs := make([]bigint.Int, p.Len())
	exps := make([][]uint64, p.Len())
	for newPos, oldPos := range idx {
		coeffs[newPos] = p.coeffs[oldPos]
		exps[newPos] = p.exps[oldPos]
	}
	p.coeffs, p.exps = coeffs, exps
}

// combineLikeTerms merges adjacent terms with equal exponents, drops
// any whose combined coefficient is zero, and requires terms already
// be sorted.
func (p *Polynomial) combineLikeTerms() {
	if p.Len() == 0 {
		return
	}
	coeffs := p.coeffs[:0]
	exps := p.exps[:0]
	i := 0
	for i < len(p.coeffs) {
		acc := p.coeffs[i]
		exp := p.exps[i]
		j := i + 1
		for j < len(p.coeffs) && monomial.Equal(p.exps[j], exp) {
			acc.Add(&acc, &p.coeffs[j])
			j++
		}
		if !acc.IsZero() {
			coeffs = append(coeffs, acc)
			exps = append(exps, exp)
		}
		i = j
	}
	p.coeffs, p.exps = coeffs, exps
}

// Canonicalize sorts and merges p's terms in place so that it holds
// its sorted, coefficient-unique, zero-free invariant. Operations
// that cannot guarantee order or uniqueness while constructing a
// result must call this before returning it to a caller.
func (p *Polynomial) Canonicalize() {
	p.sortTerms()
	p.combineLikeTerms()
}

// IsCanonical validates the canonical-form invariant: nonzero coefficients, strictly
// descending unique exponents, and no sentinel bit set anywhere.
func (p *Polynomial) IsCanonical() bool {
	for i, c := range p.coeffs {
		if c.IsZero() {
			return false
		}
		if p.layout.Overflows(p.exps[i]) {
			return false
		}
		if i > 0 && monomial.Compare(p.exps[i-1], p.exps[i], p.layout, p.ctx.Order) <= 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return p.Len() == 0 }

// LeadingExp returns the packed leading exponent. It panics if p is
// zero.
func (p *Polynomial) LeadingExp() []uint64 {
	if p.Len() == 0 {
		panic("mpoly: LeadingExp of zero polynomial")
	}
	return p.exps[0]
}

// LeadingCoeff returns a copy of the leading coefficient. It panics
// if p is zero.
func (p *Polynomial) LeadingCoeff() bigint.Int {
	if p.Len() == 0 {
		panic("mpoly: LeadingCoeff of zero polynomial")
	}
	var c bigint.Int
	c.Set(&p.coeffs[0])
	return c
}

// Term returns a copy of term i's coefficient and its variable
// exponent vector.
func (p *Polynomial) Term(i int) (coeff bigint.Int, varExps []uint64) {
	var c bigint.Int
	c.Set(&p.coeffs[i])
	return c, p.ctx.fromFields(p.layout.Unpack(p.exps[i]))
}

// SetTermCoeff replaces the coefficient of term i in place, dropping
// the term entirely if the new coefficient is zero.
func (p *Polynomial) SetTermCoeff(i int, coeff *bigint.Int) {
	if coeff.IsZero() {
		p.coeffs = append(p.coeffs[:i], p.coeffs[i+1:]...)
		p.exps = append(p.exps[:i], p.exps[i+1:]...)
		return
	}
	p.coeffs[i].Set(coeff)
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	q := &Polynomial{ctx: p.ctx, layout: p.layout}
	q.coeffs = make([]bigint.Int, p.Len())
	q.exps = make([][]uint64, p.Len())
	for i := range p.coeffs {
		q.coeffs[i].Set(&p.coeffs[i])
		e := make([]uint64, len(p.exps[i]))
		copy(e, p.exps[i])
		q.exps[i] = e
	}
	return q
}

// Degrees returns the maximum exponent of each variable occurring in p.
func (p *Polynomial) Degrees() []uint64 {
	fields := expvec.Degrees(p.exps, p.layout)
	return p.ctx.fromFields(fields)
}

// DegreeInVariable returns the maximum exponent of variable j in p.
func (p *Polynomial) DegreeInVariable(j int) uint64 {
	return p.Degrees()[j]
}

// EvaluateAll evaluates p at the point given by one tagged integer per
// variable, accumulating monomial-by-monomial.
func (p *Polynomial) EvaluateAll(point []bigint.Int) bigint.Int {
	if len(point) != p.ctx.NVars {
		panic("mpoly: EvaluateAll point length mismatch")
	}
	var total bigint.Int
	for i := range p.coeffs {
		v := p.ctx.fromFields(p.layout.Unpack(p.exps[i]))
		term := powerProduct(point, v)
		term.Mul(&term, &p.coeffs[i])
		total.Add(&total, &term)
	}
	return total
}

func powerProduct(point []bigint.Int, exps []uint64) bigint.Int {
	var acc bigint.Int
	acc.SetInt64(1)
	for j, e := range exps {
		for k := uint64(0); k < e; k++ {
			acc.Mul(&acc, &point[j])
		}
	}
	return acc
}
