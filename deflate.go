// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

// Deflation computes p's shift and stride: shift[v] is the minimum
// exponent of variable v across every term of p, and stride[v] is the
// gcd of (e[v]-shift[v]) over every term, 0 when that difference is
// always 0 (v is absent or constant across p's terms). Deflate and
// Inflate are exact inverses under these parameters.
func Deflation(p *Polynomial) (shift, stride []uint64) {
	nvars := p.ctx.NVars
	shift = make([]uint64, nvars)
	stride = make([]uint64, nvars)
	if p.IsZero() {
		return shift, stride
	}
	_, first := p.Term(0)
	copy(shift, first)
	for i := 1; i < p.Len(); i++ {
		_, ve := p.Term(i)
		for v, e := range ve {
			if e < shift[v] {
				shift[v] = e
			}
		}
	}
	for i := 0; i < p.Len(); i++ {
		_, ve := p.Term(i)
		for v, e := range ve {
			stride[v] = gcdU64(stride[v], e-shift[v])
		}
	}
	return shift, stride
}

// Deflate remaps every exponent e[v] to (e[v]-shift[v])/stride[v],
// leaving a zero field wherever stride[v] is 0. It panics if any term
// of p has an exponent below the corresponding shift, or a nonzero
// stride that does not divide e[v]-shift[v] evenly; the parameters
// returned by Deflation always satisfy both.
func Deflate(p *Polynomial, shift, stride []uint64) *Polynomial {
	out := NewPolynomial(p.ctx, 8)
	for i := 0; i < p.Len(); i++ {
		c, ve := p.Term(i)
		ve2 := make([]uint64, len(ve))
		for v, e := range ve {
			if e < shift[v] {
				panic("mpoly: Deflate: exponent below shift")
			}
			d := e - shift[v]
			if stride[v] == 0 {
				if d != 0 {
					panic("mpoly: Deflate: nonzero exponent under a zero stride")
				}
				continue
			}
			if d%stride[v] != 0 {
				panic("mpoly: Deflate: stride does not divide exponent range")
			}
			ve2[v] = d / stride[v]
		}
		out.Push(&c, ve2)
	}
	out.Canonicalize()
	return out
}

// Inflate remaps every exponent e[v] to e[v]*stride[v]+shift[v], the
// inverse of Deflate under the same shift and stride.
func Inflate(p *Polynomial, shift, stride []uint64) *Polynomial {
	out := NewPolynomial(p.ctx, 8)
	for i := 0; i < p.Len(); i++ {
		c, ve := p.Term(i)
		ve2 := make([]uint64, len(ve))
		for v, e := range ve {
			ve2[v] = e*stride[v] + shift[v]
		}
		out.Push(&c, ve2)
	}
	out.Canonicalize()
	return out
}

// gcdU64 is the same textbook Euclidean loop internal/gcdinfo uses
// for its own stride refinement, kept local since Deflation has no
// other reason to import that package.
func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
