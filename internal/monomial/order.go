// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package monomial implements comparison, addition, subtraction, and
// divisibility testing on packed exponent vectors.
package monomial

import "gonum.org/v1/mpoly/internal/expvec"

// Ordering names a supported monomial order. The zero value is Lex.
type Ordering int

const (
	// Lex is pure lexicographic order: compare variable 0 first.
	Lex Ordering = iota
	// DegLex orders by total degree first, then lexicographically.
	DegLex
	// DegRevLex orders by total degree first, then by reverse
	// lexicographic order on the remaining tie.
	DegRevLex
)

// Graded reports whether ord carries a hidden leading total-degree
// field.
func (ord Ordering) Graded() bool {
	return ord == DegLex || ord == DegRevLex
}

// Compare returns the sign of the ordering's comparison of monomials
// a and b, both packed under layout l for ordering ord: negative if a
// is smaller than b, zero if equal, positive if a is larger. Terms are
// stored strictly descending, so Compare(a,b) > 0 means a is the
// larger monomial and is stored before b.
func Compare(a, b []uint64, l expvec.Layout, ord Ordering) int {
	ua, ub := l.Unpack(a), l.Unpack(b)
	if ord == DegRevLex {
		// Degree field compares normally; variable fields compare from
		// the last variable backward with reversed sense.
		if c := cmp(ua[0], ub[0]); c != 0 {
			return c
		}
		for i := l.N - 1; i >= 1; i-- {
			if c := cmp(ub[i], ua[i]); c != 0 {
				return c
			}
		}
		return 0
	}
	for i := 0; i < l.N; i++ {
		if c := cmp(ua[i], ub[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmp(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b pack the same monomial.
func Equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Add sets dst = a + b, a blind word-wise sum. Correctness depends on
// every field's sentinel bit being clear on entry:
// a genuine per-field overflow then manifests purely as that field's
// own sentinel bit, since two values each under 2^(Bits-1) can never
// sum past the field's Bits-wide capacity. The caller must check
// l.Overflows(dst) before trusting the result.
func Add(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub sets dst = a - b, a blind word-wise difference. A field that
// goes negative sets its own sentinel bit and may additionally borrow
// into the next field's low bit; this can only ever manufacture a
// spurious *additional* overflow flag, never suppress a true one, so
// checking l.Overflows(dst) after Sub remains a safe (if occasionally
// conservative) non-negativity test.
func Sub(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Divides reports whether u's monomial divides v's, writing v-u into
// dst when it does. l must be the common packing
// layout of u, v, and dst.
func Divides(dst, v, u []uint64, l expvec.Layout) bool {
	Sub(dst, v, u)
	return !l.Overflows(dst)
}
