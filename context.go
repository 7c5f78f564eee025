// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import "gonum.org/v1/mpoly/internal/monomial"

// Ordering names a supported monomial order.
type Ordering = monomial.Ordering

// Supported orderings.
const (
	Lex       = monomial.Lex
	DegLex    = monomial.DegLex
	DegRevLex = monomial.DegRevLex
)

// Context carries the ambient shape every polynomial in a computation
// shares: its number of variables and its monomial order, passed
// explicitly rather than stored in package globals.
type Context struct {
	NVars int
	Order Ordering
}

// fieldCount returns the number of packed fields per monomial under
// ctx, including the hidden graded-degree field when present.
func (ctx Context) fieldCount() int {
	if ctx.Order.Graded() {
		return ctx.NVars + 1
	}
	return ctx.NVars
}

// toFields expands a caller-supplied variable exponent vector v (len
// ctx.NVars) into the full packed-field vector, prepending the total
// degree when the ordering is graded.
func (ctx Context) toFields(v []uint64) []uint64 {
	if !ctx.Order.Graded() {
		out := make([]uint64, len(v))
		copy(out, v)
		return out
	}
	out := make([]uint64, len(v)+1)
	var deg uint64
	for i, e := range v {
		out[i+1] = e
		deg += e
	}
	out[0] = deg
	return out
}

// fromFields strips the hidden degree field back off, returning the
// per-variable exponents only.
func (ctx Context) fromFields(fields []uint64) []uint64 {
	if !ctx.Order.Graded() {
		out := make([]uint64, len(fields))
		copy(out, fields)
		return out
	}
	return append([]uint64(nil), fields[1:]...)
}
