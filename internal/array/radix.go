// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array implements the dense-array multiplication and
// exact-division path used when the product of per-variable exponent
// bounds is small. It indexes a flat backing array by a
// mixed-radix encoding of the unpacked exponent vector, the way a
// multi-dimensional array is addressed by row-major strides.
package array

import "gonum.org/v1/mpoly/internal/bigint"

// MaxArraySize is the admission threshold: the dense engine is only
// used when a radix's total Size is at or below this bound.
const MaxArraySize = 300000

// Block is the blocking factor for the engine's nested multiply loop.
const Block = 128

// Radix is a mixed-radix addressing scheme over per-variable exponent
// bounds.
type Radix struct {
	bounds  []uint64
	strides []int
	Size    int
}

// NewRadix builds a Radix whose fields range over [0, bounds[i]), most
// significant variable first.
func NewRadix(bounds []uint64) Radix {
	strides := make([]int, len(bounds))
	size := 1
	for i := len(bounds) - 1; i >= 0; i-- {
		strides[i] = size
		size *= int(bounds[i])
	}
	return Radix{bounds: bounds, strides: strides, Size: size}
}

// Fits reports whether this radix is small enough for the dense path.
func (r Radix) Fits() bool { return r.Size > 0 && r.Size <= MaxArraySize }

// Index returns the flat array offset of an unpacked exponent vector.
func (r Radix) Index(exps []uint64) int {
	idx := 0
	for i, e := range exps {
		idx += int(e) * r.strides[i]
	}
	return idx
}

// IndexSum returns the flat offset of a+b without allocating an
// intermediate exponent vector.
func (r Radix) IndexSum(a, b []uint64) int {
	idx := 0
	for i := range a {
		idx += int(a[i]+b[i]) * r.strides[i]
	}
	return idx
}

// Unindex recovers the unpacked exponent vector for a flat offset.
func (r Radix) Unindex(idx int) []uint64 {
	exps := make([]uint64, len(r.bounds))
	for i, s := range r.strides {
		exps[i] = uint64(idx / s)
		idx %= s
	}
	return exps
}

// Operand is the engine's read-only term view: parallel coefficient and
// unpacked-exponent arrays, in any order.
type Operand struct {
	Coeffs []bigint.Int
	Exps   [][]uint64
}

func (o Operand) Len() int { return len(o.Coeffs) }

// Sink receives emitted (coefficient, exponent) cells; unlike the
// heap engine, this engine does not guarantee emission order, since
// the caller canonicalizes (sorts and compacts) the result regardless.
type Sink interface {
	Emit(coeff bigint.Int, exp []uint64)
}

// degreeBounds returns, per variable, one more than the maximum
// exponent appearing in exps.
func degreeBounds(nvars int, exps [][]uint64) []uint64 {
	b := make([]uint64, nvars)
	for i := range b {
		b[i] = 1
	}
	for _, e := range exps {
		for i, v := range e {
			if v+1 > b[i] {
				b[i] = v + 1
			}
		}
	}
	return b
}
