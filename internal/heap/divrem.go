// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

// DivExact computes a/b term by term, emitting quotient terms to quot
// in strictly descending order. It reports exact=false (quot left
// partially populated) as soon as a is found not to be a multiple of
// b, and returns Overflow if any exponent subtraction overflows
// layout.
func DivExact(a, b Operand, layout expvec.Layout, ord monomial.Ordering, quot Sink) (exact bool, err error) {
	return runProtocol(a, b, layout, ord, modeExact, quot, nil)
}

// FloorDiv computes the polynomial floor quotient of a by b: every
// term of a that is not an exact multiple of b's leading term at its
// point of elimination is simply dropped rather than reported as an
// error.
func FloorDiv(a, b Operand, layout expvec.Layout, ord monomial.Ordering, quot Sink) error {
	_, err := runProtocol(a, b, layout, ord, modeFloor, quot, nil)
	return err
}

// DivRem computes quotient and remainder such that a = quot*b + rem,
// with every term of rem failing b's leading-term divisibility test
// at its point of elimination.
func DivRem(a, b Operand, layout expvec.Layout, ord monomial.Ordering, quot, rem Sink) error {
	_, err := runProtocol(a, b, layout, ord, modeRem, quot, rem)
	return err
}
