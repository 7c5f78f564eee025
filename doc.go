// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpoly implements sparse multivariate polynomial arithmetic
// over the rational integers: addition, multiplication, exact and
// floor division, and a GCD computed by one recursive
// pseudo-remainder-sequence algorithm (there is no choice among
// alternative GCD algorithms), all operating on
// canonically-ordered term lists with bit-packed exponent vectors and
// tagged (small/boxed) coefficients.
//
// Pretty-printing, I/O, random polynomial generation, and
// factorization are out of scope; callers that need them build on top
// of the operations exposed here, the way gonum's higher-level
// packages build on mat.Dense rather than duplicating its internals.
package mpoly
