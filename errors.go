// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import "errors"

// ErrDivideByZero is returned when a divisor polynomial is empty.
var ErrDivideByZero = errors.New("mpoly: division by zero polynomial")

// ErrNotExact is the panic value of ScalarDivExact when a coefficient
// is not exactly divisible by the scalar. Divides and DivRem report
// inexact division as a boolean/remainder instead.
var ErrNotExact = errors.New("mpoly: division is not exact")

// errVarMismatch is the panic value for programmer mistakes
// (mismatched Context between operands), raised by checkSameShape in
// arithmetic.go, which the binary operations call.
var errVarMismatch = "mpoly: operand contexts do not match"
