// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/mpoly/internal/bigint"
)

// ErrTooLarge is returned by Mul and DivExact when the operands'
// combined degree bounds exceed MaxArraySize; the caller should fall
// back to the heap engine.
var ErrTooLarge = errors.New("mpoly/internal/array: radix exceeds MaxArraySize")

// Mul computes the dense product of a and b over nvars variables,
// emitting every nonzero result cell to sink. The multiply itself
// runs a classical O(La*Lb) nested loop blocked by
// Block on both indices; the single dense accumulator array plays the
// role of the three escalating precision tiers a boxed accumulator would,
// since bigint.Int already self-promotes from an inline word to
// arbitrary precision on overflow.
func Mul(a, b Operand, nvars int, sink Sink) error {
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	da := degreeBounds(nvars, a.Exps)
	db := degreeBounds(nvars, b.Exps)
	bounds := make([]uint64, nvars)
	for i := range bounds {
		bounds[i] = da[i] + db[i] - 1
	}
	r := NewRadix(bounds)
	if !r.Fits() {
		return ErrTooLarge
	}

	cells := make([]bigint.Int, r.Size)
	for ib := 0; ib < a.Len(); ib += Block {
		iEnd := ib + Block
		if iEnd > a.Len() {
			iEnd = a.Len()
		}
		for jb := 0; jb < b.Len(); jb += Block {
			jEnd := jb + Block
			if jEnd > b.Len() {
				jEnd = b.Len()
			}
			for i := ib; i < iEnd; i++ {
				for j := jb; j < jEnd; j++ {
					idx := r.IndexSum(a.Exps[i], b.Exps[j])
					cells[idx].AddMul(&a.Coeffs[i], &b.Coeffs[j])
				}
			}
		}
	}

	for idx := r.Size - 1; idx >= 0; idx-- {
		if !cells[idx].IsZero() {
			sink.Emit(cells[idx], r.Unindex(idx))
		}
	}
	return nil
}

// MulParallel is Mul's block-striped counterpart: the outer range of
// a's rows is split into chunks of workers goroutines, each
// accumulating into its own dense array, which are then summed and
// emitted exactly as Mul does. It is only worth calling once r.Size is
// large enough to amortise the per-worker array allocation; callers
// gate that decision (and whether a ThreadPool is configured at all)
// before calling it.
func MulParallel(a, b Operand, nvars, workers int, sink Sink) error {
	if workers <= 1 {
		return Mul(a, b, nvars, sink)
	}
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	da := degreeBounds(nvars, a.Exps)
	db := degreeBounds(nvars, b.Exps)
	bounds := make([]uint64, nvars)
	for i := range bounds {
		bounds[i] = da[i] + db[i] - 1
	}
	r := NewRadix(bounds)
	if !r.Fits() {
		return ErrTooLarge
	}

	chunk := (a.Len() + workers - 1) / workers
	if chunk < Block {
		chunk = Block
	}
	partials := make([][]bigint.Int, 0, workers)
	var g errgroup.Group
	for ib := 0; ib < a.Len(); ib += chunk {
		iEnd := ib + chunk
		if iEnd > a.Len() {
			iEnd = a.Len()
		}
		cells := make([]bigint.Int, r.Size)
		partials = append(partials, cells)
		ib, iEnd := ib, iEnd
		g.Go(func() error {
			for jb := 0; jb < b.Len(); jb += Block {
				jEnd := jb + Block
				if jEnd > b.Len() {
					jEnd = b.Len()
				}
				for i := ib; i < iEnd; i++ {
					for j := jb; j < jEnd; j++ {
						idx := r.IndexSum(a.Exps[i], b.Exps[j])
						cells[idx].AddMul(&a.Coeffs[i], &b.Coeffs[j])
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := make([]bigint.Int, r.Size)
	for _, part := range partials {
		for idx := range part {
			if !part[idx].IsZero() {
				total[idx].Add(&total[idx], &part[idx])
			}
		}
	}
	for idx := r.Size - 1; idx >= 0; idx-- {
		if !total[idx].IsZero() {
			sink.Emit(total[idx], r.Unindex(idx))
		}
	}
	return nil
}

// DivExact computes a/b over a dense array sized to a's own degree
// bounds, scanning from the highest index to the lowest.
// At each nonzero cell it divides by b's leading coefficient, checks
// the resulting quotient exponent is non-negative in every variable,
// and submuls the whole of b times that quotient term back into the
// array before continuing. It reports exact=false, without error, as
// soon as any cell fails either test or a product term falls outside
// a's degree bounds.
func DivExact(a, b Operand, nvars int, quot Sink) (exact bool, err error) {
	if b.Len() == 0 {
		panic("mpoly/internal/array: division by empty operand")
	}
	if a.Len() == 0 {
		return true, nil
	}
	bounds := degreeBounds(nvars, a.Exps)
	r := NewRadix(bounds)
	if !r.Fits() {
		return false, ErrTooLarge
	}

	cells := make([]bigint.Int, r.Size)
	for i := range a.Coeffs {
		cells[r.Index(a.Exps[i])].Add(&cells[r.Index(a.Exps[i])], &a.Coeffs[i])
	}

	// b's leading term for this scan is its largest in index order
	// (variable 0 most significant), wherever it sits in b.
	lead := 0
	for k := range b.Exps {
		for v := 0; v < nvars && b.Exps[k][v] >= b.Exps[lead][v]; v++ {
			if b.Exps[k][v] > b.Exps[lead][v] {
				lead = k
				break
			}
		}
	}
	b0Exp := b.Exps[lead]
	bLead := b.Coeffs[lead]

	for idx := r.Size - 1; idx >= 0; idx-- {
		if cells[idx].IsZero() {
			continue
		}
		exp := r.Unindex(idx)
		qExp := make([]uint64, nvars)
		for v := 0; v < nvars; v++ {
			if exp[v] < b0Exp[v] {
				return false, nil
			}
			qExp[v] = exp[v] - b0Exp[v]
		}

		q, rem := bigint.QuoRem(&cells[idx], &bLead)
		if !rem.IsZero() {
			return false, nil
		}

		quot.Emit(q, qExp)
		for k := range b.Coeffs {
			target := make([]uint64, nvars)
			for v := 0; v < nvars; v++ {
				target[v] = qExp[v] + b.Exps[k][v]
				if target[v] >= bounds[v] {
					return false, nil
				}
			}
			ti := r.Index(target)
			var contrib bigint.Int
			contrib.Mul(&b.Coeffs[k], &q)
			cells[ti].Sub(&cells[ti], &contrib)
		}
	}
	return true, nil
}
