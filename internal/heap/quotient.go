// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	stdheap "container/heap"

	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

// sentinelRow is the row index used for the dividend-feeding sentinel
// cell of exact-division protocol.
const sentinelRow = -1

// divState runs the shared min-heap scheduler behind exact division,
// floor division, and division-with-remainder:
// one sentinel cell feeds dividend terms, and body cells (i,j) for
// i in [1, Lb) subtract b_i * Q_j once quotient term j exists.
//
// Row i becomes eligible only once row i-1's j=0 cell has been
// popped, mirroring multiplication's row activation; a row whose
// next column j+1 is not yet an existing quotient term is left
// pending and retried every time a new quotient term is emitted,
// since unlike multiplication's two known-length operands, the
// quotient's length is discovered as the division proceeds.
type divState struct {
	a, b   Operand
	layout expvec.Layout
	ord    monomial.Ordering

	q       pq
	busy    []bool // busy[i+1] for i in [-1, Lb-1]; index 0 is the sentinel
	nextCol []int  // next column to try for row i, same indexing

	quotExps   [][]uint64
	quotCoeffs []bigint.Int
	quotLen    int

	aIdx int // next dividend term index to feed the sentinel
}

func newDivState(a, b Operand, layout expvec.Layout, ord monomial.Ordering) *divState {
	d := &divState{
		a: a, b: b, layout: layout, ord: ord,
		q:       pq{layout: layout, ord: ord, max: false},
		busy:    make([]bool, b.Len()+1),
		nextCol: make([]int, b.Len()+1),
	}
	return d
}

func (d *divState) pushSentinel() {
	if d.aIdx >= d.a.Len() {
		return
	}
	stdheap.Push(&d.q, entry{exp: d.a.Exps[d.aIdx], cell: Cell{I: sentinelRow, J: d.aIdx}})
	d.busy[0] = true
	d.aIdx++
}

func (d *divState) rowIdx(i int) int { return i + 1 }

func (d *divState) tryPushBody(i, j int) {
	if i <= 0 || i >= d.b.Len() || j >= d.quotLen {
		return
	}
	ri := d.rowIdx(i)
	if d.busy[ri] {
		return
	}
	e := make([]uint64, d.layout.Words)
	monomial.Add(e, d.b.Exps[i], d.quotExps[j])
	stdheap.Push(&d.q, entry{exp: e, cell: Cell{I: i, J: j}})
	d.busy[ri] = true
	d.nextCol[ri] = j + 1
}

// popBatch mirrors Scheduler.PopBatch for the raw pq used here.
func (d *divState) popBatch() (exp []uint64, cells []Cell, ok bool) {
	if d.q.Len() == 0 {
		return nil, nil, false
	}
	first := stdheap.Pop(&d.q).(entry)
	exp = first.exp
	cells = []Cell{first.cell}
	for d.q.Len() > 0 && monomial.Equal(d.q.entries[0].exp, exp) {
		e := stdheap.Pop(&d.q).(entry)
		cells = append(cells, e.cell)
	}
	return exp, cells, true
}

// mode selects which of the three division protocols runProtocol
// executes; they share every scheduling rule and differ only in how
// a non-exact leading term is handled.
type mode int

const (
	modeExact mode = iota
	modeFloor
	modeRem
)

// runProtocol drives the shared scheduler. For modeExact, a failed
// divisibility or coefficient test aborts with exact=false. For
// modeFloor, such a term is simply dropped. For modeRem, it is
// emitted to rem instead of the quotient. The loop runs until the
// sentinel has fed every dividend term and every scheduled body cell
// has been popped, at which point the heap empties on its own.
func runProtocol(a, b Operand, layout expvec.Layout, ord monomial.Ordering, m mode, quot, rem Sink) (exact bool, err error) {
	if b.Len() == 0 {
		panic("mpoly/internal/heap: division by empty operand")
	}
	if a.Len() == 0 {
		return true, nil
	}
	d := newDivState(a, b, layout, ord)
	d.pushSentinel()

	beta0 := b.Exps[0]
	bLead := b.Coeffs[0]

	for {
		exp, cells, ok := d.popBatch()
		if !ok {
			break
		}
		var acc bigint.Int
		sawSentinel := false
		for _, c := range cells {
			if c.I == sentinelRow {
				d.busy[0] = false
				acc.Add(&acc, &a.Coeffs[c.J])
				sawSentinel = true
				continue
			}
			d.busy[d.rowIdx(c.I)] = false
			var contrib bigint.Int
			contrib.Mul(&b.Coeffs[c.I], &d.quotCoeffs[c.J])
			acc.Sub(&acc, &contrib)
		}
		if sawSentinel {
			d.pushSentinel()
		}

		diff := make([]uint64, layout.Words)
		divisibleMonomial := monomial.Divides(diff, exp, beta0, layout)

		if !divisibleMonomial || acc.IsZero() {
			if !divisibleMonomial && !acc.IsZero() {
				switch m {
				case modeExact:
					return false, nil
				case modeFloor:
					d.advanceAfterDrop(cells)
					continue
				case modeRem:
					if rem != nil {
						rem.Emit(acc, exp)
					}
					d.advanceAfterDrop(cells)
					continue
				}
			}
			d.advanceAfterDrop(cells)
			continue
		}

		if layout.Overflows(diff) {
			return false, Overflow{}
		}
		q, r := bigint.QuoRem(&acc, &bLead)
		if !r.IsZero() {
			switch m {
			case modeExact:
				return false, nil
			case modeFloor:
				d.advanceAfterDrop(cells)
				continue
			case modeRem:
				if rem != nil {
					rem.Emit(acc, exp)
				}
				d.advanceAfterDrop(cells)
				continue
			}
		}

		quot.Emit(q, diff)
		d.quotExps = append(d.quotExps, diff)
		d.quotCoeffs = append(d.quotCoeffs, q)
		d.quotLen++
		d.tryPushBody(1, d.quotLen-1)
		// Rows i >= 2 that stalled waiting for this quotient term
		// resume at it now.
		for i := 2; i < b.Len() && d.quotLen > 1; i++ {
			if d.nextCol[d.rowIdx(i)] == d.quotLen-1 {
				d.tryPushBody(i, d.quotLen-1)
			}
		}
		d.advanceAfterDrop(cells)
	}
	return true, nil
}

// advanceAfterDrop applies the row-activation and column-advance
// rules to every cell in a popped batch after it has been consumed
// (whether emitted or dropped).
func (d *divState) advanceAfterDrop(cells []Cell) {
	for _, c := range cells {
		if c.I == sentinelRow {
			continue
		}
		if c.J+1 < d.quotLen {
			d.tryPushBody(c.I, c.J+1)
		}
		if c.J == 0 && c.I+1 < d.b.Len() {
			d.tryPushBody(c.I+1, 0)
		}
	}
}
