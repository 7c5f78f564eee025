// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements the Monagan-Pearce heap engine shared by
// polynomial multiplication, exact division, floor division, and
// division-with-remainder. It schedules (i,j) index pairs
// through a priority queue keyed on packed monomials, grouping every
// pair that shares the current extreme exponent into one batch per
// pop so their coefficient contributions are accumulated together.
//
// The scheduler is built directly on container/heap in the same way
// gonum.org/v1/gonum/graph/path's Dijkstra implementation uses it as
// a priority queue of partial results: push candidate (i,j) pairs,
// pop the current extreme, and lazily admit successors. Monomials
// sharing an exponent are combined by popping repeatedly while the
// new top compares equal, rather than via an explicit linked chain,
// since container/heap already gives safe O(log n) push/pop and the
// repeated-pop merge costs no more asymptotically.
package heap

import (
	stdheap "container/heap"

	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/monomial"
)

// Cell identifies one partial-product position by its row and column
// indices into the two operand term arrays.
type Cell struct {
	I, J int
}

type entry struct {
	exp []uint64
	cell Cell
}

// pq is a container/heap.Interface over scheduler entries, ordered by
// Max (descending exponent, for multiplication) or ascending exponent
// (for the division family).
type pq struct {
	entries []entry
	layout  expvec.Layout
	ord     monomial.Ordering
	max     bool
}

func (h *pq) Len() int { return len(h.entries) }

func (h *pq) Less(a, b int) bool {
	c := monomial.Compare(h.entries[a].exp, h.entries[b].exp, h.layout, h.ord)
	if h.max {
		return c > 0
	}
	return c < 0
}

func (h *pq) Swap(a, b int) { h.entries[a], h.entries[b] = h.entries[b], h.entries[a] }

func (h *pq) Push(x any) { h.entries = append(h.entries, x.(entry)) }

func (h *pq) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	return e
}

// Scheduler is the shared (i,j)-pair priority queue driving the
// multiplication and division protocols. Row-admission state (at
// most one cell per row i lives in the heap at any time) is tracked
// per row via nextCol/inHeap, the unpacked equivalent of a packed
// hind table.
type Scheduler struct {
	q       pq
	nextCol []int
	inHeap  []bool
}

// NewScheduler returns a scheduler for nrows distinct rows (i values),
// ordered by layout/ord, popping maximums when max is true and
// minimums otherwise.
func NewScheduler(nrows int, layout expvec.Layout, ord monomial.Ordering, max bool) *Scheduler {
	return &Scheduler{
		q:       pq{layout: layout, ord: ord, max: max},
		nextCol: make([]int, nrows),
		inHeap:  make([]bool, nrows),
	}
}

// Len reports the number of entries currently queued.
func (s *Scheduler) Len() int { return s.q.Len() }

// RowBusy reports whether row i currently has a cell scheduled.
func (s *Scheduler) RowBusy(i int) bool { return s.inHeap[i] }

// NextCol returns the next column eligible for scheduling on row i.
func (s *Scheduler) NextCol(i int) int { return s.nextCol[i] }

// Push schedules cell (i,j) with the given packed exponent, marking
// row i busy and advancing its next-column cursor.
func (s *Scheduler) Push(i, j int, exp []uint64) {
	stdheap.Push(&s.q, entry{exp: exp, cell: Cell{I: i, J: j}})
	s.inHeap[i] = true
	s.nextCol[i] = j + 1
}

// Release marks row i as no longer present in the heap, allowed to be
// rescheduled at its current NextCol.
func (s *Scheduler) Release(i int) { s.inHeap[i] = false }

// PopBatch pops the current extreme entry and every other entry that
// shares its exact exponent, returning the shared exponent and the
// batch of cells. It reports ok=false when the scheduler is empty.
func (s *Scheduler) PopBatch() (exp []uint64, cells []Cell, ok bool) {
	if s.q.Len() == 0 {
		return nil, nil, false
	}
	first := stdheap.Pop(&s.q).(entry)
	exp = first.exp
	cells = []Cell{first.cell}
	for s.q.Len() > 0 && monomial.Equal(s.q.entries[0].exp, exp) {
		e := stdheap.Pop(&s.q).(entry)
		cells = append(cells, e.cell)
	}
	return exp, cells, true
}
