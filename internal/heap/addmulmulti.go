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

// Pair is one addend of an AddMulMulti call: the product a*b.
type Pair struct {
	A, B Operand
}

// multiCell extends Cell with the pair it belongs to, since AddMulMulti
// runs every pair's multiplication through one shared heap instead of
// computing and summing m separate products (grounded on FLINT's
// fmpz_mpoly_addmul_multi, which amortises one leading-term selection
// across every pending pair rather than paying for it m times).
type multiCell struct {
	pair int
	cell Cell
}

type multiEntry struct {
	exp []uint64
	mc  multiCell
}

type multiPQ struct {
	entries []multiEntry
	layout  expvec.Layout
	ord     monomial.Ordering
}

func (h *multiPQ) Len() int { return len(h.entries) }
func (h *multiPQ) Less(i, j int) bool {
	return monomial.Compare(h.entries[i].exp, h.entries[j].exp, h.layout, h.ord) > 0
}
func (h *multiPQ) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
func (h *multiPQ) Push(x any)    { h.entries = append(h.entries, x.(multiEntry)) }
func (h *multiPQ) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	return e
}

// AddMulMulti computes sum_k pairs[k].A * pairs[k].B and emits the
// combined result to sink in strictly descending order, sharing one
// heap across every pair's Monagan-Pearce schedule. Row admission is
// tracked independently per pair, since each pair has its own (i,j)
// index space.
func AddMulMulti(pairs []Pair, layout expvec.Layout, ord monomial.Ordering, sink Sink) error {
	type rowState struct {
		inHeap  []bool
		nextCol []int
	}
	rows := make([]rowState, len(pairs))
	for k, p := range pairs {
		rows[k] = rowState{inHeap: make([]bool, p.A.Len()), nextCol: make([]int, p.A.Len())}
	}

	q := multiPQ{layout: layout, ord: ord}
	push := func(k, i, j int) error {
		if i >= pairs[k].A.Len() || j >= pairs[k].B.Len() || rows[k].inHeap[i] {
			return nil
		}
		e := make([]uint64, layout.Words)
		monomial.Add(e, pairs[k].A.Exps[i], pairs[k].B.Exps[j])
		if layout.Overflows(e) {
			return Overflow{}
		}
		stdheap.Push(&q, multiEntry{exp: e, mc: multiCell{pair: k, cell: Cell{I: i, J: j}}})
		rows[k].inHeap[i] = true
		rows[k].nextCol[i] = j + 1
		return nil
	}

	for k, p := range pairs {
		if p.A.Len() == 0 || p.B.Len() == 0 {
			continue
		}
		if err := push(k, 0, 0); err != nil {
			return err
		}
	}

	for q.Len() > 0 {
		first := stdheap.Pop(&q).(multiEntry)
		exp := first.exp
		batch := []multiCell{first.mc}
		for q.Len() > 0 && monomial.Equal(q.entries[0].exp, exp) {
			e := stdheap.Pop(&q).(multiEntry)
			batch = append(batch, e.mc)
		}

		var acc bigint.Int
		for _, mc := range batch {
			k, i, j := mc.pair, mc.cell.I, mc.cell.J
			rows[k].inHeap[i] = false
			acc.AddMul(&pairs[k].A.Coeffs[i], &pairs[k].B.Coeffs[j])
		}
		if !acc.IsZero() {
			sink.Emit(acc, exp)
		}

		for _, mc := range batch {
			k, i, j := mc.pair, mc.cell.I, mc.cell.J
			if err := push(k, i, j+1); err != nil {
				return err
			}
			if j == 0 {
				if err := push(k, i+1, 0); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
