// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import (
	"gonum.org/v1/mpoly/internal/array"
	"gonum.org/v1/mpoly/internal/bigint"
	"gonum.org/v1/mpoly/internal/expvec"
	"gonum.org/v1/mpoly/internal/heap"
)

// sink adapts Polynomial.pushPacked to the heap/array engines' Sink
// interface.
type sink struct{ p *Polynomial }

func (s sink) Emit(c bigint.Int, e []uint64) { s.p.pushPacked(c, e) }

// Mul returns a*b. It runs the dense array engine when the product of
// per-variable degree bounds is small enough, and the Monagan-Pearce
// heap engine otherwise, widening the shared exponent layout and
// retrying on overflow.
func Mul(a, b *Polynomial) *Polynomial {
	checkSameShape(a, b)
	if a.Len() == 0 || b.Len() == 0 {
		return &Polynomial{ctx: a.ctx, layout: a.layout}
	}

	if out := mulArray(a, b); out != nil {
		return out
	}

	layout := a.layout
	if b.layout.Bits > layout.Bits {
		layout = b.layout
	}
	for {
		ac := repackCopy(a, layout)
		bc := repackCopy(b, layout)
		out := &Polynomial{ctx: a.ctx, layout: layout}
		out.Reserve(ac.Len() * bc.Len())
		err := heap.Mul(heapOperand(ac), heapOperand(bc), layout, a.ctx.Order, sink{out})
		if err == nil {
			out.Canonicalize()
			return out
		}
		if _, ok := err.(heap.Overflow); !ok {
			panic(err)
		}
		layout = layout.Widen()
	}
}

func heapOperand(p *Polynomial) heap.Operand {
	return heap.Operand{Coeffs: p.coeffs, Exps: p.exps}
}

func arrayOperand(p *Polynomial) array.Operand {
	exps := make([][]uint64, p.Len())
	for i := range p.exps {
		exps[i] = p.ctx.fromFields(p.layout.Unpack(p.exps[i]))
	}
	return array.Operand{Coeffs: p.coeffs, Exps: exps}
}

// mulArray attempts the dense-array fast path, returning nil when the
// combined degree bounds do not fit (the caller falls back to HE).
func mulArray(a, b *Polynomial) *Polynomial {
	out := &Polynomial{ctx: a.ctx, layout: expvec.NewLayout(a.ctx.fieldCount(), 8)}
	err := array.MulParallel(arrayOperand(a), arrayOperand(b), a.ctx.NVars, arrayWorkers(), arraySink{out})
	if err != nil {
		return nil
	}
	out.Canonicalize()
	return out
}

// arraySink adapts unpacked exponent vectors from the array engine
// into a Polynomial via the ordinary (validating, repacking) Push.
type arraySink struct{ p *Polynomial }

func (s arraySink) Emit(c bigint.Int, varExps []uint64) { s.p.Push(&c, varExps) }
