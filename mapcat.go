// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "iter"

type mapcat[A, B any] struct {
	stateless[B]
	f func(A) iter.Seq[B]
}

func (m mapcat[A, B]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	for b := range m.f(input) {
		var r Reduction[Erased]
		state, r = m.rf.StepL(state, acc, b)
		if r.IsReduced() {
			return state, r
		}
		acc = r.Value()
	}
	return state, Continue(acc)
}

func (m mapcat[A, B]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	next, stop := iter.Pull(m.f(input))
	defer stop()
	var chain func(Erased) (Erased, Reduction[Erased])
	chain = func(s Erased) (Erased, Reduction[Erased]) {
		b, ok := next()
		if !ok {
			return skip(s, rest)
		}
		tail := Defer(rest.Seed(), func(s Erased) (Erased, Erased) {
			out, r := chain(s)
			return out, r.Value()
		})
		return m.rf.StepR(s, b, tail)
	}
	return chain(state)
}

// Mapcat expands every input into the sequence f returns and passes on
// each of its items in order.
func Mapcat[A, B any](f func(A) iter.Seq[B]) Transducer[A, B] {
	return TransducerFunc[A, B](func(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased] {
		return mapcat[A, B]{stateless: stateless[B]{base[B]{rf}}, f: f}
	})
}
