// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

type drop[A any] struct {
	stateful[int, A]
	n int
}

func (d drop[A]) InitialState() Erased {
	return join(max(d.n, 0), d.rf.InitialState())
}

func (d drop[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	n, inner := split[int](state)
	if n > 0 {
		return join(n-1, inner), Continue(acc)
	}
	inner, r := d.rf.StepL(inner, acc, input)
	return join(0, inner), r
}

func (d drop[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	n, inner := split[int](state)
	if n > 0 {
		return skip(join(n-1, inner), rest)
	}
	next, outer := nest(rest, 0)
	inner, r := d.rf.StepR(inner, input, next)
	return outer(inner), r
}

// Drop consumes the first n inputs without effect and passes on every
// input after them.
func Drop[A any](n int) Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return drop[A]{stateful: stateful[int, A]{base[A]{rf}}, n: n}
	})
}

type dropWhile[A any] struct {
	stateful[bool, A]
	p func(A) bool
}

func (d dropWhile[A]) InitialState() Erased {
	return join(true, d.rf.InitialState())
}

func (d dropWhile[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	dropping, inner := split[bool](state)
	if dropping && d.p(input) {
		return state, Continue(acc)
	}
	inner, r := d.rf.StepL(inner, acc, input)
	return join(false, inner), r
}

func (d dropWhile[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	dropping, inner := split[bool](state)
	if dropping && d.p(input) {
		return skip(state, rest)
	}
	next, outer := nest(rest, false)
	inner, r := d.rf.StepR(inner, input, next)
	return outer(inner), r
}

// DropWhile consumes inputs without effect while they satisfy p. The first
// input that fails p is passed on, and so is every input after it.
func DropWhile[A any](p func(A) bool) Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return dropWhile[A]{stateful: stateful[bool, A]{base[A]{rf}}, p: p}
	})
}
