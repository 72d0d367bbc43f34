// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

type take[A any] struct {
	stateful[int, A]
	n int
}

func (t take[A]) InitialState() Erased {
	return join(t.n, t.rf.InitialState())
}

func (t take[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	n, inner := split[int](state)
	if n <= 0 {
		return state, Reduced(acc)
	}
	inner, r := t.rf.StepL(inner, acc, input)
	n--
	if n == 0 && r.IsContinue() {
		r = Reduced(r.Value())
	}
	return join(n, inner), r
}

func (t take[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	n, inner := split[int](state)
	if n <= 0 {
		return halt(state, rest)
	}
	n--
	if n == 0 {
		// Last item: the wrapped reducer sees nothing after it.
		inner, r := t.rf.StepR(inner, input, ready[Erased](rest.Seed()))
		return join(0, inner), r
	}
	next, outer := nest(rest, n)
	inner, r := t.rf.StepR(inner, input, next)
	return outer(inner), r
}

// Take passes on at most n inputs, then stops the reduction.
// With n <= 0 it stops before the first input.
func Take[A any](n int) Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return take[A]{stateful: stateful[int, A]{base[A]{rf}}, n: n}
	})
}

type takeWhile[A any] struct {
	stateless[A]
	p func(A) bool
}

func (t takeWhile[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	if !t.p(input) {
		return state, Reduced(acc)
	}
	return t.rf.StepL(state, acc, input)
}

func (t takeWhile[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	if !t.p(input) {
		return halt(state, rest)
	}
	return t.rf.StepR(state, input, rest)
}

// TakeWhile passes on inputs while they satisfy p. The first input that
// fails p stops the reduction and is not passed on.
func TakeWhile[A any](p func(A) bool) Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return takeWhile[A]{stateless: stateless[A]{base[A]{rf}}, p: p}
	})
}

type takeNth[A any] struct {
	stateful[int, A]
	n int
}

func (t takeNth[A]) InitialState() Erased {
	return join(0, t.rf.InitialState())
}

func (t takeNth[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	i, inner := split[int](state)
	next := (i + 1) % t.n
	if i != 0 {
		return join(next, inner), Continue(acc)
	}
	inner, r := t.rf.StepL(inner, acc, input)
	return join(next, inner), r
}

func (t takeNth[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	i, inner := split[int](state)
	next := (i + 1) % t.n
	if i != 0 {
		return skip(join(next, inner), rest)
	}
	rest2, outer := nest(rest, next)
	inner, r := t.rf.StepR(inner, input, rest2)
	return outer(inner), r
}

// TakeNth passes on every nth input, starting with the first.
// Panics if n <= 0.
func TakeNth[A any](n int) Transducer[A, A] {
	if n <= 0 {
		panic("transduce: TakeNth requires n > 0")
	}
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return takeNth[A]{stateful: stateful[int, A]{base[A]{rf}}, n: n}
	})
}
