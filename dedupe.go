// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "maps"

// seen is the set of inputs already passed on.
// A set held in a state value is never modified; with returns a copy.
type seen[A comparable] map[A]struct{}

func (s seen[A]) has(a A) bool {
	_, ok := s[a]
	return ok
}

// with returns a copy of s that also holds a.
func (s seen[A]) with(a A) seen[A] {
	out := maps.Clone(s)
	if out == nil {
		out = make(seen[A], 1)
	}
	out[a] = struct{}{}
	return out
}

// admit records a and reports whether it was new.
// It updates s in place and is only used by [MutableDedupe].
func (s seen[A]) admit(a A) bool {
	if s.has(a) {
		return false
	}
	s[a] = struct{}{}
	return true
}

type dedupe[A comparable] struct {
	stateful[seen[A], A]
}

func (d dedupe[A]) InitialState() Erased {
	return join(seen[A](nil), d.rf.InitialState())
}

func (d dedupe[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	set, inner := split[seen[A]](state)
	if set.has(input) {
		return state, Continue(acc)
	}
	inner, r := d.rf.StepL(inner, acc, input)
	return join(set.with(input), inner), r
}

func (d dedupe[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	set, inner := split[seen[A]](state)
	if set.has(input) {
		return skip(state, rest)
	}
	next, outer := nest(rest, set.with(input))
	inner, r := d.rf.StepR(inner, input, next)
	return outer(inner), r
}

// Dedupe passes on the first occurrence of every distinct input and
// consumes repeats without effect.
func Dedupe[A comparable]() Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return dedupe[A]{stateful: stateful[seen[A], A]{base[A]{rf}}}
	})
}
