// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Composite state threading for stateful transducers.
//
// A stateful transducer's state is Pair[L, Erased]{local, inner}. Left steps
// unpack and repack it directly. Right steps hand the wrapped reducer a
// remainder over the inner state only; nest builds that remainder and
// recovers the local value the rest of the fold finished with.

// split unpacks a composite state.
func split[L any](s Erased) (L, Erased) {
	p := s.(Pair[L, Erased])
	return p.Fst, p.Snd
}

// join packs a composite state.
func join[L any](local L, inner Erased) Erased {
	return Pair[L, Erased]{Fst: local, Snd: inner}
}

// nest derives the wrapped reducer's view of rest.
// Forcing the returned remainder resumes the outer fold from local paired
// with the inner state it is forced with. outer packs the inner state the
// wrapped step returns with the local value current at that point: the one
// the remainder finished with if it was forced, local otherwise.
func nest[L any](rest *Lazy[Erased, Erased], local L) (inner *Lazy[Erased, Erased], outer func(Erased) Erased) {
	last := local
	inner = Defer(rest.Seed(), func(s Erased) (Erased, Erased) {
		out, v := rest.Force(join(local, s))
		l, in := split[L](out)
		last = l
		return in, v
	})
	outer = func(s Erased) Erased {
		return join(last, s)
	}
	return inner, outer
}

// skip continues the outer fold past the current item without delegating
// it: the remainder is forced from s and its value carried on.
func skip[S any](s S, rest *Lazy[S, Erased]) (S, Reduction[Erased]) {
	out, v := rest.Force(s)
	return out, Continue[Erased](v)
}

// halt stops the fold at the current item. Left steps keep acc; right
// steps return the value of an empty remainder and never force rest.
func halt[S any](s S, rest *Lazy[S, Erased]) (S, Reduction[Erased]) {
	return s, Reduced[Erased](rest.Seed())
}

// base carries the wrapped reducer and the delegations every transducer
// shares: identity always comes from the wrapped reducer.
type base[A any] struct {
	rf Reducer[Erased, A, Erased]
}

func (b base[A]) Identity() (Erased, error) {
	return b.rf.Identity()
}

// stateless is the base of transducers that add no state of their own.
type stateless[A any] struct {
	base[A]
}

func (s stateless[A]) InitialState() Erased {
	return s.rf.InitialState()
}

func (s stateless[A]) Completion(state Erased, acc Erased) (Erased, error) {
	return s.rf.Completion(state, acc)
}

// stateful is the base of transducers whose state is Pair[L, Erased].
type stateful[L, A any] struct {
	base[A]
}

func (s stateful[L, A]) Completion(state Erased, acc Erased) (Erased, error) {
	_, inner := split[L](state)
	return s.rf.Completion(inner, acc)
}
