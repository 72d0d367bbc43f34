// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Adapters between typed reducers and the Erased reducers transducers work on.
//
//   - erased: Reducer[S, A, R] viewed as Reducer[Erased, A, Erased]
//   - boxed:  Reducer[S, A, R] viewed as Reducer[S, A, Erased]
//   - typed:  Reducer[S, A, Erased] viewed as Reducer[S, A, R]
//
// Each remainder crossing an adapter is re-wrapped so the inner reducer
// sees its own types; forcing the inner remainder forces the outer one.

// erase hides the state and result types of rf.
func erase[S, A, R any](rf Reducer[S, A, R]) Reducer[Erased, A, Erased] {
	if t, ok := any(rf).(typed[Erased, A, R]); ok {
		return t.rf
	}
	return erased[S, A, R]{rf: rf}
}

// box hides the result type of rf.
func box[S, A, R any](rf Reducer[S, A, R]) Reducer[S, A, Erased] {
	if t, ok := any(rf).(typed[S, A, R]); ok {
		return t.rf
	}
	return boxed[S, A, R]{rf: rf}
}

type erased[S, A, R any] struct {
	rf Reducer[S, A, R]
}

func (e erased[S, A, R]) InitialState() Erased {
	return e.rf.InitialState()
}

func (e erased[S, A, R]) Identity() (Erased, error) {
	v, err := e.rf.Identity()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e erased[S, A, R]) Completion(state Erased, acc Erased) (Erased, error) {
	v, err := e.rf.Completion(unbox[S](state), unbox[R](acc))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e erased[S, A, R]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	s, r := e.rf.StepL(unbox[S](state), unbox[R](acc), input)
	return s, boxReduction(r)
}

func (e erased[S, A, R]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	inner := Defer(unbox[R](rest.Seed()), func(s S) (S, R) {
		out, v := rest.Force(s)
		return unbox[S](out), unbox[R](v)
	})
	s, r := e.rf.StepR(unbox[S](state), input, inner)
	return s, boxReduction(r)
}

type boxed[S, A, R any] struct {
	rf Reducer[S, A, R]
}

func (b boxed[S, A, R]) InitialState() S {
	return b.rf.InitialState()
}

func (b boxed[S, A, R]) Identity() (Erased, error) {
	v, err := b.rf.Identity()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (b boxed[S, A, R]) Completion(state S, acc Erased) (Erased, error) {
	v, err := b.rf.Completion(state, unbox[R](acc))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (b boxed[S, A, R]) StepL(state S, acc Erased, input A) (S, Reduction[Erased]) {
	s, r := b.rf.StepL(state, unbox[R](acc), input)
	return s, boxReduction(r)
}

func (b boxed[S, A, R]) StepR(state S, input A, rest *Lazy[S, Erased]) (S, Reduction[Erased]) {
	inner := Defer(unbox[R](rest.Seed()), func(s S) (S, R) {
		out, v := rest.Force(s)
		return out, unbox[R](v)
	})
	s, r := b.rf.StepR(state, input, inner)
	return s, boxReduction(r)
}

type typed[S, A, R any] struct {
	rf Reducer[S, A, Erased]
}

func (t typed[S, A, R]) InitialState() S {
	return t.rf.InitialState()
}

func (t typed[S, A, R]) Identity() (R, error) {
	v, err := t.rf.Identity()
	return unbox[R](v), err
}

func (t typed[S, A, R]) Completion(state S, acc R) (R, error) {
	v, err := t.rf.Completion(state, acc)
	return unbox[R](v), err
}

func (t typed[S, A, R]) StepL(state S, acc R, input A) (S, Reduction[R]) {
	s, r := t.rf.StepL(state, acc, input)
	return s, unboxReduction[R](r)
}

func (t typed[S, A, R]) StepR(state S, input A, rest *Lazy[S, R]) (S, Reduction[R]) {
	inner := Defer[S, Erased](rest.Seed(), func(s S) (S, Erased) {
		out, v := rest.Force(s)
		return out, v
	})
	s, r := t.rf.StepR(state, input, inner)
	return s, unboxReduction[R](r)
}
