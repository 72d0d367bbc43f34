// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Reducer describes how to fold inputs of type A into a result of type R.
//
// S is the reducer's private state. Algorithms obtain it from InitialState
// and thread it through every step without inspecting it.
//
// StepL folds from the front with an eager accumulator. StepR folds from
// the back: rest is the not-yet-evaluated reduction of every item after
// input, and a step that does not force it leaves the rest of the sequence
// untouched.
type Reducer[S, A, R any] interface {
	InitialState() S
	Identity() (R, error)
	Completion(state S, acc R) (R, error)
	StepL(state S, acc R, input A) (S, Reduction[R])
	StepR(state S, input A, rest *Lazy[S, R]) (S, Reduction[R])
}

// StepLeft is a left-biased step function.
type StepLeft[S, A, R any] func(state S, acc R, input A) (S, Reduction[R])

// StepRight is a right-biased step function.
type StepRight[S, A, R any] func(state S, input A, rest *Lazy[S, R]) (S, Reduction[R])

// FuncReducer is a Reducer built from exactly one step function.
// The other direction is derived from it:
//   - StepR from a left step forces the remainder, then folds input into it
//   - StepL from a right step passes acc as an already-evaluated remainder
//
// FuncReducer values are immutable; the With methods return modified copies.
// The zero value has no step and panics when stepped; build values with
// [FromLeft] or [FromRight].
type FuncReducer[S, A, R any] struct {
	initial  func() S
	identity func() R
	complete func(S, R) R
	left     StepLeft[S, A, R]
	right    StepRight[S, A, R]
}

const (
	errNilStep = "transduce: nil step function"
	errNoStep  = "transduce: reducer has no step function"
)

// FromLeft creates a reducer from a left-biased step.
// Panics if step is nil.
func FromLeft[S, A, R any](step StepLeft[S, A, R]) FuncReducer[S, A, R] {
	if step == nil {
		panic(errNilStep)
	}
	return FuncReducer[S, A, R]{left: step}
}

// FromRight creates a reducer from a right-biased step.
// Panics if step is nil.
func FromRight[S, A, R any](step StepRight[S, A, R]) FuncReducer[S, A, R] {
	if step == nil {
		panic(errNilStep)
	}
	return FuncReducer[S, A, R]{right: step}
}

// Reducing creates a stateless reducer from a left-biased step.
func Reducing[A, R any](step func(acc R, input A) Reduction[R]) FuncReducer[Unit, A, R] {
	return FromLeft(func(s Unit, acc R, input A) (Unit, Reduction[R]) {
		return s, step(acc, input)
	})
}

// Folding creates a stateless reducer whose steps never stop the fold.
func Folding[A, R any](step func(acc R, input A) R) FuncReducer[Unit, A, R] {
	return FromLeft(func(s Unit, acc R, input A) (Unit, Reduction[R]) {
		return s, Continue(step(acc, input))
	})
}

// WithInitialState returns a copy whose InitialState calls f.
// Without it the initial state is the zero value of S.
func (r FuncReducer[S, A, R]) WithInitialState(f func() S) FuncReducer[S, A, R] {
	r.initial = f
	return r
}

// WithIdentity returns a copy whose Identity calls f.
// Without it Identity fails with [ErrNoIdentity].
func (r FuncReducer[S, A, R]) WithIdentity(f func() R) FuncReducer[S, A, R] {
	r.identity = f
	return r
}

// WithCompletion returns a copy whose Completion calls f.
// Without it Completion returns the accumulator unchanged.
func (r FuncReducer[S, A, R]) WithCompletion(f func(S, R) R) FuncReducer[S, A, R] {
	r.complete = f
	return r
}

// InitialState implements Reducer.
func (r FuncReducer[S, A, R]) InitialState() S {
	if r.initial == nil {
		var zero S
		return zero
	}
	return r.initial()
}

// Identity implements Reducer.
func (r FuncReducer[S, A, R]) Identity() (R, error) {
	if r.identity == nil {
		var zero R
		return zero, ErrNoIdentity
	}
	return r.identity(), nil
}

// Completion implements Reducer.
func (r FuncReducer[S, A, R]) Completion(state S, acc R) (R, error) {
	if r.complete == nil {
		return acc, nil
	}
	return r.complete(state, acc), nil
}

// StepL implements Reducer.
func (r FuncReducer[S, A, R]) StepL(state S, acc R, input A) (S, Reduction[R]) {
	if r.left != nil {
		return r.left(state, acc, input)
	}
	if r.right == nil {
		panic(errNoStep)
	}
	return r.right(state, input, ready[S](acc))
}

// StepR implements Reducer.
func (r FuncReducer[S, A, R]) StepR(state S, input A, rest *Lazy[S, R]) (S, Reduction[R]) {
	if r.right != nil {
		return r.right(state, input, rest)
	}
	if r.left == nil {
		panic(errNoStep)
	}
	state, acc := rest.Force(state)
	return r.left(state, acc, input)
}
