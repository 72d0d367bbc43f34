// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "iter"

// Mutable transducers.
//
// A MutableTransducer keeps its bookkeeping (counters, sets, partitions)
// in cells owned by the transducer instance instead of threading it through
// the reducer state, which is fixed to Unit. An instance is single-owner and
// single-use: it must not be shared between concurrent reductions, and its
// cells are never reset, so a second reduction continues from where the
// first one left off. A MutableTake(3) that has passed on 3 items passes on
// none in any later reduction.

// MutableTransducer transforms a stateless reducer of B into a stateless
// reducer of A. Only reducers with Unit state can be wrapped.
type MutableTransducer[A, B any] interface {
	Transform(rf Reducer[Unit, B, Erased]) Reducer[Unit, A, Erased]
}

// MutableTransducerFunc adapts a function to the MutableTransducer interface.
type MutableTransducerFunc[A, B any] func(rf Reducer[Unit, B, Erased]) Reducer[Unit, A, Erased]

// Transform implements MutableTransducer.
func (f MutableTransducerFunc[A, B]) Transform(rf Reducer[Unit, B, Erased]) Reducer[Unit, A, Erased] {
	return f(rf)
}

// ApplyMutable applies t to the terminal reducer rf.
func ApplyMutable[A, B, R any](t MutableTransducer[A, B], rf Reducer[Unit, B, R]) Reducer[Unit, A, R] {
	return typed[Unit, A, R]{rf: t.Transform(box(rf))}
}

// ThenMutable composes x and y in data-flow order, like [Then].
func ThenMutable[A, B, C any](x MutableTransducer[A, B], y MutableTransducer[B, C]) MutableTransducer[A, C] {
	return MutableTransducerFunc[A, C](func(rf Reducer[Unit, C, Erased]) Reducer[Unit, A, Erased] {
		return x.Transform(y.Transform(rf))
	})
}

// TransduceMutableLeft is [TransduceLeft] for mutable transducers.
func TransduceMutableLeft[A, B, R any](t MutableTransducer[A, B], rf Reducer[Unit, B, R], init R, seq iter.Seq[A]) (R, error) {
	xf := ApplyMutable(t, rf)
	state, acc := ReduceLeft(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// TransduceMutableRight is [TransduceRight] for mutable transducers.
func TransduceMutableRight[A, B, R any](t MutableTransducer[A, B], rf Reducer[Unit, B, R], init R, seq iter.Seq[A]) (R, error) {
	xf := ApplyMutable(t, rf)
	state, acc := ReduceRight(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// cell is a mutable slot owned by one transducer instance.
type cell[T any] struct {
	v T
}

func newCell[T any](v T) *cell[T] {
	return &cell[T]{v: v}
}

func (c *cell[T]) get() T  { return c.v }
func (c *cell[T]) set(v T) { c.v = v }

type mbase[A any] struct {
	rf Reducer[Unit, A, Erased]
}

func (b mbase[A]) InitialState() Unit {
	return b.rf.InitialState()
}

func (b mbase[A]) Identity() (Erased, error) {
	return b.rf.Identity()
}

func (b mbase[A]) Completion(state Unit, acc Erased) (Erased, error) {
	return b.rf.Completion(state, acc)
}

type mutableMapping[A, B any] struct {
	mbase[B]
	f func(A) B
}

func (m mutableMapping[A, B]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	return m.rf.StepL(state, acc, m.f(input))
}

func (m mutableMapping[A, B]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	return m.rf.StepR(state, m.f(input), rest)
}

// MutableMapping is [Mapping] for stateless reducers.
func MutableMapping[A, B any](f func(A) B) MutableTransducer[A, B] {
	return MutableTransducerFunc[A, B](func(rf Reducer[Unit, B, Erased]) Reducer[Unit, A, Erased] {
		return mutableMapping[A, B]{mbase: mbase[B]{rf}, f: f}
	})
}

type mutableFiltering[A any] struct {
	mbase[A]
	p func(A) bool
}

func (m mutableFiltering[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	if !m.p(input) {
		return state, Continue(acc)
	}
	return m.rf.StepL(state, acc, input)
}

func (m mutableFiltering[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	if !m.p(input) {
		return skip(state, rest)
	}
	return m.rf.StepR(state, input, rest)
}

// MutableFiltering is [Filtering] for stateless reducers.
func MutableFiltering[A any](p func(A) bool) MutableTransducer[A, A] {
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableFiltering[A]{mbase: mbase[A]{rf}, p: p}
	})
}

type mutableTakeWhile[A any] struct {
	mbase[A]
	p func(A) bool
}

func (m mutableTakeWhile[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	if !m.p(input) {
		return state, Reduced(acc)
	}
	return m.rf.StepL(state, acc, input)
}

func (m mutableTakeWhile[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	if !m.p(input) {
		return halt(state, rest)
	}
	return m.rf.StepR(state, input, rest)
}

// MutableTakeWhile is [TakeWhile] for stateless reducers.
func MutableTakeWhile[A any](p func(A) bool) MutableTransducer[A, A] {
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableTakeWhile[A]{mbase: mbase[A]{rf}, p: p}
	})
}

type mutableTake[A any] struct {
	mbase[A]
	remaining *cell[int]
}

func (m mutableTake[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	n := m.remaining.get()
	if n <= 0 {
		return state, Reduced(acc)
	}
	m.remaining.set(n - 1)
	state, r := m.rf.StepL(state, acc, input)
	if n == 1 && r.IsContinue() {
		r = Reduced(r.Value())
	}
	return state, r
}

func (m mutableTake[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	n := m.remaining.get()
	if n <= 0 {
		return halt(state, rest)
	}
	m.remaining.set(n - 1)
	if n == 1 {
		return m.rf.StepR(state, input, ready[Unit](rest.Seed()))
	}
	return m.rf.StepR(state, input, rest)
}

// MutableTake is [Take] with the remaining count held by the instance.
func MutableTake[A any](n int) MutableTransducer[A, A] {
	remaining := newCell(n)
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableTake[A]{mbase: mbase[A]{rf}, remaining: remaining}
	})
}

type mutableDrop[A any] struct {
	mbase[A]
	remaining *cell[int]
}

func (m mutableDrop[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	if n := m.remaining.get(); n > 0 {
		m.remaining.set(n - 1)
		return state, Continue(acc)
	}
	return m.rf.StepL(state, acc, input)
}

func (m mutableDrop[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	if n := m.remaining.get(); n > 0 {
		m.remaining.set(n - 1)
		return skip(state, rest)
	}
	return m.rf.StepR(state, input, rest)
}

// MutableDrop is [Drop] with the remaining count held by the instance.
func MutableDrop[A any](n int) MutableTransducer[A, A] {
	remaining := newCell(n)
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableDrop[A]{mbase: mbase[A]{rf}, remaining: remaining}
	})
}

type mutableDropWhile[A any] struct {
	mbase[A]
	dropping *cell[bool]
	p        func(A) bool
}

// admit reports whether input ends or follows the dropped prefix.
func (m mutableDropWhile[A]) admit(input A) bool {
	if m.dropping.get() && m.p(input) {
		return false
	}
	m.dropping.set(false)
	return true
}

func (m mutableDropWhile[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	if !m.admit(input) {
		return state, Continue(acc)
	}
	return m.rf.StepL(state, acc, input)
}

func (m mutableDropWhile[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	if !m.admit(input) {
		return skip(state, rest)
	}
	return m.rf.StepR(state, input, rest)
}

// MutableDropWhile is [DropWhile] with the dropping flag held by the instance.
func MutableDropWhile[A any](p func(A) bool) MutableTransducer[A, A] {
	dropping := newCell(true)
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableDropWhile[A]{mbase: mbase[A]{rf}, dropping: dropping, p: p}
	})
}

type mutableDedupe[A comparable] struct {
	mbase[A]
	set *cell[seen[A]]
}

func (m mutableDedupe[A]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	if !m.set.get().admit(input) {
		return state, Continue(acc)
	}
	return m.rf.StepL(state, acc, input)
}

func (m mutableDedupe[A]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	if !m.set.get().admit(input) {
		return skip(state, rest)
	}
	return m.rf.StepR(state, input, rest)
}

// MutableDedupe is [Dedupe] with the set of seen inputs held by the instance.
func MutableDedupe[A comparable]() MutableTransducer[A, A] {
	set := newCell(make(seen[A]))
	return MutableTransducerFunc[A, A](func(rf Reducer[Unit, A, Erased]) Reducer[Unit, A, Erased] {
		return mutableDedupe[A]{mbase: mbase[A]{rf}, set: set}
	})
}

type mutableCategorising[A any, K comparable] struct {
	mbase[[]A]
	parts *cell[*partitions[K, A]]
	key   func(A) K
	bias  Bias
}

func (m mutableCategorising[A, K]) StepL(state Unit, acc Erased, input A) (Unit, Reduction[Erased]) {
	m.parts.get().add(m.key(input), input)
	return state, Continue(acc)
}

func (m mutableCategorising[A, K]) StepR(state Unit, input A, rest *Lazy[Unit, Erased]) (Unit, Reduction[Erased]) {
	m.parts.get().add(m.key(input), input)
	return skip(state, rest)
}

func (m mutableCategorising[A, K]) Completion(state Unit, _ Erased) (Erased, error) {
	return reducePartitions(m.rf, state, m.parts.get().lists(), m.bias)
}

// MutableCategorising is [Categorising] with the partitions held by the
// instance. A reused instance also passes on the inputs of earlier
// reductions.
func MutableCategorising[A any, K comparable](key func(A) K, bias Bias) MutableTransducer[A, []A] {
	parts := newCell(newPartitions[K, A]())
	return MutableTransducerFunc[A, []A](func(rf Reducer[Unit, []A, Erased]) Reducer[Unit, A, Erased] {
		return mutableCategorising[A, K]{mbase: mbase[[]A]{rf}, parts: parts, key: key, bias: bias}
	})
}
