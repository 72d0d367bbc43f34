// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "fmt"

type mapping[A, B any] struct {
	stateless[B]
	f func(A) B
}

func (m mapping[A, B]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	return m.rf.StepL(state, acc, m.f(input))
}

func (m mapping[A, B]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	return m.rf.StepR(state, m.f(input), rest)
}

// Mapping transforms every input with f before passing it on.
func Mapping[A, B any](f func(A) B) Transducer[A, B] {
	return TransducerFunc[A, B](func(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased] {
		return mapping[A, B]{stateless: stateless[B]{base[B]{rf}}, f: f}
	})
}

// ToString renders every input as text with fmt.Sprint.
func ToString[A any]() Transducer[A, string] {
	return Mapping(func(a A) string { return fmt.Sprint(a) })
}

type filtering[A any] struct {
	stateless[A]
	p func(A) bool
}

func (f filtering[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	if !f.p(input) {
		return state, Continue(acc)
	}
	return f.rf.StepL(state, acc, input)
}

func (f filtering[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	if !f.p(input) {
		return skip(state, rest)
	}
	return f.rf.StepR(state, input, rest)
}

// Filtering passes on the inputs that satisfy p and consumes the others
// without effect.
func Filtering[A any](p func(A) bool) Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return filtering[A]{stateless: stateless[A]{base[A]{rf}}, p: p}
	})
}

// Remove passes on the inputs that do not satisfy p.
// It is the inverse of Filtering.
func Remove[A any](p func(A) bool) Transducer[A, A] {
	return Filtering(func(a A) bool { return !p(a) })
}

type keep[A, B any] struct {
	stateless[B]
	f func(A) (B, bool)
}

func (k keep[A, B]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	b, ok := k.f(input)
	if !ok {
		return state, Continue(acc)
	}
	return k.rf.StepL(state, acc, b)
}

func (k keep[A, B]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	b, ok := k.f(input)
	if !ok {
		return skip(state, rest)
	}
	return k.rf.StepR(state, b, rest)
}

// Keep transforms every input with f and passes on the results f reports
// as present.
func Keep[A, B any](f func(A) (B, bool)) Transducer[A, B] {
	return TransducerFunc[A, B](func(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased] {
		return keep[A, B]{stateless: stateless[B]{base[B]{rf}}, f: f}
	})
}
