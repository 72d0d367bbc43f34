// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Transducer transforms a reducer of B into a reducer of A.
// Data flows from A (the source side) to B (the sink side).
//
// Transform sees accumulators and states only as Erased, so a transducer
// works for every downstream result type; [Apply] restores the types.
// Implementations must not retain per-reduction data outside the state
// they return from InitialState, which keeps them reusable and shareable.
type Transducer[A, B any] interface {
	Transform(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased]
}

// TransducerFunc adapts a function to the Transducer interface.
type TransducerFunc[A, B any] func(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased]

// Transform implements Transducer.
func (f TransducerFunc[A, B]) Transform(rf Reducer[Erased, B, Erased]) Reducer[Erased, A, Erased] {
	return f(rf)
}

// Apply applies t to the terminal reducer rf.
// The composed reducer has an opaque state and rf's result type.
func Apply[S, A, B, R any](t Transducer[A, B], rf Reducer[S, B, R]) Reducer[Erased, A, R] {
	return typed[Erased, A, R]{rf: t.Transform(erase(rf))}
}

// Identity returns the transducer that passes reducers through unchanged.
func Identity[A any]() Transducer[A, A] {
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return rf
	})
}

// Then composes x and y in data-flow order: items pass through x first,
// then y, then the terminal reducer.
//
// Then(x, y).Transform(rf) == x.Transform(y.Transform(rf)).
// Composition is associative but not commutative.
func Then[A, B, C any](x Transducer[A, B], y Transducer[B, C]) Transducer[A, C] {
	return TransducerFunc[A, C](func(rf Reducer[Erased, C, Erased]) Reducer[Erased, A, Erased] {
		return x.Transform(y.Transform(rf))
	})
}

// Compose chains same-typed transducers in data-flow order.
// Compose() is [Identity].
func Compose[A any](ts ...Transducer[A, A]) Transducer[A, A] {
	out := Identity[A]()
	for _, t := range ts {
		out = Then(out, t)
	}
	return out
}
