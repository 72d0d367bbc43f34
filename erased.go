// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Erased represents a type-erased value at a transducer boundary.
// Transducers see accumulators and states only as Erased, which keeps
// them independent of the downstream result type. Concrete types are
// recovered via type assertions when a reducer stack is applied.
type Erased = any

// Unit is the state type of reducers that carry no state.
type Unit = struct{}

// Pair holds two values.
// Stateful transducers pair their local bookkeeping (Fst) with the
// wrapped reducer's state (Snd).
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// unbox recovers a concrete value from an Erased one.
// A nil Erased becomes the zero value of T, so interface and pointer
// result types survive the round trip.
func unbox[T any](v Erased) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
