// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Terminal list reducers. Each has the empty list as identity.

func emptyList[A any]() []A { return []A{} }

// Cons prepends every input to the accumulator.
// A left fold yields inputs in reverse arrival order; a right fold yields
// them in sequence order.
func Cons[A any]() FuncReducer[Unit, A, []A] {
	return Folding(func(acc []A, input A) []A {
		out := make([]A, 0, len(acc)+1)
		out = append(out, input)
		return append(out, acc...)
	}).WithIdentity(emptyList[A])
}

// Append appends every input to the accumulator.
func Append[A any]() FuncReducer[Unit, A, []A] {
	return Folding(func(acc []A, input A) []A {
		return append(acc, input)
	}).WithIdentity(emptyList[A])
}

// Concat appends the items of every input list to the accumulator.
func Concat[A any]() FuncReducer[Unit, []A, []A] {
	return Folding(func(acc []A, input []A) []A {
		return append(acc, input...)
	}).WithIdentity(emptyList[A])
}

// First stops at the first input and returns it.
// It never forces the remainder of a right fold.
func First[A any]() FuncReducer[Unit, A, A] {
	return FromRight(func(s Unit, input A, _ *Lazy[Unit, A]) (Unit, Reduction[A]) {
		return s, Reduced(input)
	})
}
