// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "fmt"

// Reduction is the result of a single fold step.
// It is either Continue (the fold proceeds with the value) or
// Reduced (the fold stops and the value is final).
type Reduction[R any] struct {
	value   R
	reduced bool
}

// Continue creates a Reduction that lets the fold proceed with v.
func Continue[R any](v R) Reduction[R] {
	return Reduction[R]{value: v}
}

// Reduced creates a Reduction that stops the fold with v.
func Reduced[R any](v R) Reduction[R] {
	return Reduction[R]{value: v, reduced: true}
}

// Value returns the carried value regardless of the variant.
func (r Reduction[R]) Value() R {
	return r.value
}

// IsReduced returns true if the fold must stop.
func (r Reduction[R]) IsReduced() bool {
	return r.reduced
}

// IsContinue returns true if the fold may proceed.
func (r Reduction[R]) IsContinue() bool {
	return !r.reduced
}

// MatchReduction pattern matches on the Reduction, calling onContinue or onReduced.
func MatchReduction[R, T any](r Reduction[R], onContinue func(R) T, onReduced func(R) T) T {
	if r.reduced {
		return onReduced(r.value)
	}
	return onContinue(r.value)
}

// MapReduction applies f to the carried value, preserving the variant.
func MapReduction[R, T any](r Reduction[R], f func(R) T) Reduction[T] {
	return Reduction[T]{value: f(r.value), reduced: r.reduced}
}

// String renders the Reduction as Continue(v) or Reduced(v).
func (r Reduction[R]) String() string {
	if r.reduced {
		return fmt.Sprintf("Reduced(%v)", r.value)
	}
	return fmt.Sprintf("Continue(%v)", r.value)
}

// boxReduction erases the carried value.
func boxReduction[R any](r Reduction[R]) Reduction[Erased] {
	return Reduction[Erased]{value: r.value, reduced: r.reduced}
}

// unboxReduction recovers the carried value.
func unboxReduction[R any](r Reduction[Erased]) Reduction[R] {
	return Reduction[R]{value: unbox[R](r.value), reduced: r.reduced}
}
