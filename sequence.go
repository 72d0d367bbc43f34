// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "iter"

// Sequence returns a lazy sequence of seq's items transformed by t.
// Items are produced as the consumer pulls them; stopping the consumer
// stops the reduction. A completion error ends the sequence silently; use
// [SequenceErr] to observe it.
func Sequence[A, B any](t Transducer[A, B], seq iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for b, err := range SequenceErr(t, seq) {
			if err != nil || !yield(b) {
				return
			}
		}
	}
}

// SequenceErr is [Sequence] with errors. Every item is yielded with a nil
// error. If completion fails, a final pair holding the zero B and the
// error is yielded, unless the consumer has already stopped.
func SequenceErr[A, B any](t Transducer[A, B], seq iter.Seq[A]) iter.Seq2[B, error] {
	return func(yield func(B, error) bool) {
		done := false
		rf := Reducing(func(acc Unit, b B) Reduction[Unit] {
			if done || !yield(b, nil) {
				done = true
				return Reduced(acc)
			}
			return Continue(acc)
		}).WithIdentity(func() Unit { return Unit{} })
		if _, err := TransduceLeft(t, rf, Unit{}, seq); err != nil && !done {
			var zero B
			yield(zero, err)
		}
	}
}

// Into appends seq's items transformed by t to dst.
func Into[A, B any](dst []B, t Transducer[A, B], seq iter.Seq[A]) ([]B, error) {
	return TransduceLeft(t, Append[B](), dst, seq)
}
