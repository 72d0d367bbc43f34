// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Lazy is the deferred remainder of a right fold.
//
// Forcing a Lazy with a state reduces everything after the current item,
// starting from that state, and yields the final state together with the
// reduced value. Evaluation happens at most once; later calls return the
// memoized pair and ignore their argument. A step that never forces its
// remainder never touches the rest of the sequence.
//
// A Lazy belongs to a single reduction and is not safe for concurrent use.
type Lazy[S, R any] struct {
	eval   func(S) (S, R)
	seed   R
	forced bool
	state  S
	value  R
}

// Defer creates a remainder that runs eval when first forced.
// The seed is the result of reducing an empty remainder, i.e. the initial
// value of the fold; steps that stop early return it via [Lazy.Seed].
func Defer[S, R any](seed R, eval func(S) (S, R)) *Lazy[S, R] {
	return &Lazy[S, R]{eval: eval, seed: seed}
}

// Force evaluates the remainder from state s.
// Panics if called again while the first evaluation is still running.
func (l *Lazy[S, R]) Force(s S) (S, R) {
	if l.forced {
		return l.state, l.value
	}
	eval := l.eval
	if eval == nil {
		panic("transduce: lazy remainder forced re-entrantly")
	}
	l.eval = nil
	l.state, l.value = eval(s)
	l.forced = true
	return l.state, l.value
}

// Forced reports whether the remainder has been evaluated.
func (l *Lazy[S, R]) Forced() bool {
	return l.forced
}

// Seed returns the value of an empty remainder without forcing.
func (l *Lazy[S, R]) Seed() R {
	return l.seed
}

// ready returns a remainder that has already been reduced to acc.
// ready(rest.Seed()) is an empty remainder.
func ready[S, R any](acc R) *Lazy[S, R] {
	return Defer(acc, func(s S) (S, R) { return s, acc })
}
