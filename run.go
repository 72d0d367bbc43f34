// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "iter"

// ReduceLeft folds seq from the front, starting from state and init.
// A Reduced step stops the fold; the remaining items are never pulled.
// Runs in constant stack space.
func ReduceLeft[S, A, R any](rf Reducer[S, A, R], state S, init R, seq iter.Seq[A]) (S, R) {
	acc := init
	for input := range seq {
		var r Reduction[R]
		state, r = rf.StepL(state, acc, input)
		acc = r.Value()
		if r.IsReduced() {
			break
		}
	}
	return state, acc
}

// ReduceRight folds seq from the back, starting from state and init.
//
// Each step receives the reduction of the items after it as a [Lazy]
// remainder. The next item is pulled from seq only when that remainder is
// forced, so a step that stops without forcing leaves the rest of seq,
// finite or not, unevaluated. Stack depth grows with the number of forced
// remainders.
func ReduceRight[S, A, R any](rf Reducer[S, A, R], state S, init R, seq iter.Seq[A]) (S, R) {
	next, stop := iter.Pull(seq)
	defer stop()
	return foldRight(rf, next, state, init)
}

func foldRight[S, A, R any](rf Reducer[S, A, R], next func() (A, bool), state S, init R) (S, R) {
	input, ok := next()
	if !ok {
		return state, init
	}
	rest := Defer(init, func(s S) (S, R) {
		return foldRight(rf, next, s, init)
	})
	state, r := rf.StepR(state, input, rest)
	return state, r.Value()
}

// TransduceLeft applies t to rf, folds seq from the front starting at init,
// and runs the composed reducer's completion once.
func TransduceLeft[A, B, S, R any](t Transducer[A, B], rf Reducer[S, B, R], init R, seq iter.Seq[A]) (R, error) {
	xf := Apply(t, rf)
	state, acc := ReduceLeft(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// TransduceRight applies t to rf, folds seq from the back starting at init,
// and runs the composed reducer's completion once.
func TransduceRight[A, B, S, R any](t Transducer[A, B], rf Reducer[S, B, R], init R, seq iter.Seq[A]) (R, error) {
	xf := Apply(t, rf)
	state, acc := ReduceRight(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// TransduceLeft1 is TransduceLeft with the composed reducer's identity as
// the initial value. Returns [ErrNoIdentity] if there is none.
func TransduceLeft1[A, B, S, R any](t Transducer[A, B], rf Reducer[S, B, R], seq iter.Seq[A]) (R, error) {
	xf := Apply(t, rf)
	init, err := identityOf(xf)
	if err != nil {
		return init, err
	}
	state, acc := ReduceLeft(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// TransduceRight1 is TransduceRight with the composed reducer's identity as
// the initial value. Returns [ErrNoIdentity] if there is none.
func TransduceRight1[A, B, S, R any](t Transducer[A, B], rf Reducer[S, B, R], seq iter.Seq[A]) (R, error) {
	xf := Apply(t, rf)
	init, err := identityOf(xf)
	if err != nil {
		return init, err
	}
	state, acc := ReduceRight(xf, xf.InitialState(), init, seq)
	return xf.Completion(state, acc)
}

// identityOf obtains the identity of an already composed reducer through
// the Identity transducer.
func identityOf[A, R any](xf Reducer[Erased, A, R]) (R, error) {
	return Apply(Identity[A](), xf).Identity()
}

// EductionLeft fixes t and seq, deferring the choice of terminal reducer
// and initial value. Calling the result is TransduceLeft.
func EductionLeft[S, R, A, B any](t Transducer[A, B], seq iter.Seq[A]) func(rf Reducer[S, B, R], init R) (R, error) {
	return func(rf Reducer[S, B, R], init R) (R, error) {
		return TransduceLeft(t, rf, init, seq)
	}
}

// EductionRight fixes t and seq, deferring the choice of terminal reducer
// and initial value. Calling the result is TransduceRight.
func EductionRight[S, R, A, B any](t Transducer[A, B], seq iter.Seq[A]) func(rf Reducer[S, B, R], init R) (R, error) {
	return func(rf Reducer[S, B, R], init R) (R, error) {
		return TransduceRight(t, rf, init, seq)
	}
}
