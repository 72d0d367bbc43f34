// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transduce provides composable transducers over left and right
// folds in Go.
//
// A [Reducer] describes how to accumulate a sequence of inputs into a
// result. A [Transducer] transforms one reducer into another, independent of
// the result type, so the same mapping, filtering or taking pipeline can be
// applied to any terminal reducer and driven by either fold direction.
//
// # Design Philosophy
//
// transduce provides:
//   - One protocol for both fold directions: every reducer has a left step and a right step
//   - Early termination through [Reduction] instead of sentinel errors or panics
//   - Lazy right folds that never force the part of the input they do not need
//
// # Reductions
//
// A step returns a [Reduction]: [Continue] keeps folding, [Reduced] stops.
// A left fold stops pulling inputs as soon as a step returns Reduced.
// A right fold stops descending when a step returns without forcing its
// remainder.
//
// # Reducers
//
// A reducer is built from exactly one step:
//
//   - [FromLeft]: from a step over (acc, input); the right step is derived
//   - [FromRight]: from a step over (input, remainder); the left step is derived
//   - [Reducing]: stateless left reducer from a function returning a Reduction
//   - [Folding]: stateless left reducer from a plain fold function
//
// Optional parts are set with [FuncReducer.WithInitialState],
// [FuncReducer.WithIdentity] and [FuncReducer.WithCompletion]. A reducer
// without an identity reports [ErrNoIdentity].
//
// # Remainders
//
// The right step receives the rest of the fold as a [Lazy] remainder. Forcing
// it with a state evaluates the rest of the input from that state and returns
// the final state and value. A remainder is evaluated at most once. Its
// [Lazy.Seed] is the value an empty remainder would produce.
//
// # Transducers
//
//   - [Mapping], [ToString], [Keep], [Mapcat]: transform inputs
//   - [Filtering], [Remove]: drop inputs failing or passing a predicate
//   - [Take], [TakeWhile], [TakeNth]: pass on a prefix or a stride
//   - [Drop], [DropWhile]: skip a prefix
//   - [Dedupe]: pass on first occurrences only
//   - [Categorising]: group inputs by key and pass on the groups at completion
//   - [Debug]: report every call to an [Observer]
//
// [Then] and [Compose] combine transducers in data-flow order: the first
// transducer sees the source inputs first. [Identity] is the unit of
// composition.
//
// # Execution
//
//   - [ReduceLeft], [ReduceRight]: drive a reducer over an iter.Seq
//   - [TransduceLeft], [TransduceRight]: apply, reduce and complete
//   - [TransduceLeft1], [TransduceRight1]: as above, seeded with the reducer's identity
//   - [EductionLeft], [EductionRight]: bind a transducer to a source and defer the reducer
//   - [Sequence], [SequenceErr], [Into]: pull transformed items as an iter.Seq
//     (with the completion error, for SequenceErr) or append them to a slice
//
// Right folds consume the source through iter.Pull, so infinite sequences
// are safe as long as the pipeline stops early.
//
// # Mutable Variant
//
// [MutableTransducer] keeps its bookkeeping in the transducer instance
// instead of the reducer state, which is fixed to [Unit]. Instances are
// single-owner and single-use; see [MutableTake].
//
// # Type Erasure
//
// Transducer boundaries carry states and results as [Erased]. [Apply]
// restores the terminal reducer's result type, so callers never handle
// erased values directly.
package transduce
