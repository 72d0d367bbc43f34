// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

// Observer receives the events reported by [Debug].
// Observe is called synchronously; it must not retain values it does not
// own and cannot alter control flow or results.
type Observer interface {
	Observe(tag string, event string, values ...any)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(tag string, event string, values ...any)

// Observe implements Observer.
func (f ObserverFunc) Observe(tag string, event string, values ...any) {
	f(tag, event, values...)
}

// Discard is an Observer that ignores every event.
var Discard Observer = ObserverFunc(func(string, string, ...any) {})

// Debug event names.
const (
	// EventIdentity values: result, error.
	EventIdentity = "identity"
	// EventCompletion values: state, acc, result, error.
	EventCompletion = "completion"
	// EventStepL values: state, acc, input, next state, reduction.
	EventStepL = "stepL"
	// EventStepR values: state, input, remainder forced, next state, reduction.
	EventStepR = "stepR"
)

type debug[A any] struct {
	stateless[A]
	name string
	obs  Observer
}

func (d debug[A]) Identity() (Erased, error) {
	v, err := d.rf.Identity()
	d.obs.Observe(d.name, EventIdentity, v, err)
	return v, err
}

func (d debug[A]) Completion(state Erased, acc Erased) (Erased, error) {
	v, err := d.rf.Completion(state, acc)
	d.obs.Observe(d.name, EventCompletion, state, acc, v, err)
	return v, err
}

func (d debug[A]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	next, r := d.rf.StepL(state, acc, input)
	d.obs.Observe(d.name, EventStepL, state, acc, input, next, r)
	return next, r
}

func (d debug[A]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	next, r := d.rf.StepR(state, input, rest)
	d.obs.Observe(d.name, EventStepR, state, input, rest.Forced(), next, r)
	return next, r
}

// Debug passes every call through to the wrapped reducer unchanged and
// reports each call, with its arguments and result, to obs under name.
// A nil obs is [Discard].
func Debug[A any](name string, obs Observer) Transducer[A, A] {
	if obs == nil {
		obs = Discard
	}
	return TransducerFunc[A, A](func(rf Reducer[Erased, A, Erased]) Reducer[Erased, A, Erased] {
		return debug[A]{stateless: stateless[A]{base[A]{rf}}, name: name, obs: obs}
	})
}
