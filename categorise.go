// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce

import "slices"

// Bias selects the traversal order of a secondary reduction.
type Bias int

const (
	// Left reduces front to back.
	Left Bias = iota
	// Right reduces back to front.
	Right
)

// String returns "left" or "right".
func (b Bias) String() string {
	if b == Right {
		return "right"
	}
	return "left"
}

// partitions groups inputs by key, keeping first-seen key order and
// arrival order within each key. It is updated in place.
type partitions[K comparable, A any] struct {
	keys   []K
	groups map[K][]A
}

func newPartitions[K comparable, A any]() *partitions[K, A] {
	return &partitions[K, A]{groups: make(map[K][]A)}
}

func (p *partitions[K, A]) add(k K, a A) {
	g, ok := p.groups[k]
	if !ok {
		p.keys = append(p.keys, k)
	}
	p.groups[k] = append(g, a)
}

func (p *partitions[K, A]) lists() [][]A {
	out := make([][]A, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.groups[k])
	}
	return out
}

// reducePartitions runs the secondary reduction of lists through rf from
// state, seeded with rf's identity, and completes it.
func reducePartitions[S, A any](rf Reducer[S, []A, Erased], state S, lists [][]A, bias Bias) (Erased, error) {
	init, err := rf.Identity()
	if err != nil {
		return nil, err
	}
	var acc Erased
	if bias == Right {
		state, acc = ReduceRight(rf, state, init, slices.Values(lists))
	} else {
		state, acc = ReduceLeft(rf, state, init, slices.Values(lists))
	}
	return rf.Completion(state, acc)
}

// arrivals is a persistent list of keyed inputs, newest first.
// Adding an input allocates one node and leaves every earlier list intact.
type arrivals[K comparable, A any] struct {
	key  K
	item A
	prev *arrivals[K, A]
}

func (l *arrivals[K, A]) push(k K, a A) *arrivals[K, A] {
	return &arrivals[K, A]{key: k, item: a, prev: l}
}

// partitions groups the inputs of l in arrival order.
func (l *arrivals[K, A]) partitions() *partitions[K, A] {
	var order []*arrivals[K, A]
	for n := l; n != nil; n = n.prev {
		order = append(order, n)
	}
	p := newPartitions[K, A]()
	for _, n := range slices.Backward(order) {
		p.add(n.key, n.item)
	}
	return p
}

type categorising[A any, K comparable] struct {
	stateful[*arrivals[K, A], []A]
	key  func(A) K
	bias Bias
}

func (c categorising[A, K]) InitialState() Erased {
	return join[*arrivals[K, A]](nil, c.rf.InitialState())
}

func (c categorising[A, K]) StepL(state Erased, acc Erased, input A) (Erased, Reduction[Erased]) {
	l, inner := split[*arrivals[K, A]](state)
	return join(l.push(c.key(input), input), inner), Continue(acc)
}

func (c categorising[A, K]) StepR(state Erased, input A, rest *Lazy[Erased, Erased]) (Erased, Reduction[Erased]) {
	l, inner := split[*arrivals[K, A]](state)
	return skip(join(l.push(c.key(input), input), inner), rest)
}

// Completion discards acc and reduces the partitions through the wrapped
// reducer, starting from its identity.
func (c categorising[A, K]) Completion(state Erased, _ Erased) (Erased, error) {
	l, inner := split[*arrivals[K, A]](state)
	return reducePartitions(c.rf, inner, l.partitions().lists(), c.bias)
}

// Categorising groups inputs by key and passes on nothing until the input
// is exhausted. At completion it passes on one list per key, in the order
// keys were first seen, each list in arrival order. The lists are reduced
// with the wrapped reducer's identity as the initial value, front to back
// for [Left] bias and back to front for [Right] bias.
//
// Completion fails with [ErrNoIdentity] if the wrapped reducer has no
// identity.
func Categorising[A any, K comparable](key func(A) K, bias Bias) Transducer[A, []A] {
	return TransducerFunc[A, []A](func(rf Reducer[Erased, []A, Erased]) Reducer[Erased, A, Erased] {
		return categorising[A, K]{stateful: stateful[*arrivals[K, A], []A]{base[[]A]{rf}}, key: key, bias: bias}
	})
}
