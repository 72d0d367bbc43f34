// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"slices"
	"sync"

	"code.hybscloud.com/transduce"
)

// Event is one recorded reducer call.
type Event struct {
	Tag    string
	Name   string
	Values []any
}

// Recorder keeps every event it observes in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe implements transduce.Observer.
func (r *Recorder) Observe(tag string, event string, values ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Tag: tag, Name: event, Values: slices.Clone(values)})
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Names returns the recorded event names in arrival order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type multi []transduce.Observer

func (m multi) Observe(tag string, event string, values ...any) {
	for _, o := range m {
		o.Observe(tag, event, values...)
	}
}

// Multi returns an Observer that reports every event to each of obs in
// order. Nil observers are skipped.
func Multi(obs ...transduce.Observer) transduce.Observer {
	m := make(multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}
