// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"code.hybscloud.com/transduce"
)

// Attribute keys recorded on spans and counters.
const (
	AttrTag    = attribute.Key("transduce.tag")
	AttrEvent  = attribute.Key("transduce.event")
	AttrValues = attribute.Key("transduce.values")
)

// CounterName is the instrument name used by [Counter].
const CounterName = "transduce.debug.events"

type spanObserver struct {
	span trace.Span
}

func (o spanObserver) Observe(tag string, event string, values ...any) {
	if !o.span.IsRecording() {
		return
	}
	o.span.AddEvent(event, trace.WithAttributes(
		AttrTag.String(tag),
		AttrValues.StringSlice(render(values)),
	))
}

// Span returns an Observer that adds one event named after the reducer
// call to span. Nothing is recorded once span has ended.
func Span(span trace.Span) transduce.Observer {
	return spanObserver{span: span}
}

type counterObserver struct {
	counter metric.Int64Counter
}

func (o counterObserver) Observe(tag string, event string, _ ...any) {
	o.counter.Add(context.Background(), 1, metric.WithAttributes(
		AttrTag.String(tag),
		AttrEvent.String(event),
	))
}

// Counter returns an Observer that counts reducer calls on an Int64Counter
// named [CounterName], with the tag and event as attributes.
func Counter(meter metric.Meter) (transduce.Observer, error) {
	c, err := meter.Int64Counter(CounterName,
		metric.WithDescription("Reducer calls reported by transduce.Debug"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", CounterName, err)
	}
	return counterObserver{counter: c}, nil
}
