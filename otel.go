package signpost

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OTelEmitter bridges records to an OpenTelemetry tracer. Begin starts a
// span held until End arrives with the same interval ID; Emit records an
// instantaneous (zero-length) span. Lane and category are attached as
// attributes.
//
// Because begin and end may arrive on different goroutines, in-flight
// spans are kept in a concurrent map keyed by interval ID. An End with
// an unknown ID is a no-op.
type OTelEmitter struct {
	tracer trace.Tracer
	spans  sync.Map // IntervalID -> trace.Span
}

// NewOTelEmitter creates an emitter over the given tracer. Obtain the
// tracer from your provider named after the handle's subsystem.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

func laneAttributes(lane Lane) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("signpost.lane", lane),
		attribute.String("signpost.category", Category),
	)
}

// Emit implements Emitter.
func (e *OTelEmitter) Emit(lane Lane, message string) {
	_, span := e.tracer.Start(context.Background(), message, laneAttributes(lane))
	span.End()
}

// Begin implements Emitter.
func (e *OTelEmitter) Begin(lane Lane, id IntervalID, message string) {
	_, span := e.tracer.Start(context.Background(), message, laneAttributes(lane),
		trace.WithAttributes(attribute.String("signpost.id", string(id))))
	e.spans.Store(id, span)
}

// End implements Emitter.
func (e *OTelEmitter) End(_ Lane, id IntervalID) {
	value, ok := e.spans.LoadAndDelete(id)
	if !ok {
		return
	}
	value.(trace.Span).End()
}
