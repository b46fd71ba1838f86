package signpost

import (
	"context"
	"runtime/trace"
)

// RuntimeTraceEmitter forwards records to the process-native execution
// tracer (runtime/trace). It is the default backend: records appear as
// log events in `go tool trace`, with the lane as category.
//
// When the execution tracer is not running every operation is a cheap
// no-op, so tracing never costs the application anything while disabled.
//
// Begin/end pairs are encoded as phase-prefixed log events correlated by
// interval ID: the execution tracer's own regions require begin and end
// on one goroutine, which intervals deliberately do not.
type RuntimeTraceEmitter struct{}

// NewRuntimeTraceEmitter creates an emitter over the process-native
// execution tracer.
func NewRuntimeTraceEmitter() *RuntimeTraceEmitter {
	return &RuntimeTraceEmitter{}
}

// Enabled reports whether the execution tracer is currently running.
func (*RuntimeTraceEmitter) Enabled() bool {
	return trace.IsEnabled()
}

// Emit implements Emitter.
func (*RuntimeTraceEmitter) Emit(lane Lane, message string) {
	if !trace.IsEnabled() {
		return
	}
	trace.Log(context.Background(), lane, message)
}

// Begin implements Emitter.
func (*RuntimeTraceEmitter) Begin(lane Lane, id IntervalID, message string) {
	if !trace.IsEnabled() {
		return
	}
	trace.Logf(context.Background(), lane, "begin %s %s", id, message)
}

// End implements Emitter.
func (*RuntimeTraceEmitter) End(lane Lane, id IntervalID) {
	if !trace.IsEnabled() {
		return
	}
	trace.Logf(context.Background(), lane, "end %s", id)
}
