package signpost

// Emitter is the backend tracing channel records are forwarded to.
// Implementations must be safe for concurrent use and must never block
// or fail the caller: a disabled or saturated backend degrades to a
// no-op or a counted drop.
//
// Begin and End are correlated by IntervalID, not by order - concurrent
// intervals on the same lane may interleave arbitrarily.
type Emitter interface {
	// Emit appends one instantaneous record.
	Emit(lane Lane, message string)

	// Begin opens a span identified by id.
	Begin(lane Lane, id IntervalID, message string)

	// End closes the span previously opened with the same id.
	End(lane Lane, id IntervalID)
}

// NopEmitter discards all records. It stands in for a disabled platform
// channel: every operation is a cheap no-op.
type NopEmitter struct{}

// Emit implements Emitter.
func (NopEmitter) Emit(Lane, string) {}

// Begin implements Emitter.
func (NopEmitter) Begin(Lane, IntervalID, string) {}

// End implements Emitter.
func (NopEmitter) End(Lane, IntervalID) {}
