package signpost

import (
	"context"
	"fmt"
)

// Category groups all records emitted through a Handle. It is a fixed
// constant: handles differ by subsystem only.
const Category = "PointsOfInterest"

// Handle is a process-scoped tracing handle bound to a subsystem name
// and the fixed Category. It formats the Label/Concept composite and
// forwards records through its channel.
//
// A Handle is immutable after construction and safe for concurrent use
// by multiple goroutines. Construct one per subsystem, typically
// long-lived, and pass it explicitly to call sites.
type Handle struct {
	channel   *Channel
	subsystem string
}

// New creates a handle for the given subsystem. Without options it emits
// to the process-native execution tracer.
func New(subsystem string, opts ...Option) *Handle {
	return &Handle{
		channel:   NewChannel(opts...),
		subsystem: subsystem,
	}
}

// Subsystem returns the subsystem identifier the handle was created with.
func (h *Handle) Subsystem() string {
	return h.subsystem
}

// Raw returns the handle's underlying channel, for call sites that want
// literal messages without the Concept vocabulary.
func (h *Handle) Raw() *Channel {
	return h.channel
}

// formatLabel renders the composite wire-format message. Labels are
// transmitted on a publicly readable diagnostic channel; callers must
// not embed sensitive data.
func formatLabel(label string, concept Concept) string {
	return fmt.Sprintf("Label:%s,Concept:%s", label, concept)
}

// Event emits one instantaneous marker formatted as
// "Label:<label>,Concept:<concept>". An empty lane defaults to
// DefaultEventLane, an empty concept to Signpost. Fire-and-forget: no
// return value, no error conditions.
func (h *Handle) Event(lane Lane, label string, concept Concept) {
	if concept == "" {
		concept = Signpost
	}
	h.channel.Event(lane, formatLabel(label, concept))
}

// BeginInterval allocates a fresh unique identifier, emits the begin
// record, and returns the interval. An empty lane defaults to
// DefaultIntervalLane, an empty concept to Signpost. Must be paired with
// exactly one later End.
func (h *Handle) BeginInterval(lane Lane, label string, concept Concept) *Interval {
	if concept == "" {
		concept = Signpost
	}
	interval := h.channel.newInterval(lane, label, concept)
	interval.Begin()
	return interval
}

// EndInterval emits the end record for an interval begun on this handle.
// Equivalent to interval.End.
func (h *Handle) EndInterval(interval *Interval) {
	interval.End()
}

// WithInterval runs fn inside an interval, guaranteeing the end record
// is emitted exactly once on every exit path - normal return, error,
// panic, or cancellation - after fn has fully settled. The error is fn's
// own, returned unchanged; the wrapper introduces no error conditions.
//
// fn may block or suspend; the end record is only emitted after it
// returns. Cancellation of ctx is fn's to observe and counts as
// completion once fn returns.
func (h *Handle) WithInterval(ctx context.Context, lane Lane, label string, concept Concept, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	interval := h.BeginInterval(lane, label, concept)
	defer interval.End()
	return fn(ctx)
}

// WithIntervalValue is WithInterval for work that produces a value. The
// result and error are fn's own, returned unchanged.
func WithIntervalValue[T any](ctx context.Context, h *Handle, lane Lane, label string, concept Concept, fn func(context.Context) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	interval := h.BeginInterval(lane, label, concept)
	defer interval.End()
	return fn(ctx)
}

// Close releases the handle's ID pool. Emission remains usable after
// Close.
func (h *Handle) Close() {
	h.channel.Close()
}
