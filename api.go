// Package signpost is a thin convenience wrapper for emitting
// points-of-interest events and intervals to a tracing backend.
//
// signpost does not implement a tracing backend of its own. It formats
// labels, generates interval identifiers, and forwards begin/end/event
// records to an Emitter - the process-native execution tracer, an
// OpenTelemetry tracer, or an in-memory Collector for tests.
//
// Core Components:
//   - Concept: closed vocabulary of severity/color tags for visualization.
//   - Handle: a channel bound to a subsystem, formats labeled records.
//   - Channel: lower-level operations with literal, unformatted messages.
//   - Interval: one open-to-close span of work, correlated by unique ID.
//   - Collector: buffers emitted records for inspection and export.
//
// Basic Usage:
//
//	handle := signpost.New("com.example.app")
//
//	// Instantaneous marker.
//	handle.Event("Events", "cache warm", signpost.Info)
//
//	// Bracketed interval - end is emitted on every exit path.
//	err := handle.WithInterval(ctx, "Intervals", "fetch", signpost.Moderate,
//		func(ctx context.Context) error {
//			return fetch(ctx)
//		})
//
//	// Manual boundaries that do not nest in one scope.
//	interval := handle.BeginInterval("Intervals", "upload", signpost.Low)
//	// ... later, possibly on another goroutine ...
//	interval.End()
//
// Thread Safety:
//
// Handle and Channel are immutable after construction and safe for
// concurrent use by multiple goroutines. Interval End is idempotent and
// safe to invoke from a different goroutine than Begin.
//
// Failure Model:
//
// Tracing never fails or blocks the traced work. Emitters absorb backend
// unavailability (a disabled runtime tracer, a saturated collector) and
// degrade to cheap no-ops or counted drops. The bracketing helpers
// propagate the wrapped work's result, error, or panic unchanged.
package signpost

// Lane is a routing/grouping name for records, distinct from the
// free-text label. The visualization layer groups records by lane.
// An alias, not a defined type, so lanes flow into backend APIs that
// take plain strings.
type Lane = string

const (
	// DefaultEventLane is used when an event is emitted with an empty lane.
	DefaultEventLane Lane = "Points"

	// DefaultIntervalLane is used when an interval is begun with an empty lane.
	DefaultIntervalLane Lane = "Intervals"
)
