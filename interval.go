package signpost

import "sync/atomic"

// Interval represents one open-to-close span of work. It references its
// owning channel, does not own it.
//
// The lifecycle is created -> begun -> ended; ended is terminal. Begin
// and End are idempotent: repeated calls and End-before-Begin are safe
// no-ops, so a misused interval never emits an uncorrelated record.
type Interval struct {
	channel *Channel
	lane    Lane
	label   string
	concept Concept
	id      IntervalID
	begun   atomic.Bool
	ended   atomic.Bool
}

// ID returns the unique identifier correlating this interval's begin and
// end records.
func (i *Interval) ID() IntervalID {
	return i.id
}

// Lane returns the lane the interval's records are emitted on.
func (i *Interval) Lane() Lane {
	return i.lane
}

// Label returns the interval's free-text label.
func (i *Interval) Label() string {
	return i.label
}

// Concept returns the interval's concept tag. Raw intervals carry an
// empty concept.
func (i *Interval) Concept() Concept {
	return i.concept
}

// message returns the wire-format message: the composite label for
// concept-tagged intervals, the bare label for raw ones.
func (i *Interval) message() string {
	if i.concept == "" {
		return i.label
	}
	return formatLabel(i.label, i.concept)
}

// Begin emits the interval's begin record. Safe to call multiple times -
// subsequent calls are no-ops.
func (i *Interval) Begin() {
	if !i.begun.CompareAndSwap(false, true) {
		return
	}
	i.channel.emitter.Begin(i.lane, i.id, i.message())
}

// End emits the interval's end record. A no-op before Begin and on every
// call after the first, so the end record is emitted at most once and
// only after the begin record.
func (i *Interval) End() {
	if !i.begun.Load() {
		return
	}
	if !i.ended.CompareAndSwap(false, true) {
		return
	}
	i.channel.emitter.End(i.lane, i.id)
}
