package signpost

import (
	"context"
	"runtime"
	"sync"

	"github.com/zoobzio/clockz"
)

// config collects construction options shared by Channel and Handle.
type config struct {
	emitter  Emitter
	clock    clockz.Clock
	poolSize int
}

// Option configures a Channel or Handle at construction.
type Option func(*config)

// WithEmitter sets the backend channel records are forwarded to.
// Defaults to the process-native execution tracer.
func WithEmitter(emitter Emitter) Option {
	return func(c *config) {
		c.emitter = emitter
	}
}

// WithClock sets the clock used for fallback ID generation.
// Enables clock injection for deterministic testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		clock: clockz.RealClock,
		// Pool size based on number of CPUs for optimal contention balance.
		poolSize: runtime.NumCPU() * 100,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.emitter == nil {
		cfg.emitter = NewRuntimeTraceEmitter()
	}
	return cfg
}

// Channel emits records with literal, unformatted messages. It is the
// lower-level surface beneath Handle, for call sites that do not want
// the Concept vocabulary.
//
// A Channel is immutable after construction and safe for concurrent use
// by multiple goroutines. It owns no mutable state beyond the lazily
// created ID pool.
type Channel struct {
	emitter  Emitter
	clock    clockz.Clock
	pool     *IDPool
	poolSize int
	poolOnce sync.Once
}

// NewChannel creates a channel over the configured emitter.
func NewChannel(opts ...Option) *Channel {
	cfg := newConfig(opts)
	return &Channel{
		emitter:  cfg.emitter,
		clock:    cfg.clock,
		poolSize: cfg.poolSize,
	}
}

// ensurePool initializes the ID pool if not already created.
func (c *Channel) ensurePool() {
	c.poolOnce.Do(func() {
		c.pool = NewIDPool(c.poolSize, c.clock)
	})
}

// nextID allocates a fresh unique interval identifier.
func (c *Channel) nextID() IntervalID {
	c.ensurePool()
	return c.pool.Get()
}

// Event emits one instantaneous record carrying the literal message.
// An empty lane defaults to DefaultEventLane.
func (c *Channel) Event(lane Lane, message string) {
	if lane == "" {
		lane = DefaultEventLane
	}
	c.emitter.Emit(lane, message)
}

// Begin opens an interval carrying the literal message and emits its
// begin record. An empty lane defaults to DefaultIntervalLane. The
// returned Interval must be ended exactly once.
func (c *Channel) Begin(lane Lane, message string) *Interval {
	interval := c.newInterval(lane, message, "")
	interval.Begin()
	return interval
}

// End emits the end record for an interval begun on this channel.
// Equivalent to interval.End.
func (c *Channel) End(interval *Interval) {
	interval.End()
}

// newInterval allocates an interval value without emitting anything.
// An empty concept marks a raw interval whose message is the bare label.
func (c *Channel) newInterval(lane Lane, label string, concept Concept) *Interval {
	if lane == "" {
		lane = DefaultIntervalLane
	}
	return &Interval{
		channel: c,
		lane:    lane,
		label:   label,
		concept: concept,
		id:      c.nextID(),
	}
}

// Bracket runs fn inside an interval, guaranteeing the end record is
// emitted exactly once on every exit path - normal return, error, panic,
// or cancellation - after fn has fully settled. The error is fn's own,
// returned unchanged.
func (c *Channel) Bracket(ctx context.Context, lane Lane, message string, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	interval := c.Begin(lane, message)
	defer interval.End()
	return fn(ctx)
}

// BracketValue is Bracket for work that produces a value. The result and
// error are fn's own, returned unchanged.
func BracketValue[T any](ctx context.Context, c *Channel, lane Lane, message string, fn func(context.Context) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	interval := c.Begin(lane, message)
	defer interval.End()
	return fn(ctx)
}

// Close releases the channel's ID pool. Emission remains usable after
// Close; IDs fall back to direct generation.
func (c *Channel) Close() {
	// Resolve the pool through the same once that creates it, so a
	// Close racing a first Begin does not read a half-published pointer.
	c.ensurePool()
	c.pool.Close()
}
