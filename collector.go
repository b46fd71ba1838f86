package signpost

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// Phase classifies a record, after the trace-event phase vocabulary.
type Phase string

const (
	PhaseBegin   Phase = "B"
	PhaseEnd     Phase = "E"
	PhaseInstant Phase = "i"
)

// Record is one emission as observed by a Collector. End records carry
// no message; correlation is by ID, not by order.
type Record struct {
	Time    time.Time  `json:"time"`
	Lane    Lane       `json:"lane"`
	Phase   Phase      `json:"phase"`
	ID      IntervalID `json:"id,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Collector is an in-memory Emitter buffering records for inspection
// and batch export. Safe for concurrent use by multiple goroutines.
//
// Collection is asynchronous through a bounded channel; when the channel
// is full, records are dropped rather than blocking the emitting
// goroutine. Enable sync mode for deterministic tests.
type Collector struct {
	records      []Record
	recordsCh    chan Record
	stopCh       chan struct{}
	done         chan struct{}
	clock        clockz.Clock
	droppedCount atomic.Int64
	name         string
	mu           sync.Mutex
	closed       atomic.Bool
	syncMode     bool
}

// NewCollector creates a collector with the specified name and buffer
// size, stamping records with the real clock.
func NewCollector(name string, bufferSize int) *Collector {
	return NewCollectorWithClock(name, bufferSize, clockz.RealClock)
}

// NewCollectorWithClock creates a collector with an injected clock for
// deterministic record timestamps in tests.
func NewCollectorWithClock(name string, bufferSize int, clock clockz.Clock) *Collector {
	c := &Collector{
		name:      name,
		records:   make([]Record, 0, 8),
		recordsCh: make(chan Record, bufferSize),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		clock:     clock,
	}
	go c.start()
	return c
}

// Name returns the collector's name.
func (c *Collector) Name() string {
	return c.name
}

// Emit implements Emitter.
func (c *Collector) Emit(lane Lane, message string) {
	c.collect(Record{Lane: lane, Phase: PhaseInstant, Message: message})
}

// Begin implements Emitter.
func (c *Collector) Begin(lane Lane, id IntervalID, message string) {
	c.collect(Record{Lane: lane, Phase: PhaseBegin, ID: id, Message: message})
}

// End implements Emitter.
func (c *Collector) End(lane Lane, id IntervalID) {
	c.collect(Record{Lane: lane, Phase: PhaseEnd, ID: id})
}

// collect stamps and buffers one record with backpressure protection.
// If the internal channel is full, the record is dropped and the drop
// counter is incremented. In sync mode, records are buffered directly
// for deterministic testing.
func (c *Collector) collect(record Record) {
	record.Time = c.clock.Now()

	if c.syncMode {
		if c.closed.Load() {
			c.droppedCount.Add(1)
			return
		}
		c.bufferRecord(record)
		return
	}

	select {
	case c.recordsCh <- record:
		// Successfully queued.
	default:
		// Channel full - drop record to prevent blocking.
		c.droppedCount.Add(1)
	}
}

// start runs the collector's main loop, receiving records from the channel.
func (c *Collector) start() {
	defer close(c.done)

	for {
		select {
		case <-c.stopCh:
			// Drain remaining records before shutdown.
			for {
				select {
				case record := <-c.recordsCh:
					c.bufferRecord(record)
				default:
					return
				}
			}
		case record := <-c.recordsCh:
			c.bufferRecord(record)
		}
	}
}

// bufferRecord appends a record to the internal buffer.
func (c *Collector) bufferRecord(record Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Grow geometrically; cap the growth factor for large buffers.
	if len(c.records) >= cap(c.records) {
		currentCap := cap(c.records)
		var newCap int
		if currentCap < 1024 {
			newCap = currentCap * 2
		} else {
			newCap = currentCap + currentCap/2
		}
		if newCap < 32 {
			newCap = 32
		}
		grown := make([]Record, len(c.records), newCap)
		copy(grown, c.records)
		c.records = grown
	}
	c.records = append(c.records, record)
}

// Export returns a copy of all buffered records and clears the internal
// buffer. The returned slice is safe to modify without affecting the
// collector.
func (c *Collector) Export() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.records) == 0 {
		return nil
	}

	result := make([]Record, len(c.records))
	copy(result, c.records)

	// Shrink only very oversized buffers to avoid allocation churn.
	if cap(c.records) > 256 && len(c.records) < cap(c.records)/8 {
		newCap := cap(c.records) / 4
		if newCap < 32 {
			newCap = 32
		}
		c.records = make([]Record, 0, newCap)
	} else {
		c.records = c.records[:0]
	}

	return result
}

// Count returns the current number of buffered records.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// DroppedCount returns the total number of records dropped due to
// backpressure.
func (c *Collector) DroppedCount() int64 {
	return c.droppedCount.Load()
}

// SetSyncMode enables synchronous collection for testing. When enabled,
// records are buffered directly without the channel, making tests
// deterministic by eliminating async behavior.
func (c *Collector) SetSyncMode(sync bool) {
	c.syncMode = sync
}

// Reset clears all buffered records and resets the drop counter. Does
// not affect the running goroutine - use Close for that.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = c.records[:0]
	c.droppedCount.Store(0)
}

// Close shuts down the collector goroutine gracefully, draining any
// queued records first.
func (c *Collector) Close() {
	if c.closed.Swap(true) {
		return
	}
	close(c.stopCh)
	select {
	case <-c.done:
		// Clean shutdown completed.
	case <-time.After(100 * time.Millisecond):
		// Timeout - proceed anyway.
	}
}
