package signpost

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/zoobzio/clockz"
)

// IntervalID is an opaque identifier correlating an interval's end record
// with its begin record. IDs are unique for the lifetime of the channel
// that issued them.
type IntervalID string

// IDPool manages a pool of pre-generated interval IDs to amortize
// crypto/rand overhead on the emission path.
type IDPool struct {
	clock  clockz.Clock
	ids    chan IntervalID
	stopCh chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewIDPool creates a new ID pool with the specified capacity.
// The clock is only consulted when crypto/rand fails.
func NewIDPool(capacity int, clock clockz.Clock) *IDPool {
	pool := &IDPool{
		clock:  clock,
		ids:    make(chan IntervalID, capacity),
		stopCh: make(chan struct{}),
	}
	// Start background refill goroutine.
	go pool.refill()
	return pool
}

// Get retrieves an ID from the pool or generates one if the pool is empty.
func (p *IDPool) Get() IntervalID {
	select {
	case id := <-p.ids:
		return id
	default:
		// Pool empty, generate directly (fallback for burst load).
		return p.generate()
	}
}

// generate produces one 8-byte random hex ID.
func (p *IDPool) generate() IntervalID {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to time-based ID if crypto/rand fails.
		return IntervalID(hex.EncodeToString([]byte(p.clock.Now().Format("15:04:05.000000"))))
	}
	return IntervalID(hex.EncodeToString(bytes))
}

// refill maintains the pool by generating IDs in background.
func (p *IDPool) refill() {
	for {
		select {
		case <-p.stopCh:
			return
		default:
			select {
			case p.ids <- p.generate():
				// Successfully added ID to pool.
			case <-p.stopCh:
				return
			}
		}
	}
}

// Close shuts down the ID pool gracefully. Get remains usable after Close
// via direct generation.
func (p *IDPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		close(p.stopCh)
		p.closed = true
	}
}
