package signpost

// MultiEmitter fans every record out to several backends in order, for
// example a live backend plus a Collector observing it. The slice is
// fixed at construction; immutable, safe for concurrent use.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMultiEmitter creates an emitter forwarding to each backend in the
// order given.
func NewMultiEmitter(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit implements Emitter.
func (m *MultiEmitter) Emit(lane Lane, message string) {
	for _, e := range m.emitters {
		e.Emit(lane, message)
	}
}

// Begin implements Emitter.
func (m *MultiEmitter) Begin(lane Lane, id IntervalID, message string) {
	for _, e := range m.emitters {
		e.Begin(lane, id, message)
	}
}

// End implements Emitter.
func (m *MultiEmitter) End(lane Lane, id IntervalID) {
	for _, e := range m.emitters {
		e.End(lane, id)
	}
}
