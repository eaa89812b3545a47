// Package events keeps ordered listener lists for hosts that dispatch
// events themselves (the headless DOM). No build tags.
package events

// Set is an ordered list of handlers for one event type on one target.
// Handlers fire in registration order. A Set is not safe for concurrent use;
// like the browser it is driven from a single event loop.
type Set[E any] struct {
	nextID   uint64
	handlers []entry[E]
}

type entry[E any] struct {
	id uint64
	fn func(E)
}

// Add registers fn and returns a func that removes it again.
// The returned func is idempotent.
func (s *Set[E]) Add(fn func(E)) (remove func()) {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, entry[E]{id: id, fn: fn})

	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Dispatch calls every handler registered at the time of the call.
// Handlers added or removed during dispatch take effect on the next one.
func (s *Set[E]) Dispatch(ev E) {
	snapshot := make([]entry[E], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		h.fn(ev)
	}
}

// Len reports how many handlers are registered.
func (s *Set[E]) Len() int {
	return len(s.handlers)
}
