package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags — fully testable outside WASM.
type Signal[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   map[uint64]func(T)
	order  []uint64
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[uint64]func(T))}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
// Reports whether it changed.
func (s *Signal[T]) Set(v T) bool {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return false
	}
	s.value = v
	subs := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
	return true
}

// Update sets the value to fn(current).
func (s *Signal[T]) Update(fn func(T) T) bool {
	return s.Set(fn(s.Get()))
}

// Subscribe registers a callback fired with the new value when it changes.
// Returns an unsubscribe func — call it on teardown to avoid leaks.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
