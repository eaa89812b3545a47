//go:build !wasm

package events

import "testing"

func TestSet_DispatchOrder(t *testing.T) {
	var s Set[int]
	var got []string

	s.Add(func(int) { got = append(got, "first") })
	s.Add(func(int) { got = append(got, "second") })

	s.Dispatch(1)

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Expected [first second], got %v", got)
	}
}

func TestSet_Remove(t *testing.T) {
	var s Set[int]
	calls := 0

	remove := s.Add(func(int) { calls++ })
	keep := 0
	s.Add(func(int) { keep++ })

	remove()
	remove() // second call is a no-op

	s.Dispatch(0)

	if calls != 0 {
		t.Errorf("Removed handler was called %d time(s)", calls)
	}
	if keep != 1 {
		t.Errorf("Expected remaining handler to run once, ran %d", keep)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 handler left, got %d", s.Len())
	}
}

// TestSet_RemoveDuringDispatch verifies a handler can unregister itself
// without skipping the handlers after it.
func TestSet_RemoveDuringDispatch(t *testing.T) {
	var s Set[string]
	var remove func()
	second := 0

	remove = s.Add(func(string) { remove() })
	s.Add(func(string) { second++ })

	s.Dispatch("click")
	s.Dispatch("click")

	if second != 2 {
		t.Errorf("Expected second handler to run twice, ran %d", second)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 handler left, got %d", s.Len())
	}
}
