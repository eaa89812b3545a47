// Package dom is the minimal document model the header controller needs.
// It has NO build tags: the browser host (dom/jsdom) and the headless host
// (dom/htmldom) both implement it, so controller code and its tests are
// identical in WASM and native builds.
package dom

// Event is a dispatched DOM event.
type Event struct {
	// Type is the event name, e.g. "click" or "resize".
	Type string

	// Target is the element the event was dispatched on.
	// It is nil for window events.
	Target Element
}

// Listener handles a dispatched event.
type Listener func(Event)

// Remove unregisters a listener. Calling it more than once is a no-op.
type Remove func()

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	AddEventListener(eventType string, fn Listener) Remove
}

// Element is a single element node.
type Element interface {
	EventTarget

	// ID returns the id attribute, or "" when unset.
	ID() string

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)

	HasClass(class string) bool
	AddClass(class string)
	RemoveClass(class string)

	// SetInnerHTML replaces all children with the parsed markup.
	SetInnerHTML(markup string) error

	// Closest returns the nearest ancestor-or-self carrying class,
	// or nil when there is none.
	Closest(class string) Element
}

// Document is the root of an element tree.
type Document interface {
	EventTarget

	// GetElementByID returns the first element with the given id, or nil.
	GetElementByID(id string) Element

	// ElementsByClass returns every element carrying class, in document order.
	ElementsByClass(class string) []Element
}

// Window is the top-level browsing context.
type Window interface {
	EventTarget

	Document() Document

	// Pathname is the path component of the current location.
	Pathname() string

	// InnerWidth is the viewport width in CSS pixels.
	InnerWidth() int
}
