package htmldom

import (
	"github.com/vcrobe/siteheader/dom"
	"github.com/vcrobe/siteheader/events"
)

var _ dom.Window = (*Window)(nil)

// Window is a headless browsing context around a Document.
type Window struct {
	doc       *Document
	pathname  string
	width     int
	listeners map[string]*events.Set[dom.Event]
}

// NewWindow creates a window showing doc at pathname with the given
// viewport width.
func NewWindow(doc *Document, pathname string, width int) *Window {
	return &Window{
		doc:       doc,
		pathname:  pathname,
		width:     width,
		listeners: make(map[string]*events.Set[dom.Event]),
	}
}

func (w *Window) Document() dom.Document {
	return w.doc
}

func (w *Window) Pathname() string {
	return w.pathname
}

func (w *Window) InnerWidth() int {
	return w.width
}

func (w *Window) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	set := w.listeners[eventType]
	if set == nil {
		set = &events.Set[dom.Event]{}
		w.listeners[eventType] = set
	}
	return set.Add(fn)
}

// Navigate changes the current path without firing any event.
func (w *Window) Navigate(pathname string) {
	w.pathname = pathname
}

// Resize sets the viewport width and fires "resize".
func (w *Window) Resize(width int) {
	w.width = width
	if set := w.listeners["resize"]; set != nil {
		set.Dispatch(dom.Event{Type: "resize"})
	}
}

// ListenerCount reports how many window listeners are attached.
func (w *Window) ListenerCount() int {
	total := 0
	for _, set := range w.listeners {
		total += set.Len()
	}
	return total
}
