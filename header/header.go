// Package header drives a site's navigation header: the mobile menu
// toggle, active-link highlighting and loading the header markup into a
// placeholder. It works against the dom interfaces, so the same code runs in
// the browser (dom/jsdom) and headless (dom/htmldom).
package header

import (
	"github.com/vcrobe/siteheader/dom"
	"github.com/vcrobe/siteheader/signals"
)

// Markup contract shared with header.html.
const (
	ToggleID      = "mobile-toggle"
	MenuID        = "nav-menu"
	LinkClass     = "nav-link"
	PageAttr      = "data-page"
	RootClass     = "site-header"
	ActiveClass   = "active"
	PlaceholderID = "header-placeholder"

	// DefaultBreakpoint is the viewport width above which the mobile menu
	// closes itself.
	DefaultBreakpoint = 768
)

// Option configures a Header.
type Option func(*Header)

// WithBreakpoint overrides DefaultBreakpoint.
func WithBreakpoint(px int) Option {
	return func(h *Header) {
		h.breakpoint = px
	}
}

// Header is the controller for one rendered header. Create it with New after
// the header markup is in the document; call Destroy before replacing it.
type Header struct {
	win        dom.Window
	toggle     dom.Element
	menu       dom.Element
	links      []dom.Element
	byPage     map[string]dom.Element
	open       *signals.Signal[bool]
	breakpoint int
	active     string
	removers   []dom.Remove
}

// New looks up the toggle, menu and nav links in win's document, wires
// their listeners and highlights the link for the current page. A missing
// toggle or menu disables the mobile menu without error.
func New(win dom.Window, opts ...Option) *Header {
	doc := win.Document()
	h := &Header{
		win:        win,
		toggle:     doc.GetElementByID(ToggleID),
		menu:       doc.GetElementByID(MenuID),
		links:      doc.ElementsByClass(LinkClass),
		byPage:     make(map[string]dom.Element),
		open:       signals.NewSignal(false),
		breakpoint: DefaultBreakpoint,
	}
	for _, opt := range opts {
		opt(h)
	}

	for _, link := range h.links {
		page, ok := link.Attr(PageAttr)
		if !ok {
			continue
		}
		if _, dup := h.byPage[page]; !dup {
			h.byPage[page] = link
		}
	}

	h.init(doc)
	h.SetActivePage()
	return h
}

func (h *Header) init(doc dom.Document) {
	h.track(h.open.Subscribe(h.render))

	// Markup may ship with the menu marked open; start from Closed.
	if h.hasMenu() {
		h.render(false)
	}

	if h.toggle != nil {
		h.track(h.toggle.AddEventListener("click", func(dom.Event) { h.Toggle() }))
	}

	for _, link := range h.links {
		h.track(link.AddEventListener("click", func(dom.Event) { h.Close() }))
	}

	h.track(h.win.AddEventListener("resize", func(dom.Event) {
		if h.win.InnerWidth() > h.breakpoint {
			h.Close()
		}
	}))

	h.track(doc.AddEventListener("click", func(ev dom.Event) {
		if ev.Target == nil || ev.Target.Closest(RootClass) == nil {
			h.Close()
		}
	}))
}

func (h *Header) track(remove func()) {
	h.removers = append(h.removers, remove)
}

// SetActivePage marks the nav link for the current location as active and
// clears every other one. It returns the computed page id; when no link
// carries that id, no link is active.
func (h *Header) SetActivePage() string {
	h.active = PageID(h.win.Pathname())

	for _, link := range h.links {
		link.RemoveClass(ActiveClass)
	}
	if link, ok := h.byPage[h.active]; ok {
		link.AddClass(ActiveClass)
	}
	return h.active
}

// ActivePage returns the page id computed by the last SetActivePage.
func (h *Header) ActivePage() string {
	return h.active
}

// Toggle opens a closed menu and closes an open one.
func (h *Header) Toggle() {
	if !h.hasMenu() {
		return
	}
	h.open.Update(func(open bool) bool { return !open })
}

// Close closes the menu. The active class is cleared even when the menu was
// already closed, in case something else set it.
func (h *Header) Close() {
	if !h.hasMenu() {
		return
	}
	if !h.open.Set(false) {
		h.render(false)
	}
}

// IsOpen reports whether the mobile menu is open.
func (h *Header) IsOpen() bool {
	return h.open.Get()
}

// Destroy removes every listener New registered. Safe to call twice.
func (h *Header) Destroy() {
	for _, remove := range h.removers {
		remove()
	}
	h.removers = nil
}

// Binding is a named controller action exposed to page scripts.
type Binding struct {
	Name string
	Call func() any
}

// Bindings lists the actions the browser build exports on its
// siteHeader() object. Results are plain values js.ValueOf accepts.
func (h *Header) Bindings() []Binding {
	return []Binding{
		{Name: "toggle", Call: func() any { h.Toggle(); return h.IsOpen() }},
		{Name: "close", Call: func() any { h.Close(); return nil }},
		{Name: "isOpen", Call: func() any { return h.IsOpen() }},
		{Name: "setActivePage", Call: func() any { return h.SetActivePage() }},
		{Name: "destroy", Call: func() any { h.Destroy(); return nil }},
	}
}

func (h *Header) hasMenu() bool {
	return h.toggle != nil && h.menu != nil
}

// render keeps the toggle and menu classes in step with the open state.
func (h *Header) render(open bool) {
	for _, el := range []dom.Element{h.toggle, h.menu} {
		if open {
			el.AddClass(ActiveClass)
		} else {
			el.RemoveClass(ActiveClass)
		}
	}
}
