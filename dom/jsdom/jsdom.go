//go:build js && wasm

// Package jsdom implements the dom interfaces over the browser DOM.
package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/siteheader/dom"
)

var (
	_ dom.Window   = (*Window)(nil)
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Window wraps the global window object.
type Window struct {
	v js.Value
}

// NewWindow returns the page's window.
func NewWindow() *Window {
	return &Window{v: js.Global()}
}

func (w *Window) Document() dom.Document {
	return &Document{v: w.v.Get("document")}
}

func (w *Window) Pathname() string {
	return w.v.Get("location").Get("pathname").String()
}

// Href is the full URL of the current page.
func (w *Window) Href() string {
	return w.v.Get("location").Get("href").String()
}

func (w *Window) InnerWidth() int {
	return w.v.Get("innerWidth").Int()
}

func (w *Window) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return addListener(w.v, eventType, fn)
}

// OnReady calls fn once the document has been parsed: immediately if that
// already happened, otherwise on DOMContentLoaded.
func (w *Window) OnReady(fn func()) {
	doc := w.v.Get("document")
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var remove dom.Remove
	remove = addListener(doc, "DOMContentLoaded", func(dom.Event) {
		remove()
		fn()
	})
}

// Document wraps a document object.
type Document struct {
	v js.Value
}

func (d *Document) GetElementByID(id string) dom.Element {
	el := d.v.Call("getElementById", id)
	if !el.Truthy() {
		return nil
	}
	return &Element{v: el}
}

func (d *Document) ElementsByClass(class string) []dom.Element {
	list := d.v.Call("getElementsByClassName", class)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return addListener(d.v, eventType, fn)
}

// Element wraps an element object.
type Element struct {
	v js.Value
}

func (e *Element) ID() string {
	return e.v.Get("id").String()
}

func (e *Element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *Element) HasClass(class string) bool {
	return e.v.Get("classList").Call("contains", class).Bool()
}

func (e *Element) AddClass(class string) {
	e.v.Get("classList").Call("add", class)
}

func (e *Element) RemoveClass(class string) {
	e.v.Get("classList").Call("remove", class)
}

func (e *Element) SetInnerHTML(markup string) error {
	e.v.Set("innerHTML", markup)
	return nil
}

func (e *Element) Closest(class string) dom.Element {
	el := e.v.Call("closest", "."+class)
	if !el.Truthy() {
		return nil
	}
	return &Element{v: el}
}

func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return addListener(e.v, eventType, fn)
}

// addListener wraps fn in a js.Func. The returned Remove detaches it and
// releases the js.Func.
func addListener(target js.Value, eventType string, fn dom.Listener) dom.Remove {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := dom.Event{Type: eventType}
		if len(args) > 0 {
			if t := args[0].Get("target"); t.Truthy() && t.Get("nodeType").Int() == 1 {
				ev.Target = &Element{v: t}
			}
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", eventType, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", eventType, cb)
		cb.Release()
	}
}
