// Package htmldom is a headless dom host built on golang.org/x/net/html.
// Lookups run as XPath through htmlquery; events are dispatched
// synthetically with Click and Window.Resize.
package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/vcrobe/siteheader/dom"
	"github.com/vcrobe/siteheader/events"
)

var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Document wraps a parsed *html.Node tree.
// It is not safe for concurrent use.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string]*events.Set[dom.Event]
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string]*events.Set[dom.Event]),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the underlying document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	lit, ok := xpathLiteral(id)
	if !ok {
		return nil
	}
	n, err := htmlquery.Query(d.root, fmt.Sprintf("//*[@id=%s]", lit))
	if err != nil || n == nil {
		return nil
	}
	return d.wrap(n)
}

// ElementsByClass implements dom.Document.
func (d *Document) ElementsByClass(class string) []dom.Element {
	lit, ok := xpathLiteral(" " + class + " ")
	if !ok || strings.TrimSpace(class) == "" {
		return nil
	}
	nodes, err := htmlquery.QueryAll(d.root, fmt.Sprintf("//*[contains(concat(' ', normalize-space(@class), ' '), %s)]", lit))
	if err != nil {
		return nil
	}
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// AddEventListener implements dom.EventTarget for document-level listeners.
// They fire after every element listener on the bubbling path.
func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return d.on(d.root, eventType, fn)
}

// Click dispatches a bubbling click on el: el first, then each ancestor,
// then the document.
func (d *Document) Click(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return
	}
	ev := dom.Event{Type: "click", Target: e}
	for n := e.node; n != nil; n = n.Parent {
		if set := d.listeners[n]["click"]; set != nil {
			set.Dispatch(ev)
		}
	}
}

// ListenerCount reports how many listeners are attached to the document
// and its elements.
func (d *Document) ListenerCount() int {
	total := 0
	for _, byType := range d.listeners {
		for _, set := range byType {
			total += set.Len()
		}
	}
	return total
}

func (d *Document) on(n *html.Node, eventType string, fn dom.Listener) dom.Remove {
	byType := d.listeners[n]
	if byType == nil {
		byType = make(map[string]*events.Set[dom.Event])
		d.listeners[n] = byType
	}
	set := byType[eventType]
	if set == nil {
		set = &events.Set[dom.Event]{}
		byType[eventType] = set
	}
	return set.Add(fn)
}

// forget drops listeners on n and its descendants once they leave the tree.
func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

// xpathLiteral quotes s for an XPath expression. XPath 1.0 has no escape
// sequences, so a string holding both quote kinds cannot be expressed.
func xpathLiteral(s string) (string, bool) {
	switch {
	case !strings.Contains(s, "'"):
		return "'" + s + "'", true
	case !strings.Contains(s, `"`):
		return `"` + s + `"`, true
	default:
		return "", false
	}
}

// Element is an element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Node returns the underlying *html.Node.
func (e *Element) Node() *html.Node {
	return e.node
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes() {
		if c == class {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.setClasses(append(e.classes(), class))
}

func (e *Element) RemoveClass(class string) {
	if !e.HasClass(class) {
		return
	}
	kept := e.classes()[:0]
	for _, c := range e.classes() {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.setClasses(kept)
}

// SetInnerHTML parses markup in the element's context and replaces its
// children. Listeners on the removed subtree are dropped.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

func (e *Element) Closest(class string) dom.Element {
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		w := e.doc.wrap(n)
		if w.HasClass(class) {
			return w
		}
	}
	return nil
}

func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return e.doc.on(e.node, eventType, fn)
}

func (e *Element) classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

func (e *Element) setClasses(classes []string) {
	v := strings.Join(classes, " ")
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == "class" {
			e.node.Attr[i].Val = v
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "class", Val: v})
}
