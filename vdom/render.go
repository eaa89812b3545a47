package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML. Attributes are emitted in key order so the
// output is stable.
func Render(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTML(n *VNode) *html.Node {
	if n.Tag == "#text" {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attributes[k]})
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child != nil {
			el.AppendChild(toHTML(child))
		}
	}
	return el
}
