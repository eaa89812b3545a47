package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string            // The HTML tag name, or "#text" for a bare text node
	Attributes map[string]string // The attributes of the node
	Children   []*VNode          // The child nodes
	Content    string            // Text content, rendered before any children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]string, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode("#text", nil, nil, content)
}

// Header creates a <header> VNode.
func Header(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("header", attrs, children, "")
}

// Nav creates a <nav> VNode.
func Nav(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("nav", attrs, children, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Ul creates a <ul> VNode.
func Ul(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

// Li creates a <li> VNode.
func Li(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Anchor creates an <a> VNode pointing at href with text as its content.
func Anchor(href, text string, attrs map[string]string) *VNode {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// Span creates a <span> VNode.
func Span(attrs map[string]string) *VNode {
	return NewVNode("span", attrs, nil, "")
}
