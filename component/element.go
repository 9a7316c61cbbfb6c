package component

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrVoidChildren is returned when content is given for a void element.
var ErrVoidChildren = errors.New("component: void element cannot have children")

// Ref captures the node a component rendered. After every render of the
// component the ref points to the current output node.
type Ref struct {
	Current *html.Node
}

// Set is called by components after rendering. A nil ref ignores the call.
func (r *Ref) Set(n *html.Node) {
	if r != nil {
		r.Current = n
	}
}

// NewElement creates an instance of an intrinsic element kind with the given
// attributes and content. Attributes are copied in order. Children are
// copied deeply, leaving the arguments untouched, which lets a component
// render the same children any number of times.
func NewElement(el Element, attrs []html.Attribute, children []*html.Node) (*html.Node, error) {
	if el.name == "" {
		return nil, fmt.Errorf("%w: zero element", ErrUnknownElement)
	}
	if el.void && len(children) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrVoidChildren, el)
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.name,
		DataAtom: el.tag,
	}
	if len(attrs) > 0 {
		n.Attr = append(make([]html.Attribute, 0, len(attrs)), attrs...)
	}
	for _, ch := range children {
		if ch == nil {
			continue
		}
		n.AppendChild(Clone(ch))
	}
	return n, nil
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Clone returns a deep copy of n, detached from any parent.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(Clone(ch))
	}
	return c
}
