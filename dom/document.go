package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/styled/cssx"
	"github.com/npillmayer/styled/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleMarker is the attribute which marks the style element receiving
// committed rules.
const StyleMarker = "data-styled"

// ErrNoHead is returned if a document lacks a <head> element.
var ErrNoHead = errors.New("dom: document has no head element")

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

var (
	headSelector  = cascadia.MustCompile("head")
	bodySelector  = cascadia.MustCompile("body")
	styleSelector = cascadia.MustCompile("style[" + StyleMarker + "]")
)

// Document is a live HTML document.
type Document struct {
	root    *html.Node
	head    *html.Node
	body    *html.Node
	style   *html.Node // created on first commit
	commits int
}

var _ cssx.Target = (*Document)(nil)

// NewDocument creates an empty HTML document.
func NewDocument() *Document {
	doc, err := Parse(strings.NewReader(skeleton))
	if err != nil {
		panic(err) // cannot happen for the skeleton
	}
	return doc
}

// Parse reads an HTML document. The HTML parser synthesizes <html>, <head>
// and <body> if they are missing. An existing <style data-styled> element
// in the input will receive committed rules.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	doc := &Document{
		root:  root,
		head:  headSelector.MatchFirst(root),
		body:  bodySelector.MatchFirst(root),
		style: styleSelector.MatchFirst(root),
	}
	return doc, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Head returns the <head> element.
func (d *Document) Head() *html.Node {
	return d.head
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return d.body
}

// InsertRules appends rules to the document's style element, creating the
// element if necessary.
//
// Interface cssx.Target
func (d *Document) InsertRules(rules []*css.Rule) error {
	if d.style == nil {
		if d.head == nil {
			return ErrNoHead
		}
		d.style = &html.Node{
			Type:     html.ElementNode,
			Data:     "style",
			DataAtom: atom.Style,
			Attr:     []html.Attribute{{Key: StyleMarker}},
		}
		d.head.AppendChild(d.style)
	}
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	if text := d.style.LastChild; text != nil && text.Type == html.TextNode {
		text.Data += b.String()
	} else {
		d.style.AppendChild(&html.Node{Type: html.TextNode, Data: b.String()})
	}
	d.commits++
	tracer().Debugf("dom: inserted %d rule(s) into document", len(rules))
	return nil
}

// Commits returns the number of successful calls to InsertRules.
func (d *Document) Commits() int {
	return d.commits
}

// StyleText returns the CSS text committed so far.
func (d *Document) StyleText() string {
	if d.style == nil || d.style.FirstChild == nil {
		return ""
	}
	return d.style.FirstChild.Data
}

// StyleSheets returns all stylesheets embedded in the document, parsed.
func (d *Document) StyleSheets() []*douceuradapter.CSSStyles {
	return douceuradapter.ExtractStyleElements(d.root)
}

// QueryAll returns all nodes matching a CSS selector, in document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	return sel.MatchAll(d.root), nil
}

// Query returns the first node matching a CSS selector, or nil.
func (d *Document) Query(selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	return sel.MatchFirst(d.root), nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the document as HTML; used for debugging.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return b.String()
}

// --- Node helpers ----------------------------------------------------------

// AttrValue returns the value of an attribute of n.
func AttrValue(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ClassList returns the classes of an element.
func ClassList(n *html.Node) []string {
	v, _ := AttrValue(n, "class")
	return strings.Fields(v)
}

// HasClass is true if n carries class c.
func HasClass(n *html.Node, c string) bool {
	for _, cl := range ClassList(n) {
		if cl == c {
			return true
		}
	}
	return false
}
