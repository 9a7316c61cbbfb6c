package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styled/cssx"
	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/dom/domdbg"
	"github.com/npillmayer/styled/dom/style/cssom"
	"golang.org/x/net/html"
)

func TestNewDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.dom")
	defer teardown()
	//
	doc := dom.NewDocument()
	if doc.Head() == nil || doc.Body() == nil {
		t.Fatalf("expected document to have head and body, doesn't: %s", doc)
	}
	if doc.StyleText() != "" {
		t.Errorf("expected no committed styles, have %q", doc.StyleText())
	}
}

func TestCommitToDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.dom")
	defer teardown()
	//
	doc := dom.NewDocument()
	sheet := cssx.NewSheet(cssx.WithTarget(doc))
	red, err := sheet.Compile(cssx.Style{"backgroundColor": "red"})
	if err != nil {
		t.Fatal(err)
	}
	sheet.Commit()
	blue, _ := sheet.Compile(cssx.Style{"backgroundColor": "blue"})
	sheet.Commit()
	if doc.Commits() != 2 {
		t.Errorf("expected 2 commits, have %d", doc.Commits())
	}
	styles, err := doc.QueryAll("style[data-styled]")
	if err != nil || len(styles) != 1 {
		t.Fatalf("expected exactly one style element, have %d (%v)", len(styles), err)
	}
	domdbg.Log(t, doc.Root())
	sheets := doc.StyleSheets()
	if len(sheets) != 1 {
		t.Fatalf("expected 1 embedded stylesheet, have %d", len(sheets))
	}
	for class, color := range map[string]string{red: "red", blue: "blue"} {
		v, ok := cssom.ValueForClass(class, "background-color", sheets[0])
		if !ok || v.String() != color {
			t.Errorf("expected class %s to have background-color %s, has %q", class, color, v)
		}
	}
}

func TestParseExistingStyleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(
		`<html><head><style data-styled>.a { color: red; }</style></head><body><p class="x y">hi</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	sheet := cssx.NewSheet(cssx.WithTarget(doc))
	class, _ := sheet.Compile(cssx.Style{"color": "green"})
	sheet.Commit()
	text := doc.StyleText()
	if !strings.HasPrefix(text, ".a { color: red; }") || !strings.Contains(text, "."+class) {
		t.Errorf("expected rules to be appended to existing style element, have %q", text)
	}
	p, err := doc.Query("p.x")
	if err != nil || p == nil {
		t.Fatalf("expected to find <p class='x y'>, didn't (%v)", err)
	}
	if !dom.HasClass(p, "y") || dom.HasClass(p, "z") {
		t.Errorf("unexpected class list %v", dom.ClassList(p))
	}
}

func TestInvalidSelector(t *testing.T) {
	doc := dom.NewDocument()
	if _, err := doc.QueryAll("p[["); err == nil {
		t.Error("expected error for invalid selector, have none")
	}
}

func TestSprint(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div",
		Attr: []html.Attribute{{Key: "class", Val: "c"}}}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "Hello"})
	s := domdbg.Sprint(n)
	if !strings.Contains(s, `<div class="c">`) || !strings.Contains(s, `"Hello"`) {
		t.Errorf("unexpected tree view:\n%s", s)
	}
}
