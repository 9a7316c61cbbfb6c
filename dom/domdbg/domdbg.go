/*
Package domdbg implements helpers to debug rendered node trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Sprint returns an indented tree view of an HTML node and its children.
// Elements are printed with their attributes, text nodes are shortened.
//
//     .
//     └── <div class="css-1x3f">
//         ├── "Hello"
//         └── <span>
//
func Sprint(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	tree := tp.New()
	if n.FirstChild == nil {
		tree.AddNode(label(n))
	} else {
		children(n, tree.AddBranch(label(n)))
	}
	return tree.String()
}

// Log writes the tree view of n to the test log.
func Log(t *testing.T, n *html.Node) {
	t.Helper()
	t.Logf("node tree:\n%s", Sprint(n))
}

func children(n *html.Node, branch tp.Tree) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.FirstChild == nil {
			branch.AddNode(label(ch))
			continue
		}
		children(ch, branch.AddBranch(label(ch)))
	}
}

func label(n *html.Node) string {
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">"
	case html.TextNode:
		return fmt.Sprintf("%q", shortText(n.Data))
	case html.CommentNode:
		return "<!-- " + shortText(n.Data) + " -->"
	case html.ElementNode:
		var b strings.Builder
		b.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			if a.Val == "" {
				fmt.Fprintf(&b, " %s", a.Key)
				continue
			}
			fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
		}
		b.WriteString(">")
		return b.String()
	}
	return "?"
}

func shortText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 40 {
		return s[:37] + "..."
	}
	return s
}
