package component

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// ErrUnknownElement is returned for element kinds not in the table of
// intrinsic elements.
var ErrUnknownElement = errors.New("component: unknown element kind")

// Element describes an intrinsic element kind.
type Element struct {
	name  string
	tag   atom.Atom
	void  bool     // void elements cannot have children
	attrs []string // element-specific attributes
}

// Lookup returns the element description for a kind, given as tag name
// (e.g., "button"). Kinds are case-insensitive.
func Lookup(kind string) (Element, bool) {
	el, ok := intrinsics[strings.ToLower(kind)]
	return el, ok
}

// ElementFor is like Lookup, but returns an error wrapping
// ErrUnknownElement for unknown kinds.
func ElementFor(kind string) (Element, error) {
	el, ok := Lookup(kind)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, kind)
	}
	return el, nil
}

// Name returns the tag name.
func (el Element) Name() string {
	return el.name
}

// Atom returns the atom for the tag name.
func (el Element) Atom() atom.Atom {
	return el.tag
}

// IsVoid is true for elements which cannot have content, like <img>.
func (el Element) IsVoid() bool {
	return el.void
}

// HasAttribute is true if key is a global attribute or an attribute
// specific to this element kind. Attributes with prefixes "data-" and
// "aria-" and event handler attributes ("on...") are always accepted.
func (el Element) HasAttribute(key string) bool {
	key = strings.ToLower(key)
	if strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-") || strings.HasPrefix(key, "on") {
		return true
	}
	if globalAttributes[key] {
		return true
	}
	for _, a := range el.attrs {
		if a == key {
			return true
		}
	}
	return false
}

func (el Element) String() string {
	return "<" + el.name + ">"
}

// --- Element table ---------------------------------------------------------

var globalAttributes = map[string]bool{
	"accesskey": true, "autocapitalize": true, "class": true, "contenteditable": true,
	"dir": true, "draggable": true, "hidden": true, "id": true, "inputmode": true,
	"lang": true, "role": true, "slot": true, "spellcheck": true, "style": true,
	"tabindex": true, "title": true, "translate": true,
}

var intrinsics = map[string]Element{}

func def(name string, void bool, attrs ...string) {
	intrinsics[name] = Element{
		name:  name,
		tag:   atom.Lookup([]byte(name)),
		void:  void,
		attrs: attrs,
	}
}

const void = true

var (
	formAttrs  = []string{"name", "form", "disabled", "autofocus"}
	mediaAttrs = []string{"src", "controls", "autoplay", "loop", "muted", "preload", "crossorigin"}
	cellAttrs  = []string{"colspan", "rowspan", "headers"}
	sizeAttrs  = []string{"width", "height"}
)

func with(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

func init() {
	// sectioning & text
	for _, name := range []string{
		"abbr", "address", "article", "aside", "b", "bdi", "bdo", "caption", "cite", "code",
		"dd", "dfn", "div", "dl", "dt", "em", "figcaption", "figure", "footer",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "i", "kbd", "legend", "main", "mark",
		"nav", "p", "pre", "rp", "rt", "ruby", "s", "samp", "section", "small", "span",
		"strong", "sub", "summary", "sup", "tbody", "tfoot", "thead", "tr", "u", "ul", "var",
	} {
		def(name, false)
	}
	def("a", false, "href", "target", "rel", "download", "hreflang", "type", "referrerpolicy")
	def("blockquote", false, "cite")
	def("q", false, "cite")
	def("del", false, "cite", "datetime")
	def("ins", false, "cite", "datetime")
	def("time", false, "datetime")
	def("data", false, "value")
	def("ol", false, "start", "reversed", "type")
	def("li", false, "value")
	def("details", false, "open")
	def("dialog", false, "open")
	def("table", false)
	def("colgroup", false, "span")
	def("td", false, cellAttrs...)
	def("th", false, with(cellAttrs, []string{"scope", "abbr"})...)
	def("canvas", false, sizeAttrs...)
	def("iframe", false, with(sizeAttrs, []string{"src", "srcdoc", "name", "allow", "loading", "sandbox", "referrerpolicy"})...)
	def("object", false, with(sizeAttrs, []string{"data", "type", "name", "form"})...)
	def("audio", false, mediaAttrs...)
	def("video", false, with(mediaAttrs, sizeAttrs, []string{"poster", "playsinline"})...)
	def("picture", false)
	// forms
	def("form", false, "action", "method", "enctype", "novalidate", "target", "name", "autocomplete", "accept-charset")
	def("fieldset", false, "disabled", "name", "form")
	def("label", false, "for", "form")
	def("button", false, with(formAttrs, []string{"type", "value", "formaction", "formmethod", "formtarget"})...)
	def("select", false, with(formAttrs, []string{"multiple", "required", "size", "autocomplete"})...)
	def("optgroup", false, "disabled", "label")
	def("option", false, "value", "selected", "disabled", "label")
	def("textarea", false, with(formAttrs, []string{"rows", "cols", "placeholder", "readonly", "required",
		"maxlength", "minlength", "wrap", "autocomplete"})...)
	def("output", false, "for", "name", "form")
	def("progress", false, "value", "max")
	def("meter", false, "value", "min", "max", "low", "high", "optimum")
	// void elements
	def("area", void, "alt", "coords", "shape", "href", "target", "rel", "download")
	def("br", void)
	def("col", void, "span")
	def("embed", void, with(sizeAttrs, []string{"src", "type"})...)
	def("hr", void)
	def("img", void, with(sizeAttrs, []string{"src", "alt", "srcset", "sizes", "loading", "decoding",
		"crossorigin", "usemap", "ismap", "referrerpolicy"})...)
	def("input", void, with(formAttrs, []string{"type", "value", "placeholder", "checked", "readonly",
		"required", "min", "max", "step", "pattern", "autocomplete", "multiple", "size", "maxlength",
		"minlength", "list", "accept", "alt", "src", "width", "height"})...)
	def("source", void, "src", "type", "srcset", "sizes", "media")
	def("track", void, "kind", "src", "srclang", "label", "default")
	def("wbr", void)
}
