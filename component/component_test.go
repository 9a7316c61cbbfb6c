package component

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestLookup(t *testing.T) {
	el, ok := Lookup("Button")
	require.True(t, ok)
	assert.Equal(t, "button", el.Name())
	assert.Equal(t, atom.Button, el.Atom())
	assert.False(t, el.IsVoid())
	assert.True(t, el.HasAttribute("type"))
	assert.True(t, el.HasAttribute("id"))
	assert.True(t, el.HasAttribute("data-test"))
	assert.False(t, el.HasAttribute("href"))
	img, _ := Lookup("img")
	assert.True(t, img.IsVoid())
	_, ok = Lookup("blink")
	assert.False(t, ok)
	_, err := ElementFor("blink")
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

func TestNewElement(t *testing.T) {
	span, _ := Lookup("span")
	child := Text("hello")
	attrs := []html.Attribute{{Key: "id", Val: "x"}}
	n, err := NewElement(span, attrs, []*html.Node{child, nil})
	require.NoError(t, err)
	assert.Equal(t, "span", n.Data)
	assert.Equal(t, attrs, n.Attr)
	require.NotNil(t, n.FirstChild)
	assert.Equal(t, "hello", n.FirstChild.Data)
	assert.Nil(t, child.Parent, "children must be copied, not moved")
	n.Attr[0].Val = "y"
	assert.Equal(t, "x", attrs[0].Val, "attributes must be copied")
	//
	img, _ := Lookup("img")
	_, err = NewElement(img, nil, []*html.Node{Text("no")})
	assert.True(t, errors.Is(err, ErrVoidChildren))
	_, err = NewElement(Element{}, nil, nil)
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

// counter is a test component rendering <p>{n}</p>.
type counter struct {
	n        int
	received int
}

func (c *counter) ReceiveProps(n int) error {
	c.received++
	if n < 0 {
		return errors.New("negative")
	}
	c.n = n
	return nil
}

func (c *counter) Render() (*html.Node, error) {
	p, _ := Lookup("p")
	return NewElement(p, nil, []*html.Node{Text(strconv.Itoa(c.n))})
}

func counterType(opts ...TypeOption) *Type[int] {
	return Define("Counter", func(n int) (Instance[int], error) {
		return &counter{n: n}, nil
	}, opts...)
}

func TestMountAndUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.component")
	defer teardown()
	//
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	root, err := Mount(body, counterType(), 1)
	require.NoError(t, err)
	assert.Equal(t, root.Node(), body.FirstChild)
	assert.Equal(t, "1", body.FirstChild.FirstChild.Data)
	require.NoError(t, root.Update(2))
	assert.Equal(t, "2", body.FirstChild.FirstChild.Data)
	assert.Equal(t, body.FirstChild, body.LastChild, "old output must be replaced")
	require.NoError(t, root.Update(2))
	assert.Equal(t, 3, root.Renders(), "impure types render on every update")
	assert.Error(t, root.Update(-1))
	root.Unmount()
	assert.Nil(t, body.FirstChild)
	assert.True(t, errors.Is(root.Update(3), ErrUnmounted))
}

func TestPureSkipsRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.component")
	defer teardown()
	//
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	root, err := Mount(body, counterType(Pure()), 1)
	require.NoError(t, err)
	require.NoError(t, root.Update(1))
	require.NoError(t, root.Update(1))
	assert.Equal(t, 1, root.Renders())
	assert.Equal(t, 2, root.Updates())
	inst := root.Instance().(*counter)
	assert.Equal(t, 2, inst.received, "pure types are still notified")
	require.NoError(t, root.Update(5))
	assert.Equal(t, 2, root.Renders())
}

func TestShallowEqual(t *testing.T) {
	type inner struct{ A, b int }
	type props struct {
		S     string
		I     inner
		Ref   *Ref
		Kids  []*html.Node
		M     map[string]any
		F     func()
		Any   any
		Arr   [2]int
		local bool
	}
	ref := &Ref{}
	kids := []*html.Node{Text("x")}
	m := map[string]any{"a": 1}
	a := props{S: "s", I: inner{1, 2}, Ref: ref, Kids: kids, M: m, Any: 3, Arr: [2]int{1, 2}}
	b := a
	assert.True(t, ShallowEqual(a, b))
	b.Kids = []*html.Node{kids[0]} // equal content, different slice
	assert.False(t, ShallowEqual(a, b))
	b = a
	b.M = map[string]any{"a": 1}
	assert.False(t, ShallowEqual(a, b))
	b = a
	b.I.b = 3
	assert.False(t, ShallowEqual(a, b))
	b = a
	b.local = true
	assert.False(t, ShallowEqual(a, b))
	b = a
	b.F = func() {}
	assert.False(t, ShallowEqual(a, b))
	assert.True(t, ShallowEqual(m, map[string]any{"a": 1}), "maps compare entries at top level")
	assert.True(t, ShallowEqual(nil, nil))
	assert.False(t, ShallowEqual(1, "1"))
	assert.True(t, ShallowEqual(&a, &a))
}
