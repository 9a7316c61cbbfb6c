package styled

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/styled/component"
	"github.com/npillmayer/styled/memo"
	"golang.org/x/net/html"
)

// Props are the properties of a styled component.
type Props[P any] struct {
	Styled    P                // parameters for the style specs; the zero value is the default
	ClassName string           // caller class, placed before the computed class
	InnerRef  *component.Ref   // receives the rendered element
	Children  []*html.Node     // content of the rendered element
	Attrs     []html.Attribute // forwarded to the rendered element
}

// reserved attribute names are consumed by styled components and never
// forwarded from Attrs.
var reserved = map[string]bool{
	"class":     true,
	"classname": true,
	"styled":    true,
	"innerref":  true,
	"children":  true,
}

// Type is a styled component type.
type Type[P any] struct {
	engine    *Engine
	element   component.Element
	specs     []Spec[P]
	resolve   *memo.Func[P, string]
	component *component.Type[Props[P]]
}

// New creates a styled component type rendering elements of kind, styled by
// specs. Unknown element kinds are rejected with an error wrapping
// component.ErrUnknownElement. Styled properties are cache keys: types
// with unexported struct fields are rejected with an error wrapping
// memo.ErrHiddenField.
//
// Each call creates a new class name cache, private to the returned type.
// Component types are meant to be created once, at package level.
func New[P any](e *Engine, kind string, specs ...Spec[P]) (*Type[P], error) {
	el, err := component.ElementFor(kind)
	if err != nil {
		return nil, fmt.Errorf("styled: %w", err)
	}
	if err := memo.CheckJSONKey(reflect.TypeOf((*P)(nil)).Elem()); err != nil {
		return nil, fmt.Errorf("styled: styled properties of %s: %w", el, err)
	}
	t := &Type[P]{
		engine:  e,
		element: el,
		specs:   append([]Spec[P](nil), specs...),
	}
	t.resolve = memo.New(
		func(p P) (string, error) {
			return resolve(e, t.specs, p)
		},
		memo.WithHighWater[P](e.highWater),
		memo.WithWarning[P](func(size int) {
			tracer().Infof("styled: class name cache of styled %s holds %d entries", el.Name(), size)
			if e.onCacheWarning != nil {
				e.onCacheWarning(el.Name(), size)
			}
		}),
	)
	t.component = component.Define("styled."+el.Name(), t.construct, component.Pure())
	return t, nil
}

// MustNew is like New, but panics if New fails.
func MustNew[P any](e *Engine, kind string, specs ...Spec[P]) *Type[P] {
	t, err := New(e, kind, specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Component returns the component type for mounting.
func (t *Type[P]) Component() *component.Type[Props[P]] {
	return t.component
}

// Element returns the element kind rendered by this type.
func (t *Type[P]) Element() component.Element {
	return t.element
}

// Kind returns the name of the element kind, e.g. "button".
func (t *Type[P]) Kind() string {
	return t.element.Name()
}

// Mount materializes a component of this type and attaches it to parent.
func (t *Type[P]) Mount(parent *html.Node, props Props[P]) (*component.Root[Props[P]], error) {
	return component.Mount(parent, t.component, props)
}

// ClassName returns the computed class name for styled properties p.
func (t *Type[P]) ClassName(p P) (string, error) {
	return t.resolve.Call(p)
}

// CacheStats returns the counters of the type's class name cache.
func (t *Type[P]) CacheStats() memo.Stats {
	return t.resolve.Stats()
}

func (t *Type[P]) construct(props Props[P]) (component.Instance[Props[P]], error) {
	inst := &instance[P]{typ: t}
	if err := inst.ReceiveProps(props); err != nil {
		return nil, err
	}
	return inst, nil
}

// --- Instances -------------------------------------------------------------

// instance is a materialized styled component. It recomputes its class name
// whenever it receives properties.
type instance[P any] struct {
	typ       *Type[P]
	props     Props[P]
	className string
}

func (inst *instance[P]) ReceiveProps(props Props[P]) error {
	class, err := inst.typ.resolve.Call(props.Styled)
	if err != nil {
		return err
	}
	inst.className = class
	inst.props = props
	return nil
}

func (inst *instance[P]) Render() (*html.Node, error) {
	el := inst.typ.element
	callerClass := inst.props.ClassName
	attrs := make([]html.Attribute, 1, len(inst.props.Attrs)+1)
	for _, a := range inst.props.Attrs {
		key := strings.ToLower(a.Key)
		if reserved[key] {
			if key == "class" && callerClass == "" {
				callerClass = a.Val
			}
			continue
		}
		if !el.HasAttribute(key) {
			tracer().Debugf("styled: attribute %q is not known for %s", a.Key, el)
		}
		attrs = append(attrs, a)
	}
	attrs[0] = html.Attribute{Key: "class", Val: mergeClass(callerClass, inst.className)}
	n, err := component.NewElement(el, attrs, inst.props.Children)
	if err != nil {
		return nil, err
	}
	inst.props.InnerRef.Set(n)
	return n, nil
}

func mergeClass(caller, computed string) string {
	if caller == "" {
		return computed
	}
	return caller + " " + computed
}
