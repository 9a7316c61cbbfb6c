package component

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrNoOutput is returned if an instance renders nothing.
var ErrNoOutput = errors.New("component: render produced no node")

// ErrUnmounted is returned for updates of an unmounted component.
var ErrUnmounted = errors.New("component: component is not mounted")

// Instance is a materialized component.
type Instance[Props any] interface {
	// ReceiveProps notifies the instance of new properties, before it is
	// asked to render again.
	ReceiveProps(next Props) error
	// Render produces the output node for the current properties.
	Render() (*html.Node, error)
}

// Constructor materializes a component from its initial properties.
type Constructor[Props any] func(initial Props) (Instance[Props], error)

// Type is a component type.
type Type[Props any] struct {
	name      string
	construct Constructor[Props]
	pure      bool
}

// TypeOption configures a component type.
type TypeOption func(*typeOptions)

type typeOptions struct {
	pure bool
}

// Pure makes a component type skip re-rendering when updated with properties
// shallowly equal to the current ones. Instances still receive the update.
func Pure() TypeOption {
	return func(o *typeOptions) {
		o.pure = true
	}
}

// Define creates a component type.
func Define[Props any](name string, ctor Constructor[Props], opts ...TypeOption) *Type[Props] {
	if ctor == nil {
		panic("component: type needs a constructor")
	}
	var o typeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Type[Props]{name: name, construct: ctor, pure: o.pure}
}

// Name returns the display name of the type.
func (t *Type[Props]) Name() string {
	return t.name
}

// IsPure is true for types defined with option Pure.
func (t *Type[Props]) IsPure() bool {
	return t.pure
}

// New materializes an instance without mounting it.
func (t *Type[Props]) New(props Props) (Instance[Props], error) {
	inst, err := t.construct(props)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", t.name, err)
	}
	return inst, nil
}

// --- Mounting --------------------------------------------------------------

// Root is a mounted component instance.
type Root[Props any] struct {
	typ     *Type[Props]
	inst    Instance[Props]
	parent  *html.Node
	node    *html.Node
	props   Props
	renders int
	updates int
}

// Mount materializes a component of type typ and appends its output to
// parent.
func Mount[Props any](parent *html.Node, typ *Type[Props], props Props) (*Root[Props], error) {
	if parent == nil {
		return nil, fmt.Errorf("component %s: cannot mount to nil parent", typ.name)
	}
	inst, err := typ.New(props)
	if err != nil {
		return nil, err
	}
	r := &Root[Props]{typ: typ, inst: inst, parent: parent, props: props}
	if err := r.render(); err != nil {
		return nil, err
	}
	tracer().Debugf("component: mounted %s", typ.name)
	return r, nil
}

// Update notifies the instance of new properties and renders it again.
// Pure types skip rendering for shallowly equal properties.
func (r *Root[Props]) Update(props Props) error {
	if r.parent == nil {
		return ErrUnmounted
	}
	unchanged := r.typ.pure && ShallowEqual(r.props, props)
	if err := r.inst.ReceiveProps(props); err != nil {
		return fmt.Errorf("component %s: %w", r.typ.name, err)
	}
	r.props = props
	r.updates++
	if unchanged {
		tracer().Debugf("component: %s unchanged, skipping render", r.typ.name)
		return nil
	}
	return r.render()
}

func (r *Root[Props]) render() error {
	node, err := r.inst.Render()
	if err != nil {
		return fmt.Errorf("component %s: %w", r.typ.name, err)
	}
	if node == nil {
		return fmt.Errorf("component %s: %w", r.typ.name, ErrNoOutput)
	}
	if node == r.node { // instance re-used its output node
		r.renders++
		return nil
	}
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
	if r.node != nil && r.node.Parent == r.parent {
		r.parent.InsertBefore(node, r.node)
		r.parent.RemoveChild(r.node)
	} else {
		r.parent.AppendChild(node)
	}
	r.node = node
	r.renders++
	return nil
}

// Unmount detaches the output from its parent. Further updates fail.
func (r *Root[Props]) Unmount() {
	if r.node != nil && r.node.Parent == r.parent && r.parent != nil {
		r.parent.RemoveChild(r.node)
	}
	r.parent = nil
	r.node = nil
}

// Node returns the current output node.
func (r *Root[Props]) Node() *html.Node {
	return r.node
}

// Instance returns the mounted instance.
func (r *Root[Props]) Instance() Instance[Props] {
	return r.inst
}

// Props returns the current properties.
func (r *Root[Props]) Props() Props {
	return r.props
}

// Renders returns how often the instance has been rendered.
func (r *Root[Props]) Renders() int {
	return r.renders
}

// Updates returns the number of update notifications.
func (r *Root[Props]) Updates() int {
	return r.updates
}
