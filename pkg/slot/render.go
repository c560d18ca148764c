package slot

import (
	"fmt"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// RenderKind identifies the variant held by a Render.
type RenderKind uint8

const (
	// KindNone renders the default tag.
	KindNone RenderKind = iota

	// KindElement clones a consumer-supplied element.
	KindElement

	// KindFunc calls a consumer-supplied function.
	KindFunc

	// KindInvalid holds a value that is neither an element nor a render
	// function. It falls back to the default tag.
	KindInvalid
)

// String returns the variant name.
func (k RenderKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindElement:
		return "element"
	case KindFunc:
		return "func"
	default:
		return "invalid"
	}
}

// Render is the consumer's render override. The zero value means "render
// the default tag".
type Render struct {
	kind  RenderKind
	el    *vdom.VNode
	fn    func(vdom.Props) *vdom.VNode
	value any
}

// RenderElement replaces the default element with a clone of el.
func RenderElement(el *vdom.VNode) Render {
	return Render{kind: KindElement, el: el}
}

// RenderFunc replaces the default element with whatever fn returns. fn
// receives the resolved attributes plus a "children" entry.
func RenderFunc(fn func(props vdom.Props) *vdom.VNode) Render {
	return Render{kind: KindFunc, fn: fn}
}

// RenderValue classifies an untyped override, as found in decoded data.
// nil is no override; anything that is not an element or a render function
// is kept as KindInvalid.
func RenderValue(v any) Render {
	switch r := v.(type) {
	case nil:
		return Render{}
	case Render:
		return r
	case *vdom.VNode:
		return RenderElement(r)
	case func(vdom.Props) *vdom.VNode:
		return RenderFunc(r)
	}
	return Render{kind: KindInvalid, value: v}
}

// Kind returns the variant.
func (r Render) Kind() RenderKind { return r.kind }

// Element returns the element override, or nil.
func (r Render) Element() *vdom.VNode { return r.el }

// Func returns the function override, or nil.
func (r Render) Func() func(vdom.Props) *vdom.VNode { return r.fn }

// IsZero reports whether r holds no override.
func (r Render) IsZero() bool { return r.kind == KindNone }

// valid reports whether r can be dispatched as its kind says.
func (r Render) valid() bool {
	switch r.kind {
	case KindNone:
		return true
	case KindElement:
		return vdom.IsElement(r.el)
	case KindFunc:
		return r.fn != nil
	}
	return false
}

func (r Render) describe() string {
	switch r.kind {
	case KindElement:
		if r.el == nil {
			return "nil element"
		}
		return r.el.Kind.String() + " node"
	case KindFunc:
		return "nil function"
	}
	return fmt.Sprintf("%T", r.value)
}

// Dispatch renders the resolved attributes and children.
//
// An element override is cloned with attrs laid over its own attributes;
// its children are replaced only when children is non-nil. A function
// override is called with attrs plus "children" and its result returned as
// is. Otherwise, including for a malformed override, tag is instantiated.
func Dispatch(tag string, attrs vdom.Props, children any, render Render, o *Options) *vdom.VNode {
	if !render.valid() {
		o.Report(errors.New("E011").
			WithDetailf("render override for <%s> is a %s", tag, render.describe()).
			WithSuggestion("Use slot.RenderElement with an element node or slot.RenderFunc with a non-nil function"),
			"tag", tag,
			"kind", render.kind.String(),
		)
		return vdom.CreateElement(tag, attrs, childArgs(children)...)
	}

	switch render.kind {
	case KindElement:
		return vdom.CloneElement(render.el, attrs, childArgs(children)...)
	case KindFunc:
		props := attrs.Clone()
		props[vdom.PropChildren] = children
		return render.fn(props)
	}
	return vdom.CreateElement(tag, attrs, childArgs(children)...)
}

func childArgs(children any) []any {
	if !Present(children) {
		return nil
	}
	return []any{children}
}
