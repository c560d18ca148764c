package stateful

import (
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Render is the consumer's render override for a stateful component.
// The zero value renders the default tag.
type Render[S any] struct {
	kind  slot.RenderKind
	el    *vdom.VNode
	fn    func(state S, props vdom.Props) *vdom.VNode
	value any
}

// RenderElement replaces the default element with a clone of el. The
// clone does not depend on state.
func RenderElement[S any](el *vdom.VNode) Render[S] {
	return Render[S]{kind: slot.KindElement, el: el}
}

// RenderFunc replaces the default element with fn's result. fn receives
// the state first and the resolved attributes (with "children") second.
func RenderFunc[S any](fn func(state S, props vdom.Props) *vdom.VNode) Render[S] {
	return Render[S]{kind: slot.KindFunc, fn: fn}
}

// RenderValue classifies an untyped override. See slot.RenderValue.
func RenderValue[S any](v any) Render[S] {
	switch r := v.(type) {
	case Render[S]:
		return r
	case func(S, vdom.Props) *vdom.VNode:
		return RenderFunc(r)
	}
	sr := slot.RenderValue(v)
	switch sr.Kind() {
	case slot.KindNone:
		return Render[S]{}
	case slot.KindElement:
		return RenderElement[S](sr.Element())
	case slot.KindFunc:
		fn := sr.Func()
		if fn == nil {
			return Render[S]{kind: slot.KindFunc}
		}
		return RenderFunc(func(_ S, p vdom.Props) *vdom.VNode { return fn(p) })
	}
	return Render[S]{kind: slot.KindInvalid, value: v}
}

// Kind returns the variant.
func (r Render[S]) Kind() slot.RenderKind { return r.kind }

// IsZero reports whether r holds no override.
func (r Render[S]) IsZero() bool { return r.kind == slot.KindNone }

// Bind fixes the state argument, producing a stateless override for
// slot.Dispatch. Malformed overrides stay malformed.
func (r Render[S]) Bind(state S) slot.Render {
	switch r.kind {
	case slot.KindElement:
		return slot.RenderElement(r.el)
	case slot.KindFunc:
		if r.fn == nil {
			return slot.RenderFunc(nil)
		}
		fn := r.fn
		return slot.RenderFunc(func(p vdom.Props) *vdom.VNode { return fn(state, p) })
	case slot.KindInvalid:
		return slot.RenderValue(r.value)
	}
	return slot.Render{}
}
