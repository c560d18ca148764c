package stateful

import (
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// BaseProps is the component author's default configuration.
type BaseProps[S any] struct {
	ClassName merge.ClassName[S]
	Style     merge.Style[S]
	Children  Children[S]
	Attrs     vdom.Props

	// StateAttributes maps state to extra attributes, typically data-* or
	// aria-* markers. They sit above Attrs and below the consumer's
	// attributes.
	StateAttributes func(state S) vdom.Props
}

// Props is the consumer's configuration.
type Props[S any] struct {
	ClassName merge.ClassName[S]
	Style     merge.Style[S]
	Children  Children[S]
	Ref       vdom.Ref
	Render    Render[S]
	Attrs     vdom.Props
}

// Resolve merges base and props against state and renders the result.
func Resolve[S any](tag string, state S, base *BaseProps[S], props *Props[S], opts ...slot.Option) *vdom.VNode {
	o := slot.NewOptions(opts...)
	attrs, children := attributes(o, state, base, props)

	var render slot.Render
	if props != nil {
		render = props.Render.Bind(state)
	}
	return slot.Dispatch(tag, attrs, children, render, o)
}

// Attributes returns the resolved attributes and children for state
// without dispatching on the render override.
func Attributes[S any](state S, base *BaseProps[S], props *Props[S], opts ...slot.Option) (vdom.Props, any) {
	return attributes(slot.NewOptions(opts...), state, base, props)
}

func attributes[S any](o *slot.Options, state S, base *BaseProps[S], props *Props[S]) (vdom.Props, any) {
	if base == nil {
		base = &BaseProps[S]{}
	}
	if props == nil {
		props = &Props[S]{}
	}

	baseAttrs := base.Attrs
	if base.StateAttributes != nil {
		baseAttrs = o.MergeAttrs(base.Attrs, base.StateAttributes(state))
	}

	attrs := slot.Assemble(o, baseAttrs, props.Attrs,
		merge.ResolveClassName(state, base.ClassName, props.ClassName),
		merge.ResolveStyle(state, base.Style, props.Style),
		props.Ref,
	)
	return attrs, ResolveChildren(state, base.Children, props.Children)
}
