package container

import (
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/stateful"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// BaseProps is the component author's default configuration. C is the
// container state, I the item state.
type BaseProps[C, I any] struct {
	ClassName merge.ClassName[C]
	Style     merge.Style[C]
	Children  stateful.Children[I]
	Attrs     vdom.Props

	// StateAttributes maps container state to extra container attributes.
	StateAttributes func(state C) vdom.Props
}

// Props is the consumer's configuration.
type Props[C, I any] struct {
	ClassName merge.ClassName[C]
	Style     merge.Style[C]
	Children  stateful.Children[I]
	Ref       vdom.Ref
	Render    stateful.Render[C]
	Attrs     vdom.Props
}

// Resolver holds one resolution of a container. Container attributes are
// computed once by New; items are resolved on demand.
type Resolver[C, I any] struct {
	tag      string
	state    C
	attrs    vdom.Props
	render   slot.Render
	children stateful.Children[I]
	opts     *slot.Options
}

// New resolves the container-level configuration against state.
func New[C, I any](tag string, state C, base *BaseProps[C, I], props *Props[C, I], opts ...slot.Option) *Resolver[C, I] {
	if base == nil {
		base = &BaseProps[C, I]{}
	}
	if props == nil {
		props = &Props[C, I]{}
	}
	o := slot.NewOptions(opts...)

	baseAttrs := base.Attrs
	if base.StateAttributes != nil {
		baseAttrs = o.MergeAttrs(base.Attrs, base.StateAttributes(state))
	}

	children := base.Children
	if !props.Children.IsZero() {
		children = props.Children
	}

	return &Resolver[C, I]{
		tag:   tag,
		state: state,
		attrs: slot.Assemble(o, baseAttrs, props.Attrs,
			merge.ResolveClassName(state, base.ClassName, props.ClassName),
			merge.ResolveStyle(state, base.Style, props.Style),
			props.Ref,
		),
		render:   props.Render.Bind(state),
		children: children,
		opts:     o,
	}
}

// State returns the container state the resolver was built with.
func (r *Resolver[C, I]) State() C {
	return r.state
}

// Attributes returns a copy of the resolved container attributes.
func (r *Resolver[C, I]) Attributes() vdom.Props {
	return r.attrs.Clone()
}

// RenderContainer renders the container with children inside it, through
// the consumer's render override when there is one.
func (r *Resolver[C, I]) RenderContainer(children any) *vdom.VNode {
	return slot.Dispatch(r.tag, r.attrs.Clone(), children, r.render, r.opts)
}

// RenderItem resolves the item children for item: the consumer's when
// given, otherwise the author's.
func (r *Resolver[C, I]) RenderItem(item I) any {
	return r.children.Resolve(item)
}

// Map renders one item per element of items. toState builds each item's
// state from the element and its index.
func Map[C, I, T any](r *Resolver[C, I], items []T, toState func(item T, index int) I) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, r.RenderItem(toState(item, i)))
	}
	return out
}
