package slot

import (
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// BaseProps is the component author's default configuration.
type BaseProps struct {
	ClassName string
	Style     vdom.Style
	Children  any
	Attrs     vdom.Props
}

// Props is the consumer's configuration.
type Props struct {
	ClassName string
	Style     vdom.Style
	Children  any
	Ref       vdom.Ref
	Render    Render
	Attrs     vdom.Props
}

// Resolve merges base and props and renders the result. A nil base or
// props is an empty configuration.
//
// When the consumer's ref and the WithRefs targets add up to more than one
// target, each call attaches a new composite ref. Pass WithComposer with a
// Composer kept per component instance to get the same ref back for as
// long as the targets stay the same.
func Resolve(tag string, base *BaseProps, props *Props, opts ...Option) *vdom.VNode {
	o := NewOptions(opts...)
	attrs, children := attributes(o, base, props)

	var render Render
	if props != nil {
		render = props.Render
	}
	return Dispatch(tag, attrs, children, render, o)
}

// Attributes returns the resolved attributes and children without
// dispatching on the render override.
func Attributes(base *BaseProps, props *Props, opts ...Option) (vdom.Props, any) {
	return attributes(NewOptions(opts...), base, props)
}

func attributes(o *Options, base *BaseProps, props *Props) (vdom.Props, any) {
	if base == nil {
		base = &BaseProps{}
	}
	if props == nil {
		props = &Props{}
	}

	attrs := Assemble(o, base.Attrs, props.Attrs,
		merge.ClassNames(base.ClassName, props.ClassName),
		merge.Styles(base.Style, props.Style),
		props.Ref,
	)
	return attrs, Children(base.Children, props.Children)
}

// Assemble merges the attribute maps and applies the resolved className,
// style, and composed ref on top. Empty resolved values leave whatever the
// maps held at those keys.
func Assemble(o *Options, base, override vdom.Props, className string, style vdom.Style, consumerRef vdom.Ref) vdom.Props {
	attrs := o.MergeAttrs(base, override)
	delete(attrs, vdom.PropChildren)
	if className != "" {
		attrs[vdom.PropClassName] = className
	}
	if len(style) > 0 {
		attrs[vdom.PropStyle] = style
	}
	if r := o.ComposeRef(consumerRef); r != nil {
		attrs[vdom.PropRef] = r
	}
	return attrs
}

// Children picks the consumer's children when present, else the base's.
func Children(base, override any) any {
	if Present(override) {
		return override
	}
	return base
}

// Present reports whether v counts as a provided value. nil and nil nodes
// are absent.
func Present(v any) bool {
	switch c := v.(type) {
	case nil:
		return false
	case *vdom.VNode:
		return c != nil
	}
	return true
}
