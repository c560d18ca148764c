// Package ref composes ref targets.
//
// A component that forwards a consumer's ref to its root element often needs
// the instance itself as well. Compose fans one attachment out to any number
// of targets and cleans all of them up on detach:
//
//	local := vdom.NewRef(nil)
//	r := ref.Compose(props.Ref, local)
//
// Composing inside a render function creates a new ref on every call, which a
// host sees as a changed ref and answers with a detach/attach cycle. A Composer
// kept alongside the component returns the same ref while the targets stay the
// same:
//
//	type Dialog struct {
//	    refs ref.Composer
//	}
//
//	func (d *Dialog) Render(props *slot.Props) *vdom.VNode {
//	    return slot.Resolve("dialog", nil, props, slot.WithComposer(&d.refs), slot.WithRefs(d.local))
//	}
package ref
