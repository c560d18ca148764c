// Package slot resolves stateless render-prop components.
//
// A component author describes the element they would render by default
// (BaseProps). A consumer may add class names, styles, attributes, a ref, or
// replace the element entirely with Render:
//
//	func Card(props *slot.Props) *vdom.VNode {
//	    return slot.Resolve("div", &slot.BaseProps{
//	        ClassName: "card",
//	        Attrs:     vdom.Props{"onClick": track},
//	    }, props)
//	}
//
//	// Rendered as <a class="card card-primary" href="/path">Link</a>
//	Card(&slot.Props{
//	    ClassName: "card-primary",
//	    Children:  "Link",
//	    Render:    slot.RenderElement(vdom.A(vdom.Href("/path"))),
//	})
//
// Resolution merges class names and styles, composes refs, chains event
// handlers (consumer first), picks children, and dispatches on Render. The
// stateful and container packages reuse the same pipeline through Options,
// Assemble, and Dispatch.
package slot
