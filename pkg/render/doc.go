// Package render writes resolved VNode trees as HTML.
//
// It is the reference host used to look at what a resolver produced:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// Props are written the way a browser host would apply them. "className"
// becomes class, a vdom.Style becomes a sorted CSS declaration list, and
// "ref", "children", and "key" are never written. Event handlers cannot be
// serialized, so each one leaves a data-on-<event> marker instead.
//
// RenderPage wraps a tree in a complete document, and StreamingRenderer
// does the same with a flush after the head and after the body.
//
// Text and attribute values are escaped. KindRaw nodes are written as is
// and should only carry trusted content.
package render
