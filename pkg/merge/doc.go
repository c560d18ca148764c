// Package merge combines an author's base props with a consumer's override
// props.
//
// Three kinds of values are merged:
//
//   - class names, joined with a single space (ClassNames)
//   - inline styles, merged key by key with the override winning (Styles)
//   - attribute maps (Attributes), where the override wins except for
//     event handlers, which are chained
//
// # Handler Chaining
//
// When both sides define a function under a handler key ("on" followed by
// an upper-case letter, e.g. "onClick"), the merged value is a function of
// the consumer's type that calls the consumer's handler first, then the
// author's, and returns the consumer's results:
//
//	merged := merge.Attributes(
//	    vdom.Props{"onClick": setOpen},      // author
//	    vdom.Props{"onClick": trackClick},   // consumer
//	)
//	// merged["onClick"] runs trackClick, then setOpen.
//
// The consumer gets to act first (for example to mark an event handled)
// and the author's handler still runs, so internal state stays consistent.
//
// # State
//
// ClassName and Style are variants that are either literal values or
// functions of component state. ResolveClassName and ResolveStyle resolve
// a base/override pair against a state value.
package merge
