// Package stateful resolves render-prop components that carry state.
//
// It works like package slot, except that class names, styles, children,
// and the render function may depend on a state value S supplied by the
// component on every call:
//
//	type ToggleState struct{ Pressed bool }
//
//	func Toggle(state ToggleState, props *stateful.Props[ToggleState]) *vdom.VNode {
//	    return stateful.Resolve("button", state, &stateful.BaseProps[ToggleState]{
//	        ClassName: merge.ClassFromState(func(s ToggleState) string {
//	            if s.Pressed {
//	                return "toggle toggle-on"
//	            }
//	            return "toggle"
//	        }),
//	        StateAttributes: func(s ToggleState) vdom.Props {
//	            return vdom.Props{"aria-pressed": s.Pressed}
//	        },
//	    }, props)
//	}
//
// State is always an explicit argument. Nothing is cached between calls,
// so the same inputs resolve to the same output and a changed state is
// always seen.
package stateful
