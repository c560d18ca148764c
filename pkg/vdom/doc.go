// Package vdom provides the virtual DOM that resolved components render into.
//
// The tree is retained in memory and rendered (to HTML, or to patches) by a
// host. Component helpers in this module never talk to a browser: they build
// VNode values through the three host operations below and leave commit and
// reconciliation to whoever owns the tree.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers, keyed the way component authors write them ("className",
// "style", "onClick"). Style is the map form of an inline style.
//
// # Host Operations
//
//	CreateElement(tag, props, children...)  // new element node
//	CloneElement(el, props, children...)    // copy of el with overrides
//	IsElement(v)                            // element-or-not predicate
//
// # Refs
//
// A Ref receives the host instance on attach and nil on detach. RefObject
// stores it in a Current slot; CallbackRef calls a function that may return
// its own cleanup.
//
// # Element API
//
// Elements can also be created with variadic factory functions:
//
//	Div(ClassName("card"), ID("main"),
//	    H1(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Diffing
//
// Diff compares two trees and returns the Patch operations a host would
// apply. Equal reports whether two trees are attribute-equal.
package vdom
