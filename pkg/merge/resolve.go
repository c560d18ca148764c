package merge

import "github.com/vango-dev/renderprop/pkg/vdom"

// ClassName is a class name that is either a literal or a function of
// state. The zero value is absent.
type ClassName[S any] struct {
	// Value is the literal class name.
	Value string

	// Func, when set, computes the class name from state and the resolved
	// base class name. It takes precedence over Value.
	Func func(state S, base string) string
}

// Class returns a literal class name.
func Class[S any](value string) ClassName[S] {
	return ClassName[S]{Value: value}
}

// ClassFunc returns a class name computed from state and the base class.
func ClassFunc[S any](fn func(state S, base string) string) ClassName[S] {
	return ClassName[S]{Func: fn}
}

// ClassFromState returns a class name computed from state alone. As an
// override it replaces the base class name rather than extending it.
func ClassFromState[S any](fn func(state S) string) ClassName[S] {
	if fn == nil {
		return ClassName[S]{}
	}
	return ClassName[S]{Func: func(state S, _ string) string { return fn(state) }}
}

// IsZero reports whether the class name is absent.
func (c ClassName[S]) IsZero() bool {
	return c.Func == nil && c.Value == ""
}

// Resolve evaluates the class name against state with no base class.
func (c ClassName[S]) Resolve(state S) string {
	if c.Func != nil {
		return c.Func(state, "")
	}
	return c.Value
}

// ResolveClassName resolves base and override against state.
//
// A function override receives the resolved base and its result is used
// as-is: it decides whether to keep the base classes. A literal override
// is appended to the resolved base. An absent override yields the
// resolved base.
func ResolveClassName[S any](state S, base, override ClassName[S]) string {
	resolved := base.Resolve(state)
	if override.Func != nil {
		return override.Func(state, resolved)
	}
	return ClassNames(resolved, override.Value)
}

// Style is an inline style that is either a literal map or a function of
// state. The zero value is absent.
type Style[S any] struct {
	// Value is the literal style.
	Value vdom.Style

	// Func, when set, computes the style from state and the resolved base
	// style. It takes precedence over Value.
	Func func(state S, base vdom.Style) vdom.Style
}

// StyleOf returns a literal style.
func StyleOf[S any](value vdom.Style) Style[S] {
	return Style[S]{Value: value}
}

// StyleFunc returns a style computed from state and the base style.
func StyleFunc[S any](fn func(state S, base vdom.Style) vdom.Style) Style[S] {
	return Style[S]{Func: fn}
}

// StyleFromState returns a style computed from state alone. As an
// override it replaces the base style rather than extending it.
func StyleFromState[S any](fn func(state S) vdom.Style) Style[S] {
	if fn == nil {
		return Style[S]{}
	}
	return Style[S]{Func: func(state S, _ vdom.Style) vdom.Style { return fn(state) }}
}

// IsZero reports whether the style is absent.
func (s Style[S]) IsZero() bool {
	return s.Func == nil && len(s.Value) == 0
}

// Resolve evaluates the style against state with no base style.
func (s Style[S]) Resolve(state S) vdom.Style {
	if s.Func != nil {
		return s.Func(state, nil)
	}
	return s.Value
}

// ResolveStyle resolves base and override against state, the way
// ResolveClassName does, merging literal overrides key by key.
//
// The base handed to a function override is a copy, so the function may
// modify it freely.
func ResolveStyle[S any](state S, base, override Style[S]) vdom.Style {
	resolved := base.Resolve(state)
	if override.Func != nil {
		return override.Func(state, resolved.Clone())
	}
	return Styles(resolved, override.Value)
}
