package stateful

import "github.com/vango-dev/renderprop/pkg/slot"

// Children is either a fixed children value or a function of state.
type Children[S any] struct {
	Value any
	Func  func(state S) any
}

// ChildrenOf returns fixed children.
func ChildrenOf[S any](v any) Children[S] {
	return Children[S]{Value: v}
}

// ChildrenFunc returns children computed from state.
func ChildrenFunc[S any](fn func(state S) any) Children[S] {
	return Children[S]{Func: fn}
}

// IsZero reports whether c provides no children.
func (c Children[S]) IsZero() bool {
	return c.Func == nil && !slot.Present(c.Value)
}

// Resolve returns the children for state. A function is called once.
func (c Children[S]) Resolve(state S) any {
	if c.Func != nil {
		return c.Func(state)
	}
	return c.Value
}

// ResolveChildren resolves the consumer's children when provided, else the
// base's. The two are never mixed.
func ResolveChildren[S any](state S, base, override Children[S]) any {
	if !override.IsZero() {
		return override.Resolve(state)
	}
	return base.Resolve(state)
}
