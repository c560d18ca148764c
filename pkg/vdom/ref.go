package vdom

// Ref is a write target for the host instance backing an element.
//
// Attach is called with the instance once it exists and with nil when it
// goes away. The returned cleanup, when non-nil, replaces the nil call: a
// host that receives a cleanup on attach runs it on detach instead of
// calling Attach(nil).
type Ref interface {
	Attach(instance any) (cleanup func())
}

// RefObject is a container-style ref with a mutable current slot.
type RefObject struct {
	Current any
}

// NewRef creates a RefObject holding initial.
func NewRef(initial any) *RefObject {
	return &RefObject{Current: initial}
}

// Attach implements Ref.
func (r *RefObject) Attach(instance any) func() {
	if r == nil {
		return nil
	}
	r.Current = instance
	return nil
}

// CallbackRef is a callback-style ref. Its function receives the instance
// (nil on detach) and may return a cleanup.
type CallbackRef struct {
	fn func(instance any) func()
}

// NewCallbackRef wraps fn as a Ref. The pointer identity of the result is
// what hosts and composers compare, so create it once per component.
func NewCallbackRef(fn func(instance any) func()) *CallbackRef {
	return &CallbackRef{fn: fn}
}

// RefFunc wraps a callback that never returns a cleanup.
func RefFunc(fn func(instance any)) *CallbackRef {
	if fn == nil {
		return &CallbackRef{}
	}
	return &CallbackRef{fn: func(instance any) func() {
		fn(instance)
		return nil
	}}
}

// Attach implements Ref.
func (r *CallbackRef) Attach(instance any) func() {
	if r == nil || r.fn == nil {
		return nil
	}
	return r.fn(instance)
}
