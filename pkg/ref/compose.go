package ref

import (
	"reflect"
	"sync"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Compose returns a ref that forwards every attachment to each non-nil ref
// in refs, in order.
//
// With no live targets Compose returns nil, and with one it returns that
// target unchanged. Otherwise the result is a *vdom.CallbackRef whose cleanup
// (or an attach with nil) runs the targets' cleanups in the order they were
// recorded.
func Compose(refs ...vdom.Ref) vdom.Ref {
	targets := live(refs)
	switch len(targets) {
	case 0:
		return nil
	case 1:
		return targets[0]
	}
	return newComposite(targets).ref
}

// Assign attaches instance to target and returns the cleanup that undoes it:
// the target's own cleanup when it returned one, otherwise a function that
// attaches nil. A nil target yields a nil cleanup.
func Assign(target vdom.Ref, instance any) func() {
	if isNil(target) {
		return nil
	}
	if cleanup := target.Attach(instance); cleanup != nil {
		return cleanup
	}
	return func() { target.Attach(nil) }
}

// composite is the shared state behind a composed ref.
type composite struct {
	ref     *vdom.CallbackRef
	targets []vdom.Ref

	mu       sync.Mutex
	gen      uint64
	cleanups []func()
}

func newComposite(targets []vdom.Ref) *composite {
	c := &composite{targets: targets}
	c.ref = vdom.NewCallbackRef(c.attach)
	return c
}

func (c *composite) attach(instance any) func() {
	// One live assignment per target: drop the previous one first.
	c.detach()
	if instance == nil {
		return nil
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	cleanups := make([]func(), 0, len(c.targets))
	defer func() {
		// Recorded even when a target panics, so the ones already
		// assigned are cleared by the next detach.
		c.mu.Lock()
		if c.gen == gen {
			c.cleanups = cleanups
		}
		c.mu.Unlock()
	}()
	for _, t := range c.targets {
		cleanups = append(cleanups, Assign(t, instance))
	}

	return func() { c.detachGen(gen) }
}

func (c *composite) detach() {
	c.mu.Lock()
	cleanups := c.cleanups
	c.cleanups = nil
	c.mu.Unlock()
	run(cleanups)
}

// detachGen detaches only if no newer attachment replaced gen.
func (c *composite) detachGen(gen uint64) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	cleanups := c.cleanups
	c.cleanups = nil
	c.mu.Unlock()
	run(cleanups)
}

func (c *composite) attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cleanups) > 0
}

func run(cleanups []func()) {
	for _, fn := range cleanups {
		if fn != nil {
			fn()
		}
	}
}

// live drops nil entries, including typed nil pointers.
func live(refs []vdom.Ref) []vdom.Ref {
	out := make([]vdom.Ref, 0, len(refs))
	for _, r := range refs {
		if !isNil(r) {
			out = append(out, r)
		}
	}
	return out
}

func isNil(r vdom.Ref) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// same reports whether a and b are the same target. Values of
// non-comparable dynamic types are never the same.
func same(a, b vdom.Ref) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
