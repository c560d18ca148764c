package ref

import (
	"sync"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Composer memoizes Compose across renders. Keep one per component
// instance; the zero value is ready to use. A Composer must not be copied
// after first use.
type Composer struct {
	mu       sync.Mutex
	targets  []vdom.Ref
	composed vdom.Ref
	comp     *composite
	used     bool
}

// Compose returns the ref produced by the previous call when refs names the
// same live targets in the same order. When the targets change, a previous
// composite ref is detached before the new one is returned.
func (m *Composer) Compose(refs ...vdom.Ref) vdom.Ref {
	targets := live(refs)

	m.mu.Lock()
	if m.used && sameTargets(m.targets, targets) {
		r := m.composed
		m.mu.Unlock()
		return r
	}
	prev := m.comp
	m.used = true
	m.targets = targets
	m.comp = nil
	switch len(targets) {
	case 0:
		m.composed = nil
	case 1:
		m.composed = targets[0]
	default:
		m.comp = newComposite(targets)
		m.composed = m.comp.ref
	}
	r := m.composed
	m.mu.Unlock()

	if prev != nil {
		prev.detach()
	}
	return r
}

// Release detaches the current composite ref, if any, and forgets the
// memoized targets. Call it when the component unmounts.
func (m *Composer) Release() {
	m.mu.Lock()
	prev := m.comp
	m.targets = nil
	m.composed = nil
	m.comp = nil
	m.used = false
	m.mu.Unlock()

	if prev != nil {
		prev.detach()
	}
}

// Attached reports whether the current composite ref holds a live
// attachment. It is false for zero or one target since those are not
// wrapped.
func (m *Composer) Attached() bool {
	m.mu.Lock()
	c := m.comp
	m.mu.Unlock()
	return c != nil && c.attached()
}

func sameTargets(a, b []vdom.Ref) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !same(a[i], b[i]) {
			return false
		}
	}
	return true
}
