package merge

import (
	"log/slog"
	"reflect"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Merger merges attribute maps. The zero value uses the handler naming
// convention and stays silent about handlers it cannot chain.
type Merger struct {
	// HandlerKeys lists keys that are always treated as handlers, whatever
	// their spelling.
	HandlerKeys map[string]bool

	// DisableConvention stops "on"+Capital keys from being treated as
	// handlers; only HandlerKeys are then chained.
	DisableConvention bool

	// Strict reports handlers that could not be chained (error E010) to
	// Logger and OnError.
	Strict bool

	// Logger receives strict-mode warnings. If nil, slog.Default() is used.
	Logger *slog.Logger

	// OnError receives strict-mode diagnostics. Each matches
	// ErrHandlerNotChained under errors.Is.
	OnError func(error)
}

// ErrHandlerNotChained is matched by errors.Is for a handler pair whose
// signatures cannot be chained. The consumer's handler is kept alone.
var ErrHandlerNotChained error = errors.New("E010")

// Default is the Merger used by the package-level functions.
var Default = &Merger{}

// Attributes merges override over base using Default.
func Attributes(base, override vdom.Props) vdom.Props {
	return Default.Attributes(base, override)
}

// IsHandlerKey reports whether key follows the handler naming convention:
// "on" followed by an upper-case letter ("onClick", "onKeyDown").
func IsHandlerKey(key string) bool {
	return vdom.IsHandlerKey(key)
}

// IsHandler reports whether m treats key as a handler key.
func (m *Merger) IsHandler(key string) bool {
	if m == nil {
		return IsHandlerKey(key)
	}
	if m.HandlerKeys[key] {
		return true
	}
	return !m.DisableConvention && IsHandlerKey(key)
}

// Attributes returns a new map holding every key of base and override.
//
// Override values win, except that a nil override value leaves the base
// value in place, and a handler key holding functions on both sides gets
// a chained function (consumer first, then author). A nil func of any
// type counts as nil. Neither input is modified.
func (m *Merger) Attributes(base, override vdom.Props) vdom.Props {
	out := make(vdom.Props, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if vdom.IsNilFunc(v) {
			v = nil
		}
		prev, inBase := base[k]
		if v == nil && inBase {
			continue
		}
		if inBase && m.IsHandler(k) && vdom.IsFunc(prev) && vdom.IsFunc(v) {
			out[k] = m.chain(k, v, prev)
			continue
		}
		out[k] = v
	}
	return out
}

// chain returns a handler that calls override, then base, and returns
// override's results.
func (m *Merger) chain(key string, override, base any) any {
	// Common shapes avoid reflection
	switch o := override.(type) {
	case func():
		if b, ok := base.(func()); ok {
			return func() {
				o()
				b()
			}
		}
	case func(any):
		if b, ok := base.(func(any)); ok {
			return func(e any) {
				o(e)
				b(e)
			}
		}
	}

	ov := reflect.ValueOf(override)
	bv := reflect.ValueOf(base)
	callBase, ok := baseCaller(ov.Type(), bv)
	if !ok {
		m.report(key, ov.Type(), bv.Type())
		return override
	}

	variadic := ov.Type().IsVariadic()
	return reflect.MakeFunc(ov.Type(), func(args []reflect.Value) []reflect.Value {
		var out []reflect.Value
		if variadic {
			out = ov.CallSlice(args)
		} else {
			out = ov.Call(args)
		}
		callBase(args)
		return out
	}).Interface()
}

// baseCaller adapts the arguments of a handler of type ot to the base
// handler bv. It accepts an identical signature, a nullary base, or a
// non-variadic base whose parameters are a prefix of ot's parameters.
func baseCaller(ot reflect.Type, bv reflect.Value) (func([]reflect.Value), bool) {
	bt := bv.Type()
	switch {
	case ot == bt && ot.IsVariadic():
		return func(args []reflect.Value) { bv.CallSlice(args) }, true
	case ot == bt:
		return func(args []reflect.Value) { bv.Call(args) }, true
	case bt.NumIn() == 0 && !bt.IsVariadic():
		return func([]reflect.Value) { bv.Call(nil) }, true
	case bt.IsVariadic() || ot.IsVariadic() || bt.NumIn() > ot.NumIn():
		return nil, false
	}
	n := bt.NumIn()
	for i := 0; i < n; i++ {
		if !ot.In(i).AssignableTo(bt.In(i)) {
			return nil, false
		}
	}
	return func(args []reflect.Value) { bv.Call(args[:n]) }, true
}

// report surfaces an unchained handler in strict mode.
func (m *Merger) report(key string, ot, bt reflect.Type) {
	if m == nil || !m.Strict {
		return
	}
	err := errors.New("E010").
		WithDetailf("%s: consumer handler %s cannot drive base handler %s", key, ot, bt).
		WithSuggestion("Give the base handler no parameters or a prefix of the consumer handler's parameters")
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("handler not chained",
		"key", key,
		"override", ot.String(),
		"base", bt.String(),
	)
	if m.OnError != nil {
		m.OnError(err)
	}
}
