package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Well-known prop keys. Every other key is a plain attribute or, when it
// follows the handler naming convention, an event handler.
const (
	PropClassName = "className"
	PropStyle     = "style"
	PropChildren  = "children"
	PropRef       = "ref"
	PropKey       = "key"
)

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of p. A nil map clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the prop keys in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Without returns a copy of p minus the given keys.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Style is an inline style as a property map ("color" -> "red").
// Keys may be written in camelCase or kebab-case.
type Style map[string]any

// Clone returns a shallow copy of s. A nil style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// AsStyle converts a style-like prop value to a Style.
// It accepts Style and map[string]any; anything else yields nil.
func AsStyle(v any) Style {
	switch s := v.(type) {
	case Style:
		return s
	case map[string]any:
		return Style(s)
	case map[string]string:
		out := make(Style, len(s))
		for k, val := range s {
			out[k] = val
		}
		return out
	}
	return nil
}

// IsHandlerKey reports whether key names an event handler: "on" followed by
// an upper-case ASCII letter, as in "onClick" or "onKeyDown".
func IsHandlerKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z'
}

// IsFunc reports whether v is a non-nil function value.
func IsFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsNilFunc reports whether v is a function-typed nil, such as a nil
// func() stored in an interface.
func IsNilFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

// String renders the style as CSS declarations in key order, converting
// camelCase keys to kebab-case: Style{"fontSize": "12px"} → "font-size:12px;".
// Entries with nil or empty values are skipped.
func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := s[k]
		if v == nil {
			continue
		}
		val := fmt.Sprint(v)
		if val == "" {
			continue
		}
		b.WriteString(kebab(k))
		b.WriteByte(':')
		b.WriteString(val)
		b.WriteByte(';')
	}
	return b.String()
}

// kebab converts a camelCase CSS property name to kebab-case. Custom
// properties ("--x") and names that are already kebab-case pass through.
func kebab(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
