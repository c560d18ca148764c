package vdom

import (
	"sort"
	"strings"
)

// ID sets the id attribute.
func ID(id string) Attr { return Attr{Key: "id", Value: id} }

// ClassName sets the className prop. Repeated ClassName attributes on one
// element accumulate.
func ClassName(classes ...string) Attr {
	parts := make([]any, len(classes))
	for i, c := range classes {
		parts[i] = c
	}
	return Attr{Key: PropClassName, Value: Classes(parts...)}
}

// ClassIf adds class only when condition holds.
func ClassIf(condition bool, class string) Attr {
	if !condition {
		return Attr{}
	}
	return ClassName(class)
}

// StyleProp sets the style prop.
func StyleProp(style Style) Attr { return Attr{Key: PropStyle, Value: style} }

// RefProp attaches a ref.
func RefProp(r Ref) Attr { return Attr{Key: PropRef, Value: r} }

// Key sets the reconciliation key.
func Key(key string) Attr { return Attr{Key: PropKey, Value: key} }

// Data sets a data-* attribute: Data("state", "open") is data-state="open".
func Data(key string, value any) Attr { return Attr{Key: "data-" + key, Value: value} }

func Role(role string) Attr { return Attr{Key: "role", Value: role} }
func Href(url string) Attr  { return Attr{Key: "href", Value: url} }
func Type(t string) Attr    { return Attr{Key: "type", Value: t} }
func Name(name string) Attr { return Attr{Key: "name", Value: name} }

// AttrIf returns a when condition holds and an empty Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

// Classes joins class values with single spaces, skipping empty ones.
// It accepts strings, string slices, and map[string]bool; map entries are
// added in sorted order so the result is stable.
func Classes(classes ...any) string {
	var out []string
	add := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			add(v)
		case []string:
			for _, s := range v {
				add(s)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			for _, k := range keys {
				add(k)
			}
		}
	}
	return strings.Join(out, " ")
}
