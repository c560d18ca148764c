package merge

import "github.com/vango-dev/renderprop/pkg/vdom"

// ClassNames joins a base and an override class name with a single space.
// Empty sides are dropped, so no separator is ever doubled or dangling.
func ClassNames(base, override string) string {
	switch {
	case base == "":
		return override
	case override == "":
		return base
	}
	return base + " " + override
}

// Styles merges two styles key by key; override keys replace base keys.
// The result is a new map, or nil when both inputs are empty.
func Styles(base, override vdom.Style) vdom.Style {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(vdom.Style, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
