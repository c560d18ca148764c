package render

import (
	"strings"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

func isVoidElement(tag string) bool { return vdom.IsVoidElement(tag) }

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Inline elements get no newlines in pretty output.
var inlineElements = setOf(
	"a", "abbr", "b", "br", "cite", "code", "em", "i", "kbd", "label",
	"mark", "q", "s", "small", "span", "strong", "sub", "sup", "time", "u",
)

func isInlineElement(tag string) bool { return inlineElements[tag] }

// Boolean attributes are written bare when true and omitted when false.
var booleanAttrs = setOf(
	"async", "autofocus", "checked", "defer", "disabled", "formnovalidate",
	"hidden", "inert", "multiple", "novalidate", "open", "readonly",
	"required", "selected",
)

func isBooleanAttr(name string) bool { return booleanAttrs[name] }

// Props bound by the host rather than written as attributes.
var skippedProps = setOf(vdom.PropRef, vdom.PropChildren, vdom.PropKey, "dangerouslySetInnerHTML")

// attrName maps a prop key to its HTML attribute name.
func attrName(key string) string {
	switch key {
	case vdom.PropClassName:
		return "class"
	case "htmlFor":
		return "for"
	case "tabIndex", "readOnly", "autoFocus":
		return strings.ToLower(key)
	}
	return key
}
