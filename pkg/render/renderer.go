package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents block elements one level per depth. Inline elements
	// and text-only elements stay on one line.
	Pretty bool

	// Indent is one indentation level. Defaults to two spaces.
	Indent string

	// IsHandler picks the function props that get a data-on-* marker.
	// Defaults to vdom.IsHandlerKey.
	IsHandler func(key string) bool
}

// Renderer turns VNode trees into HTML. It is stateless and safe for
// concurrent use.
type Renderer struct {
	config RendererConfig
}

func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.IsHandler == nil {
		config.IsHandler = vdom.IsHandlerKey
	}
	return &Renderer{config: config}
}

func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter writes node to w and returns the first write or
// structural error.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w, cfg: &r.config}
	hw.node(node, 0)
	return hw.err
}

// String renders node compactly, returning "" if it cannot be rendered.
func String(node *vdom.VNode) string {
	s, _ := NewRenderer(RendererConfig{}).RenderToString(node)
	return s
}

// htmlWriter holds the first error; every write after it is a no-op.
type htmlWriter struct {
	w   io.Writer
	cfg *RendererConfig
	err error
}

func (h *htmlWriter) str(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) fail(format string, args ...any) {
	if h.err == nil {
		h.err = fmt.Errorf(format, args...)
	}
}

func (h *htmlWriter) newline() {
	if h.cfg.Pretty {
		h.str("\n")
	}
}

func (h *htmlWriter) indent(depth int) {
	h.str(strings.Repeat(h.cfg.Indent, depth))
}

func (h *htmlWriter) node(n *vdom.VNode, depth int) {
	if n == nil || h.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		h.element(n, depth)
	case vdom.KindText:
		h.str(escapeHTML(n.Text))
	case vdom.KindRaw:
		h.str(n.Text)
	case vdom.KindFragment:
		for _, c := range n.Children {
			h.node(c, depth)
		}
	case vdom.KindComponent:
		if n.Comp != nil {
			h.node(n.Comp.Render(), depth)
		}
	default:
		h.fail("unknown node kind: %d", n.Kind)
	}
}

func (h *htmlWriter) element(n *vdom.VNode, depth int) {
	if n.Tag == "" {
		h.fail("element without tag at depth %d", depth)
		return
	}
	if h.cfg.Pretty && depth > 0 {
		h.indent(depth)
	}
	h.str("<" + n.Tag)
	h.attributes(n.Props)
	h.str(">")
	if isVoidElement(n.Tag) {
		h.newline()
		return
	}

	if inner, ok := n.Props["dangerouslySetInnerHTML"].(string); ok {
		h.str(inner)
	} else {
		block := h.cfg.Pretty && len(n.Children) > 0 && !isInlineElement(n.Tag) && !textOnly(n)
		childDepth := 0
		if block {
			childDepth = depth + 1
			h.str("\n")
		}
		for _, c := range n.Children {
			h.node(c, childDepth)
		}
		if block {
			h.indent(depth)
		}
	}
	h.str("</" + n.Tag + ">")
	h.newline()
}

// attributes writes props in key order followed by one data-on-* marker
// per handler.
func (h *htmlWriter) attributes(props vdom.Props) {
	var events []string
	for _, key := range props.Keys() {
		value := props[key]
		if value == nil || vdom.IsNilFunc(value) || skippedProps[key] || strings.HasPrefix(key, "_") {
			continue
		}
		if vdom.IsFunc(value) {
			if h.cfg.IsHandler(key) {
				events = append(events, eventName(key))
			}
			continue
		}

		name := attrName(key)
		if b, ok := value.(bool); ok && isBooleanAttr(name) {
			if b {
				h.str(" " + name)
			}
			continue
		}
		s := attrValue(key, value)
		if s == "" && key != "value" && key != "alt" {
			continue
		}
		h.str(" " + name + `="` + escapeAttr(s) + `"`)
	}
	for _, ev := range events {
		h.str(" data-on-" + ev + `="true"`)
	}
}

// eventName turns a handler key into a DOM event name: "onKeyDown" -> "keydown".
func eventName(key string) string {
	if vdom.IsHandlerKey(key) {
		key = key[2:]
	}
	return strings.ToLower(key)
}

func attrValue(key string, value any) string {
	if key == vdom.PropStyle {
		if s := vdom.AsStyle(value); s != nil {
			return s.String()
		}
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return strings.Join(v, " ")
	}
	return fmt.Sprint(value)
}

func textOnly(n *vdom.VNode) bool {
	for _, c := range n.Children {
		if c != nil && c.Kind != vdom.KindText {
			return false
		}
	}
	return true
}
