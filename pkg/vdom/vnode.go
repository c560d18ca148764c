package vdom

import "strings"

// VKind says what a VNode holds.
type VKind uint8

const (
	KindElement VKind = iota
	KindText
	KindFragment
	KindComponent
	KindRaw // markup written verbatim
)

var kindNames = [...]string{"Element", "Text", "Fragment", "Component", "Raw"}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode is one node of a rendered tree. Which fields matter depends on
// Kind: Tag, Props and Children for elements, Children for fragments, Text
// for text and raw nodes, Comp for components.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string
	Comp     Component
}

// IsInteractive reports whether the element binds at least one handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for k, val := range v.Props {
		if IsHandlerKey(k) && IsFunc(val) {
			return true
		}
	}
	return false
}

func (v *VNode) ClassName() string {
	if v == nil {
		return ""
	}
	s, _ := v.Props[PropClassName].(string)
	return s
}

func (v *VNode) Style() Style {
	if v == nil {
		return nil
	}
	return AsStyle(v.Props[PropStyle])
}

func (v *VNode) Ref() Ref {
	if v == nil {
		return nil
	}
	r, _ := v.Props[PropRef].(Ref)
	return r
}

// TextContent returns the text of v and its descendants, rendering
// components on the way.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.writeText(&b)
	return b.String()
}

func (v *VNode) writeText(b *strings.Builder) {
	if v == nil {
		return
	}
	switch v.Kind {
	case KindText, KindRaw:
		b.WriteString(v.Text)
	case KindComponent:
		if v.Comp != nil {
			v.Comp.Render().writeText(b)
		}
	default:
		for _, c := range v.Children {
			c.writeText(b)
		}
	}
}

// Attr is a single key/value prop passed to an element constructor. The
// zero Attr is ignored.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds Handler under the prop key Event ("onClick").
type EventHandler struct {
	Event   string
	Handler any
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// ComponentFunc adapts a plain render function to Component.
type ComponentFunc func() *VNode

func (f ComponentFunc) Render() *VNode { return f() }

// Func returns render as a Component.
func Func(render func() *VNode) Component { return ComponentFunc(render) }
