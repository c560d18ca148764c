package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// el builds an element from DSL arguments.
// Arguments can be: nil, Attr, []Attr, Props, Style, EventHandler, or
// anything AppendChildren accepts.
func el(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			setAttr(node, v)

		case []Attr:
			for _, a := range v {
				setAttr(node, a)
			}

		case Props:
			for key, value := range v {
				setAttr(node, Attr{Key: key, Value: value})
			}

		case Style:
			// Repeated styles merge key by key
			merged := node.Style().Clone()
			if merged == nil {
				merged = make(Style, len(v))
			}
			for k, val := range v {
				merged[k] = val
			}
			node.Props[PropStyle] = merged

		case EventHandler:
			node.Props[v.Event] = v.Handler

		default:
			AppendChildren(node, v)
		}
	}

	return node
}

// setAttr applies one attribute. Repeated className attributes accumulate.
func setAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	switch a.Key {
	case PropKey:
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
	case PropClassName:
		if s, ok := a.Value.(string); ok {
			a.Value = Classes(node.ClassName(), s)
		}
	case PropChildren:
		AppendChildren(node, a.Value)
		return
	}
	node.Props[a.Key] = a.Value
}

// Content sectioning elements

func Header(args ...any) *VNode  { return el("header", args) }
func Footer(args ...any) *VNode  { return el("footer", args) }
func Main(args ...any) *VNode    { return el("main", args) }
func Nav(args ...any) *VNode     { return el("nav", args) }
func Section(args ...any) *VNode { return el("section", args) }
func Article(args ...any) *VNode { return el("article", args) }
func H1(args ...any) *VNode      { return el("h1", args) }
func H2(args ...any) *VNode      { return el("h2", args) }
func H3(args ...any) *VNode      { return el("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return el("div", args) }
func P(args ...any) *VNode    { return el("p", args) }
func Span(args ...any) *VNode { return el("span", args) }
func Ul(args ...any) *VNode   { return el("ul", args) }
func Ol(args ...any) *VNode   { return el("ol", args) }
func Li(args ...any) *VNode   { return el("li", args) }
func Hr(args ...any) *VNode   { return el("hr", args) }

// Inline and interactive elements

func A(args ...any) *VNode      { return el("a", args) }
func Strong(args ...any) *VNode { return el("strong", args) }
func Em(args ...any) *VNode     { return el("em", args) }
func Code(args ...any) *VNode   { return el("code", args) }
func Img(args ...any) *VNode    { return el("img", args) }
func Br(args ...any) *VNode     { return el("br", args) }

// Form elements

func Form(args ...any) *VNode     { return el("form", args) }
func Input(args ...any) *VNode    { return el("input", args) }
func Button(args ...any) *VNode   { return el("button", args) }
func Label(args ...any) *VNode    { return el("label", args) }
func Select(args ...any) *VNode   { return el("select", args) }
func Option(args ...any) *VNode   { return el("option", args) }
func Textarea(args ...any) *VNode { return el("textarea", args) }

// Document elements used by the gallery page

func Html(args ...any) *VNode   { return el("html", args) }
func Head(args ...any) *VNode   { return el("head", args) }
func Body(args ...any) *VNode   { return el("body", args) }
func Title(args ...any) *VNode  { return el("title", args) }
func Meta(args ...any) *VNode   { return el("meta", args) }
func Script(args ...any) *VNode { return el("script", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *VNode {
	return el(tag, args)
}
