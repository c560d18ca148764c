package vdom

// Text returns a text node. Renderers escape its content.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw returns a node whose content is written without escaping. Only use
// it for trusted markup.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. Children follow the
// same rules as AppendChildren.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	AppendChildren(node, children...)
	return node
}
