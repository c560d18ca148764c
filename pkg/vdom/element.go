package vdom

import "fmt"

// CreateElement builds a new element node.
//
// props is copied, never retained: later writes to the caller's map do not
// reach the node. A "children" entry in props is ignored; children are
// passed separately and accept anything AppendChildren does.
func CreateElement(tag string, props Props, children ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}
	for k, v := range props {
		if k == PropChildren {
			continue
		}
		node.Props[k] = v
	}
	if key, ok := props[PropKey].(string); ok {
		node.Key = key
	}
	AppendChildren(node, children...)
	return node
}

// CloneElement returns a copy of el with props laid over el's own props.
//
// Keys named in props win; all other attributes of el survive. When
// children are given they replace el's children, otherwise the clone keeps
// (a copy of) el's children. el itself is not modified. Cloning a nil or
// non-element node returns a plain clone of it.
func CloneElement(el *VNode, props Props, children ...any) *VNode {
	if el == nil {
		return nil
	}
	clone := *el
	clone.Props = make(Props, len(el.Props)+len(props))
	for k, v := range el.Props {
		clone.Props[k] = v
	}
	for k, v := range props {
		if k == PropChildren {
			continue
		}
		clone.Props[k] = v
	}
	if key, ok := props[PropKey].(string); ok {
		clone.Key = key
	}
	if len(children) > 0 {
		clone.Children = make([]*VNode, 0, len(children))
		AppendChildren(&clone, children...)
	} else if el.Children != nil {
		clone.Children = append([]*VNode(nil), el.Children...)
	}
	return &clone
}

// IsElement reports whether v is an element instance, as opposed to a
// function, text, or any other value.
func IsElement(v any) bool {
	node, ok := v.(*VNode)
	return ok && node != nil && node.Kind == KindElement
}

// AppendChildren normalizes children and appends them to node.
//
// Accepted values: nil (skipped), *VNode, []*VNode, []any (flattened),
// string (text node), Component, and any other value, which is rendered as
// text with fmt.Sprint.
func AppendChildren(node *VNode, children ...any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case []any:
			AppendChildren(node, v...)
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		default:
			node.Children = append(node.Children, Text(fmt.Sprint(v)))
		}
	}
}
