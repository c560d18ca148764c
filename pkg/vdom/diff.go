package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Diff returns the patches that turn prev into next. Handler and ref
// props are compared by presence only, and the reconciliation key is not
// an attribute.
func Diff(prev, next *VNode) []Patch {
	var d differ
	d.node(prev, next, "")
	return d.patches
}

// Equal reports whether a and b render the same markup and bind the same
// set of handler and ref keys. Function and ref identities are ignored.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return len(Diff(a, b)) == 0
}

type differ struct {
	patches []Patch
}

func (d *differ) emit(p Patch) { d.patches = append(d.patches, p) }

func (d *differ) node(prev, next *VNode, path string) {
	switch {
	case prev == nil && next == nil:
		return
	case next == nil:
		d.emit(Patch{Op: PatchRemoveNode, Path: path})
		return
	case prev == nil, prev.Kind != next.Kind:
		d.emit(Patch{Op: PatchReplaceNode, Path: path, Node: next})
		return
	}

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			d.emit(Patch{Op: PatchSetText, Path: path, Value: next.Text})
		}
	case KindRaw:
		if prev.Text != next.Text {
			d.emit(Patch{Op: PatchReplaceNode, Path: path, Node: next})
		}
	case KindElement:
		if prev.Tag != next.Tag {
			d.emit(Patch{Op: PatchReplaceNode, Path: path, Node: next})
			return
		}
		d.props(prev.Props, next.Props, path)
		d.children(prev.Children, next.Children, path)
	case KindFragment:
		d.children(prev.Children, next.Children, path)
	case KindComponent:
		d.node(renderComp(prev), renderComp(next), path)
	}
}

func renderComp(n *VNode) *VNode {
	if n.Comp == nil {
		return nil
	}
	return n.Comp.Render()
}

// props walks the union of both key sets in sorted order.
func (d *differ) props(prev, next Props, path string) {
	seen := make(map[string]bool, len(prev)+len(next))
	keys := make([]string, 0, len(prev)+len(next))
	for _, m := range []Props{prev, next} {
		for k := range m {
			if k != PropKey && !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		pv, inPrev := prev[key]
		nv, inNext := next[key]
		if key == PropRef || IsHandlerKey(key) {
			if bound(pv) != bound(nv) {
				d.emit(Patch{Op: PatchSetHandler, Path: path, Key: key})
			}
			continue
		}
		switch {
		case !inNext:
			d.emit(Patch{Op: PatchRemoveAttr, Path: path, Key: key})
		case !inPrev || !sameValue(pv, nv):
			d.emit(Patch{Op: PatchSetAttr, Path: path, Key: key, Value: formatValue(nv)})
		}
	}
}

func (d *differ) children(prev, next []*VNode, path string) {
	if anyKeyed(prev) || anyKeyed(next) {
		d.keyed(prev, next, path)
		return
	}
	for i := 0; i < len(prev) || i < len(next); i++ {
		if i >= len(prev) {
			d.emit(Patch{Op: PatchInsertNode, Path: path, Index: i, Node: next[i]})
			continue
		}
		var n *VNode
		if i < len(next) {
			n = next[i]
		}
		d.node(prev[i], n, childPath(path, i))
	}
}

// keyed matches children by key. Unkeyed or unknown next children are
// inserted; unmatched prev children are removed.
func (d *differ) keyed(prev, next []*VNode, path string) {
	index := make(map[string]int, len(prev))
	for i, c := range prev {
		if k := nodeKey(c); k != "" {
			index[k] = i
		}
	}
	used := make([]bool, len(prev))
	for ni, c := range next {
		pi, ok := index[nodeKey(c)]
		if !ok || nodeKey(c) == "" {
			d.emit(Patch{Op: PatchInsertNode, Path: path, Index: ni, Node: c})
			continue
		}
		used[pi] = true
		at := childPath(path, pi)
		if pi != ni {
			d.emit(Patch{Op: PatchMoveNode, Path: at, Index: ni})
		}
		d.node(prev[pi], c, at)
	}
	for i, u := range used {
		if !u {
			d.emit(Patch{Op: PatchRemoveNode, Path: childPath(path, i)})
		}
	}
}

// bound reports whether a handler or ref prop value binds anything.
func bound(v any) bool { return v != nil && !IsNilFunc(v) }

func childPath(path string, i int) string {
	if path == "" {
		return strconv.Itoa(i)
	}
	return path + "." + strconv.Itoa(i)
}

func nodeKey(n *VNode) string {
	if n == nil {
		return ""
	}
	if n.Key != "" {
		return n.Key
	}
	k, _ := n.Props[PropKey].(string)
	return k
}

func anyKeyed(nodes []*VNode) bool {
	for _, n := range nodes {
		if nodeKey(n) != "" {
			return true
		}
	}
	return false
}

func sameValue(a, b any) bool {
	if s, ok := a.(Style); ok {
		return s.String() == AsStyle(b).String()
	}
	if _, ok := b.(Style); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case Style:
		return x.String()
	}
	return fmt.Sprint(v)
}
