package vdom

// PatchOp names one host operation produced by Diff.
type PatchOp uint8

const (
	PatchSetText PatchOp = iota + 1
	PatchSetAttr
	PatchRemoveAttr
	PatchInsertNode
	PatchRemoveNode
	PatchMoveNode
	PatchReplaceNode
	PatchSetHandler // a handler or ref key appeared or disappeared
)

var patchOpNames = [...]string{
	PatchSetText:     "SetText",
	PatchSetAttr:     "SetAttr",
	PatchRemoveAttr:  "RemoveAttr",
	PatchInsertNode:  "InsertNode",
	PatchRemoveNode:  "RemoveNode",
	PatchMoveNode:    "MoveNode",
	PatchReplaceNode: "ReplaceNode",
	PatchSetHandler:  "SetHandler",
}

func (op PatchOp) String() string {
	if int(op) < len(patchOpNames) && patchOpNames[op] != "" {
		return patchOpNames[op]
	}
	return "Unknown"
}

// Patch is one step of a Diff.
//
// Nodes are addressed by Path, the dot-separated child indexes from the
// root ("" is the root, "0.2" the third child of the first child). Key is
// set for attribute and handler ops, Node for inserts and replacements,
// Index for inserts and moves.
type Patch struct {
	Op    PatchOp
	Path  string
	Key   string
	Value string
	Node  *VNode
	Index int
}
