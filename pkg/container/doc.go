// Package container resolves two-level components: a container element
// whose look depends on container state, and items whose content depends
// on item state.
//
//	type ListState struct{ ItemCount int }
//	type ItemState struct {
//	    Index int
//	    Value string
//	}
//
//	r := container.New("ul", ListState{ItemCount: len(fruits)},
//	    &container.BaseProps[ListState, ItemState]{
//	        ClassName: merge.ClassFromState(func(s ListState) string { ... }),
//	        Children:  stateful.ChildrenFunc(func(it ItemState) any { return vdom.Li(it.Value) }),
//	    }, props)
//
//	list := r.RenderContainer(container.Map(r, fruits, func(f string, i int) ItemState {
//	    return ItemState{Index: i, Value: f}
//	}))
//
// Container class names, styles, attributes, and the render override see
// only the container state. Item children see only the item state.
package container
