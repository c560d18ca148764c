package ref

import (
	"reflect"
	"testing"

	"github.com/vango-dev/renderprop/pkg/vdom"
)

type element struct{ id string }

func TestCompose_FanOut(t *testing.T) {
	a := vdom.NewRef(nil)
	b := vdom.NewRef(nil)
	x := &element{id: "x"}

	r := Compose(a, b)
	r.Attach(x)
	if a.Current != x || b.Current != x {
		t.Fatalf("after attach: a=%v b=%v, want both %v", a.Current, b.Current, x)
	}

	r.Attach(nil)
	if a.Current != nil || b.Current != nil {
		t.Errorf("after detach: a=%v b=%v, want both nil", a.Current, b.Current)
	}
}

func TestCompose_ReturnedCleanupDetaches(t *testing.T) {
	a := vdom.NewRef(nil)
	var seen []any
	b := vdom.RefFunc(func(instance any) { seen = append(seen, instance) })
	x := &element{id: "x"}

	cleanup := Compose(a, b).Attach(x)
	if cleanup == nil {
		t.Fatal("composed ref returned no cleanup")
	}
	cleanup()

	if a.Current != nil {
		t.Errorf("a.Current = %v, want nil", a.Current)
	}
	if want := []any{x, nil}; !reflect.DeepEqual(seen, want) {
		t.Errorf("callback saw %v, want %v", seen, want)
	}
}

func TestCompose_ExplicitCleanupsRunInOrder(t *testing.T) {
	var log []string
	target := func(name string) vdom.Ref {
		return vdom.NewCallbackRef(func(instance any) func() {
			if instance == nil {
				log = append(log, name+":nil")
				return nil
			}
			log = append(log, name+":attach")
			return func() { log = append(log, name+":cleanup") }
		})
	}

	r := Compose(target("a"), nil, target("b"), target("c"))
	r.Attach(&element{})
	r.Attach(nil)

	want := []string{
		"a:attach", "b:attach", "c:attach",
		"a:cleanup", "b:cleanup", "c:cleanup",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestCompose_ReattachDetachesFirst(t *testing.T) {
	var log []string
	cb := vdom.NewCallbackRef(func(instance any) func() {
		if instance == nil {
			log = append(log, "nil")
			return nil
		}
		log = append(log, instance.(*element).id)
		return func() { log = append(log, "cleanup") }
	})
	obj := vdom.NewRef(nil)

	r := Compose(cb, obj)
	r.Attach(&element{id: "first"})
	r.Attach(&element{id: "second"})

	want := []string{"first", "cleanup", "second"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if got := obj.Current.(*element).id; got != "second" {
		t.Errorf("obj.Current = %q, want second", got)
	}
}

func TestCompose_StaleCleanupIgnored(t *testing.T) {
	a := vdom.NewRef(nil)
	b := vdom.NewRef(nil)
	r := Compose(a, b)

	stale := r.Attach(&element{id: "first"})
	second := &element{id: "second"}
	r.Attach(second)
	stale()

	if a.Current != second || b.Current != second {
		t.Errorf("stale cleanup cleared a newer attachment: a=%v b=%v", a.Current, b.Current)
	}
}

func TestCompose_SkipsNilTargets(t *testing.T) {
	var nilObj *vdom.RefObject
	var nilCb *vdom.CallbackRef

	if got := Compose(); got != nil {
		t.Errorf("Compose() = %v, want nil", got)
	}
	if got := Compose(nil, nilObj, nilCb); got != nil {
		t.Errorf("Compose(nils) = %v, want nil", got)
	}

	only := vdom.NewRef(nil)
	if got := Compose(nil, only, nilObj); got != vdom.Ref(only) {
		t.Errorf("Compose with one live target = %v, want the target itself", got)
	}
}

func TestCompose_CallbackWithoutFunction(t *testing.T) {
	a := vdom.NewRef(nil)
	r := Compose(vdom.NewCallbackRef(nil), a)
	r.Attach(&element{})
	r.Attach(nil)
	if a.Current != nil {
		t.Errorf("a.Current = %v, want nil", a.Current)
	}
}

func TestAssign(t *testing.T) {
	t.Run("synthesized cleanup", func(t *testing.T) {
		obj := vdom.NewRef(nil)
		cleanup := Assign(obj, "node")
		if obj.Current != "node" {
			t.Fatalf("Current = %v, want node", obj.Current)
		}
		cleanup()
		if obj.Current != nil {
			t.Errorf("Current = %v after cleanup, want nil", obj.Current)
		}
	})

	t.Run("explicit cleanup", func(t *testing.T) {
		called := false
		cb := vdom.NewCallbackRef(func(any) func() { return func() { called = true } })
		Assign(cb, "node")()
		if !called {
			t.Error("explicit cleanup not returned")
		}
	})

	t.Run("nil target", func(t *testing.T) {
		if Assign(nil, "node") != nil {
			t.Error("Assign(nil) returned a cleanup")
		}
	})
}
