package merge

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"
	"testing"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

func TestIsHandlerKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onClick", true},
		{"onKeyDown", true},
		{"onclick", false},
		{"on", false},
		{"one", false},
		{"online", false},
		{"onX", true},
		{"OnClick", false},
		{"className", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsHandlerKey(tt.key); got != tt.want {
				t.Errorf("IsHandlerKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMergerIsHandler(t *testing.T) {
	m := &Merger{
		HandlerKeys:       map[string]bool{"handler": true},
		DisableConvention: true,
	}
	if !m.IsHandler("handler") {
		t.Error("explicit key should be a handler")
	}
	if m.IsHandler("onClick") {
		t.Error("convention disabled: onClick should not be a handler")
	}

	var nilMerger *Merger
	if !nilMerger.IsHandler("onClick") {
		t.Error("nil Merger should fall back to the convention")
	}
}

func TestAttributes_OverrideWins(t *testing.T) {
	base := vdom.Props{"id": "base", "role": "button", "tabIndex": 0}
	override := vdom.Props{"id": "override", "aria-label": "Close"}

	got := Attributes(base, override)
	want := vdom.Props{"id": "override", "role": "button", "tabIndex": 0, "aria-label": "Close"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}

	if base["id"] != "base" || len(base) != 3 {
		t.Errorf("base was modified: %v", base)
	}
	if len(override) != 2 {
		t.Errorf("override was modified: %v", override)
	}
}

func TestAttributes_NilOverrideKeepsBase(t *testing.T) {
	got := Attributes(vdom.Props{"title": "base"}, vdom.Props{"title": nil, "lang": nil})
	if got["title"] != "base" {
		t.Errorf("title = %v, want base", got["title"])
	}
	if v, ok := got["lang"]; !ok || v != nil {
		t.Errorf("lang = %v (present %v), want nil and present", v, ok)
	}
}

func TestAttributes_NilFuncOverrideKeepsBase(t *testing.T) {
	var calls []string
	base := vdom.Props{
		"onClick": func() { calls = append(calls, "default") },
		"onInput": func(e any) { calls = append(calls, "input") },
	}
	var noClick func()
	var noInput func(any)
	var noBlur func()
	got := Attributes(base, vdom.Props{"onClick": noClick, "onInput": noInput, "onBlur": noBlur})

	click, ok := got["onClick"].(func())
	if !ok || click == nil {
		t.Fatalf("onClick = %#v, want the base handler", got["onClick"])
	}
	click()
	input, ok := got["onInput"].(func(any))
	if !ok || input == nil {
		t.Fatalf("onInput = %#v, want the base handler", got["onInput"])
	}
	input(nil)
	if want := []string{"default", "input"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if v, ok := got["onBlur"]; !ok || v != nil {
		t.Errorf("onBlur = %#v (present %v), want untyped nil and present", v, ok)
	}
}

func TestAttributes_NestedValuesNotMerged(t *testing.T) {
	got := Attributes(
		vdom.Props{"data": map[string]any{"a": 1}},
		vdom.Props{"data": map[string]any{"b": 2}},
	)
	want := map[string]any{"b": 2}
	if !reflect.DeepEqual(got["data"], want) {
		t.Errorf("data = %v, want %v", got["data"], want)
	}
}

func TestAttributes_HandlerOrderAndResult(t *testing.T) {
	var calls []string
	base := vdom.Props{"onClick": func(e any) string {
		calls = append(calls, "default")
		return "default-result"
	}}
	override := vdom.Props{"onClick": func(e any) string {
		calls = append(calls, "user")
		return "user-result"
	}}

	merged := Attributes(base, override)
	handler, ok := merged["onClick"].(func(any) string)
	if !ok {
		t.Fatalf("onClick has type %T, want func(any) string", merged["onClick"])
	}

	result := handler("event")
	if !reflect.DeepEqual(calls, []string{"user", "default"}) {
		t.Errorf("call order = %v, want [user default]", calls)
	}
	if result != "user-result" {
		t.Errorf("result = %q, want user-result", result)
	}
}

func TestAttributes_SingleSidedHandlers(t *testing.T) {
	var calls []string
	f := func() { calls = append(calls, "default") }
	g := func() { calls = append(calls, "user") }

	Attributes(vdom.Props{"onClick": f}, vdom.Props{})["onClick"].(func())()
	if !reflect.DeepEqual(calls, []string{"default"}) {
		t.Errorf("base only: calls = %v, want [default]", calls)
	}

	calls = nil
	Attributes(vdom.Props{}, vdom.Props{"onClick": g})["onClick"].(func())()
	if !reflect.DeepEqual(calls, []string{"user"}) {
		t.Errorf("override only: calls = %v, want [user]", calls)
	}
}

func TestAttributes_HandlerShapes(t *testing.T) {
	type event struct{ Name string }

	tests := []struct {
		name      string
		handlers  func(calls *[]string) (base, override any)
		invoke    func(h any)
		wantCalls []string
	}{
		{
			name: "typed event, same signature",
			handlers: func(calls *[]string) (any, any) {
				return func(e event) { *calls = append(*calls, "default:"+e.Name) },
					func(e event) { *calls = append(*calls, "user:"+e.Name) }
			},
			invoke:    func(h any) { h.(func(event))(event{Name: "click"}) },
			wantCalls: []string{"user:click", "default:click"},
		},
		{
			name: "base ignores arguments",
			handlers: func(calls *[]string) (any, any) {
				return func() { *calls = append(*calls, "default") },
					func(e event) { *calls = append(*calls, "user:"+e.Name) }
			},
			invoke:    func(h any) { h.(func(event))(event{Name: "click"}) },
			wantCalls: []string{"user:click", "default"},
		},
		{
			name: "base takes a prefix as any",
			handlers: func(calls *[]string) (any, any) {
				return func(e any) { *calls = append(*calls, "default:"+e.(event).Name) },
					func(e event, code int) { *calls = append(*calls, fmt.Sprintf("user:%s:%d", e.Name, code)) }
			},
			invoke:    func(h any) { h.(func(event, int))(event{Name: "key"}, 13) },
			wantCalls: []string{"user:key:13", "default:key"},
		},
		{
			name: "variadic same signature",
			handlers: func(calls *[]string) (any, any) {
				return func(parts ...string) { *calls = append(*calls, fmt.Sprintf("default:%d", len(parts))) },
					func(parts ...string) { *calls = append(*calls, fmt.Sprintf("user:%d", len(parts))) }
			},
			invoke:    func(h any) { h.(func(...string))("a", "b") },
			wantCalls: []string{"user:2", "default:2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			base, override := tt.handlers(&calls)

			merged := Attributes(vdom.Props{"onClick": base}, vdom.Props{"onClick": override})
			tt.invoke(merged["onClick"])
			if !reflect.DeepEqual(calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
			}
		})
	}
}

func TestAttributes_ChainedResultsFromOverride(t *testing.T) {
	merged := Attributes(
		vdom.Props{"onSubmit": func(v string) (bool, error) { return false, nil }},
		vdom.Props{"onSubmit": func(v string) (bool, error) { return true, nil }},
	)
	ok, err := merged["onSubmit"].(func(string) (bool, error))("form")
	if !ok || err != nil {
		t.Errorf("onSubmit() = (%v, %v), want (true, <nil>)", ok, err)
	}
}

func TestAttributes_NonHandlerFunctionsOverride(t *testing.T) {
	var calls []string
	base := vdom.Props{"formatter": func() { calls = append(calls, "default") }}
	override := vdom.Props{"formatter": func() { calls = append(calls, "user") }}

	Attributes(base, override)["formatter"].(func())()
	if !reflect.DeepEqual(calls, []string{"user"}) {
		t.Errorf("calls = %v, want [user]", calls)
	}
}

func TestAttributes_NonFunctionOverrideAtHandlerKey(t *testing.T) {
	got := Attributes(vdom.Props{"onClick": func() {}}, vdom.Props{"onClick": "noop"})
	if got["onClick"] != "noop" {
		t.Errorf("onClick = %v, want noop", got["onClick"])
	}
}

func TestAttributes_ExplicitHandlerKeys(t *testing.T) {
	var calls []string
	m := &Merger{HandlerKeys: map[string]bool{"action": true}}
	merged := m.Attributes(
		vdom.Props{"action": func() { calls = append(calls, "default") }},
		vdom.Props{"action": func() { calls = append(calls, "user") }},
	)
	merged["action"].(func())()
	if !reflect.DeepEqual(calls, []string{"user", "default"}) {
		t.Errorf("calls = %v, want [user default]", calls)
	}
}

func TestAttributes_IncompatibleHandlers(t *testing.T) {
	var calls []string
	var reported []error
	var logs bytes.Buffer

	m := &Merger{
		Strict:  true,
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
		OnError: func(err error) { reported = append(reported, err) },
	}
	merged := m.Attributes(
		vdom.Props{"onChange": func(n int) { calls = append(calls, "default") }},
		vdom.Props{"onChange": func(s string) { calls = append(calls, "user:"+s) }},
	)

	merged["onChange"].(func(string))("x")
	if !reflect.DeepEqual(calls, []string{"user:x"}) {
		t.Errorf("calls = %v, want [user:x]", calls)
	}
	if len(reported) != 1 || !errors.HasCode(reported[0], "E010") {
		t.Errorf("reported = %v, want one E010", reported)
	}
	if !bytes.Contains(logs.Bytes(), []byte("handler not chained")) {
		t.Errorf("expected a warning in the log, got %q", logs.String())
	}
}

func TestAttributes_IncompatibleHandlersSilentByDefault(t *testing.T) {
	var calls []string
	merged := Attributes(
		vdom.Props{"onChange": func(n int) { calls = append(calls, "default") }},
		vdom.Props{"onChange": func(s string) { calls = append(calls, "user") }},
	)
	merged["onChange"].(func(string))("x")
	if !reflect.DeepEqual(calls, []string{"user"}) {
		t.Errorf("calls = %v, want [user]", calls)
	}
}
