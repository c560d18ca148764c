package slot

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

func TestRenderValue(t *testing.T) {
	fn := func(vdom.Props) *vdom.VNode { return nil }

	tests := []struct {
		name  string
		value any
		want  RenderKind
	}{
		{"nil", nil, KindNone},
		{"element", vdom.Div(), KindElement},
		{"function", fn, KindFunc},
		{"render", RenderFunc(fn), KindFunc},
		{"string", "a", KindInvalid},
		{"wrong function shape", func() *vdom.VNode { return nil }, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderValue(tt.value).Kind(); got != tt.want {
				t.Errorf("RenderValue(%T).Kind() = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRenderKindString(t *testing.T) {
	want := map[RenderKind]string{
		KindNone:    "none",
		KindElement: "element",
		KindFunc:    "func",
		KindInvalid: "invalid",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestDispatch_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		render Render
	}{
		{"nil element", RenderElement(nil)},
		{"text node", RenderElement(vdom.Text("not an element"))},
		{"nil function", RenderFunc(nil)},
		{"unknown value", RenderValue(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Resolve("div", &BaseProps{ClassName: "box"}, &Props{Render: tt.render, Children: "x"})
			if node.Tag != "div" || node.ClassName() != "box" || node.TextContent() != "x" {
				t.Errorf("fallback = <%s class=%q>%q", node.Tag, node.ClassName(), node.TextContent())
			}
		})
	}
}

func TestDispatch_StrictReportsMalformed(t *testing.T) {
	var reported []error
	var logs bytes.Buffer

	node := Resolve("div", nil, &Props{Render: RenderValue("oops")},
		WithStrict(true),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithErrorHandler(func(err error) { reported = append(reported, err) }),
	)

	if node.Tag != "div" {
		t.Errorf("Tag = %q, want div", node.Tag)
	}
	if len(reported) != 1 || !errors.HasCode(reported[0], "E011") {
		t.Fatalf("reported = %v, want one E011", reported)
	}
	if detail := errors.FromError(reported[0], "").Detail; !strings.Contains(detail, "string") {
		t.Errorf("detail %q does not name the bad value", detail)
	}
	if !strings.Contains(logs.String(), "code=E011") {
		t.Errorf("log = %q, want code=E011", logs.String())
	}
}

func TestDispatch_NonStrictIsSilent(t *testing.T) {
	called := false
	Resolve("div", nil, &Props{Render: RenderFunc(nil)},
		WithErrorHandler(func(error) { called = true }),
	)
	if called {
		t.Error("error handler called outside strict mode")
	}
}

func TestOptions_StrictMergerReportsHandlers(t *testing.T) {
	var reported []error
	Resolve("input",
		&BaseProps{Attrs: vdom.Props{"onChange": func(int) {}}},
		&Props{Attrs: vdom.Props{"onChange": func(string) {}}},
		WithStrict(true),
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		WithErrorHandler(func(err error) { reported = append(reported, err) }),
	)
	if len(reported) != 1 || !errors.HasCode(reported[0], "E010") {
		t.Errorf("reported = %v, want one E010", reported)
	}
}

func TestOptions_ExplicitMerger(t *testing.T) {
	var calls []string
	m := &merge.Merger{HandlerKeys: map[string]bool{"action": true}, DisableConvention: true}
	node := Resolve("form",
		&BaseProps{Attrs: vdom.Props{
			"action":   func() { calls = append(calls, "default") },
			"onSubmit": func() { calls = append(calls, "default-submit") },
		}},
		&Props{Attrs: vdom.Props{
			"action":   func() { calls = append(calls, "user") },
			"onSubmit": func() { calls = append(calls, "user-submit") },
		}},
		WithMerger(m),
	)

	node.Props["action"].(func())()
	node.Props["onSubmit"].(func())()
	want := []string{"user", "default", "user-submit"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}
