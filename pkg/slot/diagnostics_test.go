package slot_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

func strictOptions(reported *[]error, logs *bytes.Buffer) []slot.Option {
	return []slot.Option{
		slot.WithStrict(true),
		slot.WithLogger(slog.New(slog.NewTextHandler(logs, nil))),
		slot.WithErrorHandler(func(err error) { *reported = append(*reported, err) }),
	}
}

func TestDiagnosticsMatchExportedErrors(t *testing.T) {
	tests := []struct {
		name  string
		base  *slot.BaseProps
		props *slot.Props
		want  error
		not   error
	}{
		{
			name:  "invalid render",
			props: &slot.Props{Render: slot.RenderValue(42)},
			want:  slot.ErrInvalidRender,
			not:   merge.ErrHandlerNotChained,
		},
		{
			name:  "unchained handler",
			base:  &slot.BaseProps{Attrs: vdom.Props{"onChange": func(int) {}}},
			props: &slot.Props{Attrs: vdom.Props{"onChange": func(string) {}}},
			want:  merge.ErrHandlerNotChained,
			not:   slot.ErrInvalidRender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reported []error
			var logs bytes.Buffer
			slot.Resolve("div", tt.base, tt.props, strictOptions(&reported, &logs)...)

			if len(reported) != 1 {
				t.Fatalf("reported = %v, want one error", reported)
			}
			if !errors.Is(reported[0], tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", reported[0], tt.want)
			}
			if errors.Is(reported[0], tt.not) {
				t.Errorf("errors.Is(%v, %v) = true", reported[0], tt.not)
			}
		})
	}
}

func TestReportAcceptsPlainErrors(t *testing.T) {
	var reported []error
	var logs bytes.Buffer
	o := slot.NewOptions(strictOptions(&reported, &logs)...)

	plain := errors.New("custom check failed")
	o.Report(plain, "tag", "div")

	if len(reported) != 1 || reported[0] != plain {
		t.Fatalf("reported = %v, want the plain error", reported)
	}
	if got := logs.String(); !strings.Contains(got, "custom check failed") || !strings.Contains(got, "tag=div") {
		t.Errorf("log = %q", got)
	}
	if strings.Contains(logs.String(), "code=") {
		t.Errorf("plain error logged a code: %q", logs.String())
	}
}
