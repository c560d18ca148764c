package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/renderprop/internal/errors"
)

const cardFixture = `name: card
base:
  className: card
props:
  className: card-primary
  children: Link
  render:
    tag: a
    attrs: {href: /path}
expect:
  html: '<a class="card card-primary" href="/path">Link</a>'
`

// project writes a config file and a fixture directory and returns the
// config path.
func project(t *testing.T, config string, fixtures map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "fixtures"), 0755); err != nil {
		t.Fatal(err)
	}
	for name, src := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, "fixtures", name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "renderprop.json")
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("out = %q, want %q", out, "dev\n")
	}

	out, err = run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var info buildInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if info.Version != "dev" || info.Go == "" {
		t.Errorf("info = %+v", info)
	}
}

func TestRender(t *testing.T) {
	cfg := project(t, `{"fixtures": "fixtures"}`, map[string]string{"card.yaml": cardFixture})
	want := `<a class="card card-primary" href="/path">Link</a>` + "\n"

	t.Run("by name", func(t *testing.T) {
		out, err := run(t, "--config", cfg, "render", "card")
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if out != want {
			t.Errorf("out = %q, want %q", out, want)
		}
	})

	t.Run("by path", func(t *testing.T) {
		path := filepath.Join(filepath.Dir(cfg), "fixtures", "card.yaml")
		out, err := run(t, "--config", cfg, "render", path)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if out != want {
			t.Errorf("out = %q, want %q", out, want)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := run(t, "--config", cfg, "render", "nope"); !errors.HasCode(err, "E033") {
			t.Errorf("err = %v, want E033", err)
		}
	})
}

func TestCheck(t *testing.T) {
	good := project(t, `{"fixtures": "fixtures"}`, map[string]string{"card.yaml": cardFixture})
	out, err := run(t, "--config", good, "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "card") || !strings.Contains(out, "1 fixtures passed") {
		t.Errorf("out = %q", out)
	}

	bad := project(t, `{"fixtures": "fixtures"}`, map[string]string{
		"card.yaml": strings.Replace(cardFixture, `href="/path"`, `href="/other"`, 1),
	})
	out, err = run(t, "--config", bad, "check")
	if err == nil {
		t.Fatal("check passed with a wrong expectation")
	}
	if !strings.Contains(out, "E034") {
		t.Errorf("out = %q, want an E034 line", out)
	}

	out, _ = run(t, "--config", bad, "check", "--json")
	if !strings.Contains(out, `"ok":false`) || !strings.Contains(out, `"code":"E034"`) {
		t.Errorf("json out = %q", out)
	}
}

func TestCheckDirArgument(t *testing.T) {
	cfg := project(t, `{}`, nil)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "card.yaml"), []byte(cardFixture), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--config", cfg, "check", dir); err != nil {
		t.Errorf("check %s: %v", dir, err)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		code   string
	}{
		{"bad json", `{`, nil, "E020"},
		{"bad level", `{"log": {"level": "loud"}}`, nil, "E021"},
		{"bad level flag", `{}`, []string{"--log-level", "loud"}, "E021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := project(t, tt.config, nil)
			args := append([]string{"--config", cfg}, tt.args...)
			args = append(args, "check")
			if _, err := run(t, args...); !errors.HasCode(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}
