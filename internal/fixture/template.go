package fixture

import (
	"strings"
	"text/template"

	"github.com/vango-dev/renderprop/internal/errors"
)

// compile parses every template string in the fixture so syntax errors
// surface at load time.
func (f *Fixture) compile() error {
	f.templates = make(map[string]*template.Template)

	sources := []string{f.Base.ClassName, f.Props.ClassName}
	for _, side := range []PropsSpec{f.Base, f.Props} {
		for _, v := range side.StateAttrs {
			if s, ok := v.(string); ok {
				sources = append(sources, s)
			}
		}
		sources = collectStrings(side.Children, sources)
		if m, ok := side.Render.(map[string]any); ok {
			sources = collectStrings(m["children"], sources)
		}
	}

	for _, src := range sources {
		if _, err := f.template(src); err != nil {
			return err
		}
	}
	return nil
}

// collectStrings appends the strings found in a children value.
func collectStrings(v any, out []string) []string {
	switch c := v.(type) {
	case string:
		out = append(out, c)
	case []any:
		for _, item := range c {
			out = collectStrings(item, out)
		}
	case map[string]any:
		out = collectStrings(c["children"], out)
	}
	return out
}

func (f *Fixture) template(src string) (*template.Template, error) {
	if t, ok := f.templates[src]; ok {
		return t, nil
	}
	if f.templates == nil {
		f.templates = make(map[string]*template.Template)
	}
	t, err := template.New(f.Name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, errors.New("E032").WithDetailf("%q", src).Wrap(err)
	}
	f.templates[src] = t
	return t, nil
}

// evaluator executes templates and keeps the first failure, so resolver
// callbacks, which cannot return errors, can still report one.
type evaluator struct {
	f   *Fixture
	err error
}

func (e *evaluator) text(src string, data any) string {
	if !strings.Contains(src, "{{") {
		return src
	}
	t, err := e.f.template(src)
	if err != nil {
		e.fail(err)
		return ""
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		e.fail(errors.New("E032").WithDetailf("%q", src).Wrap(err))
		return ""
	}
	return sb.String()
}

func (e *evaluator) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
