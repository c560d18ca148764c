package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/renderprop/internal/errors"
)

// Variants.
const (
	VariantSlot      = "slot"
	VariantStateful  = "stateful"
	VariantContainer = "container"
)

// Fixture is one decoded fixture file.
type Fixture struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Variant     string           `yaml:"variant"`
	Tag         string           `yaml:"tag"`
	Strict      bool             `yaml:"strict"`
	State       map[string]any   `yaml:"state"`
	Items       []map[string]any `yaml:"items"`
	Base        PropsSpec        `yaml:"base"`
	Props       PropsSpec        `yaml:"props"`
	Expect      Expect           `yaml:"expect"`

	// Path is the file the fixture was loaded from.
	Path string `yaml:"-"`

	templates map[string]*template.Template
}

// PropsSpec is one side of the configuration. Base ignores Render.
type PropsSpec struct {
	ClassName  string         `yaml:"className"`
	Style      map[string]any `yaml:"style"`
	Children   any            `yaml:"children"`
	Attrs      map[string]any `yaml:"attrs"`
	StateAttrs map[string]any `yaml:"stateAttrs"`
	Handlers   []string       `yaml:"handlers"`
	Render     any            `yaml:"render"`
}

// ElementSpec describes an element in children or an element override.
type ElementSpec struct {
	Tag      string         `yaml:"tag"`
	Attrs    map[string]any `yaml:"attrs"`
	Children any            `yaml:"children"`
	Wrap     string         `yaml:"wrap"`
}

// Expect holds optional assertions checked by the CLI.
type Expect struct {
	HTML     string   `yaml:"html"`
	Contains []string `yaml:"contains"`
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E033").WithDetail(path).Wrap(err)
		}
		return nil, errors.New("E030").WithDetail(path).Wrap(err)
	}

	f, err := Parse(data)
	if err != nil {
		e := errors.FromError(err, "E030")
		if e.Location == nil {
			if line := yamlLine(e.Wrapped); line > 0 {
				e.WithLocation(path, line, 0)
			} else {
				e.Location = &errors.Location{File: path}
			}
		}
		return nil, e
	}
	f.Path = path
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E030").
			WithDetail("the document is not valid YAML").
			Wrap(err)
	}
	if doc == nil {
		return nil, errors.New("E030").WithDetail("the document is empty")
	}

	f := &Fixture{}
	if err := decode(doc, f); err != nil {
		return nil, errors.New("E030").Wrap(err)
	}

	if f.Tag == "" {
		f.Tag = "div"
	}
	switch f.Variant {
	case "":
		f.Variant = VariantSlot
	case VariantSlot, VariantStateful, VariantContainer:
	default:
		return nil, errors.New("E031").
			WithDetailf("variant %q", f.Variant).
			WithSuggestion("Use variant: slot, stateful, or container")
	}
	if err := f.compile(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadDir loads every .yaml and .yml file in dir, sorted by file name.
// Fixture names must be unique.
func LoadDir(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E033").WithDetail("no fixture directory at " + dir).Wrap(err)
		}
		return nil, errors.New("E030").Wrap(err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsFixtureFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	fixtures := make([]*Fixture, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[f.Name]; dup {
			return nil, errors.New("E030").
				WithDetailf("fixture name %q is used by %s and %s", f.Name, prev, path)
		}
		seen[f.Name] = path
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// IsFixtureFile reports whether name has a fixture extension.
func IsFixtureFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Find returns the fixture named name.
func Find(fixtures []*Fixture, name string) (*Fixture, error) {
	for _, f := range fixtures {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, errors.New("E033").WithDetailf("no fixture named %q", name)
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlLine extracts the line number yaml.v3 puts in its messages.
func yamlLine(err error) int {
	if err == nil {
		return 0
	}
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// decode maps a generic document onto out using yaml tags. Unknown keys
// are errors so typos do not pass silently.
func decode(in, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		TagName:     "yaml",
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}

// Source returns the fixture re-encoded as YAML.
func (f *Fixture) Source() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", errors.New("E030").Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.New("E030").Wrap(err)
	}
	return buf.String(), nil
}
