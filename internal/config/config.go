package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/merge"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "renderprop.json"

	// DefaultPort is the default gallery port.
	DefaultPort = 7070

	// DefaultHost is the default gallery host.
	DefaultHost = "localhost"

	// DefaultFixtures is the default fixture directory.
	DefaultFixtures = "fixtures"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "renderprop"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "renderprop"
)

// Config represents renderprop.json.
type Config struct {
	// Fixtures is the fixture directory, relative to the config file.
	Fixtures string `json:"fixtures,omitempty"`

	// Gallery configures the fixture gallery server.
	Gallery GalleryConfig `json:"gallery"`

	// Merge configures attribute merging.
	Merge MergeConfig `json:"merge"`

	// Log configures logging.
	Log LogConfig `json:"log"`

	// Metrics configures the gallery's Prometheus metrics.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing"`

	configPath string
}

// GalleryConfig contains gallery server settings.
type GalleryConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// Watch re-renders fixtures when their files change and pushes a
	// reload to open pages.
	Watch bool `json:"watch,omitempty"`

	// Pretty indents rendered HTML.
	Pretty bool `json:"pretty,omitempty"`
}

// MergeConfig contains attribute merge settings.
type MergeConfig struct {
	// HandlerKeys are always chained as handlers.
	HandlerKeys []string `json:"handlerKeys,omitempty"`

	// Convention treats "on"+Capital keys as handlers. Defaults to true.
	Convention *bool `json:"convention,omitempty"`

	// Strict reports handlers and render overrides that fall back.
	Strict bool `json:"strict,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	TracerName string `json:"tracerName,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads renderprop.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E020").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				Wrap(err)
		}
		return nil, errors.New("E020").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E020").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E020").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E020").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Fixtures == "" {
		c.Fixtures = DefaultFixtures
	}
	if c.Gallery.Host == "" {
		c.Gallery.Host = DefaultHost
	}
	if c.Gallery.Port == 0 {
		c.Gallery.Port = DefaultPort
	}
	if c.Merge.Convention == nil {
		on := true
		c.Merge.Convention = &on
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Gallery.Port < 0 || c.Gallery.Port > 65535 {
		return errors.New("E021").
			WithDetailf("gallery.port %d must be between 0 and 65535", c.Gallery.Port)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E021").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	for _, key := range c.Merge.HandlerKeys {
		if strings.TrimSpace(key) == "" {
			return errors.New("E021").WithDetail("merge.handlerKeys contains an empty key")
		}
	}
	return nil
}

// FixturesPath returns the fixture directory resolved against Dir().
func (c *Config) FixturesPath() string {
	if filepath.IsAbs(c.Fixtures) {
		return c.Fixtures
	}
	return filepath.Join(c.Dir(), c.Fixtures)
}

// GalleryAddress returns host:port for the gallery server.
func (c *Config) GalleryAddress() string {
	return c.Gallery.Host + ":" + strconv.Itoa(c.Gallery.Port)
}

// ConventionEnabled reports whether handler keys follow the naming
// convention.
func (c *Config) ConventionEnabled() bool {
	return c.Merge.Convention == nil || *c.Merge.Convention
}

// Merger builds the attribute merger described by the merge section.
func (c *Config) Merger(logger *slog.Logger, onError func(error)) *merge.Merger {
	m := &merge.Merger{
		DisableConvention: !c.ConventionEnabled(),
		Strict:            c.Merge.Strict,
		Logger:            logger,
		OnError:           onError,
	}
	if len(c.Merge.HandlerKeys) > 0 {
		m.HandlerKeys = make(map[string]bool, len(c.Merge.HandlerKeys))
		for _, key := range c.Merge.HandlerKeys {
			m.HandlerKeys[key] = true
		}
	}
	return m
}

// LogLevel returns the configured slog level, or info when unset.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory holding
// renderprop.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E020").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest renderprop.json above the working
// directory. Without one it returns Default() rooted at the working
// directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		cfg := Default()
		cfg.configPath = filepath.Join(wd, ConfigFileName)
		return cfg, nil
	}
	return Load(root)
}
