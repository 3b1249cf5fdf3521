// Package config provides reading and writing of textidx configuration.
// Supports both global (~/.textidx/config.yaml) and local (.textidx/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever it was read from, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/textidx/internal/scan"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the directory holding config and logs.
const Dir = ".textidx"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.textidx/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .textidx/config.yaml
	ScopeLocal
)

// Author is recorded against audit log entries.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
}

// FieldLimits holds the minimum field counts used by validate.
type FieldLimits struct {
	WordsFields *int `yaml:"words_fields,omitempty"`
	DocsFields  *int `yaml:"docs_fields,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultMaxLineLength = scan.DefaultMaxLineLength
	DefaultWordsFields   = 3
	DefaultDocsFields    = 2
)

// Validation bounds for configuration values.
const (
	MinMaxLineLength = 1
	MaxMaxLineLength = 1024 * 1024 * 1024 // 1 GB
	MinFields        = 1
	MaxFields        = 1024
)

// Config contains configuration for textidx.
type Config struct {
	Author Author      `yaml:"author,omitempty"`
	Limits Limits      `yaml:"limits,omitempty"`
	Fields FieldLimits `yaml:"validate,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	for name, p := range map[string]*int{
		"words_fields": c.Fields.WordsFields,
		"docs_fields":  c.Fields.DocsFields,
	} {
		if p != nil && (*p < MinFields || *p > MaxFields) {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d",
				ErrInvalidValue, name, MinFields, MaxFields, *p)
		}
	}
	return nil
}

// MaxLineLength returns the maximum line length for scanning (defaults to 10 MB).
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// WordsFields returns the minimum fields per words line (defaults to 3).
func (c *Config) WordsFields() int {
	if c.Fields.WordsFields == nil {
		return DefaultWordsFields
	}
	return *c.Fields.WordsFields
}

// DocsFields returns the minimum fields per documents line (defaults to 2).
func (c *Config) DocsFields() int {
	if c.Fields.DocsFields == nil {
		return DefaultDocsFields
	}
	return *c.Fields.DocsFields
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.textidx/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	return loadPath(pathForScope(scope), scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
