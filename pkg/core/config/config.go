// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     config
// Description: Typed settings of the kfg command, read from kfg.toml
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	"github.com/felpofo/kfg/foundation/utils/filex"
)

// EnvConfigPath names the environment variable holding the settings path
const EnvConfigPath = "KFG_CONFIG"

// Config holds the complete CLI configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`

	// path is the file the settings came from, empty for defaults
	path string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Color  string `toml:"color"`  // auto, always or never
	Indent int    `toml:"indent"` // spaces per nesting level
	Format string `toml:"format"` // tree or inline
}

// WatchConfig holds settings of the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads settings from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Wrap(err, "settings file not found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse settings").
			WithCode(mdwerror.CodeKFGConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid settings").
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.path = path
	return &cfg, nil
}

// SearchPaths returns the locations tried by LoadFromEnv, in order
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, "./kfg.toml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kfg", "kfg.toml"))
	}
	return paths
}

// LoadFromEnv loads the first settings file found in SearchPaths. An
// explicit KFG_CONFIG that does not exist is an error, otherwise missing
// files fall back to Default.
func LoadFromEnv() (*Config, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return Load(p)
	}

	for _, p := range SearchPaths() {
		if filex.IsFile(p) {
			return Load(p)
		}
	}

	return Default(), nil
}

// Path returns the file the settings were read from
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 2
	}
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}

	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	check := func(field, value string, allowed ...string) error {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return nil
			}
		}
		return mdwerror.Newf("%s must be one of %s, got %q", field, strings.Join(allowed, ", "), value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field)
	}

	if err := check("output.color", c.Output.Color, "auto", "always", "never"); err != nil {
		return err
	}
	if err := check("output.format", c.Output.Format, "tree", "inline"); err != nil {
		return err
	}
	if err := check("log.format", c.Log.Format, "json", "text", "console", "logfmt"); err != nil {
		return err
	}
	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		return mdwerror.Newf("output.indent must be between 0 and 16, got %d", c.Output.Indent).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", "output.indent")
	}
	if c.Watch.Debounce.Duration < 0 {
		return mdwerror.New("watch.debounce must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", "watch.debounce")
	}
	return nil
}
