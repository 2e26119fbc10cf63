// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for loading TOML, YAML and kfg files, environment
//              overrides, discovery and the polling watcher.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: kfg format, discovery and watcher tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	"github.com/felpofo/kfg/foundation/kfg/parser"
)

const kfgContent = `// service
database::host = 'localhost'
database::port = 5432
database::ssl = true

server = {
  .timeout: '30s'
  .ratio: 0.5
  .features: ['auth', 'logging', 'metrics']
}
server::workers = 4
proxy = null
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load kfg config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "app.kfg", kfgContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatKFG {
			t.Errorf("Expected format kfg, got %v", cfg.Format())
		}
		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}
		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
		if ssl := cfg.GetBool("database.ssl"); !ssl {
			t.Errorf("Expected ssl true, got %v", ssl)
		}
		if timeout := cfg.GetDuration("server.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}
		if ratio := cfg.GetFloat("server.ratio"); ratio != 0.5 {
			t.Errorf("Expected ratio 0.5, got %v", ratio)
		}
		if workers := cfg.GetInt("server.workers"); workers != 4 {
			t.Errorf("Expected 4 workers merged into server, got %d", workers)
		}

		features := cfg.GetStringSlice("server.features")
		expectedFeatures := []string{"auth", "logging", "metrics"}
		if len(features) != len(expectedFeatures) {
			t.Fatalf("Expected %d features, got %d", len(expectedFeatures), len(features))
		}
		for i, feature := range features {
			if feature != expectedFeatures[i] {
				t.Errorf("Expected feature '%s', got '%s'", expectedFeatures[i], feature)
			}
		}
	})

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "app.toml", "[database]\nhost = \"localhost\"\nport = 5432\n"))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "app.yaml", "database:\n  host: localhost\n  port: 5432\n"))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nonexistent.kfg"))
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("Expected %s, got %v", mdwerror.CodeMissingConfig, err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("Expected %s, got %v", mdwerror.CodeInvalidInput, err)
		}
	})
}

func TestLoadKFGSyntaxError(t *testing.T) {
	_, err := Load(writeFile(t, "bad.kfg", "a = [1, 2\n"))
	if err == nil {
		t.Fatal("Expected error for invalid kfg file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeKFGSyntax) {
		t.Errorf("Expected %s, got %s", mdwerror.CodeKFGSyntax, mdwerror.GetCode(err))
	}
	if !errors.Is(err, parser.ErrMissingToken) {
		t.Errorf("Expected MissingToken in chain, got %v", err)
	}
}

func TestGetNull(t *testing.T) {
	cfg, err := LoadFromString(kfgContent, FormatKFG)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	value, ok := cfg.Get("proxy")
	if !ok || value != nil {
		t.Errorf("Expected present nil value, got %v (present=%v)", value, ok)
	}
	if !cfg.Has("proxy") {
		t.Error("Expected proxy to exist")
	}
	if cfg.Has("database.host.name") {
		t.Error("Expected path through a string to be missing")
	}
	if host := cfg.GetString("proxy", "direct"); host != "direct" {
		t.Errorf("Expected default for null, got %q", host)
	}
}

func TestEnvironmentVariables(t *testing.T) {
	path := writeFile(t, "app.kfg", "database::host = 'localhost'\ndatabase::port = 5432\n")

	t.Setenv("DATABASE_HOST", "production-db")
	t.Setenv("APP_DATABASE_PORT", "3306")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if host := cfg.GetString("database.host"); host != "production-db" {
		t.Errorf("Expected host 'production-db' from env var, got '%s'", host)
	}
	if port := cfg.GetInt("database.port"); port != 5432 {
		t.Errorf("Expected unprefixed lookup to ignore APP_DATABASE_PORT, got %d", port)
	}

	prefixed, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: "app"})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if port := prefixed.GetInt("database.port"); port != 3306 {
		t.Errorf("Expected port 3306 from env var, got %d", port)
	}

	if v, ok := prefixed.Resolve("database.port"); !ok || v != "3306" {
		t.Errorf("Expected Resolve to return \"3306\", got %v (%v)", v, ok)
	}
	if v, ok := prefixed.Get("database.port"); !ok || v != int64(5432) {
		t.Errorf("Expected Get to ignore env and return 5432, got %v (%v)", v, ok)
	}
	if _, ok := prefixed.Resolve("database.user"); ok {
		t.Error("Expected Resolve to miss unknown key")
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(writeFile(t, "app.kfg", "database::host = 'localhost'\n"), LoadOptions{
		Format:   FormatAuto,
		Defaults: map[string]interface{}{"mode": "dev", "database": "replaced"},
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if mode := cfg.GetString("mode"); mode != "dev" {
		t.Errorf("Expected default mode 'dev', got '%s'", mode)
	}
	if host := cfg.GetString("database.host"); host != "localhost" {
		t.Errorf("Expected file value to win over default, got '%s'", host)
	}
	if port := cfg.GetInt("database.port", 5432); port != 5432 {
		t.Errorf("Expected default port 5432, got %d", port)
	}
	if timeout := cfg.GetDuration("server.timeout", 30*time.Second); timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", timeout)
	}
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString("database::host = 'localhost'", FormatKFG)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	if cfg.Has("database.port") {
		t.Error("Expected database.port to not exist")
	}

	cfg.Set("database.port", 5432)
	if port := cfg.GetInt("database.port"); port != 5432 {
		t.Errorf("Expected port 5432 after Set, got %d", port)
	}

	cfg.Set("database.host.name", "db")
	if value := cfg.GetString("database.host.name"); value != "db" {
		t.Errorf("Expected scalar replaced by nested value, got '%s'", value)
	}
}

func TestGetAllIsCopy(t *testing.T) {
	cfg, err := LoadFromString("a::b = [1, 2]", FormatKFG)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	all := cfg.GetAll()
	inner := all["a"].(map[string]interface{})
	inner["b"].([]interface{})[0] = int64(99)
	inner["c"] = true

	if cfg.Has("a.c") {
		t.Error("Expected GetAll result to be detached")
	}
	if got := cfg.GetStringSlice("a.b"); got[0] != "1" {
		t.Errorf("Expected original element '1', got '%s'", got[0])
	}
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"kfg", "database::host = 'localhost'", FormatKFG},
		{"TOML", "[database]\nhost = \"localhost\"\n", FormatTOML},
		{"YAML", "database:\n  host: localhost\n", FormatYAML},
		{"auto defaults to TOML", "[database]\nhost = \"localhost\"\n", FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("Failed to load config from string: %v", err)
			}
			if host := cfg.GetString("database.host"); host != "localhost" {
				t.Errorf("Expected host 'localhost', got '%s'", host)
			}
		})
	}

	_, err := LoadFromString("a = ", FormatKFG)
	if !mdwerror.HasCode(err, mdwerror.CodeKFGSyntax) {
		t.Errorf("Expected %s, got %v", mdwerror.CodeKFGSyntax, err)
	}
	_, err = LoadFromString("a = [", FormatTOML)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Expected %s, got %v", mdwerror.CodeInvalidFormat, err)
	}
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"config.kfg", FormatKFG},
		{"CONFIG.KFG", FormatKFG},
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.txt", FormatTOML},
		{"config", FormatTOML},
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			if format := detectFormat(test.filename); format != test.expected {
				t.Errorf("Expected format %v for %s, got %v", test.expected, test.filename, format)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "config")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "app.toml"), []byte("source = \"toml\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "app.kfg"), []byte("source = 'kfg'\n"), 0644); err != nil {
		t.Fatal(err)
	}

	options := DiscoveryOptions{
		Paths:     []string{dir, nested},
		Filenames: []string{"app"},
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if source := cfg.GetString("source"); source != "kfg" {
		t.Errorf("Expected .kfg to be preferred, got '%s'", source)
	}

	if n := len(ListPossibleConfigFiles(options)); n != 8 {
		t.Errorf("Expected 8 candidates, got %d", n)
	}

	_, err = FindConfigFile(DiscoveryOptions{Paths: []string{t.TempDir()}})
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Expected %s, got %v", mdwerror.CodeMissingConfig, err)
	}
}

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, "app.kfg", "level = 1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	changed := make(chan *Config, 1)
	cfg.OnChange(func(_, updated *Config) { changed <- updated })

	if err := cfg.Watch(10 * time.Millisecond); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Error("Expected config to be watching")
	}

	if err := os.WriteFile(path, []byte("level = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case updated := <-changed:
		if level := updated.GetInt("level"); level != 2 {
			t.Errorf("Expected reloaded level 2, got %d", level)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}

	if level := cfg.GetInt("level"); level != 2 {
		t.Errorf("Expected level 2 after reload, got %d", level)
	}

	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("Expected watching to stop")
	}
}

func TestWatchRequiresFile(t *testing.T) {
	cfg, _ := LoadFromString("a = 1", FormatKFG)
	if err := cfg.Watch(0); err == nil {
		t.Error("Expected error watching a config without a file")
	}
}

func BenchmarkGetString(b *testing.B) {
	cfg, err := LoadFromString(kfgContent, FormatKFG)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("database.host")
	}
}
