package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/felpofo/kfg/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{" info ", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"", mdwlog.LevelWarn},
		{"verbose", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Format
	}{
		{"json", mdwlog.FormatJSON},
		{"text", mdwlog.FormatText},
		{"console", mdwlog.FormatConsole},
		{"logfmt", mdwlog.FormatLogfmt},
		{"xml", mdwlog.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName:   "kfg",
		Level:         "info",
		Format:        "json",
		Output:        &buf,
		CorrelationID: "run-1",
	})

	logger.Debug("hidden")
	logger.Info("Parsing", mdwlog.String("file", "app.kfg"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
	for _, want := range []string{`"message":"Parsing"`, `"correlation_id":"run-1"`, `"logger":"kfg"`, `"file":"app.kfg"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestNewLoggerAdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "warn",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Warn("slow file")

	if !strings.Contains(primary.String(), "slow file") {
		t.Errorf("primary output = %q", primary.String())
	}
	if primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if a == b {
		t.Error("correlation ids should differ")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewCorrelationID() = %q, not a uuid: %v", a, err)
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("kfg")
	if cfg.ServiceName != "kfg" || cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if NewSimpleLogger("kfg").GetLevel() != mdwlog.LevelWarn {
		t.Error("simple logger should log at warn")
	}
}

func TestNewLoggerFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "kfg",
		Level:       "trace",
		Format:      "json",
		Output:      &buf,
		Fields:      mdwlog.Fields{"command": "parse"},
		Caller:      true,
	})

	logger.Trace("Tokenizing")

	out := buf.String()
	for _, want := range []string{`"command":"parse"`, `"caller":"factory_test.go:`, `"logger":"kfg"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}

	buf.Reset()
	NewLogger(LoggerConfig{Level: "trace", Format: "json", Output: &buf}).Trace("plain")
	if strings.Contains(buf.String(), `"caller"`) {
		t.Errorf("Expected no caller without Caller, got %s", buf.String())
	}
}
