// File: kfg_test.go
// Title: kfg Engine Tests
// Description: End-to-end parsing, file reading, error classification and
//              diagnostics.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package kfg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/foundation/kfg/parser"
	"github.com/felpofo/kfg/foundation/kfg/token"
	"github.com/felpofo/kfg/foundation/kfg/trace"
)

const sample = `// service settings
name = 'kfg'
version::major = 1
version::minor = 2
flags = [true, false, null]
/* limits */
limits = { .cpu: 2, .mem: 512.5 }
`

func TestParseEndToEnd(t *testing.T) {
	doc, err := ParseString(sample)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	expected := ast.Dict{
		"name":    ast.String("kfg"),
		"version": ast.Dict{"major": ast.Integer(1), "minor": ast.Integer(2)},
		"flags":   ast.Array{ast.Bool(true), ast.Bool(false), ast.Null{}},
		"limits":  ast.Dict{"cpu": ast.Integer(2), "mem": ast.Float(512.5)},
	}
	if !ast.Equal(doc.Root, expected) {
		t.Errorf("Expected %s, got %s", ast.Formatter{}.Inline(expected), doc.Inline())
	}
	if doc.Assignments() != 8 {
		t.Errorf("Expected 8 assignments, got %d", doc.Assignments())
	}
}

func TestParseIsRepeatable(t *testing.T) {
	first, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, _ := Parse([]byte(sample))
	if !first.Equal(second) {
		t.Error("Expected identical documents from identical input")
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.kfg")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got, _ := doc.Lookup("version", "minor"); !ast.Equal(got, ast.Integer(2)) {
		t.Errorf("Expected version.minor = 2, got %v", got)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.kfg"))
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeKFGIO) {
		t.Errorf("Expected code %s, got %s", mdwerror.CodeKFGIO, mdwerror.GetCode(err))
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
	if IsSyntaxError(err) {
		t.Error("I/O failure reported as syntax error")
	}
}

func TestReadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.kfg")
	if err := os.WriteFile(path, []byte("a = nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if !IsSyntaxError(err) {
		t.Fatalf("Expected syntax error, got %v", err)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeKFGSyntax) {
		t.Errorf("Expected code %s, got %s", mdwerror.CodeKFGSyntax, mdwerror.GetCode(err))
	}
	if !errors.Is(err, parser.ErrInvalidSymbol) {
		t.Errorf("Expected InvalidSymbol in chain, got %v", err)
	}

	var merr *mdwerror.Error
	if errors.As(err, &merr) && merr.Details()["path"] != path {
		t.Errorf("Expected path detail %q, got %v", path, merr.Details()["path"])
	}
}

func TestTokens(t *testing.T) {
	raw, filtered := NewEngine(Options{}).Tokens([]byte("a = 1 // x\n"))

	if len(raw) != 11 {
		t.Errorf("Expected 11 raw tokens, got %d: %v", len(raw), raw)
	}

	kinds := []token.Kind{token.Symbol, token.Equals, token.Symbol}
	if len(filtered) != len(kinds) {
		t.Fatalf("Expected %d filtered tokens, got %v", len(kinds), filtered)
	}
	for i, k := range kinds {
		if filtered[i].Kind != k {
			t.Errorf("Token %d: expected %s, got %s", i, k, filtered[i].Kind)
		}
	}
}

func TestEngineLogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	if _, err := NewEngine(Options{Logger: logger}).ParseString("a = 1"); err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"kfg.Parse checkpoint: tokenize", "kfg.Parse checkpoint: filter", "kfg.Parse completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output:\n%s", want, out)
		}
	}
}

func TestEngineTracer(t *testing.T) {
	rec := &trace.Recorder{}
	engine := NewEngine(Options{Tracer: rec})

	if _, err := engine.ParseString("a = 'x\\q'"); err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	var stages []trace.Stage
	for _, e := range rec.Events() {
		stages = append(stages, e.Stage)
	}
	if len(stages) != 2 || stages[0] != trace.StageFilter || stages[1] != trace.StageParse {
		t.Errorf("Expected filter then parse events, got %v", rec.Messages())
	}
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "invalid symbol",
			src:      "a = 1\nb = nope\n",
			expected: "line 2, character 4: invalid symbol \"nope\"\n  b = nope\n      ^^^^",
		},
		{
			name:     "tab indentation",
			src:      "x = [\n\t=\n]",
			expected: "line 2, character 1: unexpected Equals\n  \t=\n  \t^",
		},
		{
			name:     "newline token",
			src:      "s = 'ab\ncd'",
			expected: "line 1, character 7: string broken by a newline\n  s = 'ab\n         ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if got := Diagnose([]byte(tt.src), err); got != tt.expected {
				t.Errorf("Expected:\n%s\ngot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestDiagnoseOtherErrors(t *testing.T) {
	if got := Diagnose(nil, nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}

	plain := errors.New("boom")
	if got := Diagnose(nil, plain); got != "boom" {
		t.Errorf("Expected %q, got %q", "boom", got)
	}

	noPos := &parser.Error{Kind: parser.UnclosedString}
	if got := Diagnose(nil, noPos); got != "unclosed string" {
		t.Errorf("Expected %q, got %q", "unclosed string", got)
	}
}
