// File: kfg.go
// Title: kfg Engine
// Description: Runs tokenize, filter and parse over a source buffer or a
//              file and returns the document.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package kfg

import (
	"errors"
	"os"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/foundation/kfg/lexer"
	"github.com/felpofo/kfg/foundation/kfg/parser"
	"github.com/felpofo/kfg/foundation/kfg/token"
	"github.com/felpofo/kfg/foundation/kfg/trace"
)

// Options configures an Engine. A nil Logger discards stage logs, a nil
// Tracer drops lexer and parser events.
type Options struct {
	Logger *mdwlog.Logger
	Tracer trace.Tracer
}

// Engine parses kfg sources. It holds no per-parse state and is safe for
// concurrent use.
type Engine struct {
	logger *mdwlog.Logger
	tracer trace.Tracer
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Engine{
		logger: logger,
		tracer: trace.Or(opts.Tracer),
	}
}

var defaultEngine = NewEngine(Options{})

// Tokens returns the raw and the filtered token stream of src
func (e *Engine) Tokens(src []byte) (raw, filtered []token.Token) {
	raw = lexer.Tokenize(src)
	filtered = lexer.Filter(raw, lexer.WithTracer(e.tracer))
	return raw, filtered
}

// Parse parses a complete document. Syntax failures are returned as
// *parser.Error.
func (e *Engine) Parse(src []byte) (*ast.Document, error) {
	timer := e.logger.StartTimer("kfg.Parse").WithField("bytes", len(src))

	raw := lexer.Tokenize(src)
	timer.Checkpoint("tokenize", mdwlog.Int("tokens", len(raw)))

	filtered := lexer.Filter(raw, lexer.WithTracer(e.tracer))
	timer.Checkpoint("filter", mdwlog.Int("tokens", len(filtered)))

	doc, err := parser.Parse(filtered, parser.WithTracer(e.tracer))
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("assignments", doc.Assignments()).Stop()
	return doc, nil
}

// ParseString parses a document held in a string
func (e *Engine) ParseString(src string) (*ast.Document, error) {
	return e.Parse([]byte(src))
}

// Read loads and parses the file at path. I/O failures carry
// mdwerror.CodeKFGIO, syntax failures mdwerror.CodeKFGSyntax wrapping the
// *parser.Error.
func (e *Engine) Read(path string) (*ast.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read kfg file").
			WithCode(mdwerror.CodeKFGIO).
			WithOperation("kfg.Read").
			WithDetail("path", path)
	}

	e.logger.Debug("Read kfg file", mdwlog.String("path", path), mdwlog.Int("bytes", len(src)))

	doc, err := e.Parse(src)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse kfg file").
			WithCode(mdwerror.CodeKFGSyntax).
			WithOperation("kfg.Read").
			WithDetail("path", path)
	}
	return doc, nil
}

// Parse parses src with a silent engine
func Parse(src []byte) (*ast.Document, error) {
	return defaultEngine.Parse(src)
}

// ParseString parses a string with a silent engine
func ParseString(src string) (*ast.Document, error) {
	return defaultEngine.ParseString(src)
}

// Read reads and parses a file with a silent engine
func Read(path string) (*ast.Document, error) {
	return defaultEngine.Read(path)
}

// IsSyntaxError reports whether err contains a parse error
func IsSyntaxError(err error) bool {
	var perr *parser.Error
	return errors.As(err, &perr)
}
