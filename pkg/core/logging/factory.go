// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the CLI's loggers
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	mdwlog "github.com/felpofo/kfg/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// CorrelationID tags every entry; empty generates a new one
	CorrelationID string

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Fields are attached to every entry
	Fields mdwlog.Fields

	// Caller adds the calling file and line to every entry
	Caller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a Foundation logger tagged with a correlation id
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  ParseLevel(cfg.Level),
		Format: ParseFormat(cfg.Format),
		Output: output,
	}).WithName(cfg.ServiceName).WithCorrelationID(correlationID)

	if len(cfg.Fields) > 0 {
		logger = logger.WithFields(cfg.Fields)
	}
	if cfg.Caller {
		logger = logger.WithCaller(0)
	}
	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a random id for one CLI run
func NewCorrelationID() string {
	return uuid.NewString()
}

// ParseLevel converts a string level to mdwlog.Level, falling back to warn
func ParseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return mdwlog.LevelWarn
	}
	return parsed
}

// ParseFormat converts a string format to mdwlog.Format, falling back to
// text
func ParseFormat(format string) mdwlog.Format {
	parsed, err := mdwlog.ParseFormat(strings.TrimSpace(format))
	if err != nil {
		return mdwlog.FormatText
	}
	return parsed
}
