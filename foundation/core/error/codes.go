// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used to classify failures of the kfg front end and
//              its collaborators (file access, configuration, export, watch).
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with the kfg set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// kfg front end
	CodeKFGIO     Code = "KFG_IO"
	CodeKFGSyntax Code = "KFG_SYNTAX"

	// Collaborators
	CodeKFGConfig Code = "KFG_CONFIG"
	CodeKFGExport Code = "KFG_EXPORT"
	CodeKFGWatch  Code = "KFG_WATCH"

	// Configuration loader
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidFormat Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeKFGIO, CodeKFGSyntax, CodeKFGConfig, CodeKFGExport, CodeKFGWatch,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeKFGIO, CodeNotFound:
		return "io"
	case CodeKFGSyntax, CodeInvalidInput:
		return "syntax"
	case CodeKFGConfig, CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInvalidFormat:
		return "configuration"
	case CodeKFGExport:
		return "export"
	case CodeKFGWatch:
		return "watch"
	default:
		return "generic"
	}
}

// ExitCode maps an error code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "syntax":
		return 2
	case "io":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}
