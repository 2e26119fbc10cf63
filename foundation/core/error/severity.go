// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity table follows the kfg code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in user input, e.g. a syntax error in a file
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh is a failure of the environment, e.g. an unreadable file
	SeverityHigh

	// SeverityCritical makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeKFGIO, CodeKFGWatch, CodeMissingConfig:
		return SeverityHigh
	case CodeKFGSyntax, CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
