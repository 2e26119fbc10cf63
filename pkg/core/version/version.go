// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     version
// Description: Central version management for the kfg tool and libraries
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the kfg components
const (
	// Tool is the version of the kfg command
	Tool = "0.1.0"

	// Syntax is the version of the accepted language
	Syntax = "1.0.0"

	// Foundation is the version of the parser libraries
	Foundation = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/felpofo/kfg/pkg/core/version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "syntax":
		return Syntax
	case "foundation":
		return Foundation
	default:
		return Tool
	}
}

// Info describes the running binary
type Info struct {
	Tool       string `json:"tool"`
	Syntax     string `json:"syntax"`
	Foundation string `json:"foundation"`
	GitCommit  string `json:"git_commit"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Tool:       Tool,
		Syntax:     Syntax,
		Foundation: Foundation,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information on one line
func (i Info) String() string {
	return fmt.Sprintf("kfg %s (syntax %s, foundation %s, commit %s, built %s, %s %s)",
		i.Tool, i.Syntax, i.Foundation, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
