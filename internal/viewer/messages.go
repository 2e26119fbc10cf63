// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     viewer
// Description: Message types for async operations in the viewer
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package viewer

import (
	"time"

	"github.com/felpofo/kfg/foundation/kfg/ast"
)

// docLoadedMsg is sent when the file has been read and parsed
type docLoadedMsg struct {
	src []byte
	doc *ast.Document
	err error
	at  time.Time
}

// watchClosedMsg is sent when the update channel is closed; err is set when
// the watcher stopped on a failure
type watchClosedMsg struct {
	err error
}
