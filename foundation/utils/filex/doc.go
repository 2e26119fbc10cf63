// Package filex provides the file helpers shared by the kfg tools.
//
// Package: filex
// Title: File Utilities
// Description: Existence checks, size formatting and atomic file replacement.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers kfg uses
//
// Usage:
//
//	if filex.IsFile("config.kfg") {
//	    ...
//	}
//
//	// readers of out.json see either the old or the new content
//	err := filex.WriteAtomic("out.json", data, 0644)
package filex
