// Package log provides structured logging for the kfg tooling.
//
// Package: log
// Title: kfg Structured Logging
// Description: Leveled, structured logger with contextual fields, four output
//              formats (json, text, console, logfmt), integration with the
//              structured error package and simple operation timers. The kfg
//              parser reaches it only through the trace package, so the core
//              stays usable with logging switched off.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering and user/request context,
//                      deterministic field order in all formats
//
// Usage:
//   import mdwlog "github.com/felpofo/kfg/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatConsole,
//     Output: os.Stderr,
//     Name:   "kfg",
//   })
//
//   logger.Info("Parsing", mdwlog.Fields{"file": path, "tokens": len(tokens)})
//
//   timer := logger.StartTimer("parse")
//   defer timer.Stop()
package log
