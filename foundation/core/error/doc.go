// Package error provides structured errors for the kfg tooling.
//
// Package: error
// Title: kfg Error Handling
// Description: Structured error type carrying a code, a severity, the failing
//              operation and free-form details. Used by every layer outside the
//              parser core (file reading, configuration, export, watch) so that
//              callers can classify failures without string matching.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the kfg code set, dropped localization fields
//
// Usage:
//   import mdwerror "github.com/felpofo/kfg/foundation/core/error"
//
//   err := mdwerror.Wrap(ioErr, "failed to read kfg file").
//     WithCode(mdwerror.CodeKFGIO).
//     WithOperation("kfg.Read").
//     WithDetail("path", path)
//
//   if mdwerror.HasCode(err, mdwerror.CodeKFGIO) {
//     // file could not be read, not a syntax problem
//   }
package error
