// Package kfg reads kfg configuration documents.
//
// Package: kfg
// Title: kfg Engine
// Description: Entry point that runs the tokenizer, the filter and the
//              parser in order and reports failures with positions. Stage
//              timings go to the configured logger at debug level, lexer
//              and parser events to the configured tracer.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// A kfg document is a sequence of assignments:
//
//	name = 'kfg'            // strings use single quotes
//	port = 8080
//	ratio = 0.75
//	tags = [ 'a', 'b' ]
//	limits = { .cpu: 2, .mem: 512 }
//	server::tls::enabled = true
//
// "key::" opens a scope. The next assignment is stored below every pending
// scope key, and existing dicts along the path are merged, not replaced.
//
// Usage:
//
//	doc, err := kfg.Read("app.kfg")
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, kfg.Diagnose(src, err))
//	}
//	port, _ := doc.Lookup("port")
package kfg
