// File: trace.go
// Title: kfg Trace Sink
// Description: Diagnostic events emitted by the filter and the parser. The
//              pipeline only ever talks to the Tracer interface; a Nop tracer
//              produces identical results with no output.
// Author: felpofo
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Typed Stage

// Package trace provides the diagnostic sink used by the kfg pipeline.
package trace

import (
	"sync"

	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg/token"
)

// Stage names the pipeline step that emitted an event
type Stage string

const (
	StageFilter Stage = "filter"
	StageParse  Stage = "parse"
)

// Event is a single diagnostic record
type Event struct {
	Stage   Stage
	Message string
	Token   *token.Token
	Fields  map[string]interface{}
}

// Tracer receives pipeline events
type Tracer interface {
	Record(event Event)
}

// Nop discards every event
type Nop struct{}

// Record implements Tracer
func (Nop) Record(Event) {}

// Func adapts a function to the Tracer interface
type Func func(event Event)

// Record implements Tracer
func (f Func) Record(event Event) {
	f(event)
}

// Recorder keeps every event in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Record implements Tracer
func (r *Recorder) Record(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the recorded messages in order
func (r *Recorder) Messages() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Message
	}
	return out
}

// FromLogger writes events to logger at trace level
func FromLogger(logger *mdwlog.Logger) Tracer {
	if logger == nil {
		return Nop{}
	}
	return &logTracer{logger: logger}
}

type logTracer struct {
	logger *mdwlog.Logger
}

func (t *logTracer) Record(event Event) {
	if !t.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		return
	}

	fields := mdwlog.Fields{"stage": string(event.Stage)}
	if event.Token != nil {
		fields["token"] = event.Token.String()
	}
	for k, v := range event.Fields {
		fields[k] = v
	}
	t.logger.Trace(event.Message, fields)
}

// Or returns t, or Nop when t is nil
func Or(t Tracer) Tracer {
	if t == nil {
		return Nop{}
	}
	return t
}
