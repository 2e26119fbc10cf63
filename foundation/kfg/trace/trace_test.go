package trace

import (
	"bytes"
	"strings"
	"testing"

	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg/token"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Record(Event{Stage: StageFilter, Message: "first"})
	r.Record(Event{Stage: StageParse, Message: "second"})

	got := r.Messages()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Unexpected messages %v", got)
	}

	events := r.Events()
	if events[0].Stage != StageFilter || events[1].Stage != StageParse {
		t.Errorf("Expected filter then parse stages, got %s and %s", events[0].Stage, events[1].Stage)
	}
}

func TestFromLogger(t *testing.T) {
	tok := token.New(token.Symbol, "abc", token.Position{Line: 2, Character: 0, Length: 3})

	tests := []struct {
		name     string
		level    mdwlog.Level
		expected bool
	}{
		{"trace enabled", mdwlog.LevelTrace, true},
		{"trace disabled", mdwlog.LevelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := mdwlog.NewWithConfig(mdwlog.Config{Level: tt.level, Format: mdwlog.FormatLogfmt, Output: &buf})

			FromLogger(logger).Record(Event{Stage: StageParse, Message: "bound", Token: &tok, Fields: map[string]interface{}{"path": "a::b"}})

			out := buf.String()
			if (out != "") != tt.expected {
				t.Fatalf("Expected output=%v, got %q", tt.expected, out)
			}
			if tt.expected {
				for _, want := range []string{`stage="parse"`, `path="a::b"`, `token="Symbol(\"abc\") 2:0-3"`} {
					if !strings.Contains(out, want) {
						t.Errorf("Expected %s in %q", want, out)
					}
				}
			}
		})
	}
}

func TestOr(t *testing.T) {
	if _, ok := Or(nil).(Nop); !ok {
		t.Error("Expected Nop for nil tracer")
	}
	r := &Recorder{}
	if Or(r) != r {
		t.Error("Expected tracer to be returned unchanged")
	}
	if _, ok := FromLogger(nil).(Nop); !ok {
		t.Error("Expected Nop for nil logger")
	}
}
