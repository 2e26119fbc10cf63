package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/felpofo/kfg/foundation/kfg"
)

func plain() *Printer {
	return New(Options{Output: &bytes.Buffer{}, Color: ColorNever})
}

func TestDocumentPlain(t *testing.T) {
	doc, err := kfg.ParseString("b::c = 'x'\na = [1, 2.5]\nn = null\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	expected := "a = [1, 2.5]\nb = {\n  c: \"x\"\n}\nn = null\n"
	if got := plain().Document(doc); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}

	if got := plain().Inline(doc); got != "{ a: [1, 2.5], b: { c: \"x\" }, n: null }\n" {
		t.Errorf("Unexpected inline rendering %q", got)
	}
}

func TestIndentOption(t *testing.T) {
	doc, _ := kfg.ParseString("a::b = true")
	p := New(Options{Output: &bytes.Buffer{}, Color: ColorNever, Indent: 4})

	if got := p.Document(doc); got != "a = {\n    b: true\n}\n" {
		t.Errorf("Unexpected rendering %q", got)
	}
}

func TestColorModes(t *testing.T) {
	doc, _ := kfg.ParseString("s = 'x'\ni = 1\nb = true\nn = null")

	colored := New(Options{Output: &bytes.Buffer{}, Color: ColorAlways})
	if !colored.Colored() {
		t.Fatal("Expected colored printer")
	}
	out := colored.Document(doc)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Expected ANSI sequences in %q", out)
	}
	for _, want := range []string{`"x"`, "1", "true", "null"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}

	if plain().Colored() {
		t.Error("Expected plain printer for never")
	}
	if strings.Contains(plain().Document(doc), "\x1b[") {
		t.Error("Unexpected ANSI sequences with color disabled")
	}

	// a buffer is not a terminal
	if New(Options{Output: &bytes.Buffer{}}).Colored() {
		t.Error("Expected auto mode to disable color for a buffer")
	}
}

func TestTokens(t *testing.T) {
	_, filtered := kfg.NewEngine(kfg.Options{}).Tokens([]byte("a = 'x y'"))

	lines := strings.Split(strings.TrimSuffix(plain().Tokens(filtered), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != `1:0-1     Symbol       "a"` {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "1:2-1     Equals" {
		t.Errorf("Unexpected second line %q", lines[1])
	}
	if lines[3] != `1:5-3     Symbol       "x y"` {
		t.Errorf("Unexpected string body line %q", lines[3])
	}
}

func TestCheckLines(t *testing.T) {
	p := plain()

	if got := p.OK("app.kfg"); got != "OK   app.kfg\n" {
		t.Errorf("Unexpected OK line %q", got)
	}

	got := p.Failure("bad.kfg", "line 1\n  a = ")
	expected := "FAIL bad.kfg\n     line 1\n       a = \n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	if got := p.Error("no such file"); got != "error: no such file\n" {
		t.Errorf("Unexpected error line %q", got)
	}
}
