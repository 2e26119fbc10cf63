package token

import (
	"errors"
	"testing"
)

func TestKindOfIsBijective(t *testing.T) {
	for k := Dot; k <= BackSlash; k++ {
		c := k.Char()
		if c == 0 {
			t.Fatalf("Expected a byte for %s", k)
		}
		if got := KindOf(c); got != k {
			t.Errorf("KindOf(%q) = %s, expected %s", c, got, k)
		}
	}
}

func TestKindOfSymbolBytes(t *testing.T) {
	for _, b := range []byte{'a', 'Z', '0', '-', '+', '"', '\r', '#', 0x00, 0xC3, 0xFF} {
		if got := KindOf(b); got != Symbol {
			t.Errorf("KindOf(%q) = %s, expected Symbol", b, got)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Symbol, "Symbol"},
		{NewLine, "NewLine"},
		{BackSlash, "BackSlash"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
	if Symbol.Char() != 0 {
		t.Error("Symbol should not map to a byte")
	}
	if Symbol.IsPunctuation() || !Comma.IsPunctuation() {
		t.Error("IsPunctuation() misclassified a kind")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Character: 7, Length: 4}
	if p.String() != "3:7-4" {
		t.Errorf("Expected 3:7-4, got %s", p.String())
	}
	if p.End() != 11 {
		t.Errorf("Expected end 11, got %d", p.End())
	}
}

func TestMerge(t *testing.T) {
	a := New(Symbol, "abc", Position{Line: 1, Character: 1, Length: 3})
	b := New(Symbol, "\n", Position{Line: 1, Character: 4, Length: 2})

	merged, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if merged.Text != "abc\n" {
		t.Errorf("Expected text %q, got %q", "abc\n", merged.Text)
	}
	expected := Position{Line: 1, Character: 1, Length: 5}
	if merged.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, merged.Position)
	}
}

func TestMergeRejectsPunctuation(t *testing.T) {
	sym := New(Symbol, "x", Position{Line: 1, Length: 1})
	dot := Punct(Dot, 1, 1)

	tests := []struct {
		name string
		a, b Token
	}{
		{"punctuation first", dot, sym},
		{"punctuation second", sym, dot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Merge(tt.a, tt.b); !errors.Is(err, ErrNotSymbol) {
				t.Errorf("Expected ErrNotSymbol, got %v", err)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	if got := New(Symbol, "abc", Position{1, 0, 3}).String(); got != `Symbol("abc") 1:0-3` {
		t.Errorf("Unexpected symbol rendering %q", got)
	}
	if got := Punct(Equals, 2, 4).String(); got != "Equals 2:4-1" {
		t.Errorf("Unexpected punctuation rendering %q", got)
	}
}
