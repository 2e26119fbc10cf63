// File: token.go
// Title: kfg Tokens
// Description: Kind, Position and Token types. Each punctuation kind maps to
//              exactly one byte; every other byte belongs to a Symbol.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the lexical class of a token
type Kind int

const (
	Symbol Kind = iota
	Dot
	Comma
	Colon
	Quote
	Slash
	Asterisk
	Space
	Tab
	Equals
	NewLine
	OpenBracket
	CloseBracket
	OpenCurly
	CloseCurly
	BackSlash
)

var kindNames = [...]string{
	Symbol:       "Symbol",
	Dot:          "Dot",
	Comma:        "Comma",
	Colon:        "Colon",
	Quote:        "Quote",
	Slash:        "Slash",
	Asterisk:     "Asterisk",
	Space:        "Space",
	Tab:          "Tab",
	Equals:       "Equals",
	NewLine:      "NewLine",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	OpenCurly:    "OpenCurly",
	CloseCurly:   "CloseCurly",
	BackSlash:    "BackSlash",
}

var kindChars = [...]byte{
	Dot:          '.',
	Comma:        ',',
	Colon:        ':',
	Quote:        '\'',
	Slash:        '/',
	Asterisk:     '*',
	Space:        ' ',
	Tab:          '\t',
	Equals:       '=',
	NewLine:      '\n',
	OpenBracket:  '[',
	CloseBracket: ']',
	OpenCurly:    '{',
	CloseCurly:   '}',
	BackSlash:    '\\',
}

// byteKinds is the inverse of kindChars; zero means Symbol
var byteKinds [256]Kind

func init() {
	for k := Dot; k <= BackSlash; k++ {
		byteKinds[kindChars[k]] = k
	}
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Char returns the byte a punctuation kind stands for. Symbol has no single
// byte and returns 0.
func (k Kind) Char() byte {
	if k <= Symbol || int(k) >= len(kindChars) {
		return 0
	}
	return kindChars[k]
}

// IsPunctuation reports whether k is one of the single-byte kinds
func (k Kind) IsPunctuation() bool {
	return k > Symbol && k <= BackSlash
}

// KindOf classifies a single byte
func KindOf(b byte) Kind {
	return byteKinds[b]
}

// Position locates a token in its source. Line is 1-based, Character is the
// 0-based byte column and Length the number of source bytes covered.
type Position struct {
	Line      int
	Character int
	Length    int
}

// String renders the position as line:character-length
func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d", p.Line, p.Character, p.Length)
}

// End returns the column just past the token
func (p Position) End() int {
	return p.Character + p.Length
}

// Token is a classified slice of source text
type Token struct {
	Kind     Kind
	Text     string
	Position Position
}

// New creates a token
func New(kind Kind, text string, pos Position) Token {
	return Token{Kind: kind, Text: text, Position: pos}
}

// Punct creates a punctuation token at line and character
func Punct(kind Kind, line, character int) Token {
	return Token{
		Kind:     kind,
		Text:     string(kind.Char()),
		Position: Position{Line: line, Character: character, Length: 1},
	}
}

// Is reports whether the token has one of the given kinds
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// String renders the token for dumps, e.g. Symbol("abc") 1:0-3
func (t Token) String() string {
	if t.Kind == Symbol {
		return fmt.Sprintf("Symbol(%q) %s", t.Text, t.Position)
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Position)
}

// ErrNotSymbol is returned when merging a token that is not a Symbol
var ErrNotSymbol = errors.New("only symbol tokens can be merged")

// Merge concatenates two Symbol tokens. The result keeps the position of a
// and covers the source length of both.
func Merge(a, b Token) (Token, error) {
	if a.Kind != Symbol {
		return Token{}, fmt.Errorf("%w: got %s", ErrNotSymbol, a.Kind)
	}
	if b.Kind != Symbol {
		return Token{}, fmt.Errorf("%w: got %s", ErrNotSymbol, b.Kind)
	}

	merged := a
	merged.Text = a.Text + b.Text
	merged.Position.Length = a.Position.Length + b.Position.Length
	return merged, nil
}
