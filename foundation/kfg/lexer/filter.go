// File: filter.go
// Title: kfg Token Filter
// Description: Removes comments and insignificant whitespace from a raw token
//              stream and assembles quoted strings, resolving escapes.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"unicode/utf8"

	"github.com/felpofo/kfg/foundation/kfg/token"
	"github.com/felpofo/kfg/foundation/kfg/trace"
)

// Option configures Filter
type Option func(*filter)

// WithTracer sends filter events to t
func WithTracer(t trace.Tracer) Option {
	return func(f *filter) {
		f.tracer = trace.Or(t)
	}
}

type filter struct {
	tokens []token.Token
	pos    int
	out    []token.Token
	tracer trace.Tracer
}

// Filter returns the semantically relevant tokens of a raw stream
func Filter(tokens []token.Token, opts ...Option) []token.Token {
	f := &filter{
		tokens: tokens,
		out:    make([]token.Token, 0, len(tokens)),
		tracer: trace.Nop{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f.run()
}

func (f *filter) peek() (token.Token, bool) {
	if f.pos >= len(f.tokens) {
		return token.Token{}, false
	}
	return f.tokens[f.pos], true
}

func (f *filter) next() (token.Token, bool) {
	tok, ok := f.peek()
	if ok {
		f.pos++
	}
	return tok, ok
}

func (f *filter) peekIs(kind token.Kind) bool {
	tok, ok := f.peek()
	return ok && tok.Kind == kind
}

func (f *filter) event(message string, tok *token.Token) {
	f.tracer.Record(trace.Event{Stage: trace.StageFilter, Message: message, Token: tok})
}

func (f *filter) run() []token.Token {
	for {
		tok, ok := f.next()
		if !ok {
			return f.out
		}

		switch tok.Kind {
		case token.Slash:
			switch {
			case f.peekIs(token.Slash):
				f.lineComment()
			case f.peekIs(token.Asterisk):
				f.next()
				f.blockComment(tok)
			default:
				f.out = append(f.out, tok)
			}

		case token.Quote:
			f.out = append(f.out, tok)
			f.quoted(tok)

		case token.Space, token.Tab:
			// insignificant outside strings

		default:
			f.out = append(f.out, tok)
		}
	}
}

// lineComment drops everything through the next newline
func (f *filter) lineComment() {
	for {
		tok, ok := f.next()
		if !ok || tok.Kind == token.NewLine {
			return
		}
	}
}

// blockComment drops everything through the first "*/". The opening "/*"
// has already been consumed, so its asterisk cannot close the comment.
func (f *filter) blockComment(open token.Token) {
	for {
		tok, ok := f.next()
		if !ok {
			f.event("unterminated block comment", &open)
			return
		}
		if tok.Kind == token.Asterisk && f.peekIs(token.Slash) {
			f.next()
			if f.peekIs(token.NewLine) {
				f.next()
			}
			return
		}
	}
}

// quoted collects a string body after its opening quote. The body and, if
// present, the closing quote are appended to the output. A newline is left
// in the stream for the parser to report.
func (f *filter) quoted(open token.Token) {
	body := token.New(token.Symbol, "", token.Position{
		Line:      open.Position.Line,
		Character: open.Position.End(),
	})

	for {
		tok, ok := f.peek()
		if !ok {
			f.event("unterminated string", &open)
			f.out = append(f.out, body)
			return
		}

		switch tok.Kind {
		case token.Quote:
			f.next()
			f.out = append(f.out, body, tok)
			return

		case token.NewLine:
			f.event("string broken by newline", &tok)
			f.out = append(f.out, body)
			return

		case token.BackSlash:
			f.next()
			if escaped, ok := f.peek(); ok && escaped.Kind != token.NewLine {
				f.next()
				body = f.absorb(body, f.escape(tok, escaped))
			}

		default:
			f.next()
			body = f.absorb(body, token.New(token.Symbol, tok.Text, tok.Position))
		}
	}
}

// escape resolves the token following a backslash into a Symbol covering
// both source tokens
func (f *filter) escape(backslash, escaped token.Token) token.Token {
	pos := backslash.Position
	pos.Length += escaped.Position.Length

	var text string
	switch escaped.Kind {
	case token.BackSlash:
		text = `\`
	case token.Quote:
		text = `'`
	case token.Symbol:
		if escaped.Text == "" {
			break
		}
		rest := escaped.Text[1:]
		switch escaped.Text[0] {
		case 'r':
			text = "\r" + rest
		case 'n':
			text = "\n" + rest
		case 't':
			text = "\t" + rest
		default:
			f.event("unknown escape sequence", &escaped)
			_, size := utf8.DecodeRuneInString(escaped.Text)
			text = escaped.Text[size:]
		}
	default:
		f.event("unknown escape sequence", &escaped)
	}

	return token.New(token.Symbol, text, pos)
}

func (f *filter) absorb(body, piece token.Token) token.Token {
	merged, err := token.Merge(body, piece)
	if err != nil {
		f.event(err.Error(), &piece)
		return body
	}
	return merged
}
