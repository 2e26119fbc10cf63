// File: parser.go
// Title: kfg Parser
// Description: Recursive-descent parser over a filtered token stream. The
//              document driver accumulates scope paths and binds values
//              through ast.Merge.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/foundation/kfg/token"
	"github.com/felpofo/kfg/foundation/kfg/trace"
)

// Option configures a Parser
type Option func(*Parser)

// WithTracer sends parser events to t
func WithTracer(t trace.Tracer) Option {
	return func(p *Parser) {
		p.tracer = trace.Or(t)
	}
}

// Parser consumes one token stream. It is not reusable.
type Parser struct {
	tokens []token.Token
	pos    int
	tracer trace.Tracer

	// scope holds the keys of pending "key::" statements
	scope []string
	doc   *ast.Document
}

// New creates a parser over filtered tokens
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		tracer: trace.Nop{},
		doc:    ast.NewDocument(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete document from filtered tokens
func Parse(tokens []token.Token, opts ...Option) (*ast.Document, error) {
	return New(tokens, opts...).Parse()
}

// ParseValue parses a single value. Newlines around the value are allowed,
// anything else after it is an error.
func ParseValue(tokens []token.Token, opts ...Option) (ast.Node, error) {
	p := New(tokens, opts...)
	p.skip(token.NewLine)

	value, err := p.value()
	if err != nil {
		return nil, err
	}

	p.skip(token.NewLine)
	if tok, ok := p.next(); ok {
		return nil, unexpected(tok)
	}
	return value, nil
}

// Parse runs the document driver
func (p *Parser) Parse() (*ast.Document, error) {
	for {
		tok, ok := p.next()
		if !ok {
			break
		}

		switch tok.Kind {
		case token.NewLine:
			continue
		case token.Symbol:
			if err := p.statement(tok); err != nil {
				return nil, err
			}
		default:
			return nil, unexpected(tok)
		}
	}

	if len(p.scope) > 0 {
		err := &Error{Kind: UnexpectedEOF, Text: strings.Join(p.scope, "::") + "::"}
		if last, ok := p.last(); ok {
			err.Token = &last
		}
		return nil, err
	}

	return p.doc, nil
}

func (p *Parser) peek() (token.Token, bool) {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) (token.Token, bool) {
	if p.pos+offset >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos+offset], true
}

func (p *Parser) next() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *Parser) peekIs(kind token.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

// last returns the most recently consumed token
func (p *Parser) last() (token.Token, bool) {
	if p.pos == 0 || p.pos > len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos-1], true
}

func (p *Parser) skip(kinds ...token.Kind) {
	for {
		tok, ok := p.peek()
		if !ok || !tok.Is(kinds...) {
			return
		}
		p.pos++
	}
}

// eof builds an UnexpectedEOF error pointing at the last consumed token
func (p *Parser) eof(text string) *Error {
	err := &Error{Kind: UnexpectedEOF, Text: text}
	if last, ok := p.last(); ok {
		err.Token = &last
	}
	return err
}

func (p *Parser) event(message string, tok *token.Token, fields map[string]interface{}) {
	p.tracer.Record(trace.Event{Stage: trace.StageParse, Message: message, Token: tok, Fields: fields})
}

// statement parses what follows a top-level key
func (p *Parser) statement(key token.Token) error {
	op, ok := p.next()
	if !ok {
		return &Error{Kind: UnexpectedEOF, Token: &key, Text: key.Text}
	}

	switch op.Kind {
	case token.Equals:
		if nxt, ok := p.peek(); !ok || nxt.Kind == token.NewLine {
			return &Error{Kind: MissingValueAfterDeclaration, Token: &key, Text: key.Text}
		}
		value, err := p.value()
		if err != nil {
			return err
		}
		p.bind(key, value)
		return nil

	case token.Colon:
		second, ok := p.next()
		if !ok {
			return &Error{Kind: UnexpectedEOF, Token: &op, Text: key.Text + ":"}
		}
		if second.Kind != token.Colon {
			return mismatched(second, token.Colon)
		}
		p.scope = append(p.scope, key.Text)
		p.event("scope pushed", &key, map[string]interface{}{"scope": strings.Join(p.scope, "::")})
		return nil

	default:
		return mismatched(op, token.Equals)
	}
}

// bind stores value under the pending scope path plus key and clears the
// path
func (p *Parser) bind(key token.Token, value ast.Node) {
	path := append(p.scope, key.Text)
	p.scope = nil

	p.doc.Upsert(path, value)
	p.event("value bound", &key, map[string]interface{}{
		"path": strings.Join(path, "::"),
		"kind": value.Kind().String(),
	})
}

// value parses one value starting at the next token
func (p *Parser) value() (ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.eof("")
	}

	switch tok.Kind {
	case token.Symbol:
		return p.literal(tok)
	case token.Quote:
		return p.str(tok)
	case token.OpenBracket:
		return p.array(tok)
	case token.OpenCurly:
		return p.dict(tok)
	default:
		return nil, unexpected(tok)
	}
}

// literal glues "Symbol . Symbol" once and resolves the text
func (p *Parser) literal(first token.Token) (ast.Node, error) {
	text := first.Text

	if p.peekIs(token.Dot) {
		if frac, ok := p.peekAt(1); ok && frac.Kind == token.Symbol {
			p.pos += 2
			text += "." + frac.Text
		}
	}

	node, ok := ResolveLiteral(text)
	if !ok {
		err := newError(InvalidSymbol, first)
		err.Text = text
		return nil, err
	}
	return node, nil
}

// ResolveLiteral maps bare text to null, a bool, an integer or a float, in
// that order of preference
func ResolveLiteral(text string) (ast.Node, bool) {
	switch text {
	case "true":
		return ast.Bool(true), true
	case "false":
		return ast.Bool(false), true
	case "null":
		return ast.Null{}, true
	}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ast.Integer(i), true
	}

	if !decimal(text) {
		return nil, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return ast.Float(f), true
	}
	return nil, false
}

// decimal rejects the Go-only float forms strconv accepts: digit
// separators and hexadecimal mantissas
func decimal(text string) bool {
	if strings.Contains(text, "_") {
		return false
	}
	unsigned := strings.TrimLeft(text, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// str parses the body and closing quote of a string
func (p *Parser) str(open token.Token) (ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newError(UnclosedString, open)
	}

	var text string
	switch tok.Kind {
	case token.Quote:
		return ast.String(""), nil
	case token.NewLine:
		return nil, newError(BrokenString, tok)
	case token.Symbol:
		text = tok.Text
	default:
		return nil, mismatched(tok, token.Symbol)
	}

	closing, ok := p.next()
	if !ok {
		return nil, newError(UnclosedString, open)
	}
	switch closing.Kind {
	case token.Quote:
		return ast.String(text), nil
	case token.NewLine:
		return nil, newError(BrokenString, closing)
	default:
		return nil, mismatched(closing, token.Quote)
	}
}

func isSeparator(tok token.Token) bool {
	return tok.Is(token.NewLine, token.Space, token.Tab, token.Comma)
}

func startsValue(tok token.Token) bool {
	return tok.Is(token.Symbol, token.Quote, token.OpenBracket, token.OpenCurly)
}

// array parses values up to the closing bracket
func (p *Parser) array(open token.Token) (ast.Node, error) {
	arr := ast.Array{}

	for {
		tok, ok := p.peek()
		switch {
		case !ok:
			err := newError(MissingToken, open)
			err.Expected = token.CloseBracket
			return nil, err

		case isSeparator(tok):
			p.pos++

		case tok.Kind == token.CloseBracket:
			p.pos++
			return arr, nil

		case startsValue(tok):
			item, err := p.value()
			if err != nil {
				return nil, err
			}
			arr = append(arr, item)

		default:
			p.pos++
			return nil, unexpected(tok)
		}
	}
}

// dict parses ".key: value" entries up to the closing brace
func (p *Parser) dict(open token.Token) (ast.Node, error) {
	dict := ast.Dict{}

	for {
		tok, ok := p.peek()
		switch {
		case !ok:
			err := newError(MissingToken, open)
			err.Expected = token.CloseCurly
			return nil, err

		case isSeparator(tok):
			p.pos++

		case tok.Kind == token.CloseCurly:
			p.pos++
			return dict, nil

		case tok.Kind == token.Dot:
			p.pos++
			key, value, err := p.entry(tok)
			if err != nil {
				return nil, err
			}
			dict[key] = value

		default:
			p.pos++
			return nil, unexpected(tok)
		}
	}
}

// entry parses "key: value" after the leading dot of a dict entry
func (p *Parser) entry(dot token.Token) (string, ast.Node, error) {
	key, ok := p.next()
	if !ok {
		return "", nil, &Error{Kind: UnexpectedEOF, Token: &dot}
	}
	if key.Kind != token.Symbol {
		return "", nil, mismatched(key, token.Symbol)
	}

	colon, ok := p.next()
	if !ok {
		return "", nil, &Error{Kind: UnexpectedEOF, Token: &key, Text: key.Text}
	}
	if colon.Kind != token.Colon {
		return "", nil, mismatched(colon, token.Colon)
	}

	if nxt, ok := p.peek(); ok && nxt.Kind == token.Colon {
		return "", nil, newError(ScopeInsideDict, nxt)
	}

	value, err := p.value()
	if err != nil {
		return "", nil, err
	}

	if nxt, ok := p.peek(); ok && nxt.Kind == token.Colon {
		return "", nil, newError(ScopeInsideDict, nxt)
	}

	return key.Text, value, nil
}
