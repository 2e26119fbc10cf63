// File: errors.go
// Title: kfg Parse Errors
// Description: Error kinds raised by the value grammar and the document
//              driver. Each error carries the offending token or text.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/felpofo/kfg/foundation/kfg/token"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	MissingValueAfterDeclaration ErrorKind = iota + 1
	MissingToken
	MismatchedTokenType
	InvalidToken
	InvalidSymbol
	BrokenString
	UnclosedString
	ScopeInsideDict
	EscapeOutsideOfString
	UnexpectedEOF
	UnreachableToken
)

var errorKindNames = map[ErrorKind]string{
	MissingValueAfterDeclaration: "MissingValueAfterDeclaration",
	MissingToken:                 "MissingToken",
	MismatchedTokenType:          "MismatchedTokenType",
	InvalidToken:                 "InvalidToken",
	InvalidSymbol:                "InvalidSymbol",
	BrokenString:                 "BrokenString",
	UnclosedString:               "UnclosedString",
	ScopeInsideDict:              "ScopeInsideDict",
	EscapeOutsideOfString:        "EscapeOutsideOfString",
	UnexpectedEOF:                "UnexpectedEOF",
	UnreachableToken:             "UnreachableToken",
}

// String returns the kind name
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a parse failure. Token is the offending token when one exists,
// Expected the kind that was required for MissingToken and
// MismatchedTokenType, Text the offending literal or key.
type Error struct {
	Kind     ErrorKind
	Token    *token.Token
	Expected token.Kind
	Text     string
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMissingValueAfterDeclaration = &Error{Kind: MissingValueAfterDeclaration}
	ErrMissingToken                 = &Error{Kind: MissingToken}
	ErrMismatchedTokenType          = &Error{Kind: MismatchedTokenType}
	ErrInvalidToken                 = &Error{Kind: InvalidToken}
	ErrInvalidSymbol                = &Error{Kind: InvalidSymbol}
	ErrBrokenString                 = &Error{Kind: BrokenString}
	ErrUnclosedString               = &Error{Kind: UnclosedString}
	ErrScopeInsideDict              = &Error{Kind: ScopeInsideDict}
	ErrEscapeOutsideOfString        = &Error{Kind: EscapeOutsideOfString}
	ErrUnexpectedEOF                = &Error{Kind: UnexpectedEOF}
	ErrUnreachableToken             = &Error{Kind: UnreachableToken}
)

// Is matches sentinel errors by kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Description explains the failure without position information
func (e *Error) Description() string {
	found := ""
	if e.Token != nil {
		found = e.Token.Kind.String()
	}

	switch e.Kind {
	case MissingValueAfterDeclaration:
		return fmt.Sprintf("missing value after declaration of %q", e.Text)
	case MissingToken:
		return fmt.Sprintf("missing %s to close %s", e.Expected, found)
	case MismatchedTokenType:
		return fmt.Sprintf("expected %s, found %s", e.Expected, found)
	case InvalidToken:
		return fmt.Sprintf("invalid %s at this position", found)
	case InvalidSymbol:
		return fmt.Sprintf("invalid symbol %q", e.Text)
	case BrokenString:
		return "string broken by a newline"
	case UnclosedString:
		return "unclosed string"
	case ScopeInsideDict:
		return "scope declaration inside dict"
	case EscapeOutsideOfString:
		return "escape outside of string"
	case UnexpectedEOF:
		if e.Text != "" {
			return fmt.Sprintf("unexpected end of input after %q", e.Text)
		}
		return "unexpected end of input"
	case UnreachableToken:
		return fmt.Sprintf("unexpected %s", found)
	default:
		return e.Kind.String()
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Token == nil {
		return "parse error: " + e.Description()
	}
	pos := e.Token.Position
	near := strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(e.Token.Text)
	return fmt.Sprintf("parse error at line %d, character %d: %s (near '%s')",
		pos.Line, pos.Character, e.Description(), near)
}

// Position returns the position of the offending token
func (e *Error) Position() (token.Position, bool) {
	if e.Token == nil {
		return token.Position{}, false
	}
	return e.Token.Position, true
}

func newError(kind ErrorKind, tok token.Token) *Error {
	return &Error{Kind: kind, Token: &tok}
}

// unexpected reports tok found where it cannot start or continue a construct
func unexpected(tok token.Token) *Error {
	switch tok.Kind {
	case token.Dot, token.Symbol:
		return newError(InvalidToken, tok)
	case token.BackSlash:
		return newError(EscapeOutsideOfString, tok)
	default:
		return newError(UnreachableToken, tok)
	}
}

func mismatched(tok token.Token, expected token.Kind) *Error {
	err := newError(MismatchedTokenType, tok)
	err.Expected = expected
	return err
}
