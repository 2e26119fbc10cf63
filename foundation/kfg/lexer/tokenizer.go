// File: tokenizer.go
// Title: kfg Tokenizer
// Description: Classifies source bytes into punctuation tokens and Symbol
//              runs. This is the only place absolute positions are computed.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"github.com/felpofo/kfg/foundation/kfg/token"
)

// Tokenize splits src into tokens. It never fails: bytes without a
// punctuation meaning accumulate into Symbol tokens.
func Tokenize(src []byte) []token.Token {
	tokens := make([]token.Token, 0, len(src)/2+1)
	line, character := 1, 0

	for i := 0; i < len(src); {
		kind := token.KindOf(src[i])

		if kind != token.Symbol {
			tokens = append(tokens, token.Punct(kind, line, character))
			i++
			if kind == token.NewLine {
				line++
				character = 0
			} else {
				character++
			}
			continue
		}

		start := i
		for i < len(src) && token.KindOf(src[i]) == token.Symbol {
			i++
		}
		tokens = append(tokens, token.New(token.Symbol, string(src[start:i]), token.Position{
			Line:      line,
			Character: character,
			Length:    i - start,
		}))
		character += i - start
	}

	return tokens
}

// Lex runs Tokenize followed by Filter
func Lex(src []byte, opts ...Option) []token.Token {
	return Filter(Tokenize(src), opts...)
}
