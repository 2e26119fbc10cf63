// Package parser builds kfg documents from filtered token streams.
//
// Package: parser
// Title: kfg Recursive-Descent Parser
// Description: Value grammar (literals, strings, arrays, inline dicts) and
//              the document driver that binds assignments and resolves
//              scope paths ("a::b::c = v") into nested dicts.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Grammar:
//
//   document   := (statement | NEWLINE)*
//   statement  := KEY '=' value
//               | KEY ':' ':'
//   value      := literal | string | array | dict
//   literal    := SYMBOL ('.' SYMBOL)?
//   string     := QUOTE SYMBOL_BODY QUOTE
//   array      := '[' (value SEP*)* ']'
//   dict       := '{' (('.' KEY ':' value) SEP*)* '}'
//   SEP        := NEWLINE | SPACE | TAB | ','
//
// Trailing separators, including commas, are accepted in arrays and dicts.
// Every failure is an *Error; no partial document is returned.
package parser
