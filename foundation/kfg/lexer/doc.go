// Package lexer turns kfg source bytes into the token stream the parser
// consumes.
//
// Package: lexer
// Title: kfg Tokenizer and Filter
// Description: Two total transformations. Tokenize classifies every byte and
//              records positions. Filter removes comments and whitespace and
//              collapses each quoted string into quote, body, quote, with
//              escape sequences already resolved in the body.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Comment rules:
//   // ...        up to and including the end of the line
//   /* ... */     up to the first "*/"; comments do not nest and a newline
//                 right after the closer is dropped too
//
// Malformed strings are not rejected here. A string cut short by a newline
// or by the end of input is emitted without its closing quote and the parser
// reports it.
package lexer
