// Package token defines the lexical vocabulary of kfg.
//
// Package: token
// Title: kfg Token Model
// Description: Token kinds, source positions and the merge operation used
//              when the filter assembles quoted string bodies. A token is
//              either one punctuation byte or a Symbol: a maximal run of
//              bytes that are not punctuation.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package token
