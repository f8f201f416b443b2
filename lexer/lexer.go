// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer produces token streams from compiled rule tables. A
// [Lexer] is the immutable bundle of compiled rules; each [Tokenizer]
// it creates is an independent stream over one input text, owning its
// own context stack and cursor, so any number of streams can run
// concurrently over one Lexer.
package lexer

import (
	"cogentcore.org/lexgen/rules"
	"cogentcore.org/lexgen/textpos"
)

// Lexer is a compiled rule table ready to tokenize texts. Compile one
// once and share it; all shared state is read-only. Trace is the only
// mutable part and only affects diagnostics, never token output.
type Lexer struct {

	// Set is the compiled rule table.
	Set *rules.Set

	// Trace, when non-nil, is given to every stream created afterwards.
	// A single stream can override it with [Tokenizer.WithTrace].
	Trace *Tracer
}

// Compile compiles the rule table into a [Lexer]. Invalid tables fail
// with a *[rules.Error] identifying the offending group and rule.
func Compile(rs rules.Rules) (*Lexer, error) {
	set, err := rules.Compile(rs)
	if err != nil {
		return nil, err
	}
	return New(set), nil
}

// MustCompile is [Compile] that panics on error, for rule tables known
// good at program start.
func MustCompile(rs rules.Rules) *Lexer {
	lx, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return lx
}

// New returns a [Lexer] over an already compiled rule set.
func New(set *rules.Set) *Lexer {
	return &Lexer{Set: set}
}

// Tokenizer returns a new stream over src, starting in the first
// declared context, with token positions from [textpos.Index].
func (lx *Lexer) Tokenizer(src string) *Tokenizer {
	return lx.TokenizerAt(src, textpos.Index(src))
}

// TokenizerAt is [Lexer.Tokenizer] with a caller-supplied position
// index, for tokens positioned relative to an enclosing document.
func (lx *Lexer) TokenizerAt(src string, index textpos.LineIndex) *Tokenizer {
	tz := &Tokenizer{
		set:   lx.Set,
		src:   src,
		runes: []rune(src),
		index: index,
		trace: lx.Trace,
	}
	tz.stack.Push(lx.Set.Start())
	return tz
}
