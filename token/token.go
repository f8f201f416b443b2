// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical elements produced by lexgen tokenizers.
// Token names are open strings defined by the rules of each grammar;
// this package reserves only the names that have engine-level meaning.
package token

import "fmt"

const (
	// Final is the reserved name and group of the terminal token that
	// marks end of input. Exactly one Final token ends every token stream.
	Final = "FINAL"

	// Error is the name of tokens produced by the synthetic catch-all
	// rule, which captures input that no declared rule recognizes.
	Error = "ERROR"
)

// Token is one lexical element of a scanned text, an immutable snapshot
// taken at match time. Name starts out as the name of the rule that
// matched and may be relabeled by the rule's transform. Group is the
// context that was active when the match happened, which for rules
// declared in the applies-everywhere group differs from the group they
// were declared in.
type Token struct {

	// Name is the token name, normally the name of the matching rule.
	Name string `json:"name"`

	// Group is the context the tokenizer was in when the token matched.
	Group string `json:"group"`

	// Text is the exact matched source text, empty for the terminal token.
	Text string `json:"text"`

	// Offset is the byte offset of Text within the source, starting at 0.
	// The terminal token carries the offset at which scanning ended.
	Offset int `json:"offset"`

	// Line is the 1-based line number at Offset.
	Line int `json:"line"`

	// Column is the 1-based rune column of Offset within its line.
	Column int `json:"column"`
}

// IsFinal reports whether this is the terminal end-of-input token.
func (t Token) IsFinal() bool {
	return t.Name == Final && t.Group == Final
}

// IsError reports whether the token came from the catch-all rule,
// still carrying its [Error] name.
func (t Token) IsError() bool {
	return t.Name == Error
}

// String returns a compact diagnostic form: group.name "text" at offset (line:col).
func (t Token) String() string {
	return fmt.Sprintf("%s.%s %q at %d (%d:%d)", t.Group, t.Name, t.Text, t.Offset, t.Line, t.Column)
}
