// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern is what one rule matches: either a literal text, escaped in
// full during compilation, or a regular expression in regexp2 syntax.
// Patterns compile to anchored matchers that only succeed starting
// exactly at the requested offset, never searching ahead, and a match
// of zero length is reported as no match at all.
type Pattern struct {
	text  string
	regex bool
}

// Literal returns a [Pattern] matching text exactly, with any pattern
// metacharacters escaped.
func Literal(text string) Pattern {
	return Pattern{text: text}
}

// Regex returns a [Pattern] matching the given regexp2 expression.
func Regex(expr string) Pattern {
	return Pattern{text: expr, regex: true}
}

// ParsePattern converts the grammar-file form of a pattern: an "re:"
// prefix marks a regular expression and a "lit:" prefix forces the rest
// to be taken literally; anything else is a literal as-is.
func ParsePattern(s string) Pattern {
	if expr, ok := strings.CutPrefix(s, "re:"); ok {
		return Regex(expr)
	}
	if text, ok := strings.CutPrefix(s, "lit:"); ok {
		return Literal(text)
	}
	return Literal(s)
}

// IsZero reports whether p is the zero Pattern, which stands for the
// owning rule's name matched literally.
func (p Pattern) IsZero() bool {
	return p.text == "" && !p.regex
}

// IsRegex reports whether p holds a regular expression rather than a
// literal.
func (p Pattern) IsRegex() bool {
	return p.regex
}

// String returns the grammar-file form parsed by [ParsePattern].
func (p Pattern) String() string {
	if p.regex {
		return "re:" + p.text
	}
	if strings.HasPrefix(p.text, "re:") || strings.HasPrefix(p.text, "lit:") {
		return "lit:" + p.text
	}
	return p.text
}

// compile lowers the pattern into a sticky matcher. \G anchors each
// attempt at the offset given to FindRunesMatchStartingAt, so failure
// is reported instead of searching forward.
func (p Pattern) compile() (*regexp2.Regexp, error) {
	expr := p.text
	if !p.regex {
		expr = regexp.QuoteMeta(expr)
	}
	return regexp2.Compile(`\G(?:`+expr+`)`, regexp2.None)
}
