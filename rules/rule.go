// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Rule is the compiled, immutable form of a [Spec]. Rules are built
// only by [Compile] and never change afterwards, so a [Set] of them is
// safe to share between any number of tokenizers.
type Rule struct {

	// Name is the rule name, the initial name of its tokens.
	Name string

	// Group is the group the rule was declared in, which is [Always]
	// for applies-everywhere rules including the catch-all. Tokens
	// carry the context the match happened in, not this.
	Group string

	// Pop exits the current context after the rule's token is yielded.
	Pop bool

	// Push is the context entered after the rule's token is yielded,
	// empty for none. Applied after Pop.
	Push string

	// Skip marks a rule whose matches are consumed silently.
	Skip bool

	// Transform is applied to each of the rule's tokens, nil for
	// identity.
	Transform Transform

	pattern Pattern
	re      *regexp2.Regexp
}

// Pattern returns the rule's pattern in source form.
func (r *Rule) Pattern() Pattern {
	return r.pattern
}

// Match tries the rule at pos within src, the rune form of the text
// being scanned, returning the matched text and its length in runes.
// Matching is anchored: it succeeds only for a match of non-zero length
// starting exactly at pos.
func (r *Rule) Match(src []rune, pos int) (string, int, bool) {
	m, err := r.re.FindRunesMatchStartingAt(src, pos)
	if err != nil || m == nil || m.Index != pos || m.Length == 0 {
		return "", 0, false
	}
	return m.String(), m.Length, true
}

// String returns the rule in grammar-dump form, as written by
// [WriteGrammar]: name, pattern, and any flags.
func (r *Rule) String() string {
	b := &strings.Builder{}
	b.WriteString(r.Name)
	b.WriteString(": ")
	if r.pattern.IsRegex() {
		b.WriteString(r.pattern.String())
	} else {
		b.WriteString(strconv.Quote(r.pattern.text))
	}
	if r.Pop {
		b.WriteString(" pop")
	}
	if r.Push != "" {
		b.WriteString(" push:" + r.Push)
	}
	if r.Skip {
		b.WriteString(" skip")
	}
	if r.Transform != nil {
		b.WriteString(" transform")
	}
	return b.String()
}
