// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rules declares and compiles lexing rules. Rules are organized
// into named groups, each group a lexical context; the order of groups
// and of rules within a group is significant, so the declaration forms
// are slices, not maps. [Compile] validates a [Rules] table and lowers
// it into an immutable [Set] that tokenizers share read-only.
package rules

import "cogentcore.org/lexgen/token"

// Always is the reserved group name whose rules apply in every context.
// They are tried after the current context's own rules, in declared
// order, and are followed by the synthetic catch-all. Always is not a
// context itself: it cannot be pushed and cannot be the only group.
const Always = "ALWAYS"

// Rules is a full rule table prior to compilation: an ordered list of
// named groups. The first group that is not [Always] is the start
// context of every tokenizer.
type Rules []Group

// Group names one lexical context and holds its rules in match
// precedence order.
type Group struct {

	// Name is the context name. Group names must be unique within a
	// table and non-blank; FINAL is reserved for the terminal token.
	Name string

	// Specs are the group's rules, earliest first. Earlier rules win
	// when more than one could match at an offset.
	Specs []Spec
}

// Transform inspects and possibly rewrites a freshly matched token
// before it is yielded, typically to relabel it based on its text.
// Returning false discards the token: the matched text is consumed but
// nothing is yielded and the rule's context transition is suppressed.
type Transform func(tok token.Token) (token.Token, bool)

// Rename returns a [Transform] that relabels matched tokens to name.
func Rename(name string) Transform {
	return func(tok token.Token) (token.Token, bool) {
		tok.Name = name
		return tok, true
	}
}

// Spec declares one rule prior to compilation.
type Spec struct {

	// Name is the rule name. Tokens from this rule carry it as their
	// name unless a transform relabels them. Must be non-blank.
	Name string

	// Pattern is what the rule matches. The zero Pattern matches the
	// rule's Name as a literal.
	Pattern Pattern

	// Pop exits the current context after the rule's token is yielded.
	// Popping the last context ends scanning.
	Pop bool

	// Push enters the named context after the rule's token is yielded.
	// When combined with Pop, the pop is applied first. The target must
	// name a declared group other than [Always].
	Push string

	// Skip consumes matches silently: the offset advances past the
	// matched text but no token is yielded and no context transition
	// happens. Used for whitespace and comments.
	Skip bool

	// Transform is applied to each of the rule's tokens, nil for
	// identity. A transform can also skip by returning false.
	Transform Transform
}
