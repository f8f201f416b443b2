// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ruleFor compiles a one-rule table and returns the rule.
func ruleFor(t *testing.T, sp Spec) *Rule {
	t.Helper()
	set, err := Compile(Rules{{Name: "m", Specs: []Spec{sp}}})
	assert.NoError(t, err)
	return set.Rules("m")[0]
}

func TestMatchAnchored(t *testing.T) {
	r := ruleFor(t, Spec{Name: "NUM", Pattern: Regex(`[0-9]+`)})
	src := []rune("ab 12 cd")

	// no forward search: offset 0 is not a digit
	_, _, ok := r.Match(src, 0)
	assert.False(t, ok)

	text, n, ok := r.Match(src, 3)
	assert.True(t, ok)
	assert.Equal(t, "12", text)
	assert.Equal(t, 2, n)
}

func TestMatchZeroLength(t *testing.T) {
	r := ruleFor(t, Spec{Name: "STAR", Pattern: Regex(`a*`)})

	// a* succeeds with length zero anywhere; that is reported as no match
	_, _, ok := r.Match([]rune("bbb"), 0)
	assert.False(t, ok)

	text, n, ok := r.Match([]rune("aab"), 0)
	assert.True(t, ok)
	assert.Equal(t, "aa", text)
	assert.Equal(t, 2, n)
}

func TestMatchLiteralEscape(t *testing.T) {
	r := ruleFor(t, Spec{Name: "DOT", Pattern: Literal("a.c")})

	_, _, ok := r.Match([]rune("abc"), 0)
	assert.False(t, ok)

	text, _, ok := r.Match([]rune("a.c"), 0)
	assert.True(t, ok)
	assert.Equal(t, "a.c", text)
}

func TestMatchRuneOffsets(t *testing.T) {
	r := ruleFor(t, Spec{Name: "X", Pattern: Literal("x")})

	// offsets into Match are rune counts, not bytes
	text, n, ok := r.Match([]rune("αx"), 1)
	assert.True(t, ok)
	assert.Equal(t, "x", text)
	assert.Equal(t, 1, n)
}

func TestNameAsLiteral(t *testing.T) {
	// zero pattern matches the rule name itself
	r := ruleFor(t, Spec{Name: "if"})
	text, _, ok := r.Match([]rune("if x"), 0)
	assert.True(t, ok)
	assert.Equal(t, "if", text)
}

func TestParsePattern(t *testing.T) {
	p := ParsePattern("re:[a-z]+")
	assert.True(t, p.IsRegex())
	assert.Equal(t, "re:[a-z]+", p.String())

	p = ParsePattern("hello")
	assert.False(t, p.IsRegex())
	assert.False(t, p.IsZero())
	assert.Equal(t, "hello", p.String())

	// literals that look like prefixed forms round-trip through lit:
	p = ParsePattern("lit:re:tricky")
	assert.False(t, p.IsRegex())
	assert.Equal(t, "re:tricky", p.text)
	assert.Equal(t, "lit:re:tricky", p.String())

	assert.True(t, ParsePattern("").IsZero())
}
