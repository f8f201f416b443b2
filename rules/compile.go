// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/lexgen/token"
)

// Error is a compile-time rule error, identifying the offending group
// and rule where known.
type Error struct {

	// Group is the name of the group the error is in, if any.
	Group string

	// Rule is the name of the rule the error is in, if any.
	Rule string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Group != "" && e.Rule != "":
		return fmt.Sprintf("rules: group %q, rule %q: %v", e.Group, e.Rule, e.Err)
	case e.Group != "":
		return fmt.Sprintf("rules: group %q: %v", e.Group, e.Err)
	}
	return "rules: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Set is a compiled rule table: the declared context groups in order,
// plus the applies-everywhere rules ending in the synthetic catch-all.
// A Set is built once by [Compile] and never mutated, so it is safe to
// share across any number of concurrent tokenizers.
type Set struct {
	groups ordmap.Map[string, []*Rule]
	seqs   map[string][]*Rule
	always []*Rule
	start  string
}

// Start returns the start context: the first declared group other than
// [Always]. Every tokenizer begins scanning there.
func (s *Set) Start() string {
	return s.start
}

// Groups returns the declared context names in declaration order, not
// including [Always].
func (s *Set) Groups() []string {
	return s.groups.Keys()
}

// Has reports whether the set declares the given context group.
func (s *Set) Has(group string) bool {
	return s.groups.IndexByKey(group) >= 0
}

// Rules returns the rules declared in the given context group, in
// declaration order, without the applies-everywhere tail. It returns
// nil for an unknown group.
func (s *Set) Rules(group string) []*Rule {
	return s.groups.ValueByKey(group)
}

// Always returns the applies-everywhere rules in declaration order,
// ending in the synthetic catch-all.
func (s *Set) Always() []*Rule {
	return s.always
}

// Seq returns the full match-precedence sequence for the given context:
// its own rules first, then the applies-everywhere rules, then the
// catch-all. It returns nil for an unknown context.
func (s *Set) Seq(group string) []*Rule {
	return s.seqs[group]
}

// Len returns the number of declared context groups, not counting
// [Always].
func (s *Set) Len() int {
	return s.groups.Len()
}

// Compile validates a rule table and lowers it into an immutable [Set].
// It fails if the table is empty or declares no context group, on
// duplicate or reserved group names, on blank group or rule names, on
// empty or invalid patterns, and on push targets that do not name a
// declared context. Failures are returned as a *[Error] identifying
// the offending group and rule.
func Compile(rs Rules) (*Set, error) {
	if len(rs) == 0 {
		return nil, &Error{Err: errors.New("empty rule table")}
	}
	set := &Set{seqs: make(map[string][]*Rule, len(rs))}
	for i, g := range rs {
		if strings.TrimSpace(g.Name) == "" {
			return nil, &Error{Err: fmt.Errorf("group %d has an empty name", i)}
		}
		if g.Name == token.Final {
			return nil, &Error{Group: g.Name, Err: errors.New("group name is reserved for the terminal token")}
		}
		if (g.Name == Always && set.always != nil) || set.groups.IndexByKey(g.Name) >= 0 {
			return nil, &Error{Group: g.Name, Err: errors.New("duplicate group")}
		}
		rls := make([]*Rule, 0, len(g.Specs))
		for j, sp := range g.Specs {
			r, err := lower(sp, g.Name)
			if err != nil {
				name := sp.Name
				if strings.TrimSpace(name) == "" {
					name = fmt.Sprintf("#%d", j)
				}
				return nil, &Error{Group: g.Name, Rule: name, Err: err}
			}
			rls = append(rls, r)
		}
		if g.Name == Always {
			set.always = rls
		} else {
			set.groups.Add(g.Name, rls)
			if set.start == "" {
				set.start = g.Name
			}
		}
	}
	if set.start == "" {
		return nil, &Error{Err: errors.New("no context group: " + Always + " rules apply everywhere but cannot start a tokenizer")}
	}
	set.always = append(set.always, catchAll)
	for i := 0; i < set.groups.Len(); i++ {
		for _, r := range set.groups.ValueByIndex(i) {
			if err := set.checkPush(r); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range set.always {
		if err := set.checkPush(r); err != nil {
			return nil, err
		}
	}
	for i := 0; i < set.groups.Len(); i++ {
		own := set.groups.ValueByIndex(i)
		seq := make([]*Rule, 0, len(own)+len(set.always))
		seq = append(seq, own...)
		seq = append(seq, set.always...)
		set.seqs[set.groups.KeyByIndex(i)] = seq
	}
	return set, nil
}

// MustCompile is [Compile] that panics on error, for rule tables known
// good at program start.
func MustCompile(rs Rules) *Set {
	set, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return set
}

func (s *Set) checkPush(r *Rule) error {
	if r.Push == "" {
		return nil
	}
	if r.Push == Always {
		return &Error{Group: r.Group, Rule: r.Name, Err: errors.New("cannot push " + Always + ": it is not a context")}
	}
	if s.groups.IndexByKey(r.Push) < 0 {
		return &Error{Group: r.Group, Rule: r.Name, Err: fmt.Errorf("unknown push target %q", r.Push)}
	}
	return nil
}

// lower compiles one spec into a Rule.
func lower(sp Spec, group string) (*Rule, error) {
	if strings.TrimSpace(sp.Name) == "" {
		return nil, errors.New("empty rule name")
	}
	pat := sp.Pattern
	if pat.IsZero() {
		pat = Literal(sp.Name)
	}
	if pat.regex && pat.text == "" {
		return nil, errors.New("empty pattern")
	}
	re, err := pat.compile()
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pat, err)
	}
	return &Rule{
		Name:      sp.Name,
		Group:     group,
		Pop:       sp.Pop,
		Push:      sp.Push,
		Skip:      sp.Skip,
		Transform: sp.Transform,
		pattern:   pat,
		re:        re,
	}, nil
}

// catchAll guarantees forward progress on unrecognized input: it
// matches everything through end of input as one ERROR token and exits
// the current context.
var catchAll = func() *Rule {
	r, err := lower(Spec{Name: token.Error, Pattern: Regex(`(?s).+`), Pop: true}, Always)
	if err != nil {
		panic(err)
	}
	return r
}()
