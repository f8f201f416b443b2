// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Tracer reports scan engine events for debugging rule tables: which
// rules were tried, what matched, and how the context stack moved.
// Tracing only writes to the sink and never changes token output. Set
// [Lexer.Trace] to trace every stream a lexer creates, or
// [Tokenizer.WithTrace] to trace a single stream.
type Tracer struct {

	// On enables tracing; the zero Tracer traces nothing.
	On bool

	// Rules restricts tracing to the named rules (space separated)
	// when non-empty.
	Rules string

	// Match traces each rule that matches, before transforms run.
	Match bool

	// NoMatch traces every rule tried without a match, which can be a
	// lot of output.
	NoMatch bool

	// Skips traces matches consumed silently by skip rules and
	// transforms.
	Skips bool

	// Transitions traces context pushes and pops with the resulting
	// stack.
	Transitions bool

	// Yields traces each token as it is yielded, after transforms,
	// including the terminal token.
	Yields bool

	// Sink receives each trace event as loggable values. When nil,
	// events print to standard error.
	Sink func(args ...any)

	// Escape renders matched text printably in trace events,
	// strconv.Quote when nil.
	Escape func(s string) string
}

// TraceAll returns a [Tracer] reporting every event except per-rule
// non-matches to the given sink, which may be nil for standard error.
func TraceAll(sink func(args ...any)) *Tracer {
	return &Tracer{On: true, Match: true, Skips: true, Transitions: true, Yields: true, Sink: sink}
}

// step is one kind of scan engine event.
type step int

const (
	stepMatch step = iota
	stepNoMatch
	stepSkip
	stepPush
	stepPop
	stepYield
	stepFinal
	stepFault
)

func (st step) String() string {
	switch st {
	case stepMatch:
		return "match"
	case stepNoMatch:
		return "no-match"
	case stepSkip:
		return "skip"
	case stepPush:
		return "push"
	case stepPop:
		return "pop"
	case stepYield:
		return "yield"
	case stepFinal:
		return "final"
	case stepFault:
		return "fault"
	}
	return "?"
}

// active reports whether an event of the given step, from the given
// rule, should be written. Faults are always written while tracing is
// on.
func (tr *Tracer) active(st step, rule string) bool {
	if tr == nil || !tr.On {
		return false
	}
	switch st {
	case stepMatch:
		if !tr.Match {
			return false
		}
	case stepNoMatch:
		if !tr.NoMatch {
			return false
		}
	case stepSkip:
		if !tr.Skips {
			return false
		}
	case stepPush, stepPop:
		if !tr.Transitions {
			return false
		}
	case stepYield, stepFinal:
		if !tr.Yields {
			return false
		}
	}
	if tr.Rules != "" && rule != "" && !slices.Contains(strings.Fields(tr.Rules), rule) {
		return false
	}
	return true
}

// out writes one event to the sink when its step is enabled.
func (tr *Tracer) out(st step, rule string, args ...any) {
	if !tr.active(st, rule) {
		return
	}
	all := make([]any, 0, len(args)+1)
	all = append(all, st.String())
	all = append(all, args...)
	if tr.Sink != nil {
		tr.Sink(all...)
		return
	}
	fmt.Fprintln(os.Stderr, all...)
}

// esc renders matched text for an event. Safe on a nil Tracer.
func (tr *Tracer) esc(s string) string {
	if tr == nil || tr.Escape == nil {
		return strconv.Quote(s)
	}
	return tr.Escape(s)
}
