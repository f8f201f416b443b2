// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"errors"
	"fmt"

	"cogentcore.org/core/base/stack"
	"cogentcore.org/lexgen/rules"
	"cogentcore.org/lexgen/textpos"
	"cogentcore.org/lexgen/token"
)

var (
	// ErrExhausted is returned by [Tokenizer.Next] on every call after
	// the terminal token has been delivered.
	ErrExhausted = errors.New("lexer: token stream exhausted")

	// ErrInternal reports a scan engine invariant violation: no rule
	// matched even though the catch-all guarantees one on any
	// remaining input. It signals an engine bug, never a problem with
	// the input text.
	ErrInternal = errors.New("lexer: internal fault: no rule matched")
)

// Tokenizer is one lazy token stream over one text. It owns the whole
// per-stream state: the context stack, the cursor, and the position
// index, while the compiled rules are shared read-only with its
// [Lexer]. A Tokenizer is not safe for concurrent use; create one per
// goroutine instead.
type Tokenizer struct {
	set   *rules.Set
	src   string
	runes []rune
	index textpos.LineIndex
	trace *Tracer

	stack stack.Stack[string]
	off   int // byte offset into src
	roff  int // rune offset into runes, advanced in lockstep with off
	done  bool
	err   error
	tok   token.Token
}

// WithTrace sets the stream's tracer, overriding [Lexer.Trace], and
// returns the stream. A nil tracer silences an inherited one.
func (tz *Tokenizer) WithTrace(tr *Tracer) *Tokenizer {
	tz.trace = tr
	return tz
}

// Context returns the context the stream is currently in, the top of
// its context stack, or the empty string once pops have emptied the
// stack.
func (tz *Tokenizer) Context() string {
	if len(tz.stack) == 0 {
		return ""
	}
	return tz.stack.Peek()
}

// Offset returns the current byte offset of the cursor within the
// source.
func (tz *Tokenizer) Offset() int {
	return tz.off
}

// Next produces the next token. Every stream ends with exactly one
// terminal FINAL token; after delivering it, Next fails with
// [ErrExhausted] forever. If the engine cannot make progress, which
// the compiled catch-all rules out short of a defect, Next fails with
// an error wrapping [ErrInternal] and the stream stays in that fault.
//
// Each step tries the current context's own rules in declared order,
// then the applies-everywhere rules, then the catch-all, taking the
// first match of non-zero length anchored at the cursor. Skipped
// matches advance the cursor without yielding. A yielded token is
// built in the pre-transition context; the rule's pop and then push
// apply afterwards, so they affect the next token.
func (tz *Tokenizer) Next() (token.Token, error) {
	if tz.done {
		if tz.err != nil {
			return token.Token{}, tz.err
		}
		return token.Token{}, ErrExhausted
	}
	tracing := tz.trace != nil && tz.trace.On
	for {
		if len(tz.stack) == 0 || tz.roff >= len(tz.runes) {
			return tz.final(tracing), nil
		}
		group := tz.stack.Peek()

		var matched *rules.Rule
		var text string
		var rlen int
		for _, r := range tz.set.Seq(group) {
			t, n, ok := r.Match(tz.runes, tz.roff)
			if ok {
				matched, text, rlen = r, t, n
				break
			}
			if tracing {
				tz.trace.out(stepNoMatch, r.Name, group+"."+r.Name, "at", tz.off)
			}
		}
		if matched == nil {
			tz.done = true
			tz.err = fmt.Errorf("%w in context %q at offset %d", ErrInternal, group, tz.off)
			if tracing {
				tz.trace.out(stepFault, "", "in", group, "at", tz.off)
			}
			return token.Token{}, tz.err
		}
		if tracing {
			tz.trace.out(stepMatch, matched.Name, group+"."+matched.Name, tz.trace.esc(text), "at", tz.off)
		}

		off := tz.off
		tz.off += len(text)
		tz.roff += rlen

		if matched.Skip {
			if tracing {
				tz.trace.out(stepSkip, matched.Name, group+"."+matched.Name, tz.trace.esc(text), "at", off)
			}
			continue
		}
		pos := tz.index(off)
		tok := token.Token{
			Name:   matched.Name,
			Group:  group,
			Text:   text,
			Offset: off,
			Line:   pos.Line,
			Column: pos.Column,
		}
		if matched.Transform != nil {
			var ok bool
			if tok, ok = matched.Transform(tok); !ok {
				if tracing {
					tz.trace.out(stepSkip, matched.Name, group+"."+matched.Name, tz.trace.esc(text), "at", off, "by transform")
				}
				continue
			}
		}
		if matched.Pop {
			popped := tz.stack.Pop()
			if tracing {
				tz.trace.out(stepPop, matched.Name, popped, "->", fmt.Sprint(tz.stack))
			}
		}
		if matched.Push != "" {
			tz.stack.Push(matched.Push)
			if tracing {
				tz.trace.out(stepPush, matched.Name, matched.Push, "->", fmt.Sprint(tz.stack))
			}
		}
		if tracing {
			tz.trace.out(stepYield, matched.Name, tok.String())
		}
		return tok, nil
	}
}

// final emits the terminal token and exhausts the stream. Its offset
// is wherever scanning ended: the end of the text, or earlier when a
// pop emptied the context stack.
func (tz *Tokenizer) final(tracing bool) token.Token {
	tz.done = true
	pos := tz.index(tz.off)
	if tracing {
		tz.trace.out(stepFinal, "", "at", tz.off)
	}
	return token.Token{
		Name:   token.Final,
		Group:  token.Final,
		Offset: tz.off,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// Scan advances to the next token, which is then available from
// [Tokenizer.Token], in the manner of bufio.Scanner. It returns false
// once the stream is finished: after the terminal token has been
// delivered, or on an internal fault, which [Tokenizer.Err] then
// reports. Scan and [Tokenizer.Next] share the same cursor and can be
// mixed freely.
func (tz *Tokenizer) Scan() bool {
	tok, err := tz.Next()
	if err != nil {
		return false
	}
	tz.tok = tok
	return true
}

// Token returns the token produced by the last successful
// [Tokenizer.Scan].
func (tz *Tokenizer) Token() token.Token {
	return tz.tok
}

// Err returns nil after a clean end of stream and the internal fault
// error otherwise. Exhaustion is not an error here, matching
// bufio.Scanner.
func (tz *Tokenizer) Err() error {
	return tz.err
}

// Collect runs the stream to completion and returns its tokens,
// terminal token included. On an internal fault it returns the tokens
// produced so far along with the fault.
func (tz *Tokenizer) Collect() ([]token.Token, error) {
	var toks []token.Token
	for tz.Scan() {
		toks = append(toks, tz.Token())
	}
	return toks, tz.Err()
}
