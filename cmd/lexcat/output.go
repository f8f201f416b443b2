// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/lexgen/token"
	"github.com/muesli/termenv"
)

// newOutput returns a termenv output for w, downgraded to plain ascii
// when --no-color is set.
func newOutput(w io.Writer) *termenv.Output {
	if noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.ColorProfile()))
}

// printTokens writes the token list to w, one line per token, or as a
// JSON array with --json.
func printTokens(w io.Writer, toks []token.Token) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	}
	out := newOutput(w)
	for _, tok := range toks {
		name := out.String(tok.Name)
		switch {
		case tok.IsFinal():
			name = name.Faint()
		case tok.IsError():
			name = name.Foreground(termenv.ANSIRed).Bold()
		default:
			name = name.Foreground(termenv.ANSICyan)
		}
		pos := out.String(fmt.Sprintf("%d\t%d:%d", tok.Offset, tok.Line, tok.Column)).Faint()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pos, tok.Group, name, strconv.Quote(tok.Text))
	}
	return nil
}
