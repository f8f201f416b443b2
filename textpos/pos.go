// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos maps byte offsets within a text to line and column
// positions. Tokenizers use it only to decorate tokens; it holds no
// scanning state of its own.
package textpos

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Pos is a line and column position within a text.
// Lines and columns are 1-based; columns count runes, not bytes.
type Pos struct {

	// Line is the 1-based line number.
	Line int `json:"line"`

	// Column is the 1-based rune column within the line.
	Column int `json:"column"`
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps a byte offset within some text to its [Pos].
// The tokenizer calls it once per produced token. Implementations are
// typically closures over a precomputed line table such as the one
// returned by [Index], but any pure function of the offset works.
type LineIndex func(offset int) Pos

// Index returns a [LineIndex] over src, backed by a table of line start
// offsets built once up front. Each lookup binary-searches the table for
// the containing line and counts runes from the line start to the offset.
// Offsets outside src are clamped, so the position just past the last
// character resolves to the end of the final line.
func Index(src string) LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return func(offset int) Pos {
		if offset < 0 {
			offset = 0
		} else if offset > len(src) {
			offset = len(src)
		}
		ln := sort.SearchInts(starts, offset+1) - 1 // last line start <= offset
		return Pos{Line: ln + 1, Column: utf8.RuneCountInString(src[starts[ln]:offset]) + 1}
	}
}
