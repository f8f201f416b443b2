// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	src := "ab\ncde\n\nf"
	idx := Index(src)

	tests := []struct {
		offset int
		pos    Pos
	}{
		{0, Pos{1, 1}},
		{1, Pos{1, 2}},
		{2, Pos{1, 3}}, // the newline itself
		{3, Pos{2, 1}},
		{5, Pos{2, 3}},
		{7, Pos{3, 1}}, // empty line
		{8, Pos{4, 1}},
		{9, Pos{4, 2}}, // end of text
	}
	for _, test := range tests {
		assert.Equal(t, test.pos, idx(test.offset), "offset %d", test.offset)
	}
}

func TestIndexRuneColumns(t *testing.T) {
	src := "αβ x" // two 2-byte runes, then space, then x
	idx := Index(src)

	assert.Equal(t, Pos{1, 1}, idx(0))
	assert.Equal(t, Pos{1, 2}, idx(2))
	assert.Equal(t, Pos{1, 3}, idx(4))
	assert.Equal(t, Pos{1, 4}, idx(5))
}

func TestIndexClamps(t *testing.T) {
	idx := Index("hi")
	assert.Equal(t, Pos{1, 1}, idx(-3))
	assert.Equal(t, Pos{1, 3}, idx(99))
}

func TestIndexEmpty(t *testing.T) {
	idx := Index("")
	assert.Equal(t, Pos{1, 1}, idx(0))
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:14", Pos{3, 14}.String())
}
