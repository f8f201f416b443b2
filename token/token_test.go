// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	fin := Token{Name: Final, Group: Final, Offset: 5, Line: 1, Column: 6}
	assert.True(t, fin.IsFinal())
	assert.False(t, fin.IsError())

	// a rule named FINAL in a normal group is not the terminal token
	named := Token{Name: Final, Group: "main", Text: "FINAL"}
	assert.False(t, named.IsFinal())

	bad := Token{Name: Error, Group: "main", Text: "@#!", Offset: 2, Line: 1, Column: 3}
	assert.True(t, bad.IsError())
	assert.False(t, bad.IsFinal())
}

func TestString(t *testing.T) {
	tok := Token{Name: "NUM", Group: "main", Text: "42", Offset: 3, Line: 2, Column: 1}
	assert.Equal(t, `main.NUM "42" at 3 (2:1)`, tok.String())
}
