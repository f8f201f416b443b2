// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() Rules {
	return Rules{
		{Name: "main", Specs: []Spec{
			{Name: "QUOTE", Pattern: Literal(`"`), Push: "str"},
			{Name: "NUM", Pattern: Regex(`[0-9]+`)},
			{Name: "if"},
		}},
		{Name: "str", Specs: []Spec{
			{Name: "TEXT", Pattern: Regex(`[^"]+`)},
			{Name: "QUOTE", Pattern: Literal(`"`), Pop: true},
		}},
		{Name: Always, Specs: []Spec{
			{Name: "WS", Pattern: Regex(`\s+`), Skip: true},
		}},
	}
}

func TestRoundTrip(t *testing.T) {
	rs := testTable()
	for _, f := range []Format{JSON, TOML, YAML} {
		t.Run(f.String(), func(t *testing.T) {
			b := &bytes.Buffer{}
			assert.NoError(t, Write(b, rs, f))
			got, err := Read(b, f)
			assert.NoError(t, err)
			assert.Equal(t, rs, got)
		})
	}
}

func TestReadUnknownKey(t *testing.T) {
	_, err := Read(strings.NewReader(`{"groups":[{"group":"m","rules":[{"name":"A","wat":true}]}]}`), JSON)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("groups:\n  - group: m\n    wat: 1\n"), YAML)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("[[groups]]\ngroup = 'm'\nwat = 1\n"), TOML)
	assert.Error(t, err)
}

func TestFormatForFile(t *testing.T) {
	f, err := FormatForFile("g.json")
	assert.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = FormatForFile("G.Yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)

	f, err = FormatForFile("g.toml")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)

	_, err = FormatForFile("grammar.txt")
	assert.Error(t, err)
}

func TestOpenSave(t *testing.T) {
	rs := testTable()
	dir := t.TempDir()
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		fn := filepath.Join(dir, "g"+ext)
		assert.NoError(t, Save(fn, rs))
		got, err := Open(fn)
		assert.NoError(t, err, ext)
		assert.Equal(t, rs, got, ext)
	}

	_, err := Open(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.Error(t, Save(filepath.Join(dir, "g.txt"), rs))
}

func TestWriteGrammar(t *testing.T) {
	set := MustCompile(Rules{
		{Name: "main", Specs: []Spec{
			{Name: "NUM", Pattern: Regex(`[0-9]+`)},
			{Name: "QUOTE", Pattern: Literal(`"`), Push: "str"},
		}},
		{Name: "str", Specs: []Spec{
			{Name: "QUOTE", Pattern: Literal(`"`), Pop: true},
		}},
		{Name: Always, Specs: []Spec{
			{Name: "WS", Pattern: Regex(` +`), Skip: true},
		}},
	})
	b := &bytes.Buffer{}
	assert.NoError(t, set.WriteGrammar(b))
	want := `main:
	NUM: re:[0-9]+
	QUOTE: "\"" push:str
str:
	QUOTE: "\"" pop
ALWAYS:
	WS: re: + skip
	ERROR: re:(?s).+ pop
`
	assert.Equal(t, want, b.String())
}
