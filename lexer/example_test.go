// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer_test

import (
	"fmt"

	"cogentcore.org/lexgen/lexer"
	"cogentcore.org/lexgen/rules"
)

func Example() {
	lx := lexer.MustCompile(rules.Rules{
		{Name: "main", Specs: []rules.Spec{
			{Name: "WORD", Pattern: rules.Regex(`[a-z]+`)},
			{Name: "NUM", Pattern: rules.Regex(`[0-9]+`)},
			{Name: "WS", Pattern: rules.Regex(`\s+`), Skip: true},
		}},
	})
	tz := lx.Tokenizer("go 42")
	for tz.Scan() {
		fmt.Println(tz.Token())
	}
	// Output:
	// main.WORD "go" at 0 (1:1)
	// main.NUM "42" at 3 (1:4)
	// FINAL.FINAL "" at 5 (1:6)
}

func ExampleLexer_Tokenizer() {
	lx := lexer.MustCompile(rules.Rules{
		{Name: "main", Specs: []rules.Spec{
			{Name: "QUOTE", Pattern: rules.Literal(`"`), Push: "str"},
			{Name: "WORD", Pattern: rules.Regex(`[a-z]+`)},
		}},
		{Name: "str", Specs: []rules.Spec{
			{Name: "TEXT", Pattern: rules.Regex(`[^"]+`)},
			{Name: "QUOTE", Pattern: rules.Literal(`"`), Pop: true},
		}},
		{Name: rules.Always, Specs: []rules.Spec{
			{Name: "WS", Pattern: rules.Regex(`\s+`), Skip: true},
		}},
	})
	toks, _ := lx.Tokenizer(`say "hi"`).Collect()
	for _, tok := range toks {
		fmt.Printf("%s %s %q\n", tok.Group, tok.Name, tok.Text)
	}
	// Output:
	// main WORD "say"
	// main QUOTE "\""
	// str TEXT "hi"
	// str QUOTE "\""
	// FINAL FINAL ""
}
