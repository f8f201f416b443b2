// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexcat tokenizes texts with a lexgen grammar file, printing
// one token per line or a JSON array. It is the quickest way to try a
// grammar out: point it at a .json, .toml, or .yaml grammar and some
// input, add --trace to watch the scan engine work, or --watch to
// re-tokenize on every grammar edit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/lexgen/lexer"
	"cogentcore.org/lexgen/rules"
	"github.com/spf13/cobra"
)

var (
	grammarFile string
	jsonOut     bool
	traceOn     bool
	watch       bool
	noColor     bool
	verbose     bool
	veryVerbose bool
	quiet       bool
)

func main() {
	root := &cobra.Command{
		Use:   "lexcat [input]",
		Short: "tokenize input with a lexgen grammar",
		Long: `lexcat compiles a lexgen grammar file and tokenizes the given input
file, or standard input. Each token prints as one line with its offset,
position, context group, name, and text; --json prints the full token
list as JSON instead.`,
		Args:             cobra.MaximumNArgs(1),
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRun: setup,
		RunE:             run,
	}
	root.PersistentFlags().StringVarP(&grammarFile, "grammar", "g", "", "grammar file (.json, .toml, .yaml)")
	errors.Log(root.MarkPersistentFlagRequired("grammar"))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational messages")
	root.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "show debug messages")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "show errors only")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&jsonOut, "json", false, "print tokens as a JSON array")
	root.Flags().BoolVar(&traceOn, "trace", false, "trace the scan engine to standard error")
	root.Flags().BoolVar(&watch, "watch", false, "re-tokenize whenever the grammar file changes (requires an input file)")
	root.AddCommand(checkCmd(), fmtCmd())

	if errors.Log(root.Execute()) != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) {
	switch {
	case veryVerbose:
		logx.UserLevel = slog.LevelDebug
	case verbose:
		logx.UserLevel = slog.LevelInfo
	case quiet:
		logx.UserLevel = slog.LevelError
	default:
		logx.UserLevel = slog.LevelWarn
	}
	if !noColor {
		logx.InitColor()
	}
}

func run(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) == 1 {
		input = args[0]
	}
	if watch && input == "" {
		return fmt.Errorf("--watch requires an input file, not standard input")
	}
	once := func() error {
		lx, err := load(grammarFile)
		if err != nil {
			return err
		}
		if traceOn {
			lx.Trace = lexer.TraceAll(nil)
		}
		src, err := readInput(input)
		if err != nil {
			return err
		}
		toks, err := lx.Tokenizer(src).Collect()
		if err != nil {
			return err
		}
		return printTokens(cmd.OutOrStdout(), toks)
	}
	err := once()
	if !watch {
		return err
	}
	if err != nil {
		logx.PrintlnError(err)
	}
	return watchLoop(grammarFile, once)
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "compile the grammar and report any errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := load(grammarFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d groups, start %q\n", grammarFile, lx.Set.Len(), lx.Set.Start())
			return nil
		},
	}
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "print the compiled grammar listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := load(grammarFile)
			if err != nil {
				return err
			}
			return lx.Set.WriteGrammar(cmd.OutOrStdout())
		},
	}
}

// load opens and compiles the grammar file.
func load(filename string) (*lexer.Lexer, error) {
	rs, err := rules.Open(filename)
	if err != nil {
		return nil, err
	}
	lx, err := lexer.Compile(rs)
	if err != nil {
		return nil, err
	}
	logx.PrintlnDebug("lexcat: compiled", filename, "groups:", lx.Set.Len())
	return lx, nil
}

// readInput reads the named file, or standard input when name is empty.
func readInput(name string) (string, error) {
	if name == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}
