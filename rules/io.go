// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/indent"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a grammar file format.
type Format int

const (
	JSON Format = iota
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatForFile returns the [Format] matching the file's extension:
// .json, .toml, or .yaml / .yml.
func FormatForFile(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("rules: no grammar format for file %q", filename)
}

// grammar file forms. Transforms are code-only and have no file form;
// skip is the one transform-like behavior expressible in a file.
type fileRules struct {
	Groups []fileGroup `json:"groups" toml:"groups" yaml:"groups"`
}

type fileGroup struct {
	Group string     `json:"group" toml:"group" yaml:"group"`
	Rules []fileSpec `json:"rules" toml:"rules" yaml:"rules"`
}

type fileSpec struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Match string `json:"match,omitempty" toml:"match,omitempty" yaml:"match,omitempty"`
	Pop   bool   `json:"pop,omitempty" toml:"pop,omitempty" yaml:"pop,omitempty"`
	Push  string `json:"push,omitempty" toml:"push,omitempty" yaml:"push,omitempty"`
	Skip  bool   `json:"skip,omitempty" toml:"skip,omitempty" yaml:"skip,omitempty"`
}

// Read decodes a rule table in the given format. Unknown keys are an
// error in every format, so typos in grammar files fail loudly instead
// of silently dropping a rule attribute. Pattern strings follow
// [ParsePattern]; an omitted match matches the rule name literally.
func Read(r io.Reader, f Format) (Rules, error) {
	var fr fileRules
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&fr)
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&fr)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&fr)
	default:
		return nil, fmt.Errorf("rules: unknown format %v", f)
	}
	if err != nil {
		return nil, fmt.Errorf("rules: invalid grammar: %w", err)
	}
	rs := make(Rules, 0, len(fr.Groups))
	for _, fg := range fr.Groups {
		g := Group{Name: fg.Group, Specs: make([]Spec, 0, len(fg.Rules))}
		for _, fsp := range fg.Rules {
			sp := Spec{Name: fsp.Name, Pop: fsp.Pop, Push: fsp.Push, Skip: fsp.Skip}
			if fsp.Match != "" {
				sp.Pattern = ParsePattern(fsp.Match)
			}
			g.Specs = append(g.Specs, sp)
		}
		rs = append(rs, g)
	}
	return rs, nil
}

// Write encodes the rule table in the given format, the inverse of
// [Read]. Transform functions have no file form and are dropped; a
// table read back from the output must have its transforms reattached
// in code.
func Write(w io.Writer, rs Rules, f Format) error {
	fr := fileRules{Groups: make([]fileGroup, 0, len(rs))}
	for _, g := range rs {
		fg := fileGroup{Group: g.Name, Rules: make([]fileSpec, 0, len(g.Specs))}
		for _, sp := range g.Specs {
			fsp := fileSpec{Name: sp.Name, Pop: sp.Pop, Push: sp.Push, Skip: sp.Skip}
			if !sp.Pattern.IsZero() {
				fsp.Match = sp.Pattern.String()
			}
			fg.Rules = append(fg.Rules, fsp)
		}
		fr.Groups = append(fr.Groups, fg)
	}
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(&fr)
	case TOML:
		return toml.NewEncoder(w).Encode(&fr)
	case YAML:
		return yaml.NewEncoder(w).Encode(&fr)
	}
	return fmt.Errorf("rules: unknown format %v", f)
}

// Open reads a rule table from the given grammar file, with the format
// taken from the file extension per [FormatForFile].
func Open(filename string) (Rules, error) {
	f, err := FormatForFile(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp, f)
}

// Save writes the rule table to the given grammar file, with the format
// taken from the file extension per [FormatForFile].
func Save(filename string, rs Rules) error {
	f, err := FormatForFile(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(fp, rs, f)
}

// WriteGrammar writes a human-readable listing of the compiled set for
// review: each context in declaration order with its own rules, then
// the applies-everywhere rules including the catch-all. The output is
// not a grammar file format.
func (s *Set) WriteGrammar(w io.Writer) error {
	ind := indent.Tabs(1)
	for i := 0; i < s.groups.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%s:\n", s.groups.KeyByIndex(i)); err != nil {
			return err
		}
		for _, r := range s.groups.ValueByIndex(i) {
			if _, err := fmt.Fprintf(w, "%s%v\n", ind, r); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "%s:\n", Always); err != nil {
		return err
	}
	for _, r := range s.always {
		if _, err := fmt.Fprintf(w, "%s%v\n", ind, r); err != nil {
			return err
		}
	}
	return nil
}
