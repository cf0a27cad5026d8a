// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package scenario - declarative parser scenarios.
//
// A scenario describes a parser (its options and configuration), a list of
// cli args with the expected getopt results and unparsed args, and the
// expected help. Scenarios are read from YAML, JSON or TOML files.
package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/go-optionparser/optionparser"
)

// Help layout used to render the expected help.
const (
	HelpPad    = 16
	HelpGutter = 2
	HelpWidth  = 78
)

// Format - Scenario file format.
type Format int

// Formats
const (
	YAML Format = iota // Also used for JSON
	TOML
)

// FormatFromPath - Returns the format based on the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("unknown scenario format: '%s'", path)
}

// Aliases - List of aliases that can be written as a single string or a list.
type Aliases []string

// UnmarshalYAML - Implements yaml.Unmarshaler.
func (a *Aliases) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*a = nil
			return nil
		}
		*a = Aliases{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*a = list
		return nil
	}
	return fmt.Errorf("line %d: aliases must be a string or a list of strings", value.Line)
}

// UnmarshalTOML - Implements toml.Unmarshaler.
func (a *Aliases) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		*a = Aliases{v}
		return nil
	case []interface{}:
		list := Aliases{}
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("aliases must be strings, got %T", e)
			}
			list = append(list, s)
		}
		*a = list
		return nil
	}
	return fmt.Errorf("aliases must be a string or a list of strings, got %T", data)
}

// OptionDef - Option declaration.
type OptionDef struct {
	ShortOptions     Aliases `yaml:"shortOptions" toml:"shortOptions"`
	LongOptions      Aliases `yaml:"longOptions" toml:"longOptions"`
	Help             string  `yaml:"help" toml:"help"`
	Name             string  `yaml:"name" toml:"name"`
	ArgumentName     string  `yaml:"argumentName" toml:"argumentName"`
	ArgumentRequired *bool   `yaml:"argumentRequired" toml:"argumentRequired"` // Defaults to true
}

// Case - Parse input and its expected results.
//
// Getopt values follow the parser's shape: false, or null, for an occurrence
// without a value, a value, or a list of those. Values that are not strings,
// like 5 or true, are compared in their text form; quote "false" to expect
// the string.
type Case struct {
	Parse    []string               `yaml:"parse" toml:"parse"`
	Getopt   map[string]interface{} `yaml:"getopt" toml:"getopt"`
	Unparsed []string               `yaml:"unparsed" toml:"unparsed"`
	Error    string                 `yaml:"error" toml:"error"` // Expected error message
}

// Scenario - Parser definition and the cases to check against it.
type Scenario struct {
	Name         string      `yaml:"name" toml:"name"`
	Autocomplete bool        `yaml:"autocomplete" toml:"autocomplete"`
	ScanAll      *bool       `yaml:"scanAll" toml:"scanAll"` // Defaults to true
	Options      []OptionDef `yaml:"options" toml:"options"`
	Tests        []Case      `yaml:"tests" toml:"tests"`
	Help         []string    `yaml:"help" toml:"help"` // Expected help lines, nil skips the check
}

// Decode - Reads a scenario in the given format.
func Decode(r io.Reader, format Format) (*Scenario, error) {
	s := &Scenario{}
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(s); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate - Checks the option declarations can be registered on a parser.
func (s *Scenario) Validate() error {
	names := map[string]bool{}
	for _, def := range s.Options {
		if def.Name == "" {
			continue
		}
		if names[def.Name] {
			return fmt.Errorf("option name '%s' defined twice", def.Name)
		}
		names[def.Name] = true
	}
	return nil
}

// Load - Reads a scenario file. The format is chosen by extension.
// The file name is used as the scenario name if it doesn't have one.
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

// LoadDir - Reads every scenario file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFromPath(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	list := []*Scenario{}
	for _, name := range names {
		s, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// Parser - Builds a new parser from the scenario definition.
// The scenario must be valid, see Validate.
func (s *Scenario) Parser() *optionparser.Parser {
	scanAll := true
	if s.ScanAll != nil {
		scanAll = *s.ScanAll
	}
	p := optionparser.New().
		Autocomplete(s.Autocomplete).
		ScanAll(scanAll).
		SetProgramName(s.Name)
	for _, def := range s.Options {
		var o *optionparser.Option
		if def.Name != "" {
			o = p.AddNamedOption(def.Name, def.ShortOptions, def.LongOptions, def.Help)
		} else {
			o = p.AddOption(def.ShortOptions, def.LongOptions, def.Help)
		}
		if def.ArgumentName != "" {
			o.Argument(def.ArgumentName, def.ArgumentRequired == nil || *def.ArgumentRequired)
		}
	}
	return p
}

// Failure - A difference between a scenario expectation and the parser results.
type Failure struct {
	Scenario string
	Args     []string // nil for help failures
	What     string   // getopt, unparsed, error or help
	Diff     string
}

func (f Failure) String() string {
	if f.What == "help" {
		return fmt.Sprintf("%s: help difference (-want +got):\n%s", f.Scenario, f.Diff)
	}
	return fmt.Sprintf("%s: %s difference parsing %q (-want +got):\n%s", f.Scenario, f.What, f.Args, f.Diff)
}

// Check - Runs every case against a new parser and compares the help.
func (s *Scenario) Check() []Failure {
	failures := []Failure{}
	equateEmpty := cmpopts.EquateEmpty()
	for _, c := range s.Tests {
		args := c.Parse
		if args == nil {
			args = []string{}
		}
		p := s.Parser()
		unparsed, err := p.Parse(args)
		errStr := ""
		if err != nil {
			errStr = err.Error()
		}
		if errStr != c.Error {
			failures = append(failures, Failure{s.Name, args, "error", cmp.Diff(c.Error, errStr)})
			continue
		}
		if err != nil {
			continue
		}
		if diff := cmp.Diff(getoptText(c.Getopt), p.Getopt(), equateEmpty); diff != "" {
			failures = append(failures, Failure{s.Name, args, "getopt", diff})
		}
		if diff := cmp.Diff(c.Unparsed, unparsed, equateEmpty); diff != "" {
			failures = append(failures, Failure{s.Name, args, "unparsed", diff})
		}
	}
	if s.Help != nil {
		help := strings.TrimRight(s.Parser().HelpWith(HelpPad, HelpGutter, HelpWidth), " \t\r\n")
		if diff := cmp.Diff(s.Help, strings.Split(help, "\n"), equateEmpty); diff != "" {
			failures = append(failures, Failure{s.Name, nil, "help", diff})
		}
	}
	return failures
}

// getoptText - Returns the expected getopt with scalar values in text form.
func getoptText(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := map[string]interface{}{}
	for k, v := range m {
		out[k] = valueText(v)
	}
	return out
}

func valueText(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		if !x {
			return false
		}
		return "true"
	case string:
		return x
	case []interface{}:
		list := make([]interface{}, len(x))
		for i, e := range x {
			list[i] = valueText(e)
		}
		return list
	}
	return fmt.Sprint(v)
}
