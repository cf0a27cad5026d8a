// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionMatching(t *testing.T) {
	o := newOption([]string{"h", "?"}, []string{"help", "halp"}, "Help")
	cases := []struct {
		name string
		fn   func(string) bool
		in   string
		out  bool
	}{
		{"short", o.MatchesShort, "h", true},
		{"short alias", o.MatchesShort, "?", true},
		{"short is not long", o.MatchesShort, "help", false},
		{"long", o.MatchesLong, "help", true},
		{"long alias", o.MatchesLong, "halp", true},
		{"long prefix", o.MatchesLong, "hel", false},
		{"long is not short", o.MatchesLong, "h", false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.out {
				t.Errorf("match(%q) == %v, want %v", tt.in, got, tt.out)
			}
		})
	}
	if o.MatchesWildcard() {
		t.Errorf("unexpected wildcard")
	}
	if !newOption([]string{"*"}, nil, "").MatchesWildcard() || !newOption([]string{"x", "-"}, nil, "").MatchesWildcard() {
		t.Errorf("wildcard not detected")
	}
	if diff := cmp.Diff([]string{"help", "halp"}, o.AutocompleteCandidates("h")); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{}, o.AutocompleteCandidates("x")); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleOccurrence(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		o := newOption([]string{"f"}, []string{"flag"}, "")
		for _, alias := range []string{"f", "flag", "f", "f"} {
			if err := o.HandleOccurrence(alias, "", false); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
		}
		expected := map[string]interface{}{"f": []interface{}{false, false, false}, "flag": false}
		if diff := cmp.Diff(expected, o.Getopt()); diff != "" {
			t.Errorf("getopt mismatch (-want +got):\n%s", diff)
		}
		if o.Value() != 4 || o.Values() != 4 || o.Count() != 4 || o.OccurrenceCount() != 4 {
			t.Errorf("wrong count: %v, %v", o.Value(), o.Values())
		}
	})

	t.Run("argument", func(t *testing.T) {
		o := newOption([]string{"r"}, nil, "").Argument("DATA", true)
		if o.Value() != nil {
			t.Errorf("unexpected value: %v", o.Value())
		}
		if _, ok := o.LastValue(); ok {
			t.Errorf("unexpected last value")
		}
		_ = o.HandleOccurrence("r", "one", true)
		_ = o.HandleOccurrence("r", "two", true)
		if o.Value() != "two" {
			t.Errorf("wrong value: %v", o.Value())
		}
		expected := []Value{{"one", true}, {"two", true}}
		if !reflect.DeepEqual(o.Values(), expected) {
			t.Errorf("wrong values: %v", o.Values())
		}
		if diff := cmp.Diff(map[string]interface{}{"r": []interface{}{"one", "two"}}, o.Getopt()); diff != "" {
			t.Errorf("getopt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("optional without value", func(t *testing.T) {
		o := newOption([]string{"o"}, nil, "").Argument("VALUE", false)
		_ = o.HandleOccurrence("o", "x", true)
		_ = o.HandleOccurrence("o", "", false)
		if o.Value() != nil {
			t.Errorf("unexpected value: %v", o.Value())
		}
		if diff := cmp.Diff(map[string]interface{}{"o": []interface{}{"x", false}}, o.Getopt()); diff != "" {
			t.Errorf("getopt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("action receives the value", func(t *testing.T) {
		got := []Value{}
		o := newOption([]string{"o"}, nil, "").Argument("VALUE", false).
			Action(func(v string, ok bool) error {
				got = append(got, Value{v, ok})
				return nil
			})
		_ = o.HandleOccurrence("o", "", false)
		_ = o.HandleOccurrence("o", "x", true)
		if diff := cmp.Diff([]Value{{}, {"x", true}}, got); diff != "" {
			t.Errorf("action mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("validation before action", func(t *testing.T) {
		errInvalid := errors.New("invalid")
		called := false
		o := newOption([]string{"o"}, nil, "").Argument("VALUE", true).
			Validation(func(string) error { return errInvalid }).
			Action(func(string, bool) error { called = true; return nil })
		err := o.HandleOccurrence("o", "x", true)
		checkError(t, err, errInvalid)
		checkError(t, err, ErrorValidation)
		if called || o.Count() != 0 || len(o.Getopt()) != 0 {
			t.Errorf("rejected value handled")
		}
	})

	t.Run("getopt copy", func(t *testing.T) {
		o := newOption([]string{"r"}, nil, "").Argument("DATA", true)
		_ = o.HandleOccurrence("r", "one", true)
		_ = o.HandleOccurrence("r", "two", true)
		g := o.Getopt()
		g["r"].([]interface{})[0] = "changed"
		if o.Getopt()["r"].([]interface{})[0] != "one" {
			t.Errorf("internal state modified through Getopt")
		}
	})
}

func TestInvalidHandler(t *testing.T) {
	for _, tt := range []struct {
		name string
		fn   func(o *Option)
		kind string
	}{
		{"action", func(o *Option) { o.Action(nil) }, "action"},
		{"validation", func(o *Option) { o.Validation(nil) }, "validation"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(*InvalidHandlerError)
				if !ok {
					t.Fatalf("wrong panic: %#v", r)
				}
				if err.Kind != tt.kind || err.Error() != "Invalid "+tt.kind+" function specified" {
					t.Errorf("wrong error: %s", err)
				}
			}()
			tt.fn(newOption([]string{"a"}, nil, ""))
		})
	}
}

func TestOptionHelp(t *testing.T) {
	tests := []struct {
		name     string
		option   *Option
		expected string
	}{
		{"hidden", newOption([]string{"d"}, []string{"debug"}, ""), ""},
		{"flag", newOption([]string{"h"}, []string{"help"}, "Show help"),
			"-h, --help      Show help\n"},
		{"long only", newOption(nil, []string{"all"}, "All"),
			"--all           All\n"},
		{"required", newOption([]string{"n"}, nil, "Name").Argument("NAME", true),
			"-n NAME         Name\n"},
		{"optional", newOption([]string{"n"}, nil, "Name").Argument("NAME", false),
			"-n[=NAME]       Name\n"},
		{"long synopsis", newOption([]string{"n"}, []string{"name"}, "Name").Argument("NAME", false),
			"-n, --name[=NAME]\n                Name\n"},
		{"multi line description", newOption([]string{"n"}, nil, "First line\nSecond line"),
			"-n              First line\n                Second line\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.option.Help(16, 2, 78)
			if got != tt.expected {
				t.Errorf("Unexpected help:\n%s", firstDiff(got, tt.expected))
			}
		})
	}

	o := newOption([]string{"n"}, nil, "Name")
	if o.Help(-1, -1, -1) != o.Help(16, 2, 78) {
		t.Errorf("wrong defaults: %q", o.Help(-1, -1, -1))
	}
	if o.Help(4, 1, 78) != "-n  Name\n" {
		t.Errorf("wrong pad: %q", o.Help(4, 1, 78))
	}
}

func TestArgumentPolicyString(t *testing.T) {
	for p, s := range map[ArgumentPolicy]string{
		ArgumentNone:      "none",
		ArgumentRequired:  "required",
		ArgumentOptional:  "optional",
		ArgumentPolicy(7): "ArgumentPolicy(7)",
	} {
		if p.String() != s {
			t.Errorf("%d: got %s, want %s", int(p), p.String(), s)
		}
	}
}

func TestUnknownArgumentPolicy(t *testing.T) {
	opt := New()
	opt.SetEnvironment(&testEnvironment{})
	o := opt.AddOption([]string{"x"}, []string{"xx"}, "")
	o.policy = ArgumentPolicy(7)
	for _, args := range [][]string{{"-x"}, {"--xx"}} {
		_, err := opt.Parse(args)
		checkError(t, err, ErrorParsing)
		var pErr *UnknownArgumentPolicyError
		if !errors.As(err, &pErr) || pErr.Option != o || pErr.Policy != ArgumentPolicy(7) {
			t.Errorf("wrong error: %#v", err)
		}
		if err.Error() != "Invalid argument policy 7 for option '--xx'" {
			t.Errorf("wrong message: %s", err)
		}
	}
}
