// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"fmt"
	"strings"

	"github.com/go-optionparser/optionparser/internal/help"
)

// ArgumentPolicy - Indicates if an option takes an argument.
type ArgumentPolicy int

// Argument policies
const (
	ArgumentNone ArgumentPolicy = iota // Flag, the option never takes an argument
	ArgumentRequired
	ArgumentOptional // Argument only given with the '=' syntax
)

func (p ArgumentPolicy) String() string {
	switch p {
	case ArgumentNone:
		return "none"
	case ArgumentRequired:
		return "required"
	case ArgumentOptional:
		return "optional"
	}
	return fmt.Sprintf("ArgumentPolicy(%d)", int(p))
}

// Handler - Function called every time the option is found.
// ok is false when the option was used without an argument.
// Returning an error stops the parse and Parse returns that error.
type Handler func(value string, ok bool) error

// Validator - Function called with every argument given to the option before it is saved.
// A non nil error rejects the argument and stops the parse.
type Validator func(value string) error

// Value - One argument as found on the command line.
// Set is false for flags and options with an omitted optional argument.
type Value struct {
	String string
	Set    bool
}

// Option - A declared option.
//
// Options are created with Parser.AddOption and configured with the chaining methods:
//
//	opt.AddOption([]string{"r"}, []string{"required"}, "Required argument").
//		Argument("DATA", true).
//		Action(func(v string, ok bool) error { ... })
type Option struct {
	name        string
	short       []string
	long        []string
	description string
	policy      ArgumentPolicy
	argName     string
	validator   Validator
	handler     Handler
	occurrences []Value
	getopt      map[string]interface{}
	widthFn     func() int // Screen width, used when rendering help without an explicit width
}

func newOption(short, long []string, description string) *Option {
	return &Option{
		short:       append([]string{}, short...),
		long:        append([]string{}, long...),
		description: description,
		policy:      ArgumentNone,
		getopt:      map[string]interface{}{},
	}
}

// Name - Returns the reference name if the option was registered with one,
// otherwise its first alias with leading dashes.
func (o *Option) Name() string {
	if o.name != "" {
		return o.name
	}
	if len(o.long) > 0 {
		return "--" + o.long[0]
	}
	if len(o.short) > 0 {
		return "-" + o.short[0]
	}
	return ""
}

// ShortAliases - Returns the short aliases in definition order.
func (o *Option) ShortAliases() []string {
	return append([]string{}, o.short...)
}

// LongAliases - Returns the long aliases in definition order.
func (o *Option) LongAliases() []string {
	return append([]string{}, o.long...)
}

// Description - Returns the help text. An empty description hides the option from the help.
func (o *Option) Description() string {
	return o.description
}

// Argument - Makes the option take an argument.
// name is only used in the help.
// A required argument can be given with '=' or as the next cli arg, an
// optional one only with '='.
func (o *Option) Argument(name string, required bool) *Option {
	o.argName = name
	if required {
		o.policy = ArgumentRequired
	} else {
		o.policy = ArgumentOptional
	}
	return o
}

// Action - Sets the function called every time the option is found.
//
// Panics if fn is nil.
func (o *Option) Action(fn Handler) *Option {
	if fn == nil {
		panic(&InvalidHandlerError{Kind: "action"})
	}
	o.handler = fn
	return o
}

// Validation - Sets the function that validates the arguments given to the option.
//
// Panics if fn is nil.
func (o *Option) Validation(fn Validator) *Option {
	if fn == nil {
		panic(&InvalidHandlerError{Kind: "validation"})
	}
	o.validator = fn
	return o
}

// ArgumentPolicy - Returns whether the option takes no argument, a required one or an optional one.
func (o *Option) ArgumentPolicy() ArgumentPolicy {
	return o.policy
}

// ArgumentName - Returns the argument name used in the help.
func (o *Option) ArgumentName() string {
	return o.argName
}

// MatchesShort - Indicates if s is one of the short aliases.
func (o *Option) MatchesShort(s string) bool {
	return contains(o.short, s)
}

// MatchesLong - Indicates if s is one of the long aliases.
func (o *Option) MatchesLong(s string) bool {
	return contains(o.long, s)
}

// MatchesWildcard - Indicates if the option catches every option no other option matches.
// Wildcard options have '*' or '-' as a short alias.
func (o *Option) MatchesWildcard() bool {
	return contains(o.short, "*") || contains(o.short, "-")
}

// AutocompleteCandidates - Returns the long aliases that start with prefix.
func (o *Option) AutocompleteCandidates(prefix string) []string {
	hits := []string{}
	for _, l := range o.long {
		if strings.HasPrefix(l, prefix) {
			hits = append(hits, l)
		}
	}
	return hits
}

// HandleOccurrence - Records one use of the option under the alias it was called with.
//
// When ok is true and a validation function is set, value is validated first;
// a rejected value returns a *ValidationError and nothing is recorded.
// The action runs before the value is recorded, an error from it is returned
// as is.
func (o *Option) HandleOccurrence(usedAlias, value string, ok bool) error {
	Logger.Printf("handle option %s as '%s', value: %q, set: %v", o.Name(), usedAlias, value, ok)
	if ok && o.validator != nil {
		if err := o.validator(value); err != nil {
			return &ValidationError{Option: o, Value: value, Err: err}
		}
	}
	if o.handler != nil {
		if err := o.handler(value, ok); err != nil {
			return err
		}
	}
	o.occurrences = append(o.occurrences, Value{String: value, Set: ok})

	var getoptValue interface{} = false
	if o.policy != ArgumentNone && ok {
		getoptValue = value
	}
	switch prev := o.getopt[usedAlias].(type) {
	case nil:
		o.getopt[usedAlias] = getoptValue
	case []interface{}:
		o.getopt[usedAlias] = append(prev, getoptValue)
	default:
		o.getopt[usedAlias] = []interface{}{prev, getoptValue}
	}
	return nil
}

// Count - Number of times the option was found.
func (o *Option) Count() int {
	return len(o.occurrences)
}

// OccurrenceCount - Number of times the option was found.
func (o *Option) OccurrenceCount() int {
	return o.Count()
}

// OccurrenceValues - Returns every value recorded for the option in order.
func (o *Option) OccurrenceValues() []Value {
	return append([]Value{}, o.occurrences...)
}

// LastValue - Returns the last argument given to the option.
// ok is false when the option wasn't found or its last use had no argument.
func (o *Option) LastValue() (string, bool) {
	if len(o.occurrences) == 0 {
		return "", false
	}
	v := o.occurrences[len(o.occurrences)-1]
	return v.String, v.Set
}

// Value - Returns the last argument given to the option as a string, or nil
// if there isn't one.
//
// NOTE: For flags, options without an argument, it returns the number of times
// the option was found as an int instead.
func (o *Option) Value() interface{} {
	if o.policy == ArgumentNone {
		return o.Count()
	}
	if v, ok := o.LastValue(); ok {
		return v
	}
	return nil
}

// Values - Returns every value recorded for the option as a []Value.
//
// NOTE: For flags it returns the number of times the option was found as an int instead.
func (o *Option) Values() interface{} {
	if o.policy == ArgumentNone {
		return o.Count()
	}
	return o.OccurrenceValues()
}

// Getopt - Returns the option results keyed by the alias used on the command line.
// Values are false, a string or, when the alias was used more than once, a []interface{} of those.
func (o *Option) Getopt() map[string]interface{} {
	out := make(map[string]interface{}, len(o.getopt))
	for k, v := range o.getopt {
		if list, ok := v.([]interface{}); ok {
			v = append([]interface{}{}, list...)
		}
		out[k] = v
	}
	return out
}

// Synopsis - Returns the aliases as shown in the help. For example: '-r, --required DATA'.
func (o *Option) Synopsis() string {
	aliases := []string{}
	for _, s := range o.short {
		aliases = append(aliases, "-"+s)
	}
	for _, l := range o.long {
		aliases = append(aliases, "--"+l)
	}
	out := strings.Join(aliases, ", ")
	switch o.policy {
	case ArgumentRequired:
		out += " " + o.argName
	case ArgumentOptional:
		out += "[=" + o.argName + "]"
	}
	return out
}

// Help - Returns the help entry for the option, or an empty string for hidden options.
//
// The description starts at column pad; gutter is the minimum space between
// the synopsis and the description; lines are wrapped at width.
// Negative values select the defaults: pad 16, gutter 2 and the screen width minus the gutter.
func (o *Option) Help(pad, gutter, width int) string {
	if o.description == "" {
		return ""
	}
	if pad < 0 {
		pad = help.DefaultPad
	}
	if gutter < 0 {
		gutter = help.DefaultGutter
	}
	if width < 0 {
		width = o.screenWidth() - gutter
	}
	return help.Entry(o.Synopsis(), o.description, pad, gutter, width)
}

func (o *Option) screenWidth() int {
	if o.widthFn != nil {
		if w := o.widthFn(); w > 0 {
			return w
		}
	}
	return help.DefaultWidth
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
