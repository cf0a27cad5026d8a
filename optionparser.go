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
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-optionparser/optionparser/internal/tokenqueue"
	"github.com/go-optionparser/optionparser/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parser - Holds the declared options and the parse configuration.
//
// A Parser is meant to be configured once and parsed once. Parse calls are
// serialized but the options keep accumulating results across calls.
type Parser struct {
	mu           sync.Mutex
	options      []*Option
	named        map[string]*Option
	autocomplete bool
	scanAll      bool
	env          Environment
	writer       io.Writer

	nameMu      sync.Mutex // guards programName, Parse holds mu while handlers read it
	programName string
}

// New returns an empty Parser.
// This is the starting point when using go-optionparser.
// For example:
//
//	opt := optionparser.New()
func New() *Parser {
	return &Parser{
		named:   map[string]*Option{},
		scanAll: true,
		env:     OSEnvironment{},
		writer:  os.Stdout,
	}
}

// AddOption - Declares a new option.
// short holds single character aliases, 'h' for -h, and long the long ones, 'help' for --help.
// An empty help text hides the option from the help.
func (p *Parser) AddOption(short, long []string, helpText string) *Option {
	o := newOption(short, long, helpText)
	o.widthFn = func() int { return p.env.Width() }
	p.options = append(p.options, o)
	return o
}

// AddNamedOption - Declares a new option that can later be retrieved by name with Get and Value.
//
// Panics if the name is empty or already in use.
func (p *Parser) AddNamedOption(name string, short, long []string, helpText string) *Option {
	if name == "" {
		panic("Option name can't be empty")
	}
	if _, ok := p.named[name]; ok {
		panic(fmt.Sprintf("Option '%s' is already defined", name))
	}
	o := p.AddOption(short, long, helpText)
	o.name = name
	p.named[name] = o
	return o
}

// Get - Returns the option registered with the given name.
func (p *Parser) Get(name string) (*Option, error) {
	o, ok := p.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: "+text.ErrorNoNamedOption, ErrorNotFound, name)
	}
	return o, nil
}

// Value - Returns the Value of the option registered with the given name.
// See Option.Value for the returned types.
func (p *Parser) Value(name string) (interface{}, error) {
	o, err := p.Get(name)
	if err != nil {
		return nil, err
	}
	return o.Value(), nil
}

// Options - Returns the declared options in definition order.
func (p *Parser) Options() []*Option {
	return append([]*Option{}, p.options...)
}

// Autocomplete - Allows long options to be abbreviated, --verb for --verbose, as
// long as the abbreviation matches a single long alias. Disabled by default.
func (p *Parser) Autocomplete(b bool) *Parser {
	p.autocomplete = b
	return p
}

// ScanAll - When true, the default, non option arguments are set aside and
// parsing continues. When false, parsing stops at the first non option argument.
func (p *Parser) ScanAll(b bool) *Parser {
	p.scanAll = b
	return p
}

// SetEnvironment - Replaces the environment used to read process arguments,
// the terminal width and the program name.
func (p *Parser) SetEnvironment(env Environment) *Parser {
	p.env = env
	return p
}

// SetWriter - Sets the io.Writer the help action writes to. Defaults to os.Stdout.
func (p *Parser) SetWriter(w io.Writer) *Parser {
	p.writer = w
	return p
}

// SetProgramName - Sets the program name used in the help.
func (p *Parser) SetProgramName(name string) *Parser {
	p.nameMu.Lock()
	defer p.nameMu.Unlock()
	p.programName = name
	return p
}

// ProgramName - Returns the program name set with SetProgramName or the one
// reported by the environment.
// It is safe to call while another goroutine parses.
func (p *Parser) ProgramName() string {
	p.nameMu.Lock()
	defer p.nameMu.Unlock()
	if p.programName == "" {
		p.programName = p.env.ProgramName()
	}
	return p.programName
}

// Getopt - Returns the results of all options in a single map keyed by the
// alias used on the command line. Values are false for options without an
// argument, the argument string, or a []interface{} of those when the same
// alias was used more than once.
func (p *Parser) Getopt() map[string]interface{} {
	out := map[string]interface{}{}
	for _, o := range p.options {
		for k, v := range o.Getopt() {
			out[k] = v
		}
	}
	return out
}

// Help - Returns the help of all options with the default layout.
func (p *Parser) Help() string {
	return p.HelpWith(-1, -1, -1)
}

// HelpWith - Returns the help of all options in definition order.
// See Option.Help for the meaning of the arguments.
func (p *Parser) HelpWith(pad, gutter, width int) string {
	var b strings.Builder
	for _, o := range p.options {
		b.WriteString(o.Help(pad, gutter, width))
	}
	return b.String()
}

func (p *Parser) matchLong(name string) *Option {
	for _, o := range p.options {
		if o.MatchesLong(name) {
			return o
		}
	}
	if p.autocomplete {
		var found *Option
		count := 0
		for _, o := range p.options {
			hits := o.AutocompleteCandidates(name)
			count += len(hits)
			if len(hits) > 0 {
				found = o
			}
		}
		if count == 1 {
			Logger.Printf("autocomplete --%s to %s", name, found.Name())
			return found
		}
		Logger.Printf("autocomplete --%s: %d candidates", name, count)
	}
	return p.matchWildcard()
}

func (p *Parser) matchShort(arg string) *Option {
	for _, o := range p.options {
		if o.MatchesShort(arg) {
			return o
		}
	}
	return p.matchWildcard()
}

func (p *Parser) matchWildcard() *Option {
	for _, o := range p.options {
		if o.MatchesWildcard() {
			return o
		}
	}
	return nil
}

// Parse - Parses the given cli arguments and returns the ones that didn't
// match any option, in order.
//
// When args is nil the process arguments from the environment are used,
// without the program path.
//
// Parsing stops at '--', everything after it is returned as is.
// It returns a *MissingValueError when an option with a required argument
// is the last argument, a *ValidationError when a validation function
// rejects an argument, or the error returned by an action.
func (p *Parser) Parse(args []string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if args == nil {
		osArgs := p.env.Args()
		if len(osArgs) == 0 {
			return nil, fmt.Errorf("%w: "+text.ErrorNilArgs, ErrorParsing)
		}
		args = osArgs[1:]
	}
	p.ProgramName()

	queue := tokenqueue.New(args)
	unparsed := []string{}

	for !queue.Empty() {
		current, _ := queue.Front()
		Logger.Printf("token: %q, pending: %d", current, queue.Len())

		switch {
		case current == "--":
			queue.PopFront()
			return append(unparsed, queue.Drain()...), nil

		case strings.HasPrefix(current, "--"):
			name := current[2:]
			value, hasValue := "", false
			if i := strings.Index(name, "="); i > 0 {
				name, value, hasValue = name[:i], name[i+1:], true
			}
			found := p.matchLong(name)
			queue.PopFront()
			if found == nil {
				Logger.Printf("unknown option %s", current)
				unparsed = append(unparsed, current)
				continue
			}
			var err error
			switch found.ArgumentPolicy() {
			case ArgumentNone:
				err = found.HandleOccurrence(name, "", false)
				if hasValue {
					queue.PushFront("=" + value)
				}
			case ArgumentRequired:
				if !hasValue {
					value, hasValue = queue.PopFront()
					if !hasValue {
						return unparsed, &MissingValueError{Option: found, Token: "--" + name}
					}
				}
				err = found.HandleOccurrence(name, value, true)
			case ArgumentOptional:
				err = found.HandleOccurrence(name, value, hasValue)
			default:
				return unparsed, &UnknownArgumentPolicyError{Option: found, Policy: found.ArgumentPolicy()}
			}
			if err != nil {
				return unparsed, err
			}

		case strings.HasPrefix(current, "-"):
			arg, rest := splitShort(current[1:])
			found := p.matchShort(arg)
			queue.PopFront()
			if found == nil {
				Logger.Printf("unknown option -%s", arg)
				unparsed = append(unparsed, "-"+arg)
				if rest != "" {
					queue.PushFront("-" + rest)
				}
				continue
			}
			var err error
			switch found.ArgumentPolicy() {
			case ArgumentNone:
				err = found.HandleOccurrence(arg, "", false)
				if rest != "" {
					queue.PushFront("-" + rest)
				}
			case ArgumentRequired:
				value := strings.TrimPrefix(rest, "=")
				if rest == "" {
					var ok bool
					value, ok = queue.PopFront()
					if !ok {
						return unparsed, &MissingValueError{Option: found, Token: "-" + arg}
					}
				}
				err = found.HandleOccurrence(arg, value, true)
			case ArgumentOptional:
				if strings.HasPrefix(rest, "=") {
					err = found.HandleOccurrence(arg, rest[1:], true)
				} else {
					err = found.HandleOccurrence(arg, "", false)
					if err == nil && rest != "" {
						queue.PushFront("-" + rest)
					}
				}
			default:
				return unparsed, &UnknownArgumentPolicyError{Option: found, Policy: found.ArgumentPolicy()}
			}
			if err != nil {
				return unparsed, err
			}

		case p.scanAll:
			queue.PopFront()
			unparsed = append(unparsed, current)

		default:
			Logger.Printf("stop at non option argument %q", current)
			return append(unparsed, queue.Drain()...), nil
		}
	}
	return unparsed, nil
}

// splitShort - splits the text after a single dash into the option character and the rest.
func splitShort(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}

