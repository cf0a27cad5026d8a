// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optionparser - Go option parser with getopt compatible results.

It will operate on any given slice of strings and return the unparsed (non
used) command line arguments.

# Usage

	opt := optionparser.New()
	opt.AddOption([]string{"h", "?"}, []string{"help"}, "Show this help message").
		Action(opt.HelpAction(""))
	opt.AddOption([]string{"r"}, []string{"required"}, "Specify a required option").
		Argument("OPTION", true).
		Action(func(v string, ok bool) error {
			fmt.Println("Required value: " + v)
			return nil
		})
	optional := opt.AddOption([]string{"o"}, []string{"optional"}, "Add an optional value").
		Argument("VALUE", false)
	opt.AddNamedOption("flag", []string{"f"}, []string{"flag"}, "Turn on some flag")
	opt.AddNamedOption("debug", []string{"d"}, []string{"debug"}, "") // Hidden option

	remaining, err := opt.Parse(os.Args[1:])

# Features

• Support for `--long` options and `-s` short options.

• Bundling of short options: `-abc` is `-a -b -c`.
An option taking an argument uses the rest of the bundle as its argument: `-rVALUE`.

• Multiple short and long aliases for the same option.

• Options with required arguments, `--required=value` or `--required value`,
and with optional arguments, only given with '=': `--optional=value`.

• Validation functions and actions called every time an option is found.

• Abbreviated long options when enabled with Autocomplete and the abbreviation is not ambiguous.

• Wildcard options, declared with a '*' or '-' short alias, catch every option no other option matches.

• Supports passing `--` to stop parsing arguments (everything after will be left in the unparsed slice).

• ScanAll(false) stops parsing at the first non option argument, allowing for subcommands.

• Getopt method returns the results keyed by the alias used, the same shape legacy getopt tooling produces.

• Word wrapped, two column help. Options with an empty help text are hidden.

# Panic

The library will panic if it finds that the programmer (not end user):

• Defined the same option name twice.

• Set a nil action or validation function.

# Concurrency

A Parser serializes calls to Parse but the Options it returns are not safe for
concurrent use while a parse is running.
*/
package optionparser
