// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorMissingValue holds the text for a required argument missing at the end of the input.
// It has a string placeholder '%s' for the option token as typed, dashes included.
var ErrorMissingValue = "Value needed for %s"

// ErrorInvalidHandler holds the text used when a nil handler or validator is registered.
// It has a string placeholder '%s' for the kind of function (action or validation).
var ErrorInvalidHandler = "Invalid %s function specified"

// ErrorUnknownArgumentPolicy holds the text for an option with an argument policy the parser doesn't know.
// It has a placeholder '%d' for the policy and '%s' for the option.
var ErrorUnknownArgumentPolicy = "Invalid argument policy %d for option '%s'"

// ErrorNoNamedOption holds the text for looking up an option name that was never registered.
// It has a string placeholder '%s' for the name.
var ErrorNoNamedOption = "No option named '%s'"

// ErrorNilArgs holds the text used when the environment provides no process arguments.
var ErrorNilArgs = "Unable to parse options, no arguments available"

// HelpUsageHeader holds the header for the usage section of the help action.
var HelpUsageHeader = "Usage:"

// HelpOptionsHeader holds the header for the option list of the help action.
var HelpOptionsHeader = "Available Options:"

// HelpDefaultCmdline holds the command line synopsis used when none is given to the help action.
var HelpDefaultCmdline = "[options]"
