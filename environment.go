// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"os"
	"path/filepath"

	"golang.org/x/term"
)

// exitFn - This variable allows to test os.Exit calls
var exitFn = os.Exit

// Environment - What the parser needs from the process it runs in.
type Environment interface {
	// Args - Process arguments, the program path first.
	Args() []string
	// Width - Terminal width in columns, 0 when unknown.
	Width() int
	// ProgramName - Name used to refer to the program in the help.
	ProgramName() string
	// Exit - Terminates the process.
	Exit(code int)
}

// OSEnvironment - Environment backed by the running process.
type OSEnvironment struct{}

// Args - Returns os.Args.
func (OSEnvironment) Args() []string {
	return os.Args
}

// Width - Returns the width of the terminal attached to stdout or 0.
func (OSEnvironment) Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		Logger.Printf("unable to read terminal size: %s", err)
		return 0
	}
	return cols
}

// ProgramName - Returns the base name of os.Args[0].
func (OSEnvironment) ProgramName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Exit - Calls os.Exit.
func (OSEnvironment) Exit(code int) {
	exitFn(code)
}
