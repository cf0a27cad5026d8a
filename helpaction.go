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
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/go-optionparser/optionparser/text"
)

var headerColor = color.New(color.Bold)

// HelpAction - Returns an action that prints the usage and the option help
// to the parser writer and exits with status 0.
//
// cmdline is shown after the program name, it defaults to '[options]'.
//
//	opt.AddOption([]string{"h"}, []string{"help"}, "Show this help message").
//		Action(opt.HelpAction(""))
//
// If the environment's Exit returns, the action returns ErrorHelpCalled.
func (p *Parser) HelpAction(cmdline string) Handler {
	if cmdline == "" {
		cmdline = text.HelpDefaultCmdline
	}
	return func(string, bool) error {
		w := p.writer
		fmt.Fprintln(w, header(w, text.HelpUsageHeader))
		fmt.Fprintf(w, "    %s %s\n\n", p.ProgramName(), cmdline)
		fmt.Fprintln(w, header(w, text.HelpOptionsHeader))
		fmt.Fprintln(w, strings.TrimSuffix(p.Help(), "\n"))
		p.env.Exit(0)
		return ErrorHelpCalled
	}
}

// header - highlights s when w is a terminal.
func header(w io.Writer, s string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s
	}
	return headerColor.Sprint(s)
}
