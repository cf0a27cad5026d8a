// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - text layout helpers for option help.
//
// Widths are measured in runes.
package help

import (
	"strings"
	"unicode/utf8"
)

// Default layout values.
const (
	DefaultPad    = 16
	DefaultGutter = 2
	DefaultWidth  = 80
)

// MinTextWidth - Narrowest text column Wrap lays out after the pad.
const MinTextWidth = 8

const trailingSpace = " \t\r\n"

// Padding - returns n spaces.
func Padding(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// lineBreak - returns the rune index and rune length of the first line break in s, or -1.
func lineBreak(s []rune) (int, int) {
	for i, r := range s {
		switch r {
		case '\n':
			return i, 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				return i, 2
			}
			return i, 1
		}
	}
	return -1, 0
}

func lastSpace(s []rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}

// Wrap - word wraps s to lines of at most width runes.
//
// Lines are broken at existing line breaks when they fall within width.
// Otherwise a line is broken after its last space if that space is past 80%
// of width, or cut at width. Every continued line is indented with pad spaces.
// The result always ends in a newline.
//
// A width that leaves less than MinTextWidth runes after the pad is raised to
// pad+MinTextWidth.
func Wrap(s string, pad, width int) string {
	if width < pad+MinTextWidth {
		width = pad + MinTextWidth
	}
	str := []rune(strings.TrimRight(s, trailingSpace))
	spaces := []rune(Padding(pad))
	lines := []string{}
	indent := 0
	for len(str) > 0 {
		if i, l := lineBreak(str); i >= 0 && i <= width {
			lines = append(lines, strings.TrimRight(string(str[:i]), trailingSpace))
			str = str[i+l:]
		} else {
			line := str
			if len(line) > width {
				line = line[:width]
			}
			// The indentation never counts as a break point.
			if sp := lastSpace(line); sp >= indent && float64(sp) > float64(width)*0.8 {
				line = line[:sp+1]
			}
			str = str[len(line):]
			lines = append(lines, strings.TrimRight(string(line), trailingSpace))
		}
		if len(str) > 0 {
			str = append(append([]rune{}, spaces...), str...)
			indent = pad
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// Entry - lays out an option synopsis and its description in two columns.
//
// The description starts at column pad. When the synopsis is wider than
// pad-gutter it gets its own lines and the description starts on the next one.
func Entry(synopsis, description string, pad, gutter, width int) string {
	out := Wrap(Padding(pad)+description, pad, width)
	n := utf8.RuneCountInString(synopsis)
	if n > pad-gutter {
		return Wrap(synopsis, 0, width) + out
	}
	if !strings.HasPrefix(out, Padding(n)) {
		return synopsis + "\n" + out
	}
	return synopsis + out[n:]
}
