// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokenqueue - double ended queue of pending cli tokens.
//
// Tokens are consumed from the front and can be pushed back to the front to
// be scanned again, for example the remainder of a bundled short option.
package tokenqueue

// Queue - pending tokens
type Queue struct {
	data []string
	head int
}

// New - builds a Queue holding a copy of s.
func New(s []string) *Queue {
	data := make([]string, len(s))
	copy(data, s)
	return &Queue{data: data}
}

// Len - number of pending tokens.
func (q *Queue) Len() int {
	return len(q.data) - q.head
}

// Empty - tells if there are no pending tokens.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Front - returns the first pending token without consuming it.
func (q *Queue) Front() (string, bool) {
	if q.Empty() {
		return "", false
	}
	return q.data[q.head], true
}

// PopFront - consumes the first pending token.
func (q *Queue) PopFront() (string, bool) {
	if q.Empty() {
		return "", false
	}
	s := q.data[q.head]
	q.data[q.head] = ""
	q.head++
	return s, true
}

// PushFront - puts a token back at the front so it is the next one read.
func (q *Queue) PushFront(s string) {
	if q.head > 0 {
		q.head--
		q.data[q.head] = s
		return
	}
	q.data = append([]string{s}, q.data...)
}

// Drain - consumes and returns all pending tokens.
func (q *Queue) Drain() []string {
	out := make([]string, q.Len())
	copy(out, q.data[q.head:])
	q.data = q.data[:0]
	q.head = 0
	return out
}
