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
	"fmt"

	"github.com/go-optionparser/optionparser/text"
)

// ErrorHelpCalled - Indicates the help has been handled.
var ErrorHelpCalled = fmt.Errorf("help called")

// ErrorParsing - Indicates that there was an error with cli args parsing
var ErrorParsing = errors.New("parsing error")

// ErrorMissingValue - Indicates that an option requiring an argument reached the end of the input without one.
var ErrorMissingValue = fmt.Errorf("%w: missing value", ErrorParsing)

// ErrorValidation - Indicates that a validation function rejected an option argument.
var ErrorValidation = fmt.Errorf("%w: validation failed", ErrorParsing)

// ErrorNotFound - Generic not found error
var ErrorNotFound = fmt.Errorf("not found")

// MissingValueError - An option with a required argument was the last token.
type MissingValueError struct {
	Option *Option
	Token  string // Option as typed, including dashes. For example: --name or -n
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf(text.ErrorMissingValue, e.Token)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrorMissingValue || target == ErrorParsing
}

// ValidationError - The option's validation function rejected Value.
// The message is the one returned by the validation function.
type ValidationError struct {
	Option *Option
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation || target == ErrorParsing
}

// InvalidHandlerError - A nil action or validation function was registered.
// It is used as a panic value, the programmer has to fix this.
type InvalidHandlerError struct {
	Kind string // action or validation
}

func (e *InvalidHandlerError) Error() string {
	return fmt.Sprintf(text.ErrorInvalidHandler, e.Kind)
}

// UnknownArgumentPolicyError - The parser found an argument policy it can't handle.
type UnknownArgumentPolicyError struct {
	Option *Option
	Policy ArgumentPolicy
}

func (e *UnknownArgumentPolicyError) Error() string {
	return fmt.Sprintf(text.ErrorUnknownArgumentPolicy, int(e.Policy), e.Option.Name())
}

func (e *UnknownArgumentPolicyError) Unwrap() error {
	return ErrorParsing
}
