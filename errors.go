package ursa

// ursa is a zod inspired validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"errors"
	"fmt"
	"strings"
)

type errorCode int

const (
	codeCustom errorCode = iota
	codeInvalidLiteral
	codeRequiredKeyMissing
	codeExtraKey
	codeNoMatch
	codeInvalidValue
)

// ValidationError reports that a value had the right shape but could not be
// decoded. It is the only error kind combinators recover from.
type ValidationError struct {
	code    errorCode
	message string
	key     string
	inner   []error
}

var (
	ErrInvalidLiteral = &ValidationError{
		code:    codeInvalidLiteral,
		message: "invalid literal",
	}

	ErrRequiredKeyMissing = &ValidationError{
		code:    codeRequiredKeyMissing,
		message: "required key missing",
	}

	ErrExtraKey = &ValidationError{
		code:    codeExtraKey,
		message: "extra key",
	}

	ErrNoMatch = &ValidationError{
		code:    codeNoMatch,
		message: "no union branch matched",
	}

	ErrInvalidValue = &ValidationError{
		code:    codeInvalidValue,
		message: "invalid value",
	}
)

// NewValidationError builds a recoverable failure for use inside custom
// validate functions.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{code: codeCustom, message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.key != "" {
		return fmt.Sprintf("%s: %q", e.message, e.key)
	}
	return e.message
}

// Key is the object key the failure refers to, if any.
func (e *ValidationError) Key() string {
	return e.key
}

func (e *ValidationError) Inner() []error {
	return e.inner
}

func (e *ValidationError) Unwrap() []error {
	return e.inner
}

// Is matches sentinels by kind, so a keyed error still satisfies
// errors.Is(err, ErrExtraKey). Custom errors only match themselves.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if e.code == codeCustom || t.code == codeCustom {
		return e == t
	}
	return e.code == t.code
}

func (e *ValidationError) withKey(key string) *ValidationError {
	return &ValidationError{code: e.code, message: e.message, key: key, inner: e.inner}
}

func (e *ValidationError) withMessage(message []string) *ValidationError {
	if len(message) == 0 {
		return e
	}
	return &ValidationError{code: e.code, message: message[0], key: e.key, inner: e.inner}
}

// IsValidationError reports whether err, or anything it wraps, is a
// *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TypeMismatchError is returned by Decode when the input's shape is not one
// the validator accepts at all.
type TypeMismatchError struct {
	Expected Kind
	Actual   Kind
	known    bool
}

var ErrTypeMismatch = &TypeMismatchError{}

func (e *TypeMismatchError) Error() string {
	if e.known {
		return fmt.Sprintf("invalid type: expected %s, got %s", e.Expected, e.Actual)
	}
	if e == ErrTypeMismatch {
		return "invalid type"
	}
	return fmt.Sprintf("invalid type: got %s", e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func mismatch(expected []Kind, actual Value) *TypeMismatchError {
	if len(expected) == 1 {
		return &TypeMismatchError{Expected: expected[0], Actual: actual.Kind(), known: true}
	}
	return &TypeMismatchError{Actual: actual.Kind()}
}

var (
	// ErrInvalidValidatorState wraps configuration errors carried by a
	// validator that was built with bad arguments.
	ErrInvalidValidatorState = errors.New("invalid validator state")

	ErrEmptyUnion       = errors.New("union requires at least one branch")
	ErrEmptyLiteral     = errors.New("literal requires at least one value")
	ErrNilValidator     = errors.New("nil validator")
	ErrMissingIdentity  = errors.New("validate function omitted but input type does not convert to output type")
	ErrUnsupportedType  = errors.New("unsupported Go type")
	ErrInvalidRegexp    = errors.New("invalid regexp pattern")
	ErrUnsupportedValue = errors.New("unsupported literal value")
)

func joinMessages(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
