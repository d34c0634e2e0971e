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
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"
)

// String accepts string values.
var String = New(func(val Value) (string, bool) {
	return val.AsString()
}).expecting(StringKind)

// MinLength rejects strings shorter than min runes.
func MinLength(min int, message ...string) Check[string] {
	return func(val string) error {
		if utf8.RuneCountInString(val) < min {
			return failure(message, "string too short")
		}
		return nil
	}
}

// MaxLength rejects strings longer than max runes.
func MaxLength(max int, message ...string) Check[string] {
	return func(val string) error {
		if utf8.RuneCountInString(val) > max {
			return failure(message, "string too long")
		}
		return nil
	}
}

// Matches compiles patt once. A bad pattern makes every check fail with
// ErrInvalidRegexp, which is not a validation failure.
func Matches(patt string, message ...string) Check[string] {
	re, err := regexp.Compile(patt)
	return func(val string) error {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRegexp, err)
		}
		if !re.MatchString(val) {
			return failure(message, "string does not match pattern")
		}
		return nil
	}
}

func Email(message ...string) Check[string] {
	return func(val string) error {
		_, err := mail.ParseAddress(val)
		if err != nil {
			return failure(message, "invalid email address", err)
		}
		return nil
	}
}
