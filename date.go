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

import "time"

// Time accepts strings and parses them with layout. Strings that do not
// parse are validation failures.
func Time(layout string) *Validator[time.Time, string] {
	return Create(String.Narrow, func(s string) (time.Time, error) {
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, failure(nil, "invalid date", err)
		}
		return t, nil
	}).expecting(StringKind)
}

func NotBefore(datum time.Time, message ...string) Check[time.Time] {
	return func(val time.Time) error {
		if val.Before(datum) {
			return failure(message, "date is too early")
		}
		return nil
	}
}

func NotAfter(datum time.Time, message ...string) Check[time.Time] {
	return func(val time.Time) error {
		if val.After(datum) {
			return failure(message, "date is too late")
		}
		return nil
	}
}
