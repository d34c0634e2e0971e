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

// Any accepts every value, undefined included, and returns it untouched.
var Any = New(func(val Value) (Value, bool) {
	return val, true
})

// Null accepts null and decodes it to nil.
var Null = New(func(val Value) (any, bool) {
	return nil, val.Kind() == NullKind
}).expecting(NullKind)

// Undefined accepts only the undefined value, which is what a missing object
// key decodes from. The output is nil.
var Undefined = New(func(val Value) (any, bool) {
	return nil, val.IsUndefined()
}).expecting(UndefinedKind)
