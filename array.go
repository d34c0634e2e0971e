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

// Array accepts arrays and decodes every item with elem. The first item
// that fails stops decoding and its error is returned unchanged.
func Array[O any](elem Typed[O]) *Validator[[]O, []Value] {
	if elem == nil {
		return invalid[[]O, []Value](ErrNilValidator)
	}
	if err := elem.Err(); err != nil {
		return invalid[[]O, []Value](err)
	}

	return Create(func(val Value) ([]Value, bool) {
		return val.AsArray()
	}, func(items []Value) ([]O, error) {
		out := make([]O, len(items))
		for i, item := range items {
			decoded, err := elem.Decode(item)
			if err != nil {
				return nil, err
			}
			out[i] = decoded
		}
		return out, nil
	}).expecting(ArrayKind)
}
