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

// UnionOf accepts a value when any branch accepts its shape. Decoding tries
// the matching branches in order and returns the first success. A branch
// failing with a *ValidationError hands over to the next one; any other
// error aborts the union. When every matching branch fails the result is
// ErrNoMatch.
func UnionOf[O any](branches ...Typed[O]) *Validator[O, Value] {
	if len(branches) == 0 {
		return invalid[O, Value](ErrEmptyUnion)
	}

	bs := make([]Typed[O], len(branches))
	for i, b := range branches {
		if b == nil {
			return invalid[O, Value](ErrNilValidator)
		}
		if err := b.Err(); err != nil {
			return invalid[O, Value](err)
		}
		bs[i] = b
	}

	return Create(func(val Value) (Value, bool) {
		for _, b := range bs {
			if b.Is(val) {
				return val, true
			}
		}
		return Value{}, false
	}, func(val Value) (O, error) {
		var zero O
		for _, b := range bs {
			out, matched, err := b.attemptTyped(val)
			if !matched {
				continue
			}
			if err == nil {
				return out, nil
			}
			if !IsValidationError(err) {
				return zero, err
			}
		}
		return zero, ErrNoMatch
	})
}

// Union is UnionOf for branches with different output types.
func Union(branches ...Schema) *Validator[any, Value] {
	typed := make([]Typed[any], len(branches))
	for i, b := range branches {
		if b == nil {
			return invalid[any, Value](ErrNilValidator)
		}
		typed[i] = erased{b}
	}
	return UnionOf(typed...)
}

type erased struct {
	Schema
}

func (e erased) Decode(val Value) (any, error) {
	return e.DecodeAny(val)
}

func (e erased) attemptTyped(val Value) (any, bool, error) {
	return e.attempt(val)
}

// Optional accepts whatever v accepts plus undefined. Undefined decodes to
// a nil pointer.
func Optional[O, I any](v *Validator[O, I]) *Validator[*O, Value] {
	some := Transform(v, func(out O) (*O, error) {
		return &out, nil
	})
	none := Transform(Undefined, func(any) (*O, error) {
		return nil, nil
	})
	return UnionOf[*O](some, none)
}
