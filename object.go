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

import "sort"

// Field binds an object key to the validator for its value.
type Field struct {
	Name      string
	Validator Schema
}

func Key(name string, v Schema) Field {
	return Field{Name: name, Validator: v}
}

// ObjectValidator decodes closed objects: every required field must be
// present and no key outside the field set is allowed. It keeps its field
// list so Merge can rebuild from it.
//
// Helpers that take a *Validator, such as Optional and Refine, are given the
// embedded one: Optional(obj.Validator).
type ObjectValidator struct {
	*Validator[map[string]any, map[string]Value]
	fields   []Field
	known    map[string]struct{}
	required []string
	optional []string
}

// Object builds an object validator. A field is required when its validator
// rejects undefined. If a name appears twice the later validator wins and
// the earlier position is kept.
func Object(fields ...Field) *ObjectValidator {
	o := &ObjectValidator{fields: dedupe(fields)}
	o.known = make(map[string]struct{}, len(o.fields))

	for _, f := range o.fields {
		o.known[f.Name] = struct{}{}
		if f.Validator == nil {
			o.Validator = invalid[map[string]any, map[string]Value](ErrNilValidator)
			return o
		}
		if err := f.Validator.Err(); err != nil {
			o.Validator = invalid[map[string]any, map[string]Value](err)
			return o
		}
		if f.Validator.Is(Value{}) {
			o.optional = append(o.optional, f.Name)
		} else {
			o.required = append(o.required, f.Name)
		}
	}

	o.Validator = Create(func(val Value) (map[string]Value, bool) {
		return val.AsObject()
	}, o.decodeFields).expecting(ObjectKind)

	return o
}

func dedupe(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Name]; ok {
			out[i] = f
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}

func (o *ObjectValidator) decodeFields(obj map[string]Value) (map[string]any, error) {
	for _, name := range o.required {
		if _, ok := obj[name]; !ok {
			return nil, ErrRequiredKeyMissing.withKey(name)
		}
	}

	if len(obj) > 0 {
		extra := make([]string, 0)
		for k := range obj {
			if _, ok := o.known[k]; !ok {
				extra = append(extra, k)
			}
		}
		if len(extra) > 0 {
			sort.Strings(extra)
			return nil, ErrExtraKey.withKey(extra[0])
		}
	}

	result := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		out, err := f.Validator.DecodeAny(obj[f.Name])
		if err != nil {
			return nil, err
		}
		result[f.Name] = out
	}

	return result, nil
}

// Field returns a new validator with name added. The receiver is unchanged.
func (o *ObjectValidator) Field(name string, v Schema) *ObjectValidator {
	fields := make([]Field, 0, len(o.fields)+1)
	fields = append(fields, o.fields...)
	return Object(append(fields, Key(name, v))...)
}

// Fields returns a copy of the field list in declaration order.
func (o *ObjectValidator) Fields() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

func (o *ObjectValidator) Required() []string {
	return append([]string(nil), o.required...)
}

func (o *ObjectValidator) OptionalKeys() []string {
	return append([]string(nil), o.optional...)
}

// Merge combines object validators into one covering all their fields.
// The field sets are expected to be disjoint; on a collision the field from
// the later validator wins.
func Merge(first, second *ObjectValidator, more ...*ObjectValidator) *ObjectValidator {
	all := append([]*ObjectValidator{first, second}, more...)
	var fields []Field
	for _, o := range all {
		if o == nil {
			return &ObjectValidator{
				Validator: invalid[map[string]any, map[string]Value](ErrNilValidator),
			}
		}
		fields = append(fields, o.fields...)
	}
	return Object(fields...)
}
