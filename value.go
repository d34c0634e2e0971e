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
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Kind tags the shape held by a Value.
type Kind uint8

const (
	UndefinedKind Kind = iota
	NullKind
	StringKind
	NumberKind
	BoolKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case UndefinedKind:
		return "undefined"
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "boolean"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is an untyped input: the in-memory result of whatever deserializer
// sits upstream. The zero Value is undefined, which is also what a missing
// object key looks like.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  map[string]Value
	arr  []Value
}

func UndefinedValue() Value {
	return Value{}
}

func NullValue() Value {
	return Value{kind: NullKind}
}

func StringValue(s string) Value {
	return Value{kind: StringKind, str: s}
}

func NumberValue(n float64) Value {
	return Value{kind: NumberKind, num: n}
}

func BoolValue(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// ObjectValue copies fields; later changes to the map are not observed.
func ObjectValue(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: ObjectKind, obj: obj}
}

func ArrayValue(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: ArrayKind, arr: arr}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsUndefined() bool {
	return v.kind == UndefinedKind
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringKind
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == NumberKind
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// AsObject exposes the object's fields. The map must not be modified.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.obj, true
}

// AsArray exposes the array's items. The slice must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// Lookup returns the value stored under key. A missing key, or a Value that
// is not an object, yields undefined and false.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != ObjectKind {
		return Value{}, false
	}
	field, ok := v.obj[key]
	return field, ok
}

// Keys returns the object's keys in sorted order, or nil for non-objects.
func (v Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Native converts back to plain Go values in the shapes encoding/json
// produces. Undefined and null both become nil.
func (v Value) Native() any {
	switch v.kind {
	case StringKind:
		return v.str
	case NumberKind:
		return v.num
	case BoolKind:
		return v.b
	case ObjectKind:
		out := make(map[string]any, len(v.obj))
		for k, field := range v.obj {
			out[k] = field.Native()
		}
		return out
	case ArrayKind:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Native()
		}
		return out
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return fmt.Sprintf("%q", v.str)
	case UndefinedKind, NullKind:
		return v.kind.String()
	default:
		return fmt.Sprintf("%v", v.Native())
	}
}

// FromAny converts plain Go values into a Value. It understands what
// encoding/json and gopkg.in/yaml.v3 produce when decoding into an any.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case float64:
		return NumberValue(x), nil
	case float32:
		return NumberValue(float64(x)), nil
	case int:
		return numberFrom(x), nil
	case int8:
		return numberFrom(x), nil
	case int16:
		return numberFrom(x), nil
	case int32:
		return numberFrom(x), nil
	case int64:
		return numberFrom(x), nil
	case uint:
		return numberFrom(x), nil
	case uint8:
		return numberFrom(x), nil
	case uint16:
		return numberFrom(x), nil
	case uint32:
		return numberFrom(x), nil
	case uint64:
		return numberFrom(x), nil
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("converting json number %q: %w", x.String(), err)
		}
		return NumberValue(n), nil
	case map[string]Value:
		return ObjectValue(x), nil
	case map[string]any:
		obj := make(map[string]Value, len(x))
		for k, item := range x {
			field, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = field
		}
		return Value{kind: ObjectKind, obj: obj}, nil
	case []Value:
		return ArrayValue(x...), nil
	case []any:
		arr := make([]Value, len(x))
		for i, item := range x {
			elem, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = elem
		}
		return Value{kind: ArrayKind, arr: arr}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

// MustFromAny is FromAny for literals known to be convertible.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

func numberFrom[T constraints.Integer](n T) Value {
	return NumberValue(float64(n))
}
