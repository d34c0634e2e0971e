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
	"reflect"

	"golang.org/x/exp/constraints"
)

type literal interface {
	~string | ~bool | constraints.Integer | constraints.Float
}

var float64Type = reflect.TypeOf(float64(0))

// Literal accepts values of T's primitive kind and checks them against a
// fixed set. A value of the wrong kind is a type mismatch; a value of the
// right kind outside the set fails with ErrInvalidLiteral. Numbers are
// compared after conversion to T, so a float32 set matches the float64 a
// JSON decoder produces, while an integer set rejects fractions.
func Literal[T literal](values ...T) *Validator[T, Value] {
	if len(values) == 0 {
		return invalid[T, Value](ErrEmptyLiteral)
	}

	var zero T
	rt := reflect.TypeOf(zero)
	kind := literalKind(rt)

	allowed := make(map[T]struct{}, len(values))
	numbers := make(map[float64]T, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
		if kind == NumberKind {
			numbers[reflect.ValueOf(v).Convert(float64Type).Float()] = v
		}
	}

	return Create(func(val Value) (Value, bool) {
		return val, val.Kind() == kind
	}, func(val Value) (T, error) {
		if kind == NumberKind {
			n, _ := val.AsNumber()
			out, ok := numbers[widen(rt, n)]
			if !ok {
				return zero, ErrInvalidLiteral
			}
			return out, nil
		}

		var rv reflect.Value
		if kind == StringKind {
			s, _ := val.AsString()
			rv = reflect.ValueOf(s)
		} else {
			b, _ := val.AsBool()
			rv = reflect.ValueOf(b)
		}
		out := rv.Convert(rt).Interface().(T)
		if _, ok := allowed[out]; !ok {
			return zero, ErrInvalidLiteral
		}
		return out, nil
	}).expecting(kind)
}

func literalKind(rt reflect.Type) Kind {
	switch rt.Kind() {
	case reflect.String:
		return StringKind
	case reflect.Bool:
		return BoolKind
	default:
		return NumberKind
	}
}

// widen rounds n to the precision of a float type before the set lookup.
// Integer types look n up as is, so fractions and out of range values miss.
func widen(rt reflect.Type, n float64) float64 {
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(n).Convert(rt).Convert(float64Type).Float()
	default:
		return n
	}
}

// Literals accepts any string, number or boolean and checks it against a
// set that may mix kinds. Unlike Literal, a value of a kind absent from the
// set fails with ErrInvalidLiteral rather than a type mismatch. Go numbers
// are compared as float64.
func Literals(values ...any) *Validator[any, any] {
	if len(values) == 0 {
		return invalid[any, any](ErrEmptyLiteral)
	}

	allowed := make(map[any]struct{}, len(values))
	for _, v := range values {
		val, err := FromAny(v)
		if err != nil || !isPrimitive(val) {
			return invalid[any, any](fmt.Errorf("%w: %v", ErrUnsupportedValue, v))
		}
		allowed[val.Native()] = struct{}{}
	}

	return Create(func(val Value) (any, bool) {
		if !isPrimitive(val) {
			return nil, false
		}
		return val.Native(), true
	}, func(in any) (any, error) {
		if _, ok := allowed[in]; !ok {
			return nil, ErrInvalidLiteral
		}
		return in, nil
	}).expecting(StringKind, NumberKind, BoolKind)
}

func isPrimitive(val Value) bool {
	switch val.Kind() {
	case StringKind, NumberKind, BoolKind:
		return true
	default:
		return false
	}
}
