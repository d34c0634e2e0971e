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
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func narrowNumber(val Value) (float64, bool) {
	return val.AsNumber()
}

// Number accepts numeric values.
var Number = New(narrowNumber).expecting(NumberKind)

// Integer accepts numbers and converts them to T. Fractional values and
// values T cannot hold are validation failures, not type mismatches.
func Integer[T constraints.Integer]() *Validator[T, float64] {
	return Create(narrowNumber, func(n float64) (T, error) {
		if math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, failure(nil, "number is not integer")
		}
		t := T(n)
		if float64(t) != n {
			return 0, failure(nil, "number out of range")
		}
		return t, nil
	}).expecting(NumberKind)
}

func Min[T number](min T, message ...string) Check[T] {
	return func(val T) error {
		if val < min {
			return failure(message, "number too small")
		}
		return nil
	}
}

func Max[T number](max T, message ...string) Check[T] {
	return func(val T) error {
		if val > max {
			return failure(message, "number too large")
		}
		return nil
	}
}

func NonZero[T number](message ...string) Check[T] {
	return func(val T) error {
		if val == 0 {
			return failure(message, "number is zero")
		}
		return nil
	}
}
