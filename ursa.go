// Package ursa decodes untyped values (the output of a JSON or YAML decoder)
// into typed Go values by composing small validators.
//
// Every validator pairs a narrowing predicate with a transform. Decode runs
// the predicate first and fails with a *TypeMismatchError when the shape is
// wrong; otherwise it runs the transform, which may still fail with a
// *ValidationError. Combinators such as Union only ever recover from the
// latter. Any other error is treated as a defect and returned unchanged.
//
// Validators are immutable once built and safe for concurrent use.
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

import "fmt"

// Validator narrows a Value to I and converts it to O.
type Validator[O, I any] struct {
	narrow   func(Value) (I, bool)
	validate func(I) (O, error)
	expect   []Kind
	err      error
}

// Schema is the type-erased view of a validator that Object and Union
// work with. Every *Validator and *ObjectValidator implements it.
type Schema interface {
	Err() error
	Is(val Value) bool
	DecodeAny(val Value) (any, error)
	attempt(val Value) (any, bool, error)
}

// Typed is a Schema that decodes to O.
type Typed[O any] interface {
	Schema
	Decode(val Value) (O, error)
	attemptTyped(val Value) (O, bool, error)
}

// Create builds a validator from a narrowing predicate and a transform. When
// validate is nil the narrowed input is returned as is, which requires I to
// be convertible to O by type assertion.
func Create[O, I any](is func(Value) (I, bool), validate func(I) (O, error)) *Validator[O, I] {
	v := &Validator[O, I]{narrow: is, validate: validate}
	if is == nil {
		v.err = ErrNilValidator
	}
	if validate == nil {
		v.validate = identity[O, I]
	}
	return v
}

// New builds a validator whose output is the narrowed input.
func New[T any](is func(Value) (T, bool)) *Validator[T, T] {
	return Create(is, func(in T) (T, error) {
		return in, nil
	})
}

func identity[O, I any](in I) (O, error) {
	var zero O
	if any(in) == nil {
		return zero, nil
	}
	out, ok := any(in).(O)
	if !ok {
		return zero, fmt.Errorf("%w: %T to %T", ErrMissingIdentity, in, zero)
	}
	return out, nil
}

func invalid[O, I any](err error) *Validator[O, I] {
	return &Validator[O, I]{err: err}
}

// expecting records the kinds the predicate accepts so mismatches can name
// them. Only used while a validator is being built.
func (v *Validator[O, I]) expecting(kinds ...Kind) *Validator[O, I] {
	v.expect = kinds
	return v
}

// Expected lists the kinds the validator accepts, when they are known.
func (v *Validator[O, I]) Expected() []Kind {
	return append([]Kind(nil), v.expect...)
}

// Expect returns a copy of v that names kinds in its type mismatch errors.
func (v *Validator[O, I]) Expect(kinds ...Kind) *Validator[O, I] {
	out := *v
	out.expect = append([]Kind(nil), kinds...)
	return &out
}

func (v *Validator[O, I]) stateError() error {
	return fmt.Errorf("%w: %w", ErrInvalidValidatorState, v.err)
}

// Err returns the configuration error the validator was built with, if any.
func (v *Validator[O, I]) Err() error {
	return v.err
}

// Is reports whether val has a shape this validator accepts. It never fails
// and has no side effects.
func (v *Validator[O, I]) Is(val Value) bool {
	_, ok := v.Narrow(val)
	return ok
}

func (v *Validator[O, I]) Narrow(val Value) (I, bool) {
	if v.err != nil {
		var zero I
		return zero, false
	}
	return v.narrow(val)
}

// Validate converts an input that has already been narrowed.
func (v *Validator[O, I]) Validate(in I) (O, error) {
	if v.err != nil {
		var zero O
		return zero, v.stateError()
	}
	return v.validate(in)
}

func (v *Validator[O, I]) Decode(val Value) (O, error) {
	out, matched, err := v.attemptTyped(val)
	if !matched {
		return out, mismatch(v.expect, val)
	}
	return out, err
}

func (v *Validator[O, I]) DecodeAny(val Value) (any, error) {
	out, err := v.Decode(val)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// attemptTyped reports matched=false only when narrowing failed. A broken
// validator reports a match so the state error reaches the caller.
func (v *Validator[O, I]) attemptTyped(val Value) (O, bool, error) {
	var zero O
	if v.err != nil {
		return zero, true, v.stateError()
	}
	in, ok := v.narrow(val)
	if !ok {
		return zero, false, nil
	}
	out, err := v.validate(in)
	if err != nil {
		return zero, true, err
	}
	return out, true, nil
}

func (v *Validator[O, I]) attempt(val Value) (any, bool, error) {
	out, matched, err := v.attemptTyped(val)
	if !matched || err != nil {
		return nil, matched, err
	}
	return out, true, nil
}

// DecodeFrom converts a plain Go value with FromAny and decodes it.
func DecodeFrom[O, I any](v *Validator[O, I], native any) (O, error) {
	val, err := FromAny(native)
	if err != nil {
		var zero O
		return zero, err
	}
	return v.Decode(val)
}

// Transform maps a validator's output. fn may return a *ValidationError to
// reject the value; any other error is passed through as a defect.
func Transform[O, I, P any](v *Validator[O, I], fn func(O) (P, error)) *Validator[P, I] {
	if v == nil || fn == nil {
		return invalid[P, I](ErrNilValidator)
	}
	if v.err != nil {
		return invalid[P, I](v.err)
	}
	return &Validator[P, I]{
		narrow: v.narrow,
		validate: func(in I) (P, error) {
			out, err := v.validate(in)
			if err != nil {
				var zero P
				return zero, err
			}
			return fn(out)
		},
		expect: v.expect,
	}
}
