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

// Check inspects a decoded value. It returns a *ValidationError to reject the
// value; any other error is treated as a defect.
type Check[T any] func(val T) error

// Refine runs every check against the output of v. A single failure is
// returned as is; several are combined into one ErrInvalidValue carrying
// each failure as an inner error.
func Refine[O, I any](v *Validator[O, I], checks ...Check[O]) *Validator[O, I] {
	cs := make([]Check[O], 0, len(checks))
	for _, check := range checks {
		if check == nil {
			return invalid[O, I](ErrNilValidator)
		}
		cs = append(cs, check)
	}

	return Transform(v, func(out O) (O, error) {
		var zero O
		var failures []error
		for _, check := range cs {
			err := check(out)
			if err == nil {
				continue
			}
			if !IsValidationError(err) {
				return zero, err
			}
			failures = append(failures, err)
		}

		switch len(failures) {
		case 0:
			return out, nil
		case 1:
			return zero, failures[0]
		default:
			return zero, &ValidationError{
				code:    codeInvalidValue,
				message: joinMessages(failures),
				inner:   failures,
			}
		}
	})
}

func failure(message []string, fallback string, inner ...error) *ValidationError {
	err := &ValidationError{code: codeInvalidValue, message: fallback, inner: inner}
	return err.withMessage(message)
}
