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

import "github.com/google/uuid"

// UUID accepts strings in any form uuid.Parse understands.
var UUID = Create(String.Narrow, func(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, failure(nil, "invalid uuid", err)
	}
	return id, nil
}).expecting(StringKind)

func NonNullUUID(message ...string) Check[uuid.UUID] {
	return func(val uuid.UUID) error {
		if val == uuid.Nil {
			return failure(message, "uuid is zero")
		}
		return nil
	}
}
