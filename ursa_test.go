package ursa_test

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
	"errors"
	"strconv"
	"sync"
	"testing"

	u "github.com/jdudmesh/ursa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestLeafKinds(t *testing.T) {
	values := []u.Value{
		u.UndefinedValue(),
		u.NullValue(),
		u.StringValue("5"),
		u.NumberValue(5),
		u.BoolValue(true),
		u.ObjectValue(nil),
		u.ArrayValue(),
	}

	leaves := []struct {
		name   string
		schema u.Schema
		kind   u.Kind
	}{
		{"string", u.String, u.StringKind},
		{"number", u.Number, u.NumberKind},
		{"boolean", u.Boolean, u.BoolKind},
		{"null", u.Null, u.NullKind},
		{"undefined", u.Undefined, u.UndefinedKind},
	}

	for _, leaf := range leaves {
		t.Run(leaf.name, func(t *testing.T) {
			assert := assert.New(t)
			for _, val := range values {
				want := val.Kind() == leaf.kind
				assert.Equal(want, leaf.schema.Is(val), "Is(%s)", val.Kind())

				_, err := leaf.schema.DecodeAny(val)
				if want {
					assert.NoError(err)
				} else {
					assert.ErrorIs(err, u.ErrTypeMismatch)
					assert.False(u.IsValidationError(err))
				}
			}
		})
	}

	t.Run("any", func(t *testing.T) {
		assert := assert.New(t)
		for _, val := range values {
			out, err := u.Any.Decode(val)
			assert.NoError(err)
			assert.Equal(val, out)
		}
	})
}

func TestLeafOutputs(t *testing.T) {
	assert := assert.New(t)

	n, err := u.Number.Decode(u.NumberValue(5))
	assert.NoError(err)
	assert.Equal(5.0, n)

	_, err = u.Number.Decode(u.StringValue("5"))
	assert.ErrorIs(err, u.ErrTypeMismatch)
	assert.EqualError(err, "invalid type: expected number, got string")

	s, err := u.String.Decode(u.StringValue("hi"))
	assert.NoError(err)
	assert.Equal("hi", s)

	b, err := u.Boolean.Decode(u.BoolValue(false))
	assert.NoError(err)
	assert.False(b)

	null, err := u.Null.Decode(u.NullValue())
	assert.NoError(err)
	assert.Nil(null)
}

func TestDecodeIsPure(t *testing.T) {
	assert := assert.New(t)

	v := u.Object(u.Key("a", u.String), u.Key("b", u.Optional(u.Number)))
	in := u.MustFromAny(map[string]any{"a": "x", "b": 2})

	first, err := v.Decode(in)
	require.NoError(t, err)
	second, err := v.Decode(in)
	require.NoError(t, err)
	assert.Equal(first, second)
}

func TestConcurrentDecode(t *testing.T) {
	v := u.Object(
		u.Key("id", u.UUID),
		u.Key("kind", u.Literal("a", "b")),
		u.Key("n", u.Optional(u.Integer[int]())),
	)
	in := u.MustFromAny(map[string]any{"id": "5f0c1c2e-8f4e-4b8a-9a43-3a4e0d6b7c11", "kind": "b", "n": 3})
	want, err := v.Decode(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := v.Decode(in)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestCreate(t *testing.T) {
	assert := assert.New(t)

	even := u.Create(u.Number.Narrow, func(n float64) (int, error) {
		if int(n)%2 != 0 {
			return 0, u.NewValidationError("%v is odd", n)
		}
		return int(n), nil
	})

	out, err := even.Decode(u.NumberValue(4))
	assert.NoError(err)
	assert.Equal(4, out)

	_, err = even.Decode(u.NumberValue(3))
	assert.True(u.IsValidationError(err))
	assert.EqualError(err, "3 is odd")

	_, err = even.Decode(u.StringValue("4"))
	assert.ErrorIs(err, u.ErrTypeMismatch)
	assert.EqualError(err, "invalid type: got string")

	named := even.Expect(u.NumberKind)
	_, err = named.Decode(u.StringValue("4"))
	assert.EqualError(err, "invalid type: expected number, got string")
	assert.Equal([]u.Kind{u.NumberKind}, named.Expected())
	assert.Empty(even.Expected())

	in, ok := even.Narrow(u.NumberValue(8))
	assert.True(ok)
	out, err = even.Validate(in)
	assert.NoError(err)
	assert.Equal(8, out)
}

func TestCreateDefaultsToIdentity(t *testing.T) {
	assert := assert.New(t)

	v := u.Create[string, string](u.String.Narrow, nil)
	out, err := v.Decode(u.StringValue("x"))
	assert.NoError(err)
	assert.Equal("x", out)

	widened := u.Create[any, string](u.String.Narrow, nil)
	anyOut, err := widened.Decode(u.StringValue("x"))
	assert.NoError(err)
	assert.Equal("x", anyOut)

	broken := u.Create[int, string](u.String.Narrow, nil)
	_, err = broken.Decode(u.StringValue("x"))
	assert.ErrorIs(err, u.ErrMissingIdentity)
	assert.False(u.IsValidationError(err))
}

func TestCreateWithoutPredicate(t *testing.T) {
	assert := assert.New(t)

	v := u.New[string](nil)
	assert.ErrorIs(v.Err(), u.ErrNilValidator)
	assert.False(v.Is(u.StringValue("x")))

	_, err := v.Decode(u.StringValue("x"))
	assert.ErrorIs(err, u.ErrInvalidValidatorState)
	assert.ErrorIs(err, u.ErrNilValidator)
}

func TestDecodeFrom(t *testing.T) {
	assert := assert.New(t)

	out, err := u.DecodeFrom(u.Integer[int64](), 42)
	assert.NoError(err)
	assert.Equal(int64(42), out)

	_, err = u.DecodeFrom(u.String, []int{1})
	assert.ErrorIs(err, u.ErrUnsupportedType)
}

func TestTransform(t *testing.T) {
	assert := assert.New(t)

	numeric := u.Transform(u.String, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, u.NewValidationError("not numeric: %s", s)
		}
		return n, nil
	})

	n, err := numeric.Decode(u.StringValue("12"))
	assert.NoError(err)
	assert.Equal(12, n)

	_, err = numeric.Decode(u.StringValue("twelve"))
	assert.True(u.IsValidationError(err))

	_, err = numeric.Decode(u.NumberValue(12))
	assert.ErrorIs(err, u.ErrTypeMismatch)
	assert.EqualError(err, "invalid type: expected string, got number")

	failing := u.Transform(u.String, func(string) (int, error) {
		return 0, errBoom
	})
	_, err = failing.Decode(u.StringValue("x"))
	assert.ErrorIs(err, errBoom)
	assert.False(u.IsValidationError(err))

	nilFn := u.Transform[string, string, int](u.String, nil)
	assert.ErrorIs(nilFn.Err(), u.ErrNilValidator)
}

func TestValidationErrorMatching(t *testing.T) {
	assert := assert.New(t)

	custom := u.NewValidationError("custom %d", 1)
	assert.ErrorIs(custom, custom)
	assert.NotErrorIs(custom, u.NewValidationError("custom %d", 1))
	assert.NotErrorIs(custom, u.ErrInvalidValue)
	assert.NotErrorIs(u.ErrExtraKey, u.ErrRequiredKeyMissing)
	assert.Equal("", custom.Key())

	assert.False(u.IsValidationError(nil))
	assert.False(u.IsValidationError(errBoom))
	assert.False(u.IsValidationError(u.ErrTypeMismatch))
}
