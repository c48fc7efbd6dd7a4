package constval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two record shapes distinguished only by an integer discriminant.
type barVariant struct {
	Tag Const[int64, one] `json:"tag"`
}

type bazVariant struct {
	Tag Const[int64, two] `json:"tag"`
	X   *string           `json:"x"`
}

func TestDecodeFirst(t *testing.T) {
	t.Run("SelectsByDiscriminant", func(t *testing.T) {
		var bar barVariant
		var baz bazVariant

		// Would have been bar if tag were a plain int64.
		idx, err := DecodeFirst([]byte(`{"tag": 2, "x": null}`), &bar, &baz)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Nil(t, baz.X)
	})

	t.Run("FirstVariantWins", func(t *testing.T) {
		var bar barVariant
		var baz bazVariant

		idx, err := DecodeFirst([]byte(`{"tag": 1}`), &bar, &baz)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("NoVariantMatches", func(t *testing.T) {
		var bar barVariant
		var baz bazVariant

		idx, err := DecodeFirst([]byte(`{"tag": 3}`), &bar, &baz)
		assert.Equal(t, -1, idx)

		var noVariant *NoVariantError
		require.ErrorAs(t, err, &noVariant)
		assert.Len(t, noVariant.Attempts, 2)
		assert.True(t, errors.Is(err, ErrMismatch))
	})

	// A kind mismatch and a value mismatch must both read as "not this
	// variant" to the resolver.
	t.Run("KindAndValueMismatchTreatedAlike", func(t *testing.T) {
		var bar barVariant
		var baz bazVariant

		idx, err := DecodeFirst([]byte(`{"tag": "1"}`), &bar, &baz)
		assert.Equal(t, -1, idx)

		var noVariant *NoVariantError
		require.ErrorAs(t, err, &noVariant)

		var kindErr *KindMismatchError
		assert.ErrorAs(t, noVariant.Attempts[0], &kindErr)
	})
}

func TestUnion(t *testing.T) {
	newUnion := func(t *testing.T) *Union {
		u := NewUnion()
		require.NoError(t, u.Register("bar", func() any { return &barVariant{} }))
		require.NoError(t, u.Register("baz", func() any { return &bazVariant{} }))
		return u
	}

	t.Run("Resolve", func(t *testing.T) {
		u := newUnion(t)

		name, dest, err := u.Resolve([]byte(`{"tag": 2, "x": null}`))
		require.NoError(t, err)
		assert.Equal(t, "baz", name)
		require.IsType(t, &bazVariant{}, dest)
		assert.Nil(t, dest.(*bazVariant).X)
	})

	t.Run("NoMatch", func(t *testing.T) {
		u := newUnion(t)

		_, _, err := u.Resolve([]byte(`{"tag": false}`))
		var noVariant *NoVariantError
		require.ErrorAs(t, err, &noVariant)
		assert.Len(t, noVariant.Attempts, 2)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		u := newUnion(t)
		err := u.Register("bar", func() any { return &barVariant{} })
		assert.ErrorIs(t, err, ErrVariantAlreadyRegistered)
	})
}
