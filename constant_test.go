package constval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared markers for the test suite.
type one struct{}

func (one) ConstValue() int64 { return 1 }

type two struct{}

func (two) ConstValue() int64 { return 2 }

type answer struct{}

func (answer) ConstValue() uint8 { return 42 }

type negFive struct{}

func (negFive) ConstValue() int32 { return -5 }

type maxU64 struct{}

func (maxU64) ConstValue() uint64 { return 18446744073709551615 }

type quux struct{}

func (quux) ConstValue() string { return "quux" }

func TestConstValue(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		var c ConstTrue
		assert.Equal(t, true, c.Value())
		assert.Equal(t, KindBool, c.Kind())
		assert.Equal(t, "true", c.String())
	})

	t.Run("Int", func(t *testing.T) {
		var c Const[int32, negFive]
		assert.Equal(t, int32(-5), c.Value())
		assert.Equal(t, KindInt, c.Kind())
		assert.Equal(t, "-5", c.String())
	})

	t.Run("Uint", func(t *testing.T) {
		var c Const[uint8, answer]
		assert.Equal(t, uint8(42), c.Value())
		assert.Equal(t, KindUint, c.Kind())
		assert.Equal(t, "42", c.String())
	})

	t.Run("String", func(t *testing.T) {
		var c Const[string, quux]
		assert.Equal(t, "quux", c.Value())
		assert.Equal(t, KindString, c.Kind())
		assert.Equal(t, "quux", c.String())
	})
}

func TestConstEqualityAndOrdering(t *testing.T) {
	var a, b ConstTrue
	assert.True(t, a.Equal(b))
	assert.Zero(t, a.Compare(b))
	assert.Equal(t, a, b)
}

// The zero value must be indistinguishable from a decoded instance.
func TestDefaultConstruction(t *testing.T) {
	var decoded Const[int64, one]
	require.NoError(t, json.Unmarshal([]byte(`1`), &decoded))

	var fresh Const[int64, one]
	assert.Equal(t, fresh, decoded)
	assert.Equal(t, fresh.Value(), decoded.Value())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "unsigned integer", KindUint.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
