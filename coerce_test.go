// FILE: embedconf/coerce_test.go
package embedconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoercion tests the strict typed accessors
func TestCoercion(t *testing.T) {
	tmpDir := t.TempDir()

	path := writeConfig(t, tmpDir, "typed.toml", `
name = "widget"
count = 42
ratio = 0.5
whole = 3.0
active = true
items = [1, 2, 3]

[limits]
max = 100
`)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	t.Run("ExactMatches", func(t *testing.T) {
		name, err := doc.String("name")
		require.NoError(t, err)
		assert.Equal(t, "widget", name)

		count, err := doc.Int64("count")
		require.NoError(t, err)
		assert.Equal(t, int64(42), count)

		ratio, err := doc.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.5, ratio)

		active, err := doc.Bool("active")
		require.NoError(t, err)
		assert.Equal(t, true, active)
	})

	t.Run("NoNumericWidening", func(t *testing.T) {
		// An integer is not a float and a float is not an integer.
		_, err := doc.Float64("count")
		assert.ErrorIs(t, err, ErrUnsupportedType)

		_, err = doc.Int64("ratio")
		assert.ErrorIs(t, err, ErrUnsupportedType)

		// 3.0 parses as a float; it never becomes an integer.
		_, err = doc.Int64("whole")
		assert.ErrorIs(t, err, ErrUnsupportedType)
		whole, err := doc.Float64("whole")
		require.NoError(t, err)
		assert.Equal(t, 3.0, whole)
	})

	t.Run("NoStringification", func(t *testing.T) {
		_, err := doc.String("count")
		assert.ErrorIs(t, err, ErrUnsupportedType)

		_, err = doc.String("active")
		assert.ErrorIs(t, err, ErrUnsupportedType)

		_, err = doc.Bool("name")
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("CompositeRejected", func(t *testing.T) {
		_, err := doc.String("limits")
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Contains(t, err.Error(), "table")

		_, err = doc.Int64("items")
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Contains(t, err.Error(), "array")

		_, err = doc.Scalar("limits")
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Scalar", func(t *testing.T) {
		val, err := doc.Scalar("name")
		require.NoError(t, err)
		assert.Equal(t, "widget", val)

		val, err = doc.Scalar("count")
		require.NoError(t, err)
		assert.Equal(t, int64(42), val)

		val, err = doc.Scalar("active")
		require.NoError(t, err)
		assert.Equal(t, true, val)
	})

	t.Run("MissingFieldPropagates", func(t *testing.T) {
		_, err := doc.String("nope")
		assert.ErrorIs(t, err, ErrMissingField)
		assert.NotErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, "nothing", valueKind(nil))
	assert.Equal(t, "boolean", valueKind(true))
	assert.Equal(t, "string", valueKind("s"))
	assert.Equal(t, "integer", valueKind(int64(1)))
	assert.Equal(t, "float", valueKind(1.5))
	assert.Equal(t, "array", valueKind([]any{}))
	assert.Equal(t, "table", valueKind(map[string]any{}))
}
