package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(5)
	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, o.Unwrap())
	assert.Equal(t, 5, o.UnwrapOr(9))
	assert.Equal(t, "Some(5)", o.String())
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[string]()
	assert.False(t, o.IsSome())
	assert.True(t, o.IsNone())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "fallback", o.UnwrapOr("fallback"))
	assert.Equal(t, "None", o.String())
	assert.PanicsWithValue(t, "option: Unwrap called on None", func() { o.Unwrap() })
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1))
	assert.NotEqual(t, Some(1), Some(2))
	assert.Equal(t, None[int](), None[int]())
	assert.NotEqual(t, Some(0), None[int]())
}
