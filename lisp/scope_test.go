package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	s := NewScope(0)
	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Put("a", Int(1))
	s.Put("b", nil)
	s.Put("a", Int(2))
	assert.Equal(t, 2, s.Len())
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.True(t, Equal(Int(2), v))
	v, ok = s.Get("b")
	assert.True(t, ok, "names bound to nothing are bound")
	assert.Nil(t, v)
}

func TestScopeExtend(t *testing.T) {
	s := NewScope(2)
	s.Put("a", Int(1))
	s.Put("b", Int(2))

	ext, err := s.Extend([]string{"b", "c"}, []Value{Text("x"), Text("y")})
	require.NoError(t, err)
	assert.Equal(t, 3, ext.Len())
	v, _ := ext.Get("b")
	assert.Equal(t, Text("x"), v)

	// s is unchanged
	assert.Equal(t, 2, s.Len())
	v, _ = s.Get("b")
	assert.True(t, Equal(Int(2), v))
	_, ok := s.Get("c")
	assert.False(t, ok)

	// and changes to the copy do not leak back
	ext.Put("a", Int(10))
	v, _ = s.Get("a")
	assert.True(t, Equal(Int(1), v))

	_, err = s.Extend([]string{"a"}, nil)
	assert.Error(t, err)
}
