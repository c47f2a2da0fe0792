package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_ZeroValueIsEmpty(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestStack_LIFO(t *testing.T) {
	s := New[string](2)
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "c", s.Top())
	assert.Equal(t, "c", s.Pop())
	assert.Equal(t, "b", s.Pop())
	assert.Equal(t, "a", s.Top())
	assert.Equal(t, "a", s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestStack_Init(t *testing.T) {
	s := New[*int](4)
	v := 1
	s.Push(&v)
	s.Push(&v)
	s.Init()
	assert.True(t, s.IsEmpty())
	s.Push(nil)
	assert.Nil(t, s.Top())
}

func TestStack_EmptyPanics(t *testing.T) {
	var s Stack[int]
	assert.PanicsWithValue(t, ErrEmpty, func() { s.Pop() })
	assert.PanicsWithValue(t, ErrEmpty, func() { s.Top() })
	// negative capacity is clamped
	assert.True(t, New[int](-3).IsEmpty())
}
