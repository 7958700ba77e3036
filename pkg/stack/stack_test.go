package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldlang/pkg/stack"
)

func TestStack(t *testing.T) {
	s := stack.NewStack(1, 2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{1, 2, 3}, s.Array())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = s.Pop()
	assert.False(t, ok, "pop of empty stack")
	_, ok = s.Peek()
	assert.False(t, ok, "peek of empty stack")
}

func TestStackClear(t *testing.T) {
	s := stack.NewStack[string]()
	s.Push("a")
	s.Push("b")
	s.Clear()
	assert.Equal(t, 0, s.Size())
	s.Push("c")
	assert.Equal(t, []string{"c"}, s.Array())
}
