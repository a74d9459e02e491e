package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopReturnsMinimum(t *testing.T) {
	f := NewFrontier()
	f.Push(7, 1)
	f.Push(3, 2)
	f.Push(5, 3)

	require.Equal(t, 3, f.Len())
	assert.Equal(t, 2, f.Pop().NodeId)
	assert.Equal(t, 3, f.Pop().NodeId)
	assert.Equal(t, 1, f.Pop().NodeId)
	assert.True(t, f.IsEmpty())
}

func TestTiesBrokenByInsertionOrder(t *testing.T) {
	f := NewFrontier()
	f.Push(1, 10)
	f.Push(1, 20)
	f.Push(0, 30)
	f.Push(1, 40)

	assert.Equal(t, 30, f.Pop().NodeId)
	assert.Equal(t, 10, f.Pop().NodeId)
	assert.Equal(t, 20, f.Pop().NodeId)
	assert.Equal(t, 40, f.Pop().NodeId)
}

func TestDuplicateNodesAllowed(t *testing.T) {
	f := NewFrontier()
	f.Push(9, 5)
	f.Push(2, 5)

	first := f.Pop()
	second := f.Pop()
	assert.Equal(t, 5, first.NodeId)
	assert.Equal(t, 2, first.Priority)
	assert.Equal(t, 5, second.NodeId)
	assert.Equal(t, 9, second.Priority)
}

func TestPopEmptyPanics(t *testing.T) {
	f := NewFrontier()
	require.PanicsWithValue(t, ErrEmptyFrontier, func() { f.Pop() })

	f.Push(1, 1)
	f.Pop()
	require.PanicsWithValue(t, ErrEmptyFrontier, func() { f.Pop() })
}
