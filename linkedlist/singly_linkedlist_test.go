package linkedlist_test

import (
	"testing"

	"github.com/nfagan/categorical/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndGet(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[int]()
	assert.True(t, l.Empty())

	l.Append(1)
	l.Append(2)
	l.Append(3)

	require.Equal(t, 3, l.Size())
	assert.Equal(t, 1, l.Get(0))
	assert.Equal(t, 2, l.Get(1))
	assert.Equal(t, 3, l.Get(2))
	assert.Equal(t, 1, l.Head())
	assert.Equal(t, 3, l.Tail())
}

func TestPrepend(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[string]()
	l.Prepend("b")
	l.Prepend("a")
	assert.Equal(t, []string{"a", "b"}, collect(l))
}

func TestPopShift(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[int]()
	for i := 1; i <= 4; i++ {
		l.Append(i)
	}

	assert.Equal(t, 4, l.Pop())
	assert.Equal(t, 1, l.Shift())
	assert.Equal(t, []int{2, 3}, collect(l))

	assert.Equal(t, 2, l.Shift())
	assert.Equal(t, 3, l.Pop())
	assert.True(t, l.Empty())

	_, ok := l.TryPop()
	assert.False(t, ok)
	_, ok = l.TryShift()
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	l.Set(1, 20)
	assert.Equal(t, []int{1, 20, 3}, collect(l))

	ok := l.TrySet(10, 99)
	assert.False(t, ok)
}

func TestInsertAndRemove(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[int]()
	l.Append(1)
	l.Append(3)
	l.Insert(1, 2)
	assert.Equal(t, []int{1, 2, 3}, collect(l))

	removed := l.Remove(1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3}, collect(l))
}

func TestIterBackward(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[int]()
	for i := 1; i <= 3; i++ {
		l.Append(i)
	}
	var got []int
	for v := range l.IterBackward {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestEnum(t *testing.T) {
	l := linkedlist.NewSinglyLinkedList[string]()
	l.Append("a")
	l.Append("b")
	idx := map[int]string{}
	for i, v := range l.Enum {
		idx[i] = v
	}
	assert.Equal(t, map[int]string{0: "a", 1: "b"}, idx)
}

func collect[T any](l *linkedlist.SinglyLinkedList[T]) []T {
	out := make([]T, 0, l.Size())
	for v := range l.Iter {
		out = append(out, v)
	}
	return out
}
