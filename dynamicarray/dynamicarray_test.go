package dynamicarray_test

import (
	"testing"

	"github.com/nfagan/categorical/dynamicarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendGrows(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)

	for i := 0; i < 20; i++ {
		a.Append(i)
	}
	require.Equal(t, 20, a.Size())
	for i := 0; i < 20; i++ {
		assert.Equal(t, i, a.Get(i))
	}
	assert.GreaterOrEqual(t, a.Cap(), a.Size())
}

func TestPrepend(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)

	a.Append(2)
	a.Append(3)
	a.Prepend(1)
	assert.Equal(t, []int{1, 2, 3}, collect(a))
}

func TestPopShift(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	for _, v := range []int{1, 2, 3, 4} {
		a.Append(v)
	}

	assert.Equal(t, 4, a.Pop())
	assert.Equal(t, 1, a.Shift())
	assert.Equal(t, []int{2, 3}, collect(a))

	_, _ = a.TryPop()
	_, _ = a.TryShift()
	assert.True(t, a.Empty())

	_, ok := a.TryPop()
	assert.False(t, ok)
	_, ok = a.TryShift()
	assert.False(t, ok)
}

func TestGetSet(t *testing.T) {
	a := dynamicarray.New[int](4)
	t.Cleanup(a.Free)
	for _, v := range []int{10, 20, 30} {
		a.Append(v)
	}

	a.Set(1, 99)
	assert.Equal(t, 99, a.Get(1))

	ok := a.TrySet(10, 0)
	assert.False(t, ok)
	_, ok = a.TryGet(10)
	assert.False(t, ok)
}

func TestIterAndIterBackward(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}

	assert.Equal(t, []int{1, 2, 3}, collect(a))

	var backward []int
	for v := range a.IterBackward {
		backward = append(backward, v)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)
}

func TestString(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	a.Append(1)
	a.Append(2)
	assert.Equal(t, "[1 2]", a.String())
}

func TestSwap(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}
	a.Swap(0, 2)
	assert.Equal(t, []int{3, 2, 1}, collect(a))
}

func TestInsertAndRemove(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	a.Append(1)
	a.Append(3)
	a.Insert(1, 2)
	assert.Equal(t, []int{1, 2, 3}, collect(a))

	removed := a.Remove(1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3}, collect(a))
}

func TestReplaceAndSlice(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	a.Append(1)
	a.Replace([]int{4, 5, 6})
	assert.Equal(t, []int{4, 5, 6}, a.Slice())
	assert.Equal(t, 3, a.Size())
}

func TestDoublingGrow(t *testing.T) {
	a := dynamicarray.New[int](1)
	t.Cleanup(a.Free)
	capacities := []int{a.Cap()}
	for i := 0; i < 512; i++ {
		a.Append(i)
		if c := a.Cap(); c != capacities[len(capacities)-1] {
			capacities = append(capacities, c)
		}
	}
	for i := 1; i < len(capacities); i++ {
		assert.Greater(t, capacities[i], capacities[i-1])
	}
}

func collect(a *dynamicarray.DynamicArray[int]) []int {
	out := make([]int, 0, a.Size())
	for v := range a.Iter {
		out = append(out, v)
	}
	return out
}

func TestDynamicArray_Clip(t *testing.T) {
	t.Run("cap > len", func(t *testing.T) {
		a := dynamicarray.New[int](1)
		t.Cleanup(a.Free)

		n := 10 // the threshold - 1.
		for i := 0; i < n; i++ {
			v := 2*i + 1 // generating odd number.
			a.Append(v)
		}

		assert.NotEqual(t, a.Cap(), a.Size())
		a.Clip()
		assert.Equal(t, a.Cap(), a.Size())
	})

	t.Run("cap == len", func(t *testing.T) {
		a := dynamicarray.New[int](1)
		t.Cleanup(a.Free)

		n := 4 // the threshold - 1.
		for i := 0; i < n; i++ {
			v := 2*i + 1 // generating odd number.
			a.Append(v)
		}

		assert.Equal(t, a.Cap(), a.Size())
		a.Clip()
		assert.Equal(t, a.Cap(), a.Size())
	})
}
