package bitarray_test

import (
	"testing"

	"github.com/nfagan/categorical/bitarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilled(t *testing.T) {
	b := bitarray.NewFilled(10, true)
	assert.True(t, b.All())
	assert.Equal(t, 10, b.Sum())

	b2 := bitarray.New(10)
	assert.False(t, b2.Any())
}

func TestSetGet(t *testing.T) {
	b := bitarray.New(5)
	for i := 0; i < 5; i++ {
		b.Set(i, true)
		assert.True(t, b.Get(i))
		assert.Equal(t, 1, b.Sum())
		b.Set(i, false)
	}
}

func TestPush(t *testing.T) {
	b := bitarray.New(0)
	for i := 0; i < 200; i++ {
		b.Push(i%3 == 0)
	}
	require.Equal(t, 200, b.Len())
	for i := 0; i < 200; i++ {
		assert.Equal(t, i%3 == 0, b.Get(i))
	}
}

func TestResizeShrinkMasksTail(t *testing.T) {
	b := bitarray.NewFilled(70, true)
	b.Resize(65)
	assert.Equal(t, 65, b.Sum())
	b.Resize(130)
	assert.Equal(t, 65, b.Sum())
	assert.False(t, b.Get(129))
}

func TestKeep(t *testing.T) {
	b := bitarray.New(5)
	b.Set(1, true)
	b.Set(3, true)
	out := b.Keep([]uint64{0, 1, 2, 3, 4})
	assert.Equal(t, []bool{false, true, false, true, false}, collect(out))
}

func TestAssignTrueValidatesBeforeMutating(t *testing.T) {
	b := bitarray.New(5)
	ok := b.AssignTrue([]uint64{1, 2, 10})
	assert.False(t, ok)
	assert.False(t, b.Any(), "a failed AssignTrue must not mutate any bit")

	ok = b.AssignTrue([]uint64{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 2, b.Sum())
}

func TestFillFlip(t *testing.T) {
	b := bitarray.New(9)
	b.Fill(true)
	assert.Equal(t, 9, b.Sum())
	b.Flip()
	assert.Equal(t, 0, b.Sum())
}

func TestFind(t *testing.T) {
	b := bitarray.New(10)
	b.Set(0, true)
	b.Set(5, true)
	b.Set(9, true)
	assert.Equal(t, []uint64{0, 5, 9}, b.Find(0))
	assert.Equal(t, []uint64{1, 6, 10}, b.Find(1))
}

func TestAppendPreservesPrefixAndAcrossBoundary(t *testing.T) {
	for _, split := range []int{0, 1, 63, 64, 65, 100} {
		a := bitarray.New(split)
		for i := 0; i < split; i++ {
			a.Set(i, i%2 == 0)
		}
		b := bitarray.New(40)
		for i := 0; i < 40; i++ {
			b.Set(i, i%3 == 0)
		}
		out := a.Append(b)
		require.Equal(t, split+40, out.Len())
		for i := 0; i < split; i++ {
			assert.Equal(t, a.Get(i), out.Get(i), "prefix mismatch at %d (split=%d)", i, split)
		}
		for i := 0; i < 40; i++ {
			assert.Equal(t, b.Get(i), out.Get(split+i), "suffix mismatch at %d (split=%d)", i, split)
		}
	}
}

func TestFusedBinaryOps(t *testing.T) {
	a := bitarray.New(8)
	b := bitarray.New(8)
	a.Set(0, true)
	a.Set(1, true)
	b.Set(1, true)
	b.Set(2, true)

	or := bitarray.New(8)
	or.Or(a, b)
	assert.Equal(t, 3, or.Sum())

	and := bitarray.New(8)
	and.And(a, b)
	assert.Equal(t, 1, and.Sum())
	assert.True(t, and.Get(1))

	andNot := bitarray.New(8)
	andNot.AndNot(a, b)
	assert.Equal(t, 1, andNot.Sum())
	assert.True(t, andNot.Get(0))

	xnor := bitarray.New(8)
	xnor.Xnor(a, b)
	assert.True(t, xnor.Get(1))
	assert.False(t, xnor.Get(0))
}

func collect(b *bitarray.BitArray) []bool {
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.Get(i)
	}
	return out
}
