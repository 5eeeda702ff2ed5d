package hashmap_test

import (
	"testing"

	"github.com/nfagan/categorical/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDel(t *testing.T) {
	m := hashmap.New[string, int]()
	assert.True(t, m.Empty())

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, m.Exists("a"))
	assert.False(t, m.Exists("z"))
	assert.Equal(t, 3, m.Size())

	m.Del("b")
	assert.False(t, m.Exists("b"))
	assert.Equal(t, 2, m.Size())

	_, ok = m.Get("z")
	assert.False(t, ok)

	m.Del("does-not-exist")
	assert.Equal(t, 2, m.Size())
}

func TestPutUpdatesExistingKey(t *testing.T) {
	m := hashmap.New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Size())
}

func TestIterAndKeys(t *testing.T) {
	m := hashmap.New[string, int]()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Put(k, v)
	}

	got := make(map[string]int)
	for e := range m.Iter {
		got[e.Key()] = e.Value()
	}
	assert.Equal(t, want, got)

	keys := make(map[string]bool)
	for k := range m.Keys {
		keys[k] = true
	}
	assert.Len(t, keys, 3)
}

func TestGrowAndRehash(t *testing.T) {
	m := hashmap.NewWith[int, int](hashmap.Options[int]{
		Capacity:      4,
		LoadThreshold: 0.75,
	})
	initialCap := m.Cap()

	for i := 0; i < 100; i++ {
		m.Put(i, i*i)
	}

	assert.Greater(t, m.Cap(), initialCap)
	assert.Less(t, m.LoadFactor(), 0.75)
	assert.Equal(t, 100, m.Size())

	for i := 0; i < 100; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}

func TestCollisionsChainWithinBucket(t *testing.T) {
	m := hashmap.NewWith[int, int](hashmap.Options[int]{
		Capacity:      4,
		LoadThreshold: 0.99,
		HashFunction:  func(int) int { return 0 },
	})

	for i := 0; i < 5; i++ {
		m.Put(i, i)
	}
	for i := 0; i < 5; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	m.Del(2)
	assert.False(t, m.Exists(2))
	v, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
