package rowhash_test

import (
	"testing"

	"github.com/nfagan/categorical/rowhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMissThenInsertThenFindHit(t *testing.T) {
	m := rowhash.New[int](8, 3)
	row := []uint32{1, 2, 3}

	_, idx, found := m.Find(row)
	assert.False(t, found)

	m.Insert(idx, row, 42)

	v, _, found := m.Find(row)
	require.True(t, found)
	assert.Equal(t, 42, v)
}

func TestDistinctRowsDoNotCollapse(t *testing.T) {
	m := rowhash.New[int](4, 2)
	rows := [][]uint32{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for i, r := range rows {
		_, idx, found := m.Find(r)
		require.False(t, found)
		m.Insert(idx, r, i)
	}
	assert.Equal(t, 4, m.Len())
	for i, r := range rows {
		v, _, found := m.Find(r)
		require.True(t, found)
		assert.Equal(t, i, v)
	}
}

func TestFindOrInsert(t *testing.T) {
	m := rowhash.New[int](4, 2)
	row := []uint32{7, 8}

	calls := 0
	make1 := func() int { calls++; return 99 }

	v, inserted := m.FindOrInsert(row, make1)
	assert.True(t, inserted)
	assert.Equal(t, 99, v)

	v, inserted = m.FindOrInsert(row, make1)
	assert.False(t, inserted)
	assert.Equal(t, 99, v)
	assert.Equal(t, 1, calls)
}

func TestFindPanicsOnWrongArity(t *testing.T) {
	m := rowhash.New[int](4, 3)
	assert.Panics(t, func() {
		m.Find([]uint32{1, 2})
	})
}
