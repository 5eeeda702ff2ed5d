package bimap_test

import (
	"testing"

	"github.com/nfagan/categorical/bimap"
	"github.com/stretchr/testify/assert"
)

func TestInsertAndLookup(t *testing.T) {
	m := bimap.New[string, uint32]()
	m.Insert("red", 1)
	m.Insert("blue", 2)

	v, ok := m.LookupByKey("red")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), v)

	k, ok := m.LookupByValue(2)
	assert.True(t, ok)
	assert.Equal(t, "blue", k)

	assert.Equal(t, 2, m.Size())
}

func TestInsertCollisionOnKeyReplacesOldPairing(t *testing.T) {
	m := bimap.New[string, uint32]()
	m.Insert("red", 1)
	m.Insert("red", 2)

	v, _ := m.LookupByKey("red")
	assert.Equal(t, uint32(2), v)
	assert.False(t, m.HasValue(1))
	assert.Equal(t, 1, m.Size())
}

func TestInsertCollisionOnValueReplacesOldPairing(t *testing.T) {
	m := bimap.New[string, uint32]()
	m.Insert("red", 1)
	m.Insert("blue", 1)

	assert.False(t, m.HasKey("red"))
	k, _ := m.LookupByValue(1)
	assert.Equal(t, "blue", k)
	assert.Equal(t, 1, m.Size())
}

func TestEraseByEitherSide(t *testing.T) {
	m := bimap.New[string, uint32]()
	m.Insert("red", 1)
	m.Insert("blue", 2)

	assert.True(t, m.EraseByKey("red"))
	assert.False(t, m.HasValue(1))

	assert.True(t, m.EraseByValue(2))
	assert.False(t, m.HasKey("blue"))

	assert.False(t, m.EraseByKey("missing"))
	assert.Equal(t, 0, m.Size())
}

func TestIterVisitsEveryPair(t *testing.T) {
	m := bimap.New[string, uint32]()
	want := map[string]uint32{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Insert(k, v)
	}

	got := map[string]uint32{}
	for k, v := range m.Iter {
		got[k] = v
	}
	assert.Equal(t, want, got)
}
