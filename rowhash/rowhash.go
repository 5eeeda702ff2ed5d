// Package rowhash provides a hash map keyed by a fixed-width row of
// uint32 columns, used by categorical's grouping operations (Find,
// FindAll, FindAllC, KeepEach) to assign an equivalence-class id to every
// distinct combination of category ids a row can take.
//
// # Why not map[string]V or map[[N]uint32]V?
//
// The arity (number of categories being grouped on) is only known at call
// time, so the key can't be a fixed-size Go array type. Concatenating ids
// into a string key works but allocates a string per lookup; this package
// instead hashes the raw uint32 row with hash/maphash and resolves
// collisions by comparing the row bytes directly against whatever rows
// already live in that bucket, mirroring the flat per-bucket row storage
// in the original's integral-type row map (vectors of keys, compared with
// memcmp rather than materializing a key object).
package rowhash

import (
	"hash/maphash"
	"unsafe"
)

// RowHashMap maps fixed-arity rows of uint32 ids to a value of type V.
type RowHashMap[V any] struct {
	arity   int
	seed    maphash.Seed
	buckets []bucket[V]
}

type bucket[V any] struct {
	rows   []uint32 // arity-wide rows, flattened
	values []V
}

// New creates a RowHashMap with the given bucket count and row arity
// (number of uint32 columns per key).
//
// Panics if numBuckets <= 0 or arity <= 0.
func New[V any](numBuckets, arity int) *RowHashMap[V] {
	if numBuckets <= 0 {
		panic("rowhash: numBuckets must be positive")
	}
	if arity <= 0 {
		panic("rowhash: arity must be positive")
	}
	return &RowHashMap[V]{
		arity:   arity,
		seed:    maphash.MakeSeed(),
		buckets: make([]bucket[V], numBuckets),
	}
}

// Arity returns the fixed row width this map was constructed with.
func (m *RowHashMap[V]) Arity() int { return m.arity }

func (m *RowHashMap[V]) bucketIndex(row []uint32) int {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), len(row)*4)
	h := maphash.Bytes(m.seed, b)
	return int(h % uint64(len(m.buckets)))
}

// Find looks up row (which must have length Arity()) and reports the
// value stored for it, if any, along with the bucket index it hashes to
// — callers that don't find a match typically pass that index straight
// to Insert to avoid hashing twice.
//
// Panics if len(row) != Arity().
func (m *RowHashMap[V]) Find(row []uint32) (value V, bucketIndex int, found bool) {
	m.checkRow(row)
	bucketIndex = m.bucketIndex(row)
	b := &m.buckets[bucketIndex]
	n := len(b.values)
	for i := 0; i < n; i++ {
		if rowEqual(b.rows[i*m.arity:(i+1)*m.arity], row) {
			return b.values[i], bucketIndex, true
		}
	}
	var zero V
	return zero, bucketIndex, false
}

// Insert associates row with value in the given bucket, as returned by a
// prior Find call. It does not check whether row is already present;
// callers must Find first to avoid duplicate rows in a bucket.
func (m *RowHashMap[V]) Insert(bucketIndex int, row []uint32, value V) {
	m.checkRow(row)
	b := &m.buckets[bucketIndex]
	b.rows = append(b.rows, row...)
	b.values = append(b.values, value)
}

// FindOrInsert looks up row and returns its existing value if present;
// otherwise it inserts makeValue() under row and returns the new value.
// Reports whether the value was newly inserted.
func (m *RowHashMap[V]) FindOrInsert(row []uint32, makeValue func() V) (value V, inserted bool) {
	if v, idx, ok := m.Find(row); ok {
		return v, false
	} else {
		v = makeValue()
		m.Insert(idx, row, v)
		return v, true
	}
}

// MaxBucketSize returns the size of the largest bucket, useful for
// diagnosing a poorly distributed hash or an undersized table.
func (m *RowHashMap[V]) MaxBucketSize() int {
	max := 0
	for _, b := range m.buckets {
		if len(b.values) > max {
			max = len(b.values)
		}
	}
	return max
}

// Len returns the total number of distinct rows stored across all buckets.
func (m *RowHashMap[V]) Len() int {
	total := 0
	for _, b := range m.buckets {
		total += len(b.values)
	}
	return total
}

func (m *RowHashMap[V]) checkRow(row []uint32) {
	if len(row) != m.arity {
		panic("rowhash: row length does not match arity")
	}
}

func rowEqual(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
