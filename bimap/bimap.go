// Package bimap provides a bidirectional one-to-one mapping between two
// comparable key types, kept symmetric under every mutation: inserting a
// pair that collides with either existing key first erases the colliding
// pair, and erasing by either key removes both sides.
//
// categorical uses a BiMap[string, uint32] for each category's label↔id
// table: LookupByKey turns a label into its id during interning,
// LookupByValue turns an id back into its label for display and for
// reconciling two categories' id spaces during a set operation.
package bimap

import "github.com/nfagan/categorical/hashmap"

// BiMap is a symmetric one-to-one mapping between K and V. It is built from
// two HashMap instances advanced in lockstep rather than Go's native map,
// matching the teacher's own separate-chaining HashMap for every keyed
// lookup in this module.
type BiMap[K comparable, V comparable] struct {
	kv *hashmap.HashMap[K, V]
	vk *hashmap.HashMap[V, K]
}

// New creates an empty BiMap.
func New[K comparable, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		kv: hashmap.New[K, V](),
		vk: hashmap.New[V, K](),
	}
}

// Insert associates key with value. If key already maps to some value, or
// value is already mapped to by some key, the stale pair on that side is
// removed first, preserving the one-to-one invariant.
func (b *BiMap[K, V]) Insert(key K, value V) {
	if oldV, ok := b.kv.Get(key); ok {
		b.vk.Del(oldV)
	}
	if oldK, ok := b.vk.Get(value); ok {
		b.kv.Del(oldK)
	}
	b.kv.Put(key, value)
	b.vk.Put(value, key)
}

// LookupByKey returns the value associated with key.
func (b *BiMap[K, V]) LookupByKey(key K) (V, bool) {
	return b.kv.Get(key)
}

// LookupByValue returns the key associated with value.
func (b *BiMap[K, V]) LookupByValue(value V) (K, bool) {
	return b.vk.Get(value)
}

// HasKey reports whether key is present.
func (b *BiMap[K, V]) HasKey(key K) bool {
	return b.kv.Exists(key)
}

// HasValue reports whether value is present.
func (b *BiMap[K, V]) HasValue(value V) bool {
	return b.vk.Exists(value)
}

// EraseByKey removes the pair associated with key, if any. Reports whether
// a pair was removed.
func (b *BiMap[K, V]) EraseByKey(key K) bool {
	value, ok := b.kv.Get(key)
	if !ok {
		return false
	}
	b.kv.Del(key)
	b.vk.Del(value)
	return true
}

// EraseByValue removes the pair associated with value, if any. Reports
// whether a pair was removed.
func (b *BiMap[K, V]) EraseByValue(value V) bool {
	key, ok := b.vk.Get(value)
	if !ok {
		return false
	}
	b.vk.Del(value)
	b.kv.Del(key)
	return true
}

// Size returns the number of pairs stored.
func (b *BiMap[K, V]) Size() int {
	return b.kv.Size()
}

// Keys iterates over every key in unspecified order.
func (b *BiMap[K, V]) Keys(yield func(K) bool) {
	for e := range b.kv.Iter {
		if !yield(e.Key()) {
			return
		}
	}
}

// Values iterates over every value in unspecified order.
func (b *BiMap[K, V]) Values(yield func(V) bool) {
	for e := range b.vk.Iter {
		if !yield(e.Key()) {
			return
		}
	}
}

// Clone returns an independent copy holding the same pairs.
func (b *BiMap[K, V]) Clone() *BiMap[K, V] {
	out := New[K, V]()
	for k, v := range b.Iter {
		out.Insert(k, v)
	}
	return out
}

// Iter iterates over every (key, value) pair in unspecified order.
func (b *BiMap[K, V]) Iter(yield func(K, V) bool) {
	for e := range b.kv.Iter {
		if !yield(e.Key(), e.Value()) {
			return
		}
	}
}
