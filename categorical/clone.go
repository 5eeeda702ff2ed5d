package categorical

import "github.com/nfagan/categorical/dynamicarray"

// ProgenitorTag exposes the array's progenitor nonces as a comparable
// value, for tests and callers that want to check tag stability directly
// rather than through its effect on Append/Merge/set-op fast paths.
type ProgenitorTag struct {
	A, B uint32
}

// ProgenitorTag returns the array's current progenitor tag.
func (c *Categorical) ProgenitorTag() ProgenitorTag {
	return ProgenitorTag{A: c.tag.a, B: c.tag.b}
}

// SameLineage reports whether c and other share a progenitor tag — the
// condition under which Append/Assign/Merge and the set operations can
// skip label reconciliation.
func (c *Categorical) SameLineage(other *Categorical) bool {
	return c.tag.equal(other.tag)
}

// Clone returns an independent deep copy sharing the same progenitor tag
// (and therefore the same id space) as the receiver.
func (c *Categorical) Clone() *Categorical {
	out := &Categorical{
		opts:          c.opts,
		rng:           newRand(),
		size:          c.size,
		categories:    append([]string(nil), c.categories...),
		categoryIndex: make(map[string]int, len(c.categoryIndex)),
		columns:       make(map[string]*dynamicarray.DynamicArray[uint32], len(c.columns)),
		labels:        c.labels.Clone(),
		inCategory:    make(map[string]string, len(c.inCategory)),
		collapsedSet:  make(map[string]bool, len(c.collapsedSet)),
		tag:           c.tag,
	}
	for k, v := range c.categoryIndex {
		out.categoryIndex[k] = v
	}
	for k, v := range c.inCategory {
		out.inCategory[k] = v
	}
	for k, v := range c.collapsedSet {
		out.collapsedSet[k] = v
	}
	for cat, col := range c.columns {
		clone := dynamicarray.New[uint32](max1(col.Size()))
		clone.Replace(append([]uint32(nil), col.Slice()...))
		out.columns[cat] = clone
	}
	return out
}
