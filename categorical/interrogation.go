package categorical

import (
	"sort"

	"github.com/nfagan/categorical/status"
)

// FullCategory materializes cat's column as labels.
func (c *Categorical) FullCategory(cat string) ([]string, status.Status) {
	if !c.HasCategory(cat) {
		return nil, status.CategoryDoesNotExist
	}
	ids := c.columns[cat].Slice()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.labelFor(id)
	}
	return out, status.OK
}

// PartialCategory materializes cat's column at the given 0-based indices.
func (c *Categorical) PartialCategory(cat string, indices []uint64) ([]string, status.Status) {
	if !c.HasCategory(cat) {
		return nil, status.CategoryDoesNotExist
	}
	col := c.columns[cat]
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx >= uint64(c.size) {
			return nil, status.OutOfBounds
		}
		out[i] = c.labelFor(col.Get(int(idx)))
	}
	return out, status.OK
}

// InCategory returns the labels currently belonging to cat, sorted for a
// deterministic result (Go map iteration order is randomized).
func (c *Categorical) InCategory(cat string) ([]string, status.Status) {
	if !c.HasCategory(cat) {
		return nil, status.CategoryDoesNotExist
	}
	var out []string
	for label, owner := range c.inCategory {
		if owner == cat {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out, status.OK
}

// IsUniformCategory reports whether cat's column (optionally restricted
// to indices) holds a single id value throughout.
func (c *Categorical) IsUniformCategory(cat string, indices []uint64) (bool, status.Status) {
	if !c.HasCategory(cat) {
		return false, status.CategoryDoesNotExist
	}
	col := c.columns[cat]
	if indices == nil {
		if col.Size() == 0 {
			return true, status.OK
		}
		first := col.Get(0)
		for _, v := range col.Slice()[1:] {
			if v != first {
				return false, status.OK
			}
		}
		return true, status.OK
	}
	if len(indices) == 0 {
		return true, status.OK
	}
	for _, idx := range indices {
		if idx >= uint64(c.size) {
			return false, status.OutOfBounds
		}
	}
	first := col.Get(int(indices[0]))
	for _, idx := range indices[1:] {
		if col.Get(int(idx)) != first {
			return false, status.OK
		}
	}
	return true, status.OK
}
