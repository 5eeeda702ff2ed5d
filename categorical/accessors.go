package categorical

import "github.com/nfagan/categorical/status"

// Categories returns the category names in stable column order.
func (c *Categorical) Categories() []string {
	return append([]string(nil), c.categories...)
}

// ColumnIDs returns a copy of cat's raw id column.
func (c *Categorical) ColumnIDs(cat string) ([]uint32, status.Status) {
	if !c.HasCategory(cat) {
		return nil, status.CategoryDoesNotExist
	}
	return append([]uint32(nil), c.columns[cat].Slice()...), status.OK
}

// LabelID returns the id interned for label, if any.
func (c *Categorical) LabelID(label string) (uint32, bool) {
	return c.labels.LookupByKey(label)
}

// LabelForID returns the label text for id, or "" if id is 0 or unknown.
func (c *Categorical) LabelForID(id uint32) string {
	return c.labelFor(id)
}

// Select returns a fresh Categorical holding exactly the given 0-based
// rows, in order, sharing the receiver's progenitor tag — since the
// result's ids come straight from the receiver's own id space, no label
// reconciliation is ever needed to use it in a later Append/Assign/Merge
// against either the receiver or another array descended from it.
func (c *Categorical) Select(indices []uint64) (*Categorical, status.Status) {
	for _, idx := range indices {
		if idx >= uint64(c.size) {
			return nil, status.OutOfBounds
		}
	}
	out := c.Clone()
	for _, cat := range out.categories {
		src := c.columns[cat].Slice()
		vals := make([]uint32, len(indices))
		for i, idx := range indices {
			vals[i] = src[idx]
		}
		out.columns[cat].Replace(vals)
	}
	out.size = len(indices)
	return out, status.OK
}
