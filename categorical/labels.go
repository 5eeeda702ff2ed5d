package categorical

import "github.com/nfagan/categorical/status"

// SetCategory replaces cat's entire column with values. If the array is
// currently empty and AllowSetFromSize0 permits it, the array grows to
// len(values) first. A single value broadcasts across the existing size
// via FillCategory.
func (c *Categorical) SetCategory(cat string, values []string) status.Status {
	if !c.HasCategory(cat) {
		return status.CategoryDoesNotExist
	}
	if c.size == 0 && len(values) > 0 {
		if !c.opts.AllowSetFromSize0 {
			return status.WrongCategorySize
		}
		if st := c.Resize(len(values)); !st.Ok() {
			return st
		}
	}
	if len(values) == 1 && c.size != 1 {
		return c.FillCategory(cat, values[0])
	}
	if len(values) != c.size {
		return status.WrongCategorySize
	}
	return c.writeCategory(cat, values)
}

// writeCategory validates every value before mutating the column, then
// removes labels that were unique to cat and are no longer present.
func (c *Categorical) writeCategory(cat string, values []string) status.Status {
	for _, v := range values {
		if st := c.checkLabelForCategory(v, cat); !st.Ok() {
			return st
		}
	}

	ids := make([]uint32, len(values))
	stillUsed := make(map[string]bool, len(values))
	for i, v := range values {
		id, _ := c.internLabel(v, cat)
		ids[i] = id
		stillUsed[v] = true
	}

	for label, owner := range c.inCategory {
		if owner == cat && !stillUsed[label] {
			c.eraseLabel(label)
		}
	}

	c.columns[cat].Replace(ids)
	c.touchLabels()
	if c.opts.PruneAfterAssign {
		c.Prune()
	}
	return status.OK
}

// SetCategoryAt writes values into cat's column at the given 0-based row
// indices. A single value broadcasts across every index.
func (c *Categorical) SetCategoryAt(cat string, values []string, atIndices []uint64) status.Status {
	if !c.HasCategory(cat) {
		return status.CategoryDoesNotExist
	}
	if len(values) != 1 && len(values) != len(atIndices) {
		return status.WrongIndexSize
	}
	for _, idx := range atIndices {
		if idx >= uint64(c.size) {
			return status.OutOfBounds
		}
	}
	for _, v := range values {
		if st := c.checkLabelForCategory(v, cat); !st.Ok() {
			return st
		}
	}

	ids := make([]uint32, len(values))
	for i, v := range values {
		id, _ := c.internLabel(v, cat)
		ids[i] = id
	}

	col := c.columns[cat]
	for i, idx := range atIndices {
		id := ids[0]
		if len(ids) > 1 {
			id = ids[i]
		}
		col.Set(int(idx), id)
	}
	c.touchLabels()
	if c.opts.PruneAfterAssign {
		c.Prune()
	}
	return status.OK
}

// FillCategory writes label into every row of cat, removing every other
// label that belonged to cat.
func (c *Categorical) FillCategory(cat, label string) status.Status {
	if !c.HasCategory(cat) {
		return status.CategoryDoesNotExist
	}
	if st := c.checkLabelForCategory(label, cat); !st.Ok() {
		return st
	}
	id, _ := c.internLabel(label, cat)
	for other, owner := range c.inCategory {
		if owner == cat && other != label {
			c.eraseLabel(other)
		}
	}
	ids := c.columns[cat].Slice()
	for i := range ids {
		ids[i] = id
	}
	c.touchLabels()
	return status.OK
}

// ReplaceLabels rewrites every row whose value is in from to with. Every
// label in from must belong to the same category; with must either be new
// or already belong to that category.
func (c *Categorical) ReplaceLabels(from []string, with string) status.Status {
	var cat string
	known := make([]string, 0, len(from))
	for _, f := range from {
		owner, ok := c.inCategory[f]
		if !ok {
			continue
		}
		if cat == "" {
			cat = owner
		} else if owner != cat {
			return status.CategoriesDoNotMatch
		}
		known = append(known, f)
	}
	if cat == "" {
		return status.OK
	}
	if st := c.checkLabelForCategory(with, cat); !st.Ok() {
		return st
	}
	withID, _ := c.internLabel(with, cat)

	fromIDs := make(map[uint32]bool, len(known))
	for _, f := range known {
		id, _ := c.labels.LookupByKey(f)
		fromIDs[id] = true
	}

	col := c.columns[cat]
	vals := col.Slice()
	for i, v := range vals {
		if fromIDs[v] {
			vals[i] = withID
		}
	}

	for _, f := range known {
		if f != with {
			c.eraseLabel(f)
		}
	}
	c.touchLabels()
	if c.opts.PruneAfterAssign {
		c.Prune()
	}
	return status.OK
}

// RemoveLabels keeps only the rows where none of the given labels
// occurred in any category, returning the 0-based indices that were kept.
func (c *Categorical) RemoveLabels(labels []string) []uint64 {
	idSet := make(map[uint32]bool, len(labels))
	for _, l := range labels {
		if id, ok := c.labels.LookupByKey(l); ok {
			idSet[id] = true
		}
	}

	keep := make([]uint64, 0, c.size)
	for i := 0; i < c.size; i++ {
		hit := false
		for _, cat := range c.categories {
			if idSet[c.columns[cat].Get(i)] {
				hit = true
				break
			}
		}
		if !hit {
			keep = append(keep, uint64(i))
		}
	}

	for _, cat := range c.categories {
		col := c.columns[cat]
		src := col.Slice()
		out := make([]uint32, len(keep))
		for i, idx := range keep {
			out[i] = src[idx]
		}
		col.Replace(out)
	}
	c.size = len(keep)
	return keep
}
