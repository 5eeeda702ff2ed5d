package categorical

import (
	"math"

	"github.com/nfagan/categorical/dynamicarray"
	"github.com/nfagan/categorical/status"
)

// AddCategory adds a new, empty-of-distinct-labels category. Every
// existing row gets the category's collapsed expression as its initial
// value.
func (c *Categorical) AddCategory(cat string) status.Status {
	if c.HasCategory(cat) {
		return status.CategoryExists
	}
	collapsed := collapsedExpr(cat)
	if st := c.checkLabelForCategory(collapsed, cat); !st.Ok() {
		return st
	}
	id, _ := c.internLabel(collapsed, cat)

	col := dynamicarray.New[uint32](max1(c.size))
	for i := 0; i < c.size; i++ {
		col.Append(id)
	}
	c.columns[cat] = col
	c.categoryIndex[cat] = len(c.categories)
	c.categories = append(c.categories, cat)
	c.touchLabels()
	return status.OK
}

func max1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// RequireCategory adds cat if absent; a no-op OK if already present.
func (c *Categorical) RequireCategory(cat string) status.Status {
	if c.HasCategory(cat) {
		return status.OK
	}
	return c.AddCategory(cat)
}

// RemoveCategory drops cat's column and every label that belonged to it.
func (c *Categorical) RemoveCategory(cat string) status.Status {
	if !c.HasCategory(cat) {
		return status.CategoryDoesNotExist
	}
	for label, owner := range c.inCategory {
		if owner == cat {
			c.eraseLabel(label)
		}
	}
	delete(c.columns, cat)

	idx := c.categoryIndex[cat]
	c.categories = append(c.categories[:idx], c.categories[idx+1:]...)
	delete(c.categoryIndex, cat)
	for i := idx; i < len(c.categories); i++ {
		c.categoryIndex[c.categories[i]] = i
	}
	c.touchLabels()
	return status.OK
}

// RenameCategory renames from to to, carrying over its column, its
// labels' ownership, and its collapsed expression text.
func (c *Categorical) RenameCategory(from, to string) status.Status {
	if !c.HasCategory(from) {
		return status.CategoryDoesNotExist
	}
	if c.HasCategory(to) {
		return status.CategoryExists
	}
	newCollapsed := collapsedExpr(to)
	if owner, ok := c.inCategory[newCollapsed]; ok && owner != from {
		return status.CollapsedExpressionInWrongCategory
	}

	oldCollapsed := collapsedExpr(from)
	if id, ok := c.labels.LookupByKey(oldCollapsed); ok {
		c.eraseLabel(oldCollapsed)
		c.labels.Insert(newCollapsed, id)
		c.inCategory[newCollapsed] = to
		c.collapsedSet[newCollapsed] = true
	}
	for label, owner := range c.inCategory {
		if owner == from {
			c.inCategory[label] = to
		}
	}

	idx := c.categoryIndex[from]
	c.categories[idx] = to
	delete(c.categoryIndex, from)
	c.categoryIndex[to] = idx

	col := c.columns[from]
	delete(c.columns, from)
	c.columns[to] = col

	c.touchLabels()
	return status.OK
}

// CollapseCategory replaces every value in cat's column with its
// collapsed expression and erases every other label that belonged to cat.
func (c *Categorical) CollapseCategory(cat string) status.Status {
	if !c.HasCategory(cat) {
		return status.CategoryDoesNotExist
	}
	collapsed := collapsedExpr(cat)
	id, _ := c.internLabel(collapsed, cat)

	for label, owner := range c.inCategory {
		if owner == cat && label != collapsed {
			c.eraseLabel(label)
		}
	}

	col := c.columns[cat]
	ids := col.Slice()
	for i := range ids {
		ids[i] = id
	}
	c.touchLabels()
	return status.OK
}

// Resize grows or shrinks every column to length n. Growing pads new rows
// with each category's collapsed expression (interning it if absent);
// shrinking truncates.
func (c *Categorical) Resize(n int) status.Status {
	if n < 0 {
		return status.OutOfBounds
	}
	if n == c.size {
		return status.OK
	}
	if n < c.size {
		for _, cat := range c.categories {
			col := c.columns[cat]
			col.Replace(col.Slice()[:n])
		}
		c.size = n
		return status.OK
	}
	for _, cat := range c.categories {
		collapsed := collapsedExpr(cat)
		id, isNew := c.internLabel(collapsed, cat)
		if isNew {
			c.touchLabels()
		}
		col := c.columns[cat]
		for col.Size() < n {
			col.Append(id)
		}
	}
	c.size = n
	return status.OK
}

// Reserve resizes to n, then prunes if that shrank the array.
func (c *Categorical) Reserve(n int) status.Status {
	shrinking := n < c.size
	st := c.Resize(n)
	if !st.Ok() {
		return st
	}
	if shrinking {
		c.Prune()
	}
	return status.OK
}

// Repeat grows the array to Size()*(k+1) rows by replicating every
// column k additional times. Rejects before allocating if the resulting
// size would overflow.
func (c *Categorical) Repeat(k int) status.Status {
	if k < 0 {
		return status.OutOfBounds
	}
	total := uint64(c.size) * uint64(k+1)
	if total > math.MaxInt32 {
		return status.CatOverflow
	}
	n := int(total)
	for _, cat := range c.categories {
		col := c.columns[cat]
		base := append([]uint32(nil), col.Slice()...)
		out := make([]uint32, 0, n)
		for i := 0; i <= k; i++ {
			out = append(out, base...)
		}
		col.Replace(out)
	}
	c.size = n
	return status.OK
}
