package categorical

import (
	"github.com/nfagan/categorical/bitarray"
	"github.com/nfagan/categorical/rowhash"
	"github.com/nfagan/categorical/status"
)

// matchMaskAnd builds the "AND across categories, OR within a category"
// mask Find uses: for each category mentioned among labels, OR together
// the per-label membership masks; then AND those category masks. Returns
// nil if any label is unknown (Find's documented "empty result" case).
func (c *Categorical) matchMaskAnd(labels []string) *bitarray.BitArray {
	perCategory := make(map[string]*bitarray.BitArray)
	order := make([]string, 0, len(labels))
	for _, label := range labels {
		cat, ok := c.inCategory[label]
		if !ok {
			return nil
		}
		id, _ := c.labels.LookupByKey(label)
		mask, seen := perCategory[cat]
		if !seen {
			mask = bitarray.New(c.size)
			perCategory[cat] = mask
			order = append(order, cat)
		}
		col := c.columns[cat]
		for i, v := range col.Slice() {
			if v == id {
				mask.Set(i, true)
			}
		}
	}
	if len(order) == 0 {
		return bitarray.NewFilled(c.size, true)
	}
	result := perCategory[order[0]]
	for _, cat := range order[1:] {
		next := bitarray.New(c.size)
		next.And(result, perCategory[cat])
		result = next
	}
	return result
}

// matchMaskOr builds the mask of rows holding any of labels in any
// category, ignoring unknown labels.
func (c *Categorical) matchMaskOr(labels []string) *bitarray.BitArray {
	mask := bitarray.New(c.size)
	for _, label := range labels {
		cat, ok := c.inCategory[label]
		if !ok {
			continue
		}
		id, _ := c.labels.LookupByKey(label)
		col := c.columns[cat]
		for i, v := range col.Slice() {
			if v == id {
				mask.Set(i, true)
			}
		}
	}
	return mask
}

// Find returns the positions (offset by offset) where, for every category
// mentioned among labels, the row holds one of that category's given
// labels. A missing label yields an empty result.
func (c *Categorical) Find(labels []string, offset uint64) []uint64 {
	mask := c.matchMaskAnd(labels)
	if mask == nil {
		return []uint64{}
	}
	return mask.Find(offset)
}

// FindMask is the mask-producing counterpart to Find, for callers that
// chain further logical composition before converting to indices.
func (c *Categorical) FindMask(labels []string) *bitarray.BitArray {
	mask := c.matchMaskAnd(labels)
	if mask == nil {
		return bitarray.New(c.size)
	}
	return mask
}

// FindOr returns the positions of rows holding any of labels, regardless
// of category, ignoring labels that don't exist.
func (c *Categorical) FindOr(labels []string, offset uint64) []uint64 {
	return c.matchMaskOr(labels).Find(offset)
}

// FindNot returns the positions NOT matched by Find(labels, ...) — the
// complement of the AND-across-categories/OR-within-category mask.
func (c *Categorical) FindNot(labels []string, offset uint64) []uint64 {
	mask := c.matchMaskAnd(labels)
	if mask == nil {
		return bitarray.NewFilled(c.size, true).Find(offset)
	}
	out := mask.Clone()
	out.Flip()
	return out.Find(offset)
}

// FindNone returns the positions of rows holding none of labels in any
// category.
func (c *Categorical) FindNone(labels []string, offset uint64) []uint64 {
	mask := c.matchMaskOr(labels)
	mask.Flip()
	return mask.Find(offset)
}

// FindAll groups rows by their combination of ids across cats, returning
// the list of matching row indices (offset-adjusted) for each distinct
// combination, in order of first encounter. Returns nil if any category
// name is missing.
func (c *Categorical) FindAll(cats []string, offset uint64) ([][]uint64, status.Status) {
	for _, cat := range cats {
		if !c.HasCategory(cat) {
			return nil, status.CategoryDoesNotExist
		}
	}
	groups, _, st := c.groupBy(cats)
	if !st.Ok() {
		return nil, st
	}
	out := make([][]uint64, len(groups))
	for i, g := range groups {
		rows := make([]uint64, len(g))
		for j, r := range g {
			rows[j] = uint64(r) + offset
		}
		out[i] = rows
	}
	return out, status.OK
}

// FindAllC is FindAll plus the labels of each combination: combos has
// len(groups)*len(cats) entries, row-major over combinations then cats in
// input order.
func (c *Categorical) FindAllC(cats []string, offset uint64) ([][]uint64, []string, status.Status) {
	for _, cat := range cats {
		if !c.HasCategory(cat) {
			return nil, nil, status.CategoryDoesNotExist
		}
	}
	groups, firstRows, st := c.groupBy(cats)
	if !st.Ok() {
		return nil, nil, st
	}
	indices := make([][]uint64, len(groups))
	labels := make([]string, 0, len(groups)*len(cats))
	for i, g := range groups {
		rows := make([]uint64, len(g))
		for j, r := range g {
			rows[j] = uint64(r) + offset
		}
		indices[i] = rows
		for _, cat := range cats {
			id := c.columns[cat].Get(firstRows[i])
			labels = append(labels, c.labelFor(id))
		}
	}
	return indices, labels, status.OK
}

// groupBy hashes each row's tuple of ids across cats with rowhash,
// returning, for each distinct combination (in first-encounter order),
// the list of row indices sharing it and the row index of its first
// occurrence.
func (c *Categorical) groupBy(cats []string) (groups [][]int, firstRows []int, st status.Status) {
	if c.size == 0 {
		return nil, nil, status.OK
	}
	if len(cats) == 0 {
		all := make([]int, c.size)
		for i := range all {
			all[i] = i
		}
		return [][]int{all}, []int{0}, status.OK
	}
	rh := rowhash.New[int](bucketCountFor(c.size), len(cats))
	row := make([]uint32, len(cats))
	for i := 0; i < c.size; i++ {
		for j, cat := range cats {
			row[j] = c.columns[cat].Get(i)
		}
		if v, idx, found := rh.Find(row); found {
			groups[v] = append(groups[v], i)
		} else {
			groupID := len(groups)
			groups = append(groups, []int{i})
			firstRows = append(firstRows, i)
			rh.Insert(idx, row, groupID)
		}
	}
	return groups, firstRows, status.OK
}

func bucketCountFor(n int) int {
	if n < 8 {
		return 8
	}
	return n
}

// KeepEach reshapes the array to one row per distinct combination of
// cats. Categories not in cats collapse to their collapsed expression
// when the group held mixed ids, or copy the group's uniform id
// otherwise.
func (c *Categorical) KeepEach(cats []string) status.Status {
	for _, cat := range cats {
		if !c.HasCategory(cat) {
			return status.CategoryDoesNotExist
		}
	}
	groups, firstRows, st := c.groupBy(cats)
	if !st.Ok() {
		return st
	}
	if c.size == 0 {
		return status.OK
	}

	inGroup := make(map[string]bool, len(cats))
	for _, cat := range cats {
		inGroup[cat] = true
	}

	newCols := make(map[string][]uint32, len(c.categories))
	for _, cat := range c.categories {
		newCols[cat] = make([]uint32, 0, len(groups))
	}

	for gi, g := range groups {
		for _, cat := range cats {
			id := c.columns[cat].Get(firstRows[gi])
			newCols[cat] = append(newCols[cat], id)
		}
		for _, cat := range c.categories {
			if inGroup[cat] {
				continue
			}
			col := c.columns[cat]
			first := col.Get(g[0])
			uniform := true
			for _, row := range g[1:] {
				if col.Get(row) != first {
					uniform = false
					break
				}
			}
			if uniform {
				newCols[cat] = append(newCols[cat], first)
			} else {
				collapsed := collapsedExpr(cat)
				id, _ := c.internLabel(collapsed, cat)
				newCols[cat] = append(newCols[cat], id)
			}
		}
	}

	for _, cat := range c.categories {
		c.columns[cat].Replace(newCols[cat])
	}
	c.size = len(groups)
	c.touchLabels()
	return status.OK
}

// One reshapes the array down to a single row, collapsing every
// non-uniform category — equivalent to KeepEach(nil).
func (c *Categorical) One() status.Status {
	return c.KeepEach(nil)
}
