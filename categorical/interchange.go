package categorical

import (
	"github.com/nfagan/categorical/dynamicarray"
	"github.com/nfagan/categorical/status"
)

// NumericMatrix is a point-in-time, self-contained snapshot of a
// Categorical: its packed id matrix plus the interning tables needed to
// reconstruct label text and category membership. It carries no
// progenitor tag — FromNumericMatrix always mints a fresh one, since a
// matrix that may have crossed a process or encoding boundary cannot be
// trusted to share an id space with anything already in memory.
//
// Struct tags make it encodable both as compact binary (msgpack, for a
// caller that wants an efficient snapshot) and as human-readable JSON (for
// the CLI's --format=json output) without a second type.
type NumericMatrix struct {
	Rows int `msgpack:"rows" json:"rows"`
	Cols int `msgpack:"cols" json:"cols"`

	// Categories names each of the Cols columns, in the order Ids is laid
	// out.
	Categories []string `msgpack:"categories" json:"categories"`

	// Ids is Rows*Cols ids in row-major order: Ids[i*Cols+j] is row i's id
	// in Categories[j].
	Ids []uint32 `msgpack:"ids" json:"ids"`

	// Labels, LabelIDs, and LabelCategories are parallel arrays over the
	// full interning table: label text, its id, and the category it
	// belongs to.
	Labels          []string `msgpack:"labels" json:"labels"`
	LabelIDs        []uint32 `msgpack:"label_ids" json:"label_ids"`
	LabelCategories []string `msgpack:"label_categories" json:"label_categories"`
}

// ToNumericMatrix snapshots the array's current id columns and full
// interning table into a plain, serializable struct.
func (c *Categorical) ToNumericMatrix() NumericMatrix {
	nm := NumericMatrix{
		Rows:       c.size,
		Cols:       len(c.categories),
		Categories: append([]string(nil), c.categories...),
		Ids:        make([]uint32, c.size*len(c.categories)),
	}
	for j, cat := range c.categories {
		col := c.columns[cat].Slice()
		for i := 0; i < c.size; i++ {
			nm.Ids[i*len(c.categories)+j] = col[i]
		}
	}
	for label, id := range c.labels.Iter {
		nm.Labels = append(nm.Labels, label)
		nm.LabelIDs = append(nm.LabelIDs, id)
		nm.LabelCategories = append(nm.LabelCategories, c.inCategory[label])
	}
	return nm
}

// FromNumericMatrix reconstructs a Categorical from a snapshot produced by
// ToNumericMatrix (possibly round-tripped through msgpack or JSON). The
// result gets a freshly randomized progenitor tag: nm carries no lineage
// information, so this is always treated as an unrelated array.
func FromNumericMatrix(nm NumericMatrix, opts Options) (*Categorical, status.Status) {
	if len(nm.Categories) != nm.Cols {
		return nil, status.WrongCategorySize
	}
	if len(nm.Ids) != nm.Rows*nm.Cols {
		return nil, status.WrongCategorySize
	}
	if len(nm.Labels) != len(nm.LabelIDs) || len(nm.Labels) != len(nm.LabelCategories) {
		return nil, status.WrongIndexSize
	}

	catSet := make(map[string]bool, len(nm.Categories))
	for _, cat := range nm.Categories {
		if catSet[cat] {
			return nil, status.CategoryExists
		}
		catSet[cat] = true
	}

	c := NewWith(opts)
	for _, cat := range nm.Categories {
		c.columns[cat] = dynamicarray.New[uint32](max1(nm.Rows))
		c.categoryIndex[cat] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	for i, label := range nm.Labels {
		cat := nm.LabelCategories[i]
		if !catSet[cat] {
			return nil, status.CategoryDoesNotExist
		}
		id := nm.LabelIDs[i]
		c.labels.Insert(label, id)
		c.inCategory[label] = cat
		if inner, ok := parseCollapsedLabel(label); ok && inner == cat {
			c.collapsedSet[label] = true
		}
	}

	for j, cat := range nm.Categories {
		ids := make([]uint32, nm.Rows)
		for i := 0; i < nm.Rows; i++ {
			ids[i] = nm.Ids[i*nm.Cols+j]
		}
		c.columns[cat].Replace(ids)
	}
	c.size = nm.Rows
	c.randomizeTag()
	return c, status.OK
}
