// Package categorical implements a column-oriented in-memory table of
// discrete labels grouped into named categories. Every cell is a label id;
// a Categorical owns the bidirectional label↔id mapping, the per-category
// id columns, and a "progenitor tag" that lets two instances recognize a
// shared id-space lineage and skip label reconciliation entirely.
//
// # Layout
//
//	categories: ["color", "size"]
//	columns:
//	  color: [7, 7, 3]   (ids)
//	  size:  [9, 2, 2]
//	labels: {"red":7, "blue":3, "small":9, "large":2}
//
// Each id is minted once per label, per instance, by rejection-sampling a
// random nonzero uint32 — see randID. Two Categoricals that descend from a
// common ancestor (same progenitor tag) are guaranteed to agree on every
// id, which is what makes Append, Assign, and the set operations fast in
// the common case: the id columns can be copied verbatim instead of
// rewritten through a reconciliation map.
package categorical

import (
	"math/rand/v2"

	"github.com/nfagan/categorical/bimap"
	"github.com/nfagan/categorical/dynamicarray"
	"github.com/nfagan/categorical/status"
)

// progenitor identifies a shared id-space lineage between Categoricals.
type progenitor struct {
	a, b uint32
}

func (p progenitor) equal(o progenitor) bool {
	return p.a == o.a && p.b == o.b
}

// Categorical is a table of N rows by K named categories, every cell a
// label id. The zero value is not usable; construct with New or NewWith.
type Categorical struct {
	opts Options
	rng  *rand.Rand

	size          int
	categories    []string
	categoryIndex map[string]int
	columns       map[string]*dynamicarray.DynamicArray[uint32]

	labels       *bimap.BiMap[string, uint32]
	inCategory   map[string]string
	collapsedSet map[string]bool

	tag progenitor
}

// New creates an empty Categorical with default Options.
func New() *Categorical {
	return NewWith(DefaultOptions())
}

// NewWith creates an empty Categorical with the given Options.
func NewWith(opts Options) *Categorical {
	c := &Categorical{
		opts:          opts,
		rng:           newRand(),
		categoryIndex: make(map[string]int),
		columns:       make(map[string]*dynamicarray.DynamicArray[uint32]),
		labels:        bimap.New[string, uint32](),
		inCategory:    make(map[string]string),
		collapsedSet:  make(map[string]bool),
	}
	c.randomizeTag()
	return c
}

// Size returns the number of rows.
func (c *Categorical) Size() int { return c.size }

// NCategories returns the number of categories.
func (c *Categorical) NCategories() int { return len(c.categories) }

// NLabels returns the number of interned labels.
func (c *Categorical) NLabels() int { return c.labels.Size() }

// HasCategory reports whether cat is a category of this array.
func (c *Categorical) HasCategory(cat string) bool {
	_, ok := c.categoryIndex[cat]
	return ok
}

// HasLabel reports whether label is interned in this array.
func (c *Categorical) HasLabel(label string) bool {
	return c.labels.HasKey(label)
}

// WhichCategory returns the category a label belongs to.
func (c *Categorical) WhichCategory(label string) (string, bool) {
	cat, ok := c.inCategory[label]
	return cat, ok
}

// Count returns the number of rows currently holding label.
func (c *Categorical) Count(label string) int {
	id, ok := c.labels.LookupByKey(label)
	if !ok {
		return 0
	}
	cat, ok := c.inCategory[label]
	if !ok {
		return 0
	}
	col := c.columns[cat]
	n := 0
	for _, v := range col.Slice() {
		if v == id {
			n++
		}
	}
	return n
}

func collapsedExpr(cat string) string {
	return "<" + cat + ">"
}

// parseCollapsedLabel reports whether label has the "<...>" shape and, if
// so, returns the category name it names.
func parseCollapsedLabel(label string) (string, bool) {
	if len(label) >= 2 && label[0] == '<' && label[len(label)-1] == '>' {
		return label[1 : len(label)-1], true
	}
	return "", false
}

// labelFor returns the label text for id, or "" for the reserved id 0.
func (c *Categorical) labelFor(id uint32) string {
	if id == 0 {
		return ""
	}
	label, _ := c.labels.LookupByValue(id)
	return label
}

// randID draws a fresh, unused, nonzero label id. 1 is reserved internally
// and never returned, matching the source's id allocation convention.
func (c *Categorical) randID() uint32 {
	for {
		id := c.rng.Uint32()
		if id == 0 || id == 1 {
			continue
		}
		if c.labels.HasValue(id) {
			continue
		}
		return id
	}
}

func (c *Categorical) randNonce() uint32 {
	for {
		v := c.rng.Uint32()
		if v != 0 {
			return v
		}
	}
}

// randomizeTag draws a fresh progenitor tag. Called any time the label
// table is touched — see touchLabels. This package always re-randomizes on
// any label-table mutation, rather than precisely tracking whether an id
// was actually minted or erased; that's a deliberate simplification (see
// DESIGN.md): it only ever costs a missed fast-path, never an incorrect
// shared id.
func (c *Categorical) randomizeTag() {
	a := c.randNonce()
	b := c.randNonce()
	for b == a {
		b = c.randNonce()
	}
	c.tag = progenitor{a, b}
}

func (c *Categorical) touchLabels() {
	c.randomizeTag()
}

// checkLabelForCategory validates that label may be interned into cat:
// it must not already name a collapsed expression of a different existing
// category, and it must not already belong to a different category.
func (c *Categorical) checkLabelForCategory(label, cat string) status.Status {
	if inner, ok := parseCollapsedLabel(label); ok && inner != cat && c.HasCategory(inner) {
		return status.CollapsedExpressionInWrongCategory
	}
	if owner, ok := c.inCategory[label]; ok && owner != cat {
		return status.LabelExistsInOtherCategory
	}
	return status.OK
}

// internLabel returns the id for label, minting and recording one under
// cat if this is the first use. Callers must have already validated the
// label with checkLabelForCategory.
func (c *Categorical) internLabel(label, cat string) (id uint32, isNew bool) {
	if id, ok := c.labels.LookupByKey(label); ok {
		return id, false
	}
	id = c.randID()
	c.labels.Insert(label, id)
	c.inCategory[label] = cat
	if _, ok := parseCollapsedLabel(label); ok {
		c.collapsedSet[label] = true
	}
	return id, true
}

// eraseLabel removes label from every side table.
func (c *Categorical) eraseLabel(label string) {
	c.labels.EraseByKey(label)
	delete(c.inCategory, label)
	delete(c.collapsedSet, label)
}
