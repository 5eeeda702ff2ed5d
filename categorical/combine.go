package categorical

import (
	"math"

	"github.com/nfagan/categorical/status"
)

// sameCategories reports whether c and other have exactly the same set of
// category names.
func (c *Categorical) sameCategories(other *Categorical) bool {
	if len(c.categories) != len(other.categories) {
		return false
	}
	for cat := range c.categoryIndex {
		if !other.HasCategory(cat) {
			return false
		}
	}
	return true
}

type newLabelPlan struct {
	label  string
	cat    string
	otherID uint32
	selfID  uint32
}

// reconciliationPlan maps other's ids, per category, onto the ids self
// will use once other's rows are copied in. It is built into caller-owned
// scratch state by planReconciliation and only applied to live state by
// commitReconciliation once the caller has decided to proceed — the same
// shape as the source's reconcile_new_label_ids, shared here by Append
// and Merge rather than duplicated per caller.
type reconciliationPlan struct {
	remap     map[string]map[uint32]uint32 // category -> other id -> self id
	newLabels []newLabelPlan                // labels other has that self doesn't yet, in iteration order
}

func (p *reconciliationPlan) remapFor(cat string) map[uint32]uint32 {
	if p.remap[cat] == nil {
		p.remap[cat] = make(map[uint32]uint32)
	}
	return p.remap[cat]
}

func (p *reconciliationPlan) anyRemap() bool {
	for _, m := range p.remap {
		if len(m) > 0 {
			return true
		}
	}
	return false
}

// planReconciliation walks other's labels and decides how each maps into
// self's id space: a shared label with differing ids is recorded in the
// remap; a label new to self reuses other's id if that id is free in
// self, otherwise mints a fresh one. Returns an error status, touching
// nothing, if any label's category would disagree between self and other.
func (c *Categorical) planReconciliation(other *Categorical) (*reconciliationPlan, status.Status) {
	plan := &reconciliationPlan{remap: make(map[string]map[uint32]uint32)}
	reserved := make(map[uint32]bool)

	for label, otherID := range other.labels.Iter {
		otherCat := other.inCategory[label]

		if selfID, ok := c.labels.LookupByKey(label); ok {
			selfCat := c.inCategory[label]
			if selfCat != otherCat {
				return nil, status.LabelExistsInOtherCategory
			}
			if selfID != otherID {
				plan.remapFor(otherCat)[otherID] = selfID
			}
			continue
		}

		if inner, ok := parseCollapsedLabel(label); ok && inner != otherCat && c.HasCategory(inner) {
			return nil, status.CollapsedExpressionInWrongCategory
		}

		selfID := otherID
		if c.labels.HasValue(otherID) || reserved[otherID] {
			selfID = c.randIDExcluding(reserved)
		}
		reserved[selfID] = true
		if selfID != otherID {
			plan.remapFor(otherCat)[otherID] = selfID
		}
		plan.newLabels = append(plan.newLabels, newLabelPlan{label: label, cat: otherCat, otherID: otherID, selfID: selfID})
	}
	return plan, status.OK
}

func (c *Categorical) randIDExcluding(reserved map[uint32]bool) uint32 {
	for {
		id := c.randID()
		if !reserved[id] {
			return id
		}
	}
}

// commitReconciliation interns every label the plan recorded as new to
// self, then returns a function translating one of other's ids, within a
// given category, into self's id space.
func (c *Categorical) commitReconciliation(plan *reconciliationPlan) func(cat string, id uint32) uint32 {
	for _, nl := range plan.newLabels {
		c.labels.Insert(nl.label, nl.selfID)
		c.inCategory[nl.label] = nl.cat
		if _, ok := parseCollapsedLabel(nl.label); ok {
			c.collapsedSet[nl.label] = true
		}
	}
	if len(plan.newLabels) > 0 || plan.anyRemap() {
		c.touchLabels()
	}
	return func(cat string, id uint32) uint32 {
		if remap, ok := plan.remap[cat]; ok {
			if mapped, ok := remap[id]; ok {
				return mapped
			}
		}
		return id
	}
}

// Append concatenates other's rows after self's. When progenitor tags
// match, this is a verbatim column copy; otherwise other's labels are
// reconciled into self's id space first.
func (c *Categorical) Append(other *Categorical) status.Status {
	if !c.sameCategories(other) {
		return status.CategoriesDoNotMatch
	}
	total := uint64(c.size) + uint64(other.size)
	if total > math.MaxInt32 {
		return status.CatOverflow
	}

	fastPath := c.opts.UseProgenitorIDs && c.tag.equal(other.tag)

	var translate func(cat string, id uint32) uint32
	if !fastPath {
		plan, st := c.planReconciliation(other)
		if !st.Ok() {
			return st
		}
		translate = c.commitReconciliation(plan)
	}

	for _, cat := range c.categories {
		otherCol := other.columns[cat]
		selfCol := c.columns[cat]
		if fastPath {
			selfCol.Replace(append(append([]uint32(nil), selfCol.Slice()...), otherCol.Slice()...))
			continue
		}
		appended := make([]uint32, otherCol.Size())
		for i, id := range otherCol.Slice() {
			appended[i] = translate(cat, id)
		}
		selfCol.Replace(append(append([]uint32(nil), selfCol.Slice()...), appended...))
	}
	c.size = int(total)
	return status.OK
}

// Assign writes other's rows into self at toIndices. If fromIndices is
// nil, other must have exactly len(toIndices) rows, taken in order;
// otherwise fromIndices selects which of other's rows to use for each
// destination index, and the two slices must have equal length.
func (c *Categorical) Assign(other *Categorical, toIndices []uint64, fromIndices []uint64) status.Status {
	if !c.sameCategories(other) {
		return status.CategoriesDoNotMatch
	}
	if fromIndices == nil {
		if uint64(other.size) != uint64(len(toIndices)) {
			return status.WrongIndexSize
		}
	} else if len(fromIndices) != len(toIndices) {
		return status.WrongIndexSize
	}
	for _, idx := range toIndices {
		if idx >= uint64(c.size) {
			return status.OutOfBounds
		}
	}
	if fromIndices != nil {
		for _, idx := range fromIndices {
			if idx >= uint64(other.size) {
				return status.OutOfBounds
			}
		}
	}

	fastPath := c.opts.UseProgenitorIDs && c.tag.equal(other.tag)
	var translate func(cat string, id uint32) uint32
	if !fastPath {
		plan, st := c.planReconciliation(other)
		if !st.Ok() {
			return st
		}
		translate = c.commitReconciliation(plan)
	}

	for _, cat := range c.categories {
		selfCol := c.columns[cat]
		otherCol := other.columns[cat]
		for i, to := range toIndices {
			from := uint64(i)
			if fromIndices != nil {
				from = fromIndices[i]
			}
			id := otherCol.Get(int(from))
			if !fastPath {
				id = translate(cat, id)
			}
			selfCol.Set(int(to), id)
		}
	}
	if c.opts.PruneAfterAssign {
		c.Prune()
	}
	return status.OK
}

// Merge requires every category of other to already exist in self, then
// overwrites self's columns with other's values: sizes must match, or
// other.Size()==1 to broadcast.
func (c *Categorical) Merge(other *Categorical) status.Status {
	for _, cat := range other.categories {
		if !c.HasCategory(cat) {
			return status.CategoryDoesNotExist
		}
	}
	if other.size != c.size && other.size != 1 {
		return status.IncompatibleSizes
	}

	fastPath := c.opts.UseProgenitorIDs && c.tag.equal(other.tag)
	var translate func(cat string, id uint32) uint32
	if !fastPath {
		plan, st := c.planReconciliation(other)
		if !st.Ok() {
			return st
		}
		translate = c.commitReconciliation(plan)
	}

	broadcast := other.size == 1 && c.size != 1
	for _, cat := range other.categories {
		selfCol := c.columns[cat]
		otherCol := other.columns[cat]
		if broadcast {
			id := otherCol.Get(0)
			if !fastPath {
				id = translate(cat, id)
			}
			vals := selfCol.Slice()
			for i := range vals {
				vals[i] = id
			}
			continue
		}
		vals := selfCol.Slice()
		for i, id := range otherCol.Slice() {
			if !fastPath {
				id = translate(cat, id)
			}
			vals[i] = id
		}
	}
	return status.OK
}

// Prune removes every label that no longer appears in any column.
// Randomizes the progenitor tag iff anything was actually removed.
func (c *Categorical) Prune() status.Status {
	used := make(map[uint32]bool)
	for _, cat := range c.categories {
		for _, id := range c.columns[cat].Slice() {
			used[id] = true
		}
	}
	var stale []string
	for label, id := range c.labels.Iter {
		if !used[id] {
			stale = append(stale, label)
		}
	}
	for _, label := range stale {
		c.eraseLabel(label)
	}
	if len(stale) > 0 {
		c.touchLabels()
	}
	return status.OK
}
