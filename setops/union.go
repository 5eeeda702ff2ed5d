package setops

import (
	"sort"
	"strings"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/status"
)

// Combine concatenates a's and b's rows (optionally mask-restricted) into
// one Categorical whose category set is the union of both sides' schemas.
// Each side is deduplicated by full row identity before concatenation — a
// row identical across every category it owns contributes once. A
// category unique to one side is filled, for the other side's rows, with
// that category's uniform label if it is uniform across the whole side
// that owns it, or its collapsed expression otherwise. Rows are never
// matched or merged across sides — Combine ignores category overlap
// entirely, unlike Union.
func Combine(a, b *categorical.Categorical, maskA, maskB []uint64) (*categorical.Categorical, status.Status) {
	aSel, bSel, st := selectBoth(a, b, maskA, maskB)
	if !st.Ok() {
		return nil, st
	}
	if st := aSel.KeepEach(aSel.Categories()); !st.Ok() {
		return nil, st
	}
	if st := bSel.KeepEach(bSel.Categories()); !st.Ok() {
		return nil, st
	}
	if st := reconcileSchemas(aSel, bSel); !st.Ok() {
		return nil, st
	}
	out := aSel.Clone()
	if st := out.Append(bSel); !st.Ok() {
		return nil, st
	}
	return out, status.OK
}

// Union merges a and b (optionally mask-restricted), matching rows on
// cats (default: the intersection of a's and b's category sets) and
// carrying the rest of each side's categories through. A category present
// in both sides but outside the join key collapses to its collapsed
// expression on a merged row where the two sides disagree; a category
// unique to one side is filled for the other's unmatched rows the way
// Combine fills it.
func Union(a, b *categorical.Categorical, cats []string, maskA, maskB []uint64) (*categorical.Categorical, status.Status) {
	shared := intersect(a.Categories(), b.Categories())
	keyCats := cats
	if keyCats == nil {
		keyCats = shared
	}
	sharedSet := make(map[string]bool, len(shared))
	for _, c := range shared {
		sharedSet[c] = true
	}
	for _, c := range keyCats {
		if !sharedSet[c] {
			return nil, status.CategoriesDoNotMatch
		}
	}
	keySet := make(map[string]bool, len(keyCats))
	for _, c := range keyCats {
		keySet[c] = true
	}
	nonKeyShared := onlyIn(shared, keyCats)
	nonKeySharedSet := toSet(nonKeyShared)
	aOnly := onlyIn(a.Categories(), shared)
	aOnlySet := toSet(aOnly)
	bOnly := onlyIn(b.Categories(), shared)
	bOnlySet := toSet(bOnly)

	aSel, bSel, st := selectBoth(a, b, maskA, maskB)
	if !st.Ok() {
		return nil, st
	}
	if st := aSel.KeepEach(keyCats); !st.Ok() {
		return nil, st
	}
	if st := bSel.KeepEach(keyCats); !st.Ok() {
		return nil, st
	}
	if st := reconcileSchemas(aSel, bSel); !st.Ok() {
		return nil, st
	}
	outCats := aSel.Categories()

	bIdx, st := keyIndex(bSel, keyCats)
	if !st.Ok() {
		return nil, st
	}

	type rowSpec struct {
		side   byte // 'a', 'b', or 'm' (merged)
		ai, bi int
	}
	var rows []rowSpec
	bMatched := make([]bool, bSel.Size())
	for ai := 0; ai < aSel.Size(); ai++ {
		k, st := keyString(aSel, keyCats, ai)
		if !st.Ok() {
			return nil, st
		}
		if bi, ok := bIdx[k]; ok {
			rows = append(rows, rowSpec{side: 'm', ai: ai, bi: bi})
			bMatched[bi] = true
		} else {
			rows = append(rows, rowSpec{side: 'a', ai: ai})
		}
	}
	for bi := 0; bi < bSel.Size(); bi++ {
		if !bMatched[bi] {
			rows = append(rows, rowSpec{side: 'b', bi: bi})
		}
	}

	out := categorical.New()
	for _, cat := range outCats {
		if st := out.RequireCategory(cat); !st.Ok() {
			return nil, st
		}
	}
	if st := out.Resize(len(rows)); !st.Ok() {
		return nil, st
	}

	for _, cat := range outCats {
		values := make([]string, len(rows))
		for i, rs := range rows {
			switch {
			case keySet[cat]:
				if rs.side == 'b' {
					values[i] = labelFrom(bSel, cat, rs.bi)
				} else {
					values[i] = labelFrom(aSel, cat, rs.ai)
				}
			case nonKeySharedSet[cat]:
				if rs.side == 'm' {
					la := labelFrom(aSel, cat, rs.ai)
					lb := labelFrom(bSel, cat, rs.bi)
					if la == lb {
						values[i] = la
					} else {
						values[i] = "<" + cat + ">"
					}
				} else if rs.side == 'a' {
					values[i] = labelFrom(aSel, cat, rs.ai)
				} else {
					values[i] = labelFrom(bSel, cat, rs.bi)
				}
			case aOnlySet[cat]:
				if rs.side == 'b' {
					values[i] = labelFrom(bSel, cat, rs.bi)
				} else {
					values[i] = labelFrom(aSel, cat, rs.ai)
				}
			case bOnlySet[cat]:
				if rs.side == 'a' {
					values[i] = labelFrom(aSel, cat, rs.ai)
				} else {
					values[i] = labelFrom(bSel, cat, rs.bi)
				}
			}
		}
		if st := out.SetCategory(cat, values); !st.Ok() {
			return nil, st
		}
	}
	return out, status.OK
}

func selectBoth(a, b *categorical.Categorical, maskA, maskB []uint64) (*categorical.Categorical, *categorical.Categorical, status.Status) {
	aRows := maskA
	if aRows == nil {
		aRows = allRows(a.Size())
	}
	bRows := maskB
	if bRows == nil {
		bRows = allRows(b.Size())
	}
	aSel, st := a.Select(aRows)
	if !st.Ok() {
		return nil, nil, st
	}
	bSel, st := b.Select(bRows)
	if !st.Ok() {
		return nil, nil, st
	}
	return aSel, bSel, status.OK
}

// reconcileSchemas grows aSel's schema with any category bSel owns but
// aSel doesn't (filled from bSel's uniform label over the participating
// rows, or its collapsed expression), and symmetrically grows bSel's
// schema from aSel, so the two sides end up with identical category sets.
func reconcileSchemas(aSel, bSel *categorical.Categorical) status.Status {
	if st := fillMissing(aSel, bSel, onlyIn(bSel.Categories(), aSel.Categories())); !st.Ok() {
		return st
	}
	if st := fillMissing(bSel, aSel, onlyIn(aSel.Categories(), bSel.Categories())); !st.Ok() {
		return st
	}
	return status.OK
}

// fillMissing adds each of cats to dst (absent there), set to src's
// uniform label if src is uniform in that category, else left at the
// collapsed expression RequireCategory already seeds a new column with.
func fillMissing(dst, src *categorical.Categorical, cats []string) status.Status {
	for _, cat := range cats {
		if st := dst.RequireCategory(cat); !st.Ok() {
			return st
		}
		uniform, st := src.IsUniformCategory(cat, nil)
		if !st.Ok() {
			return st
		}
		if uniform && src.Size() > 0 {
			labels, st := src.FullCategory(cat)
			if !st.Ok() {
				return st
			}
			if st := dst.FillCategory(cat, labels[0]); !st.Ok() {
				return st
			}
		}
	}
	return status.OK
}

func keyString(c *categorical.Categorical, keyCats []string, row int) (string, status.Status) {
	if len(keyCats) == 0 {
		return "", status.OK
	}
	parts := make([]string, len(keyCats))
	for i, cat := range keyCats {
		labels, st := c.PartialCategory(cat, []uint64{uint64(row)})
		if !st.Ok() {
			return "", st
		}
		parts[i] = labels[0]
	}
	return strings.Join(parts, "\x1f"), status.OK
}

func keyIndex(c *categorical.Categorical, keyCats []string) (map[string]int, status.Status) {
	idx := make(map[string]int, c.Size())
	for r := 0; r < c.Size(); r++ {
		k, st := keyString(c, keyCats, r)
		if !st.Ok() {
			return nil, st
		}
		idx[k] = r
	}
	return idx, status.OK
}

// labelFrom reads cat's label at row from c. The row index is always in
// range by construction (it comes from iterating c's own size), so the
// status is ignored.
func labelFrom(c *categorical.Categorical, cat string, row int) string {
	labels, _ := c.PartialCategory(cat, []uint64{uint64(row)})
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}

func onlyIn(cats, other []string) []string {
	otherSet := toSet(other)
	var out []string
	for _, c := range cats {
		if !otherSet[c] {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func intersect(a, b []string) []string {
	bSet := toSet(b)
	var out []string
	for _, c := range a {
		if bSet[c] {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(cats []string) map[string]bool {
	out := make(map[string]bool, len(cats))
	for _, c := range cats {
		out[c] = true
	}
	return out
}
