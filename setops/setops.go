// Package setops implements the set-like operations over one or two
// Categoricals: Unique, Union, and Combine (spec component E). Every
// operation returns a freshly-owned Categorical; none mutate their inputs.
//
// Unlike categorical itself, this package never reaches into a
// Categorical's private id tables — it is built entirely on top of the
// public accessor surface (Select, KeepEach, FullCategory/PartialCategory,
// RequireCategory/FillCategory, Append). Two consequences follow:
//
//   - Within one side, row identity is still resolved by raw id (via
//     ColumnIDs and rowhash.RowHashMap), exactly the way Categorical's own
//     FindAll/KeepEach do it — ids are comparable within a single
//     instance regardless of progenitor lineage.
//   - Across two different Categoricals, ids are not directly comparable
//     unless their progenitor tags match, and this package has no way to
//     compare tags label-by-label from the outside. So cross-side row
//     matching (Union's join) is done by comparing the label text of the
//     join categories instead of their ids. Categorical.Append already
//     performs full id reconciliation when progenitor tags differ, so the
//     schema-reconciliation half of every operation here is delegated
//     straight to it rather than reimplemented.
package setops

import (
	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/rowhash"
	"github.com/nfagan/categorical/status"
)

// Unique returns a's rows (restricted to indices, or every row if indices
// is nil) deduplicated by full row identity across every category,
// preserving first-encounter order. The result is built with Select,
// which copies rows straight out of a's own id space — no label
// reconciliation is needed, and the result shares a's progenitor tag.
func Unique(a *categorical.Categorical, indices []uint64) (*categorical.Categorical, status.Status) {
	rows := indices
	if rows == nil {
		rows = allRows(a.Size())
	}
	for _, r := range rows {
		if r >= uint64(a.Size()) {
			return nil, status.OutOfBounds
		}
	}
	first, st := dedupeRows(a, a.Categories(), rows)
	if !st.Ok() {
		return nil, st
	}
	return a.Select(first)
}

func allRows(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

// dedupeRows hashes each row's tuple of ids across cats (via RowHashMap,
// reading a's own raw id columns through ColumnIDs) and returns, in
// first-encounter order, the subset of rows whose combination hasn't
// already been seen. With no categories to key on, every row is
// indistinguishable from every other, so only the first is kept.
func dedupeRows(a *categorical.Categorical, cats []string, rows []uint64) ([]uint64, status.Status) {
	if len(rows) == 0 {
		return nil, status.OK
	}
	if len(cats) == 0 {
		return rows[:1], status.OK
	}

	cols := make([][]uint32, len(cats))
	for i, cat := range cats {
		ids, st := a.ColumnIDs(cat)
		if !st.Ok() {
			return nil, st
		}
		cols[i] = ids
	}

	rh := rowhash.New[struct{}](bucketCount(len(rows)), len(cats))
	row := make([]uint32, len(cats))
	var out []uint64
	for _, r := range rows {
		for i, col := range cols {
			row[i] = col[r]
		}
		if _, idx, found := rh.Find(row); found {
			continue
		} else {
			rh.Insert(idx, row, struct{}{})
			out = append(out, r)
		}
	}
	return out, status.OK
}

func bucketCount(n int) int {
	if n < 8 {
		return 8
	}
	return n
}
