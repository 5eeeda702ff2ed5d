package setops_test

import (
	"testing"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/setops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCat(t *testing.T, cols map[string][]string) *categorical.Categorical {
	t.Helper()
	c := categorical.New()
	for cat := range cols {
		require.True(t, c.RequireCategory(cat).Ok())
	}
	for cat, vals := range cols {
		if c.Size() == 0 && len(vals) > 0 {
			require.True(t, c.Resize(len(vals)).Ok())
		}
		require.True(t, c.SetCategory(cat, vals).Ok())
	}
	return c
}

func TestUniqueRestrictedToIndices(t *testing.T) {
	c := newCat(t, map[string][]string{
		"x": {"a", "a", "b", "a"},
	})
	// Row 3 repeats row 0's value ("a"); restricting to {0,2,3} and
	// deduping by full row identity drops it, keeping first-encounter order.
	u, st := setops.Unique(c, []uint64{0, 2, 3})
	require.True(t, st.Ok())
	xs, _ := u.FullCategory("x")
	assert.Equal(t, []string{"a", "b"}, xs)
}

func TestUniquePreservesLineage(t *testing.T) {
	c := newCat(t, map[string][]string{"x": {"a", "a", "b"}})
	u, st := setops.Unique(c, nil)
	require.True(t, st.Ok())
	assert.True(t, c.SameLineage(u))
}

func TestCombineConcatenatesAndFillsMissingCategories(t *testing.T) {
	a := newCat(t, map[string][]string{
		"x": {"a", "b"},
		"y": {"1", "1"},
	})
	b := newCat(t, map[string][]string{
		"x": {"c"},
	})

	out, st := setops.Combine(a, b, nil, nil)
	require.True(t, st.Ok())
	assert.Equal(t, 3, out.Size())

	xs, _ := out.FullCategory("x")
	assert.Equal(t, []string{"a", "b", "c"}, xs)

	ys, _ := out.FullCategory("y")
	// b is uniform in "y" across its own (empty) schema... actually b never
	// had "y"; since a is uniform in "y" ("1" everywhere), b's row inherits
	// "1" rather than the collapsed expression.
	assert.Equal(t, []string{"1", "1", "1"}, ys)
}

func TestCombineCollapsesNonUniformMissingCategory(t *testing.T) {
	a := newCat(t, map[string][]string{
		"x": {"a", "b"},
		"y": {"1", "2"},
	})
	b := newCat(t, map[string][]string{
		"x": {"c"},
	})

	out, st := setops.Combine(a, b, nil, nil)
	require.True(t, st.Ok())
	ys, _ := out.FullCategory("y")
	assert.Equal(t, []string{"1", "2", "<y>"}, ys)
}

func TestCombineDedupesEachSideByFullRowIdentity(t *testing.T) {
	a := newCat(t, map[string][]string{
		"x": {"a", "a", "b"},
	})
	b := newCat(t, map[string][]string{
		"x": {"c", "c"},
	})

	out, st := setops.Combine(a, b, nil, nil)
	require.True(t, st.Ok())

	xs, _ := out.FullCategory("x")
	// a's duplicate "a" row collapses to one, as does b's duplicate "c" row.
	assert.Equal(t, []string{"a", "b", "c"}, xs)
}

func TestUnionMergesMatchingRowsAndCollapsesDisagreement(t *testing.T) {
	a := newCat(t, map[string][]string{
		"id":    {"1", "2"},
		"color": {"red", "blue"},
	})
	b := newCat(t, map[string][]string{
		"id":    {"2", "3"},
		"color": {"green", "black"},
	})

	out, st := setops.Union(a, b, []string{"id"}, nil, nil)
	require.True(t, st.Ok())
	assert.Equal(t, 3, out.Size())

	ids, _ := out.FullCategory("id")
	colors, _ := out.FullCategory("color")
	row := indexOf(ids, "2")
	require.NotEqual(t, -1, row)
	assert.Equal(t, "<color>", colors[row])
}

func TestUnionCarriesUnmatchedRowsFromBothSides(t *testing.T) {
	a := newCat(t, map[string][]string{"id": {"1"}})
	b := newCat(t, map[string][]string{"id": {"2"}})

	out, st := setops.Union(a, b, []string{"id"}, nil, nil)
	require.True(t, st.Ok())
	assert.Equal(t, 2, out.Size())
	ids, _ := out.FullCategory("id")
	assert.ElementsMatch(t, []string{"1", "2"}, ids)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
