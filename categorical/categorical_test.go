package categorical_test

import (
	"testing"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/setops"
	"github.com/nfagan/categorical/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCategoryGrowsFromEmpty(t *testing.T) {
	c := categorical.New()
	require.True(t, c.AddCategory("x").Ok())
	require.Equal(t, 0, c.Size())

	st := c.SetCategory("x", []string{"A", "B", "A"})
	require.True(t, st.Ok())
	assert.Equal(t, 3, c.Size())

	assert.Equal(t, []uint64{0, 2}, c.Find([]string{"A"}, 0))
	assert.Equal(t, 2, c.Count("A"))

	full, st := c.FullCategory("x")
	require.True(t, st.Ok())
	assert.Equal(t, []string{"A", "B", "A"}, full)
}

func TestFindAllCConcreteScenario(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.RequireCategory("y").Ok())
	require.True(t, c.Resize(2).Ok())
	require.True(t, c.SetCategory("x", []string{"a", "b"}).Ok())
	require.True(t, c.SetCategory("y", []string{"1", "1"}).Ok())

	indices, labels, st := c.FindAllC([]string{"x", "y"}, 0)
	require.True(t, st.Ok())
	assert.Equal(t, [][]uint64{{0}, {1}}, indices)
	assert.Equal(t, []string{"a", "1", "b", "1"}, labels)
}

func TestKeepEachCollapsesMixedGroups(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.RequireCategory("y").Ok())
	require.True(t, c.Resize(3).Ok())
	require.True(t, c.SetCategory("x", []string{"a", "a", "b"}).Ok())
	require.True(t, c.SetCategory("y", []string{"1", "2", "1"}).Ok())

	require.True(t, c.KeepEach([]string{"x"}).Ok())
	require.Equal(t, 2, c.Size())

	xs, _ := c.FullCategory("x")
	ys, _ := c.FullCategory("y")
	rowOfA := indexOf(xs, "a")
	rowOfB := indexOf(xs, "b")
	require.NotEqual(t, -1, rowOfA)
	require.NotEqual(t, -1, rowOfB)
	assert.Equal(t, "<y>", ys[rowOfA])
	assert.Equal(t, "1", ys[rowOfB])
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestAddCategoryRejectsCollapsedExpressionOfAnother(t *testing.T) {
	c := categorical.New()
	require.True(t, c.AddCategory("x").Ok())
	require.True(t, c.AddCategory("y").Ok())
	require.True(t, c.Resize(1).Ok())

	st := c.SetCategory("x", []string{"<y>"})
	assert.Equal(t, status.CollapsedExpressionInWrongCategory, st)
}

func TestAppendPreservesIdentityWithMatchingTags(t *testing.T) {
	a := categorical.New()
	require.True(t, a.RequireCategory("x").Ok())
	require.True(t, a.Resize(2).Ok())
	require.True(t, a.SetCategory("x", []string{"a", "b"}).Ok())

	b := a.Clone()
	require.True(t, b.SetCategory("x", []string{"c", "a"}).Ok())

	require.True(t, a.Append(b).Ok())
	assert.Equal(t, 4, a.Size())
	full, _ := a.FullCategory("x")
	assert.Equal(t, []string{"a", "b", "c", "a"}, full)
}

func TestAppendRejectsMismatchedCategories(t *testing.T) {
	a := categorical.New()
	require.True(t, a.RequireCategory("x").Ok())
	b := categorical.New()
	require.True(t, b.RequireCategory("y").Ok())

	st := a.Append(b)
	assert.Equal(t, status.CategoriesDoNotMatch, st)
}

func TestUniqueDedupsByFullRow(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.RequireCategory("y").Ok())
	require.True(t, c.Resize(3).Ok())
	require.True(t, c.SetCategory("x", []string{"x", "x", "y"}).Ok())
	require.True(t, c.SetCategory("y", []string{"A", "A", "B"}).Ok())

	u, st := setops.Unique(c, nil)
	require.True(t, st.Ok())
	assert.Equal(t, 2, u.Size())
	xs, _ := u.FullCategory("x")
	ys, _ := u.FullCategory("y")
	assert.Equal(t, []string{"x", "y"}, xs)
	assert.Equal(t, []string{"A", "B"}, ys)
}

func TestPruneRemovesDanglingLabels(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.Resize(1).Ok())
	require.True(t, c.SetCategory("x", []string{"a"}).Ok())
	require.True(t, c.SetCategory("x", []string{"b"}).Ok())

	assert.True(t, c.HasLabel("a"))
	c.Prune()
	assert.False(t, c.HasLabel("a"))
	assert.True(t, c.HasLabel("b"))
}

func TestProgenitorTagStableAcrossReads(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.Resize(2).Ok())
	require.True(t, c.SetCategory("x", []string{"a", "b"}).Ok())

	tagBefore := c.ProgenitorTag()
	_ = c.Find([]string{"a"}, 0)
	_, _ = c.FullCategory("x")
	assert.Equal(t, tagBefore, c.ProgenitorTag())
}
