package categorical_test

import (
	"testing"

	"github.com/nfagan/categorical/categorical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericMatrixRoundTrip(t *testing.T) {
	c := categorical.New()
	require.True(t, c.RequireCategory("x").Ok())
	require.True(t, c.RequireCategory("y").Ok())
	require.True(t, c.Resize(3).Ok())
	require.True(t, c.SetCategory("x", []string{"a", "b", "a"}).Ok())
	require.True(t, c.SetCategory("y", []string{"1", "1", "2"}).Ok())

	nm := c.ToNumericMatrix()
	assert.Equal(t, 3, nm.Rows)
	assert.Equal(t, 2, nm.Cols)

	back, st := categorical.FromNumericMatrix(nm, categorical.DefaultOptions())
	require.True(t, st.Ok())
	assert.Equal(t, c.Size(), back.Size())

	xs, _ := back.FullCategory("x")
	ys, _ := back.FullCategory("y")
	assert.Equal(t, []string{"a", "b", "a"}, xs)
	assert.Equal(t, []string{"1", "1", "2"}, ys)
}

func TestNumericMatrixRoundTripRejectsMismatchedShape(t *testing.T) {
	nm := categorical.NumericMatrix{
		Rows:       2,
		Cols:       1,
		Categories: []string{"x"},
		Ids:        []uint32{1},
	}
	_, st := categorical.FromNumericMatrix(nm, categorical.DefaultOptions())
	assert.False(t, st.Ok())
}
