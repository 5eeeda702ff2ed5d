package dispatch_test

import (
	"context"
	"testing"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequireCategoryResizeSetCategoryRoundTrip(t *testing.T) {
	d := dispatch.New(nil)
	ctx := context.Background()
	h := d.Create(categorical.DefaultOptions())

	_, err := d.Call(ctx, "require-category", h, dispatch.Args{"x"})
	require.NoError(t, err)
	_, err = d.Call(ctx, "resize", h, dispatch.Args{2})
	require.NoError(t, err)
	_, err = d.Call(ctx, "set-category", h, dispatch.Args{"x", []string{"a", "b"}})
	require.NoError(t, err)

	res, err := d.Call(ctx, "full-category", h, dispatch.Args{"x"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []string{"a", "b"}, res[0])
}

func TestUnknownOpSticksError(t *testing.T) {
	d := dispatch.New(nil)
	ctx := context.Background()
	h := d.Create(categorical.DefaultOptions())

	_, err := d.Call(ctx, "not-a-real-op", h, nil)
	require.Error(t, err)

	_, err2 := d.Call(ctx, "size", h, nil)
	require.Error(t, err2)
	assert.Equal(t, err, d.Err())

	d.ResetErr()
	_, err3 := d.Call(ctx, "size", h, nil)
	require.NoError(t, err3)
}

func TestDestroyThenResolveFails(t *testing.T) {
	d := dispatch.New(nil)
	ctx := context.Background()
	h := d.Create(categorical.DefaultOptions())
	require.NoError(t, d.Destroy(h))

	_, err := d.Call(ctx, "size", h, nil)
	require.Error(t, err)
}

func TestUnionHandlerAdoptsResultHandle(t *testing.T) {
	d := dispatch.New(nil)
	ctx := context.Background()

	a := d.Create(categorical.DefaultOptions())
	require.NoError(t, call(t, d, ctx, a, "require-category", "id"))
	require.NoError(t, call(t, d, ctx, a, "resize", 1))
	require.NoError(t, call(t, d, ctx, a, "set-category", "id", []string{"1"}))

	b := d.Create(categorical.DefaultOptions())
	require.NoError(t, call(t, d, ctx, b, "require-category", "id"))
	require.NoError(t, call(t, d, ctx, b, "resize", 1))
	require.NoError(t, call(t, d, ctx, b, "set-category", "id", []string{"2"}))

	res, err := d.Call(ctx, "union", a, dispatch.Args{b, []string{"id"}, nil, nil})
	require.NoError(t, err)
	require.Len(t, res, 1)
	out, ok := res[0].(dispatch.Handle)
	require.True(t, ok)

	sizeRes, err := d.Call(ctx, "size", out, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sizeRes[0])
}

func TestRegistryLenTracksCreateAndDestroy(t *testing.T) {
	r := dispatch.NewRegistry()
	assert.Equal(t, 0, r.Len())
	h := r.Create(categorical.DefaultOptions())
	assert.Equal(t, 1, r.Len())
	require.NoError(t, r.Destroy(h))
	assert.Equal(t, 0, r.Len())

	_, err := r.Resolve(h)
	require.Error(t, err)
}

func call(t *testing.T, d *dispatch.Dispatcher, ctx context.Context, h dispatch.Handle, op string, args ...any) error {
	t.Helper()
	_, err := d.Call(ctx, op, h, dispatch.Args(args))
	return err
}
