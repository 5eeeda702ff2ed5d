package dispatch

import "context"

// registerQueryHandlers wires every read-only accessor plus the find/group
// family, which mutate only in the KeepEach case but still read as queries
// over the instance's current contents rather than structural edits.
func registerQueryHandlers(table map[string]Handler) {
	table["size"] = handleSize
	table["ncategories"] = handleNCategories
	table["nlabels"] = handleNLabels
	table["has-category"] = handleHasCategory
	table["has-label"] = handleHasLabel
	table["which-category"] = handleWhichCategory
	table["count"] = handleCount
	table["categories"] = handleCategories
	table["column-ids"] = handleColumnIDs
	table["label-id"] = handleLabelID
	table["label-for-id"] = handleLabelForID
	table["full-category"] = handleFullCategory
	table["partial-category"] = handlePartialCategory
	table["in-category"] = handleInCategory
	table["is-uniform-category"] = handleIsUniformCategory
	table["find"] = handleFind
	table["find-or"] = handleFindOr
	table["find-not"] = handleFindNot
	table["find-none"] = handleFindNone
	table["find-all"] = handleFindAll
	table["find-allc"] = handleFindAllC
	table["keep-each"] = handleKeepEach
	table["one"] = handleOne
	table["select"] = handleSelect
	table["progenitor-tag"] = handleProgenitorTag
	table["same-lineage"] = handleSameLineage
	table["to-numeric-matrix"] = handleToNumericMatrix
}

func handleSize(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.Size()}, nil
}

func handleNCategories(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.NCategories()}, nil
}

func handleNLabels(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.NLabels()}, nil
}

func handleHasCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("has-category", "1 category name")
	}
	return Result{c.HasCategory(cat)}, nil
}

func handleHasLabel(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	label, ok := argString(args, 0)
	if !ok {
		return nil, argErr("has-label", "1 label")
	}
	return Result{c.HasLabel(label)}, nil
}

func handleWhichCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	label, ok := argString(args, 0)
	if !ok {
		return nil, argErr("which-category", "1 label")
	}
	cat, found := c.WhichCategory(label)
	return Result{cat, found}, nil
}

func handleCount(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	label, ok := argString(args, 0)
	if !ok {
		return nil, argErr("count", "1 label")
	}
	return Result{c.Count(label)}, nil
}

func handleCategories(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.Categories()}, nil
}

func handleColumnIDs(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("column-ids", "1 category name")
	}
	ids, st := c.ColumnIDs(cat)
	if !st.Ok() {
		return nil, st
	}
	return Result{ids}, nil
}

func handleLabelID(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	label, ok := argString(args, 0)
	if !ok {
		return nil, argErr("label-id", "1 label")
	}
	id, found := c.LabelID(label)
	return Result{id, found}, nil
}

func handleLabelForID(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	if len(args) < 1 {
		return nil, argErr("label-for-id", "1 uint32 id")
	}
	id, ok := args[0].(uint32)
	if !ok {
		return nil, argErr("label-for-id", "1 uint32 id")
	}
	return Result{c.LabelForID(id)}, nil
}

func handleFullCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("full-category", "1 category name")
	}
	values, st := c.FullCategory(cat)
	if !st.Ok() {
		return nil, st
	}
	return Result{values}, nil
}

func handlePartialCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok1 := argString(args, 0)
	indices, ok2 := argUints(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("partial-category", "category name, []uint64 indices")
	}
	values, st := c.PartialCategory(cat, indices)
	if !st.Ok() {
		return nil, st
	}
	return Result{values}, nil
}

func handleInCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("in-category", "1 category name")
	}
	values, st := c.InCategory(cat)
	if !st.Ok() {
		return nil, st
	}
	return Result{values}, nil
}

func handleIsUniformCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok1 := argString(args, 0)
	indices, _ := argUints(args, 1)
	if !ok1 {
		return nil, argErr("is-uniform-category", "category name, []uint64 indices (may be nil)")
	}
	uniform, st := c.IsUniformCategory(cat, indices)
	if !st.Ok() {
		return nil, st
	}
	return Result{uniform}, nil
}

func handleFind(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	labels, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find", "[]string labels, uint64 offset")
	}
	return Result{c.Find(labels, offset)}, nil
}

func handleFindOr(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	labels, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find-or", "[]string labels, uint64 offset")
	}
	return Result{c.FindOr(labels, offset)}, nil
}

func handleFindNot(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	labels, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find-not", "[]string labels, uint64 offset")
	}
	return Result{c.FindNot(labels, offset)}, nil
}

func handleFindNone(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	labels, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find-none", "[]string labels, uint64 offset")
	}
	return Result{c.FindNone(labels, offset)}, nil
}

func handleFindAll(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cats, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find-all", "[]string categories, uint64 offset")
	}
	groups, st := c.FindAll(cats, offset)
	if !st.Ok() {
		return nil, st
	}
	return Result{groups}, nil
}

func handleFindAllC(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cats, ok1 := argStrings(args, 0)
	offset, _ := argUint64(args, 1)
	if !ok1 {
		return nil, argErr("find-allc", "[]string categories, uint64 offset")
	}
	groups, combos, st := c.FindAllC(cats, offset)
	if !st.Ok() {
		return nil, st
	}
	return Result{groups, combos}, nil
}

func handleKeepEach(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cats, ok := argStrings(args, 0)
	if !ok {
		return nil, argErr("keep-each", "[]string categories")
	}
	if st := c.KeepEach(cats); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleOne(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	if st := c.One(); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleSelect(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	indices, ok := argUints(args, 0)
	if !ok {
		return nil, argErr("select", "[]uint64 indices")
	}
	selected, st := c.Select(indices)
	if !st.Ok() {
		return nil, st
	}
	out := d.reg.adopt(selected)
	return Result{out}, nil
}

func handleProgenitorTag(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.ProgenitorTag()}, nil
}

func handleSameLineage(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok := argHandle(args, 0)
	if !ok {
		return nil, argErr("same-lineage", "1 handle")
	}
	other, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	return Result{c.SameLineage(other)}, nil
}

func handleToNumericMatrix(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	return Result{c.ToNumericMatrix()}, nil
}
