package dispatch

import "context"

// registerStructuralHandlers wires every mutating shape/category/label op
// that doesn't involve a second instance or a search. Grouped separately
// from query and set-op handlers so a caller auditing the table can see at
// a glance which ops can change an instance's shape.
func registerStructuralHandlers(table map[string]Handler) {
	table["add-category"] = handleAddCategory
	table["require-category"] = handleRequireCategory
	table["remove-category"] = handleRemoveCategory
	table["rename-category"] = handleRenameCategory
	table["collapse-category"] = handleCollapseCategory
	table["resize"] = handleResize
	table["reserve"] = handleReserve
	table["repeat"] = handleRepeat
	table["set-category"] = handleSetCategory
	table["set-category-at"] = handleSetCategoryAt
	table["fill-category"] = handleFillCategory
	table["replace-labels"] = handleReplaceLabels
	table["remove-labels"] = handleRemoveLabels
	table["append"] = handleAppend
	table["assign"] = handleAssign
	table["merge"] = handleMerge
	table["prune"] = handlePrune
}

func handleAddCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("add-category", "1 category name")
	}
	if st := c.AddCategory(cat); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleRequireCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("require-category", "1 category name")
	}
	if st := c.RequireCategory(cat); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleRemoveCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("remove-category", "1 category name")
	}
	if st := c.RemoveCategory(cat); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleRenameCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	from, ok1 := argString(args, 0)
	to, ok2 := argString(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("rename-category", "from, to category names")
	}
	if st := c.RenameCategory(from, to); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleCollapseCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok := argString(args, 0)
	if !ok {
		return nil, argErr("collapse-category", "1 category name")
	}
	if st := c.CollapseCategory(cat); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleResize(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	n, ok := argInt(args, 0)
	if !ok {
		return nil, argErr("resize", "1 int size")
	}
	if st := c.Resize(n); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleReserve(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	n, ok := argInt(args, 0)
	if !ok {
		return nil, argErr("reserve", "1 int capacity")
	}
	if st := c.Reserve(n); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleRepeat(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	k, ok := argInt(args, 0)
	if !ok {
		return nil, argErr("repeat", "1 int factor")
	}
	if st := c.Repeat(k); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleSetCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok1 := argString(args, 0)
	values, ok2 := argStrings(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("set-category", "category name, []string values")
	}
	if st := c.SetCategory(cat, values); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleSetCategoryAt(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok1 := argString(args, 0)
	values, ok2 := argStrings(args, 1)
	at, ok3 := argUints(args, 2)
	if !ok1 || !ok2 || !ok3 {
		return nil, argErr("set-category-at", "category name, []string values, []uint64 indices")
	}
	if st := c.SetCategoryAt(cat, values, at); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleFillCategory(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	cat, ok1 := argString(args, 0)
	label, ok2 := argString(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("fill-category", "category name, label")
	}
	if st := c.FillCategory(cat, label); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleReplaceLabels(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	from, ok1 := argStrings(args, 0)
	with, ok2 := argString(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("replace-labels", "[]string from, string with")
	}
	if st := c.ReplaceLabels(from, with); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleRemoveLabels(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	labels, ok := argStrings(args, 0)
	if !ok {
		return nil, argErr("remove-labels", "[]string labels")
	}
	return Result{c.RemoveLabels(labels)}, nil
}

func handleAppend(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok := argHandle(args, 0)
	if !ok {
		return nil, argErr("append", "1 handle")
	}
	other, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	if st := c.Append(other); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleAssign(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok1 := argHandle(args, 0)
	toIdx, ok2 := argUints(args, 1)
	fromIdx, ok3 := argUints(args, 2)
	if !ok1 || !ok2 || !ok3 {
		return nil, argErr("assign", "handle, []uint64 toIndices, []uint64 fromIndices")
	}
	other, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	if st := c.Assign(other, toIdx, fromIdx); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handleMerge(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok := argHandle(args, 0)
	if !ok {
		return nil, argErr("merge", "1 handle")
	}
	other, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	if st := c.Merge(other); !st.Ok() {
		return nil, st
	}
	return nil, nil
}

func handlePrune(_ context.Context, d *Dispatcher, h Handle, _ Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	if st := c.Prune(); !st.Ok() {
		return nil, st
	}
	return nil, nil
}
