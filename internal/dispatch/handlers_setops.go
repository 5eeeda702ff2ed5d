package dispatch

import (
	"context"

	"github.com/nfagan/categorical/setops"
)

// registerSetOpHandlers wires the two-instance operations in the setops
// package. Every one of them returns a new instance rather than mutating an
// operand in place, so each handler adopts the result into the registry
// and hands the caller back a fresh Handle.
func registerSetOpHandlers(table map[string]Handler) {
	table["unique"] = handleUnique
	table["combine"] = handleCombine
	table["union"] = handleUnion
}

func handleUnique(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	c, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	indices, _ := argUints(args, 0)
	out, st := setops.Unique(c, indices)
	if !st.Ok() {
		return nil, st
	}
	return Result{d.reg.adopt(out)}, nil
}

func handleCombine(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	a, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok := argHandle(args, 0)
	if !ok {
		return nil, argErr("combine", "handle b, []uint64 maskA (may be nil), []uint64 maskB (may be nil)")
	}
	b, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	maskA, _ := argUints(args, 1)
	maskB, _ := argUints(args, 2)
	out, st := setops.Combine(a, b, maskA, maskB)
	if !st.Ok() {
		return nil, st
	}
	return Result{d.reg.adopt(out)}, nil
}

func handleUnion(_ context.Context, d *Dispatcher, h Handle, args Args) (Result, error) {
	a, err := d.resolve(h)
	if err != nil {
		return nil, err
	}
	otherH, ok1 := argHandle(args, 0)
	cats, ok2 := argStrings(args, 1)
	if !ok1 || !ok2 {
		return nil, argErr("union", "handle b, []string key categories, []uint64 maskA (may be nil), []uint64 maskB (may be nil)")
	}
	b, err := d.resolve(otherH)
	if err != nil {
		return nil, err
	}
	maskA, _ := argUints(args, 2)
	maskB, _ := argUints(args, 3)
	out, st := setops.Union(a, b, cats, maskA, maskB)
	if !st.Ok() {
		return nil, st
	}
	return Result{d.reg.adopt(out)}, nil
}
