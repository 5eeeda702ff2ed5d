package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfagan/categorical/categorical"
)

// Args is the positional argument list passed to a Handler. Handlers
// type-assert the entries they expect; a caller that gets the shape wrong
// gets back a plain dispatch error rather than a categorical status code,
// since argument-shape mismatches aren't part of the core's own closed
// status taxonomy.
type Args []any

// Result is whatever a Handler hands back to the caller: zero or more
// values, interpreted by the op the caller invoked.
type Result []any

// Handler implements a single named operation against the Categorical
// behind h. ctx is threaded through for cancellation of a batch of calls;
// no handler blocks on it directly, since nothing in the core itself
// blocks.
type Handler func(ctx context.Context, d *Dispatcher, h Handle, args Args) (Result, error)

// Dispatcher binds named operations to Registry-held instances. Once any
// call fails, Dispatcher remembers the first error and short-circuits every
// later call — the same sticky-error-field shape ts.Encoder uses to stop
// writing rows after the first encoding failure, so a caller driving many
// calls back to back doesn't need to check an error after every single one.
type Dispatcher struct {
	reg   *Registry
	table map[string]Handler
	log   *slog.Logger
	err   error
}

// New builds a Dispatcher with every handler group registered, logging to
// log (a nil logger falls back to slog.Default()).
func New(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		reg:   NewRegistry(),
		table: make(map[string]Handler),
		log:   log,
	}
	registerStructuralHandlers(d.table)
	registerQueryHandlers(d.table)
	registerSetOpHandlers(d.table)
	return d
}

// Err returns the first error encountered since the Dispatcher was created
// or since the last ResetErr, or nil if every call so far has succeeded.
func (d *Dispatcher) Err() error {
	return d.err
}

// ResetErr clears a sticky error, letting the Dispatcher accept calls
// again. There's no way to recover the calls skipped while the error was
// set; the caller must retry them.
func (d *Dispatcher) ResetErr() {
	d.err = nil
}

// Create allocates a new Categorical and returns its Handle. Create always
// runs, even with a sticky error set, since the caller may be about to
// ResetErr and start a fresh batch against a new instance.
func (d *Dispatcher) Create(opts categorical.Options) Handle {
	h := d.reg.Create(opts)
	d.log.Info("dispatch: create", "handle", h.String())
	return h
}

// Adopt registers an already-constructed Categorical (for instance, one
// built by categorical.FromNumericMatrix from a file a host process just
// read) under a fresh Handle, so later Call invocations can address it.
func (d *Dispatcher) Adopt(c *categorical.Categorical) Handle {
	h := d.reg.adopt(c)
	d.log.Info("dispatch: adopt", "handle", h.String())
	return h
}

// Destroy releases the instance behind h.
func (d *Dispatcher) Destroy(h Handle) error {
	if d.err != nil {
		return d.err
	}
	if err := d.reg.Destroy(h); err != nil {
		d.err = err
		d.log.Error("dispatch: destroy", "handle", h.String(), "error", err)
		return err
	}
	d.log.Info("dispatch: destroy", "handle", h.String())
	return nil
}

// Call runs the named op against h with args. It returns the sticky error
// immediately if one is already set, and otherwise reports whatever the op
// itself returns (wrapped with the op name) as the new sticky error.
func (d *Dispatcher) Call(ctx context.Context, op string, h Handle, args Args) (Result, error) {
	if d.err != nil {
		return nil, d.err
	}
	if err := ctx.Err(); err != nil {
		d.err = err
		return nil, err
	}
	handler, ok := d.table[op]
	if !ok {
		d.err = fmt.Errorf("dispatch: unknown op %q", op)
		d.log.Error("dispatch: unknown op", "op", op)
		return nil, d.err
	}
	result, err := handler(ctx, d, h, args)
	if err != nil {
		d.err = fmt.Errorf("dispatch: op %q: %w", op, err)
		d.log.Warn("dispatch: op failed", "op", op, "handle", h.String(), "error", err)
		return nil, d.err
	}
	d.log.Debug("dispatch: op ok", "op", op, "handle", h.String())
	return result, nil
}

// resolve looks up h and wraps a miss as a plain error rather than a status
// code, for the same reason Call does above.
func (d *Dispatcher) resolve(h Handle) (*categorical.Categorical, error) {
	return d.reg.Resolve(h)
}

func argErr(op, want string) error {
	return fmt.Errorf("dispatch: %s: expected %s", op, want)
}

func argHandle(args Args, i int) (Handle, bool) {
	if i >= len(args) {
		return Handle{}, false
	}
	h, ok := args[i].(Handle)
	return h, ok
}

func argString(args Args, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

func argStrings(args Args, i int) ([]string, bool) {
	if i >= len(args) {
		return nil, false
	}
	s, ok := args[i].([]string)
	return s, ok
}

func argUints(args Args, i int) ([]uint64, bool) {
	if i >= len(args) {
		return nil, false
	}
	u, ok := args[i].([]uint64)
	return u, ok
}

func argInt(args Args, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	v, ok := args[i].(int)
	return v, ok
}

func argUint64(args Args, i int) (uint64, bool) {
	if i >= len(args) {
		return 0, false
	}
	v, ok := args[i].(uint64)
	return v, ok
}
