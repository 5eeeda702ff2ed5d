// Package dispatch is the op-code binding layer a host process (cmd/catctl,
// or any future RPC/FFI front end) drives instead of importing the
// categorical package's Go API directly. It owns a registry of live
// Categorical instances behind opaque Handles and a table of named
// operations, grouped the way grafana-tempo's command packages each
// register their own subcommands into a shared parent rather than one
// giant switch: registerStructuralHandlers, registerQueryHandlers, and
// registerSetOpHandlers each populate a slice of the same table.
package dispatch

import (
	"fmt"
	"sync"

	"github.com/nfagan/categorical/categorical"
)

// Handle identifies a live Categorical in a Registry. The generation field
// catches use of a handle after its instance has been destroyed: a reused
// slot gets a new generation, so a stale Handle fails to resolve instead of
// silently addressing whatever now occupies that slot.
type Handle struct {
	id  int64
	gen uint32
}

// String renders a Handle for logging.
func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.id, h.gen)
}

type entry struct {
	cat *categorical.Categorical
	gen uint32
}

// Registry owns the set of Categorical instances addressable by Handle.
// A host process normally drives one Registry per process; it is safe for
// concurrent use since nothing in the core guarantees single-threaded
// access once a binding layer is in front of it.
type Registry struct {
	mu    sync.Mutex
	next  int64
	items map[int64]*entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[int64]*entry)}
}

// Create allocates a new Categorical configured with opts and returns its
// Handle.
func (r *Registry) Create(opts categorical.Options) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := Handle{id: r.next, gen: 1}
	r.items[h.id] = &entry{cat: categorical.NewWith(opts), gen: h.gen}
	return h
}

// Destroy releases the instance behind h. Destroying an unknown or already
// destroyed handle is reported, not silently ignored.
func (r *Registry) Destroy(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[h.id]
	if !ok || e.gen != h.gen {
		return fmt.Errorf("dispatch: unknown handle %s", h)
	}
	delete(r.items, h.id)
	return nil
}

// Resolve returns the live Categorical behind h.
func (r *Registry) Resolve(h Handle) (*categorical.Categorical, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[h.id]
	if !ok || e.gen != h.gen {
		return nil, fmt.Errorf("dispatch: unknown handle %s", h)
	}
	return e.cat, nil
}

// Len reports the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// adopt registers a Categorical produced by an operation that returns a new
// instance (Select, setops.Unique/Combine/Union) and hands back its Handle,
// so the caller gets a handle back instead of a bare instance it has no way
// to address in later Call invocations.
func (r *Registry) adopt(c *categorical.Categorical) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := Handle{id: r.next, gen: 1}
	r.items[h.id] = &entry{cat: c, gen: h.gen}
	return h
}
