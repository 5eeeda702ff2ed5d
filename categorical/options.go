package categorical

// Options configures the run-time behavior of a Categorical. These were
// compile-time macros in the system this package reimplements; here they
// are ordinary fields, validated and defaulted the way
// hashmap.NewWith(Options[K]) defaults its own Options.
type Options struct {
	// PruneAfterAssign, if true, calls Prune automatically after a
	// successful SetCategory, Assign, or ReplaceLabels.
	PruneAfterAssign bool

	// UseProgenitorIDs, if true (the default), lets two-argument operations
	// skip label reconciliation when both operands share a progenitor tag.
	// Setting this false always reconciles, even when tags match — useful
	// for testing the reconciliation path itself.
	UseProgenitorIDs bool

	// AllowSetFromSize0, if true (the default), lets SetCategory grow a
	// size-0 array to match the length of the values it's given. If false,
	// SetCategory on a size-0 array with non-empty values fails.
	AllowSetFromSize0 bool
}

// DefaultOptions returns the same defaults as the original configuration:
// prune-after-assign off, progenitor fast-paths on, growth-from-empty on.
func DefaultOptions() Options {
	return Options{
		PruneAfterAssign:  false,
		UseProgenitorIDs:  true,
		AllowSetFromSize0: true,
	}
}
