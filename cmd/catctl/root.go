package main

import (
	"log/slog"
	"os"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/internal/dispatch"
	"github.com/spf13/cobra"
)

// globalFlags mirrors categorical.Options plus the logging/output knobs
// every subcommand shares. Each subcommand reads these off the root
// command's persistent flags rather than redeclaring them.
type globalFlags struct {
	pruneAfterAssign bool
	noProgenitorIDs  bool
	noAllowSetFrom0  bool
	verbose          bool
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "catctl",
		Short: "Inspect and transform categorical arrays from the command line",
		Long: `catctl applies one categorical array operation per invocation,
reading a NumericMatrix as JSON from a file or stdin and writing the
result as JSON to stdout. Chain subcommands with pipes to build up a
sequence of operations without holding a server process open.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flags.pruneAfterAssign, "prune-after-assign", false,
		"prune dangling labels automatically after set-category, assign, and replace-labels")
	root.PersistentFlags().BoolVar(&flags.noProgenitorIDs, "no-progenitor-ids", false,
		"always reconcile labels on two-instance operations, even when progenitor tags match")
	root.PersistentFlags().BoolVar(&flags.noAllowSetFrom0, "no-grow-from-empty", false,
		"reject set-category on a size-0 array instead of growing to match its values")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each dispatched operation")

	root.AddCommand(
		newAddCategoryCmd(flags),
		newRequireCategoryCmd(flags),
		newRemoveCategoryCmd(flags),
		newRenameCategoryCmd(flags),
		newResizeCmd(flags),
		newSetCategoryCmd(flags),
		newFillCategoryCmd(flags),
		newReplaceLabelsCmd(flags),
		newPruneCmd(flags),
		newFindCmd(flags),
		newFindAllCmd(flags),
		newKeepEachCmd(flags),
		newSelectCmd(flags),
		newUniqueCmd(flags),
		newCombineCmd(flags),
		newUnionCmd(flags),
		newShowCmd(flags),
	)
	return root
}

func (f *globalFlags) options() categorical.Options {
	opts := categorical.DefaultOptions()
	opts.PruneAfterAssign = f.pruneAfterAssign
	opts.UseProgenitorIDs = !f.noProgenitorIDs
	opts.AllowSetFromSize0 = !f.noAllowSetFrom0
	return opts
}

func (f *globalFlags) logger() *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (f *globalFlags) newDispatcher() *dispatch.Dispatcher {
	return dispatch.New(f.logger())
}
