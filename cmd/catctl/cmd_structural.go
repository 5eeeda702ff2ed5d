package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func inputArg(cmd *cobra.Command, args []string) string {
	_ = cmd
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func newAddCategoryCmd(flags *globalFlags) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add-category [file]",
		Short: "Add an empty category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "add-category", h, []any{category}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name to add")
	cmd.MarkFlagRequired("category")
	return cmd
}

func newRequireCategoryCmd(flags *globalFlags) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "require-category [file]",
		Short: "Add a category if it doesn't already exist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "require-category", h, []any{category}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name to require")
	cmd.MarkFlagRequired("category")
	return cmd
}

func newRemoveCategoryCmd(flags *globalFlags) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "remove-category [file]",
		Short: "Remove a category and its column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "remove-category", h, []any{category}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name to remove")
	cmd.MarkFlagRequired("category")
	return cmd
}

func newRenameCategoryCmd(flags *globalFlags) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "rename-category [file]",
		Short: "Rename a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "rename-category", h, []any{from, to}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "existing category name")
	cmd.Flags().StringVar(&to, "to", "", "new category name")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newResizeCmd(flags *globalFlags) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "resize [file]",
		Short: "Grow or shrink every column to n rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "resize", h, []any{n}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().IntVarP(&n, "rows", "n", 0, "target row count")
	return cmd
}

func newSetCategoryCmd(flags *globalFlags) *cobra.Command {
	var category, values string
	cmd := &cobra.Command{
		Use:   "set-category [file]",
		Short: "Overwrite every row of a category with comma-separated labels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "set-category", h, []any{category, splitCSV(values)}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to set")
	cmd.Flags().StringVarP(&values, "values", "v", "", "comma-separated label values, one per row")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("values")
	return cmd
}

func newFillCategoryCmd(flags *globalFlags) *cobra.Command {
	var category, label string
	cmd := &cobra.Command{
		Use:   "fill-category [file]",
		Short: "Set every row of a category to a single label",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "fill-category", h, []any{category, label}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to fill")
	cmd.Flags().StringVarP(&label, "label", "l", "", "label to fill it with")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("label")
	return cmd
}

func newReplaceLabelsCmd(flags *globalFlags) *cobra.Command {
	var from, with string
	cmd := &cobra.Command{
		Use:   "replace-labels [file]",
		Short: "Replace a set of labels everywhere they occur with a single label",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "replace-labels", h, []any{splitCSV(from), with}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "comma-separated labels to replace")
	cmd.Flags().StringVar(&with, "with", "", "replacement label")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("with")
	return cmd
}

func newPruneCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prune [file]",
		Short: "Remove labels no row references anymore",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "prune", h, nil); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
}
