package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/nfagan/categorical/internal/dispatch"
	"github.com/spf13/cobra"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFindCmd(flags *globalFlags) *cobra.Command {
	var labels string
	var offset uint64
	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Find row indices where every given label is present",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			res, err := d.Call(ctx, "find", h, dispatch.Args{splitCSV(labels), offset})
			if err != nil {
				return err
			}
			return printJSON(res[0])
		},
	}
	cmd.Flags().StringVarP(&labels, "labels", "l", "", "comma-separated labels, one per category")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "smallest row index to consider")
	cmd.MarkFlagRequired("labels")
	return cmd
}

func newFindAllCmd(flags *globalFlags) *cobra.Command {
	var categories string
	var offset uint64
	cmd := &cobra.Command{
		Use:   "find-all [file]",
		Short: "Group row indices by their combination of labels across categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			res, err := d.Call(ctx, "find-allc", h, dispatch.Args{splitCSV(categories), offset})
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"groups": res[0], "combinations": res[1]})
		},
	}
	cmd.Flags().StringVarP(&categories, "categories", "c", "", "comma-separated category names to group by")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "smallest row index to consider")
	cmd.MarkFlagRequired("categories")
	return cmd
}

func newKeepEachCmd(flags *globalFlags) *cobra.Command {
	var categories string
	cmd := &cobra.Command{
		Use:   "keep-each [file]",
		Short: "Reduce to one row per unique combination of the given categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			if _, err := d.Call(ctx, "keep-each", h, dispatch.Args{splitCSV(categories)}); err != nil {
				return err
			}
			return emit(ctx, d, h)
		},
	}
	cmd.Flags().StringVarP(&categories, "categories", "c", "", "comma-separated category names (empty collapses to one row)")
	return cmd
}

func newSelectCmd(flags *globalFlags) *cobra.Command {
	var indices []int
	cmd := &cobra.Command{
		Use:   "select [file]",
		Short: "Keep only the given row indices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			rows := make([]uint64, len(indices))
			for i, v := range indices {
				rows[i] = uint64(v)
			}
			res, err := d.Call(ctx, "select", h, dispatch.Args{rows})
			if err != nil {
				return err
			}
			return emit(ctx, d, res[0].(dispatch.Handle))
		},
	}
	cmd.Flags().IntSliceVarP(&indices, "indices", "i", nil, "row indices to keep")
	cmd.MarkFlagRequired("indices")
	return cmd
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print size and category names without modifying anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			sizeRes, err := d.Call(ctx, "size", h, nil)
			if err != nil {
				return err
			}
			catRes, err := d.Call(ctx, "categories", h, nil)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"size": sizeRes[0], "categories": catRes[0]})
		},
	}
	return cmd
}
