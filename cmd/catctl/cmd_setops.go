package main

import (
	"context"

	"github.com/nfagan/categorical/internal/dispatch"
	"github.com/spf13/cobra"
)

func newUniqueCmd(flags *globalFlags) *cobra.Command {
	var indices []int
	cmd := &cobra.Command{
		Use:   "unique [file]",
		Short: "Drop rows that duplicate an earlier row across every category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			h, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			var rows []uint64
			if len(indices) > 0 {
				rows = make([]uint64, len(indices))
				for i, v := range indices {
					rows[i] = uint64(v)
				}
			}
			res, err := d.Call(ctx, "unique", h, dispatch.Args{rows})
			if err != nil {
				return err
			}
			return emit(ctx, d, res[0].(dispatch.Handle))
		},
	}
	cmd.Flags().IntSliceVarP(&indices, "indices", "i", nil, "restrict to these row indices before deduping (default: all rows)")
	return cmd
}

func newCombineCmd(flags *globalFlags) *cobra.Command {
	var bPath string
	cmd := &cobra.Command{
		Use:   "combine [file-a]",
		Short: "Concatenate two arrays row-wise, filling categories missing from either side",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			a, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			b, err := loadHandle(d, bPath, flags.options())
			if err != nil {
				return err
			}
			res, err := d.Call(ctx, "combine", a, dispatch.Args{b, nil, nil})
			if err != nil {
				return err
			}
			return emit(ctx, d, res[0].(dispatch.Handle))
		},
	}
	cmd.Flags().StringVarP(&bPath, "with", "w", "", "path to the second array's matrix (required)")
	cmd.MarkFlagRequired("with")
	return cmd
}

func newUnionCmd(flags *globalFlags) *cobra.Command {
	var bPath, keyCats string
	cmd := &cobra.Command{
		Use:   "union [file-a]",
		Short: "Merge two arrays by a set of key categories, collapsing disagreeing values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := flags.newDispatcher()
			a, err := loadHandle(d, inputArg(cmd, args), flags.options())
			if err != nil {
				return err
			}
			b, err := loadHandle(d, bPath, flags.options())
			if err != nil {
				return err
			}
			res, err := d.Call(ctx, "union", a, dispatch.Args{b, splitCSV(keyCats), nil, nil})
			if err != nil {
				return err
			}
			return emit(ctx, d, res[0].(dispatch.Handle))
		},
	}
	cmd.Flags().StringVarP(&bPath, "with", "w", "", "path to the second array's matrix (required)")
	cmd.Flags().StringVarP(&keyCats, "key", "k", "", "comma-separated key category names to match rows by (required)")
	cmd.MarkFlagRequired("with")
	cmd.MarkFlagRequired("key")
	return cmd
}
