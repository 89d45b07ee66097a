package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"berkotech.co/datawrangling/frame"
	"berkotech.co/datawrangling/frameio"
)

var aggFuncs = map[string]frame.AggFunc{
	"mean":   frame.Mean,
	"sum":    frame.Sum,
	"min":    frame.Min,
	"max":    frame.Max,
	"count":  frame.Count,
	"median": frame.Median,
	"std":    frame.Std,
}

// parseAgg reads column:fn[:name].
func parseAgg(spec string) (frame.Agg, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return frame.Agg{}, fmt.Errorf("aggregation %q must be column:function[:name]", spec)
	}
	fn, ok := aggFuncs[strings.ToLower(parts[1])]
	if !ok {
		return frame.Agg{}, fmt.Errorf("unknown aggregation function %q", parts[1])
	}
	a := frame.Agg{Column: parts[0], Func: fn}
	if len(parts) == 3 {
		a.Name = parts[2]
	}
	return a, nil
}

func newGroupByCmd(cfg *config) *cobra.Command {
	var by, aggs []string
	var sorted bool
	var out string
	cmd := &cobra.Command{
		Use:   "groupby <file-or-url>",
		Short: "Group rows by key columns and aggregate other columns",
		Example: `  datawrangling groupby yields.csv --by Location,Year \
      --agg Yields:mean:yield_mean --agg Yields:min --agg Yields:max --sort`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(by) == 0 || len(aggs) == 0 {
				return fmt.Errorf("--by and --agg are both required")
			}
			specs := make([]frame.Agg, len(aggs))
			for i, s := range aggs {
				a, err := parseAgg(s)
				if err != nil {
					return err
				}
				specs[i] = a
			}
			f, err := readFrame(cmd.Context(), cfg, args[0], 0)
			if err != nil {
				return err
			}
			g, err := f.GroupBy(by...)
			if err != nil {
				return err
			}
			if sorted {
				g = g.Sorted()
			}
			res, err := g.Agg(specs...)
			if err != nil {
				return err
			}
			cfg.log.V(1).Info("grouped", "keys", by, "groups", g.Len())
			fmt.Fprintln(cmd.OutOrStdout(), res)
			if out != "" {
				return writeFrame(out, res, frameio.Records)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&by, "by", nil, "key columns")
	cmd.Flags().StringArrayVar(&aggs, "agg", nil, "column:function[:name], function one of mean,sum,min,max,count,median,std")
	cmd.Flags().BoolVar(&sorted, "sort", false, "order groups by key instead of first appearance")
	cmd.Flags().StringVar(&out, "out", "", "also write the result to this file")
	return cmd
}
