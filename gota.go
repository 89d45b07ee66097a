package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"

	"berkotech.co/datawrangling/frameio"
	"berkotech.co/datawrangling/plotting"
)

// newGotaCmd hands a table to go-gota: sort, summarise, then bring the
// result back and render a histogram in memory.
func newGotaCmd(cfg *config) *cobra.Command {
	var sortBy, hist string
	cmd := &cobra.Command{
		Use:   "gota <file-or-url>",
		Short: "Round-trip a table through a go-gota DataFrame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(cmd.Context(), cfg, args[0], 0)
			if err != nil {
				return err
			}
			df, err := frameio.ToGota(f)
			if err != nil {
				return err
			}
			if sortBy != "" {
				df = df.Arrange(dataframe.RevSort(sortBy))
				if df.Err != nil {
					return df.Err
				}
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, df)
			fmt.Fprintln(w, df.Describe())

			back, err := frameio.FromGota(df)
			if err != nil {
				return err
			}
			if hist == "" {
				return nil
			}
			s, err := back.Col(hist)
			if err != nil {
				return err
			}
			p, err := plotting.Hist(s, 10, hist+" Histogram")
			if err != nil {
				return err
			}
			jpeg, err := plotting.Encode(p, "jpg")
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(cfg.OutDir, hist+".jpeg")
			if err := os.WriteFile(path, jpeg, 0o644); err != nil {
				return err
			}
			cfg.log.Info("saved histogram", "path", path, "bytes", len(jpeg))
			return nil
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort descending by this column")
	cmd.Flags().StringVar(&hist, "hist", "", "render a jpeg histogram of this column")
	return cmd
}
