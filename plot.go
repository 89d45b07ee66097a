package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"berkotech.co/datawrangling/plotting"
)

func newPlotCmd(cfg *config) *cobra.Command {
	var kind, x, y, hue, title, out string
	var bins int
	cmd := &cobra.Command{
		Use:   "plot <file-or-url>",
		Short: "Draw a histogram, scatter or line chart of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(cmd.Context(), cfg, args[0], 0)
			if err != nil {
				return err
			}
			var p *plot.Plot
			switch kind {
			case "hist":
				s, err := f.Col(x)
				if err != nil {
					return err
				}
				p, err = plotting.Hist(s, bins, title)
				if err != nil {
					return err
				}
			case "scatter":
				p, err = plotting.Scatter(f, x, y, title)
			case "line":
				p, err = plotting.Line(f, x, y, hue)
				if err == nil {
					p.Title.Text = title
				}
			default:
				return fmt.Errorf("unknown plot kind %q", kind)
			}
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(cfg.OutDir, kind+".png")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := plotting.Save(p, out); err != nil {
				return err
			}
			cfg.log.Info("saved chart", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "hist", "hist, scatter or line")
	cmd.Flags().StringVarP(&x, "x", "x", "", "column on the x axis (the histogram column)")
	cmd.Flags().StringVarP(&y, "y", "y", "", "column on the y axis")
	cmd.Flags().StringVar(&hue, "hue", "", "one line per value of this column")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().IntVar(&bins, "bins", 10, "histogram bins")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output image (png, jpg, svg, pdf)")
	return cmd
}
