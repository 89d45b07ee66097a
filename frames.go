package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"berkotech.co/datawrangling/frame"
	"berkotech.co/datawrangling/frameio"
)

func extension(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 && strings.Contains(location, "://") {
		location = location[:i]
	}
	return strings.ToLower(filepath.Ext(location))
}

// readFrame loads a local path or URL, picking the reader from the
// extension. For HTML the table-th table is used.
func readFrame(ctx context.Context, cfg *config, location string, table int, extra ...frameio.Option) (*frame.Frame, error) {
	opts, err := cfg.readerOptions(extra...)
	if err != nil {
		return nil, err
	}
	switch extension(location) {
	case ".json":
		return frameio.LoadJSON(ctx, location, opts...)
	case ".html", ".htm", ".php":
		tables, err := frameio.LoadHTML(ctx, location, opts...)
		if err != nil {
			return nil, err
		}
		if table < 0 || table >= len(tables) {
			return nil, fmt.Errorf("%w: table %d of %d", frame.ErrIndex, table, len(tables))
		}
		return tables[table], nil
	case ".gob", ".pickle":
		return frameio.ReadPicklePath(location)
	}
	return frameio.LoadCSV(ctx, location, opts...)
}

// writeFrame saves f, picking the writer from the extension.
func writeFrame(path string, f *frame.Frame, orient frameio.Orient) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	switch extension(path) {
	case ".json":
		return frameio.SaveJSON(path, f, orient)
	case ".gob", ".pickle":
		return frameio.SavePickle(path, f)
	case ".csv", ".txt", ".dat":
		return frameio.SaveCSV(path, f)
	}
	return fmt.Errorf("unsupported output format %q", extension(path))
}

func newDescribeCmd(cfg *config) *cobra.Command {
	var table int
	var head int
	cmd := &cobra.Command{
		Use:   "describe <file-or-url>",
		Short: "Print the first rows and summary statistics of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFrame(cmd.Context(), cfg, args[0], table)
			if err != nil {
				return err
			}
			rows, cols := f.Shape()
			fmt.Fprintf(cmd.OutOrStdout(), "Shape %2d,%2d:\n", rows, cols)
			fmt.Fprintln(cmd.OutOrStdout(), f.Head(head))
			fmt.Fprintln(cmd.OutOrStdout(), f.Describe())
			return nil
		},
	}
	cmd.Flags().IntVar(&table, "table", 0, "which HTML table to read")
	cmd.Flags().IntVar(&head, "head", 5, "rows to show")
	return cmd
}

func newConvertCmd(cfg *config) *cobra.Command {
	var table int
	var orient string
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between CSV, JSON, HTML tables and gob pickles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := frameio.ParseOrient(orient)
			if err != nil {
				return err
			}
			f, err := readFrame(cmd.Context(), cfg, args[0], table)
			if err != nil {
				return err
			}
			if err := writeFrame(args[1], f, o); err != nil {
				return err
			}
			rows, cols := f.Shape()
			cfg.log.Info("converted", "from", args[0], "to", args[1], "rows", rows, "columns", cols)
			return nil
		},
	}
	cmd.Flags().IntVar(&table, "table", 0, "which HTML table to read")
	cmd.Flags().StringVar(&orient, "orient", "columns", "JSON layout: columns or records")
	return cmd
}
