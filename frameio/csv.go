package frameio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"berkotech.co/datawrangling/frame"
)

// ReadCSV reads delimited text. A row whose field count differs from the
// header is a *frame.ParseError naming the zero-based data row.
func ReadCSV(r io.Reader, opts ...Option) (*frame.Frame, error) {
	cfg := newConfig(opts)

	reader := csv.NewReader(r)
	reader.Comma = cfg.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = cfg.TrimLeadingSpace

	var header []string
	var records [][]string
	for line := 0; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		row := line
		if cfg.HasHeader {
			row--
		}
		if err != nil {
			var pe *csv.ParseError
			switch {
			case errors.As(err, &pe) && row < 0:
				return nil, fmt.Errorf("%w: malformed header line: %w", frame.ErrParse, err)
			case errors.As(err, &pe):
				return nil, &frame.ParseError{Row: row, Err: err}
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if cfg.HasHeader && line == 0 {
			header = rec
			continue
		}
		records = append(records, rec)
	}

	switch {
	case cfg.Names != nil:
		header = cfg.Names
	case header == nil && len(records) > 0:
		header = numberedHeader(len(records[0]))
	case header == nil:
		return nil, fmt.Errorf("%w: CSV input is empty", frame.ErrParse)
	}

	f, err := buildFrame(header, records, cfg)
	if err != nil {
		return nil, err
	}
	rows, cols := f.Shape()
	cfg.Logger.V(1).Info("read CSV", "rows", rows, "columns", cols)
	return f, nil
}

// LoadCSV opens a local path or URL and reads it as delimited text.
func LoadCSV(ctx context.Context, location string, opts ...Option) (*frame.Frame, error) {
	rc, err := Open(ctx, location, opts...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadCSV(rc, opts...)
}

// ToCSV writes the row index as the leading column (one per level, with a
// blank header unless the level is named), then every column in order.
// Null cells are written empty.
func ToCSV(w io.Writer, f *frame.Frame) error {
	writer := csv.NewWriter(w)

	ix := f.Index()
	header := append(ix.Names(), f.Columns()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for r, row := range f.Values() {
		label := ix.At(r)
		rec := make([]string, 0, label.Len()+len(row))
		for i := 0; i < label.Len(); i++ {
			rec = append(rec, csvCell(label.Level(i)))
		}
		for _, v := range row {
			rec = append(rec, csvCell(v))
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the frame to a file.
func SaveCSV(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()
	return ToCSV(file, f)
}

func csvCell(v frame.Value) string {
	if v.IsNull() {
		return ""
	}
	return v.String()
}
