package frameio

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"berkotech.co/datawrangling/frame"
)

type htmlRow struct {
	cells  []string
	header bool
}

// ReadHTML parses every <table> in the document into a frame, in document
// order. Leading rows made only of <th> cells (or inside <thead>) are the
// header; several header rows are joined per column. Without one the first
// row is the header, unless WithNames supplies it. A cell with colspan is
// repeated.
func ReadHTML(r io.Reader, opts ...Option) ([]*frame.Frame, error) {
	cfg := newConfig(opts)
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var tables []*html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			tables = append(tables, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables found", frame.ErrParse)
	}

	out := make([]*frame.Frame, 0, len(tables))
	for t, table := range tables {
		f, err := tableFrame(tableRows(table), cfg)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", t, err)
		}
		out = append(out, f)
	}
	cfg.Logger.V(1).Info("read HTML", "tables", len(out))
	return out, nil
}

// LoadHTML opens a local path or URL and reads its tables.
func LoadHTML(ctx context.Context, location string, opts ...Option) ([]*frame.Frame, error) {
	rc, err := Open(ctx, location, opts...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadHTML(rc, opts...)
}

// tableRows collects the rows of one table without descending into nested
// tables.
func tableRows(table *html.Node) []htmlRow {
	var rows []htmlRow
	var walk func(n *html.Node, inHead bool)
	walk = func(n *html.Node, inHead bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
			case atom.Thead:
				walk(c, true)
			case atom.Tbody, atom.Tfoot:
				walk(c, false)
			case atom.Tr:
				rows = append(rows, rowCells(c, inHead))
			}
		}
	}
	walk(table, false)
	return rows
}

func rowCells(tr *html.Node, inHead bool) htmlRow {
	row := htmlRow{header: true}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		if c.DataAtom == atom.Td {
			row.header = false
		}
		text := strings.Join(strings.Fields(nodeText(c)), " ")
		span := 1
		for _, a := range c.Attr {
			if a.Key == "colspan" {
				if n, err := strconv.Atoi(a.Val); err == nil && n > 1 {
					span = n
				}
			}
		}
		for i := 0; i < span; i++ {
			row.cells = append(row.cells, text)
		}
	}
	row.header = inHead || (row.header && len(row.cells) > 0)
	return row
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func tableFrame(rows []htmlRow, cfg *Config) (*frame.Frame, error) {
	var heads [][]string
	for len(rows) > 0 && rows[0].header {
		heads = append(heads, rows[0].cells)
		rows = rows[1:]
	}
	if len(heads) == 0 && cfg.Names == nil {
		if len(rows) == 0 {
			return frame.New()
		}
		heads = append(heads, rows[0].cells)
		rows = rows[1:]
	}

	var header []string
	if len(heads) > 0 {
		header = make([]string, len(heads[len(heads)-1]))
	}
	for c := range header {
		var parts []string
		for _, h := range heads {
			if c < len(h) && h[c] != "" && (len(parts) == 0 || parts[len(parts)-1] != h[c]) {
				parts = append(parts, h[c])
			}
		}
		header[c] = strings.Join(parts, " ")
	}
	if cfg.Names != nil {
		header = cfg.Names
	}

	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.cells
	}
	return buildFrame(header, records, cfg)
}
