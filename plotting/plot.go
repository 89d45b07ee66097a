// Package plotting renders frame columns with gonum/plot. Null cells are
// left out of every chart.
package plotting

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"berkotech.co/datawrangling/frame"
)

// Default chart size.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

// Values returns the non-null numbers of s.
func Values(s *frame.Series) plotter.Values {
	v := make(plotter.Values, 0, s.Len())
	for _, x := range s.Values() {
		if f, ok := x.Float(); ok {
			v = append(v, f)
		}
	}
	return v
}

// XYs pairs columns x and y row by row, skipping rows where either is null.
func XYs(f *frame.Frame, x, y string) (plotter.XYs, error) {
	xs, err := f.Col(x)
	if err != nil {
		return nil, err
	}
	ys, err := f.Col(y)
	if err != nil {
		return nil, err
	}
	xv, yv := xs.Values(), ys.Values()
	pts := make(plotter.XYs, 0, len(xv))
	for i := range xv {
		a, okA := xv[i].Float()
		b, okB := yv[i].Float()
		if okA && okB {
			pts = append(pts, plotter.XY{X: a, Y: b})
		}
	}
	return pts, nil
}

// Hist draws a histogram of s with the given number of bins.
func Hist(s *frame.Series, bins int, title string) (*plot.Plot, error) {
	v := Values(s)
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: column %q has no numbers to plot", frame.ErrSchema, s.Name())
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = s.Name()
	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return nil, err
	}
	p.Add(h)
	return p, nil
}

// Scatter draws y against x.
func Scatter(f *frame.Frame, x, y, title string) (*plot.Plot, error) {
	pts, err := XYs(f, x, y)
	if err != nil {
		return nil, err
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	p.Add(sc)
	return p, nil
}

// Line draws y against x with points. When hue names a column there is
// one coloured line per distinct value of it, in first-seen order.
func Line(f *frame.Frame, x, y, hue string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())

	if hue == "" {
		return p, addLine(p, f, x, y, "", 0)
	}
	g, err := f.GroupBy(hue)
	if err != nil {
		return nil, err
	}
	for i, key := range g.Groups() {
		parts := make([]interface{}, key.Len())
		for j := range parts {
			parts[j] = key.Level(j)
		}
		sub, err := g.Get(parts...)
		if err != nil {
			return nil, err
		}
		if err := addLine(p, sub, x, y, key.String(), i); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true
	return p, nil
}

func addLine(p *plot.Plot, f *frame.Frame, x, y, name string, i int) error {
	pts, err := XYs(f, x, y)
	if err != nil {
		return err
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(i)
	points.Color = plotutil.Color(i)
	p.Add(line, points)
	if name != "" {
		p.Legend.Add(name, line, points)
	}
	return nil
}

// Save writes the chart to path; the extension picks the format.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Encode renders the chart in memory as png, jpg, svg or pdf.
func Encode(p *plot.Plot, format string) ([]byte, error) {
	w, err := p.WriterTo(Width, Height, strings.ToLower(format))
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if _, err := w.WriteTo(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
