package frame

import (
	"fmt"
	"sort"
)

// Agg asks for fn applied to Column within every group. The output column
// is called Name, or "<Column>_<fn>" when Name is empty.
type Agg struct {
	Column string
	Func   AggFunc
	Name   string
}

func (a Agg) outputName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Column + "_" + a.Func.Name
}

// Grouped is a frame partitioned by the values of its key columns.
type Grouped struct {
	f      *Frame
	keys   []string
	order  []Label
	rows   map[string][]int
	sorted bool
}

// GroupBy partitions rows by the tuple of values in the key columns. Rows
// with a null key are left out, so no group ever has a null in its key.
func (f *Frame) GroupBy(keys ...string) (*Grouped, error) {
	if len(keys) == 0 {
		return nil, schemaErrorf("no grouping columns given")
	}
	pos, err := f.mustCols(keys)
	if err != nil {
		return nil, err
	}
	g := &Grouped{f: f, keys: append([]string(nil), keys...), rows: make(map[string][]int)}
rows:
	for r := 0; r < f.Len(); r++ {
		vs := make([]Value, len(pos))
		for i, p := range pos {
			v := f.cols[p].values[r]
			if v.IsNull() {
				continue rows
			}
			vs[i] = v
		}
		l := Label{levels: vs}
		k := l.key()
		if _, ok := g.rows[k]; !ok {
			g.order = append(g.order, l)
		}
		g.rows[k] = append(g.rows[k], r)
	}
	return g, nil
}

// Sorted makes Agg and Groups return groups in key order instead of
// first-seen order.
func (g *Grouped) Sorted() *Grouped {
	out := *g
	out.sorted = true
	return &out
}

func (g *Grouped) Len() int { return len(g.order) }

// Groups returns the group keys.
func (g *Grouped) Groups() []Label {
	out := append([]Label(nil), g.order...)
	if g.sorted {
		sort.SliceStable(out, func(i, j int) bool { return compareLabels(out[i], out[j]) < 0 })
	}
	return out
}

// Get returns the rows of one group.
func (g *Grouped) Get(key ...interface{}) (*Frame, error) {
	l := L(key...)
	rows, ok := g.rows[l.key()]
	if !ok {
		return nil, keyErrorf("group %v not found", l)
	}
	return g.f.take(rows), nil
}

// Agg computes every aggregation for every group. The result has one row
// per group over a range index: the key columns first, then one column
// per aggregation.
func (g *Grouped) Agg(aggs ...Agg) (*Frame, error) {
	if len(aggs) == 0 {
		return nil, schemaErrorf("no aggregations given")
	}
	groups := g.Groups()
	cols := make([]*column, 0, len(g.keys)+len(aggs))
	for i, k := range g.keys {
		vs := make([]Value, len(groups))
		for j, l := range groups {
			vs[j] = l.levels[i]
		}
		cols = append(cols, newColumn(k, vs))
	}
	for _, a := range aggs {
		p, ok := g.f.colPos(a.Column)
		if !ok {
			return nil, keyErrorf("column %q not found", a.Column)
		}
		if a.Func.Fn == nil {
			return nil, schemaErrorf("aggregation for %q has no function", a.Column)
		}
		src := g.f.cols[p].values
		vs := make([]Value, len(groups))
		for j, l := range groups {
			rows := g.rows[l.key()]
			cells := make([]Value, len(rows))
			for i, r := range rows {
				cells[i] = src[r]
			}
			v, err := a.Func.Fn(cells)
			if err != nil {
				return nil, fmt.Errorf("aggregating %s of %q for group %v: %w", a.Func.Name, a.Column, l, err)
			}
			vs[j] = v
		}
		cols = append(cols, newColumn(a.outputName(), vs))
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	return newFrame(RangeIndex(len(groups)), cols), nil
}
