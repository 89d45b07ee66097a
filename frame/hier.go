package frame

import (
	"fmt"
	"sort"
)

// SetIndex builds the row index from the named columns, one level per
// column. With drop the columns are removed from the result.
func (f *Frame) SetIndex(names []string, drop bool) (*Frame, error) {
	if len(names) == 0 {
		return nil, schemaErrorf("no index columns given")
	}
	pos, err := f.mustCols(names)
	if err != nil {
		return nil, err
	}
	ls := make([]Label, f.Len())
	for r := range ls {
		vs := make([]Value, len(pos))
		for i, p := range pos {
			vs[i] = f.cols[p].values[r]
		}
		ls[r] = Label{levels: vs}
	}
	ix := Index{labels: ls, names: append([]string(nil), names...), nlevels: len(names)}
	skip := make(map[int]bool, len(pos))
	if drop {
		for _, p := range pos {
			skip[p] = true
		}
	}
	var cols []*column
	for i, c := range f.cols {
		if !skip[i] {
			cols = append(cols, c.clone())
		}
	}
	return &Frame{index: ix, cols: cols, colsName: f.colsName}, nil
}

// ResetIndex moves the index levels into leading columns and restores the
// default range index. Unnamed levels become "index" (single level) or
// "level_<i>".
func (f *Frame) ResetIndex() (*Frame, error) {
	levels := f.index.Levels()
	names := f.index.Names()
	cols := make([]*column, 0, levels+len(f.cols))
	for i := 0; i < levels; i++ {
		name := names[i]
		if name == "" {
			if levels == 1 {
				name = "index"
			} else {
				name = fmt.Sprintf("level_%d", i)
			}
		}
		if f.HasColumn(name) {
			return nil, schemaErrorf("column %q already exists", name)
		}
		cols = append(cols, newColumn(name, f.index.Level(i)))
	}
	for _, c := range f.cols {
		cols = append(cols, c.clone())
	}
	return &Frame{index: RangeIndex(f.Len()), cols: cols, colsName: f.colsName}, nil
}

func xsPositions(ix Index, prefix []interface{}) (Label, []int, error) {
	l := L(prefix...)
	if l.Len() == 0 || l.Len() > ix.Levels() {
		return l, nil, keyErrorf("prefix of %d levels for a %d-level index", l.Len(), ix.Levels())
	}
	pos := ix.Positions(l)
	if len(pos) == 0 {
		return l, nil, keyErrorf("label %v not found", l)
	}
	return l, pos, nil
}

// XS selects the cells whose label starts with prefix and drops the
// matched levels from the result's index. A prefix naming every level
// keeps the index as is.
func (s *Series) XS(prefix ...interface{}) (*Series, error) {
	l, pos, err := xsPositions(s.index, prefix)
	if err != nil {
		return nil, err
	}
	out := s.take(pos)
	if l.Len() < s.index.Levels() {
		out.index = out.index.dropLevels(l.Len())
	}
	return out, nil
}

// XS selects the rows whose label starts with prefix, dropping the matched
// levels. Use Row for a fully specified single label.
func (f *Frame) XS(prefix ...interface{}) (*Frame, error) {
	l, pos, err := xsPositions(f.index, prefix)
	if err != nil {
		return nil, err
	}
	out := f.take(pos)
	if l.Len() < f.index.Levels() {
		out.index = out.index.dropLevels(l.Len())
	}
	return out, nil
}

func distinctSorted(ls []Label) []Label {
	seen := make(map[string]bool, len(ls))
	var out []Label
	for _, l := range ls {
		k := l.key()
		if !seen[k] {
			seen[k] = true
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return compareLabels(out[i], out[j]) < 0 })
	return out
}

// Unstack pivots the innermost index level into columns. Rows are the
// distinct outer labels, columns the distinct inner values, both sorted.
// Combinations missing from the series become null.
func (s *Series) Unstack() (*Frame, error) {
	n := s.index.Levels()
	if n < 2 {
		return nil, shapeErrorf("unstack needs a hierarchical index")
	}
	outer := make([]Label, s.Len())
	inner := make([]Label, s.Len())
	for i, l := range s.index.labels {
		outer[i] = Label{levels: l.levels[:n-1]}
		inner[i] = Label{levels: l.levels[n-1:]}
	}
	rows := distinctSorted(outer)
	colsL := distinctSorted(inner)
	rowPos := make(map[string]int, len(rows))
	for i, l := range rows {
		rowPos[l.key()] = i
	}
	colPos := make(map[string]int, len(colsL))
	for i, l := range colsL {
		colPos[l.key()] = i
	}
	grid := make([][]Value, len(colsL))
	filled := make([][]bool, len(colsL))
	for i := range grid {
		grid[i] = make([]Value, len(rows))
		filled[i] = make([]bool, len(rows))
	}
	for i, v := range s.col.values {
		r, c := rowPos[outer[i].key()], colPos[inner[i].key()]
		if filled[c][r] {
			return nil, shapeErrorf("index contains duplicate entry %v, cannot unstack", s.index.labels[i])
		}
		filled[c][r] = true
		grid[c][r] = v
	}
	cols := make([]*column, len(colsL))
	for i, l := range colsL {
		cols[i] = newColumn(l.levels[0].String(), grid[i])
		cols[i].label = l.levels[0]
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	names := s.index.Names()
	ix := Index{labels: rows, names: names[:n-1], nlevels: n - 1}
	return &Frame{index: ix, cols: cols, colsName: names[n-1]}, nil
}

// Stack is the inverse of Unstack: every cell becomes one entry of a
// series whose label is the row label extended by the column label. Null
// cells are kept, so stacking a frame whose unstack introduced nulls does
// not give back the original series.
func (f *Frame) Stack() *Series {
	levels := f.index.Levels()
	ls := make([]Label, 0, f.Len()*len(f.cols))
	vs := make([]Value, 0, f.Len()*len(f.cols))
	for r, l := range f.index.labels {
		for _, c := range f.cols {
			lv := make([]Value, 0, levels+1)
			lv = append(lv, l.levels...)
			lv = append(lv, c.label)
			ls = append(ls, Label{levels: lv})
			vs = append(vs, c.values[r])
		}
	}
	names := append(f.index.Names(), f.colsName)
	ix := Index{labels: ls, names: names, nlevels: levels + 1}
	return newSeries(newColumn("", vs), ix)
}
