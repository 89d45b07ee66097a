// Package frame is a small in-memory engine for labelled tabular data.
//
// A Frame is an ordered set of equally long columns plus a row index. Cells
// are tagged Values (number, text, bool or the null marker) whose column
// kind is decided once, when the column is built. Row labels may be single
// values or tuples (hierarchical indexes).
//
// Every transformation returns a new Frame unless the method name ends in
// InPlace. Col returns a view that shares storage with the Frame; every
// other accessor returns an owned copy.
package frame

import (
	"sort"
	"strings"
)

// Frame is a labelled two-dimensional table.
type Frame struct {
	index    Index
	cols     []*column
	colsName string
}

func newFrame(ix Index, cols []*column) *Frame {
	return &Frame{index: ix, cols: cols}
}

func (f *Frame) Len() int { return f.index.Len() }

// Shape returns the number of rows and columns.
func (f *Frame) Shape() (int, int) { return f.index.Len(), len(f.cols) }

func (f *Frame) Index() Index { return f.index }

func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.name
	}
	return out
}

// ColumnLabels returns the values the columns were named from.
func (f *Frame) ColumnLabels() []Value {
	out := make([]Value, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.label
	}
	return out
}

func (f *Frame) Kinds() []Kind {
	out := make([]Kind, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.kind
	}
	return out
}

// ColumnsName is the name of the column axis.
func (f *Frame) ColumnsName() string { return f.colsName }

func (f *Frame) SetColumnsName(name string) { f.colsName = name }

// SetIndexNames names the levels of the row index.
func (f *Frame) SetIndexNames(names ...string) { f.index = f.index.WithNames(names...) }

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.colPos(name)
	return ok
}

func (f *Frame) colPos(name string) (int, bool) {
	for i, c := range f.cols {
		if c.name == name {
			return i, true
		}
	}
	return -1, false
}

func (f *Frame) mustCols(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		p, ok := f.colPos(n)
		if !ok {
			return nil, keyErrorf("column %q not found", n)
		}
		out[i] = p
	}
	return out, nil
}

// Col returns the named column as a view: writes through the series are
// visible in the frame.
func (f *Frame) Col(name string) (*Series, error) {
	p, ok := f.colPos(name)
	if !ok {
		return nil, keyErrorf("column %q not found", name)
	}
	return &Series{col: f.cols[p], index: f.index, own: View}, nil
}

// Column returns an owned copy of the named column.
func (f *Frame) Column(name string) (*Series, error) {
	s, err := f.Col(name)
	if err != nil {
		return nil, err
	}
	return s.Copy(), nil
}

// ColAt returns the column at position i as a view.
func (f *Frame) ColAt(i int) (*Series, error) {
	if i < 0 || i >= len(f.cols) {
		return nil, indexErrorf("column position %d out of bounds for %d columns", i, len(f.cols))
	}
	return &Series{col: f.cols[i], index: f.index, own: View}, nil
}

// Copy returns a deep copy.
func (f *Frame) Copy() *Frame {
	cols := make([]*column, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.clone()
	}
	return &Frame{index: f.index, cols: cols, colsName: f.colsName}
}

func (f *Frame) withCols(cols []*column) *Frame {
	return &Frame{index: f.index, cols: cols, colsName: f.colsName}
}

func (f *Frame) take(pos []int) *Frame {
	cols := make([]*column, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.take(pos)
	}
	return &Frame{index: f.index.take(pos), cols: cols, colsName: f.colsName}
}

func (f *Frame) Head(n int) *Frame {
	if n > f.Len() {
		n = f.Len()
	}
	return f.take(rangePositions(0, n))
}

func (f *Frame) Tail(n int) *Frame {
	if n > f.Len() {
		n = f.Len()
	}
	return f.take(rangePositions(f.Len()-n, f.Len()))
}

// Values returns the cells row by row.
func (f *Frame) Values() [][]Value {
	out := make([][]Value, f.Len())
	for r := range out {
		row := make([]Value, len(f.cols))
		for c, col := range f.cols {
			row[c] = col.values[r]
		}
		out[r] = row
	}
	return out
}

// At returns the cell at row position r and column position c.
func (f *Frame) At(r, c int) (Value, error) {
	if r < 0 || r >= f.Len() || c < 0 || c >= len(f.cols) {
		return Value{}, indexErrorf("cell (%d, %d) out of bounds for shape (%d, %d)", r, c, f.Len(), len(f.cols))
	}
	return f.cols[c].values[r], nil
}

// Loc selects rows by label and, optionally, columns by name.
func (f *Frame) Loc(rows LabelSel, cols ...string) (*Frame, error) {
	pos, err := rows.positions(f.index)
	if err != nil {
		return nil, err
	}
	out := f.take(pos)
	if len(cols) == 0 {
		return out, nil
	}
	return out.Select(cols...)
}

// ILoc selects rows and columns by position.
func (f *Frame) ILoc(rows, cols PosSel) (*Frame, error) {
	rpos, err := rows.positions(f.Len())
	if err != nil {
		return nil, err
	}
	cpos, err := cols.positions(len(f.cols))
	if err != nil {
		return nil, err
	}
	picked := make([]*column, len(cpos))
	for i, p := range cpos {
		picked[i] = f.cols[p]
	}
	return f.withCols(picked).take(rpos), nil
}

// Select returns a copy holding only the named columns, in that order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	pos, err := f.mustCols(names)
	if err != nil {
		return nil, err
	}
	cols := make([]*column, len(pos))
	for i, p := range pos {
		cols[i] = f.cols[p].clone()
	}
	return f.withCols(cols), nil
}

// Filter keeps the rows where mask is true. The mask is matched by
// position and must have the frame's length.
func (f *Frame) Filter(mask *Series) (*Frame, error) {
	pos, err := maskPositions(mask, f.Len())
	if err != nil {
		return nil, err
	}
	return f.take(pos), nil
}

// Row returns the single row carrying label as a series over the column
// names.
func (f *Frame) Row(label interface{}) (*Series, error) {
	l := LabelOf(label)
	p, ok := uniquePosition(f.index, l)
	if !ok {
		if !f.index.Contains(l) {
			return nil, keyErrorf("label %v not found", label)
		}
		return nil, keyErrorf("label %v does not address a single row", label)
	}
	return f.rowSeries(p, l.String()), nil
}

// RowAt returns the row at position i as a series over the column names.
func (f *Frame) RowAt(i int) (*Series, error) {
	if i < 0 || i >= f.Len() {
		return nil, indexErrorf("row %d out of bounds for length %d", i, f.Len())
	}
	return f.rowSeries(i, f.index.labels[i].String()), nil
}

func (f *Frame) rowSeries(p int, name string) *Series {
	vs := make([]Value, len(f.cols))
	ls := make([]Label, len(f.cols))
	for i, c := range f.cols {
		vs[i] = c.values[p]
		ls[i] = Label{levels: []Value{c.label}}
	}
	return newSeries(newColumn(name, vs), newIndex(ls, []string{f.colsName}))
}

func (f *Frame) dropPositions(labels []interface{}) ([]int, error) {
	drop := make(map[int]bool)
	for _, x := range labels {
		pos := f.index.Positions(LabelOf(x))
		if len(pos) == 0 {
			return nil, keyErrorf("label %v not found", x)
		}
		for _, p := range pos {
			drop[p] = true
		}
	}
	keep := make([]int, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return keep, nil
}

// Drop removes the rows carrying any of the labels.
func (f *Frame) Drop(labels ...interface{}) (*Frame, error) {
	keep, err := f.dropPositions(labels)
	if err != nil {
		return nil, err
	}
	return f.take(keep), nil
}

// DropInPlace removes rows from the receiver. Views taken earlier keep the
// old storage.
func (f *Frame) DropInPlace(labels ...interface{}) error {
	keep, err := f.dropPositions(labels)
	if err != nil {
		return err
	}
	*f = *f.take(keep)
	return nil
}

// DropColumns removes the named columns.
func (f *Frame) DropColumns(names ...string) (*Frame, error) {
	if _, err := f.mustCols(names); err != nil {
		return nil, err
	}
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	var cols []*column
	for _, c := range f.cols {
		if !skip[c.name] {
			cols = append(cols, c.clone())
		}
	}
	return f.withCols(cols), nil
}

// DeleteColumn removes a column from the receiver.
func (f *Frame) DeleteColumn(name string) error {
	p, ok := f.colPos(name)
	if !ok {
		return keyErrorf("column %q not found", name)
	}
	f.cols = append(f.cols[:p:p], f.cols[p+1:]...)
	return nil
}

func (f *Frame) putColumn(c *column) {
	if p, ok := f.colPos(c.name); ok {
		c.label = f.cols[p].label
		f.cols[p] = c
		return
	}
	f.cols = append(f.cols, c)
}

// SetScalar sets every cell of the column to v, adding the column when it
// does not exist.
func (f *Frame) SetScalar(name string, v interface{}) {
	val := ValueOf(v)
	vs := make([]Value, f.Len())
	for i := range vs {
		vs[i] = val
	}
	f.putColumn(newColumn(name, vs))
}

// SetValues replaces or adds a column positionally.
func (f *Frame) SetValues(name string, values ...interface{}) error {
	if len(values) != f.Len() {
		return shapeErrorf("%d values for a frame of length %d", len(values), f.Len())
	}
	f.putColumn(newColumn(name, valuesOf(values)))
	return nil
}

// SetSeries replaces or adds a column, aligning s by label: rows whose
// label s lacks receive the null marker.
func (f *Frame) SetSeries(name string, s *Series) error {
	if s.index.sameLabels(f.index) {
		f.putColumn(newColumn(name, s.Values()))
		return nil
	}
	if !s.index.IsUnique() {
		return keyErrorf("cannot align a series with duplicate labels")
	}
	lookup := s.index.lookup()
	vs := make([]Value, f.Len())
	for i, l := range f.index.labels {
		if p, ok := lookup[l.key()]; ok {
			vs[i] = s.col.values[p[0]]
		}
	}
	f.putColumn(newColumn(name, vs))
	return nil
}

// SetRow sets every cell of the rows carrying label to v. An absent label
// is appended as a new row; views taken earlier keep the old storage.
func (f *Frame) SetRow(label interface{}, v interface{}) error {
	l := LabelOf(label)
	val := ValueOf(v)
	pos := f.index.Positions(l)
	if len(pos) == 0 {
		if l.Len() != f.index.Levels() {
			return shapeErrorf("label %v has %d levels, index has %d", l, l.Len(), f.index.Levels())
		}
		cols := make([]*column, len(f.cols))
		for i, c := range f.cols {
			cols[i] = c.clone()
			cols[i].values = append(cols[i].values, val)
			cols[i].kind = mergeKind(c.kind, val.kind)
		}
		ls := append(f.index.Labels(), l)
		f.index = Index{labels: ls, names: f.index.Names(), nlevels: l.Len()}
		f.cols = cols
		return nil
	}
	for _, c := range f.cols {
		for _, p := range pos {
			c.set(p, val)
		}
	}
	return nil
}

// SetIndexLabels overwrites the row labels positionally. No row moves and
// no null marker is introduced; see Reindex for the aligning variant.
func (f *Frame) SetIndexLabels(labels ...interface{}) error {
	ix, err := NewIndex(labels...)
	if err != nil {
		return err
	}
	if ix.Len() != f.Len() {
		return shapeErrorf("%d labels for a frame of length %d", ix.Len(), f.Len())
	}
	f.index = ix
	return nil
}

// WithIndex is SetIndexLabels on a copy.
func (f *Frame) WithIndex(labels ...interface{}) (*Frame, error) {
	out := f.Copy()
	if err := out.SetIndexLabels(labels...); err != nil {
		return nil, err
	}
	return out, nil
}

// SortByColumn orders rows by one column. Nulls go last. The sort is
// stable.
func (f *Frame) SortByColumn(name string, ascending bool) (*Frame, error) {
	p, ok := f.colPos(name)
	if !ok {
		return nil, keyErrorf("column %q not found", name)
	}
	vs := f.cols[p].values
	pos := rangePositions(0, f.Len())
	sort.SliceStable(pos, func(a, b int) bool {
		va, vb := vs[pos[a]], vs[pos[b]]
		if va.IsNull() || vb.IsNull() {
			return !va.IsNull() && vb.IsNull()
		}
		if ascending {
			return Compare(va, vb) < 0
		}
		return Compare(va, vb) > 0
	})
	return f.take(pos), nil
}

// SortIndex orders rows by label.
func (f *Frame) SortIndex() *Frame {
	return f.take(f.index.sortedPositions())
}

// Equal reports exact equality: index, column names and labels, kinds and
// every cell including null placement.
func (f *Frame) Equal(o *Frame) bool {
	if len(f.cols) != len(o.cols) || f.colsName != o.colsName || !f.index.Equal(o.index) {
		return false
	}
	for i, c := range f.cols {
		oc := o.cols[i]
		if c.name != oc.name || !c.label.Same(oc.label) || c.kind != oc.kind {
			return false
		}
		for j, v := range c.values {
			if !v.Same(oc.values[j]) {
				return false
			}
		}
	}
	return true
}

func (f *Frame) String() string {
	levels := f.index.Levels()
	header := append(f.index.Names(), f.Columns()...)
	rows := make([][]string, f.Len())
	for r := range rows {
		row := make([]string, 0, levels+len(f.cols))
		for _, v := range f.index.labels[r].levels {
			row = append(row, v.String())
		}
		for _, c := range f.cols {
			row = append(row, c.values[r].String())
		}
		rows[r] = row
	}
	var sb strings.Builder
	writeTable(&sb, header, rows)
	return sb.String()
}
