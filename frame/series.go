package frame

import (
	"math"
	"sort"
	"strings"
)

// Ownership tells whether a Series owns its storage or shares it with the
// Frame it was taken from.
type Ownership uint8

const (
	// Owned series are independent copies.
	Owned Ownership = iota
	// View series share storage with a Frame column: Set on the view is
	// visible in the Frame and the other way round.
	View
)

func (o Ownership) String() string {
	if o == View {
		return "view"
	}
	return "owned"
}

type column struct {
	name   string
	label  Value
	values []Value
	kind   Kind
}

func newColumn(name string, values []Value) *column {
	return &column{name: name, label: Str(name), values: values, kind: inferKind(values)}
}

func (c *column) clone() *column {
	return &column{name: c.name, label: c.label, values: append([]Value(nil), c.values...), kind: c.kind}
}

func (c *column) take(pos []int) *column {
	vs := make([]Value, len(pos))
	for i, p := range pos {
		if p < 0 {
			continue
		}
		vs[i] = c.values[p]
	}
	return &column{name: c.name, label: c.label, values: vs, kind: inferKind(vs)}
}

func (c *column) set(i int, v Value) {
	c.values[i] = v
	c.kind = mergeKind(c.kind, v.kind)
}

// Series is a single column of values with its row index.
type Series struct {
	col   *column
	index Index
	own   Ownership
}

// NewSeries builds an owned series. Without index labels the series gets
// the default range index.
func NewSeries(name string, values []interface{}, index ...interface{}) (*Series, error) {
	vs := valuesOf(values)
	if len(index) == 0 {
		return newSeries(newColumn(name, vs), RangeIndex(len(vs))), nil
	}
	ix, err := NewIndex(index...)
	if err != nil {
		return nil, err
	}
	return SeriesOn(name, vs, ix)
}

// SeriesOn builds an owned series over an existing index.
func SeriesOn(name string, values []Value, ix Index) (*Series, error) {
	if len(values) != ix.Len() {
		return nil, shapeErrorf("%d values for an index of length %d", len(values), ix.Len())
	}
	return newSeries(newColumn(name, append([]Value(nil), values...)), ix), nil
}

// SeriesFromMap builds a series whose labels are the sorted keys of m.
func SeriesFromMap(name string, m map[string]interface{}) *Series {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ls := make([]Label, len(keys))
	vs := make([]Value, len(keys))
	for i, k := range keys {
		ls[i] = L(k)
		vs[i] = ValueOf(m[k])
	}
	return newSeries(newColumn(name, vs), newIndex(ls, nil))
}

func newSeries(c *column, ix Index) *Series {
	return &Series{col: c, index: ix, own: Owned}
}

func (s *Series) derive(values []Value, ix Index) *Series {
	c := &column{name: s.col.name, label: s.col.label, values: values, kind: inferKind(values)}
	return newSeries(c, ix)
}

func (s *Series) Name() string { return s.col.name }

// Label is the value the series was named from. It differs from Str(Name())
// only for columns produced by Unstack.
func (s *Series) Label() Value { return s.col.label }

func (s *Series) Len() int { return len(s.col.values) }

func (s *Series) Kind() Kind { return s.col.kind }

func (s *Series) Index() Index { return s.index }

func (s *Series) Ownership() Ownership { return s.own }

func (s *Series) IsView() bool { return s.own == View }

// Values returns a copy of the cells.
func (s *Series) Values() []Value { return append([]Value(nil), s.col.values...) }

// Float64s returns the cells as floats; nulls and non-numeric cells are NaN.
func (s *Series) Float64s() []float64 {
	out := make([]float64, len(s.col.values))
	for i, v := range s.col.values {
		f, ok := v.Float()
		if !ok {
			f = math.NaN()
		}
		out[i] = f
	}
	return out
}

// At returns the cell at position i.
func (s *Series) At(i int) (Value, error) {
	if i < 0 || i >= s.Len() {
		return Value{}, indexErrorf("position %d out of bounds for length %d", i, s.Len())
	}
	return s.col.values[i], nil
}

// Set overwrites the cell at position i. On a view the source Frame sees
// the change.
func (s *Series) Set(i int, v interface{}) error {
	if i < 0 || i >= s.Len() {
		return indexErrorf("position %d out of bounds for length %d", i, s.Len())
	}
	s.col.set(i, ValueOf(v))
	return nil
}

// SetLabel overwrites every cell whose label matches.
func (s *Series) SetLabel(label interface{}, v interface{}) error {
	pos := s.index.Positions(LabelOf(label))
	if len(pos) == 0 {
		return keyErrorf("label %v not found", label)
	}
	val := ValueOf(v)
	for _, p := range pos {
		s.col.set(p, val)
	}
	return nil
}

// Copy returns an owned copy.
func (s *Series) Copy() *Series {
	return newSeries(s.col.clone(), s.index)
}

// Rename returns an owned copy under another name.
func (s *Series) Rename(name string) *Series {
	c := s.col.clone()
	c.name = name
	c.label = Str(name)
	return newSeries(c, s.index)
}

func (s *Series) take(pos []int) *Series {
	return newSeries(s.col.take(pos), s.index.take(pos))
}

// Contains reports whether the label occurs in the index.
func (s *Series) Contains(label interface{}) bool {
	return s.index.Contains(LabelOf(label))
}

// Get returns every cell carrying the label, as a series.
func (s *Series) Get(label interface{}) (*Series, error) {
	pos := s.index.Positions(LabelOf(label))
	if len(pos) == 0 {
		return nil, keyErrorf("label %v not found", label)
	}
	return s.take(pos), nil
}

// Value returns the single cell carrying the label. A missing or
// repeated label is a key error.
func (s *Series) Value(label interface{}) (Value, error) {
	l := LabelOf(label)
	if l.Len() != s.index.Levels() {
		return Value{}, keyErrorf("label %v does not address a single cell", label)
	}
	pos := s.index.Positions(l)
	switch len(pos) {
	case 0:
		return Value{}, keyErrorf("label %v not found", label)
	case 1:
		return s.col.values[pos[0]], nil
	}
	return Value{}, keyErrorf("label %v is not unique", label)
}

// Loc selects by label. The result is an owned copy.
func (s *Series) Loc(sel LabelSel) (*Series, error) {
	pos, err := sel.positions(s.index)
	if err != nil {
		return nil, err
	}
	return s.take(pos), nil
}

// ILoc selects by position. The result is an owned copy.
func (s *Series) ILoc(sel PosSel) (*Series, error) {
	pos, err := sel.positions(s.Len())
	if err != nil {
		return nil, err
	}
	return s.take(pos), nil
}

// Filter keeps the cells where mask is true.
func (s *Series) Filter(mask *Series) (*Series, error) {
	pos, err := maskPositions(mask, s.Len())
	if err != nil {
		return nil, err
	}
	return s.take(pos), nil
}

// Head returns the first n cells.
func (s *Series) Head(n int) *Series {
	if n > s.Len() {
		n = s.Len()
	}
	return s.take(rangePositions(0, n))
}

// WithIndex overwrites the labels positionally. Nothing is aligned: the i-th
// cell simply receives the i-th new label.
func (s *Series) WithIndex(labels ...interface{}) (*Series, error) {
	ix, err := NewIndex(labels...)
	if err != nil {
		return nil, err
	}
	if ix.Len() != s.Len() {
		return nil, shapeErrorf("%d labels for length %d", ix.Len(), s.Len())
	}
	return newSeries(s.col.clone(), ix), nil
}

// Equal reports exact equality of name, labels, kind and cells, null
// placement included.
func (s *Series) Equal(o *Series) bool {
	if s.col.name != o.col.name || !s.col.label.Same(o.col.label) || s.col.kind != o.col.kind {
		return false
	}
	if !s.index.Equal(o.index) || len(s.col.values) != len(o.col.values) {
		return false
	}
	for i, v := range s.col.values {
		if !v.Same(o.col.values[i]) {
			return false
		}
	}
	return true
}

func (s *Series) String() string {
	rows := make([][]string, s.Len())
	for i := range rows {
		rows[i] = []string{s.index.labels[i].String(), s.col.values[i].String()}
	}
	var sb strings.Builder
	writeTable(&sb, nil, rows)
	sb.WriteString("Name: " + s.col.name + ", kind: " + s.col.kind.String() + "\n")
	return sb.String()
}

func rangePositions(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}
	return out
}

func maskPositions(mask *Series, n int) ([]int, error) {
	if mask.Len() != n {
		return nil, shapeErrorf("mask of length %d for length %d", mask.Len(), n)
	}
	if k := mask.Kind(); k != Bool && k != Null {
		return nil, schemaErrorf("mask must be boolean, got %s", k)
	}
	var pos []int
	for i, v := range mask.col.values {
		if v.Truthy() {
			pos = append(pos, i)
		}
	}
	return pos, nil
}
