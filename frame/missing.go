package frame

// How decides when DropNA removes a row or column.
type How uint8

const (
	// Any drops when at least one cell is null.
	Any How = iota
	// All drops only when every cell is null.
	All
)

// Axis picks rows or columns.
type Axis uint8

const (
	Rows Axis = iota
	Columns
)

func nullMask(vs []Value, want bool) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Boolean(v.IsNull() == want)
	}
	return out
}

// IsNull marks null cells true.
func (s *Series) IsNull() *Series { return s.derive(nullMask(s.col.values, true), s.index) }

// NotNull marks non-null cells true.
func (s *Series) NotNull() *Series { return s.derive(nullMask(s.col.values, false), s.index) }

// DropNA removes null cells.
func (s *Series) DropNA() *Series {
	var keep []int
	for i, v := range s.col.values {
		if !v.IsNull() {
			keep = append(keep, i)
		}
	}
	return s.take(keep)
}

// FillNA replaces every null cell with v.
func (s *Series) FillNA(v interface{}) *Series {
	return s.derive(fillValues(s.col.values, ValueOf(v)), s.index)
}

// FFill replaces each null with the closest preceding non-null cell. A
// leading null stays null.
func (s *Series) FFill() *Series {
	return s.derive(ffillValues(s.col.values), s.index)
}

// Replace substitutes cells matching a key of m. Matching uses Same, so a
// null key replaces nulls.
func (s *Series) Replace(m map[Value]Value) *Series {
	return s.derive(replaceValues(s.col.values, m), s.index)
}

func fillValues(vs []Value, fill Value) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		if v.IsNull() {
			v = fill
		}
		out[i] = v
	}
	return out
}

func ffillValues(vs []Value) []Value {
	out := make([]Value, len(vs))
	last := Value{}
	for i, v := range vs {
		if v.IsNull() {
			v = last
		} else {
			last = v
		}
		out[i] = v
	}
	return out
}

func replaceValues(vs []Value, m map[Value]Value) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		if r, ok := m[v]; ok {
			v = r
		}
		out[i] = v
	}
	return out
}

func (f *Frame) mapColumns(fn func(c *column) []Value) *Frame {
	cols := make([]*column, len(f.cols))
	for i, c := range f.cols {
		vs := fn(c)
		cols[i] = &column{name: c.name, label: c.label, values: vs, kind: inferKind(vs)}
	}
	return f.withCols(cols)
}

// IsNull returns a same-shaped boolean frame marking null cells.
func (f *Frame) IsNull() *Frame {
	return f.mapColumns(func(c *column) []Value { return nullMask(c.values, true) })
}

// NotNull returns a same-shaped boolean frame marking non-null cells.
func (f *Frame) NotNull() *Frame {
	return f.mapColumns(func(c *column) []Value { return nullMask(c.values, false) })
}

// AnyNull reports whether any cell is null.
func (f *Frame) AnyNull() bool {
	for _, c := range f.cols {
		for _, v := range c.values {
			if v.IsNull() {
				return true
			}
		}
	}
	return false
}

func dropped(nulls, total int, how How) bool {
	if how == All {
		return total > 0 && nulls == total
	}
	return nulls > 0
}

func (f *Frame) dropNA(how How, axis Axis, cols []*column) *Frame {
	if axis == Columns {
		var keep []*column
		for _, c := range f.cols {
			nulls := 0
			for _, v := range c.values {
				if v.IsNull() {
					nulls++
				}
			}
			if !dropped(nulls, len(c.values), how) {
				keep = append(keep, c.clone())
			}
		}
		return f.withCols(keep)
	}
	var keep []int
	for r := 0; r < f.Len(); r++ {
		nulls := 0
		for _, c := range cols {
			if c.values[r].IsNull() {
				nulls++
			}
		}
		if !dropped(nulls, len(cols), how) {
			keep = append(keep, r)
		}
	}
	return f.take(keep)
}

// DropNA removes rows (axis Rows) or columns (axis Columns) holding nulls
// according to how. Survivors keep their order.
func (f *Frame) DropNA(how How, axis Axis) *Frame {
	return f.dropNA(how, axis, f.cols)
}

// DropNAInPlace is DropNA applied to the receiver. Views taken earlier
// keep the old storage.
func (f *Frame) DropNAInPlace(how How, axis Axis) {
	*f = *f.dropNA(how, axis, f.cols)
}

// DropNASubset removes rows by looking only at the named columns.
func (f *Frame) DropNASubset(how How, names ...string) (*Frame, error) {
	pos, err := f.mustCols(names)
	if err != nil {
		return nil, err
	}
	cols := make([]*column, len(pos))
	for i, p := range pos {
		cols[i] = f.cols[p]
	}
	return f.dropNA(how, Rows, cols), nil
}

// FillNA replaces every null cell with v.
func (f *Frame) FillNA(v interface{}) *Frame {
	fill := ValueOf(v)
	return f.mapColumns(func(c *column) []Value { return fillValues(c.values, fill) })
}

// FillNAInPlace replaces every null cell of the receiver with v. Views on
// the receiver see the change.
func (f *Frame) FillNAInPlace(v interface{}) {
	fill := ValueOf(v)
	for _, c := range f.cols {
		for i, x := range c.values {
			if x.IsNull() {
				c.set(i, fill)
			}
		}
	}
}

// FillNAColumns fills nulls only in the named columns, each with its own
// value.
func (f *Frame) FillNAColumns(values map[string]interface{}) (*Frame, error) {
	fills := make(map[string]Value, len(values))
	for name, v := range values {
		if !f.HasColumn(name) {
			return nil, keyErrorf("column %q not found", name)
		}
		fills[name] = ValueOf(v)
	}
	return f.mapColumns(func(c *column) []Value {
		if fill, ok := fills[c.name]; ok {
			return fillValues(c.values, fill)
		}
		return append([]Value(nil), c.values...)
	}), nil
}

// FFill forward-fills every column in index order.
func (f *Frame) FFill() *Frame {
	return f.mapColumns(func(c *column) []Value { return ffillValues(c.values) })
}

// Replace substitutes matching cells in every column.
func (f *Frame) Replace(m map[Value]Value) *Frame {
	return f.mapColumns(func(c *column) []Value { return replaceValues(c.values, m) })
}
