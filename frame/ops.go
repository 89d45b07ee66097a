package frame

import "math"

func (s *Series) compare(v interface{}, ok func(c int) bool) *Series {
	x := ValueOf(v)
	out := make([]Value, s.Len())
	for i, c := range s.col.values {
		match := !c.IsNull() && !x.IsNull() && kindRank(c.kind) == kindRank(x.kind)
		out[i] = Boolean(match && ok(Compare(c, x)))
	}
	return s.derive(out, s.index)
}

// Gt marks cells greater than v. Nulls and cells of another kind are false.
func (s *Series) Gt(v interface{}) *Series { return s.compare(v, func(c int) bool { return c > 0 }) }

func (s *Series) Ge(v interface{}) *Series { return s.compare(v, func(c int) bool { return c >= 0 }) }

func (s *Series) Lt(v interface{}) *Series { return s.compare(v, func(c int) bool { return c < 0 }) }

func (s *Series) Le(v interface{}) *Series { return s.compare(v, func(c int) bool { return c <= 0 }) }

// Eq marks cells equal to v. A null never equals anything.
func (s *Series) Eq(v interface{}) *Series {
	x := ValueOf(v)
	out := make([]Value, s.Len())
	for i, c := range s.col.values {
		out[i] = Boolean(c.Equal(x))
	}
	return s.derive(out, s.index)
}

// Ne is the negation of Eq, so nulls are always true.
func (s *Series) Ne(v interface{}) *Series {
	x := ValueOf(v)
	out := make([]Value, s.Len())
	for i, c := range s.col.values {
		out[i] = Boolean(!c.Equal(x))
	}
	return s.derive(out, s.index)
}

// And combines two boolean masks positionally.
func (s *Series) And(o *Series) (*Series, error) {
	if s.Len() != o.Len() {
		return nil, shapeErrorf("masks of length %d and %d", s.Len(), o.Len())
	}
	out := make([]Value, s.Len())
	for i := range out {
		out[i] = Boolean(s.col.values[i].Truthy() && o.col.values[i].Truthy())
	}
	return s.derive(out, s.index), nil
}

// Not negates a boolean mask; nulls become true.
func (s *Series) Not() *Series {
	out := make([]Value, s.Len())
	for i, v := range s.col.values {
		out[i] = Boolean(!v.Truthy())
	}
	return s.derive(out, s.index)
}

// Map applies fn to every cell.
func (s *Series) Map(fn func(Value) Value) *Series {
	out := make([]Value, s.Len())
	for i, v := range s.col.values {
		out[i] = fn(v)
	}
	return s.derive(out, s.index)
}

// MapFloat applies fn to every numeric cell. Nulls and non-numeric cells
// become null.
func (s *Series) MapFloat(fn func(float64) float64) *Series {
	return s.Map(func(v Value) Value {
		if v.kind != Number {
			return Value{}
		}
		return Num(fn(v.num))
	})
}

// Abs is MapFloat(math.Abs).
func (s *Series) Abs() *Series { return s.MapFloat(math.Abs) }

// MapValues applies fn to every cell of the frame.
func (f *Frame) MapValues(fn func(Value) Value) *Frame {
	return f.mapColumns(func(c *column) []Value {
		out := make([]Value, len(c.values))
		for i, v := range c.values {
			out[i] = fn(v)
		}
		return out
	})
}

// Apply reduces every column (axis Rows) or every row (axis Columns) to a
// single value. The result is indexed by column names or row labels.
func (f *Frame) Apply(fn func(*Series) Value, axis Axis) *Series {
	if axis == Columns {
		out := make([]Value, f.Len())
		for r := range out {
			out[r] = fn(f.rowSeries(r, f.index.labels[r].String()))
		}
		return newSeries(newColumn("", out), f.index)
	}
	out := make([]Value, len(f.cols))
	ls := make([]Label, len(f.cols))
	for i, c := range f.cols {
		out[i] = fn(newSeries(c.clone(), f.index))
		ls[i] = Label{levels: []Value{c.label}}
	}
	return newSeries(newColumn("", out), newIndex(ls, []string{f.colsName}))
}
