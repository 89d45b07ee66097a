package frame

import (
	"math"
	"sort"
)

// alignIndex returns the union of two indexes together with, for each
// union label, its position in a and in b (-1 when absent). Identical
// indexes are kept as they are; otherwise the union is sorted.
func alignIndex(a, b Index) (Index, []int, []int, error) {
	if a.sameLabels(b) {
		pos := rangePositions(0, a.Len())
		return a, pos, pos, nil
	}
	if a.Len() > 0 && b.Len() > 0 && a.Levels() != b.Levels() {
		return Index{}, nil, nil, shapeErrorf("cannot align %d-level and %d-level indexes", a.Levels(), b.Levels())
	}
	if !a.IsUnique() || !b.IsUnique() {
		return Index{}, nil, nil, keyErrorf("cannot align indexes with duplicate labels")
	}
	la, lb := a.lookup(), b.lookup()
	union := a.Labels()
	for _, l := range b.labels {
		if _, ok := la[l.key()]; !ok {
			union = append(union, l)
		}
	}
	sort.SliceStable(union, func(i, j int) bool { return compareLabels(union[i], union[j]) < 0 })
	pa := make([]int, len(union))
	pb := make([]int, len(union))
	for i, l := range union {
		pa[i], pb[i] = -1, -1
		if p, ok := la[l.key()]; ok {
			pa[i] = p[0]
		}
		if p, ok := lb[l.key()]; ok {
			pb[i] = p[0]
		}
	}
	ix := newIndex(union, nil)
	if a.Len() > 0 {
		ix = ix.WithNames(a.Names()...)
	}
	return ix, pa, pb, nil
}

func pick(vs []Value, pos []int) []Value {
	out := make([]Value, len(pos))
	for i, p := range pos {
		if p >= 0 {
			out[i] = vs[p]
		}
	}
	return out
}

// Align lays both series out on the union of their labels. A label found
// in only one operand yields the null marker on the other side. Every
// binary operator on series goes through Align.
func Align(a, b *Series) (Index, []Value, []Value, error) {
	ix, pa, pb, err := alignIndex(a.index, b.index)
	if err != nil {
		return Index{}, nil, nil, err
	}
	return ix, pick(a.col.values, pa), pick(b.col.values, pb), nil
}

// BinaryFunc combines two aligned cells.
type BinaryFunc func(a, b Value) Value

func numeric(fn func(x, y float64) float64) BinaryFunc {
	return func(a, b Value) Value {
		if a.kind != Number && a.kind != Bool || b.kind != Number && b.kind != Bool {
			return Value{}
		}
		x, _ := a.Float()
		y, _ := b.Float()
		return Num(fn(x, y))
	}
}

var (
	addFunc BinaryFunc = func(a, b Value) Value {
		if a.kind == Text && b.kind == Text {
			return Str(a.str + b.str)
		}
		return numeric(func(x, y float64) float64 { return x + y })(a, b)
	}
	subFunc = numeric(func(x, y float64) float64 { return x - y })
	mulFunc = numeric(func(x, y float64) float64 { return x * y })
	divFunc = numeric(func(x, y float64) float64 {
		if y == 0 {
			switch {
			case x > 0:
				return math.Inf(1)
			case x < 0:
				return math.Inf(-1)
			}
			return math.NaN()
		}
		return x / y
	})
)

// Combine aligns s and o, then applies fn cell by cell.
func (s *Series) Combine(o *Series, fn BinaryFunc) (*Series, error) {
	ix, av, bv, err := Align(s, o)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(av))
	for i := range av {
		out[i] = fn(av[i], bv[i])
	}
	name := s.col.name
	if o.col.name != name {
		name = ""
	}
	return newSeries(newColumn(name, out), ix), nil
}

func (s *Series) Add(o *Series) (*Series, error) { return s.Combine(o, addFunc) }

func (s *Series) Sub(o *Series) (*Series, error) { return s.Combine(o, subFunc) }

func (s *Series) Mul(o *Series) (*Series, error) { return s.Combine(o, mulFunc) }

func (s *Series) Div(o *Series) (*Series, error) { return s.Combine(o, divFunc) }

func (s *Series) scalar(v interface{}, fn BinaryFunc) *Series {
	x := ValueOf(v)
	out := make([]Value, s.Len())
	for i, c := range s.col.values {
		out[i] = fn(c, x)
	}
	return s.derive(out, s.index)
}

// AddScalar adds v to every cell.
func (s *Series) AddScalar(v interface{}) *Series { return s.scalar(v, addFunc) }

// MulScalar multiplies every cell by v.
func (s *Series) MulScalar(v interface{}) *Series { return s.scalar(v, mulFunc) }

// Combine aligns both frames on rows and columns, then applies fn cell by
// cell. Columns found in only one frame are entirely null.
func (f *Frame) Combine(o *Frame, fn BinaryFunc) (*Frame, error) {
	ix, pa, pb, err := alignIndex(f.index, o.index)
	if err != nil {
		return nil, err
	}
	names := f.Columns()
	same := len(names) == len(o.cols)
	for i, c := range o.cols {
		if same && names[i] != c.name {
			same = false
		}
	}
	if !same {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			seen[n] = true
		}
		for _, c := range o.cols {
			if !seen[c.name] {
				names = append(names, c.name)
			}
		}
		sort.Strings(names)
	}
	cols := make([]*column, len(names))
	for i, name := range names {
		fp, fok := f.colPos(name)
		op, ook := o.colPos(name)
		out := make([]Value, ix.Len())
		if fok && ook {
			av := pick(f.cols[fp].values, pa)
			bv := pick(o.cols[op].values, pb)
			for r := range out {
				out[r] = fn(av[r], bv[r])
			}
		}
		cols[i] = newColumn(name, out)
		if fok {
			cols[i].label = f.cols[fp].label
		} else if ook {
			cols[i].label = o.cols[op].label
		}
	}
	return &Frame{index: ix, cols: cols, colsName: f.colsName}, nil
}

func (f *Frame) Add(o *Frame) (*Frame, error) { return f.Combine(o, addFunc) }

func (f *Frame) Sub(o *Frame) (*Frame, error) { return f.Combine(o, subFunc) }

func (f *Frame) Mul(o *Frame) (*Frame, error) { return f.Combine(o, mulFunc) }

func (f *Frame) Div(o *Frame) (*Frame, error) { return f.Combine(o, divFunc) }
