package frame

import (
	"bytes"
	"encoding/gob"
)

// The wire types below mirror the unexported fields so that encoding/gob
// can persist frames and series exactly.

type gobValue struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

type gobIndex struct {
	Labels  [][]gobValue
	Names   []string
	Nlevels int
}

type gobColumn struct {
	Name   string
	Label  gobValue
	Kind   Kind
	Values []gobValue
}

type gobFrame struct {
	Index    gobIndex
	Columns  []gobColumn
	ColsName string
}

type gobSeries struct {
	Index  gobIndex
	Column gobColumn
}

func toGobValue(v Value) gobValue { return gobValue{Kind: v.kind, Num: v.num, Str: v.str, Bool: v.b} }

func fromGobValue(g gobValue) Value { return Value{kind: g.Kind, num: g.Num, str: g.Str, b: g.Bool} }

func toGobIndex(ix Index) gobIndex {
	out := gobIndex{Labels: make([][]gobValue, len(ix.labels)), Names: ix.Names(), Nlevels: ix.Levels()}
	for i, l := range ix.labels {
		vs := make([]gobValue, len(l.levels))
		for j, v := range l.levels {
			vs[j] = toGobValue(v)
		}
		out.Labels[i] = vs
	}
	return out
}

func fromGobIndex(g gobIndex) Index {
	ls := make([]Label, len(g.Labels))
	for i, gl := range g.Labels {
		vs := make([]Value, len(gl))
		for j, v := range gl {
			vs[j] = fromGobValue(v)
		}
		ls[i] = Label{levels: vs}
	}
	return Index{labels: ls, names: g.Names, nlevels: g.Nlevels}
}

func toGobColumn(c *column) gobColumn {
	out := gobColumn{Name: c.name, Label: toGobValue(c.label), Kind: c.kind, Values: make([]gobValue, len(c.values))}
	for i, v := range c.values {
		out.Values[i] = toGobValue(v)
	}
	return out
}

func fromGobColumn(g gobColumn) *column {
	vs := make([]Value, len(g.Values))
	for i, v := range g.Values {
		vs[i] = fromGobValue(v)
	}
	return &column{name: g.Name, label: fromGobValue(g.Label), kind: g.Kind, values: vs}
}

func (f *Frame) GobEncode() ([]byte, error) {
	g := gobFrame{Index: toGobIndex(f.index), Columns: make([]gobColumn, len(f.cols)), ColsName: f.colsName}
	for i, c := range f.cols {
		g.Columns[i] = toGobColumn(c)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *Frame) GobDecode(data []byte) error {
	var g gobFrame
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	ix := fromGobIndex(g.Index)
	cols := make([]*column, len(g.Columns))
	for i, gc := range g.Columns {
		cols[i] = fromGobColumn(gc)
		if len(cols[i].values) != ix.Len() {
			return shapeErrorf("column %q has %d values, index has %d", gc.Name, len(cols[i].values), ix.Len())
		}
	}
	*f = Frame{index: ix, cols: cols, colsName: g.ColsName}
	return nil
}

func (s *Series) GobEncode() ([]byte, error) {
	g := gobSeries{Index: toGobIndex(s.index), Column: toGobColumn(s.col)}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Series) GobDecode(data []byte) error {
	var g gobSeries
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	ix := fromGobIndex(g.Index)
	c := fromGobColumn(g.Column)
	if len(c.values) != ix.Len() {
		return shapeErrorf("series has %d values, index has %d", len(c.values), ix.Len())
	}
	*s = Series{col: c, index: ix, own: Owned}
	return nil
}
