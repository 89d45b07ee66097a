package frame

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// ColumnSpec is one named column for New.
type ColumnSpec struct {
	Name   string
	Values []interface{}
}

// Col is shorthand for a ColumnSpec.
func Col(name string, values ...interface{}) ColumnSpec {
	return ColumnSpec{Name: name, Values: values}
}

// New builds a frame from ordered columns over the default range index.
func New(cols ...ColumnSpec) (*Frame, error) {
	n := 0
	if len(cols) > 0 {
		n = len(cols[0].Values)
	}
	seen := make(map[string]bool, len(cols))
	built := make([]*column, len(cols))
	for i, c := range cols {
		if len(c.Values) != n {
			return nil, shapeErrorf("column %q has %d values, expected %d", c.Name, len(c.Values), n)
		}
		if seen[c.Name] {
			return nil, schemaErrorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		built[i] = newColumn(c.Name, valuesOf(c.Values))
	}
	return newFrame(RangeIndex(n), built), nil
}

// FromColumns builds a frame from a mapping of column name to values. Go
// maps have no order, so order lists the column order; without it the
// names are sorted.
func FromColumns(data map[string][]interface{}, order ...string) (*Frame, error) {
	if len(order) == 0 {
		for k := range data {
			order = append(order, k)
		}
		sort.Strings(order)
	} else if len(order) != len(data) {
		return nil, schemaErrorf("order names %d columns, data has %d", len(order), len(data))
	}
	specs := make([]ColumnSpec, len(order))
	for i, name := range order {
		vs, ok := data[name]
		if !ok {
			return nil, schemaErrorf("column %q not in data", name)
		}
		specs[i] = Col(name, vs...)
	}
	return New(specs...)
}

// FromRecords builds a frame from row mappings. With explicit columns a
// key missing from a row is null and a key outside the columns is a schema
// error. Without columns the sorted union of keys is used.
func FromRecords(rows []map[string]interface{}, columns ...string) (*Frame, error) {
	if len(columns) == 0 {
		seen := make(map[string]bool)
		for _, r := range rows {
			for k := range r {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}
		sort.Strings(columns)
	}
	pos := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := pos[c]; dup {
			return nil, schemaErrorf("duplicate column %q", c)
		}
		pos[c] = i
	}
	data := make([][]Value, len(columns))
	for i := range data {
		data[i] = make([]Value, len(rows))
	}
	for r, row := range rows {
		for k, v := range row {
			p, ok := pos[k]
			if !ok {
				return nil, schemaErrorf("row %d has unknown column %q", r, k)
			}
			data[p][r] = ValueOf(v)
		}
	}
	cols := make([]*column, len(columns))
	for i, name := range columns {
		cols[i] = newColumn(name, data[i])
	}
	return newFrame(RangeIndex(len(rows)), cols), nil
}

// FromRows builds a frame from positional rows. A nil columns slice names
// the columns 0..n-1.
func FromRows(rows [][]interface{}, columns []string) (*Frame, error) {
	width := len(columns)
	numbered := columns == nil
	if numbered && len(rows) > 0 {
		width = len(rows[0])
	}
	data := make([][]Value, width)
	for i := range data {
		data[i] = make([]Value, len(rows))
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, shapeErrorf("row %d has %d values, expected %d", r, len(row), width)
		}
		for c, v := range row {
			data[c][r] = ValueOf(v)
		}
	}
	cols := make([]*column, width)
	for i := range cols {
		if numbered {
			cols[i] = numberedColumn(i, data[i])
		} else {
			cols[i] = newColumn(columns[i], data[i])
		}
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	return newFrame(RangeIndex(len(rows)), cols), nil
}

func numberedColumn(i int, vs []Value) *column {
	c := newColumn(strconv.Itoa(i), vs)
	c.label = Num(float64(i))
	return c
}

func uniqueNames(cols []*column) error {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.name] {
			return schemaErrorf("duplicate column %q", c.name)
		}
		seen[c.name] = true
	}
	return nil
}

// FromMatrix builds a numeric frame from a dense matrix. A nil columns
// slice names the columns 0..n-1.
func FromMatrix(m mat.Matrix, columns []string) (*Frame, error) {
	r, c := m.Dims()
	if columns != nil && len(columns) != c {
		return nil, shapeErrorf("%d column names for a matrix with %d columns", len(columns), c)
	}
	cols := make([]*column, c)
	for j := 0; j < c; j++ {
		vs := make([]Value, r)
		for i := 0; i < r; i++ {
			vs[i] = Num(m.At(i, j))
		}
		if columns == nil {
			cols[j] = numberedColumn(j, vs)
		} else {
			cols[j] = newColumn(columns[j], vs)
		}
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	return newFrame(RangeIndex(r), cols), nil
}

// FromTensor builds a numeric frame from a two-dimensional tensor.
func FromTensor(t tensor.Tensor, columns []string) (*Frame, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, shapeErrorf("tensor has %d dimensions, expected 2", len(shape))
	}
	r, c := shape[0], shape[1]
	if columns != nil && len(columns) != c {
		return nil, shapeErrorf("%d column names for a tensor with %d columns", len(columns), c)
	}
	cols := make([]*column, c)
	for j := 0; j < c; j++ {
		vs := make([]Value, r)
		for i := 0; i < r; i++ {
			x, err := t.At(i, j)
			if err != nil {
				return nil, indexErrorf("tensor cell (%d, %d): %v", i, j, err)
			}
			vs[i] = ValueOf(x)
		}
		if columns == nil {
			cols[j] = numberedColumn(j, vs)
		} else {
			cols[j] = newColumn(columns[j], vs)
		}
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	return newFrame(RangeIndex(r), cols), nil
}

// FromSeries assembles a frame from series laid out on ix. Series keep
// their names and column labels.
func FromSeries(ix Index, series ...*Series) (*Frame, error) {
	cols := make([]*column, len(series))
	for i, s := range series {
		if s.Len() != ix.Len() {
			return nil, shapeErrorf("series %q has length %d, index has %d", s.Name(), s.Len(), ix.Len())
		}
		cols[i] = s.col.clone()
	}
	if err := uniqueNames(cols); err != nil {
		return nil, err
	}
	return newFrame(ix, cols), nil
}

// ToMatrix extracts the numeric tensor. Null cells become NaN.
func (f *Frame) ToMatrix() (*mat.Dense, error) {
	r, c := f.Shape()
	if r == 0 || c == 0 {
		return nil, shapeErrorf("cannot build a matrix from shape (%d, %d)", r, c)
	}
	data := make([]float64, 0, r*c)
	for _, col := range f.cols {
		if col.kind != Number && col.kind != Bool && col.kind != Null {
			return nil, schemaErrorf("column %q is %s, not numeric", col.name, col.kind)
		}
	}
	for i := 0; i < r; i++ {
		for _, col := range f.cols {
			x, _ := col.values[i].Float()
			data = append(data, x)
		}
	}
	return mat.NewDense(r, c, data), nil
}
