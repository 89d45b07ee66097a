package frameio

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"berkotech.co/datawrangling/frame"
)

// ToGota converts the columns of f to a gota DataFrame. gota has no row
// index, so the labels are dropped. Null cells become gota NaN elements.
func ToGota(f *frame.Frame) (dataframe.DataFrame, error) {
	names := f.Columns()
	kinds := f.Kinds()
	rows := f.Values()

	ss := make([]series.Series, len(names))
	for c, name := range names {
		tokens := make([]string, len(rows))
		for r, row := range rows {
			tokens[r] = row[c].String()
		}
		var t series.Type
		switch kinds[c] {
		case frame.Number, frame.Null:
			t = series.Float
		case frame.Bool:
			t = series.Bool
		default:
			t = series.String
		}
		ss[c] = series.New(tokens, t, name)
	}

	df := dataframe.New(ss...)
	if df.Err != nil {
		return df, fmt.Errorf("failed to build gota frame: %w", df.Err)
	}
	return df, nil
}

// FromGota converts a gota DataFrame to a frame over the default index.
func FromGota(df dataframe.DataFrame) (*frame.Frame, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("gota frame carries an error: %w", df.Err)
	}
	names := df.Names()
	specs := make([]frame.ColumnSpec, len(names))
	for c, name := range names {
		s := df.Col(name)
		vs := make([]interface{}, s.Len())
		for i := range vs {
			e := s.Elem(i)
			if e.IsNA() {
				continue
			}
			switch s.Type() {
			case series.Float:
				vs[i] = e.Float()
			case series.Int:
				n, err := e.Int()
				if err != nil {
					return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
				}
				vs[i] = float64(n)
			case series.Bool:
				b, err := e.Bool()
				if err != nil {
					return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
				}
				vs[i] = b
			default:
				vs[i] = e.String()
			}
		}
		specs[c] = frame.Col(name, vs...)
	}
	return frame.New(specs...)
}
