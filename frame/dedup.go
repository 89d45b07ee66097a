package frame

import "strings"

func duplicatedRows(n int, cols []*column) []bool {
	seen := make(map[string]bool, n)
	out := make([]bool, n)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		sb.Reset()
		for _, c := range cols {
			writeKey(&sb, c.values[r])
		}
		k := sb.String()
		out[r] = seen[k]
		seen[k] = true
	}
	return out
}

func keepFirst(dup []bool) []int {
	keep := make([]int, 0, len(dup))
	for i, d := range dup {
		if !d {
			keep = append(keep, i)
		}
	}
	return keep
}

func boolValues(bs []bool) []Value {
	out := make([]Value, len(bs))
	for i, b := range bs {
		out[i] = Boolean(b)
	}
	return out
}

// Duplicated marks every cell that repeats an earlier one.
func (s *Series) Duplicated() *Series {
	return s.derive(boolValues(duplicatedRows(s.Len(), []*column{s.col})), s.index)
}

// DropDuplicates keeps the first occurrence of every value. Nulls count as
// equal to each other.
func (s *Series) DropDuplicates() *Series {
	return s.take(keepFirst(duplicatedRows(s.Len(), []*column{s.col})))
}

func (f *Frame) subsetCols(subset []string) ([]*column, error) {
	if len(subset) == 0 {
		return f.cols, nil
	}
	pos, err := f.mustCols(subset)
	if err != nil {
		return nil, err
	}
	cols := make([]*column, len(pos))
	for i, p := range pos {
		cols[i] = f.cols[p]
	}
	return cols, nil
}

// Duplicated marks rows repeating an earlier row, looking at subset (all
// columns when empty).
func (f *Frame) Duplicated(subset ...string) (*Series, error) {
	cols, err := f.subsetCols(subset)
	if err != nil {
		return nil, err
	}
	return newSeries(newColumn("", boolValues(duplicatedRows(f.Len(), cols))), f.index), nil
}

// DropDuplicates keeps the first of every group of identical rows.
func (f *Frame) DropDuplicates(subset ...string) (*Frame, error) {
	cols, err := f.subsetCols(subset)
	if err != nil {
		return nil, err
	}
	return f.take(keepFirst(duplicatedRows(f.Len(), cols))), nil
}
