package frame

func reindexPositions(src Index, target []Label) ([]int, Index, error) {
	if !src.IsUnique() {
		return nil, Index{}, keyErrorf("cannot reindex from an index with duplicate labels")
	}
	for i, l := range target {
		if len(target) > 0 && l.Len() != target[0].Len() {
			return nil, Index{}, shapeErrorf("label %d has %d levels, expected %d", i, l.Len(), target[0].Len())
		}
	}
	lookup := src.lookup()
	pos := make([]int, len(target))
	for i, l := range target {
		pos[i] = -1
		if p, ok := lookup[l.key()]; ok {
			pos[i] = p[0]
		}
	}
	ix := newIndex(target, nil)
	if ix.Levels() == src.Levels() {
		ix = ix.WithNames(src.Names()...)
	}
	return pos, ix, nil
}

// Reindex conforms the series to the target labels: cells are pulled by
// label, labels absent from the source get the null marker and source
// labels absent from the target are dropped.
func (s *Series) Reindex(labels ...interface{}) (*Series, error) {
	pos, ix, err := reindexPositions(s.index, labelsOf(labels))
	if err != nil {
		return nil, err
	}
	return newSeries(s.col.take(pos), ix), nil
}

// Reindex conforms the rows to the target labels the way Series.Reindex
// does.
func (f *Frame) Reindex(labels ...interface{}) (*Frame, error) {
	pos, ix, err := reindexPositions(f.index, labelsOf(labels))
	if err != nil {
		return nil, err
	}
	cols := make([]*column, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.take(pos)
	}
	return &Frame{index: ix, cols: cols, colsName: f.colsName}, nil
}
