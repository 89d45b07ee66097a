package frame

// LabelSel selects rows by label for Loc.
type LabelSel struct {
	all        bool
	labels     []Label
	ranged     bool
	start, end *Label
}

// AllLabels selects every row.
func AllLabels() LabelSel { return LabelSel{all: true} }

// Labels selects the given labels in the given order. A label with fewer
// levels than a hierarchical index selects every row it prefixes.
func Labels(labels ...interface{}) LabelSel {
	return LabelSel{labels: labelsOf(labels)}
}

// LabelRange selects from start to end, both inclusive. A nil bound is open.
func LabelRange(start, end interface{}) LabelSel {
	sel := LabelSel{ranged: true}
	if start != nil {
		l := LabelOf(start)
		sel.start = &l
	}
	if end != nil {
		l := LabelOf(end)
		sel.end = &l
	}
	return sel
}

func (sel LabelSel) positions(ix Index) ([]int, error) {
	switch {
	case sel.all:
		return rangePositions(0, ix.Len()), nil
	case sel.ranged:
		return labelRange(ix, sel.start, sel.end)
	}
	var out []int
	for _, l := range sel.labels {
		pos := ix.Positions(l)
		if len(pos) == 0 {
			return nil, keyErrorf("label %v not found", l)
		}
		out = append(out, pos...)
	}
	return out, nil
}

// labelRange resolves an inclusive label slice. Bounds that each occur
// exactly once are resolved positionally, which works on any index.
// Otherwise the index must be sorted so that the bounds can be located by
// comparison.
func labelRange(ix Index, start, end *Label) ([]int, error) {
	n := ix.Len()
	lo, hi := 0, n-1
	unique := true
	if start != nil {
		p, ok := uniquePosition(ix, *start)
		lo, unique = p, ok
	}
	if end != nil && unique {
		p, ok := uniquePosition(ix, *end)
		hi, unique = p, ok
	}
	if unique {
		return rangePositions(lo, hi+1), nil
	}
	if !ix.IsMonotonic() {
		return nil, keyErrorf("ambiguous label range on an unsorted index")
	}
	lo, hi = 0, n-1
	if start != nil {
		lo = n
		for i := 0; i < n; i++ {
			if comparePrefix(ix.labels[i], *start) >= 0 {
				lo = i
				break
			}
		}
	}
	if end != nil {
		hi = -1
		for i := n - 1; i >= 0; i-- {
			if comparePrefix(ix.labels[i], *end) <= 0 {
				hi = i
				break
			}
		}
	}
	return rangePositions(lo, hi+1), nil
}

func uniquePosition(ix Index, l Label) (int, bool) {
	if l.Len() != ix.Levels() {
		return -1, false
	}
	pos := ix.Positions(l)
	if len(pos) != 1 {
		return -1, false
	}
	return pos[0], true
}

// PosSel selects rows or columns by zero-based position for ILoc.
type PosSel struct {
	all    bool
	pos    []int
	ranged bool
	lo, hi int
}

// AllPos selects every position.
func AllPos() PosSel { return PosSel{all: true} }

// Positions selects the given positions in the given order. Negative
// positions count from the end.
func Positions(pos ...int) PosSel { return PosSel{pos: append([]int(nil), pos...)} }

// PosRange selects lo up to but excluding hi.
func PosRange(lo, hi int) PosSel { return PosSel{ranged: true, lo: lo, hi: hi} }

func (sel PosSel) positions(n int) ([]int, error) {
	switch {
	case sel.all:
		return rangePositions(0, n), nil
	case sel.ranged:
		if sel.lo < 0 || sel.hi > n {
			return nil, indexErrorf("range [%d:%d] out of bounds for length %d", sel.lo, sel.hi, n)
		}
		return rangePositions(sel.lo, sel.hi), nil
	}
	out := make([]int, len(sel.pos))
	for i, p := range sel.pos {
		q := p
		if q < 0 {
			q += n
		}
		if q < 0 || q >= n {
			return nil, indexErrorf("position %d out of bounds for length %d", p, n)
		}
		out[i] = q
	}
	return out, nil
}
