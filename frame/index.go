package frame

import (
	"sort"
	"strconv"
	"strings"
)

// Label is a row label: a single value, or an ordered tuple of values for
// hierarchical indexes.
type Label struct {
	levels []Value
}

// L builds a label from plain Go values, one per level.
func L(parts ...interface{}) Label {
	vs := make([]Value, len(parts))
	for i, p := range parts {
		vs[i] = ValueOf(p)
	}
	return Label{levels: vs}
}

// LabelOf returns x itself when it is already a Label, a multi-level
// label for a []interface{} and a single-level label otherwise.
func LabelOf(x interface{}) Label {
	switch v := x.(type) {
	case Label:
		return v
	case []interface{}:
		return L(v...)
	case []Value:
		return Label{levels: append([]Value(nil), v...)}
	}
	return L(x)
}

func labelsOf(xs []interface{}) []Label {
	out := make([]Label, len(xs))
	for i, x := range xs {
		out[i] = LabelOf(x)
	}
	return out
}

func (l Label) Len() int { return len(l.levels) }

func (l Label) Level(i int) Value { return l.levels[i] }

func (l Label) Values() []Value { return append([]Value(nil), l.levels...) }

func (l Label) String() string {
	if len(l.levels) == 1 {
		return l.levels[0].String()
	}
	parts := make([]string, len(l.levels))
	for i, v := range l.levels {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (l Label) Same(o Label) bool {
	if len(l.levels) != len(o.levels) {
		return false
	}
	for i := range l.levels {
		if !l.levels[i].Same(o.levels[i]) {
			return false
		}
	}
	return true
}

func (l Label) hasPrefix(p Label) bool {
	if len(p.levels) > len(l.levels) {
		return false
	}
	for i := range p.levels {
		if !l.levels[i].Same(p.levels[i]) {
			return false
		}
	}
	return true
}

func (l Label) key() string {
	var sb strings.Builder
	for _, v := range l.levels {
		writeKey(&sb, v)
	}
	return sb.String()
}

func writeKey(sb *strings.Builder, v Value) {
	sb.WriteByte(byte('0' + v.kind))
	switch v.kind {
	case Number:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case Text:
		sb.WriteString(strconv.Itoa(len(v.str)))
		sb.WriteByte(':')
		sb.WriteString(v.str)
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	}
	sb.WriteByte(0)
}

func compareLabels(a, b Label) int {
	n := len(a.levels)
	if len(b.levels) < n {
		n = len(b.levels)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a.levels[i], b.levels[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.levels) < len(b.levels):
		return -1
	case len(a.levels) > len(b.levels):
		return 1
	}
	return 0
}

// comparePrefix compares only the leading levels of a that p has.
func comparePrefix(a, p Label) int {
	for i := 0; i < len(p.levels) && i < len(a.levels); i++ {
		if c := Compare(a.levels[i], p.levels[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Index is an immutable ordered sequence of labels. Labels need not be
// unique. All labels of an index have the same number of levels.
type Index struct {
	labels  []Label
	names   []string
	nlevels int
}

// NewIndex builds an index from labels given as plain values, Labels or
// []interface{} tuples.
func NewIndex(labels ...interface{}) (Index, error) {
	ls := labelsOf(labels)
	n := 1
	if len(ls) > 0 {
		n = ls[0].Len()
	}
	for i, l := range ls {
		if l.Len() != n {
			return Index{}, shapeErrorf("label %d has %d levels, expected %d", i, l.Len(), n)
		}
	}
	return newIndex(ls, nil), nil
}

// MultiIndex builds a hierarchical index from one slice per level.
func MultiIndex(levels ...[]interface{}) (Index, error) {
	if len(levels) == 0 {
		return RangeIndex(0), nil
	}
	n := len(levels[0])
	for i, lvl := range levels {
		if len(lvl) != n {
			return Index{}, shapeErrorf("level %d has %d labels, expected %d", i, len(lvl), n)
		}
	}
	ls := make([]Label, n)
	for i := range ls {
		vs := make([]Value, len(levels))
		for j, lvl := range levels {
			vs[j] = ValueOf(lvl[i])
		}
		ls[i] = Label{levels: vs}
	}
	return newIndex(ls, nil), nil
}

// RangeIndex returns the default index 0..n-1.
func RangeIndex(n int) Index {
	ls := make([]Label, n)
	for i := range ls {
		ls[i] = Label{levels: []Value{Num(float64(i))}}
	}
	return newIndex(ls, nil)
}

func newIndex(labels []Label, names []string) Index {
	n := 1
	if len(labels) > 0 {
		n = labels[0].Len()
	}
	if len(names) != n {
		names = make([]string, n)
	}
	return Index{labels: labels, names: names, nlevels: n}
}

func (ix Index) Len() int { return len(ix.labels) }

// Levels is the number of levels of every label.
func (ix Index) Levels() int {
	if ix.nlevels == 0 {
		return 1
	}
	return ix.nlevels
}

func (ix Index) At(i int) Label { return ix.labels[i] }

func (ix Index) Labels() []Label { return append([]Label(nil), ix.labels...) }

func (ix Index) Names() []string {
	if len(ix.names) == 0 {
		return make([]string, ix.Levels())
	}
	return append([]string(nil), ix.names...)
}

// WithNames returns a copy of the index with its levels named.
func (ix Index) WithNames(names ...string) Index {
	out := ix
	out.names = make([]string, ix.Levels())
	copy(out.names, names)
	return out
}

// Level returns the values of level i, one per label.
func (ix Index) Level(i int) []Value {
	out := make([]Value, len(ix.labels))
	for j, l := range ix.labels {
		out[j] = l.levels[i]
	}
	return out
}

func (ix Index) IsUnique() bool {
	seen := make(map[string]struct{}, len(ix.labels))
	for _, l := range ix.labels {
		k := l.key()
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

// IsMonotonic reports whether the labels are sorted in non-decreasing order.
func (ix Index) IsMonotonic() bool {
	for i := 1; i < len(ix.labels); i++ {
		if compareLabels(ix.labels[i-1], ix.labels[i]) > 0 {
			return false
		}
	}
	return true
}

// Positions returns every position whose label equals l, or starts with l
// when l has fewer levels than the index.
func (ix Index) Positions(l Label) []int {
	var out []int
	exact := l.Len() == ix.Levels()
	for i, lab := range ix.labels {
		if exact && lab.Same(l) || !exact && lab.hasPrefix(l) {
			out = append(out, i)
		}
	}
	return out
}

func (ix Index) Contains(l Label) bool { return len(ix.Positions(l)) > 0 }

// Equal compares labels and level names.
func (ix Index) Equal(o Index) bool {
	if len(ix.labels) != len(o.labels) || ix.Levels() != o.Levels() {
		return false
	}
	an, bn := ix.Names(), o.Names()
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return ix.sameLabels(o)
}

func (ix Index) sameLabels(o Index) bool {
	if len(ix.labels) != len(o.labels) {
		return false
	}
	for i := range ix.labels {
		if !ix.labels[i].Same(o.labels[i]) {
			return false
		}
	}
	return true
}

func (ix Index) take(pos []int) Index {
	ls := make([]Label, len(pos))
	for i, p := range pos {
		ls[i] = ix.labels[p]
	}
	return Index{labels: ls, names: ix.Names(), nlevels: ix.Levels()}
}

// dropLevels removes the first n levels of every label.
func (ix Index) dropLevels(n int) Index {
	ls := make([]Label, len(ix.labels))
	for i, l := range ix.labels {
		ls[i] = Label{levels: l.levels[n:]}
	}
	return Index{labels: ls, names: ix.Names()[n:], nlevels: ix.Levels() - n}
}

func (ix Index) lookup() map[string][]int {
	m := make(map[string][]int, len(ix.labels))
	for i, l := range ix.labels {
		k := l.key()
		m[k] = append(m[k], i)
	}
	return m
}

func (ix Index) sortedPositions() []int {
	pos := make([]int, len(ix.labels))
	for i := range pos {
		pos[i] = i
	}
	sort.SliceStable(pos, func(a, b int) bool {
		return compareLabels(ix.labels[pos[a]], ix.labels[pos[b]]) < 0
	})
	return pos
}
