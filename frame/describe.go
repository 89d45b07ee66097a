package frame

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

var describeRows = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe summarises every numeric column over its non-null cells. The
// result is indexed by statistic name.
func (f *Frame) Describe() *Frame {
	ls := make([]Label, len(describeRows))
	for i, r := range describeRows {
		ls[i] = L(r)
	}
	var cols []*column
	for _, c := range f.cols {
		if c.kind != Number {
			continue
		}
		xs := make([]float64, 0, len(c.values))
		for _, v := range c.values {
			if !v.IsNull() {
				xs = append(xs, v.num)
			}
		}
		vs := make([]Value, len(describeRows))
		vs[0] = Num(float64(len(xs)))
		if len(xs) > 0 {
			sort.Float64s(xs)
			vs[1] = Num(stat.Mean(xs, nil))
			if len(xs) > 1 {
				vs[2] = Num(stat.StdDev(xs, nil))
			}
			vs[3] = Num(xs[0])
			vs[4] = Num(quantile(xs, 0.25))
			vs[5] = Num(quantile(xs, 0.5))
			vs[6] = Num(quantile(xs, 0.75))
			vs[7] = Num(xs[len(xs)-1])
		}
		d := newColumn(c.name, vs)
		d.label = c.label
		cols = append(cols, d)
	}
	return newFrame(newIndex(ls, nil), cols)
}
