package frame

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AggFunc reduces the cells of one group to a single value. Users may
// define their own next to the built-in ones.
type AggFunc struct {
	Name string
	Fn   func(vs []Value) (Value, error)
}

var (
	Mean   = AggFunc{Name: "mean", Fn: aggMean}
	Sum    = AggFunc{Name: "sum", Fn: aggSum}
	Min    = AggFunc{Name: "min", Fn: aggMin}
	Max    = AggFunc{Name: "max", Fn: aggMax}
	Count  = AggFunc{Name: "count", Fn: aggCount}
	Median = AggFunc{Name: "median", Fn: aggMedian}
	Std    = AggFunc{Name: "std", Fn: aggStd}
)

// numbers collects the non-null cells as floats. Text cells are a schema
// error.
func numbers(vs []Value) ([]float64, error) {
	xs := make([]float64, 0, len(vs))
	for _, v := range vs {
		switch v.kind {
		case Null:
			continue
		case Text:
			return nil, schemaErrorf("cannot aggregate text value %q numerically", v.str)
		}
		x, _ := v.Float()
		xs = append(xs, x)
	}
	return xs, nil
}

func aggMean(vs []Value) (Value, error) {
	xs, err := numbers(vs)
	if err != nil || len(xs) == 0 {
		return Value{}, err
	}
	return Num(stat.Mean(xs, nil)), nil
}

func aggSum(vs []Value) (Value, error) {
	xs, err := numbers(vs)
	if err != nil || len(xs) == 0 {
		return Value{}, err
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return Num(total), nil
}

func extreme(vs []Value, sign int) Value {
	var best Value
	for _, v := range vs {
		if v.IsNull() {
			continue
		}
		if best.IsNull() || Compare(v, best)*sign > 0 {
			best = v
		}
	}
	return best
}

func aggMin(vs []Value) (Value, error) { return extreme(vs, -1), nil }

func aggMax(vs []Value) (Value, error) { return extreme(vs, 1), nil }

func aggCount(vs []Value) (Value, error) {
	n := 0
	for _, v := range vs {
		if !v.IsNull() {
			n++
		}
	}
	return Num(float64(n)), nil
}

func aggMedian(vs []Value) (Value, error) {
	xs, err := numbers(vs)
	if err != nil || len(xs) == 0 {
		return Value{}, err
	}
	sort.Float64s(xs)
	return Num(quantile(xs, 0.5)), nil
}

func aggStd(vs []Value) (Value, error) {
	xs, err := numbers(vs)
	if err != nil || len(xs) < 2 {
		return Value{}, err
	}
	return Num(stat.StdDev(xs, nil)), nil
}

// quantile interpolates linearly between the closest ranks of sorted xs.
func quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	h := p * float64(len(xs)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(xs) {
		return xs[len(xs)-1]
	}
	return xs[i] + (h-lo)*(xs[i+1]-xs[i])
}

// Agg reduces the series with fn.
func (s *Series) Agg(fn AggFunc) (Value, error) {
	return fn.Fn(s.col.values)
}
