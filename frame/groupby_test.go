package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yields(t *testing.T) *Frame {
	t.Helper()
	f, err := New(
		Col("Loc", "B", "A", "A", "B", nil),
		Col("Year", 2000, 2000, 2000, 2001, 2000),
		Col("Y", 5, 10, 20, 7, 100),
	)
	require.NoError(t, err)
	return f
}

func TestGroupByMean(t *testing.T) {
	g, err := yields(t).GroupBy("Loc", "Year")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len(), "the null key row is left out")

	got, err := g.Agg(Agg{Column: "Y", Func: Mean})
	require.NoError(t, err)
	assert.Equal(t, []string{"Loc", "Year", "Y_mean"}, got.Columns())
	assert.Equal(t, [][]Value{
		{Str("B"), Num(2000), Num(5)},
		{Str("A"), Num(2000), Num(15)},
		{Str("B"), Num(2001), Num(7)},
	}, got.Values())

	sorted, err := g.Sorted().Agg(Agg{Column: "Y", Func: Mean})
	require.NoError(t, err)
	assert.Equal(t, []Value{Str("A"), Str("B"), Str("B")}, colValues(t, sorted, "Loc"))
	assert.Equal(t, nums(15, 5, 7), colValues(t, sorted, "Y_mean"))
}

func TestGroupKeysNeverNull(t *testing.T) {
	g, err := yields(t).GroupBy("Loc")
	require.NoError(t, err)
	for _, l := range g.Groups() {
		for _, v := range l.Values() {
			assert.False(t, v.IsNull())
		}
	}

	a, err := g.Get("A")
	require.NoError(t, err)
	assert.Equal(t, nums(10, 20), colValues(t, a, "Y"))
	_, err = g.Get("Z")
	assert.ErrorIs(t, err, ErrKey)
}

func TestGroupByErrors(t *testing.T) {
	f := yields(t)
	_, err := f.GroupBy("Region")
	assert.ErrorIs(t, err, ErrKey)
	_, err = f.GroupBy()
	assert.ErrorIs(t, err, ErrSchema)

	g, err := f.GroupBy("Year")
	require.NoError(t, err)
	_, err = g.Agg(Agg{Column: "Loc", Func: Mean})
	assert.ErrorIs(t, err, ErrSchema)
	_, err = g.Agg(Agg{Column: "Nope", Func: Sum})
	assert.ErrorIs(t, err, ErrKey)
}

func TestAggFuncs(t *testing.T) {
	g, err := yields(t).GroupBy("Year")
	require.NoError(t, err)
	got, err := g.Agg(
		Agg{Column: "Y", Func: Sum},
		Agg{Column: "Y", Func: Count},
		Agg{Column: "Y", Func: Median, Name: "mid"},
		Agg{Column: "Y", Func: Std},
		Agg{Column: "Loc", Func: Min},
		Agg{Column: "Y", Func: Max},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Y_sum", "Y_count", "mid", "Y_std", "Loc_min", "Y_max"}, got.Columns())
	assert.Equal(t, nums(135, 7), colValues(t, got, "Y_sum"))
	assert.Equal(t, nums(4, 1), colValues(t, got, "Y_count"))
	assert.Equal(t, nums(15, 7), colValues(t, got, "mid"))
	assert.Equal(t, []Value{Str("A"), Str("B")}, colValues(t, got, "Loc_min"))
	assert.Equal(t, nums(100, 7), colValues(t, got, "Y_max"))

	std := colValues(t, got, "Y_std")
	assert.False(t, std[0].IsNull())
	assert.True(t, std[1].IsNull(), "a single observation has no spread")
}

func TestSeriesAgg(t *testing.T) {
	s, err := NewSeries("", []interface{}{nil, nil})
	require.NoError(t, err)
	v, err := s.Agg(Sum)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	s, err = NewSeries("", []interface{}{1, 2, 3, 4})
	require.NoError(t, err)
	v, err = s.Agg(Median)
	require.NoError(t, err)
	assert.Equal(t, Num(2.5), v)
}

func TestDescribe(t *testing.T) {
	f, err := New(
		Col("x", 1, 2, 3, 4, nil),
		Col("name", "a", "b", "c", "d", "e"),
	)
	require.NoError(t, err)
	d := f.Describe()
	assert.Equal(t, []string{"x"}, d.Columns())
	x := colValues(t, d, "x")
	assert.Equal(t, Num(4), x[0])
	assert.Equal(t, Num(2.5), x[1])
	assert.Equal(t, Num(1), x[3])
	assert.Equal(t, Num(1.75), x[4])
	assert.Equal(t, Num(2.5), x[5])
	assert.Equal(t, Num(3.25), x[6])
	assert.Equal(t, Num(4), x[7])
	std, _ := x[2].Float()
	assert.InDelta(t, 1.2909944, std, 1e-6)
}
