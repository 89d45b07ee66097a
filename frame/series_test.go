package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColIsAView(t *testing.T) {
	f, err := New(Col("a", 1, 2, 3))
	require.NoError(t, err)

	view, err := f.Col("a")
	require.NoError(t, err)
	assert.True(t, view.IsView())
	require.NoError(t, view.Set(0, 10))
	got, err := f.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Num(10), got, "a write through a view reaches the frame")

	cp, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, Owned, cp.Ownership())
	require.NoError(t, cp.Set(1, 99))
	got, err = f.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Num(2), got, "a copy is independent")
}

func TestDropInPlaceDetachesViews(t *testing.T) {
	f, err := New(Col("a", 1, 2, 3))
	require.NoError(t, err)
	view, err := f.Col("a")
	require.NoError(t, err)

	require.NoError(t, f.DropInPlace(0))
	assert.Equal(t, 2, f.Len())
	require.NoError(t, view.Set(1, 50))
	assert.Equal(t, nums(2, 3), colValues(t, f, "a"))
}

func TestFillNAInPlaceReachesViews(t *testing.T) {
	f, err := New(Col("a", 1, nil))
	require.NoError(t, err)
	view, err := f.Col("a")
	require.NoError(t, err)
	f.FillNAInPlace(0)
	assert.Equal(t, nums(1, 0), view.Values())
}

func TestSeriesLookup(t *testing.T) {
	obj, err := NewSeries("", []interface{}{0, 1, 2, 3, 4}, "a", "a", "b", "b", "c")
	require.NoError(t, err)

	a, err := obj.Get("a")
	require.NoError(t, err)
	assert.Equal(t, nums(0, 1), a.Values())

	c, err := obj.Value("c")
	require.NoError(t, err)
	assert.Equal(t, Num(4), c)

	_, err = obj.Value("a")
	assert.ErrorIs(t, err, ErrKey)
	_, err = obj.Value("z")
	assert.ErrorIs(t, err, ErrKey)

	assert.True(t, obj.Contains("b"))
	assert.False(t, obj.Contains("r"))
}

func TestSeriesOps(t *testing.T) {
	s, err := NewSeries("", []interface{}{1, 7, 2}, "x", "y", "z")
	require.NoError(t, err)

	big, err := s.Filter(s.Gt(1))
	require.NoError(t, err)
	assert.Equal(t, nums(7, 2), big.Values())

	assert.Equal(t, nums(2, 14, 4), s.MulScalar(2).Values())
	assert.Equal(t, nums(11, 17, 12), s.AddScalar(10).Values())
	assert.InDelta(t, math.E, s.MapFloat(math.Exp).Float64s()[0], 1e-12)

	words, err := NewSeries("", []interface{}{"Ohio", "Nevada", nil})
	require.NoError(t, err)
	assert.Equal(t, []Value{Boolean(false), Boolean(true), Boolean(false)}, words.Eq("Nevada").Values())
	assert.Equal(t, []Value{Boolean(false), Boolean(false), Boolean(false)}, words.Gt(1).Values(), "kinds must match to compare")
}

func TestDropDuplicates(t *testing.T) {
	s, err := NewSeries("", []interface{}{"Newark", "Manchester", "Halifax", "Manchester"})
	require.NoError(t, err)
	once := s.DropDuplicates()
	assert.Equal(t, []Value{Str("Newark"), Str("Manchester"), Str("Halifax")}, once.Values())
	assert.True(t, once.DropDuplicates().Equal(once))
	assert.Equal(t, []Value{Boolean(false), Boolean(false), Boolean(false), Boolean(true)}, s.Duplicated().Values())

	f, err := New(
		Col("k", "a", "a", "b", "a"),
		Col("v", 1, 1, 2, nil),
	)
	require.NoError(t, err)
	d1, err := f.DropDuplicates()
	require.NoError(t, err)
	d2, err := d1.DropDuplicates()
	require.NoError(t, err)
	assert.True(t, d2.Equal(d1))
	assert.Equal(t, 3, d1.Len())

	byKey, err := f.DropDuplicates("k")
	require.NoError(t, err)
	assert.Equal(t, 2, byKey.Len())

	_, err = f.DropDuplicates("nope")
	assert.ErrorIs(t, err, ErrKey)
}

func TestReplace(t *testing.T) {
	s, err := NewSeries("", []interface{}{"Newark", "Manchester", "Halifax"})
	require.NoError(t, err)
	got := s.Replace(map[Value]Value{
		Str("Newark"):  NA(),
		Str("Halifax"): Str("Ottawa"),
	})
	assert.Equal(t, []Value{NA(), Str("Manchester"), Str("Ottawa")}, got.Values())
	assert.Equal(t, Str("Newark"), s.Values()[0], "the source is untouched")
}

func TestSetNone(t *testing.T) {
	s, err := NewSeries("", []interface{}{"aardvark", "artichoke", math.NaN(), "avocado"})
	require.NoError(t, err)
	require.NoError(t, s.Set(0, nil))
	assert.Equal(t, []Value{Boolean(true), Boolean(false), Boolean(true), Boolean(false)}, s.IsNull().Values())
	assert.Equal(t, Text, s.Kind())
	assert.ErrorIs(t, s.Set(4, "x"), ErrIndex)
}
