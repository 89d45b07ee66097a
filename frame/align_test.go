package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindexIsNotRelabel(t *testing.T) {
	s, err := NewSeries("v", []interface{}{1, 7, 2}, "x", "y", "z")
	require.NoError(t, err)

	moved, err := s.Reindex("x", "z", "e")
	require.NoError(t, err)
	assert.Equal(t, []Value{Num(1), Num(2), NA()}, moved.Values())

	relabeled, err := s.WithIndex("x", "z", "e")
	require.NoError(t, err)
	assert.Equal(t, nums(1, 7, 2), relabeled.Values())
	assert.False(t, moved.Equal(relabeled))

	dup, err := NewSeries("", []interface{}{1, 2}, "a", "a")
	require.NoError(t, err)
	_, err = dup.Reindex("a")
	assert.ErrorIs(t, err, ErrKey)
}

func TestFrameReindex(t *testing.T) {
	f := numbers4x4(t)
	got, err := f.Reindex("Utah", "Texas")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.Equal(t, []Value{Num(8), NA()}, colValues(t, got, "one"))
	assert.Equal(t, f.Columns(), got.Columns())
}

func TestAlignUnion(t *testing.T) {
	s1, err := NewSeries("", []interface{}{1, 7, 2}, "x", "y", "z")
	require.NoError(t, err)
	s2, err := NewSeries("", []interface{}{1, 7, 2}, "y", "z", "r")
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)
	assert.Equal(t, []Value{NA(), NA(), Num(8), Num(9)}, sum.Values())
	labels := make([]string, sum.Len())
	for i, l := range sum.Index().Labels() {
		labels[i] = l.String()
	}
	assert.Equal(t, []string{"r", "x", "y", "z"}, labels)
}

func TestAlignIdenticalKeepsOrder(t *testing.T) {
	a, err := NewSeries("", []interface{}{1, 2}, "b", "a")
	require.NoError(t, err)
	b, err := NewSeries("", []interface{}{10, 20}, "b", "a")
	require.NoError(t, err)

	got, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, nums(10, 40), got.Values())
	assert.Equal(t, "b", got.Index().At(0).String())
}

func TestAlignDuplicateLabels(t *testing.T) {
	a, err := NewSeries("", []interface{}{1, 2}, "a", "a")
	require.NoError(t, err)
	b, err := NewSeries("", []interface{}{1}, "a")
	require.NoError(t, err)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrKey)
}

func TestFrameAddUnionsColumns(t *testing.T) {
	a, err := New(Col("b", 1, 2), Col("c", 3, 4))
	require.NoError(t, err)
	b, err := New(Col("b", 10, 20), Col("e", 5, 6))
	require.NoError(t, err)

	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "e"}, got.Columns())
	assert.Equal(t, nums(11, 22), colValues(t, got, "b"))
	assert.Equal(t, []Value{NA(), NA()}, colValues(t, got, "c"))
	assert.Equal(t, []Value{NA(), NA()}, colValues(t, got, "e"))
}

func TestDivision(t *testing.T) {
	a, err := NewSeries("", []interface{}{1, -1, 0})
	require.NoError(t, err)
	b, err := NewSeries("", []interface{}{0, 0, 0})
	require.NoError(t, err)

	got, err := a.Div(b)
	require.NoError(t, err)
	vs := got.Values()
	x, _ := vs[0].Float()
	assert.True(t, math.IsInf(x, 1))
	x, _ = vs[1].Float()
	assert.True(t, math.IsInf(x, -1))
	assert.True(t, vs[2].IsNull())
}

func TestTextConcatenates(t *testing.T) {
	a, err := NewSeries("", []interface{}{"ab", 1})
	require.NoError(t, err)
	b, err := NewSeries("", []interface{}{"cd", "x"})
	require.NoError(t, err)
	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []Value{Str("abcd"), NA()}, got.Values())
}

func TestNegativeZeroIsZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.True(t, Num(0).Same(Num(negZero)))
	assert.Equal(t, "0", Num(negZero).String())

	f, err := New(Col("k", 0.0, negZero), Col("v", 1, 2))
	require.NoError(t, err)
	g, err := f.GroupBy("k")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	unique, err := f.DropDuplicates("k")
	require.NoError(t, err)
	assert.Equal(t, 1, unique.Len())

	s, err := NewSeries("", []interface{}{5}, 0.0)
	require.NoError(t, err)
	got, err := s.Reindex(negZero)
	require.NoError(t, err)
	assert.Equal(t, nums(5), got.Values())
}
