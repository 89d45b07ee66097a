package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T) *Frame {
	t.Helper()
	f, err := FromRows([][]interface{}{
		{1., 6.5, 3.},
		{1., nil, nil},
		{nil, nil, nil},
		{nil, 6.5, 3.},
	}, nil)
	require.NoError(t, err)
	return f
}

func noTrueCells(t *testing.T, f *Frame) {
	t.Helper()
	for r, row := range f.Values() {
		for c, v := range row {
			assert.False(t, v.Truthy(), "cell (%d, %d)", r, c)
		}
	}
}

func TestDropNALeavesNoNulls(t *testing.T) {
	text, err := New(
		Col("name", "a", nil, "c"),
		Col("ok", true, false, nil),
	)
	require.NoError(t, err)
	empty, err := New()
	require.NoError(t, err)

	for _, f := range []*Frame{grid(t), text, empty} {
		kept := f.DropNA(Any, Rows)
		noTrueCells(t, kept.IsNull())
		assert.False(t, kept.AnyNull())
	}
}

func TestDropNAHowAndAxis(t *testing.T) {
	f := grid(t)

	got := f.DropNA(Any, Rows)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, Num(0), got.Index().At(0).Level(0))

	got = f.DropNA(All, Rows)
	assert.Equal(t, 3, got.Len())
	assert.False(t, got.Index().Contains(L(2)))

	got = f.DropNA(All, Columns)
	assert.Equal(t, []string{"0", "1", "2"}, got.Columns())

	got = f.DropNA(Any, Columns)
	assert.Empty(t, got.Columns())
	assert.Equal(t, 4, got.Len())

	sub, err := f.DropNASubset(Any, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Len())

	f.DropNAInPlace(All, Rows)
	assert.Equal(t, 3, f.Len())
}

func TestFillNAKeepsPresentCells(t *testing.T) {
	s, err := NewSeries("", []interface{}{1, nil, 3.5, nil, 7})
	require.NoError(t, err)

	for _, v := range []interface{}{0, -1.5, "x", true} {
		filled := s.FillNA(v)
		noTrueCells(t, mustFrame(t, filled))
		for i, orig := range s.Values() {
			if !orig.IsNull() {
				assert.Equal(t, orig, filled.Values()[i])
			}
		}
	}
}

func mustFrame(t *testing.T, s *Series) *Frame {
	t.Helper()
	f, err := FromSeries(s.Index(), s.IsNull())
	require.NoError(t, err)
	return f
}

func TestFrameFillNA(t *testing.T) {
	f := grid(t)
	assert.False(t, f.FillNA(0).AnyNull())

	got, err := f.FillNAColumns(map[string]interface{}{"0": 0.5, "2": 0})
	require.NoError(t, err)
	assert.Equal(t, nums(1, 1, 0.5, 0.5), colValues(t, got, "0"))
	assert.Equal(t, nums(3, 0, 0, 3), colValues(t, got, "2"))
	assert.Equal(t, []Value{Num(6.5), NA(), NA(), Num(6.5)}, colValues(t, got, "1"))

	_, err = f.FillNAColumns(map[string]interface{}{"9": 1})
	assert.ErrorIs(t, err, ErrKey)
}

func TestFFill(t *testing.T) {
	s, err := NewSeries("", []interface{}{nil, 1, nil, nil, 2, nil})
	require.NoError(t, err)
	assert.Equal(t, []Value{NA(), Num(1), Num(1), Num(1), Num(2), Num(2)}, s.FFill().Values())

	got := grid(t).FFill()
	assert.Equal(t, nums(1, 1, 1, 1), colValues(t, got, "0"))
	assert.Equal(t, nums(6.5, 6.5, 6.5, 6.5), colValues(t, got, "1"))
}

func TestSeriesDropNA(t *testing.T) {
	s, err := NewSeries("", []interface{}{1, nil, 3.5, nil, 7})
	require.NoError(t, err)
	dropped := s.DropNA()
	assert.Equal(t, nums(1, 3.5, 7), dropped.Values())

	same, err := s.Filter(s.NotNull())
	require.NoError(t, err)
	assert.True(t, same.Equal(dropped))
}
