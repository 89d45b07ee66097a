package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexRejectsRaggedLabels(t *testing.T) {
	_, err := NewIndex("a", L("b", 1))
	assert.ErrorIs(t, err, ErrShape)
}

func TestMultiIndexPositions(t *testing.T) {
	ix, err := MultiIndex([]interface{}{"a", "a", "b"}, []interface{}{1, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Levels())
	assert.Equal(t, []int{0, 1}, ix.Positions(L("a")), "a shorter label is a prefix")
	assert.Equal(t, []int{1}, ix.Positions(L("a", 2)))
	assert.Empty(t, ix.Positions(L("c")))
	assert.True(t, ix.IsUnique())
	assert.True(t, ix.IsMonotonic())
	assert.Equal(t, "(a, 2)", ix.At(1).String())
}

func TestIndexUniqueness(t *testing.T) {
	ix, err := NewIndex("a", "a", "b", "b", "c")
	require.NoError(t, err)
	assert.False(t, ix.IsUnique())
	assert.True(t, ix.IsMonotonic())

	unsorted, err := NewIndex("b", "a")
	require.NoError(t, err)
	assert.False(t, unsorted.IsMonotonic())
}

func TestIndexNames(t *testing.T) {
	ix := RangeIndex(3).WithNames("Locations")
	assert.Equal(t, []string{"Locations"}, ix.Names())
	assert.False(t, ix.Equal(RangeIndex(3)), "names take part in equality")
	assert.True(t, ix.Equal(RangeIndex(3).WithNames("Locations")))
}
