package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		in   interface{}
		kind Kind
	}{
		{nil, Null},
		{math.NaN(), Null},
		{float32(1.5), Number},
		{3, Number},
		{uint8(7), Number},
		{"x", Text},
		{true, Bool},
		{Num(2), Number},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, ValueOf(tt.in).Kind(), "%#v", tt.in)
	}
	assert.True(t, Num(math.NaN()).IsNull())
}

func TestValueEquality(t *testing.T) {
	assert.False(t, NA().Equal(NA()), "null is never equal")
	assert.True(t, NA().Same(NA()))
	assert.True(t, Num(1).Equal(Num(1)))
	assert.False(t, Num(1).Equal(Str("1")))
	assert.False(t, Boolean(true).Equal(Num(1)))
}

func TestCompareOrdersKinds(t *testing.T) {
	assert.Negative(t, Compare(Boolean(true), Num(-5)))
	assert.Negative(t, Compare(Num(1e9), Str("")))
	assert.Negative(t, Compare(Str("zzz"), NA()))
	assert.Negative(t, Compare(Num(1), Num(2)))
	assert.Positive(t, Compare(Str("b"), Str("a")))
	assert.Negative(t, Compare(Boolean(false), Boolean(true)))
	assert.Zero(t, Compare(NA(), NA()))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1.5", Num(1.5).String())
	assert.Equal(t, "2000", Num(2000).String())
	assert.Equal(t, "NaN", NA().String())
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "Ohio", Str("Ohio").String())
}

func TestValueFloat(t *testing.T) {
	x, ok := Boolean(true).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.0, x)
	_, ok = Str("1").Float()
	assert.False(t, ok)
	_, ok = NA().Float()
	assert.False(t, ok)
}
