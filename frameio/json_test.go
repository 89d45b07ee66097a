package frameio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/datawrangling/frame"
)

func TestReadJSONRecords(t *testing.T) {
	f, err := ReadJSON(strings.NewReader(`[{"b":1,"a":"x"},{"a":null,"c":[1, 2],"d":{"k": true}}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, f.Columns())
	assert.Equal(t, []frame.Value{frame.Num(1), frame.NA()}, values(t, f, "b"))
	assert.Equal(t, []frame.Value{frame.Str("x"), frame.NA()}, values(t, f, "a"))
	assert.Equal(t, []frame.Value{frame.NA(), frame.Str("[1,2]")}, values(t, f, "c"))
	assert.Equal(t, []frame.Value{frame.NA(), frame.Str(`{"k":true}`)}, values(t, f, "d"))

	empty, err := ReadJSON(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestReadJSONColumns(t *testing.T) {
	f, err := ReadJSON(strings.NewReader(`{"Year":{"0":1990,"1":1997},"Location":{"0":"X","1":null,"2":"Z"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Location"}, f.Columns())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []frame.Value{frame.Num(1990), frame.Num(1997), frame.NA()}, values(t, f, "Year"))
	assert.Equal(t, frame.Num(2), f.Index().At(2).Level(0))
}

func TestReadJSONErrors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`42`))
	assert.ErrorIs(t, err, frame.ErrParse)
	_, err = ReadJSON(strings.NewReader(`[{"a":1},`))
	assert.ErrorIs(t, err, frame.ErrParse)
	_, err = ReadJSON(strings.NewReader(``))
	assert.ErrorIs(t, err, frame.ErrParse)
}

func TestToJSONRecords(t *testing.T) {
	f, err := frame.New(frame.Col("a", 1.5, nil), frame.Col("b", "x", true))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToJSON(&buf, f, Records))
	assert.Equal(t, `[{"a":1.5,"b":"x"},{"a":null,"b":true}]`+"\n", buf.String())
}

func TestToJSONColumnsNests(t *testing.T) {
	f, err := frame.New(
		frame.Col("k", "a", "a", "b"),
		frame.Col("n", 1, 2, 1),
		frame.Col("v", 10, 20, 30),
	)
	require.NoError(t, err)
	keyed, err := f.SetIndex([]string{"k", "n"}, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ToJSON(&buf, keyed, Columns))
	assert.Equal(t, `{"v":{"a":{"1":10,"2":20},"b":{"1":30}}}`+"\n", buf.String())

	dup, err := f.WithIndex("x", "x", "y")
	require.NoError(t, err)
	assert.ErrorIs(t, ToJSON(&buf, dup, Columns), frame.ErrKey)
}

func TestJSONRoundTrip(t *testing.T) {
	f, err := frame.New(frame.Col("x", 1.5, nil), frame.Col("s", "p", "q"))
	require.NoError(t, err)

	for _, orient := range []Orient{Columns, Records} {
		var buf bytes.Buffer
		require.NoError(t, ToJSON(&buf, f, orient))
		back, err := ReadJSON(&buf)
		require.NoError(t, err)
		assert.True(t, back.Equal(f), orient.String())
	}
}

func TestParseOrient(t *testing.T) {
	o, err := ParseOrient("records")
	require.NoError(t, err)
	assert.Equal(t, Records, o)
	o, err = ParseOrient("")
	require.NoError(t, err)
	assert.Equal(t, Columns, o)
	_, err = ParseOrient("split")
	assert.Error(t, err)
}

func TestReadJSONColumnErrors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"a": {"0": 1}, "b": 5}`))
	assert.ErrorIs(t, err, frame.ErrParse)
	assert.Contains(t, err.Error(), `column "b"`)
	var pe *frame.ParseError
	assert.False(t, errors.As(err, &pe), "a column error names no data row")
}

func TestToJSONColumnsMixedKindLabels(t *testing.T) {
	f, err := frame.New(frame.Col("v", 1, 2))
	require.NoError(t, err)
	f, err = f.WithIndex(1, "1")
	require.NoError(t, err)
	require.True(t, f.Index().IsUnique())

	var buf bytes.Buffer
	err = ToJSON(&buf, f, Columns)
	assert.ErrorIs(t, err, frame.ErrKey)
	assert.Contains(t, err.Error(), `"1"`)
	assert.Zero(t, buf.Len())

	require.NoError(t, ToJSON(&buf, f, Records))
}
