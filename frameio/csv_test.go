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

const sample = `something,a,b,c,d,message
one,1,2,3,4,NA
two,5,6,,8,world
three,9,10,11,12,foo
`

func values(t *testing.T, f *frame.Frame, name string) []frame.Value {
	t.Helper()
	s, err := f.Col(name)
	require.NoError(t, err)
	return s.Values()
}

func TestReadCSV(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	rows, cols := f.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, []frame.Value{frame.Num(3), frame.NA(), frame.Num(11)}, values(t, f, "c"))
	assert.Equal(t, []frame.Value{frame.NA(), frame.Str("world"), frame.Str("foo")}, values(t, f, "message"))
	assert.Equal(t, frame.Text, f.Kinds()[0])
}

func TestReadCSVColumnSentinels(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample), WithColumnNAValues(map[string][]string{
		"message":   {"foo"},
		"something": {"two"},
	}))
	require.NoError(t, err)
	assert.Equal(t, []frame.Value{frame.NA(), frame.Str("world"), frame.NA()}, values(t, f, "message"))
	assert.Equal(t, []frame.Value{frame.Str("one"), frame.NA(), frame.Str("three")}, values(t, f, "something"))

	f, err = ReadCSV(strings.NewReader(sample), WithNAValues("world"))
	require.NoError(t, err)
	assert.Equal(t, []frame.Value{frame.Str("NA"), frame.NA(), frame.Str("foo")}, values(t, f, "message"))
}

func TestReadCSVIndexColumn(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample), WithIndexColumn("something"))
	require.NoError(t, err)
	assert.Equal(t, []string{"something"}, f.Index().Names())
	row, err := f.Row("two")
	require.NoError(t, err)
	assert.Equal(t, frame.Num(5), row.Values()[0])
}

func TestReadCSVNames(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("1 2\n3 4\n"), WithDelimiter(' '), WithNames("x", "y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, f.Columns())
	assert.Equal(t, 2, f.Len())

	f, err = ReadCSV(strings.NewReader("1;2\n"), WithDelimiter(';'), WithHeader(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, f.Columns())
}

func TestReadCSVRepeatedHeader(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("a,a,\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a.1", "Unnamed: 2"}, f.Columns())
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	var pe *frame.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Row)
	assert.ErrorIs(t, err, frame.ErrParse)

	_, err = ReadCSV(strings.NewReader("a,b\n1,\"2\n"))
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Row)

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, frame.ErrParse)
}

func TestToCSV(t *testing.T) {
	f, err := frame.New(frame.Col("a", 1, nil), frame.Col("b", "x", "y"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ToCSV(&buf, f))
	assert.Equal(t, ",a,b\n0,1,x\n1,,y\n", buf.String())

	f.SetIndexNames("id")
	buf.Reset()
	require.NoError(t, ToCSV(&buf, f))
	back, err := ReadCSV(&buf, WithIndexColumn("id"))
	require.NoError(t, err)
	assert.True(t, back.Equal(f))
}

func TestReadCSVMalformedHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a\"b,c\n1,2\n"))
	assert.ErrorIs(t, err, frame.ErrParse)
	assert.Contains(t, err.Error(), "header")
	var pe *frame.ParseError
	assert.False(t, errors.As(err, &pe))

	_, err = ReadCSV(strings.NewReader("a\"b,c\n1,2\n"), WithHeader(false))
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Row)
}
