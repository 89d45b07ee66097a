package frameio

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/datawrangling/frame"
)

const page = `<html><body>
<table>
  <thead><tr><th>Name</th><th colspan="2">Score</th></tr></thead>
  <tbody>
    <tr><td>a</td><td>1</td><td>2</td></tr>
    <tr><td>b <em>bold</em></td><td> 3 </td><td></td></tr>
  </tbody>
</table>
<table>
  <tr><td>x</td><td>y</td></tr>
  <tr><td>1</td><td>true</td></tr>
</table>
</body></html>`

func TestReadHTML(t *testing.T) {
	tables, err := ReadHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	first := tables[0]
	assert.Equal(t, []string{"Name", "Score", "Score.1"}, first.Columns())
	assert.Equal(t, []frame.Value{frame.Str("a"), frame.Str("b bold")}, values(t, first, "Name"))
	assert.Equal(t, []frame.Value{frame.Num(1), frame.Num(3)}, values(t, first, "Score"))
	assert.Equal(t, []frame.Value{frame.Num(2), frame.NA()}, values(t, first, "Score.1"))

	second := tables[1]
	assert.Equal(t, []string{"x", "y"}, second.Columns())
	assert.Equal(t, []frame.Kind{frame.Number, frame.Bool}, second.Kinds())
}

func TestReadHTMLMultiRowHeader(t *testing.T) {
	doc := `<table>
<tr><th colspan="2">Size</th><th>Name</th></tr>
<tr><th>w</th><th>h</th><th></th></tr>
<tr><td>1</td><td>2</td><td>box</td></tr>
</table>`
	tables, err := ReadHTML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Size w", "Size h", "Name"}, tables[0].Columns())
}

func TestReadHTMLErrors(t *testing.T) {
	_, err := ReadHTML(strings.NewReader(`<p>no tables here</p>`))
	assert.ErrorIs(t, err, frame.ErrParse)

	_, err = ReadHTML(strings.NewReader(`<table><tr><th>a</th><th>b</th></tr><tr><td>1</td></tr></table>`))
	var pe *frame.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Row)
}

func TestReadHTMLNames(t *testing.T) {
	tables, err := ReadHTML(strings.NewReader(`<table><tr><td>1</td><td>2</td></tr></table>`), WithNames("p", "q"))
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, tables[0].Columns())
	assert.Equal(t, 1, tables[0].Len())
}
