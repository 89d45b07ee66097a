package plotting

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/datawrangling/frame"
)

func blinking(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.Col("attention", 40, 40, 50, 50, 60, nil),
		frame.Col("blinks", 12, 14, 9, nil, 7, 5),
		frame.Col("group", "a", "a", "b", "b", "c", "c"),
	)
	require.NoError(t, err)
	return f
}

func TestValuesSkipNulls(t *testing.T) {
	s, err := blinking(t).Col("blinks")
	require.NoError(t, err)
	assert.Len(t, Values(s), 5)

	pts, err := XYs(blinking(t), "attention", "blinks")
	require.NoError(t, err)
	assert.Len(t, pts, 4)
	assert.Equal(t, 60.0, pts[3].X)

	_, err = XYs(blinking(t), "attention", "missing")
	assert.ErrorIs(t, err, frame.ErrKey)
}

func TestHist(t *testing.T) {
	f := blinking(t)
	s, err := f.Col("blinks")
	require.NoError(t, err)
	p, err := Hist(s, 3, "blinks")
	require.NoError(t, err)

	png, err := Encode(p, "png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	text, err := f.Col("group")
	require.NoError(t, err)
	_, err = Hist(text, 3, "group")
	assert.ErrorIs(t, err, frame.ErrSchema)
}

func TestScatterAndLine(t *testing.T) {
	f := blinking(t)
	p, err := Scatter(f, "attention", "blinks", "blinking")
	require.NoError(t, err)
	assert.Equal(t, "attention", p.X.Label.Text)

	p, err = Line(f, "attention", "blinks", "group")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "line.svg")
	require.NoError(t, Save(p, path))

	_, err = Line(f, "attention", "blinks", "nope")
	assert.ErrorIs(t, err, frame.ErrKey)

	_, err = Encode(p, "bmp")
	assert.Error(t, err)
}
