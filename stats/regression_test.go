package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"berkotech.co/datawrangling/frame"
)

// plane follows y = 1 + 2*x1 + 3*x2 exactly, plus one row with no y.
func plane(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.Col("x1", 1, 2, 3, 4, 5, 6, 7),
		frame.Col("x2", 2, 1, 4, 3, 6, 5, 1),
		frame.Col("y", 9, 8, 19, 18, 29, 28, nil),
		frame.Col("name", "a", "b", "c", "d", "e", "f", "g"),
	)
	require.NoError(t, err)
	return f
}

func TestOLS(t *testing.T) {
	m, err := OLS(plane(t), "y", "x1", "x2")
	require.NoError(t, err)
	assert.Equal(t, 6, m.Observations)
	require.Len(t, m.Coefficients, 3)
	assert.InDelta(t, 1, m.Coefficients[0], 1e-6)
	assert.InDelta(t, 2, m.Coefficients[1], 1e-6)
	assert.InDelta(t, 3, m.Coefficients[2], 1e-6)
	assert.InDelta(t, 1, m.R2, 1e-6)

	y, err := m.Predict(10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 51, y, 1e-6)
	_, err = m.Predict(1)
	assert.ErrorIs(t, err, frame.ErrShape)
}

func TestOLSErrors(t *testing.T) {
	f := plane(t)
	_, err := OLS(f, "y", "name")
	assert.ErrorIs(t, err, frame.ErrSchema)
	_, err = OLS(f, "y")
	assert.ErrorIs(t, err, frame.ErrSchema)
	_, err = OLS(f, "y", "x9")
	assert.ErrorIs(t, err, frame.ErrKey)
}

func TestNormalEquation(t *testing.T) {
	theta, err := NormalEquation(plane(t), "y", "x1", "x2")
	require.NoError(t, err)
	r, c := theta.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	assert.InDelta(t, 2, theta.At(0, 0), 1e-6)
	assert.InDelta(t, 3, theta.At(1, 0), 1e-6)
	assert.InDelta(t, 1, theta.At(2, 0), 1e-6, "the bias comes last")

	y, err := PredictTheta(theta, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 51, y, 1e-6)
	_, err = PredictTheta(theta, 1, 2, 3)
	assert.ErrorIs(t, err, frame.ErrShape)
}

func TestThetaRoundTrip(t *testing.T) {
	theta := mat.NewDense(3, 1, []float64{2, 3, 1})
	var buf bytes.Buffer
	require.NoError(t, SaveTheta(&buf, theta))
	back, err := LoadTheta(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(theta, back))
}

func TestGradientDescentMatchesNormalEquation(t *testing.T) {
	f := plane(t)
	want, err := NormalEquation(f, "y", "x1", "x2")
	require.NoError(t, err)

	theta, err := GradientDescent(f, "y", []string{"x1", "x2"})
	require.NoError(t, err)
	r, c := theta.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, want.At(i, 0), theta.At(i, 0), 1e-4, "row %d", i)
	}

	y, err := PredictTheta(theta, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 51, y, 1e-3)
}

func TestGradientDescentErrors(t *testing.T) {
	f := plane(t)
	_, err := GradientDescent(f, "y", []string{"x1", "x2"}, WithLearnRate(1), WithIterations(1000))
	assert.ErrorIs(t, err, ErrDiverged)
	_, err = GradientDescent(f, "y", []string{"x1"}, WithIterations(0))
	assert.Error(t, err)
	_, err = GradientDescent(f, "y", []string{"name"})
	assert.ErrorIs(t, err, frame.ErrSchema)
}
