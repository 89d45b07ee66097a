// Package stats fits linear models to frame columns, either with
// sajari/regression or directly through the normal equation on gonum
// matrices.
package stats

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/sajari/regression"
	"gonum.org/v1/gonum/mat"

	"berkotech.co/datawrangling/frame"
)

// Model is a fitted ordinary least squares model.
type Model struct {
	Response   string
	Predictors []string
	// Coefficients holds the intercept first, then one per predictor.
	Coefficients []float64
	R2           float64
	Formula      string
	Observations int

	r *regression.Regression
}

// Predict evaluates the model at one point, one value per predictor.
func (m *Model) Predict(xs ...float64) (float64, error) {
	if len(xs) != len(m.Predictors) {
		return 0, fmt.Errorf("%w: got %d values for %d predictors", frame.ErrShape, len(xs), len(m.Predictors))
	}
	return m.r.Predict(xs)
}

// numericRows drops rows with a null in any used column and checks that
// every used column is numeric.
func numericRows(f *frame.Frame, y string, xs []string) (*frame.Frame, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no predictors given", frame.ErrSchema)
	}
	cols := append([]string{y}, xs...)
	sub, err := f.Select(cols...)
	if err != nil {
		return nil, err
	}
	sub, err = sub.DropNASubset(frame.Any, cols...)
	if err != nil {
		return nil, err
	}
	for i, k := range sub.Kinds() {
		if k != frame.Number {
			return nil, fmt.Errorf("%w: column %q is %s, not numeric", frame.ErrSchema, cols[i], k)
		}
	}
	return sub, nil
}

// OLS regresses column y on the columns xs. Rows with a null in any of
// them are left out.
func OLS(f *frame.Frame, y string, xs ...string) (*Model, error) {
	sub, err := numericRows(f, y, xs)
	if err != nil {
		return nil, err
	}

	r := new(regression.Regression)
	r.SetObserved(y)
	for i, x := range xs {
		r.SetVar(i, x)
	}
	for _, row := range sub.Values() {
		obs, _ := row[0].Float()
		vars := make([]float64, len(xs))
		for i := range vars {
			vars[i], _ = row[i+1].Float()
		}
		r.Train(regression.DataPoint(obs, vars))
	}
	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("failed to fit %s: %w", y, err)
	}

	coeffs := make([]float64, len(xs)+1)
	for i := range coeffs {
		coeffs[i] = r.Coeff(i)
	}
	return &Model{
		Response:     y,
		Predictors:   append([]string(nil), xs...),
		Coefficients: coeffs,
		R2:           r.R2,
		Formula:      r.Formula,
		Observations: sub.Len(),
		r:            r,
	}, nil
}

// NormalEquation solves theta = (XᵀX)⁻¹Xᵀy where X is the xs columns plus
// a trailing bias column of ones. theta has one row per predictor and the
// bias last.
func NormalEquation(f *frame.Frame, y string, xs ...string) (*mat.Dense, error) {
	sub, err := numericRows(f, y, xs)
	if err != nil {
		return nil, err
	}
	x := &matrix{f: sub, first: 1, cols: len(xs), bias: true}
	obs := &matrix{f: sub, first: 0, cols: 1}

	xt := mat.DenseCopyOf(x).T()
	var xtx mat.Dense
	xtx.Mul(xt, x)
	var invxtx mat.Dense
	if err := invxtx.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("failed to invert XᵀX: %w", err)
	}
	var xty mat.Dense
	xty.Mul(xt, obs)
	var theta mat.Dense
	theta.Mul(&invxtx, &xty)
	return &theta, nil
}

// PredictTheta evaluates theta from NormalEquation at one point.
func PredictTheta(theta mat.Matrix, xs ...float64) (float64, error) {
	r, _ := theta.Dims()
	if len(xs)+1 != r {
		return 0, fmt.Errorf("%w: got %d values for %d predictors", frame.ErrShape, len(xs), r-1)
	}
	sum := theta.At(r-1, 0)
	for i, x := range xs {
		sum += theta.At(i, 0) * x
	}
	return sum, nil
}

// SaveTheta writes theta as a gob stream; LoadTheta reads it back.
func SaveTheta(w io.Writer, theta *mat.Dense) error {
	return gob.NewEncoder(w).Encode(theta)
}

func LoadTheta(r io.Reader) (*mat.Dense, error) {
	var theta mat.Dense
	if err := gob.NewDecoder(r).Decode(&theta); err != nil {
		return nil, fmt.Errorf("failed to decode theta: %w", err)
	}
	return &theta, nil
}

// matrix reads a run of numeric frame columns as a mat.Matrix, optionally
// followed by a column of ones.
type matrix struct {
	f     *frame.Frame
	first int
	cols  int
	bias  bool
}

func (m *matrix) Dims() (int, int) {
	c := m.cols
	if m.bias {
		c++
	}
	return m.f.Len(), c
}

func (m *matrix) At(i, j int) float64 {
	if m.bias && j == m.cols {
		return 1
	}
	v, err := m.f.At(i, m.first+j)
	if err != nil {
		panic(err)
	}
	x, _ := v.Float()
	return x
}

func (m *matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
