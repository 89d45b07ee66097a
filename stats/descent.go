package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"berkotech.co/datawrangling/frame"
)

type descentConfig struct {
	learnRate  float64
	iterations int
	log        logr.Logger
	every      int
}

// DescentOption tunes GradientDescent.
type DescentOption func(*descentConfig)

// WithLearnRate sets the solver step size. The default is 0.01.
func WithLearnRate(rate float64) DescentOption {
	return func(c *descentConfig) { c.learnRate = rate }
}

// WithIterations sets how many full passes are run. The default is 10000.
func WithIterations(n int) DescentOption {
	return func(c *descentConfig) { c.iterations = n }
}

// WithCostLogger reports the mean squared error at V(1) every n passes.
func WithCostLogger(l logr.Logger, every int) DescentOption {
	return func(c *descentConfig) {
		c.log = l
		c.every = every
	}
}

// ErrDiverged is returned when theta stops being finite.
var ErrDiverged = errors.New("gradient descent diverged")

// GradientDescent fits the same model as NormalEquation by minimising the
// mean squared error over a gorgonia graph. theta starts at zero and has
// the same layout: one row per predictor, the bias last.
func GradientDescent(f *frame.Frame, y string, xs []string, opts ...DescentOption) (*mat.Dense, error) {
	cfg := descentConfig{learnRate: 0.01, iterations: 10000, log: logr.Discard()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.learnRate <= 0 || cfg.iterations <= 0 {
		return nil, fmt.Errorf("learn rate and iterations must be positive, got %v and %d", cfg.learnRate, cfg.iterations)
	}
	sub, err := numericRows(f, y, xs)
	if err != nil {
		return nil, err
	}

	xT := tensor.FromMat64(mat.DenseCopyOf(&matrix{f: sub, first: 1, cols: len(xs), bias: true}))
	yT := tensor.FromMat64(mat.DenseCopyOf(&matrix{f: sub, first: 0, cols: 1}))
	if err := yT.Reshape(yT.Shape()[0]); err != nil {
		return nil, err
	}

	g := gorgonia.NewGraph()
	X := gorgonia.NodeFromAny(g, xT, gorgonia.WithName("x"))
	Y := gorgonia.NodeFromAny(g, yT, gorgonia.WithName("y"))
	theta := gorgonia.NewVector(
		g,
		gorgonia.Float64,
		gorgonia.WithName("theta"),
		gorgonia.WithShape(xT.Shape()[1]),
		gorgonia.WithInit(gorgonia.Zeroes()))

	cost, err := meanSquaredError(X, Y, theta)
	if err != nil {
		return nil, err
	}
	if _, err := gorgonia.Grad(cost, theta); err != nil {
		return nil, fmt.Errorf("failed to backpropagate: %w", err)
	}

	machine := gorgonia.NewTapeMachine(g, gorgonia.BindDualValues(theta))
	defer machine.Close()
	model := []gorgonia.ValueGrad{theta}
	solver := gorgonia.NewVanillaSolver(gorgonia.WithLearnRate(cfg.learnRate))

	for i := 0; i < cfg.iterations; i++ {
		if err := machine.RunAll(); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := solver.Step(model); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		if cfg.every > 0 && i%cfg.every == 0 {
			cfg.log.V(1).Info("descent", "iteration", i, "cost", cost.Value())
		}
		machine.Reset()
	}

	data, ok := theta.Value().Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("theta holds %T, want []float64", theta.Value().Data())
	}
	out := make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w after %d iterations, lower the learn rate", ErrDiverged, cfg.iterations)
		}
		out[i] = v
	}
	return mat.NewDense(len(out), 1, out), nil
}

func meanSquaredError(x, y, theta *gorgonia.Node) (*gorgonia.Node, error) {
	pred, err := gorgonia.Mul(x, theta)
	if err != nil {
		return nil, err
	}
	diff, err := gorgonia.Sub(pred, y)
	if err != nil {
		return nil, err
	}
	sq, err := gorgonia.Square(diff)
	if err != nil {
		return nil, err
	}
	return gorgonia.Mean(sq)
}
