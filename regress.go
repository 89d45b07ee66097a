package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"berkotech.co/datawrangling/stats"
)

func newRegressCmd(cfg *config) *cobra.Command {
	var y string
	var xs []string
	var normal, gd, interactive bool
	var save string
	var rate float64
	var iterations int
	cmd := &cobra.Command{
		Use:   "regress <file-or-url>",
		Short: "Fit a linear model of one column on others",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if y == "" || len(xs) == 0 {
				return fmt.Errorf("--y and --x are both required")
			}
			f, err := readFrame(cmd.Context(), cfg, args[0], 0)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var predict func(vals []float64) (float64, error)
			if normal && gd {
				return fmt.Errorf("--normal and --gd are exclusive")
			}
			if normal || gd {
				var theta *mat.Dense
				if gd {
					theta, err = stats.GradientDescent(f, y, xs,
						stats.WithLearnRate(rate),
						stats.WithIterations(iterations),
						stats.WithCostLogger(cfg.log, iterations/10))
				} else {
					theta, err = stats.NormalEquation(f, y, xs...)
				}
				if err != nil {
					return err
				}
				fa := mat.Formatted(theta, mat.Prefix("   "), mat.Squeeze())
				fmt.Fprintf(w, "ϴ: %v\n", fa)
				if save != "" {
					if err := saveTheta(save, theta); err != nil {
						return err
					}
					cfg.log.Info("saved theta", "path", save)
				}
				predict = func(vals []float64) (float64, error) { return stats.PredictTheta(theta, vals...) }
			} else {
				m, err := stats.OLS(f, y, xs...)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\nR2: %.4f  observations: %d\n", m.Formula, m.R2, m.Observations)
				predict = func(vals []float64) (float64, error) { return m.Predict(vals...) }
			}

			if !interactive {
				return nil
			}
			in := bufio.NewReader(cmd.InOrStdin())
			for {
				vals := make([]float64, len(xs))
				for i, x := range xs {
					v, err := getInput(in, w, x)
					if err == io.EOF {
						return nil
					}
					if err != nil {
						return err
					}
					vals[i] = v
				}
				p, err := predict(vals)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s ≈ %.4f\n", y, p)
			}
		},
	}
	cmd.Flags().StringVar(&y, "y", "", "response column")
	cmd.Flags().StringSliceVar(&xs, "x", nil, "predictor columns")
	cmd.Flags().BoolVar(&normal, "normal", false, "solve the normal equation instead of using sajari/regression")
	cmd.Flags().BoolVar(&gd, "gd", false, "fit theta by gradient descent on a gorgonia graph")
	cmd.Flags().Float64Var(&rate, "learn-rate", 0.01, "with --gd, the solver step size")
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "with --gd, the number of passes")
	cmd.Flags().StringVar(&save, "save", "", "with --normal or --gd, write theta as a gob file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read predictor values from stdin and print predictions")
	return cmd
}

// getInput prompts for one value until EOF.
func getInput(r *bufio.Reader, w io.Writer, name string) (float64, error) {
	fmt.Fprintf(w, "%v: ", name)
	text, err := r.ReadString('\n')
	text = strings.TrimSpace(text)
	if err != nil && text == "" {
		return 0, err
	}
	v, perr := strconv.ParseFloat(text, 64)
	if perr != nil {
		return 0, fmt.Errorf("%s: %w", name, perr)
	}
	return v, nil
}

func saveTheta(path string, theta *mat.Dense) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return stats.SaveTheta(file, theta)
}
