package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/datawrangling/stats"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return stdout.String()
}

func TestDemoRunsOffline(t *testing.T) {
	out := t.TempDir()
	got := run(t, "demo", "--data-dir", "data", "--out-dir", out)

	for _, c := range cells {
		assert.Contains(t, got, "# %% "+c.name+" ", "cell %s", c.name)
	}
	for _, line := range []string{
		"Label slices include the end point.",
		"Labels drive arithmetic: only y and z are in both operands.",
		"Forward fill carries the last value down.",
		"Unstack lays the inner level out as columns.",
		"A unique one gives a scalar: 4",
		"yield_mean",
		"Journal rankings by SciMago",
	} {
		assert.Contains(t, got, line)
	}
	for _, name := range []string{"out.csv", "frame.pickle", "lineplot.png", "scatter.png", "hist.png"} {
		info, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestDemoCellFilter(t *testing.T) {
	got := run(t, "demo", "--data-dir", "data", "--out-dir", t.TempDir(),
		"--cell", "dropna", "--cell", "fillna", "--cell", "reindex", "--cell", "hierarchical", "--cell", "groupby")

	for _, name := range []string{"dropna", "fillna", "reindex", "hierarchical", "groupby"} {
		assert.Contains(t, got, "# %% "+name+" ")
	}
	assert.NotContains(t, got, "# %% signals ")
	assert.Contains(t, got, "Overwriting the labels is not the same thing:")
	assert.Contains(t, got, "yield_min")
}

func TestDescribeCommand(t *testing.T) {
	got := run(t, "describe", "data/laliga.csv", "--delimiter", ";", "--head", "2")
	assert.Contains(t, got, "Shape 12, 8:")
	assert.Contains(t, got, "Barcelona")
	assert.NotContains(t, got, "Sevilla", "only two rows are shown")
}

func TestRegressCommand(t *testing.T) {
	got := run(t, "regress", "data/laliga.csv", "--delimiter", ";", "--y", "PTS", "--x", "W,D")
	assert.Contains(t, got, "R2: 1.0000  observations: 12")

	got = run(t, "regress", "data/laliga.csv", "--delimiter", ";", "--y", "PTS", "--x", "W,D", "--normal", "-i")
	assert.Contains(t, got, "ϴ:")

	dir := t.TempDir()
	in := filepath.Join(dir, "plane.csv")
	require.NoError(t, os.WriteFile(in, []byte("x1,x2,y\n1,2,9\n2,1,8\n3,4,19\n4,3,18\n5,6,29\n6,5,28\n"), 0o644))
	theta := filepath.Join(dir, "theta.gob")
	run(t, "regress", in, "--y", "y", "--x", "x1,x2", "--gd", "--save", theta)

	file, err := os.Open(theta)
	require.NoError(t, err)
	defer file.Close()
	m, err := stats.LoadTheta(file)
	require.NoError(t, err)
	assert.InDelta(t, 2, m.At(0, 0), 1e-4)
	assert.InDelta(t, 3, m.At(1, 0), 1e-4)
	assert.InDelta(t, 1, m.At(2, 0), 1e-4)
}

func TestPlotAndGotaCommands(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "scatter.svg")
	run(t, "plot", "data/laliga.csv", "--delimiter", ";", "--kind", "scatter", "-x", "MP", "-y", "FA_GIVEN", "-o", svg)
	body, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<svg")

	got := run(t, "gota", "data/laliga.csv", "--delimiter", ";", "--out-dir", dir, "--sort", "PTS", "--hist", "GOAL")
	assert.Contains(t, got, "Real Madrid")
	info, err := os.Stat(filepath.Join(dir, "GOAL.jpeg"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
