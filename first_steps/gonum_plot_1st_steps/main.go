package main

import (
	"log"
	"math"
	"os"
	"path/filepath"

	"berkotech.co/datawrangling/frame"
	"berkotech.co/datawrangling/plotting"
)

func main() {
	n := make([]interface{}, 16)
	kind := make([]interface{}, 0, 32)
	xs := make([]interface{}, 0, 32)
	ys := make([]interface{}, 0, 32)
	for index := range n {
		x := float64(index + 1)
		xs = append(xs, x, x)
		ys = append(ys, x, math.Pow(x, 2))
		kind = append(kind, "linear", "square")
	}

	f, err := frame.New(
		frame.Col("Indices", xs...),
		frame.Col("Values", ys...),
		frame.Col("Kind", kind...),
	)
	if err != nil {
		log.Panic(err)
	}

	p, err := plotting.Line(f, "Indices", "Values", "Kind")
	if err != nil {
		log.Panic(err)
	}
	p.Title.Text = "Linear Plot"

	path, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}
	err = plotting.Save(p, filepath.Join(path, "plot_example.png"))
	if err != nil {
		log.Panic(err)
	}
}
