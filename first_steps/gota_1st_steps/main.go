package main

import (
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"berkotech.co/datawrangling/frame"
	"berkotech.co/datawrangling/frameio"
)

func main() {
	df := dataframe.LoadRecords(
		[][]string{
			[]string{"A", "B", "C", "D"},
			[]string{"a", "4", "5.1", "true"},
			[]string{"k", "5", "NaN", "true"},
			[]string{"k", "4", "6.0", "true"},
			[]string{"a", "2", "7.1", "false"},
		},
	)
	// Add a new column E on the gota side
	df = df.Mutate(
		series.New([]string{"a", "b", "c", "d"}, series.String, "E"),
	)
	fmt.Println(df)

	f, err := frameio.FromGota(df)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f)
	fmt.Println(f.Kinds())

	// Fill the hole in C and sum B per group
	f = f.FillNA(0)
	g, err := f.GroupBy("A")
	if err != nil {
		log.Fatal(err)
	}
	sums, err := g.Agg(frame.Agg{Column: "B", Func: frame.Sum})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sums)

	back, err := frameio.ToGota(f)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(back.Describe())
	fmt.Println(back.Dims())
}
