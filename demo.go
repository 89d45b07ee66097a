package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"berkotech.co/datawrangling/frame"
	"berkotech.co/datawrangling/frameio"
	"berkotech.co/datawrangling/plotting"
)

const (
	signalsURL  = "https://raw.githubusercontent.com/faturita/python-scientific/master/data/blinking.dat"
	journalsURL = "https://www.scimagojr.com/journalrank.php"
	commitsURL  = "https://api.github.com/repos/faturita/python-scientific/commits"
)

var signalNames = []string{"timestamp", "counter", "eeg", "attention", "meditation", "blinking"}

// demo carries what every cell needs.
type demo struct {
	ctx context.Context
	cfg *config
	w   io.Writer
}

type cell struct {
	name string
	run  func(d *demo) error
}

var cells = []cell{
	{"signals", (*demo).signals},
	{"tensor", (*demo).tensor},
	{"lineplot", (*demo).lineplot},
	{"dict", (*demo).dict},
	{"read", (*demo).read},
	{"json", (*demo).json},
	{"html", (*demo).html},
	{"series-map", (*demo).seriesMap},
	{"pickle", (*demo).pickle},
	{"api", (*demo).api},
	{"sentinels", (*demo).sentinels},
	{"dropna", (*demo).dropna},
	{"fillna", (*demo).fillna},
	{"none", (*demo).none},
	{"duplicates", (*demo).duplicates},
	{"replace", (*demo).replace},
	{"series", (*demo).series},
	{"alignment", (*demo).alignment},
	{"dynamic", (*demo).dynamic},
	{"reindex", (*demo).reindex},
	{"slicing", (*demo).slicing},
	{"mappings", (*demo).mappings},
	{"uniqueness", (*demo).uniqueness},
	{"hierarchical", (*demo).hierarchical},
	{"set-index", (*demo).setIndex},
	{"groupby", (*demo).groupby},
	{"plots", (*demo).plots},
}

func newDemoCmd(cfg *config) *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the data wrangling walkthrough, cell by cell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			want := make(map[string]bool, len(only))
			for _, n := range only {
				want[n] = true
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}
			d := &demo{ctx: cmd.Context(), cfg: cfg, w: cmd.OutOrStdout()}
			for _, c := range cells {
				if len(want) > 0 && !want[c.name] {
					continue
				}
				fmt.Fprintf(d.w, "\n# %%%% %s %s\n", c.name, strings.Repeat("-", 60-len(c.name)))
				if err := c.run(d); err != nil {
					return fmt.Errorf("cell %s: %w", c.name, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "cell", nil, "run only these cells")
	return cmd
}

func (d *demo) println(a ...interface{}) { fmt.Fprintln(d.w, a...) }

func (d *demo) data(name string) string { return filepath.Join(d.cfg.DataDir, name) }

func (d *demo) out(name string) string { return filepath.Join(d.cfg.OutDir, name) }

func (d *demo) loadSignals() (*frame.Frame, error) {
	location := d.data("blinking.dat")
	if d.cfg.Online {
		location = signalsURL
	}
	opts, err := d.cfg.readerOptions(frameio.WithDelimiter(' '), frameio.WithNames(signalNames...))
	if err != nil {
		return nil, err
	}
	return frameio.LoadCSV(d.ctx, location, opts...)
}

func (d *demo) signals() error {
	signals, err := d.loadSignals()
	if err != nil {
		return err
	}
	d.println("Signals is a dataframe, the basic tabular structure.")
	d.println(signals.Head(5))

	d.println("Filter records:")
	counter, err := signals.Col("counter")
	if err != nil {
		return err
	}
	busy, err := signals.Filter(counter.Gt(45))
	if err != nil {
		return err
	}
	d.println(busy)

	d.println(signals.Describe())
	return nil
}

func (d *demo) tensor() error {
	signals, err := d.loadSignals()
	if err != nil {
		return err
	}
	d.println("You can always extract the numeric tensor from the dataframe.")
	data, err := signals.ToMatrix()
	if err != nil {
		return err
	}
	d.println(mat.Formatted(data, mat.Excerpt(3)))
	rows, cols := signals.Shape()
	fmt.Fprintf(d.w, "Shape %2d,%2d:\n", rows, cols)

	d.println("And the other way around: a tensor into a dataframe, with metadata.")
	back, err := frame.FromTensor(tensor.FromMat64(data), []string{"ts", "ct", "e", "att", "med", "blk"})
	if err != nil {
		return err
	}
	rows, cols = back.Shape()
	fmt.Fprintf(d.w, "Shape %2d,%2d:\n", rows, cols)

	again, err := frame.FromMatrix(data, back.Columns())
	if err != nil {
		return err
	}
	fmt.Fprintln(d.w, "Same through gonum/mat:", again.Equal(back))
	return nil
}

func (d *demo) lineplot() error {
	signals, err := d.loadSignals()
	if err != nil {
		return err
	}
	p, err := plotting.Line(signals.Head(200), "timestamp", "eeg", "attention")
	if err != nil {
		return err
	}
	p.Title.Text = "eeg by attention"
	return plotting.Save(p, d.out("lineplot.png"))
}

func (d *demo) dict() error {
	mydataframe, err := frame.FromColumns(map[string][]interface{}{
		"cars":     {"BMW", "Volvo", "Ford"},
		"passings": {3, 7, 2},
	}, "cars", "passings")
	if err != nil {
		return err
	}
	d.println(mydataframe)
	d.println("Column names come from the mapping, row names are consecutive numbers.")
	return nil
}

func (d *demo) read() error {
	signals, err := d.loadSignals()
	if err != nil {
		return err
	}
	d.println(signals.Head(5))

	opts, err := d.cfg.readerOptions(frameio.WithDelimiter(';'))
	if err != nil {
		return err
	}
	dat, err := frameio.LoadCSV(d.ctx, d.data("laliga.csv"), opts...)
	if err != nil {
		return err
	}
	d.println(dat.Head(5))

	d.println("Data can finally be exported to an output file.")
	return frameio.SaveCSV(d.out("out.csv"), dat)
}

const person = `
    {"name": "Wes",
     "places_lived": ["United States", "Spain", "Germany"],
     "pet": null,
     "siblings": [{"name": "Scott", "age": 30, "pets": ["Zeus", "Zuko"]},
                  {"name": "Katie", "age": 38,
                   "pets": ["Sixes", "Stache", "Cisco"]}]
}`

func (d *demo) json() error {
	var results map[string]json.RawMessage
	if err := json.Unmarshal([]byte(person), &results); err != nil {
		return err
	}

	d.println("Pick the part of the JSON object that becomes the dataframe.")
	all, err := frameio.ReadJSON(bytes.NewReader(results["siblings"]))
	if err != nil {
		return err
	}
	siblings, err := all.Select("name", "age")
	if err != nil {
		return err
	}
	d.println(siblings)

	compact, err := json.Marshal(results)
	if err != nil {
		return err
	}
	d.println(string(compact))

	data, err := frameio.LoadJSON(d.ctx, d.data("sample2.json"))
	if err != nil {
		return err
	}
	d.println("It is possible to put it back to a JSON string.")
	return frameio.ToJSON(d.w, data, frameio.Columns)
}

func (d *demo) html() error {
	location := d.data("journals.html")
	if d.cfg.Online {
		location = journalsURL
	}
	opts, err := d.cfg.readerOptions()
	if err != nil {
		return err
	}
	tables, err := frameio.LoadHTML(d.ctx, location, opts...)
	if err != nil {
		return err
	}
	d.println("Journal rankings by SciMago")
	d.println(tables[0].Head(10))
	return nil
}

func calories() *frame.Series {
	return frame.SeriesFromMap("calories", map[string]interface{}{"day1": 420, "day2": 380, "day3": 390})
}

func (d *demo) seriesMap() error {
	d.println("Series are one-index dataframes.")
	d.println(calories())
	d.println("day1, day2, ... are the row names.")
	return nil
}

func (d *demo) pickle() error {
	path := d.out("frame.pickle")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := frameio.SeriesToPickle(file, calories()); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	file, err = os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	newFrame, err := frameio.ReadSeriesPickle(file)
	if err != nil {
		return err
	}
	d.println(newFrame)
	return nil
}

func (d *demo) api() error {
	if !d.cfg.Online {
		d.cfg.log.Info("skipping the commits API cell, run with --online to fetch it")
		return nil
	}
	opts, err := d.cfg.readerOptions()
	if err != nil {
		return err
	}
	sg, err := frameio.LoadJSON(d.ctx, commitsURL, opts...)
	if err != nil {
		return err
	}
	d.println(sg.Head(5))
	return nil
}

func (d *demo) sentinels() error {
	opts, err := d.cfg.readerOptions()
	if err != nil {
		return err
	}
	results, err := frameio.LoadCSV(d.ctx, d.data("sample1.csv"), opts...)
	if err != nil {
		return err
	}
	d.println("Missing cells are found by sentinel values like NaN, NULL and NA.")
	d.println(results.IsNull())
	d.println(results.NotNull())

	d.println("Sentinels can also be given per column.")
	opts = append(opts, frameio.WithColumnNAValues(map[string][]string{
		"message":   {"foo", "NA"},
		"something": {"two"},
	}))
	results, err = frameio.LoadCSV(d.ctx, d.data("sample1.csv"), opts...)
	if err != nil {
		return err
	}
	d.println(results)

	message, err := results.Col("message")
	if err != nil {
		return err
	}
	present, err := results.Filter(message.NotNull())
	if err != nil {
		return err
	}
	d.println(present)
	return nil
}

func (d *demo) dropna() error {
	data, err := frame.NewSeries("", []interface{}{1, nil, 3.5, nil, 7})
	if err != nil {
		return err
	}
	d.println(data.DropNA())
	d.println("The same as")
	same, err := data.Filter(data.NotNull())
	if err != nil {
		return err
	}
	d.println(same)

	d.println("On 2D")
	table, err := grid()
	if err != nil {
		return err
	}
	d.println(table.DropNA(frame.All, frame.Columns))
	d.println(table.DropNA(frame.Any, frame.Rows))
	return nil
}

func grid() (*frame.Frame, error) {
	return frame.FromRows([][]interface{}{
		{1., 6.5, 3.},
		{1., nil, nil},
		{nil, nil, nil},
		{nil, 6.5, 3.},
	}, nil)
}

func (d *demo) fillna() error {
	data, err := grid()
	if err != nil {
		return err
	}
	d.println(data.FillNA(0))

	byColumn, err := data.FillNAColumns(map[string]interface{}{"0": 0.5, "2": 0})
	if err != nil {
		return err
	}
	d.println(byColumn)

	d.println("Forward fill carries the last value down.")
	d.println(data.FFill())

	capped := data.MapValues(func(v frame.Value) frame.Value {
		x, ok := v.Float()
		if !ok || math.Abs(x) <= 1.5 {
			return v
		}
		return frame.Num(math.Copysign(10, x))
	})
	d.println(capped)
	return nil
}

func (d *demo) none() error {
	stringData, err := frame.NewSeries("", []interface{}{"aardvark", "artichoke", math.NaN(), "avocado"})
	if err != nil {
		return err
	}
	if err := stringData.Set(0, nil); err != nil {
		return err
	}
	d.println("nil is a missing marker too.")
	d.println(stringData)
	d.println(stringData.IsNull())
	return nil
}

func cities() (*frame.Series, error) {
	return frame.NewSeries("", []interface{}{"Newark", "Manchester", "Halifax", "Manchester"})
}

func (d *demo) duplicates() error {
	stringData, err := cities()
	if err != nil {
		return err
	}
	d.println(stringData)
	d.println(stringData.DropDuplicates())
	return nil
}

func (d *demo) replace() error {
	stringData, err := cities()
	if err != nil {
		return err
	}
	newframe := stringData.Replace(map[frame.Value]frame.Value{
		frame.Str("Newark"):  frame.NA(),
		frame.Str("Halifax"): frame.Str("Ottawa"),
	})
	d.println(stringData)
	d.println(newframe)
	return nil
}

func (d *demo) series() error {
	a := []interface{}{1, 7, 2}
	series, err := frame.NewSeries("", a)
	if err != nil {
		return err
	}
	d.println(series)

	d.println("By default the index is a range over the elements.")
	series, err = frame.NewSeries("", a, "x", "y", "z")
	if err != nil {
		return err
	}
	d.println(series)
	d.println(series.Values())
	d.println(series.Index().Labels())

	x, err := series.Value("x")
	if err != nil {
		return err
	}
	d.println(x)
	big, err := series.Filter(series.Gt(1))
	if err != nil {
		return err
	}
	d.println(big)
	d.println(series.MulScalar(2))
	d.println(series.MapFloat(math.Exp))
	d.println(series.Contains("x"))
	d.println(series.Contains("r"))
	return nil
}

func (d *demo) alignment() error {
	a := []interface{}{1, 7, 2}
	series1, err := frame.NewSeries("", a, "x", "y", "z")
	if err != nil {
		return err
	}
	series2, err := frame.NewSeries("", a, "y", "z", "r")
	if err != nil {
		return err
	}
	series3, err := series1.Add(series2)
	if err != nil {
		return err
	}
	d.println("Labels drive arithmetic: only y and z are in both operands.")
	d.println(series1)
	d.println(series2)
	d.println(series3)
	return nil
}

func states() (*frame.Frame, error) {
	return frame.FromColumns(map[string][]interface{}{
		"state": {"Ohio", "Ohio", "Ohio", "Nevada", "Nevada", "Nevada"},
		"year":  {2000, 2001, 2002, 2001, 2002, 2003},
		"pop":   {1.5, 1.7, 3.6, 2.4, 2.9, 3.2},
	}, "state", "year", "pop")
}

func (d *demo) dynamic() error {
	f, err := states()
	if err != nil {
		return err
	}
	d.println(f)
	state, err := f.Col("state")
	if err != nil {
		return err
	}
	d.println(state)

	d.println("Rows can have names instead of positions.")
	if err := f.SetIndexLabels("one", "two", "three", "four", "five", "six"); err != nil {
		return err
	}
	d.println(f)

	d.println("Whole columns and rows can be set.")
	f.SetScalar("pop", 9.0)
	if err := f.SetRow("three", 9.0); err != nil {
		return err
	}
	d.println(f)

	val, err := frame.NewSeries("", []interface{}{11, 12, 13}, "two", "four", "five")
	if err != nil {
		return err
	}
	if err := f.SetSeries("pop", val); err != nil {
		return err
	}
	d.println("pop is replaced by val, aligned on the row names.")
	d.println(f)

	state, err = f.Col("state")
	if err != nil {
		return err
	}
	if err := f.SetSeries("Casinos", state.Eq("Nevada")); err != nil {
		return err
	}
	d.println(f)
	if err := f.DeleteColumn("Casinos"); err != nil {
		return err
	}
	f.SetColumnsName("Variables")
	f.SetIndexNames("Locations")
	d.println(f)
	return nil
}

func (d *demo) reindex() error {
	series1, err := frame.NewSeries("", []interface{}{1, 7, 2}, "x", "y", "z")
	if err != nil {
		return err
	}
	series2, err := series1.Reindex("x", "z", "e")
	if err != nil {
		return err
	}
	d.println(series2)

	d.println("Overwriting the labels is not the same thing:")
	series3, err := series1.WithIndex("x", "p", "d")
	if err != nil {
		return err
	}
	d.println(series3)
	return nil
}

func numbers4x4() (*frame.Frame, error) {
	rows := make([][]interface{}, 4)
	for i := range rows {
		rows[i] = []interface{}{4 * i, 4*i + 1, 4*i + 2, 4*i + 3}
	}
	f, err := frame.FromRows(rows, []string{"one", "two", "three", "four"})
	if err != nil {
		return nil, err
	}
	return f.WithIndex("Ohio", "Colorado", "Utah", "New York")
}

func (d *demo) slicing() error {
	data, err := numbers4x4()
	if err != nil {
		return err
	}
	dropped, err := data.Drop("Colorado", "Ohio")
	if err != nil {
		return err
	}
	d.println(dropped)
	noFour, err := data.DropColumns("four")
	if err != nil {
		return err
	}
	d.println(noFour)

	d.println("Label slices include the end point.")
	steps := []func() (fmt.Stringer, error){
		func() (fmt.Stringer, error) { return data.Loc(frame.LabelRange("Ohio", "Utah")) },
		func() (fmt.Stringer, error) { return data.Loc(frame.Labels("Colorado"), "two", "three") },
		func() (fmt.Stringer, error) { return data.ILoc(frame.Positions(2), frame.Positions(3, 0, 1)) },
		func() (fmt.Stringer, error) { return data.Loc(frame.LabelRange(nil, "Utah"), "two") },
		func() (fmt.Stringer, error) {
			three, err := data.Col("three")
			if err != nil {
				return nil, err
			}
			first, err := data.ILoc(frame.AllPos(), frame.PosRange(0, 3))
			if err != nil {
				return nil, err
			}
			return first.Filter(three.Gt(5))
		},
	}
	for _, step := range steps {
		res, err := step()
		if err != nil {
			return err
		}
		d.println(res)
	}
	return nil
}

func randomFrame() (*frame.Frame, error) {
	rows := make([][]interface{}, 4)
	for i := range rows {
		rows[i] = []interface{}{distuv.UnitNormal.Rand(), distuv.UnitNormal.Rand(), distuv.UnitNormal.Rand()}
	}
	f, err := frame.FromRows(rows, []string{"b", "d", "e"})
	if err != nil {
		return nil, err
	}
	return f.WithIndex("Utah", "Ohio", "Texas", "Oregon")
}

func spread(s *frame.Series) frame.Value {
	hi, err := s.Agg(frame.Max)
	if err != nil {
		return frame.NA()
	}
	lo, err := s.Agg(frame.Min)
	if err != nil {
		return frame.NA()
	}
	x, _ := hi.Float()
	y, _ := lo.Float()
	return frame.Num(x - y)
}

func (d *demo) mappings() error {
	f, err := randomFrame()
	if err != nil {
		return err
	}
	d.println(f.MapValues(func(v frame.Value) frame.Value {
		x, ok := v.Float()
		if !ok {
			return v
		}
		return frame.Num(math.Abs(x))
	}))
	d.println(f.Apply(spread, frame.Rows))
	d.println(f.Apply(spread, frame.Columns))

	format := func(v frame.Value) frame.Value {
		x, _ := v.Float()
		return frame.Str(fmt.Sprintf("%.2f", x))
	}
	d.println(f.MapValues(format))
	e, err := f.Col("e")
	if err != nil {
		return err
	}
	d.println(e.Map(format))
	return nil
}

func (d *demo) uniqueness() error {
	obj, err := frame.NewSeries("", []interface{}{0, 1, 2, 3, 4}, "a", "a", "b", "b", "c")
	if err != nil {
		return err
	}
	d.println(obj.Index().IsUnique())
	a, err := obj.Get("a")
	if err != nil {
		return err
	}
	d.println("A repeated label gives a series:")
	d.println(a)
	c, err := obj.Value("c")
	if err != nil {
		return err
	}
	d.println("A unique one gives a scalar:", c)
	return nil
}

func (d *demo) hierarchical() error {
	outer := []interface{}{"a", "a", "a", "b", "b", "c", "c", "d", "d"}
	inner := []interface{}{1, 2, 3, 1, 3, 1, 2, 2, 3}
	ix, err := frame.MultiIndex(outer, inner)
	if err != nil {
		return err
	}
	vs := make([]frame.Value, ix.Len())
	for i := range vs {
		vs[i] = frame.Num(distuv.UnitNormal.Rand())
	}
	data, err := frame.SeriesOn("", vs, ix)
	if err != nil {
		return err
	}
	d.println(data)

	b, err := data.XS("b")
	if err != nil {
		return err
	}
	d.println(b)
	bc, err := data.Loc(frame.LabelRange("b", "c"))
	if err != nil {
		return err
	}
	d.println(bc)

	d.println("Unstack lays the inner level out as columns.")
	wide, err := data.Unstack()
	if err != nil {
		return err
	}
	d.println(wide)
	d.println(wide.Stack())
	return nil
}

func (d *demo) setIndex() error {
	f, err := frame.FromColumns(map[string][]interface{}{
		"a": {0, 1, 2, 3, 4, 5, 6},
		"b": {7, 6, 5, 4, 3, 2, 1},
		"c": {"one", "one", "one", "two", "two", "two", "two"},
		"d": {0, 1, 2, 0, 1, 2, 3},
	}, "a", "b", "c", "d")
	if err != nil {
		return err
	}
	indexed, err := f.SetIndex([]string{"c", "d"}, false)
	if err != nil {
		return err
	}
	d.println(indexed)

	reset, err := f.ResetIndex()
	if err != nil {
		return err
	}
	d.println(reset)
	return nil
}

func (d *demo) groupby() error {
	yields := func() int { return int(distuv.Uniform{Min: 0, Max: 60}.Rand()) }
	data := []map[string]interface{}{
		{"Year": 2000, "Yields": yields(), "Location": "Colchester"},
		{"Year": 2000, "Yields": yields(), "Location": "Manchester"},
		{"Year": 2001, "Yields": yields(), "Location": "Colchester"},
		{"Year": 2001, "Yields": yields(), "Location": "Oxford"},
		{"Year": 2002, "Yields": yields(), "Location": "Colchester"},
		{"Year": 2002, "Yields": yields(), "Location": "Oxford"},
		{"Year": 2003, "Yields": yields(), "Location": "Manchester"},
	}
	df, err := frame.FromRecords(data, "Year", "Yields", "Location")
	if err != nil {
		return err
	}
	g, err := df.GroupBy("Location", "Year")
	if err != nil {
		return err
	}
	grp, err := g.Sorted().Agg(
		frame.Agg{Column: "Yields", Func: frame.Mean, Name: "yield_mean"},
		frame.Agg{Column: "Yields", Func: frame.Min, Name: "yield_min"},
		frame.Agg{Column: "Yields", Func: frame.Max, Name: "yield_max"},
	)
	if err != nil {
		return err
	}
	d.println(grp)
	return nil
}

func (d *demo) plots() error {
	opts, err := d.cfg.readerOptions(frameio.WithDelimiter(';'))
	if err != nil {
		return err
	}
	df, err := frameio.LoadCSV(d.ctx, d.data("laliga.csv"), opts...)
	if err != nil {
		return err
	}
	sc, err := plotting.Scatter(df, "MP", "FA_GIVEN", "La Liga")
	if err != nil {
		return err
	}
	if err := plotting.Save(sc, d.out("scatter.png")); err != nil {
		return err
	}

	goals, err := df.Col("GOAL")
	if err != nil {
		return err
	}
	h, err := plotting.Hist(goals, 10, "GOAL")
	if err != nil {
		return err
	}
	return plotting.Save(h, d.out("hist.png"))
}
