// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command densityplot overlays kernel density estimates of penguin
// flipper length, one curve per species, and annotates each curve at
// its peak.
//
// Overlaid densities are the chart for comparing the shape of a
// handful of distributions: where strips and beans give each group
// its own lane, densities share one pair of axes, so shifts and
// overlaps between groups are directly readable. Past four or five
// groups the curves tangle and faceting wins.
//
// Annotation is done in data space, not by drawing on the image: a
// stat reduces each group to the single row at its density peak with
// a label column, and a tag layer attaches the labels to those
// points. Annotations built this way survive any change of scales or
// facets.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
)

func main() {
	log.SetPrefix("densityplot: ")
	log.SetFlags(0)

	var flagOut = flag.String("o", "", "write SVG output to `file` (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	plot := densityPlot(dataset.Penguins())

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	plot.WriteSVG(f, 600, 400)
}

func densityPlot(tab table.Grouping) *gg.Plot {
	plot := gg.NewPlot(table.GroupBy(tab, "Species"))
	plot.Stat(ggstat.Density{X: "Flipper"})
	plot.Add(gg.LayerLines{X: "Flipper", Y: "probability density", Color: "Species"})

	// Interactive tooltip giving the curve and position under the
	// cursor.
	plot.Stat(tooltip{X: "Flipper", Label: "Species"})
	plot.Add(gg.LayerTooltips{X: "Flipper", Y: "probability density", Label: "tooltip"})

	// Tag each curve at its peak.
	plot.Save()
	plot.Stat(peak{X: "Flipper", Y: "probability density", Label: "Species"})
	plot.Add(gg.LayerTags{X: "Flipper", Y: "probability density", Label: "tag"})
	plot.Restore()

	plot.Add(gg.AxisLabel("x", "flipper length (mm)"))
	plot.Add(gg.Title("Flipper length density by species"))
	return plot
}

// tooltip adds a "tooltip" column of "<label> at <x>" strings.
type tooltip struct {
	X, Label string
}

func (s tooltip) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		label := ""
		if v, ok := t.Const(s.Label); ok {
			label = fmt.Sprint(v)
		}
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		tips := make([]string, len(xs))
		for i, x := range xs {
			tips[i] = fmt.Sprintf("%s at %.0f mm", label, x)
		}
		return table.NewBuilder(t).Add("tooltip", tips).Done()
	})
}

// peak reduces each group to the row where Y is largest, adding a
// "tag" column with that group's Label value.
type peak struct {
	X, Y, Label string
}

func (s peak) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		slice.Convert(&ys, t.MustColumn(s.Y))
		best := 0
		for i, y := range ys {
			if y > ys[best] {
				best = i
			}
		}
		label := ""
		if v, ok := t.Const(s.Label); ok {
			label = fmt.Sprint(v)
		}
		return new(table.Builder).
			Add(s.X, []float64{xs[best]}).
			Add(s.Y, []float64{ys[best]}).
			Add("tag", []string{label}).
			Done()
	})
}
