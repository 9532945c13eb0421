// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dumbbell draws January and July mean temperatures for a set
// of cities as a dumbbell plot, or their difference as a lollipop
// plot.
//
// A dumbbell plot shows two paired values per category as dots joined
// by a segment. It beats a grouped bar chart when the question is
// "how far apart are the pair?", because the segment length is the
// answer. When only the difference matters, collapse each pair to one
// number and use a lollipop (-lollipop): a stem from zero with a dot
// at the value, which keeps signed differences readable: Wellington,
// in the southern hemisphere, hangs below the baseline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
	"github.com/plotbook/plotbook/ggextra"
)

func main() {
	log.SetPrefix("dumbbell: ")
	log.SetFlags(0)

	var (
		flagOut      = flag.String("o", "", "write SVG output to `file` (default: stdout)")
		flagLollipop = flag.Bool("lollipop", false, "draw July-January deltas as a lollipop plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	plot := tempsPlot(dataset.CityTemps(), *flagLollipop)

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

func tempsPlot(tab table.Grouping, lollipop bool) *gg.Plot {
	plot := gg.NewPlot(tab)
	if lollipop {
		plot.Stat(delta{})
		plot.Add(ggextra.Lollipop{X: "City", Y: "July - January"})
		plot.SetScale("y", gg.NewLinearScaler().Include(0))
		plot.Add(gg.AxisLabel("y", "July - January (°C)"))
		plot.Add(gg.Title("Seasonal temperature swing"))
	} else {
		plot.Add(ggextra.Dumbbell{Y: "City", X1: "Jan", X2: "Jul"})
		plot.Add(gg.AxisLabel("x", "mean temperature (°C)"))
		plot.Add(gg.Title("January vs July temperatures"))
	}
	return plot
}

// delta adds a "July - January" column.
type delta struct{}

func (delta) F(g table.Grouping) table.Grouping {
	return table.MapCols(g, func(jan, jul, out []float64) {
		for i := range jan {
			out[i] = jul[i] - jan[i]
		}
	}, "Jan", "Jul")("July - January")
}
