// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command beanplot draws a bean plot of penguin flipper length, one
// facet per species.
//
// A bean plot is a density estimate mirrored about its baseline, with
// the raw observations drawn along the center line. It answers the
// question a box plot dodges: what is the shape of the distribution?
// Bimodality, skew, and outliers are all visible, and the raw points
// keep the estimate honest when a group is small.
//
// The pipeline groups the built-in penguin table by species, takes a
// kernel density estimate per group, mirrors the density column, and
// shades between the density and its mirror in each facet, overlaying
// the raw points at the baseline.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
	"github.com/plotbook/plotbook/ggextra"
)

func main() {
	log.SetPrefix("beanplot: ")
	log.SetFlags(0)

	var flagOut = flag.String("o", "", "write SVG output to `file` (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	plot := beanPlot(dataset.Penguins())

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	plot.WriteSVG(f, 500, 600)
}

func beanPlot(tab table.Grouping) *gg.Plot {
	plot := gg.NewPlot(table.GroupBy(tab, "Species"))
	plot.Add(gg.FacetY{Col: "Species"})

	// Faceted raw observations, kept aside for the center-line strip.
	raw := plot.Data()

	plot.Stat(ggstat.Density{X: "Flipper"})
	plot.Stat(ggextra.Mirror{X: "probability density"})
	plot.Add(gg.LayerArea{
		X:     "Flipper",
		Upper: "probability density",
		Lower: "mirrored probability density",
		Fill:  plot.Const(color.Gray{192}),
	})

	// Raw observations along the center line.
	plot.Save()
	plot.SetData(table.MapTables(raw, func(_ table.GroupID, t *table.Table) *table.Table {
		return table.NewBuilder(t).Add("baseline", make([]float64, t.Len())).Done()
	}))
	plot.Add(gg.LayerPoints{X: "Flipper", Y: "baseline"})
	plot.Restore()

	plot.Add(gg.AxisLabel("x", "flipper length (mm)"))
	plot.Add(gg.AxisLabel("y", "density"))
	plot.Add(gg.Title("Flipper length distributions"))
	return plot
}
