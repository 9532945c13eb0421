// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stripchart draws a strip chart of penguin flipper length by
// species.
//
// A strip chart shows every observation as a dot along the value
// axis, one lane per group. It is the first chart to reach for with a
// few dozen points per group: unlike a box plot it hides nothing, and
// unlike a histogram it needs no binning decision. Its weakness is
// overplotting; identical or near-identical values land on top of
// each other. The -jitter flag displaces each dot a small random
// amount across its lane, which keeps ties visible at the cost of a
// little positional noise.
//
// The pipeline derives a numeric lane per species from the built-in
// penguin table, optionally jitters the lane, then maps flipper
// length to x, lane to y, and species to color.
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
	log.SetPrefix("stripchart: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write SVG output to `file` (default: stdout)")
		flagJitter = flag.Bool("jitter", false, "jitter points across their lane")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	plot := stripPlot(dataset.Penguins(), *flagJitter)

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	plot.WriteSVG(f, 600, 300)
}

func stripPlot(tab table.Grouping, jitter bool) *gg.Plot {
	plot := gg.NewPlot(tab)
	plot.Stat(lane{"Species"})
	y := "lane"
	if jitter {
		plot.Stat(ggextra.Jitter{X: "lane", Amount: 0.18, Seed: 1})
		y = "jittered lane"
	}
	plot.Add(gg.LayerPoints{X: "Flipper", Y: y, Color: "Species"})
	plot.Add(gg.AxisLabel("x", "flipper length (mm)"))
	plot.Add(gg.AxisLabel("y", "species"))
	plot.Add(gg.Title("Flipper length by species"))
	return plot
}

// lane assigns each distinct value of Col a numeric lane, in order of
// first appearance, so the category axis can be jittered.
type lane struct {
	Col string
}

func (l lane) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		vals := t.MustColumn(l.Col).([]string)
		idx := make(map[string]int)
		lanes := make([]float64, len(vals))
		for i, v := range vals {
			j, ok := idx[v]
			if !ok {
				j = len(idx)
				idx[v] = j
			}
			lanes[i] = float64(j)
		}
		return table.NewBuilder(t).Add("lane", lanes).Done()
	})
}
