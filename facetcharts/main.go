// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command facetcharts draws the monthly-revenue sample as a faceted
// bar, step, or area chart, one facet per product.
//
// Faceting trades a shared canvas for a shared scale: each product
// gets its own panel, but every panel uses the same axes, so
// comparisons across panels stay honest. The -kind flag picks the
// mark:
//
//   - bar: mean monthly revenue per quarter, drawn as stem bars. Bars
//     suit a few ordered categories where the zero baseline matters.
//   - step: cumulative revenue over the year. Steps emphasize that
//     the total only changes when a month closes; nothing is
//     interpolated between observations.
//   - area: the same cumulative revenue with the region under the
//     curve filled, which reads as "amount accumulated so far".
//
// All three share one reshaping pipeline (group by product, then
// aggregate to quarters or accumulate over months) and differ only in
// the final layer, which is the point of a grammar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
	"github.com/plotbook/plotbook/ggextra"
)

func main() {
	log.SetPrefix("facetcharts: ")
	log.SetFlags(0)

	var (
		flagOut  = flag.String("o", "", "write SVG output to `file` (default: stdout)")
		flagKind = flag.String("kind", "bar", "chart `kind`: bar, step, or area")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	plot, err := revenuePlot(dataset.Quarters(), *flagKind)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	plot.WriteSVG(f, 800, 300)
}

func revenuePlot(tab table.Grouping, kind string) (*gg.Plot, error) {
	plot := gg.NewPlot(table.GroupBy(tab, "Product"))
	plot.Add(gg.FacetX{Col: "Product"})

	switch kind {
	case "bar":
		plot.Stat(ggstat.Agg("Quarter")(ggstat.AggMean("Revenue")))
		plot.Add(ggextra.Bars{X: "Quarter", Y: "mean Revenue"})
		plot.Add(gg.AxisLabel("y", "mean monthly revenue"))
	case "step":
		plot.SortBy("Month")
		plot.Stat(ggextra.CumSum{X: "Revenue"})
		plot.Add(gg.LayerSteps{
			LayerPaths: gg.LayerPaths{X: "Month", Y: "cumulative Revenue"},
			Step:       gg.StepHV,
		})
		plot.Add(gg.AxisLabel("y", "cumulative revenue"))
	case "area":
		plot.SortBy("Month")
		plot.Stat(ggextra.CumSum{X: "Revenue"})
		plot.Add(gg.LayerArea{X: "Month", Upper: "cumulative Revenue", Fill: "Product"})
		plot.Add(gg.AxisLabel("y", "cumulative revenue"))
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}

	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.Title("Revenue by product"))
	return plot, nil
}
