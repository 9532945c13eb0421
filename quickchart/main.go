// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quickchart renders the daily-activity sample with a plain
// chart library instead of the grammar.
//
// The rest of the notebook reshapes tables and binds columns to
// visual channels. That machinery earns its keep the moment a chart
// needs grouping, faceting, or derived columns, but a one-off time
// series with a trend line does not. For that, a direct chart library
// is less code and produces a PNG without a rasterization step: hand
// it the x and y slices and render. When you find yourself reshaping
// data before calling a library like this, that is the signal to
// switch to the grammar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/plotbook/plotbook/dataset"
)

func main() {
	log.SetPrefix("quickchart: ")
	log.SetFlags(0)

	var flagOut = flag.String("o", "", "write PNG output to `file` (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	tab := dataset.Activity()
	dates := tab.MustColumn("date").([]time.Time)
	counts := tab.MustColumn("count").([]float64)

	daily := chart.TimeSeries{
		Name:    "events",
		XValues: dates,
		YValues: counts,
	}
	graph := chart.Chart{
		Title:  "Daily activity",
		Width:  900,
		Height: 300,
		Series: []chart.Series{
			daily,
			chart.SMASeries{
				Name:        "14-day trend",
				Period:      14,
				InnerSeries: daily,
			},
		},
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
	if err := graph.Render(chart.PNG, f); err != nil {
		log.Fatal(err)
	}
}
