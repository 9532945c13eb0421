// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calheat draws a year of daily activity as a calendar heat
// map.
//
// A calendar heat map is the chart for "when did it happen?" data:
// one cell per day, weeks as columns, color as magnitude. Weekly
// rhythm shows up as horizontal banding, bursts as isolated dark
// cells, and seasonal drift as a slow change across the grid. It is a
// poor chart for reading exact values (that is what the table is
// for), but nothing else makes a year of daily structure legible in
// one glance.
//
// The grid geometry comes from the calendar, not the data, so this
// section uses a custom gonum/plot plotter (package calendar) rather
// than the grammar's tile layer. Output is PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/plotbook/plotbook/calendar"
	"github.com/plotbook/plotbook/dataset"
)

func main() {
	log.SetPrefix("calheat: ")
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

	h, err := calendar.NewHeatmap(dates, counts)
	if err != nil {
		log.Fatal(err)
	}

	p := plot.New()
	p.Title.Text = "Daily activity"
	p.HideAxes()
	p.Add(h)

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	if err := calendar.WritePNG(p, f, 10*vg.Inch, 2*vg.Inch); err != nil {
		log.Fatal(err)
	}
}
