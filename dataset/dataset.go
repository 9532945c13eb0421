// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the small sample tables used throughout the
// notebook, plus loaders for tabular files.
//
// The built-in samples are deliberately tiny. Every notebook section
// is about the shape of a pipeline, not the size of the data, so each
// sample is just big enough to make its chart read well.
package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/aclements/go-gg/table"
)

// Penguin is one observation from the penguin morphology sample.
type Penguin struct {
	Species string
	Flipper float64 // flipper length in mm
	Mass    float64 // body mass in g
}

// Penguins returns the penguin morphology sample: three species with
// distinct but overlapping flipper-length distributions. It is the
// dataset of choice for the strip, bean, and density sections because
// the group structure is obvious at a glance.
func Penguins() *table.Table {
	return table.TableFromStructs(penguins)
}

var penguins = []Penguin{
	{"Adelie", 181, 3750}, {"Adelie", 186, 3800}, {"Adelie", 195, 3250},
	{"Adelie", 193, 3450}, {"Adelie", 190, 3650}, {"Adelie", 181, 3625},
	{"Adelie", 195, 4675}, {"Adelie", 193, 3475}, {"Adelie", 190, 4250},
	{"Adelie", 186, 3300}, {"Adelie", 180, 3700}, {"Adelie", 182, 3200},
	{"Chinstrap", 192, 3500}, {"Chinstrap", 196, 3900}, {"Chinstrap", 193, 3650},
	{"Chinstrap", 188, 3525}, {"Chinstrap", 197, 3725}, {"Chinstrap", 198, 3950},
	{"Chinstrap", 178, 3250}, {"Chinstrap", 197, 3750}, {"Chinstrap", 195, 4150},
	{"Chinstrap", 198, 3700}, {"Chinstrap", 193, 4000}, {"Chinstrap", 194, 3775},
	{"Gentoo", 211, 4500}, {"Gentoo", 230, 5700}, {"Gentoo", 210, 4450},
	{"Gentoo", 218, 5700}, {"Gentoo", 215, 5400}, {"Gentoo", 210, 4550},
	{"Gentoo", 211, 4800}, {"Gentoo", 219, 5200}, {"Gentoo", 209, 4400},
	{"Gentoo", 215, 5150}, {"Gentoo", 214, 4650}, {"Gentoo", 216, 5550},
}

// Sale is one month of revenue for one product.
type Sale struct {
	Product string
	Quarter string
	Month   int // 1-12
	Revenue float64
}

// Quarters returns a year's worth of monthly revenue for three
// products. The faceted bar/step/area section aggregates it to
// quarters and accumulates it over the year.
func Quarters() *table.Table {
	return table.TableFromStructs(sales)
}

var sales = func() []Sale {
	// Deterministic synthetic revenue: each product has a base level,
	// a trend, and a seasonal swing.
	products := []struct {
		name        string
		base, trend float64
		swing       float64
		peak        int // month of seasonal peak
	}{
		{"anvils", 120, 2.0, 25, 11},
		{"rockets", 80, 4.5, 10, 6},
		{"tunnels", 150, -1.0, 40, 3},
	}
	quarters := []string{"Q1", "Q1", "Q1", "Q2", "Q2", "Q2", "Q3", "Q3", "Q3", "Q4", "Q4", "Q4"}
	var out []Sale
	for _, p := range products {
		for m := 1; m <= 12; m++ {
			phase := float64(m-p.peak) / 12 * 2 * math.Pi
			rev := p.base + p.trend*float64(m) + p.swing*math.Cos(phase)
			out = append(out, Sale{p.name, quarters[m-1], m, rev})
		}
	}
	return out
}()

// CityTemp pairs a city with its January and July mean temperature in
// degrees Celsius.
type CityTemp struct {
	City string
	Jan  float64
	Jul  float64
}

// CityTemps returns the paired-temperature sample used by the dumbbell
// and lollipop section.
func CityTemps() *table.Table {
	return table.TableFromStructs(cityTemps)
}

var cityTemps = []CityTemp{
	{"Reykjavik", -0.5, 11.2},
	{"Oslo", -4.3, 16.4},
	{"Berlin", 0.6, 19.1},
	{"Madrid", 6.3, 25.6},
	{"Athens", 9.9, 28.2},
	{"Cairo", 13.9, 28.4},
	{"Singapore", 26.5, 27.4},
	{"Wellington", 17.8, 8.8},
}

// Activity returns one year of synthetic daily event counts starting
// Jan 1, with a weekly rhythm and occasional bursts. The calendar
// heat-map and quickchart sections both draw it.
func Activity() *table.Table {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	n := 366
	dates := make([]time.Time, n)
	counts := make([]float64, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		dates[i] = d
		c := 6.0
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			c = 1.5
		}
		c += rng.Float64() * 4
		if rng.Intn(20) == 0 {
			c += 15 // burst
		}
		counts[i] = float64(int(c))
	}
	return new(table.Builder).Add("date", dates).Add("count", counts).Done()
}
