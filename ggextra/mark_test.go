// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggextra

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// renderSVG applies plotters to a plot over tab and renders it,
// failing the test on error. The marks in this package are data
// transforms feeding stock layers, so rendering end-to-end is the
// test that matters.
func renderSVG(t *testing.T, tab table.Grouping, plotters ...gg.Plotter) string {
	t.Helper()
	p := gg.NewPlot(tab)
	p.Add(plotters...)
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 400, 300); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty SVG output")
	}
	return buf.String()
}

func TestBars(t *testing.T) {
	tab := new(table.Builder).
		Add("q", []string{"Q1", "Q2", "Q3"}).
		Add("v", []float64{3, 5, 2}).
		Done()
	svg := renderSVG(t, tab, Bars{X: "q", Y: "v"})
	if !strings.Contains(svg, "<svg") {
		t.Error("output does not look like SVG")
	}
}

func TestBarsOrdinalAndNumericX(t *testing.T) {
	// Bars must accept a numeric category axis too.
	tab := new(table.Builder).
		Add("month", []int{1, 2, 3}).
		Add("v", []float64{3, 5, 2}).
		Done()
	renderSVG(t, tab, Bars{X: "month", Y: "v"})
}

func TestLollipop(t *testing.T) {
	tab := new(table.Builder).
		Add("city", []string{"Oslo", "Cairo"}).
		Add("delta", []float64{20.7, 14.5}).
		Done()
	renderSVG(t, tab, Lollipop{X: "city", Y: "delta"})
}

func TestDumbbell(t *testing.T) {
	tab := new(table.Builder).
		Add("city", []string{"Oslo", "Cairo"}).
		Add("jan", []float64{-4.3, 13.9}).
		Add("jul", []float64{16.4, 28.4}).
		Done()
	renderSVG(t, tab, Dumbbell{Y: "city", X1: "jan", X2: "jul"})
}
