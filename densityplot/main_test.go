// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
)

func TestTooltip(t *testing.T) {
	tab := new(table.Builder).
		Add("Flipper", []float64{190, 195}).
		AddConst("Species", "adelie").
		Done()

	g := tooltip{X: "Flipper", Label: "Species"}.F(tab)
	out := g.Table(g.Tables()[0])

	want := []string{"adelie at 190 mm", "adelie at 195 mm"}
	if got := out.MustColumn("tooltip").([]string); !reflect.DeepEqual(got, want) {
		t.Errorf("tooltip = %v; want %v", got, want)
	}
}

func TestPeak(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("density", []float64{0.1, 0.5, 0.2}).
		AddConst("Species", "gentoo").
		Done()

	g := peak{X: "x", Y: "density", Label: "Species"}.F(tab)
	out := g.Table(g.Tables()[0])

	if out.Len() != 1 {
		t.Fatalf("peak kept %d rows; want 1", out.Len())
	}
	if x := out.MustColumn("x").([]float64)[0]; x != 2 {
		t.Errorf("peak x = %v; want 2", x)
	}
	if y := out.MustColumn("density").([]float64)[0]; y != 0.5 {
		t.Errorf("peak density = %v; want 0.5", y)
	}
	if tag := out.MustColumn("tag").([]string)[0]; tag != "gentoo" {
		t.Errorf("peak tag = %q; want %q", tag, "gentoo")
	}
}

func TestDensityPlot(t *testing.T) {
	var buf bytes.Buffer
	if err := densityPlot(dataset.Penguins()).WriteSVG(&buf, 600, 400); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty SVG output")
	}
}
