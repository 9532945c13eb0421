// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggextra

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestCumSum(t *testing.T) {
	tab := new(table.Builder).
		Add("g", []string{"a", "a", "a", "b", "b"}).
		Add("x", []float64{1, 2, 3, 10, 20}).
		Done()
	out := CumSum{X: "x"}.F(table.GroupBy(tab, "g"))

	want := map[string][]float64{
		"a": {1, 3, 6},
		"b": {10, 30},
	}
	for _, gid := range out.Tables() {
		ot := out.Table(gid)
		g := ot.MustColumn("g").([]string)[0]
		got := ot.MustColumn("cumulative x").([]float64)
		if !reflect.DeepEqual(got, want[g]) {
			t.Errorf("group %q: cumulative x = %v; want %v", g, got, want[g])
		}
	}
}

func TestCumSumIntColumn(t *testing.T) {
	// Integer columns convert, since coerced CSV data arrives as []int.
	tab := new(table.Builder).Add("x", []int{1, 2, 4}).Done()
	got := CumSum{X: "x"}.F(tab).Table(table.RootGroupID).MustColumn("cumulative x").([]float64)
	if want := []float64{1, 3, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("cumulative x = %v; want %v", got, want)
	}
}

func TestRollingMean(t *testing.T) {
	tab := new(table.Builder).Add("x", []float64{2, 4, 6, 8}).Done()

	got := RollingMean{X: "x", N: 2}.F(tab).Table(table.RootGroupID).MustColumn("rolling mean x").([]float64)
	if want := []float64{2, 3, 5, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("window 2: %v; want %v", got, want)
	}

	// A window wider than the data is the plain running mean.
	got = RollingMean{X: "x", N: 10}.F(tab).Table(table.RootGroupID).MustColumn("rolling mean x").([]float64)
	if want := []float64{2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("window 10: %v; want %v", got, want)
	}
}

func TestCountBy(t *testing.T) {
	tab := new(table.Builder).
		Add("q", []string{"Q1", "Q2", "Q1", "Q1", "Q2"}).
		Done()
	ot := CountBy{X: "q"}.F(tab).Table(table.RootGroupID)

	// First-appearance order, not sorted order.
	if got, want := ot.MustColumn("q").([]string), []string{"Q1", "Q2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("q = %v; want %v", got, want)
	}
	if got, want := ot.MustColumn("count").([]int), []int{3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("count = %v; want %v", got, want)
	}
}

func TestCountByPreservesConsts(t *testing.T) {
	tab := new(table.Builder).
		Add("g", []string{"a", "a", "b"}).
		Add("q", []string{"Q1", "Q1", "Q2"}).
		Done()
	out := CountBy{X: "q"}.F(table.GroupBy(tab, "g"))
	for _, gid := range out.Tables() {
		if _, ok := out.Table(gid).Const("g"); !ok {
			t.Errorf("group %v lost constant column g", gid)
		}
	}
}

func TestJitter(t *testing.T) {
	xs := []float64{10, 20, 30, 40}
	tab := new(table.Builder).Add("x", xs).Done()

	j := Jitter{X: "x", Amount: 0.5, Seed: 1}
	got := j.F(tab).Table(table.RootGroupID).MustColumn("jittered x").([]float64)
	for i, v := range got {
		if math.Abs(v-xs[i]) > 0.5 {
			t.Errorf("row %d: jittered %v is more than 0.5 from %v", i, v, xs[i])
		}
	}

	// Same seed, same noise.
	again := j.F(tab).Table(table.RootGroupID).MustColumn("jittered x").([]float64)
	if !reflect.DeepEqual(got, again) {
		t.Error("jitter is not deterministic for a fixed seed")
	}
}

func TestJitterDefaultAmount(t *testing.T) {
	xs := []float64{0, 100}
	tab := new(table.Builder).Add("x", xs).Done()
	got := Jitter{X: "x", Seed: 1}.F(tab).Table(table.RootGroupID).MustColumn("jittered x").([]float64)
	for i, v := range got {
		if math.Abs(v-xs[i]) > 2 { // 2% of the span
			t.Errorf("row %d: jittered %v is more than 2 from %v", i, v, xs[i])
		}
	}
}

func TestMirror(t *testing.T) {
	tab := new(table.Builder).Add("d", []float64{0, 0.5, 1.25}).Done()
	got := Mirror{X: "d"}.F(tab).Table(table.RootGroupID).MustColumn("mirrored d").([]float64)
	if want := []float64{0, -0.5, -1.25}; !reflect.DeepEqual(got, want) {
		t.Errorf("mirrored d = %v; want %v", got, want)
	}
}
