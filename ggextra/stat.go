// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggextra supplies the handful of table stats and plot layers
// the notebook sections share and go-gg does not provide: cumulative
// sums, rolling means, category counts, jitter, mirrored densities,
// and the dumbbell/lollipop/stem-bar marks built from paths and
// points.
//
// Every stat here follows the ggstat convention: a struct whose F
// method maps a table.Grouping to a new table.Grouping, adding derived
// columns and preserving constant columns from the input.
package ggextra

import (
	"math/rand"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// CumSum adds column "cumulative <X>" giving the running total of
// column X within each group, in the table's current row order. Sort
// first if the order matters.
type CumSum struct {
	// X is the name of the column to accumulate. It must be
	// convertible to []float64.
	X string
}

func (s CumSum) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		sums := make([]float64, len(xs))
		sum := 0.0
		for i, x := range xs {
			sum += x
			sums[i] = sum
		}
		return table.NewBuilder(t).Add("cumulative "+s.X, sums).Done()
	})
}

// RollingMean adds column "rolling mean <X>" giving the trailing mean
// of the last N values of X (including the current row). Rows earlier
// than the window are averaged over the rows that exist, so the column
// has no leading NaNs.
type RollingMean struct {
	// X is the name of the column to smooth.
	X string

	// N is the window size in rows. If N <= 0, it defaults to 5.
	N int
}

func (s RollingMean) F(g table.Grouping) table.Grouping {
	n := s.N
	if n <= 0 {
		n = 5
	}
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		means := make([]float64, len(xs))
		sum := 0.0
		for i, x := range xs {
			sum += x
			if i >= n {
				sum -= xs[i-n]
			}
			w := i + 1
			if w > n {
				w = n
			}
			means[i] = sum / float64(w)
		}
		return table.NewBuilder(t).Add("rolling mean "+s.X, means).Done()
	})
}

// CountBy collapses each group to the distinct values of column X, in
// order of first appearance, with a "count" column giving how many
// rows held each value. Non-constant columns other than X are dropped.
type CountBy struct {
	// X is the name of the column to count by.
	X string
}

func (s CountBy) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		xs := reflect.ValueOf(t.MustColumn(s.X))
		idx := make(map[interface{}]int)
		vals := reflect.MakeSlice(xs.Type(), 0, 0)
		var counts []int
		for i := 0; i < xs.Len(); i++ {
			v := xs.Index(i)
			if j, ok := idx[v.Interface()]; ok {
				counts[j]++
				continue
			}
			idx[v.Interface()] = vals.Len()
			vals = reflect.Append(vals, v)
			counts = append(counts, 1)
		}
		nb := new(table.Builder).Add(s.X, vals.Interface()).Add("count", counts)
		preserveConsts(nb, t)
		return nb.Done()
	})
}

// Jitter adds column "jittered <X>" giving X plus uniform noise in
// [-Amount, +Amount]. The noise is deterministic for a given Seed so
// a rendered example is reproducible.
type Jitter struct {
	// X is the name of the column to jitter.
	X string

	// Amount is the maximum absolute displacement. If it is 0, it
	// defaults to 2% of the span of X within each group.
	Amount float64

	// Seed seeds the noise source. A zero Seed is used as-is.
	Seed int64
}

func (s Jitter) F(g table.Grouping) table.Grouping {
	rng := rand.New(rand.NewSource(s.Seed))
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		amt := s.Amount
		if amt == 0 {
			min, max := stats.Bounds(xs)
			amt = (max - min) * 0.02
		}
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x + (rng.Float64()*2-1)*amt
		}
		return table.NewBuilder(t).Add("jittered "+s.X, out).Done()
	})
}

// Mirror adds column "mirrored <X>" giving -X. Applied to the
// "probability density" column of ggstat.Density, it turns a density
// curve into the two symmetric sides of a bean plot: shade between X
// and "mirrored <X>" with gg.LayerArea.
type Mirror struct {
	// X is the name of the column to negate.
	X string
}

func (s Mirror) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = -x
		}
		return table.NewBuilder(t).Add("mirrored "+s.X, out).Done()
	})
}

// preserveConsts copies constant columns of t into nb, mirroring what
// ggstat does for its derived tables.
func preserveConsts(nb *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if nb.Has(col) {
			continue
		}
		if v, ok := t.Const(col); ok {
			nb.AddConst(col, v)
		}
	}
}
