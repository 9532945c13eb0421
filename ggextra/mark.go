// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggextra

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// barCol is the synthetic column Bars groups segments by. Bracketed so
// it cannot collide with a user column.
const barCol = "[bar]"

// Bars draws a stem bar for each row: a vertical segment from Y=0 up
// to the row's Y at the row's X. X may be ordinal (e.g. a quarter
// label). Only X, Y, and constant columns survive into the segment
// table, so bind Color to a faceting or grouping column.
type Bars struct {
	// X and Y name the category and height columns.
	X, Y string

	// Color optionally names a constant-per-group column that
	// strokes each bar.
	Color string
}

func (b Bars) Apply(p *gg.Plot) {
	defer p.Save().Restore()
	p.SetData(table.MapTables(p.Data(), func(_ table.GroupID, t *table.Table) *table.Table {
		xs := reflect.ValueOf(t.MustColumn(b.X))
		var ys []float64
		slice.Convert(&ys, t.MustColumn(b.Y))

		nxs := reflect.MakeSlice(xs.Type(), 0, 2*t.Len())
		nys := make([]float64, 0, 2*t.Len())
		ids := make([]int, 0, 2*t.Len())
		for i := 0; i < t.Len(); i++ {
			nxs = reflect.Append(nxs, xs.Index(i), xs.Index(i))
			nys = append(nys, 0, ys[i])
			ids = append(ids, i, i)
		}

		nb := new(table.Builder).Add(b.X, nxs.Interface()).Add(b.Y, nys).Add(barCol, ids)
		preserveConsts(nb, t)
		return nb.Done()
	}))
	p.GroupBy(barCol)
	gg.LayerPaths{X: b.X, Y: b.Y, Color: b.Color}.Apply(p)
}

// Lollipop draws a stem from Y=0 to each row's Y, topped with a point.
// It reads better than solid bars when the baseline matters more than
// the area, and it is the natural mark for signed deltas.
type Lollipop struct {
	// X and Y name the category and value columns.
	X, Y string

	// Color optionally names a column for the head points' color.
	Color string
}

func (l Lollipop) Apply(p *gg.Plot) {
	Bars{X: l.X, Y: l.Y}.Apply(p)
	gg.LayerPoints{X: l.X, Y: l.Y, Color: l.Color}.Apply(p)
}

// Dumbbell draws, for each row, a segment between (X1, Y) and (X2, Y)
// with a dot at each end. The dots are colored by which endpoint they
// are, using the X1/X2 column names as the legend labels. X1 and X2
// must have the same type.
type Dumbbell struct {
	// Y names the category column (one dumbbell per row).
	Y string

	// X1 and X2 name the paired value columns.
	X1, X2 string
}

func (d Dumbbell) Apply(p *gg.Plot) {
	defer p.Save().Restore()
	// Unpivot the endpoint pair into rows so one path per category
	// connects them.
	p.SetData(table.Unpivot(p.Data(), "endpoint", "value", d.X1, d.X2))
	p.GroupBy(d.Y)
	gg.LayerPaths{X: "value", Y: d.Y}.Apply(p)
	gg.LayerPoints{X: "value", Y: d.Y, Color: "endpoint"}.Apply(p)
}
