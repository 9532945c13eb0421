// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/ggextra"
)

// reshape orders each player's games by date and derives per-game
// scoring columns: "points", "cumulative points", "points per game",
// and "rolling mean points".
func reshape(g table.Grouping, window int) table.Grouping {
	g = table.GroupBy(g, "player")
	g = table.SortBy(g, "date")
	for _, stat := range []gg.Stat{
		points{},
		gameIndex{},
		ggextra.CumSum{X: "points"},
		perGame{},
		ggextra.RollingMean{X: "points", N: window},
	} {
		g = stat.F(g)
	}
	return g
}

func plotGames(tab table.Grouping, window int) (*gg.Plot, int) {
	g := reshape(tab, window)
	nrows := len(table.GroupBy(g, "player").Tables())

	plot := gg.NewPlot(g)
	plot.Add(gg.FacetY{Col: "player"})

	// One column of values, colored by which measure it is.
	plot.SetData(table.Unpivot(plot.Data(), "measure", "value",
		"points per game", "rolling mean points"))

	plot.Add(gg.LayerLines{X: "game", Y: "value", Color: "measure"})
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.AxisLabel("x", "game"))
	plot.Add(gg.AxisLabel("y", "points"))
	return plot, nrows
}

// points adds a "points" column: goals plus assists.
type points struct{}

func (points) F(g table.Grouping) table.Grouping {
	return table.MapCols(g, func(goals, assists []int, points []float64) {
		for i := range goals {
			points[i] = float64(goals[i] + assists[i])
		}
	}, "goals", "assists")("points")
}

// gameIndex numbers each player's games 1..n in the current row
// order. Sort by date first.
type gameIndex struct{}

func (gameIndex) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		idxs := make([]int, t.Len())
		for i := range idxs {
			idxs[i] = i + 1
		}
		return table.NewBuilder(t).Add("game", idxs).Done()
	})
}

// perGame divides cumulative points by games played so far.
type perGame struct{}

func (perGame) F(g table.Grouping) table.Grouping {
	return table.MapCols(g, func(game []int, cum, out []float64) {
		for i := range cum {
			out[i] = cum[i] / float64(game[i])
		}
	}, "game", "cumulative points")("points per game")
}
