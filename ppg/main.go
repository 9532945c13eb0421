// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ppg plots scoring rates from hockey game logs, one facet
// per player.
//
// ppg takes one CSV of game logs per season (columns: player, date,
// goals, assists), concatenates them, joins them against the built-in
// roster, and plots each player's cumulative points per game next to
// a rolling mean of their raw points. The cumulative line answers
// "what is this player's rate so far?", while the rolling mean shows
// hot and cold stretches the season-long rate smooths away.
//
// This section exists mostly to demonstrate the two reshaping moves
// real datasets force on you before any chart can be drawn: ingesting
// a directory of per-season files into one table, and joining it
// against a second table keyed by name.
//
// Usage:
//
//	ppg [flags] season.csv...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/plotbook/plotbook/dataset"
)

func main() {
	log.SetPrefix("ppg: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write SVG output to `file` (default: stdout)")
		flagTable  = flag.Bool("table", false, "output the reshaped table instead of a plot")
		flagWindow = flag.Int("window", 5, "rolling mean window in `games`")
		flagTeam   = flag.String("team", "", "plot only players on `team`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] season.csv...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	games, err := dataset.ReadCSVFiles(paths...)
	if err != nil {
		log.Fatal(err)
	}
	tab := table.Join(games, "player", rosterTable(), "player")
	if *flagTeam != "" {
		tab = table.FilterEq(tab, "team", *flagTeam)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		table.Fprint(f, reshape(tab, *flagWindow))
		return
	}

	p, nrows := plotGames(tab, *flagWindow)
	p.Add(gg.Title(strings.Join(paths, " ")))
	p.WriteSVG(f, 600, 200*nrows)
}
