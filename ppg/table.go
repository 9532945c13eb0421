// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/aclements/go-gg/table"

// rosterInfo is one player's roster entry.
type rosterInfo struct {
	Player   string
	Team     string
	Position string
}

// The roster is baked in because it changes on a different cadence
// than the game logs: seasons of games accumulate as files, the
// roster is edited in place.
var roster = []rosterInfo{
	{"okafor", "ravens", "C"},
	{"lindgren", "ravens", "RW"},
	{"tanaka", "harbor", "LW"},
	{"morin", "harbor", "D"},
}

func rosterTable() *table.Table {
	playerCol := make([]string, len(roster))
	teamCol := make([]string, len(roster))
	posCol := make([]string, len(roster))
	for i := range roster {
		playerCol[i] = roster[i].Player
		teamCol[i] = roster[i].Team
		posCol[i] = roster[i].Position
	}

	return new(table.Builder).
		Add("player", playerCol).
		Add("team", teamCol).
		Add("position", posCol).
		Done()
}
