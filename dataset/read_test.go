// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("name,games,ppg\nokafor,6,1.5\nmorin,6,0.83\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"name", "games", "ppg"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns = %v; want %v", tab.Columns(), want)
	}
	// Fully-numeric columns coerce; mixed ones stay strings.
	if got := tab.MustColumn("games").([]int); !reflect.DeepEqual(got, []int{6, 6}) {
		t.Errorf("games = %v; want [6 6]", got)
	}
	if got := tab.MustColumn("ppg").([]float64); !reflect.DeepEqual(got, []float64{1.5, 0.83}) {
		t.Errorf("ppg = %v; want [1.5 0.83]", got)
	}
	if got := tab.MustColumn("name").([]string); !reflect.DeepEqual(got, []string{"okafor", "morin"}) {
		t.Errorf("name = %v", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("empty input: got nil error")
	}
	// Ragged rows are a CSV syntax error.
	if _, err := ReadCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("ragged row: got nil error")
	}
	if _, err := ReadCSVFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file: got nil error")
	}
}

func TestReadCSVFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a.csv", "player,points\nokafor,2\nmorin,1\n")
	b := write("b.csv", "player,points\nokafor,3\n")

	g, err := ReadCSVFiles(a, b)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, gid := range g.Tables() {
		total += g.Table(gid).Len()
	}
	if total != 3 {
		t.Errorf("%d rows after concat; want 3", total)
	}

	// Mismatched headers must fail, not silently misalign.
	c := write("c.csv", "name,points\nokafor,2\n")
	if _, err := ReadCSVFiles(a, c); err == nil {
		t.Error("mismatched headers: got nil error")
	}

	if _, err := ReadCSVFiles(); err == nil {
		t.Error("no inputs: got nil error")
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"player", "games", "note"},
		{"okafor", 6, "hot streak"},
		{"morin", 5}, // short row: note is empty
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	tab, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"player", "games", "note"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns = %v; want %v", tab.Columns(), want)
	}
	if got := tab.MustColumn("games").([]int); !reflect.DeepEqual(got, []int{6, 5}) {
		t.Errorf("games = %v; want [6 5]", got)
	}
	if got := tab.MustColumn("note").([]string); !reflect.DeepEqual(got, []string{"hot streak", ""}) {
		t.Errorf("note = %v", got)
	}

	if _, err := ReadXLSX(path, "nope"); err == nil {
		t.Error("missing sheet: got nil error")
	}
	if _, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), ""); err == nil {
		t.Error("missing file: got nil error")
	}
}
