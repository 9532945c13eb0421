// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// ReadCSV reads a CSV document with a header row into a table. Column
// values are coerced to ints or float64s where every value in the
// column parses as one; otherwise the column stays []string.
func ReadCSV(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV input")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// ReadCSVFile reads the CSV file at path. See ReadCSV.
func ReadCSVFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFiles reads each CSV file and concatenates the rows into a
// single table. Every file must have the same header. This is the
// usual shape of "one file per season" sports data.
func ReadCSVFiles(paths ...string) (*table.Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	tabs := make([]table.Grouping, len(paths))
	var header []string
	for i, path := range paths {
		t, err := ReadCSVFile(path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			header = t.Columns()
		} else if !sameColumns(header, t.Columns()) {
			return nil, fmt.Errorf("%s: columns %v do not match %s's columns %v",
				path, t.Columns(), paths[0], header)
		}
		tabs[i] = t
	}
	return table.Flatten(table.Concat(tabs...)), nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ReadXLSX reads one sheet of an XLSX workbook into a table. The first
// row is the header. If sheet is "", the first sheet in the workbook
// is used. Coercion is as in ReadCSV.
func ReadXLSX(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	// excelize trims trailing empty cells, so pad short rows out to
	// the header width.
	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		} else if len(row) > len(header) {
			return nil, fmt.Errorf("%s: row has %d cells but header has %d", path, len(row), len(header))
		}
		body = append(body, row)
	}
	return table.TableFromStrings(header, body, true), nil
}
