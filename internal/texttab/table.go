// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables. Cells are left-aligned and
// adjacent columns are separated by two spaces.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows [][]string
	cols int
}

const margin = "  "

// pad left-aligns s in a field of w runes.
func pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row. It starts a row if
// there is none.
func (t *Table) Cell(value string) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, value)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w. Trailing blanks are
// trimmed from every line.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, cell := range row {
			if n := utf8.RuneCountInString(cell); n > ws[col] {
				ws[col] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, cell := range row {
			if col > 0 {
				line.WriteString(margin)
			}
			line.WriteString(pad(cell, ws[col]))
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
