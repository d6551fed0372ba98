// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders benchbest results as text.
//
// There are two layouts. The tree layout lists every usage pattern
// under nested hardware, data type, op, and size headings. The matrix
// layouts (CSV, Table, and HTML) show one row per hardware, op, size,
// and data type, with one column per record count. A report uses
// exactly one layout.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kvstorebench/findbest/benchbest"
	"github.com/kvstorebench/findbest/benchcsv"
	"github.com/kvstorebench/findbest/benchunit"
)

// A Format selects how a report is rendered.
type Format int

const (
	// Tree is the hierarchical layout with raw averages.
	Tree Format = iota
	// CSV is the matrix layout as comma-separated values.
	CSV
	// Table is the matrix layout as an aligned text table.
	Table
	// HTML is the matrix layout as an HTML table.
	HTML
)

var formatNames = []string{
	Tree:  "tree",
	CSV:   "csv",
	Table: "table",
	HTML:  "html",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(formatNames, ", "))
}

// IsMatrix reports whether f uses the matrix layout.
func (f Format) IsMatrix() bool {
	return f != Tree
}

// Options configures a report.
type Options struct {
	Format Format

	// Header adds a line naming the columns to CSV output. Table
	// and HTML output always have one.
	Header bool
}

// Write renders res to w in the layout selected by opts.
func Write(w io.Writer, res benchbest.Results, opts Options) error {
	switch opts.Format {
	case Tree:
		return WriteTree(w, res)
	case CSV:
		return WriteCSV(w, benchbest.NewMatrix(res), opts.Header)
	case Table:
		return WriteTable(w, benchbest.NewMatrix(res))
	case HTML:
		return WriteHTML(w, benchbest.NewMatrix(res))
	}
	return fmt.Errorf("unknown format %v", opts.Format)
}

// formatList renders list as "store (value)" entries separated by
// " / ". value formats each record's average.
func formatList(list benchbest.BestList, value func(benchcsv.Record) string) string {
	var sb strings.Builder
	for i, rec := range list {
		if i > 0 {
			sb.WriteString(" / ")
		}
		fmt.Fprintf(&sb, "%s (%s)", rec.Store, value(rec))
	}
	return sb.String()
}

func rawAvg(rec benchcsv.Record) string {
	return fmt.Sprint(rec.Avg)
}

func scaledAvg(rec benchcsv.Record) string {
	return benchunit.Format(rec.Op, rec.Avg)
}

// matrixHeader returns the column names of a matrix layout.
func matrixHeader() []string {
	hdr := []string{benchcsv.ColHardware, benchcsv.ColOp, benchcsv.ColSize, benchcsv.ColDataType}
	for _, n := range benchbest.RecordScale {
		hdr = append(hdr, fmt.Sprint(n))
	}
	return hdr
}

// matrixCells returns the key columns followed by the rendered cells
// of row.
func matrixCells(row *benchbest.Row) []string {
	k := row.Key
	cells := []string{k.Hardware, k.Op, k.Size, k.DataType}
	for _, list := range row.Cells {
		cells = append(cells, formatList(list, scaledAvg))
	}
	return cells
}
