// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/safehtml/template"
	"github.com/kvstorebench/findbest/benchbest"
	"github.com/kvstorebench/findbest/internal/texttab"
)

// WriteCSV writes m to w as comma-separated values, one line per row:
//
//	hardware,op,size,data type,<cell>,<cell>,<cell>,<cell>,<cell>
//
// Every row has one cell per benchbest.RecordScale entry, empty if
// there is no data. Fields are joined with commas as they are and
// never quoted. If header is true, a line naming the columns comes
// first.
func WriteCSV(w io.Writer, m *benchbest.Matrix, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		fmt.Fprintf(bw, "%s\n", strings.Join(matrixHeader(), ","))
	}
	for _, row := range m.Rows {
		fmt.Fprintf(bw, "%s\n", strings.Join(matrixCells(row), ","))
	}
	return bw.Flush()
}

// WriteTable writes m to w as an aligned text table with a header
// line.
func WriteTable(w io.Writer, m *benchbest.Matrix) error {
	var tab texttab.Table
	tab.Row()
	for _, s := range matrixHeader() {
		tab.Cell(s)
	}
	for _, row := range m.Rows {
		tab.Row()
		for _, s := range matrixCells(row) {
			tab.Cell(s)
		}
	}
	return tab.Format(w)
}

var htmlTemplate = template.Must(template.New("matrix").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Best stores by usage pattern</title>
<style>
.findbest { border-collapse: collapse; }
.findbest th, .findbest td { text-align: left; padding: 0em 1em; }
.findbest thead th { border-bottom: 1px solid #666; }
</style>
</head>
<body>
<table class="findbest">
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// WriteHTML writes m to w as an HTML document holding one table.
func WriteHTML(w io.Writer, m *benchbest.Matrix) error {
	data := struct {
		Header []string
		Rows   [][]string
	}{Header: matrixHeader()}
	for _, row := range m.Rows {
		data.Rows = append(data.Rows, matrixCells(row))
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
