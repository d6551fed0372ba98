// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdb

import (
	"bytes"
	"text/template"
)

// createTmpl is the template used to prepare the CREATE statement
// for a results table. It is evaluated with .Table set to the table
// name and .Q to the driver's identifier quote.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE {{.Table}} (
	{{.Q}}hardware{{.Q}} VARCHAR(255),
	{{.Q}}store{{.Q}} VARCHAR(255),
	{{.Q}}op{{.Q}} VARCHAR(255),
	{{.Q}}size{{.Q}} VARCHAR(255),
	{{.Q}}records{{.Q}} BIGINT,
	{{.Q}}data type{{.Q}} VARCHAR(255),
	{{.Q}}measurements{{.Q}} BIGINT,
	{{.Q}}sum{{.Q}} BIGINT,
	{{.Q}}min{{.Q}} BIGINT,
	{{.Q}}max{{.Q}} BIGINT,
	{{.Q}}avg{{.Q}} BIGINT
)`))

// CreateTable creates a results table for tests.
func (db *DB) CreateTable(table string) error {
	q := `"`
	if db.driverName == "mysql" {
		q = "`"
	}
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]string{"Table": table, "Q": q}); err != nil {
		return err
	}
	_, err := db.sql.Exec(buf.String())
	return err
}

// InsertRow adds one row to table. vals are in benchcsv.Columns
// order.
func (db *DB) InsertRow(table string, vals ...any) error {
	_, err := db.sql.Exec("INSERT INTO "+table+" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", vals...)
	return err
}
