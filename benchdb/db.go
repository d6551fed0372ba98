// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdb reads benchmark measurements from a SQL table.
//
// The table must have one column per entry of benchcsv.Columns,
// named exactly like the CSV header, including the "data type"
// column. Other columns are ignored.
package benchdb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/kvstorebench/findbest/benchcsv"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a connection to a database holding benchmark tables.
type DB struct {
	sql        *sql.DB
	driverName string
}

// OpenSQL opens a DB. The parameters are the same as the parameters
// for sql.Open. Only mysql and sqlite3 are explicitly supported.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &DB{sql: db, driverName: driverName}, nil
}

var openHooks = map[string]func(*sql.DB) error{
	// Every connection to ":memory:" is a distinct database, and
	// SQLite allows one writer at a time anyway.
	"sqlite3": func(db *sql.DB) error {
		db.SetMaxOpenConns(1)
		return nil
	},
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	return db.sql.Close()
}

var tableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Records reads every row of table and parses it with
// benchcsv.ParseRow. Parse failures are returned as
// *benchcsv.ParseError with FileName set to table and Line set to
// the 1-based row number, or 0 if the table lacks a required column.
// On error Records returns no records.
func (db *DB) Records(ctx context.Context, table string) ([]benchcsv.Record, error) {
	if !tableRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	rows, err := db.sql.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	for _, c := range benchcsv.Columns {
		if !have[c] {
			return nil, &benchcsv.ParseError{
				FileName: table,
				Err:      &benchcsv.FieldError{Column: c, Err: benchcsv.ErrMissingColumn},
			}
		}
	}

	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	var recs []benchcsv.Record
	row := make(benchcsv.Row, len(cols))
	for n := 1; rows.Next(); n++ {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("reading %s row %d: %w", table, n, err)
		}
		for i, c := range cols {
			// NULL reads as empty text.
			row[c] = vals[i].String
		}
		rec, err := benchcsv.ParseRow(row)
		if err != nil {
			return nil, &benchcsv.ParseError{FileName: table, Line: n, Err: err}
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	return recs, nil
}
