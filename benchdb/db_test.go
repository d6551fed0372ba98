// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kvstorebench/findbest/benchcsv"
)

// newDB returns an empty in-memory SQLite database with a "results"
// table.
func newDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQL("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.CreateTable("results"); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestRecords(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)
	rows := [][]any{
		{"laptop", "leveldb", "get", "100B-1KiB", 1000, "incompressible", 10, 15000, 1000, 2000, 1500},
		{"laptop", "rocksdb", "space", "100B-1KiB", 1000, "compressible", nil, 86, 86, 86, 86},
	}
	for _, row := range rows {
		if err := db.InsertRow("results", row...); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.Records(ctx, "results")
	if err != nil {
		t.Fatal(err)
	}
	want := []benchcsv.Record{
		{Hardware: "laptop", Store: "leveldb", Op: "get", Size: "100B-1KiB", Records: 1000, DataType: "incompressible", Measurements: "10", Sum: 15000, Min: 1000, Max: 2000, Avg: 1500},
		{Hardware: "laptop", Store: "rocksdb", Op: "space", Size: "100B-1KiB", Records: 1000, DataType: "compressible", Sum: 86, Min: 86, Max: 86, Avg: 86},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}

func TestRecordsEmpty(t *testing.T) {
	got, err := newDB(t).Records(context.Background(), "results")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no records, got %v", got)
	}
}

func TestRecordsNotInteger(t *testing.T) {
	db := newDB(t)
	db.InsertRow("results", "laptop", "leveldb", "get", "small", 100, "compressible", 1, 1, 1, 1, 1)
	db.InsertRow("results", "laptop", "leveldb", "get", "small", 100, "compressible", 1, 1, 1, 1, "N/A")

	recs, err := db.Records(context.Background(), "results")
	if recs != nil {
		t.Errorf("want no records on error, got %v", recs)
	}
	var perr *benchcsv.ParseError
	if !errors.As(err, &perr) || !errors.Is(err, benchcsv.ErrNotInteger) {
		t.Fatalf("want ParseError wrapping ErrNotInteger, got %v", err)
	}
	if perr.FileName != "results" || perr.Line != 2 {
		t.Errorf("want results:2, got %s:%d", perr.FileName, perr.Line)
	}
}

func TestRecordsMissingColumn(t *testing.T) {
	db := newDB(t)
	if _, err := db.sql.Exec(`CREATE TABLE partial (hardware TEXT, store TEXT)`); err != nil {
		t.Fatal(err)
	}
	_, err := db.Records(context.Background(), "partial")
	if !errors.Is(err, benchcsv.ErrMissingColumn) {
		t.Errorf("want ErrMissingColumn, got %v", err)
	}
}

func TestRecordsBadTable(t *testing.T) {
	db := newDB(t)
	for _, table := range []string{"", "results; DROP TABLE results", "1results", `"results"`} {
		_, err := db.Records(context.Background(), table)
		if err == nil || !strings.Contains(err.Error(), "invalid table name") {
			t.Errorf("table %q: want invalid table name, got %v", table, err)
		}
	}
	if _, err := db.Records(context.Background(), "missing"); err == nil {
		t.Errorf("missing table: want error")
	}
}
