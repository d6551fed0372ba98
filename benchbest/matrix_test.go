// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchbest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kvstorebench/findbest/benchcsv"
)

func TestNewMatrix(t *testing.T) {
	mk := func(hw, op, size, dt string, records int64, store string) benchcsv.Record {
		return benchcsv.Record{Hardware: hw, Store: store, Op: op, Size: size, Records: records, DataType: dt, Avg: 10}
	}
	recs := []benchcsv.Record{
		mk("pi", "get", "1KiB-10KiB", "compressible", 1000, "a"),
		mk("laptop", "memory", "100B-1KiB", "incompressible", 100, "b"),
		mk("laptop", "insert", "1KiB-10KiB", "compressible", 1000000, "c"),
		mk("laptop", "insert", "100B-1KiB", "compressible", 100, "d"),
		mk("laptop", "insert", "100B-1KiB", "incompressible", 10000, "e"),
		mk("laptop", "scan", "100B-1KiB", "incompressible", 100, "f"),
		mk("laptop", "space", "100B-1KiB", "incompressible", 100, "g"),
		// Off-scale record counts have no column.
		mk("laptop", "get", "100B-1KiB", "incompressible", 42, "h"),
	}
	res, err := SelectAll(Group(recs), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m := NewMatrix(res)

	var gotKeys []RowKey
	for _, row := range m.Rows {
		gotKeys = append(gotKeys, row.Key)
		if len(row.Cells) != len(RecordScale) {
			t.Errorf("row %v: %d cells, want %d", row.Key, len(row.Cells), len(RecordScale))
		}
	}
	wantKeys := []RowKey{
		{"laptop", "insert", "100B-1KiB", "incompressible"},
		{"laptop", "insert", "100B-1KiB", "compressible"},
		{"laptop", "insert", "1KiB-10KiB", "compressible"},
		{"laptop", "space", "100B-1KiB", "incompressible"},
		{"laptop", "memory", "100B-1KiB", "incompressible"},
		{"laptop", "scan", "100B-1KiB", "incompressible"},
		{"pi", "get", "1KiB-10KiB", "compressible"},
	}
	if diff := cmp.Diff(wantKeys, gotKeys); diff != "" {
		t.Fatalf("rows differ (-want +got):\n%s", diff)
	}

	cellStores := func(row *Row) []string {
		var s []string
		for _, cell := range row.Cells {
			name := ""
			for _, r := range cell {
				name += r.Store
			}
			s = append(s, name)
		}
		return s
	}
	if diff := cmp.Diff([]string{"", "", "e", "", ""}, cellStores(m.Rows[0])); diff != "" {
		t.Errorf("row 0 cells differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "", "", "", "c"}, cellStores(m.Rows[2])); diff != "" {
		t.Errorf("row 2 cells differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "a", "", "", ""}, cellStores(m.Rows[6])); diff != "" {
		t.Errorf("row 6 cells differ (-want +got):\n%s", diff)
	}
}

func TestRowKeyLess(t *testing.T) {
	for _, test := range []struct {
		a, b RowKey
	}{
		{RowKey{"a", "space", "1KiB", "x"}, RowKey{"b", "insert", "1B", "x"}},
		{RowKey{"a", "remove", "1MiB", "compressible"}, RowKey{"a", "space", "1B", "incompressible"}},
		{RowKey{"a", "memory", "1MiB", "x"}, RowKey{"a", "alpha", "1B", "x"}},
		{RowKey{"a", "get", "2KiB", "compressible"}, RowKey{"a", "get", "10KiB", "incompressible"}},
		{RowKey{"a", "get", "1KiB", "incompressible"}, RowKey{"a", "get", "1KiB", "compressible"}},
		{RowKey{"a", "get", "1KiB", "compressible"}, RowKey{"a", "get", "1KiB", "other"}},
	} {
		if !test.a.Less(test.b) {
			t.Errorf("want %v < %v", test.a, test.b)
		}
		if test.b.Less(test.a) {
			t.Errorf("want !(%v < %v)", test.b, test.a)
		}
	}
}
