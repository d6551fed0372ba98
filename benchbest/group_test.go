// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchbest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kvstorebench/findbest/benchcsv"
)

func TestGroup(t *testing.T) {
	base := rec("a", 1)
	same := rec("b", 2)

	// Each variant differs from base in exactly one Key field.
	hw := rec("c", 3)
	hw.Hardware = "server"
	dt := rec("d", 4)
	dt.DataType = benchcsv.Compressible
	op := rec("e", 5)
	op.Op = "insert"
	size := rec("f", 6)
	size.Size = "100B-1KiB"
	n := rec("g", 7)
	n.Records = 100
	// Non-key fields do not split buckets.
	other := rec("h", 8)
	other.Sum, other.Measurements = 99, "3"

	groups := Group([]benchcsv.Record{base, hw, same, dt, op, size, n, other})
	if len(groups) != 6 {
		t.Fatalf("want 6 buckets, got %d", len(groups))
	}
	want := []benchcsv.Record{base, same, other}
	if diff := cmp.Diff(want, groups[KeyOf(base)]); diff != "" {
		t.Errorf("base bucket differs (-want +got):\n%s", diff)
	}
	for _, r := range []benchcsv.Record{hw, dt, op, size, n} {
		if got := groups[KeyOf(r)]; len(got) != 1 || got[0].Store != r.Store {
			t.Errorf("bucket for %s: want only %s, got %v", r.Store, r.Store, got)
		}
	}
}

func TestSortKeys(t *testing.T) {
	keys := []Key{
		{"b", "compressible", "get", "1", 100},
		{"a", "incompressible", "get", "1", 100},
		{"a", "compressible", "insert", "1", 100},
		{"a", "compressible", "get", "2", 100},
		{"a", "compressible", "get", "1", 1000000},
		{"a", "compressible", "get", "1", 100000},
		{"a", "compressible", "get", "1", 100},
	}
	SortKeys(keys)
	want := []Key{
		{"a", "compressible", "get", "1", 100},
		{"a", "compressible", "get", "1", 100000},
		{"a", "compressible", "get", "1", 1000000},
		{"a", "compressible", "get", "2", 100},
		{"a", "compressible", "insert", "1", 100},
		{"a", "incompressible", "get", "1", 100},
		{"b", "compressible", "get", "1", 100},
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("order differs (-want +got):\n%s", diff)
	}
}
