// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchbest picks the best-performing key/value stores for
// each usage pattern in a set of benchmark records.
//
// Records are grouped into buckets by Key. Within a bucket, the
// record with the best average is the winner, and every record whose
// average is within a relative tolerance of the winner's is reported
// alongside it. Results can be regrouped into a Matrix with one row
// per (hardware, op, size, data type) and one column per record
// count.
package benchbest

import (
	"sort"

	"github.com/kvstorebench/findbest/benchcsv"
)

// A Key identifies a usage pattern. All records with the same Key
// measure different stores under the same conditions, so they are
// directly comparable.
type Key struct {
	Hardware string
	DataType string
	Op       string
	Size     string
	Records  int64
}

// Less reports whether k sorts before o. Keys are ordered by
// hardware, data type, op, size, and records, in that order. Strings
// are compared lexically and records numerically.
func (k Key) Less(o Key) bool {
	if k.Hardware != o.Hardware {
		return k.Hardware < o.Hardware
	}
	if k.DataType != o.DataType {
		return k.DataType < o.DataType
	}
	if k.Op != o.Op {
		return k.Op < o.Op
	}
	if k.Size != o.Size {
		return k.Size < o.Size
	}
	return k.Records < o.Records
}

// KeyOf returns the usage pattern of rec.
func KeyOf(rec benchcsv.Record) Key {
	return Key{rec.Hardware, rec.DataType, rec.Op, rec.Size, rec.Records}
}

// Group partitions recs into buckets by Key. Within each bucket,
// records keep their order in recs.
func Group(recs []benchcsv.Record) map[Key][]benchcsv.Record {
	groups := make(map[Key][]benchcsv.Record)
	for _, rec := range recs {
		k := KeyOf(rec)
		groups[k] = append(groups[k], rec)
	}
	return groups
}

// SortKeys sorts keys using Key.Less.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}
