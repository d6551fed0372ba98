// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchbest

import (
	"sort"
	"strings"

	"github.com/kvstorebench/findbest/benchcsv"
	"github.com/kvstorebench/findbest/benchunit"
)

// RecordScale is the record counts the benchmarks run at. They are
// the columns of a Matrix, in order.
var RecordScale = []int64{100, 1000, 10000, 100000, 1000000}

// A RowKey identifies a row of a Matrix. It is a Key without the
// record count.
type RowKey struct {
	Hardware string
	Op       string
	Size     string
	DataType string
}

// Less reports whether k sorts before o in a Matrix. Rows are ordered
// by hardware lexically, then by op in benchcsv.Ops order, then by
// size class from smallest to largest, then by data type in
// benchcsv.DataTypes order. Unknown ops and data types follow the
// known ones in lexical order.
func (k RowKey) Less(o RowKey) bool {
	if k.Hardware != o.Hardware {
		return k.Hardware < o.Hardware
	}
	if k.Op != o.Op {
		return compareRank(benchcsv.Ops, k.Op, o.Op) < 0
	}
	if k.Size != o.Size {
		return benchunit.CompareSize(k.Size, o.Size) < 0
	}
	return compareRank(benchcsv.DataTypes, k.DataType, o.DataType) < 0
}

// compareRank compares a and b by their position in order. Values
// missing from order sort after all others, lexically.
func compareRank(order []string, a, b string) int {
	rank := func(s string) int {
		for i, v := range order {
			if v == s {
				return i
			}
		}
		return len(order)
	}
	if ra, rb := rank(a), rank(b); ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

// A Row is one row of a Matrix. Cells has one BestList per entry of
// RecordScale, in the same order. A record count with no bucket has
// an empty BestList.
type Row struct {
	Key   RowKey
	Cells []BestList
}

// A Matrix regroups Results into rows by RowKey and columns by
// record count.
type Matrix struct {
	Rows []*Row
}

// NewMatrix builds a Matrix from res. Rows are sorted by RowKey.Less.
// Buckets whose record count is not in RecordScale have no column and
// are omitted.
func NewMatrix(res Results) *Matrix {
	rows := make(map[RowKey]*Row)
	for k, list := range res {
		col := columnOf(k.Records)
		if col < 0 {
			continue
		}
		rk := RowKey{k.Hardware, k.Op, k.Size, k.DataType}
		row := rows[rk]
		if row == nil {
			row = &Row{Key: rk, Cells: make([]BestList, len(RecordScale))}
			rows[rk] = row
		}
		row.Cells[col] = list
	}

	m := &Matrix{Rows: make([]*Row, 0, len(rows))}
	for _, row := range rows {
		m.Rows = append(m.Rows, row)
	}
	sort.Slice(m.Rows, func(i, j int) bool {
		return m.Rows[i].Key.Less(m.Rows[j].Key)
	})
	return m
}

func columnOf(records int64) int {
	for i, n := range RecordScale {
		if n == records {
			return i
		}
	}
	return -1
}
