// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads key/value store benchmark measurements.
//
// Each measurement is one row of a table whose header names the
// columns listed in Columns. The columns may appear in any order and
// extra columns are ignored. A row becomes a Record once all of its
// numeric columns have been parsed.
package benchcsv

import (
	"errors"
	"strconv"
	"strings"
)

// Column names of the benchmark table.
const (
	ColHardware     = "hardware"
	ColStore        = "store"
	ColOp           = "op"
	ColSize         = "size"
	ColRecords      = "records"
	ColDataType     = "data type"
	ColMeasurements = "measurements"
	ColSum          = "sum"
	ColMin          = "min"
	ColMax          = "max"
	ColAvg          = "avg"
)

// Columns is the set of columns every benchmark table must have, in
// the order the benchmark producer writes them.
var Columns = []string{
	ColHardware, ColStore, ColOp, ColSize, ColRecords, ColDataType,
	ColMeasurements, ColSum, ColMin, ColMax, ColAvg,
}

// Operations measured by the benchmark producer.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpGet    = "get"
	OpRemove = "remove"
	OpSpace  = "space"
	OpMemory = "memory"
)

// Ops lists the known operations in report order.
var Ops = []string{OpInsert, OpUpdate, OpGet, OpRemove, OpSpace, OpMemory}

// Data types of the stored values.
const (
	Incompressible = "incompressible"
	Compressible   = "compressible"
)

// DataTypes lists the known data types in report order.
var DataTypes = []string{Incompressible, Compressible}

// A Record is a single benchmark measurement: one store exercised
// with one operation on one usage pattern.
//
// The unit of Sum, Min, Max, and Avg depends on Op. Time-like
// operations are in nanoseconds, "space" is a percentage, and
// "memory" is a byte count.
type Record struct {
	Hardware string
	Store    string
	Op       string
	Size     string
	Records  int64
	DataType string

	// Measurements is the number of trials, copied verbatim.
	Measurements string

	Sum, Min, Max, Avg int64
}

var (
	// ErrMissingColumn indicates a required column is absent from
	// the header or from a row.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNotInteger indicates a numeric column holds text that is
	// not a base-10 integer.
	ErrNotInteger = errors.New("not an integer")
)

// A Row maps column names to their unparsed text.
type Row map[string]string

// A FieldError describes a problem with a single column of a Row.
// It is wrapped in a *ParseError by Reader and by other sources that
// know the row's position.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Err == ErrMissingColumn {
		return "column " + strconv.Quote(e.Column) + ": " + e.Err.Error()
	}
	return "column " + strconv.Quote(e.Column) + ": " + strconv.Quote(e.Value) + " is " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseRow converts row into a Record. It returns a *FieldError if a
// required column is missing or a numeric column does not hold an
// integer.
func ParseRow(row Row) (Record, error) {
	var rec Record
	for _, col := range Columns {
		if _, ok := row[col]; !ok {
			return Record{}, &FieldError{Column: col, Err: ErrMissingColumn}
		}
	}
	text := func(col string) string {
		return strings.TrimSpace(row[col])
	}
	rec.Hardware = text(ColHardware)
	rec.Store = text(ColStore)
	rec.Op = text(ColOp)
	rec.Size = text(ColSize)
	rec.DataType = text(ColDataType)
	rec.Measurements = text(ColMeasurements)

	ints := []struct {
		col string
		dst *int64
	}{
		{ColRecords, &rec.Records},
		{ColSum, &rec.Sum},
		{ColMin, &rec.Min},
		{ColMax, &rec.Max},
		{ColAvg, &rec.Avg},
	}
	for _, f := range ints {
		v, err := strconv.ParseInt(text(f.col), 10, 64)
		if err != nil {
			return Record{}, &FieldError{Column: f.col, Value: row[f.col], Err: ErrNotInteger}
		}
		*f.dst = v
	}
	return rec, nil
}
