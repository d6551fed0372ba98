// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// A ParseError reports a problem at a particular line of a benchmark
// table. For SQL sources, Line is the 1-based row number and FileName
// is the table name.
type ParseError struct {
	FileName string
	Line     int
	Err      error
}

func (e *ParseError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A Reader reads benchmark records from CSV input.
//
// The first line of the input must be a header naming every column
// in Columns. The header is read and checked by the first call to
// Read, before any data row is parsed.
type Reader struct {
	r        *csv.Reader
	fileName string

	// index maps column names to their position in a line.
	index map[string]int
	row   Row
	err   error
}

// NewReader returns a Reader reading CSV from r. fileName is used in
// error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return &Reader{r: cr, fileName: fileName}
}

func (r *Reader) newParseError(err error) *ParseError {
	line, _ := r.r.FieldPos(0)
	return &ParseError{r.fileName, line, err}
}

// csvError converts an error from the csv package into a *ParseError,
// leaving io.EOF alone.
func (r *Reader) csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{r.fileName, perr.Line, perr.Err}
	}
	return err
}

func (r *Reader) readHeader() error {
	hdr, err := r.r.Read()
	if err == io.EOF {
		return &ParseError{r.fileName, 1, fmt.Errorf("no header line: %w", ErrMissingColumn)}
	} else if err != nil {
		return r.csvError(err)
	}
	r.index = make(map[string]int, len(hdr))
	for i, name := range hdr {
		name = strings.TrimSpace(name)
		if i == 0 {
			// Tolerate a UTF-8 byte order mark.
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, ok := r.index[name]; ok {
			return r.newParseError(fmt.Errorf("duplicate column %q", name))
		}
		r.index[name] = i
	}
	for _, col := range Columns {
		if _, ok := r.index[col]; !ok {
			return r.newParseError(&FieldError{Column: col, Err: ErrMissingColumn})
		}
	}
	r.row = make(Row, len(Columns))
	return nil
}

// Read returns the next record. It returns io.EOF at the end of the
// input. Any other error is a *ParseError and is sticky: all later
// calls return it too.
func (r *Reader) Read() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.index == nil {
		if r.err = r.readHeader(); r.err != nil {
			return Record{}, r.err
		}
	}

	line, err := r.r.Read()
	if err != nil {
		r.err = r.csvError(err)
		return Record{}, r.err
	}
	for _, col := range Columns {
		r.row[col] = line[r.index[col]]
	}
	rec, err := ParseRow(r.row)
	if err != nil {
		r.err = r.newParseError(err)
		return Record{}, r.err
	}
	return rec, nil
}

// ReadAll reads every record from r. On error it returns no records
// at all, so callers never act on a prefix of a malformed input.
func ReadAll(r io.Reader, fileName string) ([]Record, error) {
	reader := NewReader(r, fileName)
	var recs []Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return recs, nil
		} else if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
