// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Findbest reports the best key/value stores for each usage pattern
// in a table of benchmark measurements.
//
// Usage:
//
//	findbest [flags] results.csv
//	findbest [flags] gs://bucket/results.csv
//	findbest [flags] -db driver [-table name] dsn
//
// The input has one row per store and usage pattern, with the columns
//
//	hardware,store,op,size,records,data type,measurements,sum,min,max,avg
//
// in any order. A usage pattern is a combination of hardware, data
// type, op, size, and records. For each pattern, findbest finds the
// store with the best avg (the largest for the "space" op, the
// smallest for every other op) and reports it along with every store
// whose avg is within a relative tolerance of the best. The
// -tolerance flag sets that tolerance; the default is 0.05, or 5%.
// -coarse is shorthand for -tolerance 0.5.
//
// The -format flag selects one of these layouts:
//
// "tree", the default, nests usage patterns under hardware, data
// type, op, and size headings and prints raw averages:
//
//	laptop
//	    incompressible
//	        get
//	            100B-1KiB
//	                1000 : leveldb (1500) / rocksdb (1520)
//
// "csv" prints one line per hardware, op, size, and data type, with
// one column for each record count (100, 1000, 10000, 100000, and
// 1000000). Averages are converted to μs for times, MiB for memory,
// and % for space:
//
//	laptop,get,100B-1KiB,incompressible,,leveldb (2 μs) / rocksdb (2 μs),,,
//
// The -header flag adds a line naming the CSV columns.
//
// "table" prints the same rows and columns as "csv", aligned for a
// fixed-width font, and "html" prints them as an HTML table.
//
// With -db, the input argument is a data source name for the named
// database driver ("sqlite3" or "mysql"), and rows are read from the
// table named by -table. MySQL data source names may use the
// cloudsql(project:region:instance) network to reach Cloud SQL.
//
// Inputs named gs://bucket/object are read from Google Cloud Storage
// using application default credentials, or anonymously with
// -gcs-anonymous.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	"github.com/kvstorebench/findbest/benchbest"
	"github.com/kvstorebench/findbest/benchcsv"
	"github.com/kvstorebench/findbest/benchdb"
	"github.com/kvstorebench/findbest/internal/source"
	"github.com/kvstorebench/findbest/report"
	"google.golang.org/api/option"
)

func main() {
	log.SetPrefix("findbest: ")
	log.SetFlags(0)

	if err := findbest(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage error")

func findbest(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("findbest", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), `Usage: findbest [flags] input

findbest reports the best key/value stores for each usage pattern in
a CSV table of benchmark measurements. input is a local file, a
gs://bucket/object path, or, with -db, a database data source name.

`)
		flags.PrintDefaults()
	}
	flagFormat := flags.String("format", "tree", "print results in `format`:\n  tree - nested usage patterns with raw averages\n  csv  - one line per pattern, one column per record count\n  table - the csv layout aligned as text\n  html - the csv layout as an HTML table")
	flagTolerance := flags.Float64("tolerance", benchbest.DefaultTolerance, "report stores within relative tolerance `τ` of the best")
	flagCoarse := flags.Bool("coarse", false, "same as -tolerance 0.5")
	flagHeader := flags.Bool("header", false, "print a header line in csv format")
	flagDB := flags.String("db", "", "read from a database using `driver` (sqlite3 or mysql); input is the data source name")
	flagTable := flags.String("table", "results", "read rows from database `table`")
	flagAnon := flags.Bool("gcs-anonymous", false, "read gs:// inputs without credentials")
	if err := flags.Parse(args); err != nil {
		return err
	}

	usageErr := func(format string, a ...any) error {
		fmt.Fprintf(stderr, format+"\n", a...)
		flags.Usage()
		return errUsage
	}
	if flags.NArg() != 1 {
		return usageErr("expected exactly one input")
	}
	format, err := report.ParseFormat(*flagFormat)
	if err != nil {
		return usageErr("%s", err)
	}
	cfg := benchbest.Config{Tolerance: *flagTolerance}
	if *flagCoarse {
		tolSet := false
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "tolerance" {
				tolSet = true
			}
		})
		if tolSet {
			return usageErr("-coarse and -tolerance are mutually exclusive")
		}
		cfg.Tolerance = benchbest.CoarseTolerance
	}
	if err := cfg.Validate(); err != nil {
		return usageErr("%s", err)
	}

	ctx := context.Background()
	input := flags.Arg(0)
	var recs []benchcsv.Record
	if *flagDB != "" {
		recs, err = readDB(ctx, *flagDB, input, *flagTable)
	} else {
		var opts []option.ClientOption
		if *flagAnon {
			opts = append(opts, option.WithoutAuthentication())
		}
		recs, err = readFile(ctx, input, opts...)
	}
	if err != nil {
		return err
	}

	res, err := benchbest.SelectAll(benchbest.Group(recs), cfg)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, res, report.Options{Format: format, Header: *flagHeader}); err != nil {
		return err
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

func readFile(ctx context.Context, path string, opts ...option.ClientOption) ([]benchcsv.Record, error) {
	f, err := source.Open(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return benchcsv.ReadAll(f, path)
}

func readDB(ctx context.Context, driver, dsn, table string) ([]benchcsv.Record, error) {
	db, err := benchdb.OpenSQL(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Records(ctx, table)
}
