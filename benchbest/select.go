// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchbest

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/kvstorebench/findbest/benchcsv"
)

// Direction is whether smaller or larger averages are better.
type Direction int

const (
	// Minimize prefers the smallest average, for times and memory.
	Minimize Direction = iota
	// Maximize prefers the largest average, for space efficiency.
	Maximize
)

func (d Direction) String() string {
	switch d {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionOf returns the Direction for measurements of op. Only
// "space" is maximized.
func DirectionOf(op string) Direction {
	if op == benchcsv.OpSpace {
		return Maximize
	}
	return Minimize
}

// Tolerances for Config.Tolerance.
const (
	// DefaultTolerance keeps stores within 5% of the best.
	DefaultTolerance = 0.05
	// CoarseTolerance keeps stores within 50% of the best.
	CoarseTolerance = 0.5
)

// Config configures selection.
type Config struct {
	// Tolerance is the relative half-width of the band around the
	// best average. A record is kept if its average lies strictly
	// between (1-Tolerance)*best and (1+Tolerance)*best.
	Tolerance float64
}

// DefaultConfig returns a Config using DefaultTolerance.
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance}
}

// Validate reports whether c can be used for selection.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be a positive number, got %v", c.Tolerance)
	}
	return nil
}

// A BestList is the records of one bucket that are within tolerance
// of the best, winner first.
type BestList []benchcsv.Record

// Select returns the records of bucket whose averages are within
// tolerance of the best average in direction dir. The result is
// sorted from best to worst; records with equal averages keep their
// order in bucket. Select returns nil for an empty bucket.
func Select(bucket []benchcsv.Record, dir Direction, tolerance float64) BestList {
	if len(bucket) == 0 {
		return nil
	}

	avgs := make([]float64, len(bucket))
	for i, rec := range bucket {
		avgs[i] = float64(rec.Avg)
	}
	lo, hi := stats.Bounds(avgs)
	best := lo
	if dir == Maximize {
		best = hi
	}

	var list BestList
	low, high := (1-tolerance)*best, (1+tolerance)*best
	for i, rec := range bucket {
		// The best record always qualifies, even when best <= 0
		// leaves the open band empty.
		if avgs[i] == best || (low < avgs[i] && avgs[i] < high) {
			list = append(list, rec)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if dir == Maximize {
			return list[i].Avg > list[j].Avg
		}
		return list[i].Avg < list[j].Avg
	})
	return list
}

// Results maps each usage pattern to its BestList.
type Results map[Key]BestList

// SelectAll runs Select on every bucket of groups, choosing each
// bucket's Direction from its op.
func SelectAll(groups map[Key][]benchcsv.Record, cfg Config) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := make(Results, len(groups))
	for k, bucket := range groups {
		if len(bucket) == 0 {
			continue
		}
		res[k] = Select(bucket, DirectionOf(k.Op), cfg.Tolerance)
	}
	return res, nil
}

// Keys returns the keys of r in Key.Less order.
func (r Results) Keys() []Key {
	keys := make([]Key, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}
