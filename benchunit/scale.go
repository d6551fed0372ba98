// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"strconv"

	"github.com/kvstorebench/findbest/benchcsv"
)

// A Scaler converts a raw measurement into a display unit.
type Scaler struct {
	Factor float64 // Raw units per display unit
	Suffix string  // Display unit, including any separating space
}

var (
	// PercentScaler formats "space" measurements, which are
	// already percentages.
	PercentScaler = Scaler{1, "%"}

	// MemoryScaler formats "memory" measurements.
	MemoryScaler = Scaler{1024, " MiB"}

	// TimeScaler formats time-like measurements, which are
	// recorded in nanoseconds.
	TimeScaler = Scaler{1000, " μs"}
)

// ScalerOf returns the Scaler for values of operation op. Operations
// other than "space" and "memory", including unknown ones, are
// treated as times.
func ScalerOf(op string) Scaler {
	switch op {
	case benchcsv.OpSpace:
		return PercentScaler
	case benchcsv.OpMemory:
		return MemoryScaler
	}
	return TimeScaler
}

// Format divides val by s.Factor, rounds half away from zero to an
// integer, and appends the unit suffix. For example,
// TimeScaler.Format(1500) returns "2 μs".
func (s Scaler) Format(val int64) string {
	n := int64(math.Round(float64(val) / s.Factor))
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, n, 10)
	buf = append(buf, s.Suffix...)
	return string(buf)
}

// Format formats val, a measurement of operation op, in op's display
// unit.
func Format(op string, val int64) string {
	return ScalerOf(op).Format(val)
}
