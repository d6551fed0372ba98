// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats key/value store measurements in their
// display units and orders size-class labels.
package benchunit

import (
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ParseSize returns the lower bound, in bytes, of a size-class label.
// Labels are ranges such as "1KiB-10KiB" or "100B - 1KB", bounds such
// as "<100B" or ">=1MiB", or single sizes such as "64 KB". Both SI
// and IEC prefixes are understood. ParseSize reports false if label
// does not start with a size.
func ParseSize(label string) (uint64, bool) {
	s := strings.TrimLeftFunc(label, func(r rune) bool {
		return r == '<' || r == '>' || r == '=' || r == '~' || unicode.IsSpace(r)
	})
	// The lower bound ends at the range separator.
	if i := strings.IndexAny(s, "-–"); i > 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CompareSize orders size-class labels from smallest to largest. It
// returns -1, 0, or +1. Labels that ParseSize understands come before
// labels it does not. Labels with equal or unknown sizes are ordered
// lexically, so CompareSize returns 0 only if a == b.
func CompareSize(a, b string) int {
	if a == b {
		return 0
	}
	an, aok := ParseSize(a)
	bn, bok := ParseSize(b)
	switch {
	case aok && bok && an != bn:
		if an < bn {
			return -1
		}
		return 1
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	}
	return strings.Compare(a, b)
}
