// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kvstorebench/findbest/benchbest"
)

const indent = "    "

// WriteTree writes res to w in the tree layout.
//
// Keys are visited in benchbest.Key.Less order. Before each usage
// pattern, WriteTree prints a heading for each of hardware, data
// type, op, and size whose value differs from the previous pattern's
// value at the same level. Each level is compared on its own, so a
// new hardware does not repeat an unchanged data type heading. The
// first pattern gets every heading. The pattern itself is printed as
//
//	<records> : <store> (<avg>) / <store> (<avg>) ...
//
// with each level indented by four more spaces.
func WriteTree(w io.Writer, res benchbest.Results) error {
	bw := bufio.NewWriter(w)

	var prev benchbest.Key
	for i, k := range res.Keys() {
		levels := []struct{ val, prev string }{
			{k.Hardware, prev.Hardware},
			{k.DataType, prev.DataType},
			{k.Op, prev.Op},
			{k.Size, prev.Size},
		}
		for depth, l := range levels {
			if i == 0 || l.val != l.prev {
				fmt.Fprintf(bw, "%s%s\n", strings.Repeat(indent, depth), l.val)
			}
		}
		prev = k

		fmt.Fprintf(bw, "%s%d : %s\n", strings.Repeat(indent, len(levels)), k.Records, formatList(res[k], rawAvg))
	}
	return bw.Flush()
}
