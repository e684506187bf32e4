// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Fixed returns a scale covering [min, max] with exactly n intervals
// of a nice number. This is the enhanced Dixon-Kronmal algorithm.
//
// Fixed finds the smallest nice step that covers the data in at most
// n intervals, then pads the remaining intervals around the data,
// favoring centering. The padding never makes the scale cross zero
// when the data does not.
//
// n must be >= 2 and min must be < max.
func Fixed(min, max float64, n int) Result {
	checkArgs(min, max, n, minIntervals)

	nice, b := coarsen(min, max, n)

	// Split the spare intervals between the two ends. An odd one
	// out goes to whichever end is already tighter.
	diff := n - b.span()
	adj := diff / 2
	if diff%2 == 1 && min-float64(b.lo)*nice < float64(b.hi)*nice-max {
		adj++
	}
	out := labelBounds{b.lo - adj, b.lo - adj + n}

	if out.lo < 0 && b.lo >= 0 {
		out = labelBounds{0, n}
	}
	if out.hi > 0 && b.hi <= 0 {
		out = labelBounds{-n, 0}
	}

	return newResult(out, nice)
}

// coarsen returns the smallest nice number not smaller than
// (max-min)/n whose external labels span at most n intervals.
func coarsen(min, max float64, n int) (float64, labelBounds) {
	nice, c := smallestNice((max - min) / float64(n))
	b := externalLabel(min, max, nice)
	for b.span() > n {
		nice, c = c.next()
		b = externalLabel(min, max, nice)
	}
	return nice, b
}
