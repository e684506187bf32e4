// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// MaxIntervals returns the tightest scale covering [min, max] with at
// most n intervals of a nice number.
//
// n must be >= 2 and min must be < max.
func MaxIntervals(min, max float64, n int) Result {
	checkArgs(min, max, n, minIntervals)

	nice, b := coarsen(min, max, n)
	return newResult(b, nice)
}

// Internal returns reference values inside [min, max] at multiples of
// the smallest nice number not smaller than (max-min)/n. Unlike the
// other scales, Result.Min >= min and Result.Max <= max, which uses
// more of the axis at the cost of unlabelled ends.
//
// n must be >= 5 and min must be < max.
func Internal(min, max float64, n int) Result {
	checkArgs(min, max, n, minInternalIntervals)

	nice, _ := smallestNice((max - min) / float64(n))
	return newResult(internalLabel(min, max, nice), nice)
}
