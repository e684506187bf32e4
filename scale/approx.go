// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Approximate returns a scale covering [min, max] with roughly n
// intervals. This is Lewart's algorithm.
//
// Rather than the smallest nice step that fits, Approximate picks the
// nice step closest to (max-min)/n, using the geometric means of
// adjacent nice numbers as breakpoints. The resulting interval count
// may be more or less than n.
//
// n must be >= 2 and min must be < max.
func Approximate(min, max float64, n int) Result {
	checkArgs(min, max, n, minIntervals)

	size := (max - min) / float64(n)
	nice, c := firstNice(size)
	for c.breakpoint() < size {
		nice, c = c.next()
	}
	return newResult(externalLabel(min, max, nice), nice)
}
