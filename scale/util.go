// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

const (
	// minIntervals is the smallest interval count accepted by
	// Fixed, Approximate and MaxIntervals.
	minIntervals = 2

	// minInternalIntervals is the smallest interval count accepted
	// by Internal.
	minInternalIntervals = 5
)

const (
	// minSize is the smallest interval size the nice number
	// search accepts: the smallest normal float64. Below it,
	// powers of ten lose precision.
	minSize = 0x1p-1022

	// maxMultiple bounds the magnitude of the data relative to
	// the interval size, keeping label multipliers exact.
	maxMultiple = 1e15
)

// checkArgs panics unless [min, max] is a finite, non-empty range and
// n >= least, and the interval size (max-min)/n can be searched
// without overflow or loss of precision.
func checkArgs(min, max float64, n, least int) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || !(min < max) {
		panic(fmt.Sprintf("scale: invalid data range [%g, %g]", min, max))
	}
	if n < least {
		panic(fmt.Sprintf("scale: %d intervals requested; must be >= %d", n, least))
	}
	// The width times 10 must be finite so every nice number the
	// search can reach is finite.
	size := (max - min) / float64(n)
	if math.IsInf((max-min)*10, 0) || size < minSize || math.Max(math.Abs(min), math.Abs(max))/size > maxMultiple {
		panic(fmt.Sprintf("scale: invalid data range [%g, %g] for %d intervals", min, max, n))
	}
}

func minmax(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		panic("scale: no input values")
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}
