// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// labelBounds are the multiples of a nice number at the low and high
// end of a scale.
type labelBounds struct {
	lo, hi int
}

// span returns the number of intervals between b.lo and b.hi.
func (b labelBounds) span() int {
	return b.hi - b.lo
}

// externalLabel returns the smallest span of multiples of nice that
// contains [min, max]. That is, lo*nice <= min and hi*nice >= max.
func externalLabel(min, max, nice float64) labelBounds {
	lo := int(math.Floor(min / nice))
	if float64(lo+1)*nice <= min {
		lo++
	}
	hi := int(math.Ceil(max / nice))
	if float64(hi-1)*nice >= max {
		hi--
	}
	return labelBounds{lo, hi}
}

// internalLabel returns the largest span of multiples of nice that
// lies within [min, max]. That is, lo*nice >= min and hi*nice <= max.
func internalLabel(min, max, nice float64) labelBounds {
	lo := int(math.Ceil(min / nice))
	if float64(lo-1)*nice >= min {
		lo--
	}
	hi := int(math.Floor(max / nice))
	if float64(hi+1)*nice <= max {
		hi++
	}
	return labelBounds{lo, hi}
}
