// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1] and can place tick marks on that range.
type Interface interface {
	Of(x float64) float64

	// Ticks returns at most n major ticks in the input range and
	// the minor ticks between them. The two slices are disjoint
	// and sorted in ascending order.
	Ticks(n int) (major, minor []float64)
}

// A Nicer is a scale whose input range can be widened to
// well-tempered bounds.
type Nicer interface {
	Interface

	// Nice expands the input range so that it starts and ends on
	// major ticks, with at most n major ticks.
	Nice(n int)
}
