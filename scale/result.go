// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// A Result is a well-tempered scale: Intervals equal steps of a nice
// number from Min to Max.
type Result struct {
	// Min and Max are the scale bounds. For Internal, they are the
	// outermost reference values inside the data range.
	Min, Max float64

	// Intervals is the number of steps between Min and Max.
	Intervals int

	step float64
}

func newResult(b labelBounds, nice float64) Result {
	return Result{
		Min:       float64(b.lo) * nice,
		Max:       float64(b.hi) * nice,
		Intervals: b.span(),
		step:      nice,
	}
}

// Step returns the nice number separating adjacent ticks of r.
func (r Result) Step() float64 {
	return r.step
}

// Ticks returns the Intervals+1 tick values of r in ascending order,
// starting at r.Min and ending at r.Max.
func (r Result) Ticks() []float64 {
	return vec.Linspace(r.Min, r.Max, r.Intervals+1)
}

// Quantitative returns a linear scale that maps [r.Min, r.Max] to
// [0, 1].
func (r Result) Quantitative() *mscale.Linear {
	return &mscale.Linear{Min: r.Min, Max: r.Max}
}

func (r Result) String() string {
	return fmt.Sprintf("[%g, %g]/%d", r.Min, r.Max, r.Intervals)
}
