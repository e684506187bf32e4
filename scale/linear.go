// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

type Linear struct {
	dom mscale.Linear
}

var _ Nicer = &Linear{}

// NewLinear returns a new linear scale over the range of input.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{mscale.Linear{Min: min, Max: max}}
}

// Bounds returns the input range of s.
func (s Linear) Bounds() (min, max float64) {
	return s.dom.Min, s.dom.Max
}

func (s Linear) Of(x float64) float64 {
	return s.dom.Map(x)
}

// Nice expands the input range of s to the tightest well-tempered
// bounds with at most n major ticks. A zero-width range is first
// widened by 0.5 or one billionth of its value, whichever is larger.
//
// n must be >= 3.
func (s *Linear) Nice(n int) {
	checkTicks(n)

	if s.dom.Min == s.dom.Max {
		// Widen relative to the value so large values still
		// open up a range.
		d := math.Max(0.5, math.Abs(s.dom.Min)*1e-9)
		s.dom.Min -= d
		s.dom.Max += d
	}
	r := MaxIntervals(s.dom.Min, s.dom.Max, n-1)
	s.dom.Min, s.dom.Max = r.Min, r.Max
}

// Ticks returns the major ticks of the MaxIntervals scale for the
// input range of s that fall inside that range, and the minor ticks
// subdividing each major interval.
//
// n must be >= 3.
func (s Linear) Ticks(n int) (major, minor []float64) {
	checkTicks(n)

	major, minor = []float64{}, []float64{}
	min, max := s.dom.Min, s.dom.Max
	if min == max {
		return append(major, min), minor
	}

	r := MaxIntervals(min, max, n-1)
	div := subdivisions(r.Step())

	// Let ticks that differ from the bounds only by rounding
	// error through.
	slack := (max - min) * 1e-10

	for i, x := range vec.Linspace(r.Min, r.Max, r.Intervals*div+1) {
		if x < min-slack || x > max+slack {
			continue
		}
		if i%div == 0 {
			major = append(major, x)
		} else {
			minor = append(minor, x)
		}
	}
	return
}

func checkTicks(n int) {
	if n < minIntervals+1 {
		panic("n must be >= 3")
	}
}

// subdivisions returns the number of minor intervals per major
// interval of size step: 0.2 steps for mantissa 1 and 5, 0.5 steps
// for mantissa 2.
func subdivisions(step float64) int {
	m := math.Round(step / pow10(int(math.Floor(math.Log10(step)))))
	if m == 2 {
		return 4
	}
	return 5
}
