// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale selects well-tempered bounds for linear chart axes.
//
// A well-tempered scale has its bounds and tick spacing on "nice"
// numbers: 1, 2 or 5 times a power of ten. Given a data range and an
// interval count, the functions in this package search the nice
// numbers for a tick spacing and return the resulting axis bounds.
//
// There are four selection policies, after Tom Steppe, "Well
// Tempered Linear Scales", Computer Language, September 1989:
//
// Fixed returns exactly the requested number of intervals, centering
// the data when the nice bounds need fewer (Dixon and Kronmal).
//
// Approximate picks the nice spacing geometrically closest to the
// requested spacing, trading an exact interval count for better use
// of the axis (Lewart).
//
// MaxIntervals returns the tightest nice bounds that need no more
// than the requested number of intervals.
//
// Internal places reference values inside the data range rather
// than bounds around it.
//
// All four panic if min >= max or the interval count is below the
// policy's minimum. Validating input is the caller's job.
package scale // import "github.com/aclements/go-tempered/scale"
