// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// mantissas are the leading digits of nice numbers, in increasing
// order. The trailing 10 is not a mantissa. It only supplies the
// breakpoint between 5 and the next decade in Approximate.
var mantissas = [...]float64{1, 2, 5, 10}

// usableMantissas is the number of leading entries of mantissas that
// may be returned as nice numbers.
const usableMantissas = 3

// A niceCursor is a position in the increasing sequence of nice
// numbers mantissas[index] * pow.
type niceCursor struct {
	index int
	pow   float64
}

// value returns the nice number at c.
func (c niceCursor) value() float64 {
	return mantissas[c.index] * c.pow
}

// breakpoint returns the geometric mean of the nice number at c and
// the one after it.
func (c niceCursor) breakpoint() float64 {
	return math.Sqrt(mantissas[c.index]*mantissas[c.index+1]) * c.pow
}

// next advances c to the following nice number and returns it.
func (c niceCursor) next() (float64, niceCursor) {
	c.index++
	if c.index >= usableMantissas {
		c.index = 0
		c.pow *= 10
	}
	return c.value(), c
}

// firstNice returns the power of ten p such that p <= size < 10p and
// a cursor positioned on it. size must be positive and finite.
func firstNice(size float64) (float64, niceCursor) {
	pow := pow10(int(math.Floor(math.Log10(size))))
	// Log10 can round down across a decade boundary.
	if pow*10 <= size {
		pow *= 10
	}
	c := niceCursor{0, pow}
	return c.value(), c
}

// smallestNice returns the smallest nice number not smaller than
// size, and the cursor positioned on it.
func smallestNice(size float64) (float64, niceCursor) {
	nice, c := firstNice(size)
	for nice < size {
		nice, c = c.next()
	}
	return nice, c
}

// pow10 returns 10^exp.
func pow10(exp int) float64 {
	return power(10, exp)
}

// power returns base^exp by repeated squaring.
func power(base float64, exp int) float64 {
	if exp < 0 {
		base, exp = 1/base, -exp
	}
	result := 1.0
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		if exp != 0 {
			base *= base
		}
	}
	return result
}
