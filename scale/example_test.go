// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale_test

import (
	"fmt"

	"github.com/aclements/go-tempered/scale"
)

func ExampleFixed() {
	r := scale.Fixed(-7, 23, 4)
	fmt.Println(r, r.Step())
	fmt.Println(r.Ticks())
	// Output:
	// [-10, 30]/4 10
	// [-10 0 10 20 30]
}

func ExampleApproximate() {
	// Lewart's algorithm may overshoot the requested count.
	fmt.Println(scale.Approximate(0, 60, 10))
	// Output: [0, 60]/12
}

func ExampleMaxIntervals() {
	fmt.Println(scale.MaxIntervals(3, 27, 10))
	// Output: [0, 30]/6
}

func ExampleInternal() {
	fmt.Println(scale.Internal(12, 88, 5))
	// Output: [20, 80]/3
}

func ExampleLinear() {
	s := scale.NewLinear([]float64{3, 14, 27})
	s.Nice(6)
	major, _ := s.Ticks(6)
	fmt.Println(s.Bounds())
	fmt.Println(major)
	// Output:
	// 0 30
	// [0 10 20 30]
}
