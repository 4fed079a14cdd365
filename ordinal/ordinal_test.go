// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"math"
	"sort"
)

// stubSeries is a minimal Series over a fixed sorted x-slice.
type stubSeries struct {
	xs      []float64
	lo, hi  int
	grouper Grouper
}

func newStubSeries(xs []float64) *stubSeries {
	return &stubSeries{xs: xs, hi: len(xs)}
}

func (s *stubSeries) XData() []float64     { return s.xs[s.lo:s.hi] }
func (s *stubSeries) FullXData() []float64 { return s.xs }

func (s *stubSeries) SetWindow(min, max float64) {
	s.lo = sort.SearchFloat64s(s.xs, min)
	s.hi = sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > max })
}

func (s *stubSeries) ClosestPointRange() float64 { return closestSpacing(s.xs) }
func (s *stubSeries) ReservesSpace() bool        { return true }
func (s *stubSeries) Grouper() Grouper           { return s.grouper }

func newTestAxis(opts Options, xs []float64) *Axis {
	return NewAxis(opts, newStubSeries(xs))
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func floatsEq(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approxEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func intsEq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
