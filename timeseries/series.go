// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"sort"

	"github.com/aclements/go-ordinal/ordinal"
)

// Series holds one sorted sample sequence and implements
// ordinal.Series. The zero window spans the entire data set.
type Series struct {
	name string
	xs   []float64
	ys   []float64

	// lo and hi delimit the current window as a half-open index
	// range into xs.
	lo, hi int

	closest float64
	grouper ordinal.Grouper
}

var _ ordinal.Series = (*Series)(nil)

// NewSeries returns a series over samples, sorting them by time.
// Samples with duplicate timestamps are kept; the ordinal position
// builder de-duplicates across series anyway.
func NewSeries(name string, samples []Sample) *Series {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	s := &Series{name: name}
	for _, sm := range sorted {
		s.push(sm)
	}
	s.hi = len(s.xs)
	return s
}

func (s *Series) push(sm Sample) {
	if n := len(s.xs); n > 0 {
		if d := sm.T - s.xs[n-1]; d > 0 && (s.closest == 0 || d < s.closest) {
			s.closest = d
		}
	}
	s.xs = append(s.xs, sm.T)
	s.ys = append(s.ys, sm.V)
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Len returns the total number of samples.
func (s *Series) Len() int { return len(s.xs) }

// XData returns the x-values inside the current window.
func (s *Series) XData() []float64 { return s.xs[s.lo:s.hi] }

// YData returns the values paired with XData.
func (s *Series) YData() []float64 { return s.ys[s.lo:s.hi] }

// FullXData returns all x-values regardless of the window.
func (s *Series) FullXData() []float64 { return s.xs }

// SetWindow restricts XData and YData to samples in [min, max].
func (s *Series) SetWindow(min, max float64) {
	s.lo = sort.SearchFloat64s(s.xs, min)
	s.hi = sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > max })
}

// ClosestPointRange returns the smallest positive gap between two
// consecutive samples, or 0 with fewer than two samples.
func (s *Series) ClosestPointRange() float64 { return s.closest }

// ReservesSpace reports that the series takes part in the ordinal
// position set.
func (s *Series) ReservesSpace() bool { return true }

// Grouper returns the series' data-grouping collaborator, or nil.
func (s *Series) Grouper() ordinal.Grouper { return s.grouper }

// SetGrouper installs a data-grouping collaborator.
func (s *Series) SetGrouper(g ordinal.Grouper) { s.grouper = g }

// Append adds a sample at the end of the series. Samples that do not
// extend the series in time are rejected and Append returns false.
// After appending, the owning axis must be notified via DataChanged so
// cached positions are invalidated before the next lookup.
func (s *Series) Append(sm Sample) bool {
	if n := len(s.xs); n > 0 && sm.T <= s.xs[n-1] {
		return false
	}
	grow := s.hi == len(s.xs)
	s.push(sm)
	if grow {
		// A window pinned to the live edge follows it.
		s.hi = len(s.xs)
	}
	return true
}
