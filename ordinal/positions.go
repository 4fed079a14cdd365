// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// FindIndexOf returns the greatest index whose value in a is less than
// or equal to key. a must be sorted in ascending order. If key is
// smaller than a[0] it returns -1. If indirect is false, only exact
// matches count and -1 is returned for everything else.
func FindIndexOf(a []float64, key float64, indirect bool) int {
	i := sort.SearchFloat64s(a, key)
	if i < len(a) && a[i] == key {
		return i
	}
	if !indirect {
		return -1
	}
	return i - 1
}

// indexOfValue returns the fractional index of val in the ascending
// slice a, interpolating between neighbors. Values outside a are
// extrapolated linearly using the spacing of the nearest pair, so the
// result is continuous across the edges.
func indexOfValue(a []float64, val float64) float64 {
	n := len(a)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 0
	}
	i := FindIndexOf(a, val, true)
	if i < 0 {
		return (val - a[0]) / (a[1] - a[0])
	}
	if i >= n-1 {
		return float64(n-1) + (val-a[n-1])/(a[n-1]-a[n-2])
	}
	if a[i] == val {
		return float64(i)
	}
	return float64(i) + (val-a[i])/(a[i+1]-a[i])
}

// valueAtIndex is the inverse of indexOfValue for in-range indexes.
// Out-of-range indexes clamp to the first or last known position.
func valueAtIndex(a []float64, index float64) float64 {
	n := len(a)
	if n == 0 {
		return math.NaN()
	}
	if index <= 0 {
		return a[0]
	}
	if index >= float64(n-1) {
		return a[n-1]
	}
	i := int(index)
	frac := index - float64(i)
	return a[i] + frac*(a[i+1]-a[i])
}

// shadowContext carries the few axis fields the position builder needs,
// so that extended (full-dataset) positions can be computed without
// touching live axis state.
type shadowContext struct {
	min, max    float64
	dataMax     float64
	forced      bool
	keepPadding bool
	overscroll  float64
}

// builtPositions is the result of one position-set computation.
type builtPositions struct {
	positions  []float64
	useOrdinal bool

	// slope and offset map ordinal index to linear value
	// (linear = slope*index + offset) within the visible range.
	// Both are zero when ordinal mode is off.
	slope, offset float64

	// pointRange is the smallest gap between consecutive positions.
	// Synthetic overscroll points are spaced by it.
	pointRange float64
}

// buildPositions merges the series' sorted x-values into one ascending,
// de-duplicated position set and decides whether ordinal mode is
// needed for the window described by ctx.
func buildPositions(ctx shadowContext, data [][]float64) builtPositions {
	set := mapset.NewThreadUnsafeSet[float64]()
	for _, xs := range data {
		for _, x := range xs {
			set.Add(x)
		}
	}
	positions := set.ToSlice()
	sort.Float64s(positions)

	var b builtPositions
	n := len(positions)
	if n == 0 {
		// No data: everything degrades to plain linear behavior.
		return b
	}

	b.useOrdinal = ctx.forced
	b.pointRange = closestSpacing(positions)

	if n > 2 {
		dist := positions[1] - positions[0]
		for i := 2; i < n && !b.useOrdinal; i++ {
			if positions[i]-positions[i-1] != dist {
				b.useOrdinal = true
			}
		}
		// Even regular data needs ordinal treatment when the
		// requested range extends more than one point range past
		// the data, e.g. a week view of weekday-only data. The
		// padding would otherwise show as dead space at the
		// edges.
		if !b.useOrdinal && !ctx.keepPadding && !math.IsNaN(ctx.min) &&
			(positions[0]-ctx.min > dist || ctx.max-positions[n-1] > dist) {
			b.useOrdinal = true
		}
	}

	if n == 1 && ctx.overscroll > 0 {
		// A single position cannot define a range. Build a
		// degenerate two-point range from the overscroll
		// distance so translation and panning stay defined.
		positions = append(positions, positions[0]+ctx.overscroll)
		b.pointRange = ctx.overscroll
	} else if b.useOrdinal && ctx.overscroll > 0 && ctx.max >= ctx.dataMax && b.pointRange > 0 {
		positions = append(positions, overscrollPositions(ctx.dataMax, b.pointRange, ctx.overscroll)...)
	}

	b.positions = positions
	if b.useOrdinal && !math.IsNaN(ctx.min) && !math.IsNaN(ctx.max) {
		minIndex := indexOfValue(positions, ctx.min)
		maxIndex := indexOfValue(positions, ctx.max)
		if maxIndex > minIndex {
			b.slope = (ctx.max - ctx.min) / (maxIndex - minIndex)
			b.offset = ctx.min - minIndex*b.slope
		} else {
			// Degenerate window; keep the transform invertible.
			b.slope = math.Max(b.pointRange, 1)
			b.offset = ctx.min - minIndex*b.slope
		}
	}
	return b
}

// closestSpacing returns the smallest gap between consecutive values,
// or 0 for fewer than two values.
func closestSpacing(a []float64) float64 {
	best := 0.0
	for i := 1; i < len(a); i++ {
		if d := a[i] - a[i-1]; best == 0 || d < best {
			best = d
		}
	}
	return best
}
