// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import "fmt"

// positionCache memoizes full-dataset position sets per grouping
// granularity. Entries never expire on their own; the axis invalidates
// the whole cache when series data changes, before any lookup could
// read a stale entry.
type positionCache struct {
	entries map[string][]float64
}

func newPositionCache() *positionCache {
	return &positionCache{entries: make(map[string][]float64)}
}

func (c *positionCache) get(key string) ([]float64, bool) {
	p, ok := c.entries[key]
	return p, ok
}

func (c *positionCache) put(key string, p []float64) {
	c.entries[key] = p
}

func (c *positionCache) invalidate() {
	clear(c.entries)
}

// rawGroupingKey identifies the ungrouped position set.
const rawGroupingKey = "raw"

// groupingKey derives the cache key from the grouping granularity in
// effect at the axis's pixel width.
func (o *Ordinal) groupingKey() string {
	for _, s := range o.axis.series {
		g := s.Grouper()
		if g == nil {
			continue
		}
		if count, unit, ok := g.Current(o.axis.Len); ok {
			return fmt.Sprintf("%d%s", count, unit)
		}
	}
	return rawGroupingKey
}

// ExtendedPositions returns the ordinal positions computed over the
// entire dataset rather than the visible window. Panning needs them to
// know what lies beyond the viewport. The result is memoized per
// grouping granularity; withOverscroll appends synthetic positions past
// the data edge without entering the cache.
func (o *Ordinal) ExtendedPositions(withOverscroll bool) []float64 {
	key := o.groupingKey()
	positions, ok := o.cache.get(key)
	if !ok {
		positions = o.computeExtended()
		o.cache.put(key, positions)
	}
	if !withOverscroll {
		return positions
	}
	overscroll := o.axis.ConvertOverscroll()
	if overscroll <= 0 || len(positions) == 0 {
		return positions
	}
	dist := closestSpacing(positions)
	if dist == 0 {
		dist = overscroll
	}
	dataMax := positions[len(positions)-1]
	extra := overscrollPositions(dataMax, dist, overscroll)
	out := make([]float64, 0, len(positions)+len(extra))
	out = append(out, positions...)
	return append(out, extra...)
}

// computeExtended runs the position builder over the full, unwindowed
// series data, grouped at the same granularity as the visible window.
// The shadow context mirrors the axis extremes over the whole dataset
// so that live state is never touched.
func (o *Ordinal) computeExtended() []float64 {
	a := o.axis
	var data [][]float64
	for _, s := range a.series {
		if !s.ReservesSpace() {
			continue
		}
		xs := s.FullXData()
		if g := s.Grouper(); g != nil {
			xs = g.GroupData(xs, a.Len)
		}
		data = append(data, xs)
	}

	// overscroll stays zero: synthetic positions are appended on
	// retrieval, never cached.
	ctx := shadowContext{
		min:         a.DataMin,
		max:         a.DataMax,
		dataMax:     a.DataMax,
		forced:      true,
		keepPadding: a.Opts.KeepOrdinalPadding,
	}
	return buildPositions(ctx, data).positions
}
