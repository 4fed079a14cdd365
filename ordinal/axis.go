// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordinal maps irregularly spaced axis values to evenly spaced
// positions and back.
//
// A time axis over trading data has gaps: nights, weekends, holidays.
// Rendering such data on a plain linear axis wastes most of the plot on
// empty space. An ordinal axis instead treats every known x-value as one
// "ordinal position" and spaces positions evenly, while still exposing
// numeric conversions between raw values, fractional ordinal indexes,
// and linear (screen-ready) coordinates. The package also generates
// gap-aware calendar ticks for such axes and supports panning and
// overscrolling past the edge of the data.
//
// The central type is Axis. An Axis owns the current extremes, the
// pixel length, and an Ordinal capability that holds the position set,
// the index↔value transform, and a cache of positions computed over the
// entire dataset (needed when panning beyond the visible window).
package ordinal

import (
	"math"
	"time"
)

// Options configures ordinal behavior for an axis.
type Options struct {
	// Ordinal forces ordinal mode even when the data is evenly
	// spaced.
	Ordinal bool

	// Overscroll is the extra range to append past the last data
	// point, as an absolute value ("3600000"), a percentage of the
	// data range ("10%"), or a pixel distance ("50px"). An empty or
	// unparseable spec means no overscroll.
	Overscroll string

	// TickPixelInterval is the desired pixel distance between ticks.
	// It drives the tick thinning pass. Zero disables thinning.
	TickPixelInterval float64

	// KeepOrdinalPadding suppresses the rule that forces ordinal
	// mode when the first or last position sits more than one point
	// range inside the requested extremes.
	KeepOrdinalPadding bool

	// StartOfWeek is the weekday that week-unit ticks align to.
	StartOfWeek time.Weekday
}

// Axis holds the value-domain state of one chart axis. The surrounding
// chart owns rendering and event wiring; the axis owns the numeric
// state and the ordinal capability.
type Axis struct {
	// Min and Max are the current visible extremes in the value
	// domain. NaN means not yet set.
	Min, Max float64

	// DataMin and DataMax are the extremes of the underlying data
	// across all series.
	DataMin, DataMax float64

	// Len is the pixel extent of the axis.
	Len float64

	// MinPixelPadding is the index-space padding applied when
	// converting linear coordinates back to values.
	MinPixelPadding float64

	// Ticker generates plain (non-ordinal) time ticks. It is the
	// fallback for regular data and the per-segment generator for
	// gapped data. If nil, a UTC CalendarTicker is used.
	Ticker TimeTicker

	Opts Options

	series []Series
	ord    *Ordinal

	// originalRange is the data range observed when data was first
	// attached. Percentage overscroll resolves against it so that
	// zooming does not change the overscroll distance.
	originalRange float64
}

// NewAxis returns an axis over the given series with the ordinal
// capability composed in. Call SetExtremes (or DataChanged followed by
// SetExtremes) before translating values.
func NewAxis(opts Options, series ...Series) *Axis {
	a := &Axis{
		Min:    math.NaN(),
		Max:    math.NaN(),
		Opts:   opts,
		series: series,
		Ticker: CalendarTicker{},
	}
	a.ord = newOrdinal(a)
	a.DataChanged()
	return a
}

// Ordinal returns the axis's ordinal capability.
func (a *Axis) Ordinal() *Ordinal { return a.ord }

// Series returns the series attached to the axis.
func (a *Axis) Series() []Series { return a.series }

// DataChanged recomputes the data extremes and invalidates positions
// computed from the old data. Owners must call this whenever a series'
// underlying data is appended to or replaced; the extended-position
// cache is cleared before any lookup can read stale entries.
func (a *Axis) DataChanged() {
	a.ord.cache.invalidate()

	dataMin, dataMax := math.NaN(), math.NaN()
	for _, s := range a.series {
		xs := s.FullXData()
		if len(xs) == 0 {
			continue
		}
		if math.IsNaN(dataMin) || xs[0] < dataMin {
			dataMin = xs[0]
		}
		if math.IsNaN(dataMax) || xs[len(xs)-1] > dataMax {
			dataMax = xs[len(xs)-1]
		}
	}
	a.DataMin, a.DataMax = dataMin, dataMax
	if a.originalRange == 0 && !math.IsNaN(dataMin) && dataMax > dataMin {
		a.originalRange = dataMax - dataMin
	}
	if !math.IsNaN(a.Min) {
		a.BeforeSetTickPositions()
	}
}

// SetExtremes sets the visible extremes and recomputes the ordinal
// state for the new window.
func (a *Axis) SetExtremes(min, max float64) {
	a.Min, a.Max = min, max
	for _, s := range a.series {
		s.SetWindow(min, max)
	}
	a.BeforeSetTickPositions()
}

// BeforeSetTickPositions rebuilds the visible ordinal position set and
// the index↔linear transform. It must run after every extremes change
// and before tick generation.
func (a *Axis) BeforeSetTickPositions() {
	var data [][]float64
	for _, s := range a.series {
		if !s.ReservesSpace() {
			continue
		}
		data = append(data, s.XData())
	}

	ctx := shadowContext{
		min:         a.Min,
		max:         a.Max,
		dataMax:     a.DataMax,
		forced:      a.Opts.Ordinal,
		keepPadding: a.Opts.KeepOrdinalPadding,
		overscroll:  a.ConvertOverscroll(),
	}
	a.ord.apply(buildPositions(ctx, data))
}

// ClosestPointRange returns the smallest closest-point distance
// reported by any attached series, falling back to the smallest gap in
// the visible position set.
func (a *Axis) ClosestPointRange() float64 {
	best := 0.0
	for _, s := range a.series {
		if d := s.ClosestPointRange(); d > 0 && (best == 0 || d < best) {
			best = d
		}
	}
	if best == 0 {
		best = closestSpacing(a.ord.positions)
	}
	return best
}

// Translate converts a value to a pixel offset from the axis start
// using the current extremes. With ordinal mode active the conversion
// runs through the ordinal transform, so equal index distances map to
// equal pixel distances regardless of value-domain gaps.
func (a *Axis) Translate(val float64) float64 {
	lmin := a.ord.Val2Lin(a.Min, false)
	lmax := a.ord.Val2Lin(a.Max, false)
	if lmax == lmin {
		return 0
	}
	return (a.ord.Val2Lin(val, false) - lmin) / (lmax - lmin) * a.Len
}
