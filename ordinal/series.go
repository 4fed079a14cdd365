// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

// Series is the view of one data series that the axis engine needs.
// Implementations must keep all x-data sorted in ascending order.
type Series interface {
	// XData returns the x-values inside the current window.
	XData() []float64

	// FullXData returns the x-values of the entire dataset,
	// regardless of the current window. Panning uses it to learn
	// what lies beyond the viewport.
	FullXData() []float64

	// SetWindow restricts XData to [min, max].
	SetWindow(min, max float64)

	// ClosestPointRange returns the smallest gap between two
	// consecutive x-values, or 0 when unknown.
	ClosestPointRange() float64

	// ReservesSpace reports whether the series takes part in the
	// ordinal position set. Series rendered without their own
	// horizontal extent (e.g. flags) return false.
	ReservesSpace() bool

	// Grouper returns the series' data-grouping collaborator, or
	// nil when grouping is disabled.
	Grouper() Grouper
}

// Grouper aggregates raw x-data into grouped positions for a given
// pixel width. It is consumed as a black box; only the reported
// count/unit pair and the grouped positions matter here.
type Grouper interface {
	// Current returns the grouping granularity in effect for an
	// axis of widthPx pixels. ok is false when no grouping would be
	// applied at that width.
	Current(widthPx float64) (count int, unitName string, ok bool)

	// GroupData returns the grouped positions for xs at widthPx.
	// When no grouping applies it returns xs unchanged.
	GroupData(xs []float64, widthPx float64) []float64
}
