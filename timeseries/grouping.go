// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"time"

	"github.com/aclements/go-ordinal/ordinal"
)

// Grouping buckets a series' x-values into calendar units so that each
// group spans at least MinPixelWidth pixels at the queried axis width.
// It implements ordinal.Grouper.
type Grouping struct {
	// Series is the series being grouped.
	Series *Series

	// MinPixelWidth is the minimum pixel width of one group.
	// Zero means 10.
	MinPixelWidth float64

	// StartOfWeek aligns week-unit buckets.
	StartOfWeek time.Weekday
}

var _ ordinal.Grouper = (*Grouping)(nil)

func (g *Grouping) interval(widthPx float64) (ordinal.TimeInterval, bool) {
	xs := g.Series.FullXData()
	if len(xs) < 2 || widthPx <= 0 {
		return ordinal.TimeInterval{}, false
	}
	minW := g.MinPixelWidth
	if minW == 0 {
		minW = 10
	}
	maxGroups := widthPx / minW
	if maxGroups < 1 {
		maxGroups = 1
	}
	raw := (xs[len(xs)-1] - xs[0]) / maxGroups
	if raw <= g.Series.ClosestPointRange() {
		// The raw data is already coarse enough.
		return ordinal.TimeInterval{}, false
	}
	return ordinal.NormalizeTimeInterval(raw), true
}

// Current returns the grouping granularity in effect at widthPx.
func (g *Grouping) Current(widthPx float64) (count int, unitName string, ok bool) {
	iv, ok := g.interval(widthPx)
	return iv.Count, iv.UnitName, ok
}

// GroupData buckets xs at widthPx, emitting one position per non-empty
// bucket (the bucket's calendar floor). With no grouping in effect it
// returns xs unchanged.
func (g *Grouping) GroupData(xs []float64, widthPx float64) []float64 {
	iv, ok := g.interval(widthPx)
	if !ok {
		return xs
	}
	ticker := ordinal.CalendarTicker{}
	var out []float64
	for _, x := range xs {
		b := ticker.Floor(iv, x, g.StartOfWeek)
		if len(out) == 0 || b != out[len(out)-1] {
			out = append(out, b)
		}
	}
	return out
}
