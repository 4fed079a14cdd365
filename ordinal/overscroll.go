// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/vec"
)

// ConvertOverscroll resolves the configured overscroll spec to an
// absolute value-domain distance. A plain number is used as is, "N%"
// resolves against the original data range, and "Npx" converts a pixel
// distance through the axis length. Unparseable specs resolve to 0.
func (a *Axis) ConvertOverscroll() float64 {
	spec := strings.TrimSpace(a.Opts.Overscroll)
	if spec == "" {
		return 0
	}

	valueRange := a.originalRange
	if valueRange == 0 && !math.IsNaN(a.DataMin) {
		valueRange = a.DataMax - a.DataMin
	}

	switch {
	case strings.HasSuffix(spec, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(spec, "%"), 64)
		if err != nil || pct < 0 {
			return 0
		}
		return pct / 100 * valueRange
	case strings.HasSuffix(spec, "px"):
		px, err := strconv.ParseFloat(strings.TrimSuffix(spec, "px"), 64)
		if err != nil || px < 0 || a.Len <= 0 {
			return 0
		}
		// Cap at 90% of the axis so the conversion below cannot
		// divide by zero.
		px = math.Min(px, 0.9*a.Len)
		p := px / a.Len
		return valueRange * (p / (1 - p))
	default:
		abs, err := strconv.ParseFloat(spec, 64)
		if err != nil || abs < 0 {
			return 0
		}
		return abs
	}
}

// overscrollPositions returns evenly spaced synthetic positions past
// dataMax, stepped by dist, covering at least the overscroll distance.
func overscrollPositions(dataMax, dist, overscroll float64) []float64 {
	if dist <= 0 || overscroll <= 0 {
		return nil
	}
	n := int(math.Ceil(overscroll / dist))
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{dataMax + dist}
	}
	return vec.Linspace(dataMax+dist, dataMax+float64(n)*dist, n)
}

// Pan applies a horizontal drag of deltaPixels to the axis extremes.
// Positive deltas pan toward larger values. The delta is converted to a
// whole number of ordinal units; pans that would move the minimum below
// DataMin or the maximum beyond DataMax plus overscroll leave the
// extremes unchanged. Pan reports false when ordinal mode is off, in
// which case the caller should fall back to plain linear panning.
func (a *Axis) Pan(deltaPixels float64) bool {
	o := a.ord
	if o == nil || !o.useOrdinal {
		return false
	}
	ext := o.ExtendedPositions(true)
	if len(ext) < 2 || a.Len <= 0 {
		return false
	}

	minIndex := indexOfValue(ext, a.Min)
	maxIndex := indexOfValue(ext, a.Max)
	visibleUnits := maxIndex - minIndex
	if visibleUnits <= 0 {
		return false
	}
	movedUnits := math.Round(deltaPixels / (a.Len / visibleUnits))
	if movedUnits == 0 {
		return true
	}

	newMinIndex := minIndex + movedUnits
	newMaxIndex := maxIndex + movedUnits
	if newMinIndex < 0 || newMaxIndex > float64(len(ext)-1) {
		// Rejected: the pan would leave the known range.
		return true
	}
	newMin := valueAtIndex(ext, newMinIndex)
	newMax := valueAtIndex(ext, newMaxIndex)
	if newMin < a.DataMin || newMax > a.DataMax+a.ConvertOverscroll() {
		return true
	}

	a.SetExtremes(newMin, newMax)
	return true
}
