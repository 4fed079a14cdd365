// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Ordinal is the ordinal capability of an axis: the visible position
// set, the index↔linear transform, and the extended-position cache. It
// is composed into an Axis at construction; collaborators reach it
// through Axis.Ordinal.
type Ordinal struct {
	axis *Axis

	positions  []float64
	useOrdinal bool
	slope      float64
	offset     float64
	pointRange float64

	cache *positionCache
}

func newOrdinal(a *Axis) *Ordinal {
	return &Ordinal{axis: a, cache: newPositionCache()}
}

// Active reports whether ordinal mapping is in effect for the current
// window. When false, all conversions are the identity.
func (o *Ordinal) Active() bool { return o.useOrdinal }

// Positions returns the visible ordinal position set, including any
// synthetic overscroll positions. The slice is owned by the capability
// and is valid until the next extremes change.
func (o *Ordinal) Positions() []float64 { return o.positions }

// Slope and Offset describe the linear transform
// linear = Slope*index + Offset for the visible window. Both are zero
// when ordinal mode is off.
func (o *Ordinal) Slope() float64  { return o.slope }
func (o *Ordinal) Offset() float64 { return o.offset }

func (o *Ordinal) apply(b builtPositions) {
	if b.useOrdinal {
		o.positions = b.positions
		o.slope = b.slope
		o.offset = b.offset
		o.pointRange = b.pointRange
	} else {
		// Identity mapping.
		o.positions = nil
		o.slope = 0
		o.offset = 0
		o.pointRange = b.pointRange
	}
	o.useOrdinal = b.useOrdinal
}

// Val2Lin converts a raw value to its ordinal representation. With
// toIndex it returns the fractional ordinal index of val; otherwise it
// returns the linear value slope*index + offset. Values outside the
// visible positions are resolved against the extended (full-dataset)
// positions; values outside even those are extrapolated from the
// extended set's average spacing when toIndex is set, and returned
// unchanged when it is not. With no positions at all the value is
// returned unchanged.
func (o *Ordinal) Val2Lin(val float64, toIndex bool) float64 {
	positions := o.positions
	if len(positions) == 0 {
		return val
	}

	var index float64
	if val >= positions[0] && val <= positions[len(positions)-1] {
		index = indexOfValue(positions, val)
	} else {
		ext := o.ExtendedPositions(false)
		if len(ext) < 2 {
			return val
		}
		// Shift extended indexes so that index 0 lines up with
		// the first visible position.
		ref := indexOfValue(ext, positions[0])
		switch {
		case val >= ext[0] && val <= ext[len(ext)-1]:
			index = indexOfValue(ext, val) - ref
		case !toIndex:
			// Best-effort identity: no mapping is performed
			// for raw-value requests beyond all known data.
			return val
		case val < ext[0]:
			index = -ref - (ext[0]-val)/meanSpacing(ext)
		default:
			index = float64(len(ext)) - ref + (val-ext[len(ext)-1])/meanSpacing(ext)
		}
	}

	if toIndex {
		return index
	}
	slope := o.slope
	if slope == 0 {
		slope = 1
	}
	return slope*index + o.offset
}

// Lin2Val is the inverse of Val2Lin(v, false): it converts a linear
// value back to a raw value by locating the neighboring extended
// positions and interpolating. It returns the input unchanged when no
// extended positions exist.
func (o *Ordinal) Lin2Val(linear float64) float64 {
	ext := o.ExtendedPositions(true)
	if len(ext) == 0 {
		return linear
	}
	slope := o.slope
	if slope == 0 {
		slope = meanSpacing(ext)
		if slope == 0 {
			return linear
		}
	}
	index := (linear-o.offset)/slope + o.axis.MinPixelPadding
	if len(o.positions) > 0 {
		index += indexOfValue(ext, o.positions[0])
	}
	return valueAtIndex(ext, index)
}

// Index2Val maps a (possibly fractional) ordinal index back to a raw
// value by interpolating between the two bracketing visible positions.
// Out-of-range indexes clamp to the first or last position.
func (o *Ordinal) Index2Val(index float64) float64 {
	if len(o.positions) == 0 {
		return math.NaN()
	}
	return valueAtIndex(o.positions, index)
}

// meanSpacing returns the average gap between consecutive values,
// used as the slope estimate when extrapolating beyond all known
// positions.
func meanSpacing(a []float64) float64 {
	if len(a) < 2 {
		return 0
	}
	diffs := make([]float64, len(a)-1)
	for i := 1; i < len(a); i++ {
		diffs[i-1] = a[i] - a[i-1]
	}
	return stats.Mean(diffs)
}
