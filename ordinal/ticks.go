// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoTickSegments reports that no gap-delimited segment produced any
// ticks. It is recoverable: the caller receives an empty tick set and
// the chart renders without those ticks.
var ErrNoTickSegments = errors.New("ordinal: no tick segments produced any ticks")

// TimeTicks generates tick positions for the axis over [min, max].
//
// With ordinal mode off, fewer than 3 positions, or an undefined min,
// it delegates to the plain time ticker unchanged. Otherwise it splits
// positions into segments wherever the gap to the next position
// exceeds 5×closestDistance (or the positions pass max), generates
// ticks per segment, and merges them, dropping duplicates across
// overlapping segments. SegmentStarts in the result marks where each
// segment's ticks begin.
//
// With findHigherRanks set and a grouping unit of at most one hour,
// ticks that start a new calendar day are marked as higher rank; if any
// day boundary is crossed the first tick is marked too. When the axis
// also configures a TickPixelInterval, a final pass thins ticks that
// would land closer than 80% of both the pixel interval and the median
// tick distance, preferring to drop the lower-ranked of two adjacent
// ticks.
func (a *Axis) TimeTicks(interval TimeInterval, min, max float64, positions []float64, closestDistance float64, findHigherRanks bool) (TickPositions, error) {
	ticker := a.Ticker
	if ticker == nil {
		ticker = CalendarTicker{}
	}
	sow := a.Opts.StartOfWeek

	if a.ord == nil || !a.ord.useOrdinal || len(positions) < 3 || math.IsNaN(min) {
		return ticker.TimeTicks(interval, min, max, sow), nil
	}

	var (
		group             TickPositions
		lastGroupPosition = math.Inf(-1)
		start             = 0
		info              = interval
	)
	posLen := len(positions)
	for end := 0; end < posLen; end++ {
		outsideMax := end > 0 && positions[end-1] > max
		if positions[end] < min {
			// Still left of the visible range; the segment
			// starts no earlier than here.
			start = end
		}
		if end == posLen-1 || positions[end+1]-positions[end] > closestDistance*5 || outsideMax {
			if positions[end] > lastGroupPosition {
				seg := ticker.TimeTicks(interval, positions[start], positions[end], sow)
				segPos := seg.Positions
				// Overlapping segments can re-produce the
				// previous segment's trailing ticks.
				for len(segPos) > 0 && segPos[0] <= lastGroupPosition {
					segPos = segPos[1:]
				}
				if len(segPos) > 0 {
					lastGroupPosition = segPos[len(segPos)-1]
					group.SegmentStarts = append(group.SegmentStarts, len(group.Positions))
					group.Positions = append(group.Positions, segPos...)
				}
				info = seg.Info
			}
			start = end + 1
		}
		if outsideMax {
			break
		}
	}
	if len(group.Positions) == 0 {
		return TickPositions{Info: info}, ErrNoTickSegments
	}
	group.Info = info

	if findHigherRanks && info.UnitRange <= UnitHour {
		a.markHigherRanks(&group)
	}

	if findHigherRanks && a.Opts.TickPixelInterval > 0 && len(group.Positions) > 1 {
		a.thinTicks(&group, max)
	}
	return group, nil
}

// markHigherRanks tags ticks that begin a new calendar day.
func (a *Axis) markHigherRanks(group *TickPositions) {
	loc := time.UTC
	if ct, ok := a.Ticker.(CalendarTicker); ok {
		loc = ct.loc()
	}
	day := func(v float64) int {
		t := time.UnixMilli(int64(v)).In(loc)
		return t.Year()*1000 + t.YearDay()
	}

	higher := make(map[float64]bool)
	crossed := false
	p := group.Positions
	for i := 1; i < len(p)-1; i++ {
		if day(p[i]) != day(p[i-1]) {
			higher[p[i]] = true
			crossed = true
		}
	}
	if crossed {
		higher[p[0]] = true
	}
	group.HigherRanks = higher
}

// thinTicks removes ticks that would render too close together,
// walking right to left so that later (already retained) ticks decide
// the fate of earlier ones. Segment start offsets are remapped as
// ticks drop out.
func (a *Axis) thinTicks(group *TickPositions, max float64) {
	tickPixelInterval := a.Opts.TickPixelInterval
	gp := group.Positions
	translated := make([]float64, len(gp))
	for i, v := range gp {
		translated[i] = a.Translate(v)
	}

	distances := make([]float64, len(gp)-1)
	for i := range distances {
		distances[i] = math.Abs(translated[i+1] - translated[i])
	}
	sort.Float64s(distances)
	median := stats.Sample{Xs: distances, Sorted: true}.Quantile(0.5)
	// A median far below the configured interval means the ticks are
	// wholesale too dense for it to be a useful yardstick.
	medianRelevant := median >= tickPixelInterval*0.6

	removeAt := func(i int) {
		copy(gp[i:], gp[i+1:])
		gp = gp[:len(gp)-1]
		copy(translated[i:], translated[i+1:])
		translated = translated[:len(translated)-1]
		for s := range group.SegmentStarts {
			if group.SegmentStarts[s] > i {
				group.SegmentStarts[s]--
			}
		}
	}

	i := len(gp)
	if gp[len(gp)-1] > max {
		i--
	}
	lastTranslated := math.NaN()
	for i--; i >= 0; i-- {
		distance := math.Abs(lastTranslated - translated[i])
		tooClose := !math.IsNaN(lastTranslated) &&
			distance < tickPixelInterval*0.8 &&
			(!medianRelevant || distance < median*0.8)
		if !tooClose {
			lastTranslated = translated[i]
			continue
		}
		if group.HigherRanks[gp[i]] && !group.HigherRanks[gp[i+1]] {
			// Keep the higher-ranked tick; drop the plain one
			// to its right instead.
			lastTranslated = translated[i]
			removeAt(i + 1)
		} else {
			removeAt(i)
		}
	}
	group.Positions = gp
}
