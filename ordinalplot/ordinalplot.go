// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordinalplot plugs an ordinal axis into gonum.org/v1/plot.
//
// Scale implements plot.Normalizer and Ticker implements plot.Ticker,
// so a plot's X axis can be driven by an ordinal.Axis:
//
//	p.X.Scale = ordinalplot.Scale{Axis: ax}
//	p.X.Tick.Marker = ordinalplot.Ticker{Axis: ax}
package ordinalplot

import (
	"time"

	"gonum.org/v1/plot"

	"github.com/aclements/go-ordinal/ordinal"
)

// Scale normalizes values through the axis's ordinal transform, so
// that known positions land evenly spaced regardless of value-domain
// gaps. With ordinal mode off it matches plot.LinearScale.
type Scale struct {
	Axis *ordinal.Axis
}

var _ plot.Normalizer = Scale{}

// Normalize returns the fractional position of x between min and max.
func (s Scale) Normalize(min, max, x float64) float64 {
	o := s.Axis.Ordinal()
	lmin := o.Val2Lin(min, false)
	lmax := o.Val2Lin(max, false)
	if lmin == lmax {
		return 0.5
	}
	return (o.Val2Lin(x, false) - lmin) / (lmax - lmin)
}

// Ticker generates gap-aware time ticks for the axis.
type Ticker struct {
	Axis *ordinal.Axis

	// Format overrides the tick label time format. Empty picks a
	// format from the tick unit.
	Format string
}

var _ plot.Ticker = Ticker{}

// Ticks returns ticks for the range [min, max]. Higher-ranked ticks
// (say, day boundaries among hour ticks) keep their labels when the
// set is thinned; failures degrade to no ticks rather than panicking,
// matching how the engine treats tick generation as recoverable.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	a := t.Axis

	tickPixelInterval := a.Opts.TickPixelInterval
	if tickPixelInterval <= 0 {
		tickPixelInterval = 100
	}
	targetTicks := a.Len / tickPixelInterval
	if targetTicks < 1 {
		targetTicks = 1
	}
	interval := ordinal.NormalizeTimeInterval((max - min) / targetTicks)

	tp, err := a.TimeTicks(interval, min, max, a.Ordinal().Positions(), a.ClosestPointRange(), true)
	if err != nil {
		return nil
	}

	format := t.Format
	if format == "" {
		format = unitFormat(tp.Info.UnitRange)
	}
	ticks := make([]plot.Tick, 0, len(tp.Positions))
	for _, v := range tp.Positions {
		f := format
		if tp.HigherRanks[v] {
			f = "Jan 2"
		}
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: time.UnixMilli(int64(v)).UTC().Format(f),
		})
	}
	return ticks
}

func unitFormat(unitRange float64) string {
	switch {
	case unitRange >= ordinal.UnitYear:
		return "2006"
	case unitRange >= ordinal.UnitMonth:
		return "Jan 2006"
	case unitRange >= ordinal.UnitDay:
		return "Jan 2"
	case unitRange >= ordinal.UnitMinute:
		return "15:04"
	default:
		return "15:04:05"
	}
}
