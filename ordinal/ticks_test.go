// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"errors"
	"testing"
	"time"
)

// jan1 is 2024-01-01T00:00:00Z in epoch milliseconds.
const jan1 = 1704067200000

func hourly(start float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = start + float64(i)*UnitHour
	}
	return xs
}

var msInterval = TimeInterval{"millisecond", UnitMillisecond, 1}

func TestTimeTicksSegments(t *testing.T) {
	xs := []float64{1, 2, 3, 10, 11, 12}
	a := newTestAxis(Options{}, xs)
	a.SetExtremes(1, 12)

	tp, err := a.TimeTicks(msInterval, 1, 12, a.Ordinal().Positions(), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	// The gap 3→10 exceeds 5× the closest distance, so ticks come in
	// two segments with nothing generated inside the gap.
	if want := []float64{1, 2, 3, 10, 11, 12}; !floatsEq(tp.Positions, want) {
		t.Errorf("Positions = %v, want %v", tp.Positions, want)
	}
	if want := []int{0, 3}; !intsEq(tp.SegmentStarts, want) {
		t.Errorf("SegmentStarts = %v, want %v", tp.SegmentStarts, want)
	}
}

func TestTimeTicksBypass(t *testing.T) {
	// Regular data leaves ordinal mode off; ticks come straight from
	// the plain ticker.
	a := newTestAxis(Options{}, []float64{1, 2, 3, 4, 5})
	a.SetExtremes(1, 5)
	tp, err := a.TimeTicks(msInterval, 1, 5, a.Ordinal().Positions(), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 2, 3, 4, 5}; !floatsEq(tp.Positions, want) {
		t.Errorf("Positions = %v, want %v", tp.Positions, want)
	}

	// So do fewer than three positions, even when ordinal is forced.
	a = newTestAxis(Options{Ordinal: true}, []float64{1, 10})
	a.SetExtremes(1, 10)
	tp, err = a.TimeTicks(msInterval, 1, 10, a.Ordinal().Positions(), 9, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(tp.Positions) != 10 {
		t.Errorf("got %d ticks, want the plain ticker's 10", len(tp.Positions))
	}
}

func TestTimeTicksMatchesPlain(t *testing.T) {
	// Evenly spaced data produces one segment whose ticks match the
	// plain ticker exactly, even with ordinal mode forced on.
	xs := hourly(jan1, 10)
	a := newTestAxis(Options{Ordinal: true}, xs)
	a.SetExtremes(xs[0], xs[9])

	interval := TimeInterval{"hour", UnitHour, 1}
	tp, err := a.TimeTicks(interval, xs[0], xs[9], a.Ordinal().Positions(), UnitHour, false)
	if err != nil {
		t.Fatal(err)
	}
	plain := CalendarTicker{}.TimeTicks(interval, xs[0], xs[9], time.Monday)
	if !floatsEq(tp.Positions, plain.Positions) {
		t.Errorf("ordinal ticks %v != plain ticks %v", tp.Positions, plain.Positions)
	}
	if want := []int{0}; !intsEq(tp.SegmentStarts, want) {
		t.Errorf("SegmentStarts = %v, want %v", tp.SegmentStarts, want)
	}
}

func TestTimeTicksHigherRanks(t *testing.T) {
	// Hourly ticks from 20:00 to 04:00 cross one midnight.
	xs := hourly(jan1+20*UnitHour, 9)
	a := newTestAxis(Options{Ordinal: true}, xs)
	a.SetExtremes(xs[0], xs[8])

	tp, err := a.TimeTicks(TimeInterval{"hour", UnitHour, 1}, xs[0], xs[8], a.Ordinal().Positions(), UnitHour, true)
	if err != nil {
		t.Fatal(err)
	}
	midnight := float64(jan1 + UnitDay)
	if !tp.HigherRanks[midnight] {
		t.Errorf("midnight tick not marked higher rank: %v", tp.HigherRanks)
	}
	if !tp.HigherRanks[xs[0]] {
		t.Errorf("first tick not marked after a day boundary was crossed")
	}
	if len(tp.HigherRanks) != 2 {
		t.Errorf("HigherRanks = %v, want exactly first tick and midnight", tp.HigherRanks)
	}
}

func TestThinTicks(t *testing.T) {
	// Nine hourly ticks on a 100px axis with a 50px target interval:
	// most must go, but the higher-ranked midnight tick survives.
	xs := hourly(jan1+20*UnitHour, 9)
	a := newTestAxis(Options{Ordinal: true, TickPixelInterval: 50}, xs)
	a.Len = 100
	a.SetExtremes(xs[0], xs[8])

	tp, err := a.TimeTicks(TimeInterval{"hour", UnitHour, 1}, xs[0], xs[8], a.Ordinal().Positions(), UnitHour, true)
	if err != nil {
		t.Fatal(err)
	}
	midnight := float64(jan1 + UnitDay)
	if want := []float64{xs[0], midnight, xs[8]}; !floatsEq(tp.Positions, want) {
		t.Errorf("thinned Positions = %v, want %v", tp.Positions, want)
	}
}

type emptyTicker struct{}

func (emptyTicker) TimeTicks(interval TimeInterval, min, max float64, startOfWeek time.Weekday) TickPositions {
	return TickPositions{Info: interval}
}

func TestTimeTicksNoSegments(t *testing.T) {
	xs := []float64{1, 2, 3, 10, 11, 12}
	a := newTestAxis(Options{}, xs)
	a.SetExtremes(1, 12)
	a.Ticker = emptyTicker{}

	tp, err := a.TimeTicks(msInterval, 1, 12, a.Ordinal().Positions(), 1, false)
	if !errors.Is(err, ErrNoTickSegments) {
		t.Fatalf("err = %v, want ErrNoTickSegments", err)
	}
	if len(tp.Positions) != 0 {
		t.Errorf("Positions = %v, want none", tp.Positions)
	}
}
