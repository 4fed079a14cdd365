// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordinal

import (
	"math"
	"time"
)

// Time unit ranges in milliseconds. Month and year use nominal ranges;
// calendar stepping handles their true lengths.
const (
	UnitMillisecond = 1.0
	UnitSecond      = 1000 * UnitMillisecond
	UnitMinute      = 60 * UnitSecond
	UnitHour        = 60 * UnitMinute
	UnitDay         = 24 * UnitHour
	UnitWeek        = 7 * UnitDay
	UnitMonth       = 28 * UnitDay
	UnitYear        = 364 * UnitDay
)

// TimeInterval is a normalized tick interval: count units of the named
// granularity.
type TimeInterval struct {
	UnitName  string
	UnitRange float64
	Count     int
}

// TickPositions is the result of one tick computation. Positions are
// in ascending order. SegmentStarts holds the offsets into Positions
// where a new gap-delimited segment begins (always [0] for plain
// ticks). HigherRanks marks ticks that cross a coarser calendar
// boundary, e.g. the first tick of a new day among hour ticks.
type TickPositions struct {
	Positions     []float64
	SegmentStarts []int
	HigherRanks   map[float64]bool
	Info          TimeInterval
}

// TimeTicker generates plain time ticks over a continuous range. The
// ordinal tick generator uses it per segment; regular axes use it
// directly.
type TimeTicker interface {
	TimeTicks(interval TimeInterval, min, max float64, startOfWeek time.Weekday) TickPositions
}

var timeUnits = []struct {
	name      string
	rangeMS   float64
	multiples []int
}{
	{"millisecond", UnitMillisecond, []int{1, 2, 5, 10, 20, 25, 50, 100, 200, 500}},
	{"second", UnitSecond, []int{1, 2, 5, 10, 15, 30}},
	{"minute", UnitMinute, []int{1, 2, 5, 10, 15, 30}},
	{"hour", UnitHour, []int{1, 2, 3, 4, 6, 8, 12}},
	{"day", UnitDay, []int{1, 2}},
	{"week", UnitWeek, []int{1, 2}},
	{"month", UnitMonth, []int{1, 2, 3, 4, 6}},
	{"year", UnitYear, nil},
}

// NormalizeTimeInterval converts a raw millisecond interval to the
// nearest "nice" calendar interval: the unit whose multiples best cover
// the interval, and the smallest such multiple.
func NormalizeTimeInterval(interval float64) TimeInterval {
	unit := timeUnits[len(timeUnits)-1]
	for i := 0; i < len(timeUnits)-1; i++ {
		u := timeUnits[i]
		last := u.multiples[len(u.multiples)-1]
		// Halfway between this unit's largest multiple and the
		// next unit.
		lessThan := (u.rangeMS*float64(last) + timeUnits[i+1].rangeMS) / 2
		if interval <= lessThan {
			unit = u
			break
		}
	}

	count := 1
	if unit.multiples == nil {
		// Years: pick a 1-2-5 count.
		c := math.Max(interval/unit.rangeMS, 1)
		mag := math.Pow(10, math.Floor(math.Log10(c)))
		for _, m := range []float64{1, 2, 5, 10} {
			count = int(m * mag)
			if c <= m*mag {
				break
			}
		}
	} else {
		for _, m := range unit.multiples {
			count = m
			if float64(m)*unit.rangeMS >= interval {
				break
			}
		}
	}
	return TimeInterval{unit.name, unit.rangeMS, count}
}

// CalendarTicker generates time ticks aligned to calendar boundaries.
// The zero value ticks in UTC.
type CalendarTicker struct {
	// Location is the time zone ticks align to. Nil means UTC.
	Location *time.Location
}

var _ TimeTicker = CalendarTicker{}

func (t CalendarTicker) loc() *time.Location {
	if t.Location != nil {
		return t.Location
	}
	return time.UTC
}

// TimeTicks returns tick positions from the floor of min up to max,
// stepped by the given interval. Month and year intervals step through
// the calendar; everything else steps by a fixed number of
// milliseconds. The first tick may lie before min (it is the calendar
// floor of min), matching how charts anchor time axes.
func (t CalendarTicker) TimeTicks(interval TimeInterval, min, max float64, startOfWeek time.Weekday) TickPositions {
	tp := TickPositions{Info: interval}
	if math.IsNaN(min) || math.IsNaN(max) || max < min {
		return tp
	}
	count := interval.Count
	if count < 1 {
		count = 1
	}

	cur := t.floorTime(interval, count, min, startOfWeek)
	for {
		v := float64(cur.UnixMilli())
		if v > max {
			break
		}
		tp.Positions = append(tp.Positions, v)
		switch interval.UnitName {
		case "year":
			cur = cur.AddDate(count, 0, 0)
		case "month":
			cur = cur.AddDate(0, count, 0)
		case "week":
			cur = cur.AddDate(0, 0, 7*count)
		case "day":
			cur = cur.AddDate(0, 0, count)
		default:
			cur = cur.Add(time.Duration(float64(count)*interval.UnitRange) * time.Millisecond)
		}
	}
	if len(tp.Positions) > 0 {
		tp.SegmentStarts = []int{0}
	}
	return tp
}

// Floor returns v rounded down to the nearest interval boundary, as a
// millisecond value.
func (t CalendarTicker) Floor(interval TimeInterval, v float64, startOfWeek time.Weekday) float64 {
	count := interval.Count
	if count < 1 {
		count = 1
	}
	return float64(t.floorTime(interval, count, v, startOfWeek).UnixMilli())
}

// floorTime returns min rounded down to the nearest interval boundary.
func (t CalendarTicker) floorTime(interval TimeInterval, count int, min float64, startOfWeek time.Weekday) time.Time {
	loc := t.loc()
	tm := time.UnixMilli(int64(math.Floor(min))).In(loc)
	y, mo, d := tm.Date()
	switch interval.UnitName {
	case "year":
		y -= y % count
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case "month":
		m := (int(mo) - 1) - (int(mo)-1)%count
		return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, loc)
	case "week":
		day := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		back := (int(day.Weekday()) - int(startOfWeek) + 7) % 7
		return day.AddDate(0, 0, -back)
	case "day":
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case "hour":
		h := tm.Hour() - tm.Hour()%count
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case "minute":
		m := tm.Minute() - tm.Minute()%count
		return time.Date(y, mo, d, tm.Hour(), m, 0, 0, loc)
	case "second":
		s := tm.Second() - tm.Second()%count
		return time.Date(y, mo, d, tm.Hour(), tm.Minute(), s, 0, loc)
	default:
		ms := int64(math.Floor(min))
		step := int64(count)
		return time.UnixMilli(ms - ms%step).In(loc)
	}
}
