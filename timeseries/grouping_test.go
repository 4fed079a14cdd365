// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"testing"
	"time"

	"github.com/aclements/go-ordinal/ordinal"
)

// sixHourly returns n samples at 6-hour spacing from 2024-01-01T00:00Z.
func sixHourly(n int) []Sample {
	const jan1 = 1704067200000
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{T: jan1 + float64(i)*6*ordinal.UnitHour, V: float64(i)}
	}
	return samples
}

func TestGroupingCurrent(t *testing.T) {
	s := NewSeries("s", sixHourly(41)) // 10 days
	g := &Grouping{Series: s}

	// 100px at 10px per group allows 10 groups over 10 days: one
	// group per day.
	count, unit, ok := g.Current(100)
	if !ok || count != 1 || unit != "day" {
		t.Errorf("Current(100) = %d %s %v, want 1 day true", count, unit, ok)
	}

	// A wide axis fits every raw point; no grouping applies.
	if _, _, ok := g.Current(10000); ok {
		t.Errorf("Current(10000) groups, want raw data")
	}
}

func TestGroupData(t *testing.T) {
	s := NewSeries("s", sixHourly(41))
	g := &Grouping{Series: s, StartOfWeek: time.Monday}

	got := g.GroupData(s.FullXData(), 100)
	// Each group collapses to its day's midnight; the final sample
	// lands exactly on day 11.
	if len(got) != 11 {
		t.Fatalf("got %d groups, want 11", len(got))
	}
	for i, v := range got {
		want := 1704067200000 + float64(i)*ordinal.UnitDay
		if v != want {
			t.Errorf("group %d = %v, want %v", i, v, want)
		}
	}

	// Without grouping in effect the data passes through unchanged.
	got = g.GroupData(s.FullXData(), 10000)
	if len(got) != s.Len() {
		t.Errorf("GroupData on a wide axis returned %d positions, want %d", len(got), s.Len())
	}
}
